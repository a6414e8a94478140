package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model
// Заменяет все поля бронирования целиком
type UpdateBookingRequest struct {
	CourtID     int64  `json:"courtId"`
	UserID      int64  `json:"userId"`
	BookingDate string `json:"bookingDate"` // "2024-12-15"
	StartTime   string `json:"startTime"`   // "14:00"
	EndTime     string `json:"endTime"`     // "15:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	CourtID      int64   `json:"courtId"`
	UserID       int64   `json:"userId"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	CourtName    string  `json:"courtName"`
	PricePerHour float64 `json:"pricePerHour"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		ID:        bookingID,
		CourtID:   r.CourtID,
		UserID:    r.UserID,
		Date:      bookingDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		CourtID:      resp.CourtID,
		UserID:       resp.UserID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		CourtName:    resp.CourtName,
		PricePerHour: resp.PricePerHour,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
