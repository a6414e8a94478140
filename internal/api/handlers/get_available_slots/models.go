package get_available_slots

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse модель ответа со свободными слотами корта
// Слоты отдаются строками вида "08:00 - 09:00"
type AvailableSlotsResponse struct {
	CourtID int64    `json:"court_id"`
	Date    string   `json:"date"`
	Slots   []string `json:"available_slots"`
}

// FromUseCaseResponse преобразует ответ usecase в HTTP-модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.Window())
	}

	return &AvailableSlotsResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
