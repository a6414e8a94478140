package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: booking ID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateWindow проверяет структурную допустимость окна бронирования
// Порядок проверок тот же, что при создании: рабочие часы, длина окна,
// время закрытия
func validateWindow(startTime, endTime types.TimeString) error {
	if startTime.IsBefore(domain.OpenTime) || startTime.IsAfter(domain.LatestStartTime) {
		return ErrStartOutsideHours
	}

	expectedEnd, err := startTime.AddMinutes(domain.SlotDurationMinutes)
	if err != nil || !endTime.Equal(expectedEnd) {
		return ErrNotOneHour
	}

	if endTime.IsAfter(domain.CloseTime) {
		return ErrEndsAfterClosing
	}

	return nil
}

// isSlotOccupiedByOther проверяет, занят ли слот каким-либо бронированием,
// кроме обновляемого: перенос бронирования на его же слот не конфликт
func isSlotOccupiedByOther(startTime types.TimeString, excludeID int64, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if b.OccupiesSlot(startTime) {
			return true
		}
	}
	return false
}
