package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

// validateWindow проверяет, что окно бронирования структурно допустимо,
// независимо от занятости. Проверки идут по порядку, первая ошибка
// прерывает остальные:
//  1. начало в пределах [08:00, 19:00]
//  2. окно ровно один час
//  3. конец не позже закрытия (20:00)
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

// isSlotOccupied проверяет, занят ли слот с началом startTime
// Сравнение по равенству начала: при фиксированной часовой сетке
// возможна только одна ориентация пересечения
func isSlotOccupied(startTime types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.OccupiesSlot(startTime) {
			return true
		}
	}
	return false
}
