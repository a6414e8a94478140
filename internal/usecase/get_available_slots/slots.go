package get_available_slots

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// freeSlots возвращает подпоследовательность дневной сетки, не занятую
// бронированиями, с сохранением хронологического порядка
//
// Слот занят, если начало какого-либо бронирования совпадает с началом
// слота. Равенство вместо пересечения интервалов - следствие жесткой
// часовой сетки: любое валидное бронирование выровнено по ней, и другая
// ориентация пересечения невозможна
func freeSlots(grid []domain.Slot, bookings []*domain.Booking) []domain.Slot {
	available := make([]domain.Slot, 0, len(grid))

	for _, slot := range grid {
		occupied := false
		for _, b := range bookings {
			if b.OccupiesSlot(slot.StartTime) {
				occupied = true
				break
			}
		}

		if !occupied {
			available = append(available, slot)
		}
	}

	return available
}
