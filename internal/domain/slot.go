package domain

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Slot represents one fixed one-hour interval of the daily grid
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Window returns the slot formatted as "HH:MM - HH:MM"
func (s Slot) Window() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// DailyGrid возвращает все 12 слотов дневной сетки в хронологическом порядке:
// 08:00-09:00, 09:00-10:00, ..., 19:00-20:00
// Сетка одинакова для всех кортов и дат
func DailyGrid() []Slot {
	grid := make([]Slot, 0, SlotsPerDay)

	current := OpenTime
	for !current.IsAfter(LatestStartTime) {
		end, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			// Константная сетка 08:00..19:00 не пересекает полночь
			break
		}

		grid = append(grid, Slot{StartTime: current, EndTime: end})
		current = end
	}

	return grid
}
