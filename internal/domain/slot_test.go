package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func TestDailyGrid(t *testing.T) {
	grid := DailyGrid()

	require.Len(t, grid, SlotsPerDay)

	assert.Equal(t, "08:00", grid[0].StartTime.String())
	assert.Equal(t, "09:00", grid[0].EndTime.String())
	assert.Equal(t, "19:00", grid[len(grid)-1].StartTime.String())
	assert.Equal(t, "20:00", grid[len(grid)-1].EndTime.String())

	// Slots are contiguous and chronological
	for i := 1; i < len(grid); i++ {
		assert.Equal(t, grid[i-1].EndTime, grid[i].StartTime,
			"slot %d must start where slot %d ends", i, i-1)
		assert.True(t, grid[i-1].StartTime.IsBefore(grid[i].StartTime))
	}

	// Every slot is exactly one hour
	for _, slot := range grid {
		end, err := slot.StartTime.AddMinutes(SlotDurationMinutes)
		require.NoError(t, err)
		assert.Equal(t, end, slot.EndTime)
	}
}

func TestSlot_Window(t *testing.T) {
	slot := Slot{StartTime: "14:00", EndTime: "15:00"}
	assert.Equal(t, "14:00 - 15:00", slot.Window())
}

func TestBooking_OccupiesSlot(t *testing.T) {
	booking := &Booking{StartTime: "14:00", EndTime: "15:00"}

	assert.True(t, booking.OccupiesSlot(types.TimeString("14:00")))
	assert.False(t, booking.OccupiesSlot(types.TimeString("13:00")))
	assert.False(t, booking.OccupiesSlot(types.TimeString("15:00")))
}
