package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Booking represents a one-hour claim on a court by a user
type Booking struct {
	ID          int64
	CourtID     int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	// Denormalized court data for history
	CourtName    string
	PricePerHour float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking claims the slot starting at slotStart.
// С фиксированной часовой сеткой занятость определяется равенством начала,
// а не пересечением интервалов.
func (b *Booking) OccupiesSlot(slotStart types.TimeString) bool {
	return b.StartTime.Equal(slotStart)
}
