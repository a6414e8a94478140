package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		wantErr   error
	}{
		{"first slot of the day", "08:00", "09:00", nil},
		{"middle of the day", "14:00", "15:00", nil},
		{"last slot of the day", "19:00", "20:00", nil},

		// Boundary values around opening
		{"one minute before opening", "07:59", "08:59", ErrStartOutsideHours},
		{"exactly at opening", "08:00", "09:00", nil},

		// Boundary values around the latest start
		{"exactly at latest start", "19:00", "20:00", nil},
		{"one minute after latest start", "19:01", "20:01", ErrStartOutsideHours},

		// Order of checks: a two-hour window starting at 19:00 fails the
		// one-hour check before the closing-time check is reached
		{"two hour window at latest start", "19:00", "21:00", ErrNotOneHour},

		{"half hour window", "14:00", "14:30", ErrNotOneHour},
		{"two hour window midday", "14:00", "16:00", ErrNotOneHour},
		{"end before start", "14:00", "13:00", ErrNotOneHour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWindow(types.TimeString(tt.startTime), types.TimeString(tt.endTime))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	validReq := func() *Request {
		return &Request{
			CourtID:   1,
			UserID:    1,
			Date:      time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			StartTime: "14:00",
			EndTime:   "15:00",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validateRequest(validReq()))
	})

	t.Run("non-positive court id", func(t *testing.T) {
		req := validReq()
		req.CourtID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non-positive user id", func(t *testing.T) {
		req := validReq()
		req.UserID = -5
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		req := validReq()
		req.Date = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing start time", func(t *testing.T) {
		req := validReq()
		req.StartTime = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed end time", func(t *testing.T) {
		req := validReq()
		req.EndTime = "15h00"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestIsSlotOccupied(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", EndTime: "11:00"},
		{StartTime: "14:00", EndTime: "15:00"},
	}

	assert.True(t, isSlotOccupied("14:00", bookings))
	assert.True(t, isSlotOccupied("10:00", bookings))
	assert.False(t, isSlotOccupied("13:00", bookings))
	assert.False(t, isSlotOccupied("15:00", bookings))
	assert.False(t, isSlotOccupied("14:00", nil))
}
