package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.CourtID == courtID && b.BookingDate.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

func windows(slots []domain.Slot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Window())
	}
	return result
}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID: 1,
		Date:    time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, "08:00 - 09:00", resp.Slots[0].Window())
	assert.Equal(t, "19:00 - 20:00", resp.Slots[len(resp.Slots)-1].Window())
}

func TestUseCase_Execute_BookedSlotExcluded(t *testing.T) {
	date := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtID: 1, UserID: 10, BookingDate: date, StartTime: "14:00", EndTime: "15:00"},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date})
	require.NoError(t, err)

	got := windows(resp.Slots)
	require.Len(t, got, domain.SlotsPerDay-1)

	assert.NotContains(t, got, "14:00 - 15:00")
	assert.Contains(t, got, "13:00 - 14:00")
	assert.Contains(t, got, "15:00 - 16:00")
}

func TestUseCase_Execute_OtherDateDoesNotAffect(t *testing.T) {
	booked := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	queried := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtID: 1, UserID: 10, BookingDate: booked, StartTime: "14:00", EndTime: "15:00"},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: queried})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.SlotsPerDay)
}

func TestUseCase_Execute_UnknownCourtGetsFullGrid(t *testing.T) {
	date := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtID: 1, UserID: 10, BookingDate: date, StartTime: "14:00", EndTime: "15:00"},
	}}
	uc := NewUseCase(repo, nopLogger{})

	// Корт без бронирований неотличим от несуществующего:
	// оба получают полную сетку, а не ошибку
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 777, Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, "08:00 - 09:00", resp.Slots[0].Window())
	assert.Equal(t, "19:00 - 20:00", resp.Slots[len(resp.Slots)-1].Window())
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	t.Run("non-positive court id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CourtID: 0,
			Date:    time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{CourtID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestFreeSlots_PreservesOrder(t *testing.T) {
	grid := domain.DailyGrid()
	bookings := []*domain.Booking{
		{StartTime: "08:00", EndTime: "09:00"},
		{StartTime: "12:00", EndTime: "13:00"},
		{StartTime: "19:00", EndTime: "20:00"},
	}

	free := freeSlots(grid, bookings)
	require.Len(t, free, domain.SlotsPerDay-3)

	for i := 1; i < len(free); i++ {
		assert.True(t, free[i-1].StartTime.IsBefore(free[i].StartTime),
			"free slots must stay in chronological order")
	}

	got := windows(free)
	assert.NotContains(t, got, "08:00 - 09:00")
	assert.NotContains(t, got, "12:00 - 13:00")
	assert.NotContains(t, got, "19:00 - 20:00")
}

func TestFreeSlots_FullyBookedDay(t *testing.T) {
	grid := domain.DailyGrid()

	bookings := make([]*domain.Booking, 0, len(grid))
	for _, slot := range grid {
		bookings = append(bookings, &domain.Booking{StartTime: slot.StartTime, EndTime: slot.EndTime})
	}

	free := freeSlots(grid, bookings)
	assert.Empty(t, free)
}
