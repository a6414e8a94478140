package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(seed ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range seed {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
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

func (r *fakeBookingRepo) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func testBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CourtID:     1,
		UserID:      userID,
		BookingDate: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		EndTime:     "15:00",
		CourtName:   "Центральный корт",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking(1, 10)), nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2024-12-15", resp.BookingDate)
		assert.Equal(t, "14:00", resp.StartTime)
		assert.Equal(t, "15:00", resp.EndTime)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetAll(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking(1, 10), testBooking(2, 11)), nopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Bookings, 2)
}

func TestService_GetUserBookings(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking(1, 10), testBooking(2, 11)), nopLogger{})

	t.Run("user with bookings", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(10), resp.Bookings[0].UserID)
	})

	t.Run("user without bookings gets empty list", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), 99)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Bookings)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking(1, 10)), nopLogger{})

	t.Run("deleted booking is gone", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), 1))

		_, err := svc.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
