package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/userservice"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeBookingRepo держит бронирования в памяти и повторяет поведение
// уникального ограничения (court_id, booking_date, start_time)
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		nextID:   1,
		bookings: make(map[string]*domain.Booking),
	}
}

func slotKey(courtID int64, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%d|%s|%s", courtID, date.Format(domain.DateFormat), start)
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(booking.CourtID, booking.BookingDate, booking.StartTime)
	if _, exists := r.bookings[key]; exists {
		return nil, bookingRepo.ErrSlotTaken
	}

	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.bookings[key] = &created

	copied := created
	return &copied, nil
}

func (r *fakeBookingRepo) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.CourtID == courtID && b.BookingDate.Equal(date) {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

// fakeTxManager сериализует транзакции мьютексом, имитируя
// сериализуемую изоляцию с блокировкой строк
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeCourtClient struct {
	courts map[int64]*courtservice.Court
}

func (c *fakeCourtClient) GetCourt(ctx context.Context, courtID int64) (*courtservice.Court, error) {
	court, ok := c.courts[courtID]
	if !ok {
		return nil, courtservice.ErrCourtNotFound
	}
	return court, nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (c *fakeUserClient) GetUser(ctx context.Context, userID int64) (*userservice.User, error) {
	user, ok := c.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return user, nil
}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	courts := &fakeCourtClient{courts: map[int64]*courtservice.Court{
		1: {ID: 1, Name: "Центральный корт", PricePerHour: 1500},
	}}
	users := &fakeUserClient{users: map[int64]*userservice.User{
		10: {ID: 10, FirstName: "Иван"},
	}}
	return NewUseCase(repo, courts, users, &fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		CourtID:   1,
		UserID:    10,
		Date:      time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "15:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, int64(10), resp.UserID)
	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, "15:00", resp.EndTime.String())
	assert.Equal(t, "Центральный корт", resp.CourtName)
	assert.Equal(t, 1500.0, resp.PricePerHour)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestUseCase_Execute_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo())

	req := validRequest()
	req.CourtID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUseCase_Execute_UserNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo())

	req := validRequest()
	req.UserID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUseCase_Execute_WindowValidation(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo())

	t.Run("start before opening", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "07:59"
		req.EndTime = "08:59"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartOutsideHours)
	})

	t.Run("start after latest start", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "19:01"
		req.EndTime = "20:01"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartOutsideHours)
	})

	t.Run("two hour window fails one-hour check first", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "19:00"
		req.EndTime = "21:00"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNotOneHour)
	})
}

func TestUseCase_Execute_DuplicateSlot(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo())

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_DifferentCourtsSameSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	courts := &fakeCourtClient{courts: map[int64]*courtservice.Court{
		1: {ID: 1, Name: "Корт 1", PricePerHour: 1500},
		2: {ID: 2, Name: "Корт 2", PricePerHour: 2000},
	}}
	users := &fakeUserClient{users: map[int64]*userservice.User{
		10: {ID: 10, FirstName: "Иван"},
	}}
	uc := NewUseCase(repo, courts, users, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.CourtID = 2
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err, "the same slot on a different court is independent")
}

func TestUseCase_Execute_ConcurrentCreates(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo())

	const workers = 16

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent request must win the slot")
	assert.Equal(t, workers-1, conflicted)
}
