package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// UseCase use case для получения свободных слотов корта на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Дневная сетка фиксирована (12 слотов, 08:00-20:00); день без
// бронирований возвращает полную сетку, а не ошибку. Существование
// корта не проверяется: неизвестный корт не имеет бронирований и
// получает полную сетку, проверка существования живет в создании
// и обновлении бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%d, date=%s",
		req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирования корта на дату
	bookings, err := uc.bookingRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Вычитаем занятые слоты из сетки
	slots := freeSlots(domain.DailyGrid(), bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free for court=%d, date=%s",
		len(slots), domain.SlotsPerDay, req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
