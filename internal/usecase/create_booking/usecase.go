package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
	userClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	courtClient CourtServiceClient
	userClient  UserServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtClient CourtServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtClient: courtClient,
		userClient:  userClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости и запись идут в сериализуемой транзакции,
// чтобы два конкурентных запроса не забронировали один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%d, user=%d, date=%s, window=%s-%s",
		req.CourtID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtClient.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Проверяем существование пользователя
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Структурная валидация окна - дешевая проверка до похода за занятостью
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateBooking: window validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 5. Check-then-act в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем занятость на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность слота
		if isSlotOccupied(req.StartTime, bookings) {
			uc.logger.Warn("CreateBooking: slot %s is taken for court=%d date=%s",
				req.StartTime, req.CourtID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 5.3. Сохраняем бронирование с денормализацией данных корта
		booking := &domain.Booking{
			CourtID:      req.CourtID,
			UserID:       req.UserID,
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			CourtName:    court.Name,
			PricePerHour: court.PricePerHour,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальное ограничение БД - страховка от гонки,
			// которую не поймал FOR UPDATE
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique constraint rejected slot %s for court=%d",
					req.StartTime, req.CourtID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		CourtID:      result.CourtID,
		UserID:       result.UserID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		CourtName:    result.CourtName,
		PricePerHour: result.PricePerHour,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
