package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
	userClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/userservice"
)

// UseCase use case для обновления бронирования
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

// Execute выполняет use case обновления бронирования
// Прогоняет весь пайплайн создания заново; при проверке занятости
// само обновляемое бронирование не учитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, court=%d, user=%d, date=%s, window=%s-%s",
		req.ID, req.CourtID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtClient.ErrCourtNotFound) {
			uc.logger.Warn("UpdateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Проверяем существование пользователя
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("UpdateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Структурная валидация окна
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("UpdateBooking: window validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 5. Check-then-act в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Существование обновляемого бронирования
		existing, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 5.2. Читаем занятость целевой даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.3. Проверяем доступность слота, исключая само бронирование
		if isSlotOccupiedByOther(req.StartTime, req.ID, bookings) {
			uc.logger.Warn("UpdateBooking: slot %s is taken for court=%d date=%s",
				req.StartTime, req.CourtID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 5.4. Заменяем запись целиком
		updated := &domain.Booking{
			ID:           req.ID,
			CourtID:      req.CourtID,
			UserID:       req.UserID,
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			CourtName:    court.Name,
			PricePerHour: court.PricePerHour,
			CreatedAt:    existing.CreatedAt,
		}

		if err := uc.bookingRepo.Update(txCtx, req.ID, updated); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				// Страховка уникальным ограничением БД
				uc.logger.Warn("UpdateBooking: unique constraint rejected slot %s for court=%d",
					req.StartTime, req.CourtID)
				return ErrSlotTaken
			default:
				uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", req.ID)

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
