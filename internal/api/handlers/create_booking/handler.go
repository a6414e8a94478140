package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgCourtNotFound      = "корт не найден"
	msgUserNotFound       = "пользователь не найден"
	msgStartOutsideHours  = "время начала вне рабочих часов (08:00 - 19:00)"
	msgNotOneHour         = "бронирование должно длиться ровно один час"
	msgEndsAfterClosing   = "бронирование не может заканчиваться после 20:00"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: court_id=%d, user_id=%d", req.CourtID, req.UserID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrStartOutsideHours):
			h.logger.Warn("POST /bookings - Start outside hours: court_id=%d, start=%s", req.CourtID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartOutsideHours)

		case errors.Is(err, createBooking.ErrNotOneHour):
			h.logger.Warn("POST /bookings - Window not one hour: court_id=%d, window=%s-%s",
				req.CourtID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgNotOneHour)

		case errors.Is(err, createBooking.ErrEndsAfterClosing):
			h.logger.Warn("POST /bookings - Ends after closing: court_id=%d, end=%s", req.CourtID, req.EndTime)
			handlers.RespondBadRequest(w, msgEndsAfterClosing)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%d, user_id=%d, error=%v",
				req.CourtID, req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, court_id=%d, user_id=%d",
		result.ID, req.CourtID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
