package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgNotFound           = "бронирование не найдено"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgCourtNotFound      = "корт не найден"
	msgUserNotFound       = "пользователь не найден"
	msgStartOutsideHours  = "время начала вне рабочих часов (08:00 - 19:00)"
	msgNotOneHour         = "бронирование должно длиться ровно один час"
	msgEndsAfterClosing   = "бронирование не может заканчиваться после 20:00"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/{id} - Slot taken: booking_id=%d, court_id=%d", bookingID, req.CourtID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, updateBooking.ErrCourtNotFound):
			h.logger.Warn("PUT /bookings/{id} - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, updateBooking.ErrUserNotFound):
			h.logger.Warn("PUT /bookings/{id} - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, updateBooking.ErrStartOutsideHours):
			h.logger.Warn("PUT /bookings/{id} - Start outside hours: booking_id=%d, start=%s", bookingID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartOutsideHours)

		case errors.Is(err, updateBooking.ErrNotOneHour):
			h.logger.Warn("PUT /bookings/{id} - Window not one hour: booking_id=%d, window=%s-%s",
				bookingID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgNotOneHour)

		case errors.Is(err, updateBooking.ErrEndsAfterClosing):
			h.logger.Warn("PUT /bookings/{id} - Ends after closing: booking_id=%d, end=%s", bookingID, req.EndTime)
			handlers.RespondBadRequest(w, msgEndsAfterClosing)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
