package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("update_booking: court not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("update_booking: user not found")

	// ErrStartOutsideHours возвращается, когда время начала вне рабочих часов
	ErrStartOutsideHours = errors.New("update_booking: start time outside operating hours")

	// ErrNotOneHour возвращается, когда окно бронирования не равно ровно одному часу
	ErrNotOneHour = errors.New("update_booking: window is not exactly one hour")

	// ErrEndsAfterClosing возвращается, когда бронирование заканчивается после закрытия
	ErrEndsAfterClosing = errors.New("update_booking: ends after closing time")

	// ErrSlotTaken возвращается, когда целевой слот занят другим бронированием
	ErrSlotTaken = errors.New("update_booking: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
