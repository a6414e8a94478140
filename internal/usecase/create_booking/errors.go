package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrStartOutsideHours возвращается, когда время начала вне рабочих часов
	ErrStartOutsideHours = errors.New("create_booking: start time outside operating hours")

	// ErrNotOneHour возвращается, когда окно бронирования не равно ровно одному часу
	ErrNotOneHour = errors.New("create_booking: window is not exactly one hour")

	// ErrEndsAfterClosing возвращается, когда бронирование заканчивается после закрытия
	ErrEndsAfterClosing = errors.New("create_booking: ends after closing time")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_booking: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
