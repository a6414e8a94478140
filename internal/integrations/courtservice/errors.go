package courtservice

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("courtservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("courtservice client: invalid response")
)
