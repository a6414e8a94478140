package userservice

// User модель пользователя из UserService
// Сервису бронирования от пользователя нужен только факт существования,
// остальные поля используются для денормализации в ответах
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
