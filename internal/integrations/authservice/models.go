package authservice

// TokenValidation результат проверки bearer-токена в AuthService
// Сервис бронирования не разбирает токен сам, только доверяет вердикту
type TokenValidation struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Message  string `json:"message"`
}
