package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/authservice"
)

type userIDContextKey struct{}

// TokenVerifier проверяет bearer-токен во внешнем AuthService
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*authservice.TokenValidation, error)
}

// GetUserID достает ID аутентифицированного пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}

// Auth middleware аутентификации по заголовку Authorization: Bearer <token>
// Токен проверяется во внешнем AuthService; сервис бронирования
// не разбирает токен сам и не делает авторизационных проверок
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				handlers.RespondUnauthorized(w, "отсутствует или некорректен заголовок Authorization")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			validation, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				handlers.RespondUnauthorized(w, "токен недействителен или истек")
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey{}, validation.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
