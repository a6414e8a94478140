package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на обновление бронирования
// Все поля заменяются целиком, валидация прогоняется заново
type Request struct {
	ID        int64            // ID обновляемого бронирования
	CourtID   int64            // Новый ID корта
	UserID    int64            // Новый ID пользователя
	Date      time.Time        // Новая дата
	StartTime types.TimeString // Новое время начала
	EndTime   types.TimeString // Новое время конца
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64
	CourtID     int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	CourtName    string
	PricePerHour float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
