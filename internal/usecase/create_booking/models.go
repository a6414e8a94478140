package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CourtID   int64            // ID корта
	UserID    int64            // ID пользователя
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "14:00")
	EndTime   types.TimeString // Время конца (например, "15:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	CourtID     int64            // ID корта
	UserID      int64            // ID пользователя
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время конца

	// Денормализованные данные корта
	CourtName    string  // Название корта
	PricePerHour float64 // Цена за час

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
