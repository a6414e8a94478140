package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных слотов
// Слоты идут в хронологическом порядке дневной сетки
type Response struct {
	CourtID int64         // ID корта
	Date    time.Time     // Дата, на которую запрашивались слоты
	Slots   []domain.Slot // Свободные слоты
}
