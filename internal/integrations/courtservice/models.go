package courtservice

// Court модель корта из каталога CourtService
type Court struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CourtType    string  `json:"courtType"` // Ex: "futbol-5", "futbol-7", "futbol-11"
	PricePerHour float64 `json:"pricePerHour"`
	ImageURL     string  `json:"imageUrl"`
	Location     string  `json:"location"`
}

// ErrorResponse модель ошибки от CourtService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
