package domain

import "github.com/m04kA/SMC-CourtBookingService/pkg/types"

// Рабочие часы площадок. Фиксированы для всего сервиса,
// не настраиваются по отдельным кортам.
const (
	// OpenTime время открытия: первый слот начинается в 08:00
	OpenTime = types.TimeString("08:00")

	// LatestStartTime самое позднее допустимое начало бронирования,
	// чтобы оно закончилось к закрытию
	LatestStartTime = types.TimeString("19:00")

	// CloseTime время закрытия: последний слот заканчивается в 20:00
	CloseTime = types.TimeString("20:00")
)

// Параметры сетки слотов
const (
	// SlotDurationMinutes длительность бронирования, ровно один час
	SlotDurationMinutes = 60

	// SlotsPerDay количество слотов в дневной сетке (08:00 .. 19:00)
	SlotsPerDay = 12
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
