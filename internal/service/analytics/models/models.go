package models

import (
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// PeriodStatsRequest модель запроса статистики за период.
// Период задаётся закрытым диапазоном дней [From, To] — обе границы включены,
// как их выбирает человек в отчёте ("за июнь" = 1-е..30-е).
type PeriodStatsRequest struct {
	Pool string    // Имя пула (пустое = пул по умолчанию)
	From types.Day // Первый день периода
	To   types.Day // Последний день периода, включительно
}

// CategoryStats разбивка по категории программ
type CategoryStats struct {
	Category     domain.Category `json:"category"`
	Reservations int             `json:"reservations"` // Количество бронирований категории, пересекающих период
	RoomDays     int             `json:"roomDays"`     // Комнато-дни категории внутри периода
}

// PeriodStatsResponse агрегированная статистика занятости за период
type PeriodStatsResponse struct {
	Pool     string    `json:"pool"`
	Capacity int       `json:"capacity"`
	From     types.Day `json:"from"`
	To       types.Day `json:"to"`
	Days     int       `json:"days"` // Количество дней в периоде

	TotalReservations   int `json:"totalReservations"`   // Бронирования обоих уровней, пересекающие период
	ConfirmedRoomDays   int `json:"confirmedRoomDays"`   // Комнато-дни confirmed внутри периода
	ProvisionalRoomDays int `json:"provisionalRoomDays"` // Комнато-дни provisional внутри периода
	TotalRoomDays       int `json:"totalRoomDays"`       // Сумма по обоим уровням
	RoomDaysAvailable   int `json:"roomDaysAvailable"`   // Ёмкость x дни периода

	// OccupancyRate = TotalRoomDays / RoomDaysAvailable, в долях (0..1)
	OccupancyRate float64 `json:"occupancyRate"`

	ByCategory []CategoryStats `json:"byCategory"`
}
