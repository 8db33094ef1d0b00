package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// Request модель запроса на изменение бронирования.
// Новые значения полей заменяют запись целиком (full replace по id).
type Request struct {
	ID             int64                    // ID изменяемого бронирования
	OriginalStatus domain.ReservationStatus // Уровень, в котором запись числится сейчас

	Title             string
	Category          domain.Category
	CategoryQualifier *string
	RoomCount         int
	Status            domain.ReservationStatus // Новый уровень (позволяет перевод provisional <-> confirmed)
	StartDate         types.Day
	EndDate           types.Day
	Pool              string

	// CreatedAt по умолчанию сохраняется из оригинала; задаётся только когда
	// вызывающий явно хочет его переписать
	CreatedAt *time.Time
}

// Response модель ответа с изменённым бронированием
type Response struct {
	ID                 int64
	Title              string
	Category           domain.Category
	CategoryQualifier  *string
	RoomCount          int
	Status             domain.ReservationStatus
	StartDate          types.Day
	EndDate            types.Day
	Pool               string
	EvictedProvisional []int64 // ID вытесненных provisional бронирований (только для confirmed)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func fromDomain(res *domain.Reservation, evicted []int64) *Response {
	return &Response{
		ID:                 res.ID,
		Title:              res.Title,
		Category:           res.Category,
		CategoryQualifier:  res.CategoryQualifier,
		RoomCount:          res.RoomCount,
		Status:             res.Status,
		StartDate:          res.StartDate,
		EndDate:            res.EndDate,
		Pool:               res.Pool,
		EvictedProvisional: evicted,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
}
