package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Title             string                   // Название программы, обязательно
	Category          domain.Category          // Категория программы
	CategoryQualifier *string                  // Обязателен для institutional и other
	RoomCount         int                      // Количество комнат
	Status            domain.ReservationStatus // confirmed или provisional
	StartDate         types.Day                // Первый занятый день (заезд)
	EndDate           types.Day                // День выезда, исключительно
	Pool              string                   // Имя пула (пустое = пул по умолчанию)
}

// Response модель ответа с созданным бронированием
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
