package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// ReservationResponse модель бронирования для чтения
type ReservationResponse struct {
	ID                int64                    `json:"id"`
	Title             string                   `json:"title"`
	Category          domain.Category          `json:"category"`
	CategoryQualifier *string                  `json:"categoryQualifier,omitempty"`
	RoomCount         int                      `json:"roomCount"`
	Status            domain.ReservationStatus `json:"status"`
	StartDate         types.Day                `json:"startDate"`
	EndDate           types.Day                `json:"endDate"`
	Nights            int                      `json:"nights"`
	Pool              string                   `json:"pool"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

// ListRequest модель запроса списка бронирований
type ListRequest struct {
	Pool      string     // Имя пула (пустое = пул по умолчанию)
	StartDate *types.Day // Начало периода (опционально)
	EndDate   *types.Day // Конец периода, исключительно (опционально)
	Status    *string    // Фильтр по уровню (опционально)
}

// ReservationListResponse список бронирований, упорядоченный по дню заезда
type ReservationListResponse struct {
	Pool         string                 `json:"pool"`
	Reservations []*ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует доменную модель в модель ответа
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                res.ID,
		Title:             res.Title,
		Category:          res.Category,
		CategoryQualifier: res.CategoryQualifier,
		RoomCount:         res.RoomCount,
		Status:            res.Status,
		StartDate:         res.StartDate,
		EndDate:           res.EndDate,
		Nights:            res.Nights(),
		Pool:              res.Pool,
		CreatedAt:         res.CreatedAt,
		UpdatedAt:         res.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных моделей
func FromDomainReservationList(pool string, reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, FromDomainReservation(r))
	}
	return &ReservationListResponse{Pool: pool, Reservations: result}
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
	return status, nil
}
