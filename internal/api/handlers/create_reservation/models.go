package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Title             string  `json:"title"`
	Category          string  `json:"category"`
	CategoryQualifier *string `json:"categoryQualifier,omitempty"`
	RoomCount         int     `json:"roomCount"`
	Status            string  `json:"status"`    // "confirmed" или "provisional"
	StartDate         string  `json:"startDate"` // "2026-07-01"
	EndDate           string  `json:"endDate"`   // день выезда, исключительно
	Pool              string  `json:"pool,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Category           string  `json:"category"`
	CategoryQualifier  *string `json:"categoryQualifier,omitempty"`
	RoomCount          int     `json:"roomCount"`
	Status             string  `json:"status"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	Pool               string  `json:"pool"`
	EvictedProvisional []int64 `json:"evictedProvisional,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// CapacityConflictResponse тело ответа 409 при нехватке комнат
type CapacityConflictResponse struct {
	Error          string `json:"error"`
	Pool           string `json:"pool"`
	RequestedRooms int    `json:"requestedRooms"`
	MinAvailable   int    `json:"minAvailable"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startDate, err := types.NewDayFromString(r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := types.NewDayFromString(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Title:             r.Title,
		Category:          domain.Category(r.Category),
		CategoryQualifier: r.CategoryQualifier,
		RoomCount:         r.RoomCount,
		Status:            domain.ReservationStatus(r.Status),
		StartDate:         startDate,
		EndDate:           endDate,
		Pool:              r.Pool,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                 resp.ID,
		Title:              resp.Title,
		Category:           string(resp.Category),
		CategoryQualifier:  resp.CategoryQualifier,
		RoomCount:          resp.RoomCount,
		Status:             string(resp.Status),
		StartDate:          resp.StartDate.String(),
		EndDate:            resp.EndDate.String(),
		Pool:               resp.Pool,
		EvictedProvisional: resp.EvictedProvisional,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
