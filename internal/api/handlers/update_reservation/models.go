package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	updateReservation "github.com/m04kA/SMC-RoomReservationService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model.
// Запись заменяется целиком, originalStatus указывает уровень,
// в котором бронирование числится сейчас.
type UpdateReservationRequest struct {
	OriginalStatus    string  `json:"originalStatus"`
	Title             string  `json:"title"`
	Category          string  `json:"category"`
	CategoryQualifier *string `json:"categoryQualifier,omitempty"`
	RoomCount         int     `json:"roomCount"`
	Status            string  `json:"status"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	Pool              string  `json:"pool,omitempty"`
	CreatedAt         *string `json:"createdAt,omitempty"` // RFC3339, опционально
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
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) (*updateReservation.Request, error) {
	startDate, err := types.NewDayFromString(r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := types.NewDayFromString(r.EndDate)
	if err != nil {
		return nil, err
	}

	var createdAt *time.Time
	if r.CreatedAt != nil {
		t, err := time.Parse(time.RFC3339, *r.CreatedAt)
		if err != nil {
			return nil, err
		}
		createdAt = &t
	}

	return &updateReservation.Request{
		ID:                id,
		OriginalStatus:    domain.ReservationStatus(r.OriginalStatus),
		Title:             r.Title,
		Category:          domain.Category(r.Category),
		CategoryQualifier: r.CategoryQualifier,
		RoomCount:         r.RoomCount,
		Status:            domain.ReservationStatus(r.Status),
		StartDate:         startDate,
		EndDate:           endDate,
		Pool:              r.Pool,
		CreatedAt:         createdAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
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
