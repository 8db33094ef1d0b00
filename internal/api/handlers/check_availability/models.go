package check_availability

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RoomReservationService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available      bool           `json:"available"`
	MinAvailable   int            `json:"minAvailable"`
	RequestedRooms int            `json:"requestedRooms"`
	Capacity       int            `json:"capacity"`
	Daily          map[string]int `json:"daily"`
}

// ToUseCaseRequest собирает запрос к use case из query параметров.
// rooms по умолчанию 1, forStatus пустой = проверка против обоих уровней.
func ToUseCaseRequest(pool, startStr, endStr, roomsStr, forStatusStr string) (*checkAvailability.Request, error) {
	start, err := types.NewDayFromString(startStr)
	if err != nil {
		return nil, err
	}
	end, err := types.NewDayFromString(endStr)
	if err != nil {
		return nil, err
	}

	rooms := 1
	if roomsStr != "" {
		rooms, err = strconv.Atoi(roomsStr)
		if err != nil {
			return nil, err
		}
	}

	var forStatus *domain.ReservationStatus
	if forStatusStr != "" {
		status := domain.ReservationStatus(forStatusStr)
		if !status.IsValid() {
			return nil, fmt.Errorf("unknown reservation status %q", forStatusStr)
		}
		forStatus = &status
	}

	return &checkAvailability.Request{
		Pool:           pool,
		Start:          start,
		End:            end,
		RequestedRooms: rooms,
		ForStatus:      forStatus,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:      resp.Available,
		MinAvailable:   resp.MinAvailable,
		RequestedRooms: resp.RequestedRooms,
		Capacity:       resp.Capacity,
		Daily:          resp.Daily,
	}
}
