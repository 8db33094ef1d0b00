package find_slots

import (
	"strconv"

	findSlots "github.com/m04kA/SMC-RoomReservationService/internal/usecase/find_slots"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// SlotResponse HTTP модель найденного слота
type SlotResponse struct {
	Start        string `json:"start"`
	End          string `json:"end"` // день выезда, исключительно
	MinAvailable int    `json:"minAvailable"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Pool  string         `json:"pool"`
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает запрос к use case из query параметров.
// rooms по умолчанию 1.
func ToUseCaseRequest(pool, earliestStr, latestStr, nightsStr, roomsStr string) (*findSlots.Request, error) {
	earliest, err := types.NewDayFromString(earliestStr)
	if err != nil {
		return nil, err
	}
	latest, err := types.NewDayFromString(latestStr)
	if err != nil {
		return nil, err
	}

	nights, err := strconv.Atoi(nightsStr)
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

	return &findSlots.Request{
		Pool:            pool,
		EarliestCheckIn: earliest,
		LatestCheckOut:  latest,
		Nights:          nights,
		RequestedRooms:  rooms,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start:        s.Start.String(),
			End:          s.End.String(),
			MinAvailable: s.MinAvailable,
		})
	}
	return &SlotsResponse{Pool: resp.Pool, Slots: slots}
}
