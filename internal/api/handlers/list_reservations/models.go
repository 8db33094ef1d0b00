package list_reservations

import (
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(pool, fromStr, toStr, statusStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{Pool: pool}

	if fromStr != "" {
		from, err := types.NewDayFromString(fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := types.NewDayFromString(toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
