package find_slots

import (
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Вырожденное окно поиска (nights < 1, earliest >= latest) валидно и даёт
// пустой список: поиск слотов — запрос, а не валидируемая команда.
func validateRequest(req *Request) error {
	if req.RequestedRooms < 1 {
		return fmt.Errorf("%w: requestedRooms must be positive", ErrInvalidInput)
	}

	if req.EarliestCheckIn.IsZero() || req.LatestCheckOut.IsZero() {
		return fmt.Errorf("%w: earliestCheckIn and latestCheckOut are required", ErrInvalidInput)
	}

	if req.EarliestCheckIn.DaysUntil(req.LatestCheckOut) > domain.MaxSlotSearchDays {
		return fmt.Errorf("%w: window must not exceed %d days", ErrWindowTooLarge, domain.MaxSlotSearchDays)
	}

	return nil
}

// isDegenerate возвращает true для запросов, на которые по контракту
// отвечаем пустым списком без похода в хранилище
func isDegenerate(req *Request) bool {
	return req.Nights < 1 || !req.EarliestCheckIn.Before(req.LatestCheckOut)
}
