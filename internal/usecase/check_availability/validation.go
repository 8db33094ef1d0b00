package check_availability

import "fmt"

// validateRequest валидирует входные данные запроса.
// Инвертированный диапазон дат здесь не ошибка: по контракту проверки
// он даёт отрицательный результат, а не отказ (см. usecase.go).
func validateRequest(req *Request) error {
	if req.RequestedRooms < 1 {
		return fmt.Errorf("%w: requestedRooms must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.ForStatus != nil && !req.ForStatus.IsValid() {
		return fmt.Errorf("%w: unknown reservation status %q", ErrInvalidInput, *req.ForStatus)
	}

	return nil
}
