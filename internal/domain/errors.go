package domain

import (
	"errors"
	"fmt"
)

// CapacityExceededError возвращается, когда read-check-write нашёл недостаточно
// свободных комнат. Несёт запрошенное количество и минимальную доступность,
// чтобы вызывающий мог показать "свободно только N комнат" и скорректировать запрос.
type CapacityExceededError struct {
	Pool         string
	Requested    int
	MinAvailable int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded in pool %q: requested %d rooms, only %d available",
		e.Pool, e.Requested, e.MinAvailable)
}

// IsCapacityExceeded извлекает CapacityExceededError из цепочки ошибок.
// Возвращает nil, если ошибка другого типа.
func IsCapacityExceeded(err error) *CapacityExceededError {
	if err == nil {
		return nil
	}

	var capErr *CapacityExceededError
	if errors.As(err, &capErr) {
		return capErr
	}

	return nil
}
