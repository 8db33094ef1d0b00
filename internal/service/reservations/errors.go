package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// в указанном уровне (неверный id или несовпадающий status)
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations.service: invalid input data")

	// ErrPoolNotFound возвращается при обращении к неизвестному пулу номеров
	ErrPoolNotFound = errors.New("reservations.service: room pool not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
