package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// в указанном уровне (неверный id или несовпадающий originalStatus)
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrPoolNotFound возвращается при обращении к неизвестному пулу номеров
	ErrPoolNotFound = errors.New("update_reservation: room pool not found")

	// ErrInternal возвращается при внутренних ошибках usecase.
	// Ошибка хранилища во время записи — неизвестное итоговое состояние:
	// вызывающий должен перечитать данные перед повтором.
	ErrInternal = errors.New("update_reservation: internal error")
)
