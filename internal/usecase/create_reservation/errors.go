package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустой заголовок, неположительное количество комнат, перевёрнутый
	// диапазон дат, отсутствующий квалификатор категории)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrPoolNotFound возвращается при обращении к неизвестному пулу номеров
	ErrPoolNotFound = errors.New("create_reservation: room pool not found")

	// ErrInternal возвращается при внутренних ошибках usecase.
	// Ошибка хранилища во время записи — неизвестное итоговое состояние:
	// вызывающий должен перечитать данные перед повтором.
	ErrInternal = errors.New("create_reservation: internal error")
)
