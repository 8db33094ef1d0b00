package find_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_slots: invalid input data")

	// ErrPoolNotFound возвращается при обращении к неизвестному пулу номеров
	ErrPoolNotFound = errors.New("find_slots: room pool not found")

	// ErrWindowTooLarge возвращается, когда окно поиска превышает допустимый размер
	ErrWindowTooLarge = errors.New("find_slots: search window is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_slots: internal error")
)
