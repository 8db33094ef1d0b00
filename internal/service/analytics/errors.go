package analytics

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("analytics.service: invalid input data")

	// ErrPoolNotFound возвращается при обращении к неизвестному пулу номеров
	ErrPoolNotFound = errors.New("analytics.service: room pool not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("analytics.service: internal error")
)
