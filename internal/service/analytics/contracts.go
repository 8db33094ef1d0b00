package analytics

import (
	"context"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ListOverlapping получает бронирования пула, пересекающиеся с [start, endExcl)
	ListOverlapping(ctx context.Context, pool string, start, endExcl types.Day, excludeIDs []int64) ([]*domain.Reservation, error)
}

// PoolProvider интерфейс доступа к конфигурации пулов номеров
type PoolProvider interface {
	Get(name string) (domain.Pool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
