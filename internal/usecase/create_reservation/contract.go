package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListOverlapping(ctx context.Context, pool string, start, endExcl types.Day, excludeIDs []int64) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// PoolProvider интерфейс доступа к конфигурации пулов номеров
type PoolProvider interface {
	Get(name string) (domain.Pool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
