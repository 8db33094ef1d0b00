package delete_reservation

import (
	"context"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

type ReservationService interface {
	Delete(ctx context.Context, id int64, status domain.ReservationStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
