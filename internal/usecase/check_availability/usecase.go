package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// UseCase use case проверки доступности комнат на диапазон дат
type UseCase struct {
	reservationRepo ReservationRepository
	pools           PoolProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	pools PoolProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		pools:           pools,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности.
// Читающая операция: без блокировок, безопасна для конкурентных вызовов.
// Результат — снимок; единственная жёсткая гарантия ёмкости даётся
// перепроверкой жизненного цикла в момент записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	pool, err := uc.pools.Get(req.Pool)
	if err != nil {
		if errors.Is(err, domain.ErrPoolNotFound) {
			uc.logger.Warn("CheckAvailability: pool %q not found", req.Pool)
			return nil, fmt.Errorf("%w: %q", ErrPoolNotFound, req.Pool)
		}
		return nil, fmt.Errorf("%w: resolve pool: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: pool=%s, range=[%s, %s), rooms=%d, exclude=%v",
		pool.Name, req.Start, req.End, req.RequestedRooms, req.ExcludeIDs)

	// Инвертированный или пустой диапазон: сразу недоступно, пустая разбивка
	if !req.Start.Before(req.End) {
		return &Response{
			Available:      false,
			MinAvailable:   0,
			RequestedRooms: req.RequestedRooms,
			Capacity:       pool.Capacity,
			Daily:          map[string]int{},
		}, nil
	}

	reservations, err := uc.reservationRepo.ListOverlapping(ctx, pool.Name, req.Start, req.End, req.ExcludeIDs)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// Запись уровня confirmed сверяется только с confirmed: это более строгий
	// суб-инвариант, provisional при конфликте вытесняются на стороне записи
	if req.ForStatus != nil && *req.ForStatus == domain.StatusConfirmed {
		reservations = domain.FilterByStatus(reservations, domain.StatusConfirmed)
	}

	minAvailable, daily := domain.MinAvailable(reservations, req.Start, req.End, pool.Capacity)

	breakdown := make(map[string]int, len(daily))
	for day, avail := range daily {
		breakdown[day.String()] = avail
	}

	resp := &Response{
		Available:      minAvailable >= req.RequestedRooms,
		MinAvailable:   minAvailable,
		RequestedRooms: req.RequestedRooms,
		Capacity:       pool.Capacity,
		Daily:          breakdown,
	}

	uc.logger.Info("CheckAvailability: pool=%s available=%t, min=%d/%d",
		pool.Name, resp.Available, resp.MinAvailable, pool.Capacity)

	return resp, nil
}
