package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// UseCase use case создания бронирования.
// Read-check-write выполняется в сериализуемой транзакции: два конкурентных
// вызова не могут оба увидеть доступность и оба записать перебор ёмкости.
type UseCase struct {
	reservationRepo ReservationRepository
	pools           PoolProvider
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	pools PoolProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		pools:           pools,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Запись уровня confirmed проверяется только против confirmed бронирований
// (более строгий суб-инвариант) и после успешной записи безусловно вытесняет
// все пересекающиеся provisional: подтверждённые программы всегда выигрывают
// физические комнаты, и календарь не должен показывать суммарную занятость
// выше ёмкости из-за устаревшей provisional брони. Запись уровня provisional
// проверяется против объединения обоих уровней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: title=%q, pool=%q, status=%s, rooms=%d, range=[%s, %s)",
		req.Title, req.Pool, req.Status, req.RoomCount, req.StartDate, req.EndDate)

	// 1. Валидация инвариантов локально, без I/O
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем пул и его ёмкость из конфигурации
	pool, err := uc.pools.Get(req.Pool)
	if err != nil {
		if errors.Is(err, domain.ErrPoolNotFound) {
			uc.logger.Warn("CreateReservation: pool %q not found", req.Pool)
			return nil, fmt.Errorf("%w: %q", ErrPoolNotFound, req.Pool)
		}
		return nil, fmt.Errorf("%w: resolve pool: %v", ErrInternal, err)
	}

	var result *domain.Reservation
	var evicted []int64

	// 3. Read-check-write в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем пересекающиеся бронирования с блокировкой (FOR UPDATE)
		overlapping, err := uc.reservationRepo.ListOverlapping(txCtx, pool.Name, req.StartDate, req.EndDate, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 3.2. Проверяем ёмкость в области видимости записываемого уровня
		scope := overlapping
		if req.Status == domain.StatusConfirmed {
			scope = domain.FilterByStatus(overlapping, domain.StatusConfirmed)
		}

		minAvailable, _ := domain.MinAvailable(scope, req.StartDate, req.EndDate, pool.Capacity)
		if minAvailable < req.RoomCount {
			uc.logger.Warn("CreateReservation: capacity exceeded in pool=%s: requested=%d, available=%d",
				pool.Name, req.RoomCount, minAvailable)
			return &domain.CapacityExceededError{
				Pool:         pool.Name,
				Requested:    req.RoomCount,
				MinAvailable: minAvailable,
			}
		}

		// 3.3. Записываем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Title:             req.Title,
			Category:          req.Category,
			CategoryQualifier: req.CategoryQualifier,
			RoomCount:         req.RoomCount,
			Status:            req.Status,
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			Pool:              pool.Name,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 3.4. Confirmed вытесняет все пересекающиеся provisional.
		// Безусловно по факту пересечения, не по фактическому перебору ёмкости.
		if created.Status == domain.StatusConfirmed {
			for _, p := range domain.FilterByStatus(overlapping, domain.StatusProvisional) {
				if err := uc.reservationRepo.Delete(txCtx, p.ID); err != nil {
					uc.logger.Error("CreateReservation: failed to evict provisional id=%d: %v", p.ID, err)
					return fmt.Errorf("%w: failed to evict provisional reservation id=%d: %v", ErrInternal, p.ID, err)
				}
				evicted = append(evicted, p.ID)
			}
			if len(evicted) > 0 {
				uc.logger.Info("CreateReservation: evicted %d provisional reservation(s): %v", len(evicted), evicted)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d in pool=%s", result.ID, pool.Name)

	return fromDomain(result, evicted), nil
}
