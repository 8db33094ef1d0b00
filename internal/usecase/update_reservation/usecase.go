package update_reservation

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// UseCase use case изменения бронирования.
// Замена записи атомарна с точки зрения вызывающего: нет окна, где запись
// отсутствует или существует в двух версиях — всё происходит в одной
// сериализуемой транзакции, и проваленная проверка ёмкости оставляет
// хранилище ровно в прежнем состоянии.
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

// Execute выполняет use case изменения бронирования.
// Проверка доступности исключает само изменяемое бронирование: запись не
// должна блокироваться собственным прежним следом (изменение на тот же
// диапазон и то же количество комнат всегда проходит).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, originalStatus=%s, newStatus=%s, rooms=%d, range=[%s, %s)",
		req.ID, req.OriginalStatus, req.Status, req.RoomCount, req.StartDate, req.EndDate)

	// 1. Валидация инвариантов локально, без I/O
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем пул и его ёмкость из конфигурации
	pool, err := uc.pools.Get(req.Pool)
	if err != nil {
		if errors.Is(err, domain.ErrPoolNotFound) {
			uc.logger.Warn("UpdateReservation: pool %q not found", req.Pool)
			return nil, fmt.Errorf("%w: %q", ErrPoolNotFound, req.Pool)
		}
		return nil, fmt.Errorf("%w: resolve pool: %v", ErrInternal, err)
	}

	var result *domain.Reservation
	var evicted []int64

	// 3. Read-check-write в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Находим текущую запись и сверяем уровень
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}
		if existing.Status != req.OriginalStatus {
			uc.logger.Warn("UpdateReservation: reservation id=%d is %s, not %s",
				req.ID, existing.Status, req.OriginalStatus)
			return ErrReservationNotFound
		}

		// 3.2. Читаем пересекающиеся бронирования, исключая само изменяемое
		overlapping, err := uc.reservationRepo.ListOverlapping(txCtx, pool.Name, req.StartDate, req.EndDate, []int64{req.ID})
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 3.3. Проверяем ёмкость в области видимости НОВОГО уровня записи
		scope := overlapping
		if req.Status == domain.StatusConfirmed {
			scope = domain.FilterByStatus(overlapping, domain.StatusConfirmed)
		}

		minAvailable, _ := domain.MinAvailable(scope, req.StartDate, req.EndDate, pool.Capacity)
		if minAvailable < req.RoomCount {
			uc.logger.Warn("UpdateReservation: capacity exceeded in pool=%s: requested=%d, available=%d",
				pool.Name, req.RoomCount, minAvailable)
			return &domain.CapacityExceededError{
				Pool:         pool.Name,
				Requested:    req.RoomCount,
				MinAvailable: minAvailable,
			}
		}

		// 3.4. Полная замена полей по id. CreatedAt сохраняется из оригинала,
		// если вызывающий явно не передал новое значение.
		updated := &domain.Reservation{
			ID:                req.ID,
			Title:             req.Title,
			Category:          req.Category,
			CategoryQualifier: req.CategoryQualifier,
			RoomCount:         req.RoomCount,
			Status:            req.Status,
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			Pool:              pool.Name,
			CreatedAt:         existing.CreatedAt,
		}
		if req.CreatedAt != nil {
			updated.CreatedAt = *req.CreatedAt
		}

		if err := uc.reservationRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		// 3.5. Если результат — confirmed (в том числе перевод из provisional),
		// вытесняем все пересекающиеся provisional, как при создании
		if updated.Status == domain.StatusConfirmed {
			for _, p := range domain.FilterByStatus(overlapping, domain.StatusProvisional) {
				if err := uc.reservationRepo.Delete(txCtx, p.ID); err != nil {
					uc.logger.Error("UpdateReservation: failed to evict provisional id=%d: %v", p.ID, err)
					return fmt.Errorf("%w: failed to evict provisional reservation id=%d: %v", ErrInternal, p.ID, err)
				}
				evicted = append(evicted, p.ID)
			}
			if len(evicted) > 0 {
				uc.logger.Info("UpdateReservation: evicted %d provisional reservation(s): %v", len(evicted), evicted)
			}
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d in pool=%s", result.ID, pool.Name)

	return fromDomain(result, evicted), nil
}
