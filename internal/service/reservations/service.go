package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
)

// Service сервис чтения и удаления бронирований.
// Запись (создание и изменение) идёт только через usecases жизненного цикла —
// это единственные компоненты, которым позволено мутировать коллекцию.
type Service struct {
	reservationRepo ReservationRepository
	pools           PoolProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	pools PoolProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		pools:           pools,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает бронирования пула с фильтрацией по периоду и уровню.
// Период трактуется как пересечение: попадает всё, что занимает хотя бы
// один день внутри запрошенного полуинтервала.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	pool, err := s.pools.Get(req.Pool)
	if err != nil {
		if errors.Is(err, domain.ErrPoolNotFound) {
			s.logger.Warn("List: pool %q not found", req.Pool)
			return nil, fmt.Errorf("%w: %q", ErrPoolNotFound, req.Pool)
		}
		return nil, fmt.Errorf("%w: resolve pool: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetching reservations for pool=%s", pool.Name)

	filter := domain.ReservationsFilter{
		Pool:      pool.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for pool=%s: %v", pool.Name, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations for pool=%s", len(reservations), pool.Name)
	return models.FromDomainReservationList(pool.Name, reservations), nil
}

// Delete безусловно удаляет бронирование из указанного уровня.
// Проверка ёмкости не нужна: удаление может только увеличить доступность.
// Удаление физическое и окончательное, состояния "отменено" нет.
func (s *Service) Delete(ctx context.Context, id int64, status domain.ReservationStatus) error {
	s.logger.Info("Delete: deleting reservation id=%d from tier=%s", id, status)

	if !status.IsValid() {
		s.logger.Warn("Delete: invalid status=%s for reservation id=%d", status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Запись должна числиться именно в том уровне, из которого её удаляют
	if res.Status != status {
		s.logger.Warn("Delete: reservation id=%d is %s, not %s", id, res.Status, status)
		return ErrReservationNotFound
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during deletion", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}
