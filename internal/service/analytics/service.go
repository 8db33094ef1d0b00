package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/analytics/models"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

type Service struct {
	repo  ReservationRepository
	pools PoolProvider
	logs  Logger
}

func NewService(repo ReservationRepository, pools PoolProvider, logs Logger) *Service {
	return &Service{
		repo:  repo,
		pools: pools,
		logs:  logs,
	}
}

// PeriodStats считает агрегированную статистику занятости пула за закрытый
// диапазон дней [From, To]: комнато-дни по уровням бронирования, коэффициент
// загрузки и разбивку по категориям программ.
func (s *Service) PeriodStats(ctx context.Context, req models.PeriodStatsRequest) (*models.PeriodStatsResponse, error) {
	// 1. Валидация периода
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: PeriodStats - period boundaries are required", ErrInvalidInput)
	}
	if req.From.After(req.To) {
		return nil, fmt.Errorf("%w: PeriodStats - period start is after period end", ErrInvalidInput)
	}

	// 2. Разрешение пула
	pool, err := s.pools.Get(req.Pool)
	if err != nil {
		if errors.Is(err, domain.ErrPoolNotFound) {
			s.logs.Warn("PeriodStats - unknown pool: %s", req.Pool)
			return nil, fmt.Errorf("%w: PeriodStats - pool %q", ErrPoolNotFound, req.Pool)
		}
		return nil, fmt.Errorf("%w: PeriodStats - resolve pool: %v", ErrInternal, err)
	}

	// 3. Выборка бронирований, пересекающих период
	endExcl := req.To.AddDays(1)
	reservations, err := s.repo.ListOverlapping(ctx, pool.Name, req.From, endExcl, nil)
	if err != nil {
		s.logs.Error("PeriodStats - failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: PeriodStats - list reservations: %v", ErrInternal, err)
	}

	// 4. Комнато-дни по уровням
	confirmed := domain.FilterByStatus(reservations, domain.StatusConfirmed)
	provisional := domain.FilterByStatus(reservations, domain.StatusProvisional)

	confirmedRoomDays := sumOccupancy(domain.DailyOccupancy(confirmed, req.From, req.To))
	provisionalRoomDays := sumOccupancy(domain.DailyOccupancy(provisional, req.From, req.To))
	totalRoomDays := confirmedRoomDays + provisionalRoomDays

	days := req.From.DaysUntil(endExcl)
	roomDaysAvailable := pool.Capacity * days

	var occupancyRate float64
	if roomDaysAvailable > 0 {
		occupancyRate = float64(totalRoomDays) / float64(roomDaysAvailable)
	}

	// 5. Разбивка по категориям, в фиксированном порядке
	byCategory := make([]models.CategoryStats, 0, len(domain.AllCategories))
	for _, cat := range domain.AllCategories {
		stats := models.CategoryStats{Category: cat}
		for _, r := range reservations {
			if r.Category != cat {
				continue
			}
			stats.Reservations++
			stats.RoomDays += clippedRoomDays(r, req.From, endExcl)
		}
		if stats.Reservations > 0 {
			byCategory = append(byCategory, stats)
		}
	}

	return &models.PeriodStatsResponse{
		Pool:     pool.Name,
		Capacity: pool.Capacity,
		From:     req.From,
		To:       req.To,
		Days:     days,

		TotalReservations:   len(reservations),
		ConfirmedRoomDays:   confirmedRoomDays,
		ProvisionalRoomDays: provisionalRoomDays,
		TotalRoomDays:       totalRoomDays,
		RoomDaysAvailable:   roomDaysAvailable,

		OccupancyRate: occupancyRate,

		ByCategory: byCategory,
	}, nil
}

func sumOccupancy(daily map[types.Day]int) int {
	total := 0
	for _, occupied := range daily {
		total += occupied
	}
	return total
}

// clippedRoomDays считает комнато-дни бронирования внутри периода [from, toExcl)
func clippedRoomDays(r *domain.Reservation, from, toExcl types.Day) int {
	start := r.StartDate
	if start.Before(from) {
		start = from
	}
	end := r.EndDate
	if toExcl.Before(end) {
		end = toExcl
	}
	nights := start.DaysUntil(end)
	if nights <= 0 {
		return 0
	}
	return nights * r.RoomCount
}
