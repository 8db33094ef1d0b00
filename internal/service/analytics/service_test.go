package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/analytics/models"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

type fakeRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeRepo) ListOverlapping(_ context.Context, pool string, start, endExcl types.Day, excludeIDs []int64) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.Pool == pool && domain.Overlaps(r, start, endExcl) {
			result = append(result, r)
		}
	}
	return domain.ExcludeIDs(result, excludeIDs), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newPools(t *testing.T) *domain.PoolSet {
	t.Helper()
	pools, err := domain.NewPoolSet([]domain.Pool{
		{Name: "MDC", Capacity: 133},
	}, "MDC")
	require.NoError(t, err)
	return pools
}

func res(id int64, cat domain.Category, rooms int, status domain.ReservationStatus, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Title:     "Program",
		Category:  cat,
		RoomCount: rooms,
		Status:    status,
		StartDate: types.MustDay(start),
		EndDate:   types.MustDay(end),
		Pool:      "MDC",
	}
}

func TestPeriodStats(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		// Полностью внутри периода: 4 дня x 40 комнат
		res(1, domain.CategoryOpenProgram, 40, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
		// Хвост выходит за период: в зачёт идут только 8, 9, 10 июля
		res(2, domain.CategoryCustomProgram, 10, domain.StatusProvisional, "2026-07-08", "2026-07-12"),
		// Начало до периода: в зачёт идут только 1 и 2 июля
		res(3, domain.CategoryOpenProgram, 20, domain.StatusConfirmed, "2026-06-28", "2026-07-03"),
	}}
	svc := NewService(repo, newPools(t), nopLogger{})

	resp, err := svc.PeriodStats(context.Background(), models.PeriodStatsRequest{
		From: types.MustDay("2026-07-01"),
		To:   types.MustDay("2026-07-10"),
	})
	require.NoError(t, err)

	assert.Equal(t, "MDC", resp.Pool)
	assert.Equal(t, 133, resp.Capacity)
	assert.Equal(t, 10, resp.Days)
	assert.Equal(t, 3, resp.TotalReservations)

	assert.Equal(t, 200, resp.ConfirmedRoomDays)
	assert.Equal(t, 30, resp.ProvisionalRoomDays)
	assert.Equal(t, 230, resp.TotalRoomDays)
	assert.Equal(t, 1330, resp.RoomDaysAvailable)
	assert.InDelta(t, 230.0/1330.0, resp.OccupancyRate, 1e-9)

	require.Len(t, resp.ByCategory, 2)
	assert.Equal(t, domain.CategoryOpenProgram, resp.ByCategory[0].Category)
	assert.Equal(t, 2, resp.ByCategory[0].Reservations)
	assert.Equal(t, 200, resp.ByCategory[0].RoomDays)
	assert.Equal(t, domain.CategoryCustomProgram, resp.ByCategory[1].Category)
	assert.Equal(t, 30, resp.ByCategory[1].RoomDays)
}

func TestPeriodStats_EmptyPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{}, newPools(t), nopLogger{})

	resp, err := svc.PeriodStats(context.Background(), models.PeriodStatsRequest{
		From: types.MustDay("2026-07-01"),
		To:   types.MustDay("2026-07-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Days)
	assert.Zero(t, resp.TotalRoomDays)
	assert.Zero(t, resp.OccupancyRate)
	assert.Empty(t, resp.ByCategory)
}

func TestPeriodStats_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{}, newPools(t), nopLogger{})

	_, err := svc.PeriodStats(context.Background(), models.PeriodStatsRequest{
		From: types.MustDay("2026-07-10"),
		To:   types.MustDay("2026-07-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PeriodStats(context.Background(), models.PeriodStatsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPeriodStats_UnknownPool(t *testing.T) {
	svc := NewService(&fakeRepo{}, newPools(t), nopLogger{})

	_, err := svc.PeriodStats(context.Background(), models.PeriodStatsRequest{
		Pool: "Unknown Wing",
		From: types.MustDay("2026-07-01"),
		To:   types.MustDay("2026-07-10"),
	})
	assert.ErrorIs(t, err, ErrPoolNotFound)
}
