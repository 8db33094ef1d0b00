package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
)

type fakeRepo struct {
	reservations map[int64]*domain.Reservation
	deleted      []int64
}

func newFakeRepo(seed ...*domain.Reservation) *fakeRepo {
	repo := &fakeRepo{reservations: make(map[int64]*domain.Reservation)}
	for _, r := range seed {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.Pool != filter.Pool {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && filter.EndDate != nil &&
			!domain.Overlaps(r, *filter.StartDate, *filter.EndDate) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	f.deleted = append(f.deleted, id)
	return nil
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

func seeded(id int64, status domain.ReservationStatus, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Title:     "Program",
		Category:  domain.CategoryOpenProgram,
		RoomCount: 10,
		Status:    status,
		StartDate: types.MustDay(start),
		EndDate:   types.MustDay(end),
		Pool:      "MDC",
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(seeded(1, domain.StatusConfirmed, "2026-07-01", "2026-07-05")), newPools(t), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 4, resp.Nights)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_FiltersByStatus(t *testing.T) {
	svc := NewService(newFakeRepo(
		seeded(1, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
		seeded(2, domain.StatusProvisional, "2026-07-02", "2026-07-06"),
	), newPools(t), nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{
		Status: ptr.Ptr("provisional"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
	assert.Equal(t, "MDC", resp.Pool)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), newPools(t), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("tentative")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_UnknownPool(t *testing.T) {
	svc := NewService(newFakeRepo(), newPools(t), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{Pool: "Unknown Wing"})
	assert.ErrorIs(t, err, ErrPoolNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(seeded(1, domain.StatusProvisional, "2026-07-01", "2026-07-05"))
	svc := NewService(repo, newPools(t), nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1, domain.StatusProvisional))
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_TierMismatch(t *testing.T) {
	// Удаление из уровня, в котором запись не числится, эквивалентно отсутствию
	repo := newFakeRepo(seeded(1, domain.StatusProvisional, "2026-07-01", "2026-07-05"))
	svc := NewService(repo, newPools(t), nopLogger{})

	err := svc.Delete(context.Background(), 1, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, repo.deleted)
}

func TestDelete_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), newPools(t), nopLogger{})

	err := svc.Delete(context.Background(), 1, "tentative")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
