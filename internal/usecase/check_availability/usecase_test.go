package check_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
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
		{Name: "Tata Hall", Capacity: 60},
	}, "MDC")
	require.NoError(t, err)
	return pools
}

func res(id int64, rooms int, status domain.ReservationStatus, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Title:     "Test Program",
		Category:  domain.CategoryOpenProgram,
		RoomCount: rooms,
		Status:    status,
		StartDate: types.MustDay(start),
		EndDate:   types.MustDay(end),
		Pool:      "MDC",
	}
}

func TestExecute_Available(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		res(1, 100, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
	}}
	uc := NewUseCase(repo, newPools(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start:          types.MustDay("2026-07-01"),
		End:            types.MustDay("2026-07-05"),
		RequestedRooms: 30,
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 33, resp.MinAvailable)
	assert.Equal(t, 133, resp.Capacity)
	assert.Len(t, resp.Daily, 4)
	assert.Equal(t, 33, resp.Daily["2026-07-03"])
}

func TestExecute_NotEnoughOnWorstDay(t *testing.T) {
	// Один перегруженный день связывает весь диапазон
	repo := &fakeRepo{reservations: []*domain.Reservation{
		res(1, 100, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
		res(2, 30, domain.StatusProvisional, "2026-07-03", "2026-07-04"),
	}}
	uc := NewUseCase(repo, newPools(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start:          types.MustDay("2026-07-01"),
		End:            types.MustDay("2026-07-05"),
		RequestedRooms: 30,
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, 3, resp.MinAvailable)
}

func TestExecute_ConfirmedScopeIgnoresProvisional(t *testing.T) {
	// Для записи confirmed provisional не ограничение: они будут вытеснены
	repo := &fakeRepo{reservations: []*domain.Reservation{
		res(1, 100, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
		res(2, 30, domain.StatusProvisional, "2026-07-03", "2026-07-04"),
	}}
	uc := NewUseCase(repo, newPools(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start:          types.MustDay("2026-07-01"),
		End:            types.MustDay("2026-07-05"),
		RequestedRooms: 30,
		ForStatus:      ptr.Ptr(domain.StatusConfirmed),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 33, resp.MinAvailable)
}

func TestExecute_ExcludeIDs(t *testing.T) {
	// Редактируемая запись не блокируется собственным прежним следом
	repo := &fakeRepo{reservations: []*domain.Reservation{
		res(7, 130, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
	}}
	uc := NewUseCase(repo, newPools(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start:          types.MustDay("2026-07-01"),
		End:            types.MustDay("2026-07-05"),
		RequestedRooms: 130,
		ExcludeIDs:     []int64{7},
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 133, resp.MinAvailable)
}

func TestExecute_InvertedRangeIsUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, newPools(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start:          types.MustDay("2026-07-05"),
		End:            types.MustDay("2026-07-01"),
		RequestedRooms: 1,
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Empty(t, resp.Daily)
}

func TestExecute_ValidationAndPoolErrors(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, newPools(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Start:          types.MustDay("2026-07-01"),
		End:            types.MustDay("2026-07-05"),
		RequestedRooms: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Pool:           "Unknown Wing",
		Start:          types.MustDay("2026-07-01"),
		End:            types.MustDay("2026-07-05"),
		RequestedRooms: 1,
	})
	assert.ErrorIs(t, err, ErrPoolNotFound)
}
