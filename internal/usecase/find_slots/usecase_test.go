package find_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

type fakeRepo struct {
	reservations []*domain.Reservation
	calls        int
}

func (f *fakeRepo) ListOverlapping(_ context.Context, pool string, start, endExcl types.Day, excludeIDs []int64) ([]*domain.Reservation, error) {
	f.calls++
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

func res(id int64, pool string, rooms int, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Title:     "Test Program",
		Category:  domain.CategoryCustomProgram,
		RoomCount: rooms,
		Status:    domain.StatusConfirmed,
		StartDate: types.MustDay(start),
		EndDate:   types.MustDay(end),
		Pool:      pool,
	}
}

func TestExecute_FindsFreeSlots(t *testing.T) {
	// Tata Hall полностью занят 4 и 5 июля: блокируются все слоты,
	// задевающие хотя бы один из этих дней
	repo := &fakeRepo{reservations: []*domain.Reservation{
		res(1, "Tata Hall", 60, "2026-07-04", "2026-07-06"),
	}}
	uc := NewUseCase(repo, newPools(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Pool:            "Tata Hall",
		EarliestCheckIn: types.MustDay("2026-07-01"),
		LatestCheckOut:  types.MustDay("2026-07-10"),
		Nights:          3,
		RequestedRooms:  10,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "2026-07-01", resp.Slots[0].Start.String())
	assert.Equal(t, "2026-07-04", resp.Slots[0].End.String())
	assert.Equal(t, "2026-07-06", resp.Slots[1].Start.String())
	assert.Equal(t, "2026-07-07", resp.Slots[2].Start.String())
	assert.Equal(t, 60, resp.Slots[0].MinAvailable)

	// Все кандидаты считаются по одному снимку хранилища
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_ExactFitWindow(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, newPools(t), nopLogger{})

	// Окно ровно под одну длительность: единственный кандидат
	resp, err := uc.Execute(context.Background(), &Request{
		EarliestCheckIn: types.MustDay("2026-07-01"),
		LatestCheckOut:  types.MustDay("2026-07-04"),
		Nights:          3,
		RequestedRooms:  1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2026-07-01", resp.Slots[0].Start.String())
	assert.Equal(t, 133, resp.Slots[0].MinAvailable)
}

func TestExecute_DegenerateRequests(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, newPools(t), nopLogger{})

	// nights < 1 — пустой список, не ошибка
	resp, err := uc.Execute(context.Background(), &Request{
		EarliestCheckIn: types.MustDay("2026-07-01"),
		LatestCheckOut:  types.MustDay("2026-07-10"),
		Nights:          0,
		RequestedRooms:  1,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	// Окно длиной меньше длительности — пустой список
	resp, err = uc.Execute(context.Background(), &Request{
		EarliestCheckIn: types.MustDay("2026-07-01"),
		LatestCheckOut:  types.MustDay("2026-07-02"),
		Nights:          5,
		RequestedRooms:  1,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	// Вырожденные запросы не ходят в хранилище
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_WindowTooLarge(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, newPools(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		EarliestCheckIn: types.MustDay("2026-01-01"),
		LatestCheckOut:  types.MustDay("2028-01-01"),
		Nights:          3,
		RequestedRooms:  1,
	})
	assert.ErrorIs(t, err, ErrWindowTooLarge)
}

func TestExecute_InvalidRooms(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, newPools(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		EarliestCheckIn: types.MustDay("2026-07-01"),
		LatestCheckOut:  types.MustDay("2026-07-10"),
		Nights:          3,
		RequestedRooms:  0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
