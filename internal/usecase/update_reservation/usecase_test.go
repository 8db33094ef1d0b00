package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

type fakeRepo struct {
	reservations map[int64]*domain.Reservation
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
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, res *domain.Reservation) error {
	if _, ok := f.reservations[res.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.UpdatedAt = time.Now()
	copied := *res
	f.reservations[res.ID] = &copied
	return nil
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

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.reservations, id)
	return nil
}

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func seeded(id int64, rooms int, status domain.ReservationStatus, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Title:     "Existing Program",
		Category:  domain.CategoryOpenProgram,
		RoomCount: rooms,
		Status:    status,
		StartDate: types.MustDay(start),
		EndDate:   types.MustDay(end),
		Pool:      "MDC",
		CreatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func updateRequest(id int64, original domain.ReservationStatus) *Request {
	return &Request{
		ID:             id,
		OriginalStatus: original,
		Title:          "Existing Program",
		Category:       domain.CategoryOpenProgram,
		RoomCount:      130,
		Status:         original,
		StartDate:      types.MustDay("2026-07-01"),
		EndDate:        types.MustDay("2026-07-05"),
	}
}

func TestExecute_SelfExclusion(t *testing.T) {
	// Запись, занимающая почти весь пул, редактируется на тот же диапазон:
	// её собственный след не должен блокировать замену
	repo := newFakeRepo(seeded(7, 130, domain.StatusConfirmed, "2026-07-01", "2026-07-05"))
	uc := NewUseCase(repo, newPools(t), passTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), updateRequest(7, domain.StatusConfirmed))
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, 130, resp.RoomCount)
}

func TestExecute_PreservesCreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepo(seeded(7, 130, domain.StatusConfirmed, "2026-07-01", "2026-07-05"))
	uc := NewUseCase(repo, newPools(t), passTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), updateRequest(7, domain.StatusConfirmed))
	require.NoError(t, err)
	assert.True(t, resp.CreatedAt.Equal(created))
}

func TestExecute_NotFound(t *testing.T) {
	repo := newFakeRepo(seeded(7, 10, domain.StatusProvisional, "2026-07-01", "2026-07-05"))
	uc := NewUseCase(repo, newPools(t), passTxManager{}, nopLogger{})

	// Неизвестный id
	_, err := uc.Execute(context.Background(), updateRequest(99, domain.StatusConfirmed))
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// Запись есть, но числится в другом уровне
	_, err = uc.Execute(context.Background(), updateRequest(7, domain.StatusConfirmed))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_CapacityExceededLeavesStoreUnchanged(t *testing.T) {
	repo := newFakeRepo(
		seeded(7, 10, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
		seeded(8, 100, domain.StatusConfirmed, "2026-07-01", "2026-07-05"),
	)
	uc := NewUseCase(repo, newPools(t), passTxManager{}, nopLogger{})

	req := updateRequest(7, domain.StatusConfirmed)
	req.RoomCount = 50 // свободно лишь 33 помимо собственного следа

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	capErr := domain.IsCapacityExceeded(err)
	require.NotNil(t, capErr)
	assert.Equal(t, 50, capErr.Requested)
	assert.Equal(t, 33, capErr.MinAvailable)

	// Запись осталась прежней
	assert.Equal(t, 10, repo.reservations[7].RoomCount)
}

func TestExecute_PromotionEvictsProvisional(t *testing.T) {
	// Перевод provisional -> confirmed вытесняет пересекающиеся provisional
	repo := newFakeRepo(
		seeded(7, 20, domain.StatusProvisional, "2026-07-01", "2026-07-05"),
		seeded(8, 10, domain.StatusProvisional, "2026-07-03", "2026-07-08"),
	)
	uc := NewUseCase(repo, newPools(t), passTxManager{}, nopLogger{})

	req := updateRequest(7, domain.StatusProvisional)
	req.RoomCount = 20
	req.Status = domain.StatusConfirmed

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, []int64{8}, resp.EvictedProvisional)
	_, gone := repo.reservations[8]
	assert.False(t, gone)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(newFakeRepo(), newPools(t), passTxManager{}, nopLogger{})

	req := updateRequest(7, domain.StatusConfirmed)
	req.Title = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
