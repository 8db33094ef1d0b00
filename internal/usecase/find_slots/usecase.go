package find_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// UseCase use case поиска свободных слотов фиксированной длины в окне дат
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

// Execute перебирает кандидатов [start, start+nights) от earliestCheckIn с шагом
// в один день, пока выезд не выходит за latestCheckOut, и возвращает всех,
// у кого минимум свободных комнат по дням не меньше запрошенного.
//
// Все кандидаты считаются по одному снимку хранилища: каждый возвращённый слот
// проходит проверку доступности с теми же параметрами на тот же момент времени.
// Снимок best-effort: конкурентная запись может занять слот до того, как
// вызывающий им воспользуется, поэтому после выбора слота нужно сразу создавать
// бронирование, а не доверять слоту бесконечно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindSlots: validation failed: %v", err)
		return nil, err
	}

	pool, err := uc.pools.Get(req.Pool)
	if err != nil {
		if errors.Is(err, domain.ErrPoolNotFound) {
			uc.logger.Warn("FindSlots: pool %q not found", req.Pool)
			return nil, fmt.Errorf("%w: %q", ErrPoolNotFound, req.Pool)
		}
		return nil, fmt.Errorf("%w: resolve pool: %v", ErrInternal, err)
	}

	if isDegenerate(req) {
		uc.logger.Info("FindSlots: degenerate request (nights=%d, window=[%s, %s)), returning no slots",
			req.Nights, req.EarliestCheckIn, req.LatestCheckOut)
		return &Response{Pool: pool.Name, Slots: []Slot{}}, nil
	}

	uc.logger.Info("FindSlots: pool=%s, window=[%s, %s), nights=%d, rooms=%d",
		pool.Name, req.EarliestCheckIn, req.LatestCheckOut, req.Nights, req.RequestedRooms)

	// Один снимок всех бронирований окна на оба уровня
	reservations, err := uc.reservationRepo.ListOverlapping(ctx, pool.Name, req.EarliestCheckIn, req.LatestCheckOut, nil)
	if err != nil {
		uc.logger.Error("FindSlots: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0)

	for start := req.EarliestCheckIn; ; start = start.AddDays(1) {
		end := start.AddDays(req.Nights)
		if end.After(req.LatestCheckOut) {
			break
		}

		minAvailable, _ := domain.MinAvailable(reservations, start, end, pool.Capacity)
		if minAvailable >= req.RequestedRooms {
			slots = append(slots, Slot{
				Start:        start,
				End:          end,
				MinAvailable: minAvailable,
			})
		}
	}

	uc.logger.Info("FindSlots: pool=%s, found %d slots", pool.Name, len(slots))

	return &Response{Pool: pool.Name, Slots: slots}, nil
}
