package domain

import "github.com/m04kA/SMC-RoomReservationService/pkg/types"

// Единственное место в сервисе, где считается пересечение бронирований с днями.
// Все компоненты (проверка доступности, поиск слотов, жизненный цикл, аналитика)
// обязаны вызывать эти функции, а не выводить пересечение заново.

// Overlaps проверяет пересечение полуинтервала бронирования [StartDate, EndDate)
// с полуинтервалом [start, endExcl). Касание границ пересечением не считается:
// выезд в день чужого заезда конфликта не создаёт.
func Overlaps(r *Reservation, start, endExcl types.Day) bool {
	return r.StartDate.Before(endExcl) && start.Before(r.EndDate)
}

// DailyOccupancy считает занятые комнаты по дням закрытого диапазона [from, to].
// Для каждого дня суммируется RoomCount всех бронирований, чей полуинтервал
// [StartDate, EndDate) включает этот день. Возвращается плотная карта: дни без
// бронирований присутствуют с нулём.
//
// Чистая функция: без состояния, без I/O, результат определяется только аргументами.
func DailyOccupancy(reservations []*Reservation, from, to types.Day) map[types.Day]int {
	booked := make(map[types.Day]int)
	if to.Before(from) {
		return booked
	}

	for d := from; !d.After(to); d = d.AddDays(1) {
		booked[d] = 0
	}

	for _, r := range reservations {
		// Обрезаем диапазон бронирования до запрошенного окна
		first := r.StartDate
		if first.Before(from) {
			first = from
		}
		last := r.EndDate.AddDays(-1) // последний занятый день
		if last.After(to) {
			last = to
		}
		for d := first; !d.After(last); d = d.AddDays(1) {
			booked[d] += r.RoomCount
		}
	}

	return booked
}

// MinAvailable возвращает минимальную доступность по дням полуинтервала
// [start, endExcl) и карту доступности по дням. Связывающее ограничение —
// всегда худший отдельный день, не среднее.
// При start >= endExcl возвращает (capacity, пустая карта).
func MinAvailable(reservations []*Reservation, start, endExcl types.Day, capacity int) (int, map[types.Day]int) {
	daily := make(map[types.Day]int)
	if !start.Before(endExcl) {
		return capacity, daily
	}

	booked := DailyOccupancy(reservations, start, endExcl.AddDays(-1))

	minAvail := capacity
	for d, count := range booked {
		avail := capacity - count
		daily[d] = avail
		if avail < minAvail {
			minAvail = avail
		}
	}

	return minAvail, daily
}

// FilterByStatus возвращает бронирования указанного уровня
func FilterByStatus(reservations []*Reservation, status ReservationStatus) []*Reservation {
	result := make([]*Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Status == status {
			result = append(result, r)
		}
	}
	return result
}

// ExcludeIDs возвращает бронирования, чьи ID не входят в ids.
// Используется при перепроверке редактируемого бронирования, чтобы оно
// не блокировалось собственным прежним следом.
func ExcludeIDs(reservations []*Reservation, ids []int64) []*Reservation {
	if len(ids) == 0 {
		return reservations
	}

	excluded := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		excluded[id] = struct{}{}
	}

	result := make([]*Reservation, 0, len(reservations))
	for _, r := range reservations {
		if _, skip := excluded[r.ID]; skip {
			continue
		}
		result = append(result, r)
	}
	return result
}
