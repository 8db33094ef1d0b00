package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

func res(id int64, rooms int, status ReservationStatus, start, end string) *Reservation {
	return &Reservation{
		ID:        id,
		Title:     "Test Program",
		Category:  CategoryOpenProgram,
		RoomCount: rooms,
		Status:    status,
		StartDate: types.MustDay(start),
		EndDate:   types.MustDay(end),
		Pool:      "MDC",
	}
}

func TestOverlaps(t *testing.T) {
	r := res(1, 10, StatusConfirmed, "2026-07-10", "2026-07-15")

	tests := []struct {
		name    string
		start   string
		endExcl string
		want    bool
	}{
		{"полностью внутри", "2026-07-11", "2026-07-13", true},
		{"совпадающий диапазон", "2026-07-10", "2026-07-15", true},
		{"пересечение слева", "2026-07-08", "2026-07-11", true},
		{"пересечение справа", "2026-07-14", "2026-07-20", true},
		{"заезд в день чужого выезда", "2026-07-15", "2026-07-20", false},
		{"выезд в день чужого заезда", "2026-07-05", "2026-07-10", false},
		{"полностью до", "2026-07-01", "2026-07-05", false},
		{"полностью после", "2026-07-20", "2026-07-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(r, types.MustDay(tt.start), types.MustDay(tt.endExcl))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyOccupancy(t *testing.T) {
	reservations := []*Reservation{
		res(1, 40, StatusConfirmed, "2026-07-01", "2026-07-04"), // 1, 2, 3 июля
		res(2, 30, StatusConfirmed, "2026-07-03", "2026-07-06"), // 3, 4, 5 июля
	}

	booked := DailyOccupancy(reservations, types.MustDay("2026-07-01"), types.MustDay("2026-07-05"))

	require.Len(t, booked, 5)
	assert.Equal(t, 40, booked[types.MustDay("2026-07-01")])
	assert.Equal(t, 40, booked[types.MustDay("2026-07-02")])
	assert.Equal(t, 70, booked[types.MustDay("2026-07-03")])
	assert.Equal(t, 30, booked[types.MustDay("2026-07-04")])
	assert.Equal(t, 30, booked[types.MustDay("2026-07-05")])
}

func TestDailyOccupancy_ClipsToWindow(t *testing.T) {
	reservations := []*Reservation{
		res(1, 10, StatusConfirmed, "2026-06-20", "2026-07-10"),
	}

	booked := DailyOccupancy(reservations, types.MustDay("2026-07-01"), types.MustDay("2026-07-02"))

	require.Len(t, booked, 2)
	assert.Equal(t, 10, booked[types.MustDay("2026-07-01")])
	assert.Equal(t, 10, booked[types.MustDay("2026-07-02")])
}

func TestDailyOccupancy_EmptyWindow(t *testing.T) {
	booked := DailyOccupancy(nil, types.MustDay("2026-07-05"), types.MustDay("2026-07-01"))
	assert.Empty(t, booked)
}

func TestMinAvailable(t *testing.T) {
	// Худший день связывает весь диапазон, даже если остальные дни свободнее
	reservations := []*Reservation{
		res(1, 100, StatusConfirmed, "2026-07-01", "2026-07-05"),
		res(2, 30, StatusConfirmed, "2026-07-03", "2026-07-04"), // пик 3 июля
	}

	minAvail, daily := MinAvailable(reservations, types.MustDay("2026-07-01"), types.MustDay("2026-07-05"), 133)

	assert.Equal(t, 3, minAvail)
	require.Len(t, daily, 4)
	assert.Equal(t, 33, daily[types.MustDay("2026-07-01")])
	assert.Equal(t, 3, daily[types.MustDay("2026-07-03")])
	assert.Equal(t, 33, daily[types.MustDay("2026-07-04")])
}

func TestMinAvailable_DegenerateRange(t *testing.T) {
	minAvail, daily := MinAvailable(nil, types.MustDay("2026-07-05"), types.MustDay("2026-07-05"), 60)

	assert.Equal(t, 60, minAvail)
	assert.Empty(t, daily)
}

func TestMinAvailable_Oversubscribed(t *testing.T) {
	// Занятость выше ёмкости даёт отрицательную доступность, не ноль
	reservations := []*Reservation{
		res(1, 50, StatusProvisional, "2026-07-01", "2026-07-03"),
		res(2, 20, StatusProvisional, "2026-07-01", "2026-07-03"),
	}

	minAvail, _ := MinAvailable(reservations, types.MustDay("2026-07-01"), types.MustDay("2026-07-03"), 60)
	assert.Equal(t, -10, minAvail)
}

func TestFilterByStatus(t *testing.T) {
	reservations := []*Reservation{
		res(1, 10, StatusConfirmed, "2026-07-01", "2026-07-03"),
		res(2, 20, StatusProvisional, "2026-07-01", "2026-07-03"),
		res(3, 30, StatusConfirmed, "2026-07-02", "2026-07-04"),
	}

	confirmed := FilterByStatus(reservations, StatusConfirmed)
	require.Len(t, confirmed, 2)
	assert.Equal(t, int64(1), confirmed[0].ID)
	assert.Equal(t, int64(3), confirmed[1].ID)

	provisional := FilterByStatus(reservations, StatusProvisional)
	require.Len(t, provisional, 1)
	assert.Equal(t, int64(2), provisional[0].ID)
}

func TestExcludeIDs(t *testing.T) {
	reservations := []*Reservation{
		res(1, 10, StatusConfirmed, "2026-07-01", "2026-07-03"),
		res(2, 20, StatusProvisional, "2026-07-01", "2026-07-03"),
		res(3, 30, StatusConfirmed, "2026-07-02", "2026-07-04"),
	}

	got := ExcludeIDs(reservations, []int64{2})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	// Пустой список исключений возвращает всё как есть
	assert.Len(t, ExcludeIDs(reservations, nil), 3)
}
