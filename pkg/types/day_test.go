package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay_TruncatesToUTCMidnight(t *testing.T) {
	d := NewDay(time.Date(2026, 7, 15, 23, 45, 12, 0, time.UTC))

	assert.Equal(t, "2026-07-15", d.String())
	assert.Equal(t, time.UTC, d.Time().Location())
	assert.Equal(t, 0, d.Time().Hour())
}

func TestNewDay_ConvertsToUTCFirst(t *testing.T) {
	// Момент времени сначала переводится в UTC, затем отбрасывается время:
	// вечер 15-го в UTC-4 — это уже 16-е по UTC
	d := NewDay(time.Date(2026, 7, 15, 23, 45, 0, 0, time.FixedZone("EDT", -4*3600)))
	assert.Equal(t, "2026-07-16", d.String())
}

func TestNewDayFromString(t *testing.T) {
	d, err := NewDayFromString("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", d.String())

	_, err = NewDayFromString("28.02.2026")
	assert.Error(t, err)

	_, err = NewDayFromString("")
	assert.Error(t, err)
}

func TestDay_Arithmetic(t *testing.T) {
	d := MustDay("2026-02-27")

	assert.Equal(t, "2026-03-01", d.AddDays(2).String()) // 2026 не високосный
	assert.Equal(t, "2026-02-26", d.AddDays(-1).String())
	assert.Equal(t, 2, d.DaysUntil(MustDay("2026-03-01")))
	assert.Equal(t, -1, d.DaysUntil(MustDay("2026-02-26")))
}

func TestDay_Comparisons(t *testing.T) {
	a := MustDay("2026-07-01")
	b := MustDay("2026-07-02")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(MustDay("2026-07-01")))
	assert.False(t, a.Before(a))
}

func TestDay_JSON(t *testing.T) {
	d := MustDay("2026-07-15")

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2026-07-15"`, string(data))

	var parsed Day
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.True(t, d.Equal(parsed))
}

func TestDay_Scan(t *testing.T) {
	var d Day
	require.NoError(t, d.Scan(time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-07-15", d.String())
}
