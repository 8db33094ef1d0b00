package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DayFormat формат календарного дня (YYYY-MM-DD)
const DayFormat = "2006-01-02"

// Day календарный день, нормализованный к полуночи UTC.
// Все даты заездов и выездов приводятся к этому типу на границе системы,
// чтобы расчёты занятости не зависели от локальных часовых поясов вызывающих.
type Day struct {
	t time.Time
}

// NewDay создает Day из произвольного времени.
// Время сначала переводится в UTC, затем отбрасывается всё, кроме даты.
func NewDay(t time.Time) Day {
	u := t.UTC()
	return Day{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// NewDayFromString парсит день из строки формата YYYY-MM-DD
func NewDayFromString(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day format %q: %w", s, err)
	}
	return NewDay(t), nil
}

// MustDay парсит день из строки, паникует при ошибке. Только для тестов и констант.
func MustDay(s string) Day {
	d, err := NewDayFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time возвращает момент полуночи UTC этого дня
func (d Day) Time() time.Time {
	return d.t
}

// String возвращает день в формате YYYY-MM-DD
func (d Day) String() string {
	return d.t.Format(DayFormat)
}

// IsZero возвращает true для нулевого значения Day
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Before возвращает true, если d раньше other
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// After возвращает true, если d позже other
func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

// Equal возвращает true, если d и other один и тот же день
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// AddDays возвращает день через n дней (n может быть отрицательным)
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil возвращает количество дней от d до other.
// Отрицательное значение, если other раньше d.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Value реализует driver.Valuer для записи в БД
func (d Day) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan реализует sql.Scanner для чтения из БД
func (d *Day) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDay(v)
		return nil
	case []byte:
		parsed, err := NewDayFromString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := NewDayFromString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into types.Day", src)
	}
}

// MarshalJSON сериализует день как строку YYYY-MM-DD
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON парсит день из строки YYYY-MM-DD
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid day json: %s", s)
	}
	parsed, err := NewDayFromString(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
