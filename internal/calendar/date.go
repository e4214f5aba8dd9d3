// Package calendar holds the date-only key type and the rolling window
// helpers used by the diary, training and dashboard packages. All values
// are civil dates: the time-of-day and zone information is stripped before
// any comparison, so day arithmetic never suffers timezone drift.
package calendar

import (
	"fmt"
	"time"
)

// DayFormat is the wire format for calendar days.
const DayFormat = "2006-01-02"

// Day is a calendar date without a time-of-day component.
// It is comparable and can be used as a map key.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// DayOf reduces a timestamp to its UTC calendar date.
func DayOf(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{Year: y, Month: m, Date: d}
}

// Today returns the current UTC calendar date.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a "yyyy-mm-dd" string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns the day as midnight UTC.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, time.UTC)
}

func (d Day) AddDays(days int) Day {
	return DayOf(d.Time().AddDate(0, 0, days))
}

func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

func (d Day) After(other Day) bool {
	return other.Before(d)
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return d.Time().Format(DayFormat)
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Day{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid day value: %s", s)
	}
	day, err := ParseDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// TrailingRange returns the inclusive bounds of the trailing window of the
// given length ending at ref, e.g. TrailingRange(ref, 7) covers ref-6..ref.
func TrailingRange(ref Day, days int) (from, to Day) {
	return ref.AddDays(-(days - 1)), ref
}

// WeekRange is the trailing 7-day window ending at ref.
func WeekRange(ref Day) (from, to Day) {
	return TrailingRange(ref, 7)
}
