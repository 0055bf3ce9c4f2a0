package period

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Period is a calendar year-month, the granularity every deduction in the
// system is keyed on ("2026-03").
type Period struct {
	Year  int
	Month time.Month
}

const layout = "2006-01"

// Parse parses a "YYYY-MM" string.
func Parse(s string) (Period, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// FromMonthYear builds a period from separate month/year integers.
func FromMonthYear(month, year int) Period {
	return Period{Year: year, Month: time.Month(month)}
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Valid reports whether the period names a real calendar month.
func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= time.January && p.Month <= time.December
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Time returns midnight on the first day of the period, UTC.
func (p Period) Time() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the period n months after p. n may be negative.
func (p Period) AddMonths(n int) Period {
	t := p.Time().AddDate(0, n, 0)
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) Equal(o Period) bool {
	return p.Year == o.Year && p.Month == o.Month
}

func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// MonthsBetween returns the number of whole calendar months elapsed from
// `from` to `to`, decremented when the day-of-month has not yet been reached,
// and floored at zero.
func MonthsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())

	total := years*12 + months
	if to.Day() < from.Day() {
		total--
	}
	if total < 0 {
		total = 0
	}
	return total
}

// MarshalText / UnmarshalText make Period usable as a JSON string.

func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value / Scan store the period as its "YYYY-MM" text form.

func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *Period) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case []byte:
		return p.Scan(string(v))
	case time.Time:
		*p = Of(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into period.Period", src)
	}
}
