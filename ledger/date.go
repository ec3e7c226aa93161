package ledger

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date (ledger rows carry no time of day)
// =============================================================================

// Date is a calendar date. The zero value sorts before every real date,
// which Reconcile relies on as its defined fallback ordering.
type Date struct {
	t time.Time
}

// DateFormat is the wire and export format for dates.
const DateFormat = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Value: s, Err: ErrInvalidDate}
	}
	return Date{t: t}, nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

func (d Date) String() string {
	return d.t.Format(DateFormat)
}

// =============================================================================
// MONTH ROLLOVER
// =============================================================================

// NextMonth advances the date by one calendar month, keeping the
// day-of-month. If that day does not exist in the target month the day
// clamps to the target month's last valid day (Jan 31 -> Feb 28/29).
// The clamp is sticky: advancing the clamped result again advances the
// clamped day, it does not snap back to the original day.
func (d Date) NextMonth() Date {
	year, month := d.Year(), d.Month()
	if month == time.December {
		year, month = year+1, time.January
	} else {
		month++
	}
	day := d.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfMonth returns the last calendar day of the date's month.
func (d Date) EndOfMonth() Date {
	return NewDate(d.Year(), d.Month(), DaysInMonth(d.Year(), d.Month()))
}
