package progress

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// ValidationError reports a malformed value handed to the engine, most
// commonly an unparseable date string. The engine refuses such input at
// the parsing boundary instead of silently deriving wrong dates.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Day is a validated calendar date. Every date string entering the
// engine passes through ParseDay once; the derivation functions then
// operate on Day values and are total.
type Day struct {
	t time.Time
	s string
}

// ParseDay validates an ISO YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, &ValidationError{Field: "date", Value: s, Reason: "expected YYYY-MM-DD"}
	}
	return Day{t: t, s: s}, nil
}

// DayOf converts a time to its calendar day.
func DayOf(t time.Time) Day {
	s := t.Format(dayFormat)
	parsed, _ := time.Parse(dayFormat, s)
	return Day{t: parsed, s: s}
}

// Today returns the current calendar day in local time.
func Today() Day {
	return DayOf(time.Now())
}

func (d Day) String() string { return d.s }

func (d Day) Time() time.Time { return d.t }

func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the day n calendar days away (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.t.AddDate(0, 0, n))
}

// WeekStart returns the Monday beginning the calendar week containing d.
// Monday-start is the week boundary used throughout the engine.
func (d Day) WeekStart() Day {
	offset := (int(d.t.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// DaysSince returns the number of calendar days from other to d.
func (d Day) DaysSince(other Day) int {
	return int(d.t.Sub(other.t).Hours() / 24)
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
