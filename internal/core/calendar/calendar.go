package calendar

import (
	"fmt"
	"time"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"

	// Sentinel bounds for the all-time span. Day keys compare lexically.
	minDayKey = "0000-01-01"
	maxDayKey = "9999-12-31"
)

// Window names a leaderboard/aggregation window.
type Window string

const (
	Daily   Window = "daily"
	Weekly  Window = "weekly"
	Monthly Window = "monthly"
	AllTime Window = "all-time"
)

// Windows lists every supported window in display order.
var Windows = []Window{Daily, Weekly, Monthly, AllTime}

// ParseWindow validates a window name coming from a request.
func ParseWindow(s string) (Window, error) {
	switch w := Window(s); w {
	case Daily, Weekly, Monthly, AllTime:
		return w, nil
	}
	return "", fmt.Errorf("invalid window %q (must be daily, weekly, monthly or all-time)", s)
}

// Span is an inclusive [From, To] range of day keys.
type Span struct {
	Window Window
	From   string
	To     string
}

// Contains reports whether dayKey falls inside the span.
func (s Span) Contains(dayKey string) bool {
	return dayKey >= s.From && dayKey <= s.To
}

// Day truncates t to midnight UTC. Every calendar computation goes through
// UTC so that reporting and querying never disagree on day boundaries.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey returns the canonical YYYY-MM-DD key for t.
func DayKey(t time.Time) string {
	return Day(t).Format(dayLayout)
}

// ParseDay parses a YYYY-MM-DD key back into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// WeekStart returns the Monday that opens the ISO week containing t.
// Sunday belongs to the week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	offset := 1 - int(d.Weekday())
	if d.Weekday() == time.Sunday {
		offset = -6
	}
	return d.AddDate(0, 0, offset)
}

// WeekKey is the day key of WeekStart(t).
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(dayLayout)
}

// MonthStart returns the first day of t's calendar month.
func MonthStart(t time.Time) time.Time {
	d := Day(t)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthKey returns the YYYY-MM key for t.
func MonthKey(t time.Time) string {
	return Day(t).Format(monthLayout)
}

// SpanFor resolves the window instance that contains asOf.
func SpanFor(w Window, asOf time.Time) Span {
	switch w {
	case Daily:
		key := DayKey(asOf)
		return Span{Window: w, From: key, To: key}
	case Weekly:
		start := WeekStart(asOf)
		return Span{Window: w, From: start.Format(dayLayout), To: start.AddDate(0, 0, 6).Format(dayLayout)}
	case Monthly:
		start := MonthStart(asOf)
		return Span{Window: w, From: start.Format(dayLayout), To: start.AddDate(0, 1, -1).Format(dayLayout)}
	default:
		return Span{Window: AllTime, From: minDayKey, To: maxDayKey}
	}
}
