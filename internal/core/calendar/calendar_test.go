package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		// 2026-10-19 is a Monday.
		{name: "monday maps to itself", in: date(2026, 10, 19), want: date(2026, 10, 19)},
		{name: "wednesday", in: date(2026, 10, 21), want: date(2026, 10, 19)},
		{name: "saturday", in: date(2026, 10, 24), want: date(2026, 10, 19)},
		{name: "sunday maps to preceding monday", in: date(2026, 10, 25), want: date(2026, 10, 19)},
		{name: "week crossing month boundary", in: date(2026, 4, 2), want: date(2026, 3, 30)},
		{name: "week crossing year boundary", in: date(2027, 1, 3), want: date(2026, 12, 28)},
		{name: "time of day ignored", in: time.Date(2026, 10, 22, 23, 59, 59, 0, time.UTC), want: date(2026, 10, 19)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WeekStart(tc.in))
		})
	}
}

func TestDayKeyUsesUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 08:00 in Tokyo on the 20th is still the 19th in UTC.
	require.Equal(t, "2026-10-19", DayKey(time.Date(2026, 10, 20, 8, 0, 0, 0, tokyo)))
	require.Equal(t, "2026-10", MonthKey(time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC)))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-03-31")
	require.NoError(t, err)
	require.Equal(t, date(2026, 3, 31), d)
	require.Equal(t, "2026-03-31", DayKey(d))

	for _, bad := range []string{"", "2026-3-31", "2026-02-30", "yesterday"} {
		_, err := ParseDay(bad)
		require.Error(t, err, bad)
	}
}

func TestMonthBoundary(t *testing.T) {
	require.NotEqual(t, MonthKey(date(2026, 3, 31)), MonthKey(date(2026, 4, 1)))
	require.Equal(t, "2026-03", MonthKey(date(2026, 3, 31)))
	require.Equal(t, "2026-04", MonthKey(date(2026, 4, 1)))
}

func TestSpanFor(t *testing.T) {
	sunday := date(2026, 10, 25)

	tests := []struct {
		window Window
		asOf   time.Time
		from   string
		to     string
	}{
		{Daily, sunday, "2026-10-25", "2026-10-25"},
		{Weekly, sunday, "2026-10-19", "2026-10-25"},
		{Monthly, sunday, "2026-10-01", "2026-10-31"},
		{Monthly, date(2028, 2, 10), "2028-02-01", "2028-02-29"},
		{AllTime, sunday, minDayKey, maxDayKey},
	}

	for _, tc := range tests {
		t.Run(string(tc.window), func(t *testing.T) {
			span := SpanFor(tc.window, tc.asOf)
			require.Equal(t, tc.window, span.Window)
			require.Equal(t, tc.from, span.From)
			require.Equal(t, tc.to, span.To)
			require.True(t, span.Contains(DayKey(tc.asOf)))
		})
	}

	week := SpanFor(Weekly, sunday)
	require.True(t, week.Contains("2026-10-19"))
	require.True(t, week.Contains("2026-10-25"))
	require.False(t, week.Contains("2026-10-18"))
	require.False(t, week.Contains("2026-10-26"))
}

func TestParseWindow(t *testing.T) {
	for _, w := range Windows {
		got, err := ParseWindow(string(w))
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
	_, err := ParseWindow("yearly")
	require.Error(t, err)
	_, err = ParseWindow("")
	require.Error(t, err)
}
