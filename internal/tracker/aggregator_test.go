package tracker

import (
	"testing"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	asOf := time.Date(2026, 10, 21, 18, 45, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name    string
		entries []steps.Entry
		want    steps.Stats
	}{
		{
			name: "no entries",
			want: steps.Stats{},
		},
		{
			name: "today only counts its own day",
			entries: []steps.Entry{
				{UserID: "42", Day: "2026-10-20", Steps: 10},
				{UserID: "42", Day: "2026-10-21", Steps: 20},
			},
			want: steps.Stats{Today: 20, ThisWeek: 30, ThisMonth: 30, Total: 30, AveragePerActiveDay: 15, ActiveDays: 2},
		},
		{
			name: "later days in the same week count toward it",
			entries: []steps.Entry{
				{UserID: "42", Day: "2026-10-25", Steps: 5},
				{UserID: "42", Day: "2026-10-26", Steps: 7},
			},
			want: steps.Stats{ThisWeek: 5, ThisMonth: 12, Total: 12, AveragePerActiveDay: 6, ActiveDays: 2},
		},
		{
			name: "average rounds half up",
			entries: []steps.Entry{
				{UserID: "42", Day: "2026-01-01", Steps: 1},
				{UserID: "42", Day: "2026-01-02", Steps: 2},
			},
			want: steps.Stats{Total: 3, AveragePerActiveDay: 2, ActiveDays: 2},
		},
		{
			name: "average rounds down below half",
			entries: []steps.Entry{
				{UserID: "42", Day: "2026-01-01", Steps: 1},
				{UserID: "42", Day: "2026-01-02", Steps: 1},
				{UserID: "42", Day: "2026-01-03", Steps: 2},
			},
			want: steps.Stats{Total: 4, AveragePerActiveDay: 1, ActiveDays: 3},
		},
		{
			name: "zero entry is still an active day",
			entries: []steps.Entry{
				{UserID: "42", Day: "2026-10-21", Steps: 0},
				{UserID: "42", Day: "2025-12-31", Steps: 1},
			},
			want: steps.Stats{Total: 1, AveragePerActiveDay: 1, ActiveDays: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Summarize(tc.entries, asOf))
		})
	}
}

func TestAveragePerDay(t *testing.T) {
	require.Equal(t, int64(0), averagePerDay(0, 0))
	require.Equal(t, int64(0), averagePerDay(1, 3))
	require.Equal(t, int64(1), averagePerDay(1, 2))
	require.Equal(t, int64(3333), averagePerDay(10000, 3))
	require.Equal(t, int64(6667), averagePerDay(20000, 3))
}
