package tracker

import (
	"context"
	"sort"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/calendar"
	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/aevon-lab/stepboard/internal/metrics"
)

// Rank returns the leaderboard for the window instance containing asOf.
// Users with no steps in the window are left out entirely. Ties on steps are
// broken by user ID ascending so the order never depends on storage
// iteration order.
func (s *Service) Rank(ctx context.Context, window calendar.Window, asOf time.Time) ([]steps.Standing, error) {
	if _, err := calendar.ParseWindow(string(window)); err != nil {
		return nil, steps.Invalidf("%v", err)
	}

	totals, err := s.store.WindowTotals(ctx, calendar.SpanFor(window, asOf))
	if err != nil {
		return nil, s.storageErr("window_totals", err)
	}
	metrics.LeaderboardQueriesTotal.WithLabelValues(string(window)).Inc()

	return rankTotals(totals, s.limit), nil
}

func rankTotals(totals []steps.Total, limit int) []steps.Standing {
	ranked := make([]steps.Total, 0, len(totals))
	for _, t := range totals {
		if t.Steps > 0 {
			ranked = append(ranked, t)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Steps != ranked[j].Steps {
			return ranked[i].Steps > ranked[j].Steps
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	standings := make([]steps.Standing, len(ranked))
	for i, t := range ranked {
		standings[i] = steps.Standing{Position: i, UserID: t.UserID, Steps: t.Steps}
	}
	return standings
}
