package tracker

import (
	"context"
	"strconv"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/calendar"
	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/aevon-lab/stepboard/internal/metrics"
	"github.com/shopspring/decimal"
)

// StatsFor derives userID's aggregate view as of asOf from the full set of
// the user's entries. Output depends only on the entries and asOf.
func (s *Service) StatsFor(ctx context.Context, userID string, asOf time.Time) (steps.Stats, error) {
	if err := s.requireRegistered(ctx, userID); err != nil {
		return steps.Stats{}, err
	}

	if s.cache == nil {
		entries, err := s.store.Entries(ctx, userID)
		if err != nil {
			return steps.Stats{}, s.storageErr("entries", err)
		}
		return Summarize(entries, asOf), nil
	}

	asOfKey := calendar.DayKey(asOf)
	if stats, ok := s.cache.Get(userID, asOfKey); ok {
		metrics.StatsCacheHitsTotal.Inc()
		return stats, nil
	}

	// The generation is read before the entries so a write landing in
	// between makes Put drop the result instead of caching it. It is also
	// part of the flight key: a caller arriving after a write never joins a
	// computation that started before it.
	gen := s.cache.Generation(userID)
	key := userID + "\x00" + asOfKey + "\x00" + strconv.FormatUint(gen, 10)

	// Joined callers share the work, so it must not die with the first
	// caller's request.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.flight.Do(key, func() (interface{}, error) {
		entries, err := s.store.Entries(flightCtx, userID)
		if err != nil {
			return nil, s.storageErr("entries", err)
		}
		stats := Summarize(entries, asOf)
		s.cache.Put(userID, asOfKey, gen, stats)
		return stats, nil
	})
	if err != nil {
		return steps.Stats{}, err
	}
	return v.(steps.Stats), nil
}

// Summarize computes the aggregate view for one user's entries.
func Summarize(entries []steps.Entry, asOf time.Time) steps.Stats {
	today := calendar.DayKey(asOf)
	week := calendar.SpanFor(calendar.Weekly, asOf)
	month := calendar.SpanFor(calendar.Monthly, asOf)

	var st steps.Stats
	for _, e := range entries {
		st.Total += e.Steps
		if e.Day == today {
			st.Today = e.Steps
		}
		if week.Contains(e.Day) {
			st.ThisWeek += e.Steps
		}
		if month.Contains(e.Day) {
			st.ThisMonth += e.Steps
		}
	}

	// A reported zero still counts as an active day.
	st.ActiveDays = len(entries)
	st.AveragePerActiveDay = averagePerDay(st.Total, st.ActiveDays)
	return st
}

// averagePerDay rounds total/days half-up; zero days yields zero.
func averagePerDay(total int64, days int) int64 {
	if days == 0 {
		return 0
	}
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(int64(days))).
		Round(0).
		IntPart()
}
