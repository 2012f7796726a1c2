package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/calendar"
	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/aevon-lab/stepboard/internal/metrics"
)

// Report sets userID's step count for day, replacing any earlier value for
// the same day. Reporting the same value twice leaves the same state.
func (s *Service) Report(ctx context.Context, userID string, day time.Time, count int64) error {
	err := s.report(ctx, userID, day, count)
	metrics.ReportsTotal.WithLabelValues(resultLabel(err)).Inc()
	return err
}

// Reset zeroes userID's count for day. The entry is kept, so the day still
// counts as active.
func (s *Service) Reset(ctx context.Context, userID string, day time.Time) error {
	return s.Report(ctx, userID, day, 0)
}

func (s *Service) report(ctx context.Context, userID string, day time.Time, count int64) error {
	if userID == "" {
		return steps.Invalidf("user id is required")
	}
	if count < 0 {
		return steps.Invalidf("steps must be >= 0, got %d", count)
	}
	if err := s.requireRegistered(ctx, userID); err != nil {
		return err
	}

	entry := steps.Entry{UserID: userID, Day: calendar.DayKey(day), Steps: count}
	if err := s.store.UpsertEntry(ctx, entry); err != nil {
		// A user deleted between the check and the write surfaces here.
		if errors.Is(err, steps.ErrUnknownUser) {
			return steps.ErrUnknownUser
		}
		return s.storageErr("upsert_entry", err)
	}
	s.invalidate(userID)

	slog.Info("Steps reported", "user_id", userID, "day", entry.Day, "steps", count)
	return nil
}

// EntriesFor returns userID's entries ordered by day. Users that never
// reported, including unknown users, get an empty slice.
func (s *Service) EntriesFor(ctx context.Context, userID string) ([]steps.Entry, error) {
	entries, err := s.store.Entries(ctx, userID)
	if err != nil {
		return nil, s.storageErr("entries", err)
	}
	if entries == nil {
		entries = []steps.Entry{}
	}
	return entries, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, steps.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, steps.ErrUnknownUser):
		return "unknown_user"
	default:
		return "storage_error"
	}
}
