package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/calendar"
	"github.com/aevon-lab/stepboard/internal/core/steps"
)

// userRecord holds one user's entries sorted by day, plus week and month
// buckets materialized from them. Buckets are rebuilt from entries whenever a
// write touches them, never adjusted by delta.
type userRecord struct {
	registeredAt time.Time
	entries      []steps.Entry
	weeks        map[string]int64 // keyed by calendar.WeekKey
	months       map[string]int64 // keyed by the month's first day key
}

// Store is an in-memory implementation of storage.Store.
// Useful for single-process deployments and tests.
type Store struct {
	mu    sync.RWMutex
	users map[string]*userRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{users: make(map[string]*userRecord)}
}

func (s *Store) Register(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[userID]; exists {
		return nil
	}
	s.users[userID] = &userRecord{
		registeredAt: at.UTC(),
		weeks:        make(map[string]int64),
		months:       make(map[string]int64),
	}
	return nil
}

func (s *Store) IsRegistered(_ context.Context, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) DeleteUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The record owns its entries, so one delete removes both.
	delete(s.users, userID)
	return nil
}

func (s *Store) Users(_ context.Context) ([]steps.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]steps.User, 0, len(s.users))
	for id, rec := range s.users {
		out = append(out, steps.User{ID: id, RegisteredAt: rec.registeredAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpsertEntry(_ context.Context, entry steps.Entry) error {
	day, err := calendar.ParseDay(entry.Day)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[entry.UserID]
	if !ok {
		return steps.ErrUnknownUser
	}

	i := sort.Search(len(rec.entries), func(i int) bool { return rec.entries[i].Day >= entry.Day })
	if i < len(rec.entries) && rec.entries[i].Day == entry.Day {
		rec.entries[i].Steps = entry.Steps
	} else {
		rec.entries = append(rec.entries, steps.Entry{})
		copy(rec.entries[i+1:], rec.entries[i:])
		rec.entries[i] = entry
	}

	rec.recomputeWeek(day)
	rec.recomputeMonth(day)

	slog.Debug("[Memory] Upserted entry",
		"user_id", entry.UserID,
		"day", entry.Day,
		"steps", entry.Steps)
	return nil
}

func (s *Store) Entries(_ context.Context, userID string) ([]steps.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	out := make([]steps.Entry, len(rec.entries))
	copy(out, rec.entries)
	return out, nil
}

func (s *Store) WindowTotals(_ context.Context, span calendar.Span) ([]steps.Total, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []steps.Total
	for id, rec := range s.users {
		if sum := rec.sumFor(span); sum > 0 {
			out = append(out, steps.Total{UserID: id, Steps: sum})
		}
	}
	return out, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

// sumFor reads the materialized bucket matching span when there is one and
// falls back to summing entries otherwise.
func (r *userRecord) sumFor(span calendar.Span) int64 {
	switch span.Window {
	case calendar.Weekly:
		return r.weeks[span.From]
	case calendar.Monthly:
		return r.months[span.From]
	}
	return r.sumRange(span.From, span.To)
}

func (r *userRecord) sumRange(from, to string) int64 {
	lo := sort.Search(len(r.entries), func(i int) bool { return r.entries[i].Day >= from })
	var sum int64
	for _, e := range r.entries[lo:] {
		if e.Day > to {
			break
		}
		sum += e.Steps
	}
	return sum
}

func (r *userRecord) recomputeWeek(day time.Time) {
	span := calendar.SpanFor(calendar.Weekly, day)
	r.weeks[span.From] = r.sumRange(span.From, span.To)
}

func (r *userRecord) recomputeMonth(day time.Time) {
	span := calendar.SpanFor(calendar.Monthly, day)
	r.months[span.From] = r.sumRange(span.From, span.To)
}
