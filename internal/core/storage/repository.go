package storage

import (
	"context"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/calendar"
	"github.com/aevon-lab/stepboard/internal/core/steps"
)

// Store is the persistence contract the tracker engine depends on.
// Implementations: postgres and sqlite (durable), memory (in-process).
type Store interface {
	// Register records userID. Registering an existing user is a no-op.
	Register(ctx context.Context, userID string, at time.Time) error

	IsRegistered(ctx context.Context, userID string) (bool, error)

	// DeleteUser removes the user and every entry it owns in one atomic step.
	// Deleting an unknown user is a no-op at this layer.
	DeleteUser(ctx context.Context, userID string) error

	// Users returns all registered users ordered by ID.
	Users(ctx context.Context) ([]steps.User, error)

	// UpsertEntry inserts or overwrites the (UserID, Day) entry in a single
	// atomic write. A failed upsert leaves the previous value visible.
	// Returns steps.ErrUnknownUser when the user is not registered.
	UpsertEntry(ctx context.Context, entry steps.Entry) error

	// Entries returns all entries for userID ordered by day ascending.
	Entries(ctx context.Context, userID string) ([]steps.Entry, error)

	// WindowTotals sums steps per user over the span. Users whose sum is zero
	// are omitted. Order is unspecified; ranking happens in the tracker.
	WindowTotals(ctx context.Context, span calendar.Span) ([]steps.Total, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}
