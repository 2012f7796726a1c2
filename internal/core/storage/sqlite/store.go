package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/calendar"
	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/mattn/go-sqlite3"
)

// Store implements storage.Store on a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path. Foreign keys
// are switched on so the user_steps → users cascade is enforced.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite serializes writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("SQLite database ping failed: %w", err)
	}

	slog.Info("[SQLite] Opened database", "path", path)
	return &Store{db: db}, nil
}

// NewStore wraps an already-open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ValidateSchema checks that migrations have created both ledger tables.
func (s *Store) ValidateSchema(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, queryValidateSchema).Scan(&n); err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	if n < 2 {
		return fmt.Errorf("users/user_steps tables do not exist - did you run migrations?")
	}
	return nil
}

func (s *Store) Register(ctx context.Context, userID string, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, queryRegisterUser, userID, at.UTC()); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

func (s *Store) IsRegistered(ctx context.Context, userID string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, queryIsRegistered, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return exists, nil
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete user: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, queryDeleteEntries, userID); err != nil {
		return fmt.Errorf("delete user: delete entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, queryDeleteUser, userID); err != nil {
		return fmt.Errorf("delete user: delete user row: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete user: commit: %w", err)
	}

	slog.Info("[SQLite] Deleted user", "user_id", userID)
	return nil
}

func (s *Store) Users(ctx context.Context) ([]steps.User, error) {
	rows, err := s.db.QueryContext(ctx, queryListUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var out []steps.User
	for rows.Next() {
		var u steps.User
		if err := rows.Scan(&u.ID, &u.RegisteredAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		u.RegisteredAt = u.RegisteredAt.UTC()
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) UpsertEntry(ctx context.Context, entry steps.Entry) error {
	if _, err := s.db.ExecContext(ctx, queryUpsertEntry, entry.UserID, entry.Day, entry.Steps); err != nil {
		if isForeignKeyViolation(err) {
			return steps.ErrUnknownUser
		}
		return fmt.Errorf("failed to upsert entry: %w", err)
	}
	slog.Debug("[SQLite] Upserted entry", "user_id", entry.UserID, "day", entry.Day, "steps", entry.Steps)
	return nil
}

func (s *Store) Entries(ctx context.Context, userID string) ([]steps.Entry, error) {
	rows, err := s.db.QueryContext(ctx, queryEntries, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var out []steps.Entry
	for rows.Next() {
		var e steps.Entry
		if err := rows.Scan(&e.UserID, &e.Day, &e.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) WindowTotals(ctx context.Context, span calendar.Span) ([]steps.Total, error) {
	rows, err := s.db.QueryContext(ctx, queryWindowTotals, span.From, span.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query window totals: %w", err)
	}
	defer rows.Close()

	var out []steps.Total
	for rows.Next() {
		var t steps.Total
		if err := rows.Scan(&t.UserID, &t.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan total row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB returns the underlying handle for migrations.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	slog.Info("[SQLite] Store closed")
	return nil
}

// isForeignKeyViolation reports whether err is the user_steps -> users FK
// rejecting an entry for a user that no longer exists.
func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
