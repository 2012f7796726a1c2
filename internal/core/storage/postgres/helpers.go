package postgres

import (
	"database/sql"
	"fmt"

	"github.com/aevon-lab/stepboard/internal/core/steps"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEntryRow scans a (user_id, date, steps) row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEntryRow(row scanner) (steps.Entry, error) {
	var e steps.Entry
	if err := row.Scan(&e.UserID, &e.Day, &e.Steps); err != nil {
		return steps.Entry{}, fmt.Errorf("failed to scan entry row: %w", err)
	}
	return e, nil
}

func scanTotalRow(row scanner) (steps.Total, error) {
	var t steps.Total
	if err := row.Scan(&t.UserID, &t.Steps); err != nil {
		return steps.Total{}, fmt.Errorf("failed to scan total row: %w", err)
	}
	return t, nil
}

func scanUserRow(row scanner) (steps.User, error) {
	var u steps.User
	if err := row.Scan(&u.ID, &u.RegisteredAt); err != nil {
		return steps.User{}, fmt.Errorf("failed to scan user row: %w", err)
	}
	u.RegisteredAt = u.RegisteredAt.UTC()
	return u, nil
}

// collect drains rows through scan, closing rows on return.
func collect[T any](rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}
