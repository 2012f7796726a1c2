package sqlite

// Same table layout as the postgres store, so a steps.db written by either
// deployment reads the same.

const (
	queryRegisterUser = `
		INSERT INTO users (user_id, registered_at)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO NOTHING
	`

	queryIsRegistered = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = ?)`

	queryListUsers = `SELECT user_id, registered_at FROM users ORDER BY user_id ASC`

	queryUpsertEntry = `
		INSERT INTO user_steps (user_id, date, steps)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET steps = excluded.steps
	`

	queryEntries = `SELECT user_id, date, steps FROM user_steps WHERE user_id = ? ORDER BY date ASC`

	queryWindowTotals = `
		SELECT user_id, SUM(steps) AS sum_steps
		FROM user_steps
		WHERE date >= ? AND date <= ?
		GROUP BY user_id
		HAVING SUM(steps) > 0
	`

	queryDeleteEntries = `DELETE FROM user_steps WHERE user_id = ?`
	queryDeleteUser    = `DELETE FROM users WHERE user_id = ?`

	queryValidateSchema = `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name IN ('users', 'user_steps')
	`
)
