package postgres

// SQL for the durable step ledger. user_steps is the single source of truth;
// every aggregate is recomputed from it per request.

const (
	// queryRegisterUser is idempotent: re-registering keeps the first timestamp.
	queryRegisterUser = `
		INSERT INTO users (user_id, registered_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`

	queryIsRegistered = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`

	queryListUsers = `
		SELECT user_id, registered_at
		FROM users
		ORDER BY user_id ASC
	`

	// queryUpsertEntry overwrites (never accumulates) the day's value in one
	// statement, so concurrent writers cannot lose an update between a read
	// and a write.
	queryUpsertEntry = `
		INSERT INTO user_steps (user_id, date, steps)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET steps = EXCLUDED.steps
	`

	queryEntries = `
		SELECT user_id, date, steps
		FROM user_steps
		WHERE user_id = $1
		ORDER BY date ASC
	`

	// queryWindowTotals sums an inclusive day-key range. Keys are YYYY-MM-DD
	// so text comparison matches date order.
	queryWindowTotals = `
		SELECT user_id, SUM(steps)::BIGINT AS sum_steps
		FROM user_steps
		WHERE date >= $1 AND date <= $2
		GROUP BY user_id
		HAVING SUM(steps) > 0
	`

	// Cascade delete runs both statements in one transaction. The foreign key
	// also cascades; deleting entries first keeps the intent explicit.
	queryDeleteEntries = `DELETE FROM user_steps WHERE user_id = $1`
	queryDeleteUser    = `DELETE FROM users WHERE user_id = $1`

	queryValidateSchema = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name IN ('users', 'user_steps')
	`
)
