package steps

import "time"

// User is a participant known to the registry.
type User struct {
	ID           string
	RegisteredAt time.Time
}

// Entry is one user's step count for one calendar day.
// At most one Entry exists per (UserID, Day); a second report overwrites it.
type Entry struct {
	UserID string `json:"user_id"`
	Day    string `json:"day"` // YYYY-MM-DD, see calendar.DayKey
	Steps  int64  `json:"steps"`
}

// Stats is the aggregate view of one user's entries as of a given day.
// It is derived on demand and never persisted.
type Stats struct {
	Today               int64 `json:"today"`
	ThisWeek            int64 `json:"this_week"`
	ThisMonth           int64 `json:"this_month"`
	Total               int64 `json:"total"`
	AveragePerActiveDay int64 `json:"average_per_active_day"`
	ActiveDays          int   `json:"active_days"`
}

// Total is a per-user sum over a span, as returned by storage range reads.
type Total struct {
	UserID string
	Steps  int64
}

// Standing is one row of a leaderboard. Position is 0-based and stable for a
// given store state and as-of day.
type Standing struct {
	Position int    `json:"position"`
	UserID   string `json:"user_id"`
	Steps    int64  `json:"steps"`
}
