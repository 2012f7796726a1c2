package tracker

import "github.com/aevon-lab/stepboard/internal/core/steps"

// Medal markers for leaderboard rows.
const (
	medalGold   = "🥇"
	medalSilver = "🥈"
	medalBronze = "🥉"
	medalRunner = "🏃"
)

// DisplayNamer resolves a user ID to a human readable name.
type DisplayNamer interface {
	DisplayName(userID string) string
}

// ReportRequest is the body of PUT /v1/users/:user_id/steps.
// Day is optional and defaults to today.
type ReportRequest struct {
	Steps *int64 `json:"steps" binding:"required"`
	Day   string `json:"day"`
}

// ResetRequest is the optional body of POST /v1/users/:user_id/steps/reset.
type ResetRequest struct {
	Day string `json:"day"`
}

// UserResponse acknowledges registry changes.
type UserResponse struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// ReportResponse echoes the stored entry.
type ReportResponse struct {
	UserID string `json:"user_id"`
	Day    string `json:"day"`
	Steps  int64  `json:"steps"`
}

// StatsResponse wraps a user's aggregate view.
type StatsResponse struct {
	UserID string `json:"user_id"`
	AsOf   string `json:"as_of"`
	steps.Stats
}

// EntriesResponse lists a user's entries in day order.
type EntriesResponse struct {
	UserID  string        `json:"user_id"`
	Entries []steps.Entry `json:"entries"`
}

// LeaderboardRow is one rendered standing.
type LeaderboardRow struct {
	Rank        int    `json:"rank"` // 1-based
	Medal       string `json:"medal"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Steps       int64  `json:"steps"`
}

// LeaderboardResponse is the body of GET /v1/leaderboard/:window.
type LeaderboardResponse struct {
	Window string           `json:"window"`
	From   string           `json:"from"`
	To     string           `json:"to"`
	AsOf   string           `json:"as_of"`
	Rows   []LeaderboardRow `json:"rows"`
}

func medalFor(position int) string {
	switch position {
	case 0:
		return medalGold
	case 1:
		return medalSilver
	case 2:
		return medalBronze
	default:
		return medalRunner
	}
}
