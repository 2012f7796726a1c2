package tracker

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/calendar"
	httperr "github.com/aevon-lab/stepboard/internal/core/errors"
	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all tracker API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	users := r.Group("/v1/users/:user_id")
	users.POST("", s.HandleRegister)
	users.DELETE("", s.HandleDelete)
	users.PUT("/steps", s.HandleReport)
	users.POST("/steps/reset", s.HandleReset)
	users.GET("/stats", s.HandleStats)
	users.GET("/entries", s.HandleEntries)

	r.GET("/v1/leaderboard/:window", s.HandleLeaderboard)
}

// HandleRegister handles POST /v1/users/:user_id
func (s *Service) HandleRegister(c *gin.Context) {
	userID := c.Param("user_id")
	if err := s.Register(c.Request.Context(), userID); err != nil {
		writeError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusOK, UserResponse{UserID: userID, Status: "registered"})
}

// HandleDelete handles DELETE /v1/users/:user_id
func (s *Service) HandleDelete(c *gin.Context) {
	userID := c.Param("user_id")
	if err := s.DeleteUser(c.Request.Context(), userID); err != nil {
		writeError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, UserResponse{UserID: userID, Status: "deleted"})
}

// HandleReport handles PUT /v1/users/:user_id/steps
// Body: {"steps": N, "day": "YYYY-MM-DD"}
func (s *Service) HandleReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
			Details:   err.Error(),
		})
		return
	}

	day, err := dayOrDefault(req.Day, s.nowFn())
	if err != nil {
		writeError(c, err, "Invalid day")
		return
	}

	userID := c.Param("user_id")
	if err := s.Report(c.Request.Context(), userID, day, *req.Steps); err != nil {
		writeError(c, err, "Failed to report steps")
		return
	}
	c.JSON(http.StatusOK, ReportResponse{UserID: userID, Day: calendar.DayKey(day), Steps: *req.Steps})
}

// HandleReset handles POST /v1/users/:user_id/steps/reset
// The body is optional; without one today's entry is reset.
func (s *Service) HandleReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
			Details:   err.Error(),
		})
		return
	}

	day, err := dayOrDefault(req.Day, s.nowFn())
	if err != nil {
		writeError(c, err, "Invalid day")
		return
	}

	userID := c.Param("user_id")
	if err := s.Reset(c.Request.Context(), userID, day); err != nil {
		writeError(c, err, "Failed to reset steps")
		return
	}
	c.JSON(http.StatusOK, ReportResponse{UserID: userID, Day: calendar.DayKey(day), Steps: 0})
}

// HandleStats handles GET /v1/users/:user_id/stats
// Query parameters: as_of (YYYY-MM-DD, default today)
func (s *Service) HandleStats(c *gin.Context) {
	asOf, err := dayOrDefault(c.Query("as_of"), s.nowFn())
	if err != nil {
		writeError(c, err, "Invalid as_of")
		return
	}

	userID := c.Param("user_id")
	stats, err := s.StatsFor(c.Request.Context(), userID, asOf)
	if err != nil {
		writeError(c, err, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, StatsResponse{UserID: userID, AsOf: calendar.DayKey(asOf), Stats: stats})
}

// HandleEntries handles GET /v1/users/:user_id/entries
func (s *Service) HandleEntries(c *gin.Context) {
	userID := c.Param("user_id")
	entries, err := s.EntriesFor(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, EntriesResponse{UserID: userID, Entries: entries})
}

// HandleLeaderboard handles GET /v1/leaderboard/:window
// Query parameters: as_of (YYYY-MM-DD, default today)
func (s *Service) HandleLeaderboard(c *gin.Context) {
	window, err := calendar.ParseWindow(c.Param("window"))
	if err != nil {
		writeError(c, steps.Invalidf("%v", err), "Unknown leaderboard window")
		return
	}

	asOf, err := dayOrDefault(c.Query("as_of"), s.nowFn())
	if err != nil {
		writeError(c, err, "Invalid as_of")
		return
	}

	standings, err := s.Rank(c.Request.Context(), window, asOf)
	if err != nil {
		writeError(c, err, "Failed to build leaderboard")
		return
	}

	span := calendar.SpanFor(window, asOf)
	resp := LeaderboardResponse{
		Window: string(window),
		From:   span.From,
		To:     span.To,
		AsOf:   calendar.DayKey(asOf),
		Rows:   make([]LeaderboardRow, len(standings)),
	}
	for i, st := range standings {
		resp.Rows[i] = LeaderboardRow{
			Rank:        st.Position + 1,
			Medal:       medalFor(st.Position),
			UserID:      st.UserID,
			DisplayName: s.names.DisplayName(st.UserID),
			Steps:       st.Steps,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// dayOrDefault parses a day key, falling back to now's day when raw is empty.
func dayOrDefault(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return calendar.Day(now), nil
	}
	day, err := calendar.ParseDay(raw)
	if err != nil {
		return time.Time{}, steps.Invalidf("day %q must be YYYY-MM-DD", raw)
	}
	return day, nil
}

// writeError maps engine errors onto the API error envelope.
func writeError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	errorType := httperr.HttpInternalError

	switch {
	case errors.Is(err, steps.ErrInvalidInput):
		status, errorType = http.StatusBadRequest, httperr.HttpInvalidInputError
	case errors.Is(err, steps.ErrUnknownUser):
		status, errorType = http.StatusNotFound, httperr.HttpUnknownUserError
	case errors.Is(err, steps.ErrStorageUnavailable):
		status, errorType = http.StatusServiceUnavailable, httperr.HttpStorageUnavailableError
		slog.Error(message, "error", err, "path", c.FullPath())
	default:
		slog.Error(message, "error", err, "path", c.FullPath())
	}

	c.JSON(status, httperr.ErrorResponse{
		ErrorType: errorType,
		Message:   message,
		Details:   err.Error(),
	})
}
