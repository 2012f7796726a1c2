package tracker

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httperr "github.com/aevon-lab/stepboard/internal/core/errors"
	storagemocks "github.com/aevon-lab/stepboard/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticNames map[string]string

func (n staticNames) DisplayName(userID string) string {
	if name, ok := n[userID]; ok {
		return name
	}
	return "User " + userID
}

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func do(t *testing.T, r http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHandler_ReportAndStats(t *testing.T) {
	svc := newMemoryService(t, Options{})
	r := newTestRouter(svc)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/v1/users/42", "").Code)

	resp := do(t, r, http.MethodPut, "/v1/users/42/steps", `{"steps":1000,"day":"2026-10-19"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	// Day defaults to today (2026-10-20).
	resp = do(t, r, http.MethodPut, "/v1/users/42/steps", `{"steps":2000}`)
	require.Equal(t, http.StatusOK, resp.Code)
	var reported ReportResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reported))
	require.Equal(t, "2026-10-20", reported.Day)

	resp = do(t, r, http.MethodGet, "/v1/users/42/stats", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "2026-10-20", body["as_of"])
	require.EqualValues(t, 2000, body["today"])
	require.EqualValues(t, 3000, body["this_week"])
	require.EqualValues(t, 1500, body["average_per_active_day"])
	require.EqualValues(t, 2, body["active_days"])

	resp = do(t, r, http.MethodGet, "/v1/users/42/stats?as_of=2026-10-19", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.EqualValues(t, 1000, body["today"])
}

func TestHandler_ResetAndEntries(t *testing.T) {
	svc := newMemoryService(t, Options{})
	r := newTestRouter(svc)

	do(t, r, http.MethodPost, "/v1/users/42", "")
	do(t, r, http.MethodPut, "/v1/users/42/steps", `{"steps":1000}`)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/v1/users/42/steps/reset", "").Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/v1/users/42/steps/reset", `{"day":"2026-10-01"}`).Code)

	resp := do(t, r, http.MethodGet, "/v1/users/42/entries", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var entries EntriesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entries))
	require.Len(t, entries.Entries, 2)
	require.Equal(t, "2026-10-01", entries.Entries[0].Day)
	require.Equal(t, int64(0), entries.Entries[1].Steps)
}

func TestHandler_Leaderboard(t *testing.T) {
	svc := newMemoryService(t, Options{Names: staticNames{"1": "Ada", "2": "Grace"}})
	r := newTestRouter(svc)

	for id, n := range map[string]string{"1": "300", "2": "500", "3": "100", "4": "200"} {
		do(t, r, http.MethodPost, "/v1/users/"+id, "")
		do(t, r, http.MethodPut, "/v1/users/"+id+"/steps", `{"steps":`+n+`}`)
	}

	resp := do(t, r, http.MethodGet, "/v1/leaderboard/weekly", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var board LeaderboardResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &board))
	require.Equal(t, "weekly", board.Window)
	require.Equal(t, "2026-10-19", board.From)
	require.Equal(t, "2026-10-25", board.To)
	require.Equal(t, []LeaderboardRow{
		{Rank: 1, Medal: "🥇", UserID: "2", DisplayName: "Grace", Steps: 500},
		{Rank: 2, Medal: "🥈", UserID: "1", DisplayName: "Ada", Steps: 300},
		{Rank: 3, Medal: "🥉", UserID: "4", DisplayName: "User 4", Steps: 200},
		{Rank: 4, Medal: "🏃", UserID: "3", DisplayName: "User 3", Steps: 100},
	}, board.Rows)

	resp = do(t, r, http.MethodGet, "/v1/leaderboard/daily?as_of=2026-10-19", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &board))
	require.Empty(t, board.Rows)
}

func TestHandler_ErrorMapping(t *testing.T) {
	svc := newMemoryService(t, Options{})
	r := newTestRouter(svc)
	do(t, r, http.MethodPost, "/v1/users/42", "")

	tests := []struct {
		name           string
		method         string
		url            string
		body           string
		expectedStatus int
		expectedType   string
	}{
		{"unknown user report", http.MethodPut, "/v1/users/7/steps", `{"steps":5}`, http.StatusNotFound, httperr.HttpUnknownUserError},
		{"unknown user stats", http.MethodGet, "/v1/users/7/stats", "", http.StatusNotFound, httperr.HttpUnknownUserError},
		{"unknown user delete", http.MethodDelete, "/v1/users/7", "", http.StatusNotFound, httperr.HttpUnknownUserError},
		{"negative steps", http.MethodPut, "/v1/users/42/steps", `{"steps":-5}`, http.StatusBadRequest, httperr.HttpInvalidInputError},
		{"missing steps", http.MethodPut, "/v1/users/42/steps", `{"day":"2026-10-19"}`, http.StatusBadRequest, httperr.HttpInvalidJsonError},
		{"malformed json", http.MethodPut, "/v1/users/42/steps", `{"steps":`, http.StatusBadRequest, httperr.HttpInvalidJsonError},
		{"malformed day", http.MethodPut, "/v1/users/42/steps", `{"steps":5,"day":"19/10/2026"}`, http.StatusBadRequest, httperr.HttpInvalidInputError},
		{"malformed as_of", http.MethodGet, "/v1/users/42/stats?as_of=yesterday", "", http.StatusBadRequest, httperr.HttpInvalidInputError},
		{"unknown window", http.MethodGet, "/v1/leaderboard/yearly", "", http.StatusBadRequest, httperr.HttpInvalidInputError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, r, tc.method, tc.url, tc.body)
			if resp.Code != tc.expectedStatus {
				t.Logf("unexpected response body: %s", resp.Body.String())
			}
			require.Equal(t, tc.expectedStatus, resp.Code)

			var errResp httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
			require.Equal(t, tc.expectedType, errResp.ErrorType)
		})
	}
}

func TestHandler_StorageUnavailable(t *testing.T) {
	store := storagemocks.NewStore(t)
	svc := NewService(store, Options{})
	r := newTestRouter(svc)

	store.EXPECT().IsRegistered(mock.Anything, "42").Return(false, errors.New("connection refused")).Once()

	resp := do(t, r, http.MethodGet, "/v1/users/42/stats", "")
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpStorageUnavailableError, errResp.ErrorType)
}

func TestHandler_DeleteUser(t *testing.T) {
	svc := newMemoryService(t, Options{})
	r := newTestRouter(svc)

	do(t, r, http.MethodPost, "/v1/users/42", "")
	do(t, r, http.MethodPut, "/v1/users/42/steps", `{"steps":10}`)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/v1/users/42", "").Code)
	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/v1/users/42/stats", "").Code)

	resp := do(t, r, http.MethodGet, "/v1/leaderboard/all-time", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var board LeaderboardResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &board))
	require.Empty(t, board.Rows)
}
