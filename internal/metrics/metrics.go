package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ReportsTotal counts step reports by outcome (ok, unknown_user, invalid_input, storage_error).
	ReportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stepboard_reports_total",
		Help: "Step reports and resets processed, by result.",
	}, []string{"result"})

	LeaderboardQueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stepboard_leaderboard_queries_total",
		Help: "Leaderboard queries served, by window.",
	}, []string{"window"})

	StorageErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stepboard_storage_errors_total",
		Help: "Failures returned by the storage backend, by operation.",
	}, []string{"op"})

	StatsCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stepboard_stats_cache_hits_total",
		Help: "Stats requests answered from the cache.",
	})

	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stepboard_request_duration_seconds",
		Help:    "HTTP handler duration by route.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route"})
)

// MustRegister registers every collector on reg.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		ReportsTotal,
		LeaderboardQueriesTotal,
		StorageErrorsTotal,
		StatsCacheHitsTotal,
		RequestDurationSeconds,
	)
}
