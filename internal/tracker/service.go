package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/aevon-lab/stepboard/internal/core/storage"
	"github.com/aevon-lab/stepboard/internal/metrics"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultLeaderboardLimit is the number of standings Rank returns.
	DefaultLeaderboardLimit = 10
	defaultCacheCapacity    = 1000
)

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	LeaderboardLimit int

	// CacheEnabled turns on the stats cache. Invalidation only sees writes
	// made through this Service, so leave it off when the store is shared.
	CacheEnabled  bool
	CacheCapacity int

	// Names renders leaderboard display names. Nil falls back to "User <id>".
	Names DisplayNamer
}

// Service is the step tracking engine: user registry, step ledger,
// aggregator and leaderboard ranker over a single storage.Store.
type Service struct {
	store  storage.Store
	cache  *statsCache // nil when caching is disabled
	flight singleflight.Group
	limit  int
	names  DisplayNamer
	nowFn  func() time.Time
}

// NewService creates the engine. The store is owned by the caller and must
// outlive the service.
func NewService(store storage.Store, opts Options) *Service {
	if store == nil {
		panic("tracker: store must not be nil")
	}
	if opts.LeaderboardLimit <= 0 {
		opts.LeaderboardLimit = DefaultLeaderboardLimit
	}

	if opts.Names == nil {
		opts.Names = fallbackNames{}
	}

	s := &Service{
		store: store,
		limit: opts.LeaderboardLimit,
		names: opts.Names,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
	if opts.CacheEnabled {
		capacity := opts.CacheCapacity
		if capacity <= 0 {
			capacity = defaultCacheCapacity
		}
		s.cache = newStatsCache(capacity)
	}
	return s
}

// Ping checks the storage backend.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// requireRegistered maps "not registered" to ErrUnknownUser.
func (s *Service) requireRegistered(ctx context.Context, userID string) error {
	if userID == "" {
		return steps.Invalidf("user id is required")
	}
	ok, err := s.store.IsRegistered(ctx, userID)
	if err != nil {
		return s.storageErr("is_registered", err)
	}
	if !ok {
		return steps.ErrUnknownUser
	}
	return nil
}

func (s *Service) storageErr(op string, err error) error {
	metrics.StorageErrorsTotal.WithLabelValues(op).Inc()
	return steps.StorageErr(op, err)
}

func (s *Service) invalidate(userID string) {
	if s.cache != nil {
		s.cache.Invalidate(userID)
	}
}

type fallbackNames struct{}

func (fallbackNames) DisplayName(userID string) string {
	return fmt.Sprintf("User %s", userID)
}
