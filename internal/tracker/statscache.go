package tracker

import (
	"container/list"
	"sync"

	"github.com/aevon-lab/stepboard/internal/core/steps"
)

// statsCache is a thread-safe LRU of computed Stats, one slot per user.
// A slot is only valid for the as-of day it was computed for; every write to
// the user must call Invalidate. Invalidate also bumps the user's generation
// so a computation that raced with a write cannot store its stale result.
type statsCache struct {
	mu       sync.Mutex
	capacity int
	cache    map[string]*list.Element
	order    *list.List
	gens     map[string]uint64
}

type statsCacheEntry struct {
	userID string
	asOf   string
	stats  steps.Stats
}

func newStatsCache(capacity int) *statsCache {
	return &statsCache{
		capacity: capacity,
		cache:    make(map[string]*list.Element),
		order:    list.New(),
		gens:     make(map[string]uint64),
	}
}

// Generation returns the user's current write generation. Capture it before
// reading entries and hand it back to Put.
func (c *statsCache) Generation(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[userID]
}

// Get returns the cached stats for userID when they were computed for asOf.
func (c *statsCache) Get(userID, asOf string) (steps.Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[userID]
	if !ok {
		return steps.Stats{}, false
	}
	entry := elem.Value.(*statsCacheEntry)
	if entry.asOf != asOf {
		return steps.Stats{}, false
	}

	c.order.MoveToFront(elem)
	return entry.stats, true
}

// Put stores stats computed at generation gen, evicting the least recently
// used user if full. Results from an older generation are dropped.
func (c *statsCache) Put(userID, asOf string, gen uint64, stats steps.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[userID] != gen {
		return
	}

	if elem, ok := c.cache[userID]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*statsCacheEntry)
		entry.asOf = asOf
		entry.stats = stats
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.cache, oldest.Value.(*statsCacheEntry).userID)
			c.order.Remove(oldest)
		}
	}

	c.cache[userID] = c.order.PushFront(&statsCacheEntry{userID: userID, asOf: asOf, stats: stats})
}

// Invalidate drops the user's slot.
func (c *statsCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[userID]++
	if elem, ok := c.cache[userID]; ok {
		delete(c.cache, userID)
		c.order.Remove(elem)
	}
}

func (c *statsCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
