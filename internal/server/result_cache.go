package server

import (
	"sync"
	"time"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// resultCache is the explicit per-county cache the reconciliation call is
// handed; the engine itself never caches. A nil cache disables caching.
type resultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cachedResult
}

type cachedResult struct {
	result    types.CountyComparisonResult
	expiresAt time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	if ttl <= 0 {
		return nil
	}
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cachedResult),
	}
}

func (c *resultCache) get(key string, now time.Time) (types.CountyComparisonResult, bool) {
	if c == nil {
		return types.CountyComparisonResult{}, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return types.CountyComparisonResult{}, false
	}
	if entry.expiresAt.After(now) {
		return entry.result, true
	}
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return types.CountyComparisonResult{}, false
}

func (c *resultCache) put(key string, r types.CountyComparisonResult, now time.Time) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries[key] = cachedResult{result: r, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()
}
