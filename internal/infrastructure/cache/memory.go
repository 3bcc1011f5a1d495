package cache

import (
	"context"
	"sync"
	"time"
)

// MemorySummaryCache is the in-process fallback used when Redis is not
// available. It holds the single summary payload with an expiry.
type MemorySummaryCache struct {
	mu       sync.RWMutex
	payload  []byte
	expireAt time.Time
	ttl      time.Duration
}

// NewMemorySummaryCache creates an in-memory summary cache
func NewMemorySummaryCache(ttl time.Duration) *MemorySummaryCache {
	return &MemorySummaryCache{ttl: ttl}
}

// Get returns the cached payload if present and not expired
func (c *MemorySummaryCache) Get(_ context.Context) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.payload == nil || time.Now().After(c.expireAt) {
		return nil, false
	}
	return c.payload, true
}

// Set stores the payload with the configured TTL
func (c *MemorySummaryCache) Set(_ context.Context, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.payload = payload
	c.expireAt = time.Now().Add(c.ttl)
}

// Invalidate drops the cached payload
func (c *MemorySummaryCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.payload = nil
}
