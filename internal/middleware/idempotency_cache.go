package middleware

import (
	"sync"
	"time"
)

// replayCache retains successful responses for idempotent replay until their
// TTL passes. Keys are derived per session and request, see replayKey.
type replayCache struct {
	mu    sync.RWMutex
	items map[string]*replayedResponse
	ttl   time.Duration
}

// newReplayCache creates a replay cache that sweeps expired entries once a minute.
func newReplayCache(ttl time.Duration) *replayCache {
	c := &replayCache{
		items: make(map[string]*replayedResponse),
		ttl:   ttl,
	}
	go c.sweep()
	return c
}

// Get returns the retained response for key when it is still fresh.
func (c *replayCache) Get(key string) (*replayedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set retains a response, stamping it with the current time.
func (c *replayCache) Set(key string, resp *replayedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = time.Now()
	c.items[key] = resp
}

// Len reports the number of retained entries, fresh or expired.
func (c *replayCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *replayCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.evictExpired()
	}
}

// evictExpired drops entries older than the TTL.
func (c *replayCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
