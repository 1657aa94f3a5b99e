// Package store keeps live bundle sessions in memory, combining LRU eviction
// with sliding TTL expiration so abandoned sessions age out and the resident
// set stays bounded.
package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/bundle-service/internal/metrics"
	"github.com/guttosm/bundle-service/internal/session"
)

// Factory builds the engine for a new session id. GetOrCreate calls it on a
// miss while holding the store lock, so it must not call back into the store.
type Factory func(id string) *session.Engine

// Stats provides store performance counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// Store is a thread-safe session store. Every eviction path, expiry, explicit
// delete, capacity pressure, and shutdown closes the evicted engine so its
// pending timers die with the session.
type Store struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	factory  Factory
	items    map[string]*entry
	head     *entry
	tail     *entry
	stopCh   chan struct{}
	stopOnce sync.Once

	hits      int64
	misses    int64
	evictions int64
}

// entry is a single live session with expiration tracking.
type entry struct {
	id        string
	engine    *session.Engine
	expiresAt time.Time
	prev      *entry
	next      *entry
}

// New creates a session store holding at most capacity sessions, each expiring
// after ttl of inactivity. Any access slides the expiry forward. A ttl of zero
// or less disables expiration. A background goroutine sweeps expired sessions;
// call Stop to shut it down.
func New(capacity int, ttl time.Duration, factory Factory) *Store {
	if capacity < 1 {
		capacity = 1
	}
	s := &Store{
		capacity: capacity,
		ttl:      ttl,
		factory:  factory,
		items:    make(map[string]*entry, capacity),
		stopCh:   make(chan struct{}),
	}
	go s.startCleanup()
	return s
}

// Get returns the live engine for the id, sliding its expiry forward. Expired
// sessions count as misses and are closed on the spot.
func (s *Store) Get(id string) (*session.Engine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.items[id]
	if !ok {
		atomic.AddInt64(&s.misses, 1)
		metrics.RecordSessionOperation("get", "miss")
		return nil, false
	}
	if s.expired(ent) {
		s.removeEntryLocked(ent)
		atomic.AddInt64(&s.misses, 1)
		metrics.RecordSessionOperation("get", "expired")
		metrics.SetActiveSessions(len(s.items))
		return nil, false
	}

	s.touchLocked(ent)
	atomic.AddInt64(&s.hits, 1)
	metrics.RecordSessionOperation("get", "hit")
	return ent.engine, true
}

// GetOrCreate returns the live engine for the id, creating one through the
// factory when none exists. Creation may evict the least recently used session
// once the store is at capacity.
func (s *Store) GetOrCreate(id string) *session.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[id]; ok {
		if !s.expired(ent) {
			s.touchLocked(ent)
			atomic.AddInt64(&s.hits, 1)
			metrics.RecordSessionOperation("get", "hit")
			return ent.engine
		}
		s.removeEntryLocked(ent)
		metrics.RecordSessionOperation("get", "expired")
	}

	atomic.AddInt64(&s.misses, 1)
	ent := &entry{
		id:        id,
		engine:    s.factory(id),
		expiresAt: s.deadline(),
	}
	s.items[id] = ent
	s.addToFrontLocked(ent)

	if len(s.items) > s.capacity {
		s.removeTailLocked()
		atomic.AddInt64(&s.evictions, 1)
		metrics.RecordSessionOperation("evict", "capacity")
	}

	metrics.RecordSessionOperation("create", "success")
	metrics.SetActiveSessions(len(s.items))
	return ent.engine
}

// Delete removes and closes the session. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[id]; ok {
		s.removeEntryLocked(ent)
		metrics.RecordSessionOperation("delete", "success")
		metrics.SetActiveSessions(len(s.items))
	}
}

// Len returns the number of live sessions, expired ones included until the
// next sweep touches them.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes and closes every session and resets the counters.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ent := range s.items {
		ent.engine.Close()
	}
	s.items = make(map[string]*entry, s.capacity)
	s.head = nil
	s.tail = nil

	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.evictions, 0)

	metrics.RecordSessionOperation("clear", "success")
	metrics.SetActiveSessions(0)
}

// Stop shuts down the cleanup goroutine and closes every session. Idempotent.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.Clear()
	})
}

// Stats returns current store counters.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Hits:      atomic.LoadInt64(&s.hits),
		Misses:    atomic.LoadInt64(&s.misses),
		Evictions: atomic.LoadInt64(&s.evictions),
		Size:      len(s.items),
		Capacity:  s.capacity,
	}
}

// startCleanup sweeps expired sessions in the background. The interval tracks
// the TTL for short-lived configurations and never exceeds a minute.
func (s *Store) startCleanup() {
	interval := time.Minute
	if s.ttl > 0 && s.ttl < interval {
		interval = s.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes and closes all expired sessions.
func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, ent := range s.items {
		if s.expired(ent) {
			s.removeEntryLocked(ent)
			metrics.RecordSessionOperation("evict", "expired")
			removed++
		}
	}
	if removed > 0 {
		metrics.SetActiveSessions(len(s.items))
	}
}

// deadline computes the next expiry for a touched entry. The zero time means
// the entry never expires.
func (s *Store) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(s.ttl)
}

func (s *Store) expired(ent *entry) bool {
	return !ent.expiresAt.IsZero() && time.Now().After(ent.expiresAt)
}

// touchLocked slides the expiry forward and marks the entry most recently
// used.
func (s *Store) touchLocked(ent *entry) {
	ent.expiresAt = s.deadline()
	s.moveToFrontLocked(ent)
}

// removeEntryLocked drops the entry from the map and the LRU list and closes
// its engine.
func (s *Store) removeEntryLocked(ent *entry) {
	delete(s.items, ent.id)
	s.removeLocked(ent)
	ent.engine.Close()
}

func (s *Store) moveToFrontLocked(ent *entry) {
	if ent == s.head {
		return
	}
	s.removeLocked(ent)
	s.addToFrontLocked(ent)
}

func (s *Store) addToFrontLocked(ent *entry) {
	ent.prev = nil
	ent.next = s.head
	if s.head != nil {
		s.head.prev = ent
	}
	s.head = ent
	if s.tail == nil {
		s.tail = ent
	}
}

// removeLocked unlinks an entry from the LRU list without touching the map.
func (s *Store) removeLocked(ent *entry) {
	if ent.prev != nil {
		ent.prev.next = ent.next
	} else {
		s.head = ent.next
	}
	if ent.next != nil {
		ent.next.prev = ent.prev
	} else {
		s.tail = ent.prev
	}
}

// removeTailLocked evicts the least recently used session.
func (s *Store) removeTailLocked() {
	if s.tail == nil {
		return
	}
	s.removeEntryLocked(s.tail)
}
