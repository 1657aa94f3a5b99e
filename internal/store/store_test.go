package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/bundle-service/internal/catalog"
	"github.com/guttosm/bundle-service/internal/domain/model"
	"github.com/guttosm/bundle-service/internal/session"
)

func newTestStore(t *testing.T, capacity int, ttl time.Duration) *Store {
	t.Helper()

	snapshot, err := catalog.NewSnapshot([]model.Product{
		{ID: 1, Title: "Nourishing Shampoo", Price: 10.00},
		{ID: 2, Title: "Repair Conditioner", Price: 20.00},
	})
	require.NoError(t, err)

	policy := model.DiscountPolicy{MinItems: 3, Percent: 30}
	s := New(capacity, ttl, func(id string) *session.Engine {
		return session.NewEngine(snapshot, policy,
			session.WithID(id),
			session.WithToggleLatency(0),
			session.WithReadyDelay(0),
		)
	})
	t.Cleanup(s.Stop)
	return s
}

func TestStore_GetOrCreate(t *testing.T) {
	s := newTestStore(t, 10, time.Minute)

	first := s.GetOrCreate("sess-1")
	require.NotNil(t, first)
	assert.Equal(t, "sess-1", first.ID())
	assert.Equal(t, 1, s.Len())

	second := s.GetOrCreate("sess-1")
	assert.Same(t, first, second, "same id should return the same engine")
	assert.Equal(t, 1, s.Len())

	other := s.GetOrCreate("sess-2")
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, s.Len())
}

func TestStore_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupStore    func(t *testing.T) *Store
		id            string
		expectedFound bool
	}{
		{
			name: "returns engine when session exists",
			setupStore: func(t *testing.T) *Store {
				s := newTestStore(t, 10, time.Minute)
				s.GetOrCreate("sess-1")
				return s
			},
			id:            "sess-1",
			expectedFound: true,
		},
		{
			name: "returns false when session unknown",
			setupStore: func(t *testing.T) *Store {
				return newTestStore(t, 10, time.Minute)
			},
			id:            "sess-missing",
			expectedFound: false,
		},
		{
			name: "returns false when session expired",
			setupStore: func(t *testing.T) *Store {
				s := newTestStore(t, 10, 50*time.Millisecond)
				s.GetOrCreate("sess-1")
				time.Sleep(100 * time.Millisecond)
				return s
			},
			id:            "sess-1",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupStore(t)
			engine, found := s.Get(tt.id)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.NotNil(t, engine)
			} else {
				assert.Nil(t, engine)
			}
		})
	}
}

func TestStore_ExpiredSessionIsClosed(t *testing.T) {
	s := newTestStore(t, 10, 50*time.Millisecond)

	engine := s.GetOrCreate("sess-1")
	time.Sleep(100 * time.Millisecond)

	_, found := s.Get("sess-1")
	assert.False(t, found)
	assert.True(t, engine.Closed(), "expired engine should be closed")
	assert.Equal(t, 0, s.Len())
}

func TestStore_GetOrCreateReplacesExpired(t *testing.T) {
	s := newTestStore(t, 10, 50*time.Millisecond)

	first := s.GetOrCreate("sess-1")
	require.NoError(t, first.Toggle(1))
	time.Sleep(100 * time.Millisecond)

	second := s.GetOrCreate("sess-1")
	assert.NotSame(t, first, second, "expired engine should be replaced")
	assert.True(t, first.Closed())
	assert.Equal(t, 0, second.Projection().Size, "fresh session starts empty")
}

func TestStore_SlidingTTL(t *testing.T) {
	s := newTestStore(t, 10, 200*time.Millisecond)

	s.GetOrCreate("sess-1")

	// Touch the session before it expires; the access slides the deadline.
	time.Sleep(120 * time.Millisecond)
	_, found := s.Get("sess-1")
	require.True(t, found)

	// Past the original deadline but within the slid one.
	time.Sleep(120 * time.Millisecond)
	_, found = s.Get("sess-1")
	assert.True(t, found, "access should have extended the session lifetime")
}

func TestStore_CapacityEviction(t *testing.T) {
	s := newTestStore(t, 2, time.Minute)

	first := s.GetOrCreate("sess-1")
	s.GetOrCreate("sess-2")
	s.GetOrCreate("sess-3")

	_, ok1 := s.Get("sess-1")
	_, ok2 := s.Get("sess-2")
	_, ok3 := s.Get("sess-3")

	assert.False(t, ok1, "least recently used session should be evicted")
	assert.True(t, ok2)
	assert.True(t, ok3)
	assert.True(t, first.Closed(), "evicted engine should be closed")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, int64(1), s.Stats().Evictions)
}

func TestStore_AccessRefreshesLRUOrder(t *testing.T) {
	s := newTestStore(t, 3, time.Minute)

	s.GetOrCreate("sess-1")
	s.GetOrCreate("sess-2")
	s.GetOrCreate("sess-3")

	// Touch sess-1 so sess-2 becomes the LRU.
	_, found := s.Get("sess-1")
	require.True(t, found)

	s.GetOrCreate("sess-4")

	_, ok1 := s.Get("sess-1")
	_, ok2 := s.Get("sess-2")
	_, ok3 := s.Get("sess-3")
	_, ok4 := s.Get("sess-4")

	assert.True(t, ok1, "recently accessed session should survive")
	assert.False(t, ok2, "least recently used session should be evicted")
	assert.True(t, ok3)
	assert.True(t, ok4)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t, 10, time.Minute)

	engine := s.GetOrCreate("sess-1")
	s.Delete("sess-1")

	_, found := s.Get("sess-1")
	assert.False(t, found)
	assert.True(t, engine.Closed(), "deleted engine should be closed")

	// Unknown id is a no-op.
	assert.NotPanics(t, func() {
		s.Delete("sess-missing")
	})
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t, 10, time.Minute)

	first := s.GetOrCreate("sess-1")
	second := s.GetOrCreate("sess-2")

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.True(t, first.Closed())
	assert.True(t, second.Closed())

	stats := s.Stats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, int64(0), stats.Evictions)
}

func TestStore_Stop(t *testing.T) {
	s := newTestStore(t, 10, time.Minute)
	engine := s.GetOrCreate("sess-1")

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
	assert.True(t, engine.Closed(), "stop should close live engines")
	assert.Equal(t, 0, s.Len())
}

func TestStore_Cleanup(t *testing.T) {
	s := newTestStore(t, 10, 50*time.Millisecond)

	first := s.GetOrCreate("sess-1")
	second := s.GetOrCreate("sess-2")

	time.Sleep(100 * time.Millisecond)
	s.cleanup()

	assert.Equal(t, 0, s.Len())
	assert.True(t, first.Closed())
	assert.True(t, second.Closed())
}

func TestStore_Stats(t *testing.T) {
	s := newTestStore(t, 10, time.Minute)

	s.GetOrCreate("sess-1") // miss + create
	s.GetOrCreate("sess-1") // hit
	s.Get("sess-1")         // hit
	s.Get("sess-2")         // miss

	stats := s.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 10, stats.Capacity)
}

func TestStore_ClampsCapacity(t *testing.T) {
	s := newTestStore(t, 0, time.Minute)

	s.GetOrCreate("sess-1")
	s.GetOrCreate("sess-2")

	assert.Equal(t, 1, s.Len(), "capacity below one is clamped to one")
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	s := newTestStore(t, 10, 0)

	s.GetOrCreate("sess-1")
	time.Sleep(50 * time.Millisecond)
	s.cleanup()

	_, found := s.Get("sess-1")
	assert.True(t, found)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := newTestStore(t, 100, time.Minute)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 10; j++ {
				id := fmt.Sprintf("sess-%d-%d", n, j)
				engine := s.GetOrCreate(id)
				_ = engine.Toggle(1)
				s.Get(id)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Greater(t, s.Len(), 0)
}
