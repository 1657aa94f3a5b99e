package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/domain/dto"
	"github.com/guttosm/bundle-service/internal/i18n"
)

// defaultShardCount is how many locks the caller map is split across.
const defaultShardCount = 16

// caller is one throttled identity's remaining budget in the current window.
type caller struct {
	remaining   int
	windowStart time.Time
}

// limiterShard owns a slice of the caller map under its own lock.
type limiterShard struct {
	mu      sync.Mutex
	callers map[string]*caller
}

// ShardedRateLimiter enforces a fixed-window request budget per caller.
// Callers are spread across shards by FNV hash so a burst of concurrent
// sessions does not serialize on a single lock.
type ShardedRateLimiter struct {
	shards     []*limiterShard
	shardCount int
	rate       int
	window     time.Duration
	retryAfter string
	stopCh     chan struct{}
}

// NewRateLimiter builds a limiter allowing rate requests per window,
// with the default shard count.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultShardCount)
}

// NewShardedRateLimiter builds a limiter with an explicit shard count and
// starts the janitor that drops callers whose window has long closed.
func NewShardedRateLimiter(rate int, window time.Duration, shardCount int) *ShardedRateLimiter {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}

	shards := make([]*limiterShard, shardCount)
	for i := range shards {
		shards[i] = &limiterShard{callers: make(map[string]*caller)}
	}

	// Retry-After must be whole seconds on the wire; round sub-second
	// windows up rather than telling the client to retry immediately.
	seconds := int64((window + time.Second - 1) / time.Second)

	rl := &ShardedRateLimiter{
		shards:     shards,
		shardCount: shardCount,
		rate:       rate,
		window:     window,
		retryAfter: strconv.FormatInt(seconds, 10),
		stopCh:     make(chan struct{}),
	}

	go rl.janitor()
	return rl
}

// SessionRateLimit throttles requests per caller: the bundle session when one
// is presented, the client IP otherwise. Every response carries X-RateLimit
// headers so the widget can back off before hitting the ceiling.
func (rl *ShardedRateLimiter) SessionRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.take(callerIdentity(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", rl.retryAfter)
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			resp := dto.NewError(dto.ErrCodeRateLimit, msg).WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
			return
		}

		c.Next()
	}
}

// take spends one request from the caller's budget. A caller seen for the
// first time, or one whose window has closed, starts a fresh window.
func (rl *ShardedRateLimiter) take(identity string) (allowed bool, remaining int) {
	shard := rl.shardFor(identity)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	cl, ok := shard.callers[identity]
	if !ok || now.Sub(cl.windowStart) > rl.window {
		shard.callers[identity] = &caller{remaining: rl.rate - 1, windowStart: now}
		return true, rl.rate - 1
	}

	if cl.remaining <= 0 {
		return false, 0
	}

	cl.remaining--
	return true, cl.remaining
}

func (rl *ShardedRateLimiter) shardFor(identity string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(identity))
	return rl.shards[h.Sum32()%uint32(rl.shardCount)]
}

// janitor evicts idle callers once per minute until Stop is called.
func (rl *ShardedRateLimiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle removes callers whose window closed more than a full window ago.
// Anyone still shopping simply re-enters on their next request.
func (rl *ShardedRateLimiter) evictIdle() {
	now := time.Now()
	idle := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for identity, cl := range shard.callers {
			if now.Sub(cl.windowStart) > idle {
				delete(shard.callers, identity)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop terminates the janitor goroutine.
func (rl *ShardedRateLimiter) Stop() {
	close(rl.stopCh)
}

// Stats reports how many callers are currently tracked, in total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, rl.shardCount)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.callers)
		total += perShard[i]
		shard.mu.Unlock()
	}
	return total, perShard
}

// callerIdentity returns the session id if the caller presented one,
// otherwise the IP address. Rate limiting runs ahead of session resolution,
// so the header and cookie are read directly and no id is ever minted here;
// idempotency keys use the same identity so replays stay per shopper.
func callerIdentity(c *gin.Context) string {
	if sessionID := GetSessionID(c); sessionID != "" {
		return "session:" + sessionID
	}
	if sessionID := c.GetHeader(SessionHeader); sessionID != "" {
		return "session:" + sessionID
	}
	if sessionID, err := c.Cookie(SessionCookie); err == nil && sessionID != "" {
		return "session:" + sessionID
	}
	return "ip:" + c.ClientIP()
}
