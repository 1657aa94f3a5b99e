// Package middleware provides HTTP middleware components for the bundle service.
package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks responses served from the replay cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a response stays replayable.
	IdempotencyKeyTTL = 5 * time.Minute
)

// replayedResponse is a response retained for replay within the TTL.
type replayedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig holds configuration for the idempotency middleware.
type IdempotencyConfig struct {
	Cache   *replayCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newReplayCache(IdempotencyKeyTTL),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency returns a middleware that deduplicates mutating requests
// carrying an Idempotency-Key header. A repeat of a request already answered
// replays the retained response instead of mutating the bundle again, so a
// retried confirm cannot hand the same bundle to the cart twice.
//
// Replay entries are scoped to the caller's session: shoppers reusing the
// same client-generated key never see each other's responses.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if !mutating(c.Request.Method) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := replayKey(callerIdentity(c), key, c.Request)

		if prev, ok := cfg.Cache.Get(cacheKey); ok {
			for k, v := range prev.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(prev.StatusCode, "application/json", prev.Body)
			c.Abort()
			return
		}

		writer := &replayRecorder{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
			headers:        make(map[string]string),
		}
		c.Writer = writer

		c.Next()

		// Only successful outcomes are worth replaying; a rejected toggle or
		// confirm stays retryable.
		if writer.statusCode >= 200 && writer.statusCode < 300 {
			cfg.Cache.Set(cacheKey, &replayedResponse{
				StatusCode: writer.statusCode,
				Headers:    writer.headers,
				Body:       writer.body.Bytes(),
			})
		}
	}
}

// mutating reports whether the method can change bundle state.
func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// replayKey derives the cache key for one logical request: the caller's
// session, the client key, and the request shape. The body participates so a
// reused key with a different payload counts as a distinct request.
func replayKey(session, key string, req *http.Request) string {
	hasher := sha256.New()
	hasher.Write([]byte(session))
	hasher.Write([]byte{0})
	hasher.Write([]byte(key))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// replayRecorder captures the response for replay.
type replayRecorder struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	headers    map[string]string
}

func (w *replayRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *replayRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *replayRecorder) Header() http.Header {
	headers := w.ResponseWriter.Header()
	for k, v := range headers {
		if len(v) > 0 {
			w.headers[k] = v[0]
		}
	}
	return headers
}
