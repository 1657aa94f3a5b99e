package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/domain/dto"
	"github.com/guttosm/bundle-service/internal/i18n"
	"github.com/guttosm/bundle-service/internal/logger"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the ceiling for request processing. It must stay above the
	// configured toggle latency, which intentionally delays responses.
	Timeout time.Duration
	// ErrorMessage is the fallback message when no translator is installed.
	ErrorMessage string
}

// DefaultTimeoutConfig returns sensible defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout returns a middleware that answers 504 when the rest of the chain
// does not finish in time. The handler keeps running in its goroutine; the
// finished flag and Written check keep the two sides from both answering.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		var finished atomic.Bool
		done := make(chan struct{})

		go func() {
			defer func() {
				if p := recover(); p != nil {
					log := logger.Logger()
					log.Error().
						Str("request_id", GetRequestID(c)).
						Interface("panic", p).
						Bytes("stack", debug.Stack()).
						Msg("PANIC recovered in timed handler")

					if !finished.Load() && !c.Writer.Written() {
						resp := dto.NewError(dto.ErrCodeInternal, "An unexpected error occurred").
							WithRequestID(GetRequestID(c))
						c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
					}
				}
				close(done)
			}()
			c.Next()
			finished.Store(true)
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			if finished.Load() || c.Writer.Written() {
				return
			}

			message := cfg.ErrorMessage
			if translator := i18n.GetTranslator(); translator != nil {
				message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			}

			resp := dto.NewError(dto.ErrCodeTimeout, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, resp)
		}
	}
}

// TimeoutWithDuration creates a timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
