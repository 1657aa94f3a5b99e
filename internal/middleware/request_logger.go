package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/bundle-service/internal/logger"
)

// probePaths are logged at debug level when they succeed. Liveness checks
// and metric scrapes arrive every few seconds and would drown out the
// shopper traffic that matters.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// RequestLogger logs one structured line per request: request and session
// ids, method, path, status, duration, response size, client IP and user
// agent. Errors attached to the context by handlers are included when present.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()

		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("session_id", GetSessionID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("response_bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			if _, quiet := probePaths[path]; quiet {
				event = log.Debug()
			} else {
				event = log.Info()
			}
		}

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.Msg("HTTP request")
	}
}
