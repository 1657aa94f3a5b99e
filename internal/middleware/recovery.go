package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/domain/dto"
	"github.com/guttosm/bundle-service/internal/logger"
)

// Recovery returns a middleware that converts panics into 500 responses.
// The panic value and stack are logged with the request identifier so a
// crashing toggle or confirm can be traced back to the exact call.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log := logger.Logger()
				log.Error().
					Str("request_id", GetRequestID(c)).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("PANIC recovered")

				resp := dto.NewError(dto.ErrCodeInternal, "An unexpected error occurred").
					WithRequestID(GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
