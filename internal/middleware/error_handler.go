package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/domain/dto"
	"github.com/guttosm/bundle-service/internal/i18n"
	"github.com/guttosm/bundle-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// It provides centralized error handling and logging. Domain rejections
// (4xx) log at warn; only server-side failures log at error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := GetRequestID(c)
			locale := i18n.GetLocale(c)

			log := logger.Logger().With().
				Str("request_id", requestID).
				Str("session_id", GetSessionID(c)).
				Str("error", err.Error()).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Logger()

			status := c.Writer.Status()
			if c.Writer.Written() && status < http.StatusInternalServerError {
				log.Warn().Int("status_code", status).Msg("Request rejected")
				return
			}

			log.Error().Msg("Request error")

			if !c.Writer.Written() {
				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
				errorResp := dto.NewError(dto.ErrCodeInternal, message).
					WithRequestID(requestID)
				c.JSON(http.StatusInternalServerError, errorResp)
			}
		}
	}
}
