// Package middleware provides audit logging utilities.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/logger"
)

// AuditLog logs a shopper action for audit purposes.
// This should be used for actions that change what the cart will receive,
// like checkout confirmations and bundle resets.
func AuditLog(c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	log := logger.Logger()
	log.Info().
		Str("request_id", GetRequestID(c)).
		Str("session_id", GetSessionID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("ip", c.ClientIP()).
		Str("user_agent", c.Request.UserAgent()).
		Str("action", actionType).
		Fields(fields).
		Msg(message)
}

// AuditLogError logs a failed shopper action for audit purposes.
func AuditLogError(c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	log := logger.Logger()
	log.Error().
		Err(err).
		Str("request_id", GetRequestID(c)).
		Str("session_id", GetSessionID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("ip", c.ClientIP()).
		Str("user_agent", c.Request.UserAgent()).
		Str("action", actionType).
		Fields(fields).
		Msg(message)
}
