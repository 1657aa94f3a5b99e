// Package middleware provides HTTP middleware components for the bundle service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header carrying the request identifier.
	RequestIDHeader = "X-Request-ID"

	// maxRequestIDLength bounds inbound identifiers so log lines and audit
	// entries stay readable; anything longer is replaced with a minted one.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for the request identifier.
	RequestIDKey ContextKey = "request_id"
)

// RequestID returns a middleware that tags every request with an identifier.
// A client-supplied X-Request-ID is kept when it is reasonably sized so
// callers can correlate widget calls with their own traces; otherwise a
// fresh UUID v4 is minted. The identifier is stored in the context and
// echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request identifier from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
