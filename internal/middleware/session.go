package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader is the HTTP header name for the bundle session identifier.
	SessionHeader = "X-Bundle-Session"
	// SessionCookie is the cookie fallback for callers that do not send the header.
	SessionCookie = "bundle_session"
)

const (
	// SessionKey is the context key for the bundle session identifier.
	SessionKey ContextKey = "bundle_session_id"
)

// Session returns a middleware that resolves the caller's bundle session id.
// Resolution order: X-Bundle-Session header, bundle_session cookie, then a
// freshly minted UUID v4. The id is echoed on both the response header and
// the cookie so the widget keeps its session across page loads. Setting the
// cookie on every request slides its lifetime alongside the session store's
// TTL.
func Session(cookieMaxAge time.Duration) gin.HandlerFunc {
	maxAge := int(cookieMaxAge.Seconds())
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(string(SessionKey), sessionID)
		c.Header(SessionHeader, sessionID)
		c.SetCookie(SessionCookie, sessionID, maxAge, "/", "", false, true)
		c.Next()
	}
}

// GetSessionID retrieves the bundle session id from the gin context.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(SessionKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
