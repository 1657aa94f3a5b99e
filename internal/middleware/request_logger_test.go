//go:build !integration

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the global logger into a buffer for the duration of
// the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	original := zlog.Logger
	zlog.Logger = zerolog.New(buf)
	t.Cleanup(func() { zlog.Logger = original })
	return buf
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		statusCode    int
		expectedLevel string
	}{
		{
			name:          "successful request logs info",
			statusCode:    http.StatusOK,
			expectedLevel: "info",
		},
		{
			name:          "client error logs warn",
			statusCode:    http.StatusBadRequest,
			expectedLevel: "warn",
		},
		{
			name:          "server error logs error",
			statusCode:    http.StatusInternalServerError,
			expectedLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			router := gin.New()
			router.Use(RequestID())
			router.Use(RequestLogger())
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, "/test", entry["path"])
			assert.Equal(t, float64(tt.statusCode), entry["status_code"])
			assert.NotEmpty(t, entry["request_id"])
			assert.Contains(t, entry, "duration_ms")
			assert.Contains(t, entry, "response_bytes")
			assert.Contains(t, entry, "ip")
		})
	}
}

// Probe endpoints answer every few seconds; their happy-path lines are
// demoted to debug so shopper traffic stays readable at info. Failures
// must keep their level.
func TestRequestLogger_ProbePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{
			name:      "healthy liveness probe is demoted",
			path:      "/healthz",
			status:    http.StatusOK,
			wantLevel: "debug",
		},
		{
			name:      "metrics scrape is demoted",
			path:      "/metrics",
			status:    http.StatusOK,
			wantLevel: "debug",
		},
		{
			name:      "failing readiness probe stays at error",
			path:      "/readyz",
			status:    http.StatusServiceUnavailable,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			router := gin.New()
			router.Use(RequestID())
			router.Use(RequestLogger())
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestRequestLogger_IncludesHandlerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/bundle", func(c *gin.Context) {
		_ = c.Error(errors.New("session store unavailable"))
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/bundle", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["errors"], "session store unavailable")
}

// The logger runs in the after phase, so it sees the session id even though
// session resolution is registered later in the chain.
func TestRequestLogger_CapturesSessionID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(Session(time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(SessionHeader, "log-session")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "log-session", entry["session_id"])
}
