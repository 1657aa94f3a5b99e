package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bundle-service/internal/domain/dto"
)

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Request timeout", cfg.ErrorMessage)
}

func timedRouter(cfg TimeoutConfig, register func(router *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Timeout(cfg))
	register(router)
	return router
}

func TestTimeout_CompletesInTime(t *testing.T) {
	tests := []struct {
		name         string
		handlerDelay time.Duration
	}{
		{name: "instant handler", handlerDelay: 0},
		{name: "handler slower than a toggle latency", handlerDelay: 20 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := timedRouter(TimeoutConfig{Timeout: time.Second, ErrorMessage: "timeout"}, func(router *gin.Engine) {
				router.GET("/bundle", func(c *gin.Context) {
					if tt.handlerDelay > 0 {
						time.Sleep(tt.handlerDelay)
					}
					c.Status(http.StatusOK)
				})
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bundle", nil))

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestTimeout_SlowHandlerGets504(t *testing.T) {
	router := timedRouter(TimeoutConfig{Timeout: 30 * time.Millisecond, ErrorMessage: "timeout"}, func(router *gin.Engine) {
		router.GET("/slow", func(c *gin.Context) {
			// Overruns the ceiling and deliberately writes nothing; the
			// middleware owns the response at that point.
			time.Sleep(150 * time.Millisecond)
		})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeTimeout)

	// Let the stray handler goroutine wind down before the next test.
	time.Sleep(150 * time.Millisecond)
}

func TestTimeout_PanicInTimedHandler(t *testing.T) {
	router := timedRouter(DefaultTimeoutConfig(), func(router *gin.Engine) {
		router.POST("/bundle/confirm", func(c *gin.Context) {
			panic("checkout handover failed")
		})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bundle/confirm", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeInternal)
}

func TestTimeout_ContextHasDeadline(t *testing.T) {
	hasDeadline := false
	router := timedRouter(TimeoutConfig{Timeout: time.Second, ErrorMessage: "timeout"}, func(router *gin.Engine) {
		router.GET("/bundle", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bundle", nil))

	assert.True(t, hasDeadline, "handlers must observe the deadline")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeoutWithDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TimeoutWithDuration(250 * time.Millisecond))
	router.GET("/bundle", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bundle", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
