package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupHealthRouter(handler *HealthHandler) *gin.Engine {
	router := gin.New()
	handler.Register(router)
	return router
}

func TestLiveness(t *testing.T) {
	router := setupHealthRouter(NewHealthHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*HealthHandler)
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no checkers registered",
			setup:          func(h *HealthHandler) {},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy checker",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("catalog", HealthCheckFunc(func() error { return nil }))
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"catalog": "ok"},
		},
		{
			name: "failing checker",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("catalog", HealthCheckFunc(func() error {
					return errors.New("catalog is empty")
				}))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"catalog": "catalog is empty"},
		},
		{
			name: "one failing checker degrades the whole probe",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("catalog", HealthCheckFunc(func() error { return nil }))
				h.RegisterChecker("sessions", HealthCheckFunc(func() error {
					return errors.New("store stopped")
				}))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"catalog": "ok", "sessions": "store stopped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler()
			tt.setup(handler)
			router := setupHealthRouter(handler)

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &body)
			assert.NoError(t, err)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body["status"])
			} else {
				assert.Equal(t, "degraded", body["status"])
			}

			checks, ok := body["checks"].(map[string]interface{})
			assert.True(t, ok)
			assert.Equal(t, tt.expectedChecks, checks)
		})
	}
}
