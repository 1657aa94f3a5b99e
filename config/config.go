// Package config provides configuration management for the bundle service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Bundle  BundleConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// BundleConfig holds the discount policy and the widget timing knobs.
type BundleConfig struct {
	// MinItems is the number of distinct products that activates the discount
	// and enables checkout.
	MinItems int
	// DiscountPercent is the percentage taken off the subtotal once active.
	DiscountPercent float64
	// ToggleLatency is the simulated round-trip before a toggle lands. Zero
	// applies toggles inline.
	ToggleLatency time.Duration
	// ReadyDelay is the settling delay between the Proceeding and
	// ReadyForCart button stages.
	ReadyDelay time.Duration
	// CatalogPath optionally points at a JSON catalog file overriding the
	// built-in product list.
	CatalogPath string
}

// SessionConfig holds the in-memory session store configuration.
type SessionConfig struct {
	// TTL is how long an idle session survives; any access slides it forward.
	TTL time.Duration
	// Capacity bounds the number of live sessions before LRU eviction.
	Capacity int
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Bundle: BundleConfig{
			MinItems:        getEnvInt("MIN_BUNDLE_ITEMS", 3),
			DiscountPercent: getEnvFloat("BUNDLE_DISCOUNT_PERCENT", 30),
			ToggleLatency:   getEnvDuration("TOGGLE_LATENCY", 400*time.Millisecond),
			ReadyDelay:      getEnvDuration("READY_DELAY", 1200*time.Millisecond),
			CatalogPath:     getEnv("CATALOG_PATH", ""),
		},
		Session: SessionConfig{
			TTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
			Capacity: getEnvInt("SESSION_CAPACITY", 10000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
