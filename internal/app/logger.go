// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/guttosm/bundle-service/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL and
// LOG_PRETTY. An unset or unrecognized level lands on info.
func InitializeLogger() {
	pretty := os.Getenv("LOG_PRETTY") == "true" || os.Getenv("LOG_PRETTY") == "1"
	logger.Init(os.Getenv("LOG_LEVEL"), pretty)
}
