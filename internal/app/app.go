// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/config"
	"github.com/guttosm/bundle-service/internal/http"
)

// InitializeApp creates and wires all application dependencies. The returned
// cleanup stops the background components (session store sweeper, render
// workers); call it after the server exits.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Load the catalog the sessions sell from
	snapshot := InitializeCatalog(cfg.Bundle)

	// Initialize the session store and bundle service
	serviceComponents := InitializeServices(cfg, snapshot)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, cfg)

	router := http.NewRouter(routerComponents.Routes, routerComponents.HealthHandler, routerComponents.Config)
	return router, serviceComponents.Cleanup
}
