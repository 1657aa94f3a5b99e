// Package app provides router configuration.
package app

import (
	"errors"

	"github.com/guttosm/bundle-service/config"
	"github.com/guttosm/bundle-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        *http.BundleRoutes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.Config) *RouterComponents {
	routes := http.NewBundleRoutes(services.Bundles)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", http.HealthCheckFunc(func() error {
		if services.Catalog.Len() == 0 {
			return errors.New("catalog is empty")
		}
		return nil
	}))

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		SessionTTL:        cfg.Session.TTL,
	}

	return &RouterComponents{
		Routes:        routes,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
