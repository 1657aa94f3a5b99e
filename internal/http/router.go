package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/metrics"
	"github.com/guttosm/bundle-service/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	SessionTTL        time.Duration
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		SessionTTL: 30 * time.Minute,
	}
}

// NewRouter assembles the gin engine: the global middleware chain, the ops
// endpoints (health, metrics, swagger) and the /api group the bundle routes
// attach to.
func NewRouter(routes RouteGroup, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	useGlobalMiddleware(router, &cfg)
	registerOpsRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	useAPIMiddleware(api, &cfg)
	routes.RegisterRoutes(api)

	return router
}

// useGlobalMiddleware installs the middleware every route shares. Order
// matters: request ids must exist before anything logs, recovers or counts.
func useGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding",
			"Accept-Language", "accept", "Cache-Control", "X-Requested-With",
			middleware.IdempotencyKeyHeader, middleware.RequestIDHeader, middleware.SessionHeader,
		},
		// The widget stores both ids between polls.
		ExposeHeaders:    []string{middleware.RequestIDHeader, middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	// Rate limiting is keyed by session so one aggressive widget cannot
	// starve the rest.
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.SessionRateLimit())
	}
}

// registerOpsRoutes registers health, metrics and documentation endpoints.
// These sit outside /api so they skip session resolution and timeouts.
func registerOpsRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// useAPIMiddleware installs the /api-only chain. Session resolution must run
// before the idempotency guard so replays are scoped to the right shopper.
func useAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Session(cfg.SessionTTL))
	api.Use(middleware.Timeout(middleware.DefaultTimeoutConfig()))

	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}
