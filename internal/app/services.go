// Package app provides service initialization.
package app

import (
	"github.com/guttosm/bundle-service/config"
	"github.com/guttosm/bundle-service/internal/catalog"
	"github.com/guttosm/bundle-service/internal/domain/model"
	"github.com/guttosm/bundle-service/internal/render"
	"github.com/guttosm/bundle-service/internal/service"
	"github.com/guttosm/bundle-service/internal/session"
	"github.com/guttosm/bundle-service/internal/store"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog  *catalog.Snapshot
	Sessions *store.Store
	Bundles  service.BundleService

	sink *render.AsyncSink
}

// InitializeServices initializes the session store and the bundle service on
// top of it. Every new session renders through a shared asynchronous sink so
// view logging never blocks a mutation.
func InitializeServices(cfg config.Config, snapshot *catalog.Snapshot) *ServiceComponents {
	policy := model.DiscountPolicy{
		MinItems: cfg.Bundle.MinItems,
		Percent:  cfg.Bundle.DiscountPercent,
	}
	if err := policy.Validate(); err != nil {
		log.Warn().Err(err).Msg("Invalid discount policy configured - using defaults")
		policy = model.DiscountPolicy{MinItems: 3, Percent: 30}
	}

	sink := render.NewAsyncSink(render.NewLogSink(), render.DefaultAsyncSinkConfig())

	factory := func(id string) *session.Engine {
		return session.NewEngine(snapshot, policy,
			session.WithID(id),
			session.WithRenderSink(sink),
			session.WithToggleLatency(cfg.Bundle.ToggleLatency),
			session.WithReadyDelay(cfg.Bundle.ReadyDelay),
		)
	}

	sessions := store.New(cfg.Session.Capacity, cfg.Session.TTL, factory)
	bundles := service.NewBundleService(snapshot, sessions)

	return &ServiceComponents{
		Catalog:  snapshot,
		Sessions: sessions,
		Bundles:  bundles,
		sink:     sink,
	}
}

// Cleanup stops the background components in dependency order: the store
// first so closing engines can still render, then the sink.
func (s *ServiceComponents) Cleanup() {
	s.Sessions.Stop()
	s.sink.Stop()
}
