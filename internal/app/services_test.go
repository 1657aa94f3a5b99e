//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/bundle-service/config"
	"github.com/guttosm/bundle-service/internal/catalog"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates services with default config",
			cfg:  testConfig(),
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Catalog)
				assert.NotNil(t, components.Sessions)
				assert.NotNil(t, components.Bundles)
			},
		},
		{
			name: "creates services with zero session capacity",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Session.Capacity = 0
				return cfg
			}(),
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Sessions)
			},
		},
		{
			name: "creates services with widget timings",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Bundle.ToggleLatency = 50 * time.Millisecond
				cfg.Bundle.ReadyDelay = 25 * time.Millisecond
				return cfg
			}(),
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Bundles)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg, catalog.Default())
			t.Cleanup(components.Cleanup)

			require.NotNil(t, components)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestInitializeServices_InvalidPolicyFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Bundle.MinItems = 0
	cfg.Bundle.DiscountPercent = 150

	components := InitializeServices(cfg, catalog.Default())
	t.Cleanup(components.Cleanup)

	// The fallback policy needs three distinct items, so two selections must
	// not unlock checkout.
	for _, id := range []int{1, 2} {
		_, _, err := components.Bundles.Toggle("fallback-session", id)
		require.NoError(t, err)
	}
	view := components.Bundles.Projection("fallback-session")
	assert.False(t, view.CheckoutEligible)

	_, _, err := components.Bundles.Toggle("fallback-session", 3)
	require.NoError(t, err)

	view = components.Bundles.Projection("fallback-session")
	assert.True(t, view.CheckoutEligible)
	assert.Equal(t, "$19.95", view.Discount)
}

func TestServiceComponents_Bundles(t *testing.T) {
	components := InitializeServices(testConfig(), catalog.Default())
	t.Cleanup(components.Cleanup)

	for _, id := range []int{1, 2, 3} {
		_, pending, err := components.Bundles.Toggle("shopper", id)
		require.NoError(t, err)
		assert.False(t, pending, "zero latency applies toggles inline")
	}

	view := components.Bundles.Projection("shopper")
	assert.Equal(t, 3, view.Size)
	assert.Equal(t, 100, view.ProgressPercent)
	assert.True(t, view.CheckoutEligible)
	assert.Equal(t, "$66.50", view.Subtotal)
	assert.Equal(t, "$46.55", view.Total)
}

func TestServiceComponents_Cleanup(t *testing.T) {
	components := InitializeServices(testConfig(), catalog.Default())

	components.Bundles.Projection("shopper")

	assert.NotPanics(t, components.Cleanup)
	assert.Equal(t, 0, components.Sessions.Len())
}
