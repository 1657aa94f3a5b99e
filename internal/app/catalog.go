// Package app provides catalog initialization.
package app

import (
	"github.com/guttosm/bundle-service/config"
	"github.com/guttosm/bundle-service/internal/catalog"
	"github.com/rs/zerolog/log"
)

// InitializeCatalog builds the catalog snapshot sessions sell from. When a
// catalog file is configured it is loaded and validated; any failure falls
// back to the built-in catalog so the service still comes up.
func InitializeCatalog(cfg config.BundleConfig) *catalog.Snapshot {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}

	products, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CatalogPath).Msg("Failed to read catalog file - using built-in catalog")
		return catalog.Default()
	}

	snapshot, err := catalog.NewSnapshot(products)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CatalogPath).Msg("Catalog file failed validation - using built-in catalog")
		return catalog.Default()
	}

	log.Info().Int("products", snapshot.Len()).Str("path", cfg.CatalogPath).Msg("Loaded catalog")
	return snapshot
}
