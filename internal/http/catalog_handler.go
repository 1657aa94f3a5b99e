package http

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/domain/dto"
	"github.com/guttosm/bundle-service/internal/projection"
	"github.com/guttosm/bundle-service/internal/service"
)

// CatalogHandler provides HTTP handlers for catalog routes.
type CatalogHandler struct {
	bundles service.BundleService

	// The catalog is fixed at startup, so the display tuples are formatted
	// once on first request and reused afterwards.
	once  sync.Once
	tiles []dto.CatalogProduct
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(bundles service.BundleService) *CatalogHandler {
	return &CatalogHandler{bundles: bundles}
}

// tilesView returns the formatted catalog tiles, building them on first use.
func (h *CatalogHandler) tilesView() []dto.CatalogProduct {
	h.once.Do(func() {
		products := h.bundles.Catalog()
		h.tiles = make([]dto.CatalogProduct, 0, len(products))
		for _, p := range products {
			h.tiles = append(h.tiles, dto.CatalogProduct{
				ID:    p.ID,
				Title: p.Title,
				Image: p.Image,
				Price: projection.FormatAmount(p.Price),
			})
		}
	})
	return h.tiles
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      List catalog products
// @Description  Returns the sellable products in tile order with display data and formatted prices. The catalog is fixed at startup.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Catalog products in tile order"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.tilesView())
}
