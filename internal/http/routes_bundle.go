package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/service"
)

// BundleRoutes handles bundle-related route registration.
type BundleRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
}

// NewBundleRoutes creates a new BundleRoutes instance.
func NewBundleRoutes(bundles service.BundleService) *BundleRoutes {
	return &BundleRoutes{
		handler:        NewHandler(bundles),
		catalogHandler: NewCatalogHandler(bundles),
	}
}

// RegisterRoutes registers the catalog and bundle routes.
func (r *BundleRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", r.catalogHandler.GetCatalog)

	bundle := rg.Group("/bundle")
	bundle.GET("", r.handler.GetBundle)
	bundle.POST("/toggle", r.handler.ToggleProduct)
	bundle.POST("/quantity", r.handler.AdjustQuantity)
	bundle.DELETE("/items/:id", r.handler.RemoveItem)
	bundle.POST("/reset", r.handler.ResetBundle)
	bundle.POST("/confirm", r.handler.ConfirmBundle)
}

// GetHandler returns the underlying bundle handler.
func (r *BundleRoutes) GetHandler() *Handler {
	return r.handler
}
