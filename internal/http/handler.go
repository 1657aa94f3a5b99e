package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/bundle"
	"github.com/guttosm/bundle-service/internal/domain/dto"
	"github.com/guttosm/bundle-service/internal/i18n"
	"github.com/guttosm/bundle-service/internal/metrics"
	"github.com/guttosm/bundle-service/internal/middleware"
	"github.com/guttosm/bundle-service/internal/service"
	"github.com/guttosm/bundle-service/internal/session"
)

// Handler provides HTTP handlers for bundle session routes.
type Handler struct {
	bundles service.BundleService
}

// NewHandler creates a new Handler instance.
func NewHandler(bundles service.BundleService) *Handler {
	return &Handler{bundles: bundles}
}

// GetBundle handles GET /api/bundle requests.
//
// @Summary      Get the current bundle view
// @Description  Returns the current bundle view for the caller's session: selected items, totals, progress toward the discount, checkout button state, and per-product tile flags. A session is created when none exists yet.
// @Tags         Bundle
// @Produce      json
// @Param        X-Bundle-Session header string false "Bundle session identifier"
// @Success      200 {object} dto.SuccessResponse "Current bundle view"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bundle [get]
func (h *Handler) GetBundle(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view := h.bundles.Projection(middleware.GetSessionID(c))
	builder.SuccessOK(view)
}

// ToggleProduct handles POST /api/bundle/toggle requests.
//
// @Summary      Toggle a product in or out of the bundle
// @Description  Flips the selection of a catalog product: unselected products are added with quantity one, selected products are removed. The mutation is applied after a simulated latency window; while a toggle is in flight further toggles are rejected. Once the bundle qualifies for checkout, unselected products are disabled and toggles on them are rejected.
// @Tags         Bundle
// @Accept       json
// @Produce      json
// @Param        request body dto.ToggleProductRequest true "Product to toggle"
// @Param        X-Bundle-Session header string false "Bundle session identifier"
// @Success      200 {object} dto.SuccessResponse "Toggle applied inline; bundle view reflects the change"
// @Success      202 {object} dto.SuccessResponse "Toggle scheduled; bundle view reflects the state before it lands"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - product not in catalog"
// @Failure      409 {object} dto.ErrorResponse "Conflict - toggle in flight or bundle already complete"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bundle/toggle [post]
func (h *Handler) ToggleProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ToggleProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordToggle("validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProductID, err)
		return
	}

	view, pending, err := h.bundles.Toggle(middleware.GetSessionID(c), req.ProductID)
	if err != nil {
		h.toggleError(builder, err)
		return
	}

	if pending {
		metrics.RecordToggle(metrics.ToggleOutcomeScheduled)
		builder.SuccessAccepted(view)
		return
	}

	metrics.RecordToggle(metrics.ToggleOutcomeApplied)
	builder.SuccessOK(view)
}

// toggleError maps toggle failures onto HTTP responses.
func (h *Handler) toggleError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, session.ErrUnknownProduct):
		metrics.RecordToggle(metrics.ToggleOutcomeUnknown)
		builder.ErrorCode(http.StatusNotFound, dto.ErrCodeUnknownProduct, i18n.ErrKeyUnknownProduct, err)
	case errors.Is(err, session.ErrToggleInFlight):
		metrics.RecordToggle(metrics.ToggleOutcomeBusy)
		builder.ErrorCode(http.StatusConflict, dto.ErrCodeToggleInFlight, i18n.ErrKeyToggleInFlight, err)
	case errors.Is(err, service.ErrBundleFull):
		metrics.RecordToggle(metrics.ToggleOutcomeGated)
		builder.ErrorCode(http.StatusConflict, dto.ErrCodeBundleFull, i18n.ErrKeyBundleFull, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// AdjustQuantity handles POST /api/bundle/quantity requests.
//
// @Summary      Adjust the quantity of a selected item
// @Description  Shifts the quantity of a selected item by a signed delta. A quantity reaching zero or below removes the item from the bundle.
// @Tags         Bundle
// @Accept       json
// @Produce      json
// @Param        request body dto.AdjustQuantityRequest true "Quantity adjustment"
// @Param        X-Bundle-Session header string false "Bundle session identifier"
// @Success      200 {object} dto.SuccessResponse "Bundle view after the adjustment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - product not selected"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bundle/quantity [post]
func (h *Handler) AdjustQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDelta, err)
		return
	}

	view, err := h.bundles.AdjustQuantity(middleware.GetSessionID(c), req.ProductID, req.Delta)
	if err != nil {
		h.itemError(builder, err)
		return
	}

	builder.SuccessOK(view)
}

// RemoveItem handles DELETE /api/bundle/items/:id requests.
//
// @Summary      Remove a product from the bundle
// @Description  Removes a selected product from the bundle unconditionally, whatever its quantity.
// @Tags         Bundle
// @Produce      json
// @Param        id path int true "Catalog product id"
// @Param        X-Bundle-Session header string false "Bundle session identifier"
// @Success      200 {object} dto.SuccessResponse "Bundle view after the removal"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid product id"
// @Failure      404 {object} dto.ErrorResponse "Not found - product not selected"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bundle/items/{id} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationProductID, dto.ErrInvalidProductID)
		return
	}

	view, err := h.bundles.Remove(middleware.GetSessionID(c), productID)
	if err != nil {
		h.itemError(builder, err)
		return
	}

	builder.SuccessOK(view)
}

// itemError maps quantity and removal failures onto HTTP responses.
func (h *Handler) itemError(builder *ResponseBuilder, err error) {
	if errors.Is(err, bundle.ErrNotFound) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotSelected, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// ResetBundle handles POST /api/bundle/reset requests.
//
// @Summary      Reset the bundle
// @Description  Clears every item from the bundle and returns the checkout button to its initial stage. Pending toggle applications and button transitions are cancelled.
// @Tags         Bundle
// @Produce      json
// @Param        X-Bundle-Session header string false "Bundle session identifier"
// @Success      200 {object} dto.SuccessResponse "Empty bundle view"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bundle/reset [post]
func (h *Handler) ResetBundle(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view := h.bundles.Reset(middleware.GetSessionID(c))

	middleware.AuditLog(c, "reset_bundle", "Bundle reset", nil)

	builder.SuccessOK(view)
}

// ConfirmBundle handles POST /api/bundle/confirm requests.
//
// @Summary      Confirm the bundle
// @Description  Hands the bundle over to the cart. Only accepted while the checkout button is in the ready_for_cart stage; the response carries the confirmed checkout payload together with the bundle view after the handover. Supports idempotency via Idempotency-Key header.
// @Tags         Bundle
// @Accept       json
// @Produce      json
// @Param        X-Bundle-Session header string false "Bundle session identifier"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      200 {object} dto.SuccessResponse "Checkout payload and post-confirmation view"
// @Failure      409 {object} dto.ErrorResponse "Conflict - checkout not ready"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bundle/confirm [post]
func (h *Handler) ConfirmBundle(c *gin.Context) {
	builder := NewResponseBuilder(c)

	payload, view, err := h.bundles.Confirm(middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, session.ErrNotReady) {
			metrics.RecordCheckout("rejected", 0)
			builder.ErrorCode(http.StatusConflict, dto.ErrCodeCheckoutNotReady, i18n.ErrKeyCheckoutNotReady, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordCheckout("confirmed", len(payload.Products))

	middleware.AuditLog(c, "confirm_bundle", "Bundle confirmed for checkout", map[string]interface{}{
		"products":    len(payload.Products),
		"total_items": payload.TotalQuantity(),
		"final_total": payload.FinalTotal,
	})

	message := i18n.GetTranslator().Translate(i18n.SuccessKeyBundleConfirmed, i18n.GetLocale(c))
	builder.SuccessOK(dto.ConfirmResult{Checkout: payload, Bundle: view, Message: message})
}
