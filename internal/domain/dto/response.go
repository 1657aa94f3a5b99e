package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/bundle-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"

	// ErrCodeUnknownProduct indicates a toggle for a product the catalog does not carry.
	ErrCodeUnknownProduct = "unknown_product"
	// ErrCodeToggleInFlight indicates a toggle during the previous toggle's latency window.
	ErrCodeToggleInFlight = "toggle_in_flight"
	// ErrCodeBundleFull indicates an add rejected because the bundle is already complete.
	ErrCodeBundleFull = "bundle_full"
	// ErrCodeCheckoutNotReady indicates a confirm outside the ready stage.
	ErrCodeCheckoutNotReady = "checkout_not_ready"
)

// CatalogProduct is the display tuple for one catalog tile.
// @Description Catalog product as rendered on a tile
type CatalogProduct struct {
	// ID is the catalog identifier of the product
	ID int `json:"id" example:"3"`
	// Title is the display name of the product
	Title string `json:"title" example:"Hydrating Hair Mask"`
	// Image is the reference to the product image
	Image string `json:"image" example:"/img/products/hair-mask.jpg"`
	// Price is the formatted unit price
	Price string `json:"price" example:"$26.50"`
} // @name CatalogProduct

// ConfirmResult pairs the checkout payload with the bundle view after the
// handover, so the widget can settle the button without a second fetch.
// @Description Checkout payload plus the post-confirmation bundle view
type ConfirmResult struct {
	// Checkout is the confirmed snapshot handed to the cart
	Checkout model.CheckoutPayload `json:"checkout"`
	// Bundle is the bundle view after the confirmation
	Bundle model.BundleView `json:"bundle"`
	// Message is the localized confirmation line the widget can show
	Message string `json:"message" example:"Bundle added to cart"`
} // @name ConfirmResult

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the response payload (a bundle view for bundle endpoints)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the error envelope of the API. Error carries the stable
// machine-readable code the widget switches on; Message is localized for
// display.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"invalid_request"`
	Message   string    `json:"message,omitempty" example:"product_id: must be a positive integer"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
