// Package i18n provides internationalization support for the bundle service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyUnknownProduct indicates a toggle for a product missing from the catalog.
	ErrKeyUnknownProduct = "error.unknown_product"
	// ErrKeyToggleInFlight indicates a toggle during the previous toggle's latency window.
	ErrKeyToggleInFlight = "error.toggle_in_flight"
	// ErrKeyBundleFull indicates an add rejected because the bundle is already complete.
	ErrKeyBundleFull = "error.bundle_full"
	// ErrKeyCheckoutNotReady indicates a confirm before the button reached the ready stage.
	ErrKeyCheckoutNotReady = "error.checkout_not_ready"
	// ErrKeyProductNotSelected indicates a quantity change or removal for an unselected product.
	ErrKeyProductNotSelected = "error.product_not_selected"
	// ErrKeyValidationProductID indicates invalid product_id validation.
	ErrKeyValidationProductID = "error.validation.product_id"
	// ErrKeyValidationDelta indicates invalid delta validation.
	ErrKeyValidationDelta = "error.validation.delta"
)

// Success message translation keys.
const (
	// SuccessKeyBundleConfirmed indicates a successful checkout confirmation.
	SuccessKeyBundleConfirmed = "success.bundle_confirmed"
)
