// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// ToggleProductRequest represents the JSON request body for the toggle endpoint.
//
// The ProductID field is required and must be a positive integer.
// Validation is performed using gin's binding tags.
//
// @Description Request to toggle a product in or out of the bundle
// @Example {"product_id": 3}
type ToggleProductRequest struct {
	// ProductID is the catalog identifier of the product to toggle.
	// Must be greater than 0.
	ProductID int `json:"product_id" binding:"required,gt=0" example:"3" minimum:"1"`
} // @name ToggleProductRequest

// AdjustQuantityRequest represents the JSON request body for the quantity endpoint.
//
// Delta is a signed change applied to the current quantity of a selected
// item; the selection is removed when the quantity reaches zero or below.
//
// @Description Request to shift a selected item's quantity
// @Example {"product_id": 3, "delta": 1}
// @Example {"product_id": 3, "delta": -1}
type AdjustQuantityRequest struct {
	// ProductID is the catalog identifier of the selected item.
	// Must be greater than 0.
	ProductID int `json:"product_id" binding:"required,gt=0" example:"3" minimum:"1"`
	// Delta is the signed quantity change. Must not be zero.
	Delta int `json:"delta" binding:"required" example:"1"`
} // @name AdjustQuantityRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidProductID is returned when product_id is invalid.
	ErrInvalidProductID = &ValidationError{
		Field:   "product_id",
		Message: "must be a positive integer",
	}
	// ErrInvalidDelta is returned when delta is zero.
	ErrInvalidDelta = &ValidationError{
		Field:   "delta",
		Message: "must not be zero",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *ToggleProductRequest) Validate() error {
	if r.ProductID <= 0 {
		return ErrInvalidProductID
	}
	return nil
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *AdjustQuantityRequest) Validate() error {
	if r.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if r.Delta == 0 {
		return ErrInvalidDelta
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
