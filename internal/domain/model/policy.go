package model

import "errors"

// Validation errors returned by DiscountPolicy.Validate.
var (
	// ErrInvalidMinItems indicates a policy whose activation threshold is
	// below one distinct product.
	ErrInvalidMinItems = errors.New("min items must be at least 1")
	// ErrInvalidPercent indicates a discount percentage outside [0, 100].
	ErrInvalidPercent = errors.New("discount percent must be between 0 and 100")
)

// DiscountPolicy configures when the bundle discount activates and how much
// it takes off the subtotal. The threshold counts distinct products, not
// total quantity.
//
// @Description Bundle discount configuration
// @Example {"min_items": 3, "percent": 30}
type DiscountPolicy struct {
	// MinItems is the number of distinct products that activates the discount
	MinItems int `json:"min_items" example:"3"`
	// Percent is the discount applied to the subtotal once active
	Percent float64 `json:"percent" example:"30"`
}

// Validate reports whether the policy can drive pricing and projection.
func (p DiscountPolicy) Validate() error {
	if p.MinItems < 1 {
		return ErrInvalidMinItems
	}
	if p.Percent < 0 || p.Percent > 100 {
		return ErrInvalidPercent
	}
	return nil
}

// Fraction returns the discount as a multiplier, e.g. 30 becomes 0.3.
func (p DiscountPolicy) Fraction() float64 {
	return p.Percent / 100
}
