// Package pricing computes bundle totals. All functions are pure and keep
// amounts at full float64 precision; rounding to cents happens only at
// presentation boundaries via Round2.
package pricing

import (
	"math"

	"github.com/guttosm/bundle-service/internal/domain/model"
)

// Breakdown is the priced view of a selection.
type Breakdown struct {
	// Subtotal is the sum of all line totals before the discount.
	Subtotal float64
	// Discount is the amount taken off the subtotal, zero while inactive.
	Discount float64
	// Total is the amount due after the discount.
	Total float64
	// Active reports whether the selection met the discount threshold.
	Active bool
}

// Subtotal returns the full-precision sum of line totals.
func Subtotal(items []model.SelectedItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}

// Discount returns the amount taken off the subtotal. The discount activates
// once the selection holds at least policy.MinItems distinct products;
// quantities never count toward the threshold.
func Discount(items []model.SelectedItem, policy model.DiscountPolicy) float64 {
	if len(items) < policy.MinItems {
		return 0
	}
	return Subtotal(items) * policy.Fraction()
}

// Total returns subtotal minus discount at full precision.
func Total(items []model.SelectedItem, policy model.DiscountPolicy) float64 {
	return Subtotal(items) - Discount(items, policy)
}

// Compute prices the selection in a single pass over the items.
func Compute(items []model.SelectedItem, policy model.DiscountPolicy) Breakdown {
	subtotal := Subtotal(items)
	active := len(items) >= policy.MinItems

	var discount float64
	if active {
		discount = subtotal * policy.Fraction()
	}

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
		Active:   active,
	}
}

// Round2 rounds an amount to cents, half away from zero. Intermediate math
// must stay at full precision; call this only when an amount leaves the
// engine.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
