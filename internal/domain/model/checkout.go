package model

import "time"

// CheckoutPayload is the snapshot handed over when the shopper confirms the
// bundle. Amounts are rounded to cents at this boundary.
//
// @Description Confirmed bundle handed to the cart
// @Example {"products": [{"id": 1, "price": 10, "quantity": 1}], "subtotal": 60, "discount": 18, "final_total": 42, "discount_percent": 30}
type CheckoutPayload struct {
	// Products lists the confirmed items in insertion order
	Products []SelectedItem `json:"products"`
	// Subtotal is the sum of all line totals before the discount
	Subtotal float64 `json:"subtotal" example:"60"`
	// Discount is the amount taken off the subtotal
	Discount float64 `json:"discount" example:"18"`
	// FinalTotal is the amount due after the discount
	FinalTotal float64 `json:"final_total" example:"42"`
	// DiscountPercent is the percentage that produced the discount
	DiscountPercent float64 `json:"discount_percent" example:"30"`
	// Timestamp is when the bundle was confirmed
	Timestamp time.Time `json:"timestamp"`
}

// TotalQuantity returns the summed quantities across all confirmed products.
func (p CheckoutPayload) TotalQuantity() int {
	total := 0
	for _, item := range p.Products {
		total += item.Quantity
	}
	return total
}
