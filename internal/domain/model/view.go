package model

// ItemView is the renderable form of one selected item. Money fields are
// preformatted; renderers print them verbatim.
//
// @Description Rendered bundle line item
type ItemView struct {
	// ID is the catalog identifier of the item
	ID int `json:"id" example:"3"`
	// Title is the display name of the item
	Title string `json:"title" example:"Hydrating Hair Mask"`
	// Image is the reference to the item image
	Image string `json:"image" example:"/img/products/hair-mask.jpg"`
	// Price is the formatted unit price
	Price string `json:"price" example:"$26.50"`
	// Quantity is the number of units in the bundle
	Quantity int `json:"quantity" example:"2"`
	// LineTotal is the formatted price contribution of the line
	LineTotal string `json:"line_total" example:"$53.00"`
}

// ButtonView is the renderable state of the checkout button.
//
// @Description Checkout button presentation state
type ButtonView struct {
	// State is the current stage of the button lifecycle
	State ButtonState `json:"state" example:"ready_for_cart"`
	// Label is the text shown on the button
	Label string `json:"label" example:"Add 3 Items to Cart"`
	// Enabled reports whether the button accepts a click
	Enabled bool `json:"enabled" example:"true"`
}

// ProductFlag carries the per-product interaction hints for one catalog tile.
//
// @Description Catalog tile interaction flags
type ProductFlag struct {
	// ID is the catalog identifier of the product
	ID int `json:"id" example:"3"`
	// Selected reports whether the product is currently in the bundle
	Selected bool `json:"selected" example:"true"`
	// Disabled reports whether the tile should reject further toggles
	Disabled bool `json:"disabled" example:"false"`
}

// BundleView is the complete renderable projection of a bundle session. It
// is a detached value: mutating a view never feeds back into the session.
//
// @Description Full bundle widget view model
type BundleView struct {
	// Items lists the selected items in insertion order
	Items []ItemView `json:"items"`
	// Size is the number of distinct products in the bundle
	Size int `json:"size" example:"3"`
	// ProgressPercent is the progress toward the discount threshold, capped at 100
	ProgressPercent int `json:"progress_percent" example:"100"`
	// NearCompletion reports whether exactly one more product completes the bundle
	NearCompletion bool `json:"near_completion" example:"false"`
	// CheckoutEligible reports whether the bundle meets the discount threshold
	CheckoutEligible bool `json:"checkout_eligible" example:"true"`
	// Subtotal is the formatted sum of all line totals
	Subtotal string `json:"subtotal" example:"$60.00"`
	// Discount is the formatted amount taken off the subtotal
	Discount string `json:"discount" example:"$18.00"`
	// Total is the formatted amount due after the discount
	Total string `json:"total" example:"$42.00"`
	// Button is the checkout button presentation state
	Button ButtonView `json:"button"`
	// Products lists the interaction flags for every catalog product
	Products []ProductFlag `json:"products"`
}
