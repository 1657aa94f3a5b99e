// Package projection derives the renderable widget view from the bundle
// selection, the pricing breakdown, and the checkout button stage. The
// projection is pure: equal inputs yield equal views, and money becomes a
// formatted string here and nowhere else.
package projection

import (
	"fmt"

	"github.com/guttosm/bundle-service/internal/domain/model"
	"github.com/guttosm/bundle-service/internal/pricing"
)

// Input bundles everything a view is derived from.
type Input struct {
	// Items is the current selection in insertion order.
	Items []model.SelectedItem
	// Catalog is the full product list in tile order.
	Catalog []model.Product
	// Policy is the discount policy active for the session.
	Policy model.DiscountPolicy
	// Button is the current checkout button stage.
	Button model.ButtonState
}

// Project derives the complete view handed to the render sink.
func Project(in Input) model.BundleView {
	breakdown := pricing.Compute(in.Items, in.Policy)
	size := len(in.Items)

	items := make([]model.ItemView, 0, size)
	selected := make(map[int]bool, size)
	for _, item := range in.Items {
		selected[item.ID] = true
		items = append(items, model.ItemView{
			ID:        item.ID,
			Title:     item.Title,
			Image:     item.Image,
			Price:     FormatAmount(item.Price),
			Quantity:  item.Quantity,
			LineTotal: FormatAmount(item.LineTotal()),
		})
	}

	flags := make([]model.ProductFlag, 0, len(in.Catalog))
	for _, p := range in.Catalog {
		flags = append(flags, model.ProductFlag{
			ID:       p.ID,
			Selected: selected[p.ID],
			// Once the bundle qualifies, unselected tiles stop accepting
			// toggles; selected ones stay active so they can be removed.
			Disabled: breakdown.Active && !selected[p.ID],
		})
	}

	return model.BundleView{
		Items:            items,
		Size:             size,
		ProgressPercent:  progressPercent(size, in.Policy.MinItems),
		NearCompletion:   size == in.Policy.MinItems-1,
		CheckoutEligible: breakdown.Active,
		Subtotal:         FormatAmount(breakdown.Subtotal),
		Discount:         FormatAmount(breakdown.Discount),
		Total:            FormatAmount(breakdown.Total),
		Button:           buttonView(in.Button, size),
		Products:         flags,
	}
}

// progressPercent returns integer progress toward the discount threshold,
// capped at 100.
func progressPercent(size, minItems int) int {
	if minItems < 1 {
		minItems = 1
	}
	percent := size * 100 / minItems
	if percent > 100 {
		return 100
	}
	return percent
}

// buttonView derives the label and clickability of the checkout button for
// the given stage and bundle size.
func buttonView(state model.ButtonState, size int) model.ButtonView {
	var label string
	switch state {
	case model.ButtonReadyForCart:
		label = fmt.Sprintf("Add %d Items to Cart", size)
	case model.ButtonAdded:
		label = "Added to Cart"
	default:
		label = fmt.Sprintf("Add %d Items to Proceed", size)
	}

	return model.ButtonView{
		State:   state,
		Label:   label,
		Enabled: state.CanConfirm(),
	}
}

// FormatAmount renders an amount as a dollar string with cents, e.g. 42
// becomes "$42.00".
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", pricing.Round2(v))
}
