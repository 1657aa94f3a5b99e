package model

// ButtonState is the stage of the checkout button lifecycle. New sessions
// start at ButtonInitial; the zero value is not a valid stage.
type ButtonState string

// Checkout button stages in the order a shopper walks through them.
const (
	// ButtonInitial prompts for more items until the bundle qualifies.
	ButtonInitial ButtonState = "initial"
	// ButtonProceeding is the short settling stage entered when the bundle
	// first qualifies, before the button becomes actionable.
	ButtonProceeding ButtonState = "proceeding"
	// ButtonReadyForCart is the only stage in which a confirm is accepted.
	ButtonReadyForCart ButtonState = "ready_for_cart"
	// ButtonAdded means the bundle has been handed over to the cart.
	ButtonAdded ButtonState = "added"
)

// String implements fmt.Stringer.
func (s ButtonState) String() string {
	return string(s)
}

// CanConfirm reports whether a checkout confirm is accepted in this stage.
func (s ButtonState) CanConfirm() bool {
	return s == ButtonReadyForCart
}

// Settled reports whether the stage is stable, i.e. not waiting on a timed
// transition.
func (s ButtonState) Settled() bool {
	return s != ButtonProceeding
}

// Valid reports whether s is one of the defined stages.
func (s ButtonState) Valid() bool {
	switch s {
	case ButtonInitial, ButtonProceeding, ButtonReadyForCart, ButtonAdded:
		return true
	default:
		return false
	}
}
