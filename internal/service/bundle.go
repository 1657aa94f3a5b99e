// Package service contains the business logic for the bundle service.
package service

import (
	"errors"

	"github.com/guttosm/bundle-service/internal/catalog"
	"github.com/guttosm/bundle-service/internal/domain/model"
	"github.com/guttosm/bundle-service/internal/store"
)

// ErrBundleFull is returned when a toggle tries to add a product the widget
// renders as disabled: the bundle already meets the threshold, so only
// selected tiles stay interactive.
var ErrBundleFull = errors.New("bundle already complete")

// BundleService provides bundle session operations.
type BundleService interface {
	// Catalog returns the sellable products in tile order.
	Catalog() []model.Product
	// Projection returns the current view of the session, creating the
	// session when none exists yet.
	Projection(sessionID string) model.BundleView
	// Toggle flips the selection of a product. The returned bool reports
	// whether the mutation is still pending inside the latency window; the
	// view reflects the state as of the call.
	Toggle(sessionID string, productID int) (model.BundleView, bool, error)
	// AdjustQuantity shifts the quantity of a selected item by delta.
	AdjustQuantity(sessionID string, productID, delta int) (model.BundleView, error)
	// Remove deletes a selected item regardless of quantity.
	Remove(sessionID string, productID int) (model.BundleView, error)
	// Reset clears the session's bundle.
	Reset(sessionID string) model.BundleView
	// Confirm hands the bundle to the cart and returns the checkout payload
	// together with the view after the handover.
	Confirm(sessionID string) (model.CheckoutPayload, model.BundleView, error)
}

// BundleServiceImpl implements BundleService on top of the session store.
type BundleServiceImpl struct {
	catalog  *catalog.Snapshot
	sessions *store.Store
}

// NewBundleService creates a new bundle service.
func NewBundleService(snapshot *catalog.Snapshot, sessions *store.Store) BundleService {
	return &BundleServiceImpl{
		catalog:  snapshot,
		sessions: sessions,
	}
}

func (s *BundleServiceImpl) Catalog() []model.Product {
	return s.catalog.Products()
}

func (s *BundleServiceImpl) Projection(sessionID string) model.BundleView {
	return s.sessions.GetOrCreate(sessionID).Projection()
}

// Toggle applies the widget's tile gate before handing the event to the
// session: once the bundle is complete the projector disables every
// unselected tile, and a click on a disabled tile must not reach the engine.
// Removals pass through, selected tiles never disable.
func (s *BundleServiceImpl) Toggle(sessionID string, productID int) (model.BundleView, bool, error) {
	engine := s.sessions.GetOrCreate(sessionID)

	view := engine.Projection()
	if tileDisabled(view, productID) {
		return view, false, ErrBundleFull
	}

	if err := engine.Toggle(productID); err != nil {
		return engine.Projection(), false, err
	}
	return engine.Projection(), engine.Busy(), nil
}

func (s *BundleServiceImpl) AdjustQuantity(sessionID string, productID, delta int) (model.BundleView, error) {
	engine := s.sessions.GetOrCreate(sessionID)
	if err := engine.AdjustQuantity(productID, delta); err != nil {
		return engine.Projection(), err
	}
	return engine.Projection(), nil
}

func (s *BundleServiceImpl) Remove(sessionID string, productID int) (model.BundleView, error) {
	engine := s.sessions.GetOrCreate(sessionID)
	if err := engine.Remove(productID); err != nil {
		return engine.Projection(), err
	}
	return engine.Projection(), nil
}

func (s *BundleServiceImpl) Reset(sessionID string) model.BundleView {
	engine := s.sessions.GetOrCreate(sessionID)
	engine.Reset()
	return engine.Projection()
}

func (s *BundleServiceImpl) Confirm(sessionID string) (model.CheckoutPayload, model.BundleView, error) {
	engine := s.sessions.GetOrCreate(sessionID)
	payload, err := engine.Confirm()
	if err != nil {
		return model.CheckoutPayload{}, engine.Projection(), err
	}
	return payload, engine.Projection(), nil
}

// tileDisabled reports whether the projector marks the product's tile
// disabled in the given view. Unknown ids are not disabled; the engine
// rejects them with its own error.
func tileDisabled(view model.BundleView, productID int) bool {
	for _, flag := range view.Products {
		if flag.ID == productID {
			return flag.Disabled
		}
	}
	return false
}
