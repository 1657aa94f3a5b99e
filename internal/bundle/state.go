// Package bundle holds the shopper's in-progress selection: an ordered
// mapping of product id to selected item. The state is the single source of
// truth a session projects its views from.
package bundle

import (
	"errors"

	"github.com/guttosm/bundle-service/internal/domain/model"
)

// Errors returned by state mutations.
var (
	// ErrNotFound indicates the product is not part of the bundle.
	ErrNotFound = errors.New("product not selected")
	// ErrDuplicateSelection indicates the product is already part of the bundle.
	ErrDuplicateSelection = errors.New("product already selected")
)

// State is an insertion-ordered set of selected items keyed by product id.
// Iteration follows the order items were added; quantity changes never move
// an item, and re-adding a removed item appends it at the end.
//
// State is not safe for concurrent use. The owning session serializes access.
type State struct {
	items map[int]model.SelectedItem
	order []int
}

// NewState returns an empty selection.
func NewState() *State {
	return &State{
		items: make(map[int]model.SelectedItem),
		order: make([]int, 0, 8),
	}
}

// Add appends item to the selection. Quantities below one are coerced to one.
// Returns ErrDuplicateSelection when the product id is already selected.
func (s *State) Add(item model.SelectedItem) error {
	if _, exists := s.items[item.ID]; exists {
		return ErrDuplicateSelection
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return nil
}

// Remove deletes the item with the given product id, preserving the relative
// order of the remaining items. Returns ErrNotFound when absent.
func (s *State) Remove(id int) error {
	if _, exists := s.items[id]; !exists {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetQuantity replaces the quantity of an existing item, keeping its position
// in the iteration order. A quantity of zero or less removes the item.
// Returns ErrNotFound when the product id is not selected.
func (s *State) SetQuantity(id, quantity int) error {
	item, exists := s.items[id]
	if !exists {
		return ErrNotFound
	}
	if quantity <= 0 {
		return s.Remove(id)
	}
	item.Quantity = quantity
	s.items[id] = item
	return nil
}

// Get returns the selected item for the given product id.
func (s *State) Get(id int) (model.SelectedItem, bool) {
	item, exists := s.items[id]
	return item, exists
}

// Contains reports whether the product id is part of the selection.
func (s *State) Contains(id int) bool {
	_, exists := s.items[id]
	return exists
}

// Size returns the number of distinct products selected.
func (s *State) Size() int {
	return len(s.order)
}

// Items returns a copy of the selection in insertion order. Mutating the
// returned slice does not affect the state.
func (s *State) Items() []model.SelectedItem {
	items := make([]model.SelectedItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// Clear removes every item from the selection.
func (s *State) Clear() {
	s.items = make(map[int]model.SelectedItem)
	s.order = s.order[:0]
}
