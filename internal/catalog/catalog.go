// Package catalog provides the immutable product snapshot a bundle session
// sells from. The snapshot is fixed at construction; sessions copy product
// data out of it when items are selected.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/guttosm/bundle-service/internal/domain/model"
)

// DefaultProducts is the built-in catalog used when no catalog file is
// configured.
var DefaultProducts = []model.Product{
	{ID: 1, Title: "Nourishing Shampoo", Image: "/img/products/shampoo.jpg", Price: 18.00},
	{ID: 2, Title: "Repair Conditioner", Image: "/img/products/conditioner.jpg", Price: 22.00},
	{ID: 3, Title: "Hydrating Hair Mask", Image: "/img/products/hair-mask.jpg", Price: 26.50},
	{ID: 4, Title: "Argan Hair Oil", Image: "/img/products/hair-oil.jpg", Price: 19.90},
	{ID: 5, Title: "Texture Styling Clay", Image: "/img/products/styling-clay.jpg", Price: 15.00},
	{ID: 6, Title: "Heat Protect Spray", Image: "/img/products/heat-spray.jpg", Price: 17.50},
	{ID: 7, Title: "Exfoliating Scalp Scrub", Image: "/img/products/scalp-scrub.jpg", Price: 21.00},
	{ID: 8, Title: "Silk Pillowcase", Image: "/img/products/pillowcase.jpg", Price: 39.00},
}

// Errors returned by NewSnapshot.
var (
	// ErrEmptyCatalog indicates a snapshot built without any products.
	ErrEmptyCatalog = errors.New("catalog must contain at least one product")
	// ErrInvalidProductID indicates a product with a non-positive id.
	ErrInvalidProductID = errors.New("product id must be positive")
	// ErrNegativePrice indicates a product priced below zero.
	ErrNegativePrice = errors.New("product price must not be negative")
	// ErrDuplicateProduct indicates two products sharing an id.
	ErrDuplicateProduct = errors.New("duplicate product id")
)

// Snapshot is a read-only catalog view. Lookups are by product id; Products
// preserves the order given at construction, which is the order tiles render
// in.
type Snapshot struct {
	byID  map[int]model.Product
	order []model.Product
}

// NewSnapshot validates the products and builds the lookup index. The input
// slice is copied; later mutations of it do not affect the snapshot.
func NewSnapshot(products []model.Product) (*Snapshot, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[int]model.Product, len(products))
	order := make([]model.Product, 0, len(products))

	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidProductID, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: product %d", ErrNegativePrice, p.ID)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		byID[p.ID] = p
		order = append(order, p)
	}

	return &Snapshot{byID: byID, order: order}, nil
}

// Default returns a snapshot of the built-in catalog.
func Default() *Snapshot {
	snapshot, err := NewSnapshot(DefaultProducts)
	if err != nil {
		// DefaultProducts is a package constant; it always validates.
		panic(err)
	}
	return snapshot
}

// Get returns the product with the given id.
func (s *Snapshot) Get(id int) (model.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Contains reports whether the catalog holds a product with the given id.
func (s *Snapshot) Contains(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of products in the catalog.
func (s *Snapshot) Len() int {
	return len(s.order)
}

// Products returns a copy of the catalog in tile order.
func (s *Snapshot) Products() []model.Product {
	out := make([]model.Product, len(s.order))
	copy(out, s.order)
	return out
}

// Load reads a catalog file containing a JSON array of products. The result
// still has to pass NewSnapshot validation.
func Load(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return products, nil
}
