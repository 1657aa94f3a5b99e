// Package model defines the core domain entities for the bundle service.
package model

// Product represents a single catalog entry the shopper can add to a bundle.
//
// @Description Catalog product with display data and unit price
// @Example {"id": 3, "title": "Hydrating Hair Mask", "image": "/img/products/hair-mask.jpg", "price": 26.5}
type Product struct {
	// ID is the catalog identifier of the product
	ID int `json:"id" example:"3"`
	// Title is the display name shown on the product tile
	Title string `json:"title" example:"Hydrating Hair Mask"`
	// Image is the reference to the product tile image
	Image string `json:"image" example:"/img/products/hair-mask.jpg"`
	// Price is the unit price in the store currency
	Price float64 `json:"price" example:"26.5"`
}

// SelectedItem represents a product the shopper has placed in the bundle.
// Price and display data are copied from the catalog at selection time, so a
// bundle stays coherent even if the catalog snapshot is swapped afterwards.
//
// @Description Bundle line item with the quantity chosen by the shopper
// @Example {"id": 3, "title": "Hydrating Hair Mask", "image": "/img/products/hair-mask.jpg", "price": 26.5, "quantity": 2}
type SelectedItem struct {
	// ID is the catalog identifier of the selected product
	ID int `json:"id" example:"3"`
	// Title is the display name copied from the catalog entry
	Title string `json:"title" example:"Hydrating Hair Mask"`
	// Image is the image reference copied from the catalog entry
	Image string `json:"image" example:"/img/products/hair-mask.jpg"`
	// Price is the unit price captured when the product was selected
	Price float64 `json:"price" example:"26.5"`
	// Quantity is the number of units of this product in the bundle
	Quantity int `json:"quantity" example:"2"`
}

// NewSelectedItem copies a catalog product into a line item with quantity 1.
func NewSelectedItem(p Product) SelectedItem {
	return SelectedItem{
		ID:       p.ID,
		Title:    p.Title,
		Image:    p.Image,
		Price:    p.Price,
		Quantity: 1,
	}
}

// LineTotal returns the unrounded price contribution of this item
// (price * quantity).
func (i SelectedItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
