package domain

import "github.com/shopspring/decimal"

// Product is an item that can be put on a grocery list.
type Product struct {
	// ID is assigned by the store on insert. Zero means not yet persisted.
	ID int64

	// Name is the display name of the product.
	Name string

	// Stock is the number of units on hand. Never negative.
	Stock int

	// ShelfLife is the best-before date.
	ShelfLife Date

	// Price is the unit price with at most two fractional digits.
	Price decimal.Decimal
}

// NewProduct returns an unpersisted product.
func NewProduct(name string, stock int, shelfLife Date, price decimal.Decimal) Product {
	return Product{
		Name:      name,
		Stock:     stock,
		ShelfLife: shelfLife,
		Price:     price,
	}
}

// IsPersisted reports whether the product has been assigned an ID by a store.
func (p *Product) IsPersisted() bool {
	return p.ID != 0
}

// Equal reports whether p and other hold the same values.
// Prices are compared numerically, so 1.5 equals 1.50.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID &&
		p.Name == other.Name &&
		p.Stock == other.Stock &&
		p.ShelfLife == other.ShelfLife &&
		p.Price.Equal(other.Price)
}
