package inventory

import "errors"

// Product is a single stocked item. IDs are sequential integers stored as
// strings; the counter is seeded from the highest id found on load.
type Product struct {
	ID        string
	Name      string
	CostPrice float64
	SalePrice float64
	Quantity  int
}

// ErrInsufficientStock triggered when a sale exceeds the on-hand quantity.
var ErrInsufficientStock = errors.New("inventory: insufficient stock")

// ErrInvalidQuantity indicates a non-positive quantity.
var ErrInvalidQuantity = errors.New("inventory: quantity must be positive")

// ErrInvalidPrice indicates a negative price value.
var ErrInvalidPrice = errors.New("inventory: price must be >= 0")

// ErrEmptyName indicates a missing product name.
var ErrEmptyName = errors.New("inventory: product name required")
