package checkout

import (
	"errors"

	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/shared"
)

// ErrEmptyCart triggered when finalizing a cart without lines.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrInvalidDiscount indicates a discount percent outside [0, 100].
var ErrInvalidDiscount = errors.New("checkout: discount must be between 0 and 100")

// State tracks the cart lifecycle: Empty -> Accumulating -> Empty again
// after finalize or cancel.
type State string

const (
	// StateEmpty means no lines are held.
	StateEmpty State = "empty"
	// StateAccumulating means at least one line is held.
	StateAccumulating State = "accumulating"
)

// Line is one product selection inside the active cart.
type Line struct {
	ProductID   string
	ProductName string
	SalePrice   float64
	Quantity    int
}

// Total is the line amount, rounded to two decimals.
func (l Line) Total() float64 {
	return shared.Round2(float64(l.Quantity) * l.SalePrice)
}

// Cart is the ephemeral per-session selection. It is owned by exactly one
// checkout session and discarded on finalize or cancel.
type Cart struct {
	lines           []Line
	discountPercent float64
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// State reports the cart lifecycle state.
func (c *Cart) State() State {
	if len(c.lines) == 0 {
		return StateEmpty
	}
	return StateAccumulating
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// QuantityOf reports how many units of a product the cart already holds.
func (c *Cart) QuantityOf(productID string) int {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// merge adds qty of the product, summing into an existing line for the same
// product instead of duplicating it.
func (c *Cart) merge(p inventory.Product, qty int) {
	for i, line := range c.lines {
		if line.ProductID == p.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, Line{ProductID: p.ID, ProductName: p.Name, SalePrice: p.SalePrice, Quantity: qty})
}

// ApplyDiscount sets the single scalar discount applied to the grand total.
func (c *Cart) ApplyDiscount(percent float64) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	c.discountPercent = percent
	return nil
}

// DiscountPercent returns the currently applied discount.
func (c *Cart) DiscountPercent() float64 {
	return c.discountPercent
}

// Total sums quantity times sale price over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += float64(line.Quantity) * line.SalePrice
	}
	return shared.Round2(total)
}

// TotalAfterDiscount applies the discount to the grand total.
func (c *Cart) TotalAfterDiscount() float64 {
	return shared.Round2(c.Total() * (1 - c.discountPercent/100))
}

// Reset discards all lines and the discount.
func (c *Cart) Reset() {
	c.lines = nil
	c.discountPercent = 0
}
