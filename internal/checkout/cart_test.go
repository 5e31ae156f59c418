package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdepos/verdepos/internal/inventory"
)

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	require.Equal(t, StateEmpty, cart.State())

	cart.merge(inventory.Product{ID: "1", Name: "Apple", SalePrice: 2.0}, 3)
	cart.merge(inventory.Product{ID: "2", Name: "Carrot", SalePrice: 1.25}, 2)
	require.Equal(t, StateAccumulating, cart.State())
	require.Equal(t, 8.5, cart.Total())
	require.Equal(t, 8.5, cart.TotalAfterDiscount())
}

func TestCartMergesSameProduct(t *testing.T) {
	cart := NewCart()
	apple := inventory.Product{ID: "1", Name: "Apple", SalePrice: 2.0}
	cart.merge(apple, 3)
	cart.merge(apple, 2)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 5, lines[0].Quantity)
	require.Equal(t, 5, cart.QuantityOf("1"))
}

func TestApplyDiscount(t *testing.T) {
	cart := NewCart()
	cart.merge(inventory.Product{ID: "1", Name: "Apple", SalePrice: 10}, 10)

	require.ErrorIs(t, cart.ApplyDiscount(-5), ErrInvalidDiscount)
	require.ErrorIs(t, cart.ApplyDiscount(150), ErrInvalidDiscount)

	require.NoError(t, cart.ApplyDiscount(20))
	require.Equal(t, 100.0, cart.Total())
	require.Equal(t, 80.0, cart.TotalAfterDiscount())
}

func TestCartReset(t *testing.T) {
	cart := NewCart()
	cart.merge(inventory.Product{ID: "1", Name: "Apple", SalePrice: 2}, 1)
	require.NoError(t, cart.ApplyDiscount(10))

	cart.Reset()
	require.Equal(t, StateEmpty, cart.State())
	require.Zero(t, cart.DiscountPercent())
	require.Zero(t, cart.Total())
}
