package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdepos/verdepos/internal/shared"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "inventory.txt"))
	require.NoError(t, err)
	return store
}

func TestOpenMissingFileYieldsEmptyStore(t *testing.T) {
	store := tempStore(t)
	require.Zero(t, store.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventory.txt")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Add(ctx, "Apple", 1.0, 2.0, 10)
	require.NoError(t, err)
	_, err = store.Add(ctx, "Carrot", 0.5, 1.25, 40)
	require.NoError(t, err)

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, store.List(), reloaded.List())
}

func TestLoadFailsOnMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	content := "1: Apple: 1.0: 2.0: 10\n2: Banana: oops: 2.0: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestLoadFailsOnWrongFieldCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte("Apple: 2.0: 10\n"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestLoadStripsNonPrintableBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte("1: Apple\x00: 1.0: 2.0: 10\n"), 0o644))

	store, err := Open(path)
	require.NoError(t, err)
	p, err := store.Get("1")
	require.NoError(t, err)
	require.Equal(t, "Apple", p.Name)
}

func TestNextIDSeededFromMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	content := "3: Apple: 1.0: 2.0: 10\n7: Pear: 1.0: 2.0: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, "8", store.NextID())
	require.Equal(t, "9", store.NextID())
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventory.txt")

	store, err := Open(path)
	require.NoError(t, err)
	p, err := store.Add(ctx, "Apple", 1.0, 2.0, 10)
	require.NoError(t, err)
	_, err = store.Add(ctx, "Pear", 1.0, 2.0, 4)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, p.ID))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "Apple")
	require.Contains(t, string(data), "Pear")
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	store := tempStore(t)

	_, err := store.Add(ctx, "  ", 1, 2, 1)
	require.ErrorIs(t, err, ErrEmptyName)
	_, err = store.Add(ctx, "Apple", -1, 2, 1)
	require.ErrorIs(t, err, ErrInvalidPrice)
	_, err = store.Add(ctx, "Apple", 1, 2, -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestDecrement(t *testing.T) {
	ctx := context.Background()
	store := tempStore(t)
	p, err := store.Add(ctx, "Apple", 1.0, 2.0, 10)
	require.NoError(t, err)

	require.ErrorIs(t, store.Decrement(p.ID, 0), ErrInvalidQuantity)
	require.ErrorIs(t, store.Decrement(p.ID, -3), ErrInvalidQuantity)
	require.ErrorIs(t, store.Decrement(p.ID, 11), ErrInsufficientStock)
	require.ErrorIs(t, store.Decrement("999", 1), shared.ErrNotFound)

	require.NoError(t, store.Decrement(p.ID, 10))
	got, err := store.Get(p.ID)
	require.NoError(t, err)
	require.Zero(t, got.Quantity)
	require.ErrorIs(t, store.Decrement(p.ID, 1), ErrInsufficientStock)
}

func TestSetSalePrice(t *testing.T) {
	ctx := context.Background()
	store := tempStore(t)
	p, err := store.Add(ctx, "Apple", 1.0, 2.0, 10)
	require.NoError(t, err)

	require.NoError(t, store.SetSalePrice(ctx, p.ID, 2.75))
	got, err := store.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, 2.75, got.SalePrice)

	require.ErrorIs(t, store.SetSalePrice(ctx, p.ID, -1), ErrInvalidPrice)
	require.ErrorIs(t, store.SetSalePrice(ctx, "999", 2), shared.ErrNotFound)
}

func TestMergeDelivery(t *testing.T) {
	ctx := context.Background()
	store := tempStore(t)
	p, err := store.Add(ctx, "Apple", 1.0, 2.0, 10)
	require.NoError(t, err)

	// Same name and cost: quantity accumulates, sale price untouched.
	merged, err := store.MergeDelivery(ctx, "Apple", 1.0, 5)
	require.NoError(t, err)
	require.Equal(t, p.ID, merged.ID)
	require.Equal(t, 15, merged.Quantity)
	require.Equal(t, 2.0, merged.SalePrice)

	// Different cost: a new product with sale price at 1.5x cost.
	created, err := store.MergeDelivery(ctx, "Apple", 2.0, 5)
	require.NoError(t, err)
	require.NotEqual(t, p.ID, created.ID)
	require.Equal(t, 3.0, created.SalePrice)
	require.Equal(t, 5, created.Quantity)
}

func TestLowStock(t *testing.T) {
	require.True(t, LowStock(Product{Quantity: 4}, 5))
	require.False(t, LowStock(Product{Quantity: 5}, 5))
}
