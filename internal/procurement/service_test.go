package procurement

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/shared"
)

func newFixture(t *testing.T) (*Service, *inventory.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := inventory.Open(filepath.Join(dir, "inventory.txt"))
	require.NoError(t, err)
	return NewService(filepath.Join(dir, "pedido.txt"), store), store, dir
}

func TestAppendRequestFormat(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	require.NoError(t, svc.AppendRequest(ctx, "Apple", 1.5, 30))
	require.NoError(t, svc.AppendRequest(ctx, "Carrot", 0.75, 10))

	data, err := os.ReadFile(svc.path)
	require.NoError(t, err)
	require.Equal(t, "Apple: 1.5: 30\nCarrot: 0.75: 10\n", string(data))
}

func TestAppendRequestValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture(t)

	require.ErrorIs(t, svc.AppendRequest(ctx, " ", 1, 1), inventory.ErrEmptyName)
	require.ErrorIs(t, svc.AppendRequest(ctx, "Apple", -1, 1), inventory.ErrInvalidPrice)
	require.ErrorIs(t, svc.AppendRequest(ctx, "Apple", 1, 0), inventory.ErrInvalidQuantity)
}

func TestImportDeliveryMerges(t *testing.T) {
	ctx := context.Background()
	svc, store, dir := newFixture(t)
	existing, err := store.Add(ctx, "Apple", 1.0, 2.0, 10)
	require.NoError(t, err)

	path := filepath.Join(dir, "recibido.txt")
	require.NoError(t, os.WriteFile(path, []byte("Apple: 1: 5\nKale: 2: 8\n"), 0o644))

	applied, err := svc.ImportDelivery(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 2, applied)

	apple, err := store.Get(existing.ID)
	require.NoError(t, err)
	require.Equal(t, 15, apple.Quantity)

	var kale inventory.Product
	for _, p := range store.List() {
		if p.Name == "Kale" {
			kale = p
		}
	}
	require.Equal(t, 8, kale.Quantity)
	require.Equal(t, 3.0, kale.SalePrice)
}

func TestImportDeliveryMalformedLineAborts(t *testing.T) {
	ctx := context.Background()
	svc, store, dir := newFixture(t)

	path := filepath.Join(dir, "recibido.txt")
	require.NoError(t, os.WriteFile(path, []byte("Apple: 1: 5\nbroken line\n"), 0o644))

	applied, err := svc.ImportDelivery(ctx, path)
	require.Error(t, err)
	require.Equal(t, 1, applied)
	// The first line was already applied and persisted.
	require.Equal(t, 1, store.Len())
}

func TestImportDeliveryMissingFile(t *testing.T) {
	svc, _, dir := newFixture(t)
	_, err := svc.ImportDelivery(context.Background(), filepath.Join(dir, "nope.txt"))
	require.ErrorIs(t, err, shared.ErrNotFound)
}
