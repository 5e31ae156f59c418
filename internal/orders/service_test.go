package orders

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verdepos/verdepos/internal/shared"
)

func tempService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	svc := NewService(filepath.Join(dir, "pedidos pendientes"), filepath.Join(dir, "pedidos aceptados"))
	svc.WithNow(func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	})
	return svc
}

func sampleOrder() Order {
	return Order{
		ClientName: "Maria Lopez",
		Address:    "Calle 10 #4-20",
		Lines:      []Line{{Name: "Apple", Quantity: 3}, {Name: "Carrot", Quantity: 1}},
	}
}

func TestSubmitAndGet(t *testing.T) {
	ctx := context.Background()
	svc := tempService(t)

	ref, err := svc.Submit(ctx, sampleOrder())
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	order, err := svc.Get(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, "Maria Lopez", order.ClientName)
	require.Equal(t, "Calle 10 #4-20", order.Address)
	require.Equal(t, []Line{{Name: "Apple", Quantity: 3}, {Name: "Carrot", Quantity: 1}}, order.Lines)
	require.Equal(t, ref, order.Ref)
}

func TestSubmitRejectsEmptyOrder(t *testing.T) {
	_, err := tempService(t).Submit(context.Background(), Order{ClientName: "X"})
	require.Error(t, err)
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	svc := tempService(t)

	list, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = svc.Submit(ctx, sampleOrder())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, sampleOrder())
	require.NoError(t, err)

	list, err = svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestAcceptMovesOrderExactlyOnce(t *testing.T) {
	ctx := context.Background()
	svc := tempService(t)

	ref, err := svc.Submit(ctx, sampleOrder())
	require.NoError(t, err)

	require.NoError(t, svc.Accept(ctx, ref))

	// Gone from pending, present in accepted.
	_, err = svc.Get(ctx, ref)
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = os.Stat(filepath.Join(svc.acceptedDir, filePrefix+ref+fileSuffix))
	require.NoError(t, err)

	// Second accept fails: the pending file no longer exists.
	require.ErrorIs(t, svc.Accept(ctx, ref), shared.ErrNotFound)
}

func TestAcceptUnknownRef(t *testing.T) {
	require.ErrorIs(t, tempService(t).Accept(context.Background(), "nope"), shared.ErrNotFound)
}
