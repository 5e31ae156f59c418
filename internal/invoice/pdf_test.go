package invoice

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verdepos/verdepos/internal/ledger"
)

func TestRenderWritesInvoice(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer("VerdePOS", filepath.Join(dir, "facturas"), filepath.Join(dir, "facturas_domicilios"))

	rec := ledger.SaleRecord{
		InvoiceID:       7,
		Timestamp:       time.Date(2026, 8, 29, 14, 3, 22, 0, time.UTC),
		DiscountPercent: 10,
		Lines:           []ledger.SaleLine{{Name: "Apple", Quantity: 3, LineTotal: 6.00}},
		Total:           5.40,
	}

	path, err := r.Render(context.Background(), rec, false)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "facturas", "factura_7.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRenderDeliveryUsesDeliveryDir(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer("VerdePOS", filepath.Join(dir, "facturas"), filepath.Join(dir, "facturas_domicilios"))

	rec := ledger.SaleRecord{
		InvoiceID: 8,
		Timestamp: time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC),
		Lines:     []ledger.SaleLine{{Name: "Kale", Quantity: 1, LineTotal: 3.00}},
		Total:     3.00,
	}

	path, err := r.Render(context.Background(), rec, true)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "facturas_domicilios", "factura_8.pdf"), path)
}
