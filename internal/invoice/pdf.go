package invoice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/verdepos/verdepos/internal/ledger"
	"github.com/verdepos/verdepos/internal/shared"
)

// Renderer draws fixed-layout invoice PDFs. Regular sales land in the
// invoice directory, delivery sales in the delivery invoice directory.
type Renderer struct {
	storeName   string
	dir         string
	deliveryDir string
}

// NewRenderer builds a Renderer writing into the two invoice directories.
func NewRenderer(storeName, dir, deliveryDir string) *Renderer {
	return &Renderer{storeName: storeName, dir: dir, deliveryDir: deliveryDir}
}

// Render writes the invoice PDF for a finalized sale and returns its path.
func (r *Renderer) Render(ctx context.Context, rec ledger.SaleRecord, delivery bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := r.dir
	if delivery {
		dir = r.deliveryDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("invoice: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, "factura_"+strconv.Itoa(rec.InvoiceID)+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, r.storeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Factura No. "+strconv.Itoa(rec.InvoiceID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, rec.Timestamp.Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Producto", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Cantidad", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range rec.Lines {
		pdf.CellFormat(90, 8, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, strconv.Itoa(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, shared.FormatAmount(line.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	if rec.DiscountPercent > 0 {
		pdf.CellFormat(0, 7, fmt.Sprintf("Descuento: %s%%", strconv.FormatFloat(rec.DiscountPercent, 'f', -1, 64)), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Total a pagar: "+shared.FormatAmount(rec.Total), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("invoice: write %s: %w", path, err)
	}
	return path, nil
}
