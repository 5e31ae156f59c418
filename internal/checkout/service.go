package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/ledger"
	"github.com/verdepos/verdepos/internal/orders"
)

// InvoiceRenderer emits the invoice document for a finalized sale and
// returns the written file path.
type InvoiceRenderer interface {
	Render(ctx context.Context, rec ledger.SaleRecord, delivery bool) (string, error)
}

// OrderIntake files delivery orders for the courier workflow.
type OrderIntake interface {
	Submit(ctx context.Context, order orders.Order) (string, error)
}

// DeliveryRequest carries the client data attached to a delivery sale.
type DeliveryRequest struct {
	ClientName string
	Address    string
}

// Receipt describes the outcome of a finalized sale.
type Receipt struct {
	Record      ledger.SaleRecord
	InvoicePath string
	OrderRef    string
}

// Service drives the checkout transaction flow: cart accumulation, inventory
// decrement, invoice numbering, ledger append and invoice rendering. The
// steps run sequentially; there is no rollback across files.
type Service struct {
	logger   *slog.Logger
	store    *inventory.Store
	ledger   *ledger.Ledger
	sequence *ledger.Sequence
	intake   OrderIntake
	renderer InvoiceRenderer
	now      func() time.Time
}

// NewService wires the checkout flow.
func NewService(logger *slog.Logger, store *inventory.Store, l *ledger.Ledger, seq *ledger.Sequence, intake OrderIntake, renderer InvoiceRenderer) *Service {
	return &Service{
		logger:   logger,
		store:    store,
		ledger:   l,
		sequence: seq,
		intake:   intake,
		renderer: renderer,
		now:      time.Now,
	}
}

// WithNow overrides the clock for deterministic tests.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// AddLine validates the requested quantity against the live inventory store,
// counting what the cart already holds for the product, and merges the line.
func (s *Service) AddLine(cart *Cart, productID string, qty int) error {
	if qty <= 0 {
		return inventory.ErrInvalidQuantity
	}
	p, err := s.store.Get(productID)
	if err != nil {
		return err
	}
	available := p.Quantity - cart.QuantityOf(productID)
	if qty > available {
		return fmt.Errorf("%w: %s has %d available, requested %d", inventory.ErrInsufficientStock, p.Name, available, qty)
	}
	cart.merge(p, qty)
	return nil
}

// Finalize completes the sale: optional delivery order intake, inventory
// decrement and persist, invoice number assignment, ledger append, invoice
// rendering, cart reset. A rendering failure is returned to the caller but
// the sale itself is already durable at that point.
func (s *Service) Finalize(ctx context.Context, cart *Cart, delivery *DeliveryRequest) (Receipt, error) {
	if cart.State() == StateEmpty {
		return Receipt{}, ErrEmptyCart
	}

	var receipt Receipt
	if delivery != nil {
		order := orders.Order{
			ClientName: delivery.ClientName,
			Address:    delivery.Address,
			CreatedAt:  s.now(),
		}
		for _, line := range cart.Lines() {
			order.Lines = append(order.Lines, orders.Line{Name: line.ProductName, Quantity: line.Quantity})
		}
		ref, err := s.intake.Submit(ctx, order)
		if err != nil {
			return Receipt{}, fmt.Errorf("checkout: file delivery order: %w", err)
		}
		receipt.OrderRef = ref
	}

	for _, line := range cart.Lines() {
		if err := s.store.Decrement(line.ProductID, line.Quantity); err != nil {
			return Receipt{}, err
		}
	}
	if err := s.store.Save(ctx); err != nil {
		return Receipt{}, err
	}

	invoiceID, err := s.sequence.Next(ctx)
	if err != nil {
		return Receipt{}, err
	}

	rec := ledger.SaleRecord{
		InvoiceID:       invoiceID,
		Timestamp:       s.now(),
		DiscountPercent: cart.DiscountPercent(),
		Total:           cart.TotalAfterDiscount(),
	}
	for _, line := range cart.Lines() {
		rec.Lines = append(rec.Lines, ledger.SaleLine{Name: line.ProductName, Quantity: line.Quantity, LineTotal: line.Total()})
	}
	if err := s.ledger.Append(ctx, rec); err != nil {
		return Receipt{}, err
	}
	receipt.Record = rec

	path, renderErr := s.renderer.Render(ctx, rec, delivery != nil)
	receipt.InvoicePath = path

	cart.Reset()
	if s.logger != nil {
		s.logger.Info("sale finalized",
			slog.Int("invoice_id", rec.InvoiceID),
			slog.Float64("total", rec.Total),
			slog.Bool("delivery", delivery != nil))
	}
	if renderErr != nil {
		return receipt, fmt.Errorf("checkout: render invoice %d: %w", rec.InvoiceID, renderErr)
	}
	return receipt, nil
}
