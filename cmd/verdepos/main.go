package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/verdepos/verdepos/internal/app"
	"github.com/verdepos/verdepos/internal/auth"
	"github.com/verdepos/verdepos/internal/checkout"
	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/invoice"
	"github.com/verdepos/verdepos/internal/ledger"
	"github.com/verdepos/verdepos/internal/orders"
	"github.com/verdepos/verdepos/internal/procurement"
	"github.com/verdepos/verdepos/internal/ui"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	store, err := inventory.Open(cfg.Path(cfg.InventoryFile))
	if err != nil {
		logger.Error("load inventory", slog.Any("error", err))
		os.Exit(1)
	}

	salesLedger := ledger.NewLedger(cfg.Path(cfg.LedgerFile), cfg.Path(cfg.DailyDir))
	sequence := ledger.NewSequence(cfg.Path(cfg.SequenceFile))
	orderIntake := orders.NewService(cfg.Path(cfg.PendingOrdersDir), cfg.Path(cfg.AcceptedOrdersDir))
	renderer := invoice.NewRenderer(cfg.StoreName, cfg.Path(cfg.InvoiceDir), cfg.Path(cfg.DeliveryInvoiceDir))
	checkoutService := checkout.NewService(logger, store, salesLedger, sequence, orderIntake, renderer)
	procurementService := procurement.NewService(cfg.Path(cfg.PurchaseFile), store)

	shell := ui.New(ui.Deps{
		Logger:            logger,
		Auth:              auth.NewService(auth.DefaultAccounts()),
		Store:             store,
		Checkout:          checkoutService,
		Ledger:            salesLedger,
		Orders:            orderIntake,
		Procurement:       procurementService,
		LowStockThreshold: cfg.LowStockThreshold,
	})

	if err := shell.Run(context.Background()); err != nil {
		logger.Error("run ui", slog.Any("error", err))
		os.Exit(1)
	}
}
