package ui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/go-playground/validator/v10"
	"github.com/rivo/tview"

	"github.com/verdepos/verdepos/internal/auth"
	"github.com/verdepos/verdepos/internal/checkout"
	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/ledger"
	"github.com/verdepos/verdepos/internal/orders"
	"github.com/verdepos/verdepos/internal/procurement"
)

const (
	pageLogin   = "login"
	pageMenu    = "menu"
	pageContent = "content"
	pageModal   = "modal"
)

// Deps carries everything the shell drives. The shell is presentation only;
// no business rule lives here.
type Deps struct {
	Logger      *slog.Logger
	Auth        *auth.Service
	Store       *inventory.Store
	Checkout    *checkout.Service
	Ledger      *ledger.Ledger
	Orders      *orders.Service
	Procurement *procurement.Service

	LowStockThreshold int
}

// Shell owns the tview application, the page stack and the session state.
type Shell struct {
	app      *tview.Application
	pages    *tview.Pages
	logger   *slog.Logger
	validate *validator.Validate
	ctx      context.Context

	auth        *auth.Service
	store       *inventory.Store
	checkout    *checkout.Service
	ledger      *ledger.Ledger
	orders      *orders.Service
	procurement *procurement.Service

	lowStockThreshold int
}

// New builds the shell.
func New(deps Deps) *Shell {
	return &Shell{
		app:               tview.NewApplication(),
		pages:             tview.NewPages(),
		logger:            deps.Logger,
		validate:          validator.New(),
		auth:              deps.Auth,
		store:             deps.Store,
		checkout:          deps.Checkout,
		ledger:            deps.Ledger,
		orders:            deps.Orders,
		procurement:       deps.Procurement,
		lowStockThreshold: deps.LowStockThreshold,
	}
}

// Run blocks on the terminal event loop until the user quits.
func (s *Shell) Run(ctx context.Context) error {
	s.ctx = ctx
	s.showLogin()
	s.app.SetRoot(s.pages, true)
	return s.app.Run()
}

// switchTo replaces everything on the page stack with one primitive.
func (s *Shell) switchTo(name string, p tview.Primitive) {
	for _, page := range []string{pageLogin, pageMenu, pageContent, pageModal} {
		s.pages.RemovePage(page)
	}
	s.pages.AddPage(name, p, true, true)
	s.app.SetFocus(p)
}

// overlay shows a primitive on top of the current page.
func (s *Shell) overlay(name string, p tview.Primitive) {
	s.pages.AddPage(name, p, true, true)
	s.app.SetFocus(p)
}

func (s *Shell) closeOverlay(name string) {
	s.pages.RemovePage(name)
}

// menuList builds a role menu; pressing q quits the application, matching
// the original keybinding on menu screens.
func (s *Shell) menuList(title string) *tview.List {
	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true)
	list.SetTitle(" " + title + " ")
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Rune() == 'Q' {
			s.app.Stop()
			return nil
		}
		return event
	})
	return list
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
