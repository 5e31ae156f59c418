package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/verdepos/verdepos/internal/orders"
)

func (s *Shell) showCourierMenu() {
	menu := s.menuList("Menú de Domiciliario")
	menu.AddItem("Ver pedidos pendientes", "", 0, s.showPendingOrders)
	menu.AddItem("Volver al inicio", "", 0, s.showLogin)
	s.switchTo(pageMenu, centered(menu, 50, 8))
}

func (s *Shell) showPendingOrders() {
	pending, err := s.orders.ListPending(s.ctx)
	if err != nil {
		s.showError(err, s.showCourierMenu)
		return
	}
	if len(pending) == 0 {
		s.showMessage("No hay pedidos pendientes.", s.showCourierMenu)
		return
	}
	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true)
	list.SetTitle(" Pedidos pendientes ")
	for _, order := range pending {
		order := order
		list.AddItem(fmt.Sprintf("%s | %s | %d productos", order.ClientName, order.Address, len(order.Lines)), "", 0, func() {
			s.showOrderDetail(order)
		})
	}
	list.AddItem("Volver", "", 0, s.showCourierMenu)
	s.switchTo(pageContent, centered(list, 70, len(pending)+6))
}

func (s *Shell) showOrderDetail(order orders.Order) {
	var b strings.Builder
	fmt.Fprintf(&b, "Cliente: %s\nDirección: %s\n\n", order.ClientName, order.Address)
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%s x%d\n", line.Name, line.Quantity)
	}

	view := tview.NewTextView()
	view.SetText(b.String())
	view.SetBorder(true)
	view.SetTitle(" Pedido ")

	actions := tview.NewList().ShowSecondaryText(false)
	actions.AddItem("Aceptar pedido", "", 0, func() {
		if err := s.orders.Accept(s.ctx, order.Ref); err != nil {
			s.showError(err, s.showPendingOrders)
			return
		}
		s.showMessage("Pedido aceptado.", s.showPendingOrders)
	})
	actions.AddItem("Volver", "", 0, s.showPendingOrders)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view, 0, 2, false).
		AddItem(actions, 4, 1, true)
	s.switchTo(pageContent, centered(flex, 70, 20))
}
