package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/verdepos/verdepos/internal/checkout"
	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/shared"
)

func (s *Shell) showSellerMenu() {
	menu := s.menuList("Menú de Vendedor")
	menu.AddItem("Ver inventario", "", 0, func() { s.showInventory(s.showSellerMenu) })
	menu.AddItem("Nueva venta", "", 0, func() { s.showSale(newSaleSession()) })
	menu.AddItem("Cierre del día", "", 0, s.showCloseOut)
	menu.AddItem("Volver al inicio", "", 0, s.showLogin)
	s.switchTo(pageMenu, centered(menu, 50, 10))
}

// saleSession is the per-sale UI state: the cart plus optional delivery data.
type saleSession struct {
	cart     *checkout.Cart
	delivery *checkout.DeliveryRequest
}

func newSaleSession() *saleSession {
	return &saleSession{cart: checkout.NewCart()}
}

func (s *Shell) showSale(session *saleSession) {
	summary := tview.NewTextView()
	summary.SetBorder(true)
	summary.SetTitle(" Venta actual ")
	summary.SetText(saleSummary(session))

	actions := tview.NewList().ShowSecondaryText(false)
	actions.SetBorder(true)
	actions.SetTitle(" Acciones ")
	actions.AddItem("Agregar producto", "", 0, func() { s.showSaleAddProduct(session) })
	actions.AddItem("Aplicar descuento", "", 0, func() { s.showSaleDiscount(session) })
	actions.AddItem("Datos de domicilio", "", 0, func() { s.showSaleDelivery(session) })
	actions.AddItem("Finalizar venta", "", 0, func() { s.finalizeSale(session) })
	actions.AddItem("Cancelar", "", 0, func() {
		session.cart.Reset()
		s.showSellerMenu()
	})

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(summary, 0, 2, false).
		AddItem(actions, 9, 1, true)
	s.switchTo(pageContent, flex)
}

func saleSummary(session *saleSession) string {
	var b strings.Builder
	lines := session.cart.Lines()
	if len(lines) == 0 {
		b.WriteString("Sin productos.\n")
	}
	for _, line := range lines {
		fmt.Fprintf(&b, "%s x%d - %s\n", line.ProductName, line.Quantity, shared.FormatAmount(line.Total()))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", shared.FormatAmount(session.cart.Total()))
	fmt.Fprintf(&b, "Descuento: %s%%\n", strconv.FormatFloat(session.cart.DiscountPercent(), 'f', -1, 64))
	fmt.Fprintf(&b, "Total a pagar: %s\n", shared.FormatAmount(session.cart.TotalAfterDiscount()))
	if session.delivery != nil {
		fmt.Fprintf(&b, "\nDomicilio para %s, %s\n", session.delivery.ClientName, session.delivery.Address)
	}
	return b.String()
}

func (s *Shell) showSaleAddProduct(session *saleSession) {
	products := s.store.List()
	if len(products) == 0 {
		s.showMessage("Inventario vacío.", func() { s.showSale(session) })
		return
	}
	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true)
	list.SetTitle(" Seleccione el producto ")
	for _, p := range products {
		p := p
		list.AddItem(fmt.Sprintf("%s | Venta: %.2f | Disponible: %d", p.Name, p.SalePrice, p.Quantity), "", 0, func() {
			s.showSaleQuantity(session, p)
		})
	}
	list.AddItem("Volver", "", 0, func() { s.showSale(session) })
	s.switchTo(pageContent, centered(list, 60, len(products)+6))
}

func (s *Shell) showSaleQuantity(session *saleSession, p inventory.Product) {
	form := tview.NewForm()
	form.AddInputField("Cantidad", "", 8, nil, nil)
	form.AddButton("Agregar", func() {
		qty, err := strconv.Atoi(fieldText(form, "Cantidad"))
		if err != nil {
			s.showMessage("Error: La cantidad debe ser un entero.", nil)
			return
		}
		if err := s.checkout.AddLine(session.cart, p.ID, qty); err != nil {
			s.showError(err, nil)
			return
		}
		s.showSale(session)
	})
	form.AddButton("Volver", func() { s.showSale(session) })
	form.SetBorder(true)
	form.SetTitle(" " + p.Name + " ")
	s.switchTo(pageContent, centered(form, 40, 9))
}

func (s *Shell) showSaleDiscount(session *saleSession) {
	form := tview.NewForm()
	form.AddInputField("Descuento (%)", "", 8, nil, nil)
	form.AddButton("Aplicar", func() {
		pct, err := strconv.ParseFloat(fieldText(form, "Descuento (%)"), 64)
		if err != nil {
			s.showMessage("Error: El descuento debe ser un número.", nil)
			return
		}
		if err := session.cart.ApplyDiscount(pct); err != nil {
			s.showError(err, nil)
			return
		}
		s.showSale(session)
	})
	form.AddButton("Volver", func() { s.showSale(session) })
	form.SetBorder(true)
	form.SetTitle(" Aplicar descuento ")
	s.switchTo(pageContent, centered(form, 40, 9))
}

type deliveryForm struct {
	ClientName string `validate:"required"`
	Address    string `validate:"required"`
}

func (s *Shell) showSaleDelivery(session *saleSession) {
	form := tview.NewForm()
	form.AddInputField("Cliente", "", 30, nil, nil)
	form.AddInputField("Dirección", "", 40, nil, nil)
	form.AddButton("Guardar", func() {
		in := deliveryForm{
			ClientName: fieldText(form, "Cliente"),
			Address:    fieldText(form, "Dirección"),
		}
		if err := s.validate.Struct(in); err != nil {
			s.showMessage("Error: Todos los campos son obligatorios.", nil)
			return
		}
		session.delivery = &checkout.DeliveryRequest{ClientName: in.ClientName, Address: in.Address}
		s.showSale(session)
	})
	form.AddButton("Quitar domicilio", func() {
		session.delivery = nil
		s.showSale(session)
	})
	form.AddButton("Volver", func() { s.showSale(session) })
	form.SetBorder(true)
	form.SetTitle(" Datos de domicilio ")
	s.switchTo(pageContent, centered(form, 56, 11))
}

func (s *Shell) finalizeSale(session *saleSession) {
	receipt, err := s.checkout.Finalize(s.ctx, session.cart, session.delivery)
	if err != nil {
		s.showError(err, func() {
			if session.cart.State() == checkout.StateEmpty {
				s.showSellerMenu()
				return
			}
			s.showSale(session)
		})
		return
	}
	msg := fmt.Sprintf("Venta finalizada.\nFactura No. %d\nTotal: %s\nPDF: %s",
		receipt.Record.InvoiceID, shared.FormatAmount(receipt.Record.Total), receipt.InvoicePath)
	s.showMessage(msg, s.showSellerMenu)
}

func (s *Shell) showCloseOut() {
	s.confirm("¿Cerrar las ventas del día de hoy?", func() {
		result, err := s.ledger.CloseOut(s.ctx, time.Now())
		if err != nil {
			s.showError(err, s.showSellerMenu)
			return
		}
		if len(result.Records) == 0 {
			s.showMessage("No hay ventas registradas hoy.", s.showSellerMenu)
			return
		}
		msg := fmt.Sprintf("Cierre del día completado.\nVentas: %d\nTotal: %s\nArchivo: %s",
			len(result.Records), shared.FormatAmount(result.Total), result.ArchivePath)
		s.showMessage(msg, s.showSellerMenu)
	})
}
