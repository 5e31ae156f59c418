package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/shared"
)

func (s *Shell) showAdminMenu() {
	menu := s.menuList("Menú de Administrador")
	menu.AddItem("Ver inventario", "", 0, func() { s.showInventory(s.showAdminMenu) })
	menu.AddItem("Agregar producto", "", 0, s.showAddProduct)
	menu.AddItem("Borrar producto", "", 0, s.showDeleteProduct)
	menu.AddItem("Cambiar precio de venta", "", 0, s.showChangeSalePrice)
	menu.AddItem("Generar pedido", "", 0, s.showPurchaseRequest)
	menu.AddItem("Cargar pedido", "", 0, s.showImportDelivery)
	menu.AddItem("Informe por rango", "", 0, s.showRangeReport)
	menu.AddItem("Volver al inicio", "", 0, s.showLogin)
	s.switchTo(pageMenu, centered(menu, 50, 14))
}

func (s *Shell) showInventory(back func()) {
	view := tview.NewTextView()
	view.SetBorder(true)
	view.SetTitle(" Inventario ")

	products := s.store.List()
	if len(products) == 0 {
		view.SetText("El inventario está vacío.")
	} else {
		var b strings.Builder
		for _, p := range products {
			marker := ""
			if inventory.LowStock(p, s.lowStockThreshold) {
				marker = " (!!!)"
			}
			fmt.Fprintf(&b, "ID: %s | Nombre: %s | Precio de compra: %.2f | Precio de venta: %.2f | Cantidad: %d%s\n",
				p.ID, p.Name, p.CostPrice, p.SalePrice, p.Quantity, marker)
		}
		view.SetText(b.String())
	}
	view.SetDoneFunc(func(tcell.Key) { back() })
	s.switchTo(pageContent, view)
}

type productForm struct {
	Name      string `validate:"required"`
	CostPrice string `validate:"required,numeric"`
	SalePrice string `validate:"required,numeric"`
	Quantity  string `validate:"required,number"`
}

func (s *Shell) showAddProduct() {
	form := tview.NewForm()
	form.AddInputField("Nombre del producto", "", 30, nil, nil)
	form.AddInputField("Precio de compra", "", 12, nil, nil)
	form.AddInputField("Precio de venta", "", 12, nil, nil)
	form.AddInputField("Cantidad", "", 12, nil, nil)
	form.AddButton("Guardar", func() {
		in := productForm{
			Name:      fieldText(form, "Nombre del producto"),
			CostPrice: fieldText(form, "Precio de compra"),
			SalePrice: fieldText(form, "Precio de venta"),
			Quantity:  fieldText(form, "Cantidad"),
		}
		if err := s.validate.Struct(in); err != nil {
			s.showMessage("Error: Los precios deben ser números y la cantidad un entero.", nil)
			return
		}
		cost, _ := strconv.ParseFloat(in.CostPrice, 64)
		sale, _ := strconv.ParseFloat(in.SalePrice, 64)
		qty, _ := strconv.Atoi(in.Quantity)

		p, err := s.store.Add(s.ctx, in.Name, cost, sale, qty)
		if err != nil {
			s.showError(err, nil)
			return
		}
		s.showMessage(fmt.Sprintf("'%s' agregado al inventario.", p.Name), s.showAdminMenu)
	})
	form.AddButton("Volver", s.showAdminMenu)
	form.SetBorder(true)
	form.SetTitle(" Agregar producto ")
	s.switchTo(pageContent, centered(form, 50, 15))
}

func (s *Shell) pickProduct(title string, onPick func(inventory.Product)) {
	products := s.store.List()
	if len(products) == 0 {
		s.showMessage("Inventario vacío.", s.showAdminMenu)
		return
	}
	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true)
	list.SetTitle(" " + title + " ")
	for _, p := range products {
		p := p
		list.AddItem(fmt.Sprintf("ID: %s | %s | Venta: %.2f | Cantidad: %d", p.ID, p.Name, p.SalePrice, p.Quantity), "", 0, func() { onPick(p) })
	}
	list.AddItem("Volver", "", 0, s.showAdminMenu)
	s.switchTo(pageContent, centered(list, 70, len(products)+6))
}

func (s *Shell) showDeleteProduct() {
	s.pickProduct("Seleccione el producto a borrar", func(p inventory.Product) {
		if err := s.store.Delete(s.ctx, p.ID); err != nil {
			s.showError(err, s.showAdminMenu)
			return
		}
		s.showMessage(fmt.Sprintf("'%s' eliminado del inventario.", p.Name), s.showAdminMenu)
	})
}

func (s *Shell) showChangeSalePrice() {
	s.pickProduct("Seleccione el producto para cambiar el precio de venta", func(p inventory.Product) {
		form := tview.NewForm()
		form.AddInputField("Nuevo precio de venta", "", 12, nil, nil)
		form.AddButton("Guardar", func() {
			raw := fieldText(form, "Nuevo precio de venta")
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				s.showMessage("Error: El precio debe ser un número.", nil)
				return
			}
			if err := s.store.SetSalePrice(s.ctx, p.ID, price); err != nil {
				s.showError(err, nil)
				return
			}
			s.showMessage(fmt.Sprintf("Precio de venta de '%s' actualizado a %.2f.", p.Name, price), s.showAdminMenu)
		})
		form.AddButton("Volver", s.showAdminMenu)
		form.SetBorder(true)
		form.SetTitle(" Cambiar precio de venta de " + p.Name + " ")
		s.switchTo(pageContent, centered(form, 50, 9))
	})
}

func (s *Shell) showPurchaseRequest() {
	form := tview.NewForm()
	form.AddInputField("Nombre del producto", "", 30, nil, nil)
	form.AddInputField("Precio de compra", "", 12, nil, nil)
	form.AddInputField("Cantidad", "", 12, nil, nil)
	form.AddButton("Guardar", func() {
		name := fieldText(form, "Nombre del producto")
		cost, errCost := strconv.ParseFloat(fieldText(form, "Precio de compra"), 64)
		qty, errQty := strconv.Atoi(fieldText(form, "Cantidad"))
		if name == "" || errCost != nil || errQty != nil {
			s.showMessage("Error: Todos los campos son obligatorios.", nil)
			return
		}
		if err := s.procurement.AppendRequest(s.ctx, name, cost, qty); err != nil {
			s.showError(err, nil)
			return
		}
		s.showMessage(fmt.Sprintf("'%s' agregado al pedido.", name), s.showAdminMenu)
	})
	form.AddButton("Volver", s.showAdminMenu)
	form.SetBorder(true)
	form.SetTitle(" Generar pedido ")
	s.switchTo(pageContent, centered(form, 50, 13))
}

func (s *Shell) showImportDelivery() {
	form := tview.NewForm()
	form.AddInputField("Archivo de pedido", "", 50, nil, nil)
	form.AddButton("Cargar", func() {
		path := fieldText(form, "Archivo de pedido")
		if path == "" {
			s.showMessage("No se seleccionó ningún archivo.", s.showAdminMenu)
			return
		}
		applied, err := s.procurement.ImportDelivery(s.ctx, path)
		if err != nil {
			s.showError(err, s.showAdminMenu)
			return
		}
		s.showMessage(fmt.Sprintf("Pedido cargado exitosamente (%d productos).", applied), s.showAdminMenu)
	})
	form.AddButton("Volver", s.showAdminMenu)
	form.SetBorder(true)
	form.SetTitle(" Cargar pedido ")
	s.switchTo(pageContent, centered(form, 70, 9))
}

func (s *Shell) showRangeReport() {
	form := tview.NewForm()
	form.AddInputField("Desde (YYYY-MM-DD)", "", 14, nil, nil)
	form.AddInputField("Hasta (YYYY-MM-DD)", "", 14, nil, nil)
	form.AddButton("Consultar", func() {
		start, errStart := time.Parse("2006-01-02", fieldText(form, "Desde (YYYY-MM-DD)"))
		end, errEnd := time.Parse("2006-01-02", fieldText(form, "Hasta (YYYY-MM-DD)"))
		if errStart != nil || errEnd != nil {
			s.showMessage("Error: Las fechas deben tener formato YYYY-MM-DD.", nil)
			return
		}
		result, err := s.ledger.RangeReport(s.ctx, start, end)
		if err != nil {
			s.showError(err, nil)
			return
		}
		if len(result.Days) == 0 {
			s.showMessage("No hay cierres de día en el rango.", nil)
			return
		}
		var b strings.Builder
		for _, day := range result.Days {
			fmt.Fprintf(&b, "%s: %s\n", day.Date.Format("2006-01-02"), shared.FormatAmount(day.Total))
		}
		fmt.Fprintf(&b, "\nTotal del rango: %s", shared.FormatAmount(result.Total))
		s.showMessage(b.String(), nil)
	})
	form.AddButton("Volver", s.showAdminMenu)
	form.SetBorder(true)
	form.SetTitle(" Informe por rango ")
	s.switchTo(pageContent, centered(form, 50, 11))
}

func fieldText(form *tview.Form, label string) string {
	return strings.TrimSpace(form.GetFormItemByLabel(label).(*tview.InputField).GetText())
}
