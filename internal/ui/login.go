package ui

import (
	"github.com/rivo/tview"

	"github.com/verdepos/verdepos/internal/auth"
)

func (s *Shell) showLogin() {
	form := tview.NewForm()
	form.AddInputField("Usuario", "", 30, nil, nil)
	form.AddPasswordField("Contraseña", "", 30, '*', nil)
	form.AddButton("Ingresar", func() {
		username := form.GetFormItemByLabel("Usuario").(*tview.InputField).GetText()
		password := form.GetFormItemByLabel("Contraseña").(*tview.InputField).GetText()

		account, err := s.auth.Authenticate(username, password)
		if err != nil {
			form.GetFormItemByLabel("Usuario").(*tview.InputField).SetText("")
			form.GetFormItemByLabel("Contraseña").(*tview.InputField).SetText("")
			s.showMessage("Credenciales incorrectas. Intente nuevamente", nil)
			return
		}
		s.route(account)
	})
	form.AddButton("Salir", func() { s.app.Stop() })
	form.SetBorder(true)
	form.SetTitle(" Login ")

	s.switchTo(pageLogin, centered(form, 44, 11))
}

func (s *Shell) route(account auth.Account) {
	switch account.Role {
	case auth.RoleAdmin:
		s.showAdminMenu()
	case auth.RoleSeller:
		s.showSellerMenu()
	case auth.RoleCourier:
		s.showCourierMenu()
	default:
		s.showLogin()
	}
}
