package ui

import "github.com/rivo/tview"

// showMessage pops a dismissible modal over the current page. All errors
// reaching the shell end up here; nothing propagates past the UI boundary.
func (s *Shell) showMessage(text string, onDone func()) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Volver"}).
		SetDoneFunc(func(int, string) {
			s.closeOverlay(pageModal)
			if onDone != nil {
				onDone()
			}
		})
	s.overlay(pageModal, modal)
}

func (s *Shell) showError(err error, onDone func()) {
	s.showMessage("Error: "+err.Error(), onDone)
}

// confirm asks a yes/no question.
func (s *Shell) confirm(text string, onYes func()) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Aceptar", "Cancelar"}).
		SetDoneFunc(func(_ int, label string) {
			s.closeOverlay(pageModal)
			if label == "Aceptar" && onYes != nil {
				onYes()
			}
		})
	s.overlay(pageModal, modal)
}
