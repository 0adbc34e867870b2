package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const toastDuration = 2 * time.Second

// showToast flashes a transient confirmation near the bottom of the
// window. Toasts are fire-and-forget; the triggering action never waits
// on them.
func (fa *FlowApp) showToast(message string) {
	fa.flashToast(message, widget.SuccessImportance)
}

// showErrorToast flashes a rejection message for a refused action.
func (fa *FlowApp) showErrorToast(message string) {
	fa.flashToast(message, widget.DangerImportance)
}

func (fa *FlowApp) flashToast(message string, importance widget.Importance) {
	label := widget.NewLabel(message)
	label.Importance = importance
	label.TextStyle.Bold = true

	pop := widget.NewPopUp(container.NewPadded(label), fa.window.Canvas())

	canvasSize := fa.window.Canvas().Size()
	popSize := pop.MinSize()
	pop.ShowAtPosition(fyne.NewPos(
		(canvasSize.Width-popSize.Width)/2,
		canvasSize.Height-popSize.Height-60,
	))

	go func() {
		time.Sleep(toastDuration)
		fyne.Do(func() {
			pop.Hide()
		})
	}()
}
