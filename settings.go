package main

import (
	"log"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettingsDialog edits the persisted preferences. Saving re-renders
// the current page so the presentation flags take effect immediately.
func (fa *FlowApp) showSettingsDialog() {
	autoStartCheck := widget.NewCheck("Launch at login", nil)
	autoStartCheck.SetChecked(fa.settings.AutoStart)

	actionsCheck := widget.NewCheck("Show all actions on email cards", nil)
	actionsCheck.SetChecked(fa.settings.ShowAllActions)

	gridCheck := widget.NewCheck("Detailed calendar grid (event counts)", nil)
	gridCheck.SetChecked(fa.settings.DetailedGrid)

	items := []*widget.FormItem{
		widget.NewFormItem("Startup", autoStartCheck),
		widget.NewFormItem("Email cards", actionsCheck),
		widget.NewFormItem("Calendar", gridCheck),
	}

	dialog.ShowForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		fa.settings.AutoStart = autoStartCheck.Checked
		fa.settings.ShowAllActions = actionsCheck.Checked
		fa.settings.DetailedGrid = gridCheck.Checked

		if err := setupAutostart(fa.settings.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
		}
		fa.configStore.Save(fa.settings)

		fa.showToast("Settings saved")
		fa.Navigate(fa.currentRoute)
	}, fa.window)
}
