package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupSystemTray registers a tray menu with shortcuts to every page.
// Desktops without tray support simply skip it.
func (fa *FlowApp) setupSystemTray() {
	desk, ok := fa.app.(desktop.App)
	if !ok {
		return
	}

	open := func(route string) func() {
		return func() {
			fa.window.Show()
			fa.Navigate(route)
		}
	}

	menu := fyne.NewMenu("Flow OneStop",
		fyne.NewMenuItem("Focus Day", open(RouteFocus)),
		fyne.NewMenuItem("Mailbox", open(RouteMailbox)),
		fyne.NewMenuItem("Calendar", open(RouteCalendar)),
		fyne.NewMenuItem("Meetings", open(RouteMeetings)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", func() {
			fa.window.Show()
			fa.showSettingsDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			fa.quit()
		}),
	)
	desk.SetSystemTrayMenu(menu)
}
