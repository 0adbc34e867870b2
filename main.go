package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/prisha207/flow-onestop/pkg/store"
)

// FlowApp wires the window, the record/session stores, and the
// navigation surface together. All state transitions happen on the Fyne
// event thread; the session store's own locking keeps derived views
// consistent either way.
type FlowApp struct {
	app    fyne.App
	window fyne.Window

	records     *store.RecordStore
	session     *store.SessionState
	configStore *store.ConfigStore
	settings    *store.Settings

	content      *fyne.Container
	navButtons   map[string]*navButton
	draftsBar    *DraftsBar
	currentRoute string

	// Calendar page state, kept across navigations so month position
	// and selection survive switching pages.
	calendarMonth time.Time
	selectedDate  time.Time
}

func main() {
	fa := &FlowApp{
		app:     app.NewWithID("com.prisha207.flowonestop"),
		records: store.NewRecordStore(),
		session: store.NewSessionState(),
	}

	if err := fa.initialize(); err != nil {
		log.Fatal(err)
	}

	fa.run()
}

func (fa *FlowApp) initialize() error {
	fa.configStore = store.NewConfigStore(fa.app)
	fa.settings = fa.configStore.Load()

	// Sync autostart state with settings on startup
	if err := setupAutostart(fa.settings.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	fa.calendarMonth = fa.records.Today()
	fa.selectedDate = fa.records.Today()

	fa.window = fa.app.NewWindow("Flow OneStop")
	fa.window.Resize(fyne.NewSize(1100, 760))
	fa.window.CenterOnScreen()

	fa.draftsBar = NewDraftsBar(fa)
	fa.buildShell()
	fa.setupSystemTray()

	fa.Navigate(RouteFocus)

	return nil
}

func (fa *FlowApp) run() {
	fa.window.ShowAndRun()
}

// buildShell assembles the fixed chrome: header navigation on top, the
// drafts bar on the bottom, and the swappable page content in between.
func (fa *FlowApp) buildShell() {
	fa.content = container.NewStack()

	shell := container.NewBorder(
		fa.buildHeader(),
		fa.draftsBar.Container(),
		nil,
		nil,
		fa.content,
	)

	fa.window.SetContent(shell)
}

func (fa *FlowApp) quit() {
	fa.app.Quit()
}
