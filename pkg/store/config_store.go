package store

import "fyne.io/fyne/v2"

// Settings holds the persisted user preferences. Record and session data
// intentionally reset each run; only these flags survive restarts.
type Settings struct {
	AutoStart      bool
	ShowAllActions bool // full action row on every email card
	DetailedGrid   bool // "N events" count labels instead of dot markers
}

// ConfigStore handles settings persistence using Fyne preferences
type ConfigStore struct {
	app fyne.App
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{app: app}
}

// Load loads settings from preferences
func (cs *ConfigStore) Load() *Settings {
	prefs := cs.app.Preferences()

	return &Settings{
		AutoStart:      prefs.BoolWithFallback("auto_start", false),
		ShowAllActions: prefs.BoolWithFallback("show_all_actions", true),
		DetailedGrid:   prefs.BoolWithFallback("detailed_grid", false),
	}
}

// Save saves settings to preferences
func (cs *ConfigStore) Save(settings *Settings) {
	prefs := cs.app.Preferences()

	prefs.SetBool("auto_start", settings.AutoStart)
	prefs.SetBool("show_all_actions", settings.ShowAllActions)
	prefs.SetBool("detailed_grid", settings.DetailedGrid)
}
