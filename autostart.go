package main

import (
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
	"github.com/pkg/errors"
)

// setupAutostart aligns the login-item registration with the setting,
// registering or removing the running executable as needed. Callers
// decide whether a failure is worth logging.
func setupAutostart(enable bool) error {
	execPath, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "locate executable")
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return errors.Wrap(err, "resolve executable path")
	}

	app := &autostart.App{
		Name:        "flow-onestop",
		DisplayName: "Flow OneStop",
		Exec:        []string{execPath},
	}

	switch {
	case enable && !app.IsEnabled():
		return errors.Wrap(app.Enable(), "enable autostart")
	case !enable && app.IsEnabled():
		return errors.Wrap(app.Disable(), "disable autostart")
	}
	return nil
}
