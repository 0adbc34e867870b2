package main

import (
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
)

// The four in-app routes. Anything else renders the not-found view.
const (
	RouteFocus    = "focus"
	RouteMailbox  = "mailbox"
	RouteCalendar = "calendar"
	RouteMeetings = "meetings"
)

type navButton struct {
	button *widget.Button
}

// parseRoute splits a route string like "mailbox?email=email-3" into the
// page name and its query values. An empty route means the landing page.
// Unknown page names are returned as-is; the caller decides how to render
// them.
func parseRoute(route string) (string, url.Values, error) {
	u, err := url.Parse(route)
	if err != nil {
		return "", nil, errors.Wrapf(err, "parse route %q", route)
	}

	name := strings.Trim(u.Path, "/")
	if name == "" {
		name = RouteFocus
	}
	return name, u.Query(), nil
}

// Navigate swaps the content pane to the named route. Unknown routes get
// the not-found view rather than an error; a malformed route string is
// logged and treated the same way.
func (fa *FlowApp) Navigate(route string) {
	name, query, err := parseRoute(route)
	if err != nil {
		log.Printf("Bad route %q: %v", route, err)
		name = route
		query = url.Values{}
	}

	var page fyne.CanvasObject
	switch name {
	case RouteFocus:
		page = fa.buildFocusView()
	case RouteMailbox:
		page = fa.buildMailboxView(query.Get("email"))
	case RouteCalendar:
		page = fa.buildCalendarView()
	case RouteMeetings:
		page = fa.buildMeetingsView()
	default:
		page = fa.buildNotFoundView(route)
	}

	fa.currentRoute = name
	fa.highlightNav(name)

	fa.content.Objects = []fyne.CanvasObject{page}
	fa.content.Refresh()
	fa.draftsBar.Refresh()
}

func (fa *FlowApp) buildHeader() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Flow OneStop", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	fa.navButtons = map[string]*navButton{}
	nav := container.NewHBox()
	for _, entry := range []struct {
		route string
		label string
	}{
		{RouteFocus, "Focus Day"},
		{RouteMailbox, "Mailbox"},
		{RouteCalendar, "Calendar"},
		{RouteMeetings, "Meetings"},
	} {
		route := entry.route
		b := widget.NewButton(entry.label, func() {
			fa.Navigate(route)
		})
		fa.navButtons[route] = &navButton{button: b}
		nav.Add(b)
	}

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		fa.showSettingsDialog()
	})

	header := container.NewBorder(nil, widget.NewSeparator(), title, settingsButton, container.NewCenter(nav))
	return header
}

func (fa *FlowApp) highlightNav(active string) {
	for route, nb := range fa.navButtons {
		if route == active {
			nb.button.Importance = widget.HighImportance
		} else {
			nb.button.Importance = widget.MediumImportance
		}
		nb.button.Refresh()
	}
}

// buildNotFoundView is the fallback for routes outside the route table.
func (fa *FlowApp) buildNotFoundView(route string) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle("Page not found", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	detail := widget.NewLabel("There is no page at \"" + route + "\".")
	detail.Alignment = fyne.TextAlignCenter
	detail.Importance = widget.MediumImportance

	back := widget.NewButton("Back to Focus Day", func() {
		fa.Navigate(RouteFocus)
	})
	back.Importance = widget.HighImportance

	return container.NewCenter(container.NewVBox(heading, detail, container.NewCenter(back)))
}
