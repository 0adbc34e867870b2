package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/prisha207/flow-onestop/pkg/calendar"
	"github.com/prisha207/flow-onestop/pkg/export"
	"github.com/prisha207/flow-onestop/pkg/models"
)

// visibleEvents is the event set the calendar aggregates: the fixed
// records followed by everything scheduled this session.
func (fa *FlowApp) visibleEvents() []models.CalendarEvent {
	events := append([]models.CalendarEvent{}, fa.records.Events()...)
	return append(events, fa.session.ScheduledEvents()...)
}

// buildCalendarView renders the month grid with a day-detail panel. The
// grid is recomputed from the stores on every build, so a reminder
// scheduled elsewhere shows up on the next visit without any cache
// invalidation.
func (fa *FlowApp) buildCalendarView() fyne.CanvasObject {
	grid := calendar.NewMonthGrid(fa.calendarMonth, fa.visibleEvents())

	heading := widget.NewLabelWithStyle("Calendar", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		fa.calendarMonth = calendar.PreviousMonth(fa.calendarMonth)
		fa.Navigate(RouteCalendar)
	})
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		fa.calendarMonth = calendar.NextMonth(fa.calendarMonth)
		fa.Navigate(RouteCalendar)
	})
	monthLabel := widget.NewLabelWithStyle(grid.MonthStart.Format("January 2006"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	exportButton := widget.NewButtonWithIcon("Export month", theme.DocumentSaveIcon(), func() {
		fa.exportMonth(grid)
	})

	header := container.NewBorder(nil, nil, heading,
		container.NewHBox(exportButton, prev, monthLabel, next))

	page := container.NewHSplit(
		fa.buildMonthGrid(grid),
		container.NewVScroll(fa.buildDayDetail(grid)),
	)
	page.SetOffset(0.65)

	return container.NewBorder(container.NewVBox(header, widget.NewSeparator()), nil, nil, nil, page)
}

// buildMonthGrid lays out the weekday header row, the leading padding
// cells, and one cell per day. Padding pushes day 1 into its weekday
// column; no trailing padding is added.
func (fa *FlowApp) buildMonthGrid(grid *calendar.MonthGrid) fyne.CanvasObject {
	cells := []fyne.CanvasObject{}
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		h := widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		h.Importance = widget.MediumImportance
		cells = append(cells, h)
	}

	for i := 0; i < grid.Padding; i++ {
		cells = append(cells, widget.NewLabel(""))
	}

	for _, day := range grid.Days {
		cells = append(cells, fa.buildDayCell(grid, day))
	}

	return container.NewVScroll(container.NewGridWithColumns(7, cells...))
}

func (fa *FlowApp) buildDayCell(grid *calendar.MonthGrid, day time.Time) fyne.CanvasObject {
	dayEvents := grid.EventsForDay(day)

	selectDay := day
	button := widget.NewButton(fmt.Sprintf("%d", day.Day()), func() {
		fa.selectedDate = selectDay
		fa.Navigate(RouteCalendar)
	})
	if calendar.SameDay(day, fa.selectedDate) {
		button.Importance = widget.HighImportance
	} else if calendar.SameDay(day, fa.records.Today()) {
		button.Importance = widget.MediumImportance
	} else {
		button.Importance = widget.LowImportance
	}

	marker := widget.NewLabel(dayMarker(dayEvents, fa.settings.DetailedGrid))
	marker.Alignment = fyne.TextAlignCenter
	marker.Importance = widget.MediumImportance

	return container.NewVBox(button, marker)
}

// dayMarker renders the per-day event indicator. The minimal variant
// shows up to three dots regardless of overflow; the detailed variant
// collapses multiple events into a count label.
func dayMarker(dayEvents []models.CalendarEvent, detailed bool) string {
	switch {
	case len(dayEvents) == 0:
		return ""
	case detailed && len(dayEvents) > 1:
		return fmt.Sprintf("%d events", len(dayEvents))
	case detailed:
		return dayEvents[0].Title
	default:
		dots := len(dayEvents)
		if dots > 3 {
			dots = 3
		}
		return strings.Repeat("•", dots)
	}
}

// buildDayDetail renders the selected day's events and, below them, the
// emails related to those events (matched by event id as a meeting id).
func (fa *FlowApp) buildDayDetail(grid *calendar.MonthGrid) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(fa.selectedDate.Format("Monday, January 2"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	panel := container.NewVBox(heading)

	dayEvents := grid.EventsForDay(fa.selectedDate)
	if len(dayEvents) == 0 {
		empty := widget.NewLabel("No events")
		empty.Importance = widget.MediumImportance
		panel.Add(empty)
	}
	for _, ev := range dayEvents {
		typeTag := widget.NewLabel(strings.ToUpper(string(ev.Type)))
		typeTag.Importance = eventImportance(ev.Type)
		typeTag.TextStyle.Bold = true

		timeLine := ev.Date.Format("3:04 PM")
		if ev.EndDate.After(ev.Date) {
			timeLine += " - " + ev.EndDate.Format("3:04 PM")
		}

		panel.Add(widget.NewCard(ev.Title, timeLine, typeTag))
	}

	related := grid.RelatedEmails(fa.selectedDate, fa.records.Emails())
	if len(related) > 0 {
		panel.Add(widget.NewLabelWithStyle("Related Emails", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		for _, e := range related {
			email := e
			open := widget.NewButton("Open in mailbox", func() {
				fa.Navigate(RouteMailbox + "?email=" + email.ID)
			})
			sender := widget.NewLabel(email.Sender)
			sender.Importance = widget.MediumImportance
			panel.Add(widget.NewCard(email.Subject, "", container.NewVBox(sender, container.NewHBox(open))))
		}
	}

	return container.NewPadded(panel)
}

// eventImportance maps the semantic event color onto widget importance:
// meetings render primary, deadlines destructive, reminders accented.
func eventImportance(t models.EventType) widget.Importance {
	switch t.DisplayColor() {
	case models.ColorDanger:
		return widget.DangerImportance
	case models.ColorAccent:
		return widget.WarningImportance
	default:
		return widget.HighImportance
	}
}

// exportMonth writes the visible month's events as an iCalendar file.
func (fa *FlowApp) exportMonth(grid *calendar.MonthGrid) {
	monthEvents := grid.MonthEvents()
	if len(monthEvents) == 0 {
		fa.showErrorToast("No events in this month to export")
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, fa.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := export.Encode(writer, monthEvents, time.Now()); err != nil {
			log.Printf("Error exporting calendar: %v", err)
			dialog.ShowError(err, fa.window)
			return
		}
		fa.showToast(fmt.Sprintf("Exported %d events", len(monthEvents)))
	}, fa.window)
	save.SetFileName(grid.MonthStart.Format("2006-01") + ".ics")
	save.Show()
}
