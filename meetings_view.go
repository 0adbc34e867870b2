package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// buildMeetingsView renders the meetings page: every upcoming meeting
// with its attendees and a jump into the mailbox at the first related
// email.
func (fa *FlowApp) buildMeetingsView() fyne.CanvasObject {
	heading := widget.NewLabelWithStyle("Meetings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	page := container.NewVBox(heading, widget.NewSeparator())
	for _, m := range fa.records.UpcomingMeetings() {
		page.Add(fa.meetingCard(m))
	}

	return container.NewVScroll(container.NewPadded(page))
}
