package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/prisha207/flow-onestop/pkg/models"
	"github.com/prisha207/flow-onestop/pkg/store"
)

var mailboxCategories = []struct {
	Label    string
	Category models.EmailCategory
}{
	{"All", ""},
	{"Work", models.CategoryWork},
	{"Personal", models.CategoryPersonal},
	{"Newsletters", models.CategoryNewsletter},
	{"Notifications", models.CategoryNotification},
}

// mailboxState holds the list filter and detail-pane selection behind
// the mailbox page, kept outside the widget closures.
type mailboxState struct {
	records  *store.RecordStore
	category string
	filtered []models.Email
	selected *models.Email
}

// newMailboxState starts on the All filter. preselect carries the id
// from the route's email query parameter; an unknown id selects nothing.
func newMailboxState(records *store.RecordStore, preselect string) *mailboxState {
	return &mailboxState{
		records:  records,
		category: "All",
		filtered: records.Emails(),
		selected: records.EmailByID(preselect),
	}
}

// setCategory swaps the visible list and drops the selection, so the
// detail pane never shows an email outside the active filter.
// Reselecting the current category is a no-op and keeps the selection.
func (ms *mailboxState) setCategory(label string) {
	if label == ms.category {
		return
	}
	for _, c := range mailboxCategories {
		if c.Label == label {
			ms.category = label
			ms.filtered = ms.records.EmailsByCategory(c.Category)
			ms.selected = nil
			return
		}
	}
}

func (ms *mailboxState) selectIndex(i int) bool {
	if i < 0 || i >= len(ms.filtered) {
		return false
	}
	e := ms.filtered[i]
	ms.selected = &e
	return true
}

func (ms *mailboxState) clearSelection() {
	ms.selected = nil
}

// buildMailboxView renders the mailbox page: category tabs over an email
// list with a detail pane.
func (fa *FlowApp) buildMailboxView(preselect string) fyne.CanvasObject {
	ms := newMailboxState(fa.records, preselect)

	detail := container.NewStack()
	updateDetail := func() {
		if ms.selected == nil {
			prompt := widget.NewLabel("Select an email to view details")
			prompt.Importance = widget.MediumImportance
			detail.Objects = []fyne.CanvasObject{container.NewCenter(prompt)}
		} else {
			detail.Objects = []fyne.CanvasObject{fa.buildEmailDetail(*ms.selected, ms.clearSelection)}
		}
		detail.Refresh()
	}

	list := widget.NewList(
		func() int {
			return len(ms.filtered)
		},
		func() fyne.CanvasObject {
			sender := widget.NewLabel("Sender")
			sender.TextStyle.Bold = true
			subject := widget.NewLabel("Subject")
			timestamp := widget.NewLabel("Time")
			timestamp.Importance = widget.MediumImportance
			return container.NewVBox(sender, subject, timestamp)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			vbox := o.(*fyne.Container)
			sender := vbox.Objects[0].(*widget.Label)
			subject := vbox.Objects[1].(*widget.Label)
			timestamp := vbox.Objects[2].(*widget.Label)

			email := ms.filtered[i]
			marker := ""
			if !email.IsRead {
				marker = "* "
			}
			sender.SetText(marker + email.Sender)
			subject.SetText(email.Subject)
			timestamp.SetText(email.Timestamp.Format("3:04 PM"))
		})

	list.OnSelected = func(id widget.ListItemID) {
		if ms.selectIndex(int(id)) {
			updateDetail()
		}
	}

	categoryLabels := make([]string, 0, len(mailboxCategories))
	for _, c := range mailboxCategories {
		categoryLabels = append(categoryLabels, c.Label)
	}
	categorySelect := widget.NewSelect(categoryLabels, func(label string) {
		ms.setCategory(label)
		list.UnselectAll()
		list.Refresh()
		updateDetail()
	})
	categorySelect.SetSelected("All")

	updateDetail()

	heading := widget.NewLabelWithStyle("Mailbox", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	split := container.NewHSplit(list, container.NewPadded(detail))
	split.SetOffset(0.35)

	return container.NewBorder(
		container.NewVBox(heading, container.NewHBox(categorySelect)),
		nil,
		nil,
		nil,
		split,
	)
}

// buildEmailDetail renders the right-hand pane for one email. onClear is
// called when the email is marked handled so the list view can drop the
// selection.
func (fa *FlowApp) buildEmailDetail(email models.Email, onClear func()) fyne.CanvasObject {
	subject := widget.NewLabelWithStyle(email.Subject, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subject.Wrapping = fyne.TextWrapWord

	from := widget.NewLabel("From: " + email.Sender + " <" + email.SenderEmail + ">")
	from.Importance = widget.MediumImportance

	timestamp := widget.NewLabel(email.Timestamp.Format("Jan 2, 2006 3:04 PM"))
	timestamp.Importance = widget.MediumImportance

	page := container.NewVBox(subject, from, timestamp)

	if email.IsCarryover {
		banner := widget.NewLabel("Carryover - Urgent")
		banner.Importance = widget.WarningImportance
		banner.TextStyle.Bold = true
		page.Add(banner)
	}

	if email.RelatedMeetingID != "" {
		// Dangling references render nothing rather than erroring.
		if meeting := fa.records.MeetingByID(email.RelatedMeetingID); meeting != nil {
			banner := widget.NewLabel("Related meeting: " + meeting.Title + " at " + meeting.Time.Format("3:04 PM"))
			banner.Importance = widget.MediumImportance
			page.Add(banner)
		}
	}

	page.Add(widget.NewSeparator())

	summary := widget.NewLabel(email.Summary)
	summary.Wrapping = fyne.TextWrapWord
	page.Add(summary)

	actions := container.NewHBox(
		widget.NewButton("Reply", func() {
			fa.showReplyDialog(email)
		}),
		widget.NewButton("Forward", func() {
			fa.showToast("Email forwarded")
		}),
		widget.NewButton("Schedule", func() {
			fa.showScheduleDialog(email.Subject)
		}),
	)
	handled := widget.NewButton("Mark as Handled", func() {
		fa.session.MarkHandled(email.ID)
		fa.showToast("Marked as handled")
		onClear()
		fa.Navigate(RouteMailbox)
	})
	handled.Importance = widget.HighImportance
	actions.Add(handled)
	page.Add(actions)

	return container.NewVScroll(page)
}
