package main

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/prisha207/flow-onestop/pkg/calendar"
	"github.com/prisha207/flow-onestop/pkg/models"
)

// showReplyDialog opens the reply composer for an email. Sending with an
// empty body is rejected without touching any state; saving stores an
// upserted draft keyed by the email id, so replying again resumes the
// same draft.
func (fa *FlowApp) showReplyDialog(email models.Email) {
	toEntry := widget.NewEntry()
	toEntry.SetText(email.SenderEmail)
	toEntry.Disable()

	subjectEntry := widget.NewEntry()
	subjectEntry.SetText("Re: " + email.Subject)
	subjectEntry.Disable()

	bodyEntry := widget.NewMultiLineEntry()
	bodyEntry.SetPlaceHolder("Write your reply...")
	bodyEntry.SetMinRowsVisible(6)
	bodyEntry.Wrapping = fyne.TextWrapWord
	if draft := fa.session.DraftByID(models.DraftID(email.ID)); draft != nil {
		bodyEntry.SetText(draft.Body)
	}

	original := widget.NewLabel(fmt.Sprintf("Original message from %s:\n%s", email.Sender, email.Summary))
	original.Wrapping = fyne.TextWrapWord
	original.Importance = widget.MediumImportance

	var d dialog.Dialog

	send := widget.NewButton("Send Reply", func() {
		if err := fa.session.SendReply(models.DraftID(email.ID), bodyEntry.Text); err != nil {
			fa.showErrorToast("Please write a reply")
			return
		}
		fa.draftsBar.Refresh()
		fa.showToast("Reply sent to " + email.Sender)
		d.Hide()
	})
	send.Importance = widget.HighImportance

	saveDraft := widget.NewButton("Save Draft", func() {
		fa.session.AddDraft(models.Draft{
			ID:      models.DraftID(email.ID),
			To:      email.Sender,
			ToEmail: email.SenderEmail,
			Subject: "Re: " + email.Subject,
			Body:    bodyEntry.Text,
			SavedAt: time.Now(),
		})
		fa.draftsBar.Refresh()
		fa.showToast("Draft saved")
		d.Hide()
	})

	content := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("To", toEntry),
			widget.NewFormItem("Subject", subjectEntry),
			widget.NewFormItem("Message", bodyEntry),
		),
		original,
		container.NewHBox(layout.NewSpacer(), saveDraft, send),
	)

	d = dialog.NewCustom("Reply to "+email.Sender, "Cancel", content, fa.window)
	d.Resize(fyne.NewSize(560, 500))
	d.Show()
}

// showEditDraftDialog reopens a saved draft from the drafts bar.
func (fa *FlowApp) showEditDraftDialog(draft models.Draft) {
	toEntry := widget.NewEntry()
	toEntry.SetText(draft.ToEmail)
	toEntry.Disable()

	subjectEntry := widget.NewEntry()
	subjectEntry.SetText(draft.Subject)
	subjectEntry.Disable()

	bodyEntry := widget.NewMultiLineEntry()
	bodyEntry.SetText(draft.Body)
	bodyEntry.SetMinRowsVisible(6)
	bodyEntry.Wrapping = fyne.TextWrapWord

	var d dialog.Dialog

	send := widget.NewButton("Send Reply", func() {
		if err := fa.session.SendReply(draft.ID, bodyEntry.Text); err != nil {
			fa.showErrorToast("Please write a reply")
			return
		}
		fa.draftsBar.Refresh()
		fa.showToast("Reply sent to " + draft.To)
		d.Hide()
	})
	send.Importance = widget.HighImportance

	content := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("To", toEntry),
			widget.NewFormItem("Subject", subjectEntry),
			widget.NewFormItem("Message", bodyEntry),
		),
		container.NewHBox(layout.NewSpacer(), send),
	)

	d = dialog.NewCustom("Edit Draft", "Cancel", content, fa.window)
	d.Resize(fyne.NewSize(560, 420))
	d.Show()
}

// showScheduleDialog asks for a date and a half-hour slot, then records a
// reminder event for the email. Missing or malformed input rejects the
// whole action; nothing is recorded.
func (fa *FlowApp) showScheduleDialog(subject string) {
	dateEntry := widget.NewEntry()
	dateEntry.SetPlaceHolder("2026-02-10")

	timeSelect := widget.NewSelect(calendar.TimeSlots(), nil)
	timeSelect.PlaceHolder = "Pick a time"

	items := []*widget.FormItem{
		widget.NewFormItem("Date", dateEntry),
		widget.NewFormItem("Time", timeSelect),
	}

	dialog.ShowForm("Schedule Email", "Schedule", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		var date time.Time
		if dateEntry.Text != "" {
			if parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dateEntry.Text), time.Local); err == nil {
				date = parsed
			}
		}

		event, err := calendar.BuildReminder(subject, date, timeSelect.Selected, time.Now())
		if err != nil {
			fa.showErrorToast("Please select both date and time")
			return
		}

		fa.session.AddScheduledEvent(event)
		fa.showToast(fmt.Sprintf("Scheduled for %s at %s",
			event.Date.Format("Jan 2, 2006"), timeSelect.Selected))
	}, fa.window)
}
