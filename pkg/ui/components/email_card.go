package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/prisha207/flow-onestop/pkg/models"
)

// EmailCardVariant selects the visual treatment of an email card.
type EmailCardVariant int

const (
	EmailCardDefault EmailCardVariant = iota
	EmailCardCarryover
	EmailCardAttention
)

// EmailCardActions carries the callbacks wired to the card's action row.
// Nil callbacks hide the corresponding button.
type EmailCardActions struct {
	OnReply       func()
	OnSchedule    func()
	OnSnooze      func()
	OnMarkHandled func()
}

// NewEmailCard builds a card for the focus-day lists. showAllActions
// controls whether the secondary actions (Schedule, Snooze) are offered;
// Reply and Mark Handled are always shown.
func NewEmailCard(email models.Email, variant EmailCardVariant, showAllActions bool, actions EmailCardActions) fyne.CanvasObject {
	sender := widget.NewLabelWithStyle(email.Sender, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	timestamp := widget.NewLabel(email.Timestamp.Format("3:04 PM"))
	timestamp.Importance = widget.MediumImportance

	header := container.NewBorder(nil, nil, sender, timestamp)

	subject := widget.NewLabel(email.Subject)
	summary := widget.NewLabel(email.Summary)
	summary.Wrapping = fyne.TextWrapWord
	summary.Importance = widget.MediumImportance

	content := container.NewVBox(header)
	if badge := variantBadge(variant); badge != nil {
		content.Add(badge)
	}
	content.Add(subject)
	content.Add(summary)

	buttons := container.NewHBox()
	if actions.OnReply != nil {
		buttons.Add(widget.NewButton("Reply", actions.OnReply))
	}
	if showAllActions && actions.OnSchedule != nil {
		buttons.Add(widget.NewButton("Schedule", actions.OnSchedule))
	}
	if showAllActions && actions.OnSnooze != nil {
		buttons.Add(widget.NewButton("Snooze", actions.OnSnooze))
	}
	if actions.OnMarkHandled != nil {
		handled := widget.NewButton("Mark Handled", actions.OnMarkHandled)
		handled.Importance = widget.HighImportance
		buttons.Add(handled)
	}
	content.Add(buttons)

	card := widget.NewCard("", "", content)
	return card
}

func variantBadge(variant EmailCardVariant) *widget.Label {
	switch variant {
	case EmailCardCarryover:
		badge := widget.NewLabel("Carryover - Urgent")
		badge.Importance = widget.WarningImportance
		badge.TextStyle.Bold = true
		return badge
	case EmailCardAttention:
		badge := widget.NewLabel("Needs attention")
		badge.Importance = widget.DangerImportance
		return badge
	default:
		return nil
	}
}
