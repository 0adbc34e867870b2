package components

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/prisha207/flow-onestop/pkg/models"
)

// NewMeetingCard builds a card for a meeting, with an optional jump to
// the email context when the meeting has related emails.
func NewMeetingCard(meeting models.Meeting, relatedCount int, onViewContext func()) fyne.CanvasObject {
	timeRange := widget.NewLabelWithStyle(
		fmt.Sprintf("%s - %s", meeting.Time.Format("3:04 PM"), meeting.EndTime.Format("3:04 PM")),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	date := widget.NewLabel(meeting.Time.Format("Jan 2, 2006"))
	date.Importance = widget.MediumImportance

	purpose := widget.NewLabel(meeting.Purpose)
	purpose.Wrapping = fyne.TextWrapWord
	purpose.Importance = widget.MediumImportance

	attendees := widget.NewLabel("Attendees: " + strings.Join(meeting.Attendees, ", "))
	attendees.Importance = widget.MediumImportance

	content := container.NewVBox(
		container.NewHBox(timeRange, date),
		purpose,
		attendees,
	)

	if relatedCount > 0 && onViewContext != nil {
		content.Add(container.NewHBox(
			widget.NewButton(fmt.Sprintf("View email context (%d)", relatedCount), onViewContext),
		))
	}

	return widget.NewCard(meeting.Title, "", content)
}
