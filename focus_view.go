package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/prisha207/flow-onestop/pkg/models"
	"github.com/prisha207/flow-onestop/pkg/ui/components"
)

// buildFocusView renders the landing page: emails partitioned into
// Carryover / Needs Attention / Can Wait around today's meetings.
// Handled emails are filtered out of every bucket; the buckets read the
// store fresh on every build.
func (fa *FlowApp) buildFocusView() fyne.CanvasObject {
	carryover := fa.session.FilterHandled(fa.records.Carryover())
	needsAttention := fa.session.FilterHandled(fa.records.NeedsAttention())
	canWait := fa.session.FilterHandled(fa.records.CanWait())

	heading := widget.NewLabelWithStyle("Focus Day View", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	dateLabel := widget.NewLabel(fa.records.Today().Format("Monday, January 2"))
	pill := widget.NewLabel(fmt.Sprintf("%d items need attention", len(carryover)))
	pill.Importance = widget.WarningImportance

	page := container.NewVBox(
		heading,
		container.NewHBox(dateLabel, pill),
		widget.NewSeparator(),
	)

	page.Add(sectionHeader("Carryover", "Urgent from last 8 hours"))
	page.Add(fa.emailSection(carryover, components.EmailCardCarryover))

	page.Add(sectionHeader("Today's Meetings", ""))
	meetings := container.NewVBox()
	for _, m := range fa.records.TodaysMeetings() {
		meetings.Add(fa.meetingCard(m))
	}
	page.Add(meetings)

	page.Add(sectionHeader("Needs Attention (Today)", ""))
	page.Add(fa.emailSection(needsAttention, components.EmailCardAttention))

	expanded := fa.session.CanWaitExpanded()
	toggleIcon := theme.MenuExpandIcon()
	if expanded {
		toggleIcon = theme.MenuDropDownIcon()
	}
	toggle := widget.NewButtonWithIcon(fmt.Sprintf("Can Wait (%d items)", len(canWait)), toggleIcon, func() {
		fa.session.ToggleCanWait()
		fa.Navigate(RouteFocus)
	})
	page.Add(container.NewHBox(toggle))
	if expanded {
		page.Add(fa.emailSection(canWait, components.EmailCardDefault))
	}

	return container.NewVScroll(container.NewPadded(page))
}

func sectionHeader(title, subtext string) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	if subtext == "" {
		return heading
	}
	sub := widget.NewLabel(subtext)
	sub.Importance = widget.MediumImportance
	return container.NewHBox(heading, sub)
}

func (fa *FlowApp) emailSection(emails []models.Email, variant components.EmailCardVariant) fyne.CanvasObject {
	if len(emails) == 0 {
		caughtUp := widget.NewLabel("All caught up!")
		caughtUp.Importance = widget.MediumImportance
		return caughtUp
	}

	section := container.NewVBox()
	for _, e := range emails {
		section.Add(fa.emailCard(e, variant))
	}
	return section
}

func (fa *FlowApp) emailCard(email models.Email, variant components.EmailCardVariant) fyne.CanvasObject {
	return components.NewEmailCard(email, variant, fa.settings.ShowAllActions, components.EmailCardActions{
		OnReply: func() {
			fa.showReplyDialog(email)
		},
		OnSchedule: func() {
			fa.showScheduleDialog(email.Subject)
		},
		OnSnooze: func() {
			fa.showToast("Email snoozed")
		},
		OnMarkHandled: func() {
			fa.session.MarkHandled(email.ID)
			fa.showToast("Marked as handled")
			fa.Navigate(RouteFocus)
		},
	})
}

func (fa *FlowApp) meetingCard(meeting models.Meeting) fyne.CanvasObject {
	related := fa.records.RelatedEmails(meeting.ID)
	var onView func()
	if len(related) > 0 {
		first := related[0].ID
		onView = func() {
			fa.Navigate(RouteMailbox + "?email=" + first)
		}
	}
	return components.NewMeetingCard(meeting, len(related), onView)
}
