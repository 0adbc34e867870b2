package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/prisha207/flow-onestop/pkg/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewMonthGridShape(t *testing.T) {
	tests := []struct {
		name    string
		current time.Time
		padding int
		days    int
	}{
		{"feb 2026 starts sunday", day(2026, time.February, 1), 0, 28},
		{"mar 2026 starts sunday", day(2026, time.March, 15), 0, 31},
		{"jul 2026 starts wednesday", day(2026, time.July, 4), 3, 31},
		{"aug 2026 starts saturday", day(2026, time.August, 31), 6, 31},
		{"feb 2024 leap year", day(2024, time.February, 10), 4, 29},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewMonthGrid(tc.current, nil)
			if g.Padding != tc.padding {
				t.Errorf("Padding = %d, want %d", g.Padding, tc.padding)
			}
			if len(g.Days) != tc.days {
				t.Errorf("len(Days) = %d, want %d", len(g.Days), tc.days)
			}
			if g.MonthStart.Day() != 1 {
				t.Errorf("MonthStart day = %d, want 1", g.MonthStart.Day())
			}
			if g.MonthEnd.Day() != tc.days {
				t.Errorf("MonthEnd day = %d, want %d", g.MonthEnd.Day(), tc.days)
			}
			if !g.Days[0].Equal(g.MonthStart) || !g.Days[len(g.Days)-1].Equal(g.MonthEnd) {
				t.Errorf("Days span %v..%v, want %v..%v",
					g.Days[0], g.Days[len(g.Days)-1], g.MonthStart, g.MonthEnd)
			}
		})
	}
}

func TestEventsForDayIgnoresTimeOfDay(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: "a", Title: "Morning", Date: time.Date(2026, time.February, 5, 9, 0, 0, 0, time.UTC)},
		{ID: "b", Title: "Evening", Date: time.Date(2026, time.February, 5, 21, 30, 0, 0, time.UTC)},
		{ID: "c", Title: "Other day", Date: time.Date(2026, time.February, 6, 9, 0, 0, 0, time.UTC)},
	}
	g := NewMonthGrid(day(2026, time.February, 1), events)

	got := g.EventsForDay(day(2026, time.February, 5))
	wantIDs := []string{"a", "b"}
	var gotIDs []string
	for _, ev := range got {
		gotIDs = append(gotIDs, ev.ID)
	}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("EventsForDay ids mismatch (-want +got):\n%s", diff)
	}

	if got := g.EventsForDay(day(2026, time.February, 7)); len(got) != 0 {
		t.Errorf("empty day returned %d events", len(got))
	}
}

func TestMonthEventsBounds(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: "before", Date: time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC)},
		{ID: "first", Date: time.Date(2026, time.February, 1, 0, 30, 0, 0, time.UTC)},
		{ID: "mid", Date: time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)},
		{ID: "last", Date: time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC)},
		{ID: "after", Date: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	g := NewMonthGrid(day(2026, time.February, 10), events)

	var gotIDs []string
	for _, ev := range g.MonthEvents() {
		gotIDs = append(gotIDs, ev.ID)
	}
	want := []string{"first", "mid", "last"}
	if diff := cmp.Diff(want, gotIDs); diff != "" {
		t.Errorf("MonthEvents ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRelatedEmailsDoubleHop(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: "meeting-1", Date: day(2026, time.February, 1), Type: models.EventMeeting},
		{ID: "meeting-2", Date: day(2026, time.February, 1), Type: models.EventMeeting},
		{ID: "event-1", Date: day(2026, time.February, 5), Type: models.EventDeadline},
	}
	emails := []models.Email{
		{ID: "email-1", RelatedMeetingID: "meeting-1"},
		{ID: "email-2", RelatedMeetingID: "meeting-2"},
		{ID: "email-3"},
		{ID: "email-6", RelatedMeetingID: "meeting-9"}, // dangling reference
	}
	g := NewMonthGrid(day(2026, time.February, 1), events)

	var gotIDs []string
	for _, e := range g.RelatedEmails(day(2026, time.February, 1), emails) {
		gotIDs = append(gotIDs, e.ID)
	}
	want := []string{"email-1", "email-2"}
	if diff := cmp.Diff(want, gotIDs); diff != "" {
		t.Errorf("RelatedEmails ids mismatch (-want +got):\n%s", diff)
	}

	// A deadline day has events but no email points at a deadline id.
	if got := g.RelatedEmails(day(2026, time.February, 5), emails); len(got) != 0 {
		t.Errorf("deadline day returned %d related emails", len(got))
	}

	// A day with no events short-circuits.
	if got := g.RelatedEmails(day(2026, time.February, 20), emails); got != nil {
		t.Errorf("empty day returned %v", got)
	}
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name    string
		current time.Time
		next    time.Time
		prev    time.Time
	}{
		{
			"mid-month",
			day(2026, time.February, 14),
			day(2026, time.March, 14),
			day(2026, time.January, 14),
		},
		{
			// Jan 31 + 1 month normalizes past short February.
			"rollover past february",
			day(2026, time.January, 31),
			day(2026, time.March, 3),
			day(2025, time.December, 31),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextMonth(tc.current); !got.Equal(tc.next) {
				t.Errorf("NextMonth = %v, want %v", got, tc.next)
			}
			if got := PreviousMonth(tc.current); !got.Equal(tc.prev) {
				t.Errorf("PreviousMonth = %v, want %v", got, tc.prev)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.February, 5, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same calendar day reported as different")
	}
	if SameDay(a, a.AddDate(0, 0, 1)) {
		t.Error("consecutive days reported as equal")
	}
	if SameDay(a, a.AddDate(1, 0, 0)) {
		t.Error("same month-day across years reported as equal")
	}
}
