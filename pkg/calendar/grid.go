package calendar

import (
	"time"

	"github.com/prisha207/flow-onestop/pkg/models"
)

// MonthGrid is the derived view of one calendar month: the ordered day
// sequence, the number of leading padding cells, and the event set used
// for per-day aggregation. It is recomputed from scratch whenever the
// visible month or the event set changes; the data volumes make caching
// pointless.
type MonthGrid struct {
	Current    time.Time
	MonthStart time.Time
	MonthEnd   time.Time

	// Days holds every calendar day of the month in order. Padding is
	// the weekday index of MonthStart (0 = Sunday), i.e. the number of
	// empty leading cells that push day 1 into its weekday column. No
	// trailing padding is computed.
	Days    []time.Time
	Padding int

	events []models.CalendarEvent
}

// NewMonthGrid builds the grid for the month containing current.
func NewMonthGrid(current time.Time, events []models.CalendarEvent) *MonthGrid {
	monthStart := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	days := make([]time.Time, 0, monthEnd.Day())
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return &MonthGrid{
		Current:    current,
		MonthStart: monthStart,
		MonthEnd:   monthEnd,
		Days:       days,
		Padding:    int(monthStart.Weekday()),
		events:     events,
	}
}

// EventsForDay returns the events whose start falls on the same calendar
// day, in source order. Time of day is ignored.
func (g *MonthGrid) EventsForDay(day time.Time) []models.CalendarEvent {
	matched := []models.CalendarEvent{}
	for _, ev := range g.events {
		if SameDay(ev.Date, day) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// MonthEvents returns the events starting within [MonthStart, MonthEnd],
// in source order.
func (g *MonthGrid) MonthEvents() []models.CalendarEvent {
	matched := []models.CalendarEvent{}
	for _, ev := range g.events {
		if SameDay(ev.Date, g.MonthStart) || SameDay(ev.Date, g.MonthEnd) ||
			(ev.Date.After(g.MonthStart) && ev.Date.Before(g.MonthEnd)) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// RelatedEmails resolves the double hop from a selected day to its
// related emails: the day's events, then every email whose
// related-meeting reference equals one of those event ids. Emails keep
// their input order; dangling references simply never match.
func (g *MonthGrid) RelatedEmails(day time.Time, emails []models.Email) []models.Email {
	dayEvents := g.EventsForDay(day)
	if len(dayEvents) == 0 {
		return nil
	}

	eventIDs := make(map[string]bool, len(dayEvents))
	for _, ev := range dayEvents {
		eventIDs[ev.ID] = true
	}

	matched := []models.Email{}
	for _, e := range emails {
		if e.RelatedMeetingID != "" && eventIDs[e.RelatedMeetingID] {
			matched = append(matched, e)
		}
	}
	return matched
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// NextMonth shifts the reference date one calendar month forward, with
// the standard library's rollover for short months.
func NextMonth(current time.Time) time.Time {
	return current.AddDate(0, 1, 0)
}

// PreviousMonth shifts the reference date one calendar month back.
func PreviousMonth(current time.Time) time.Time {
	return current.AddDate(0, -1, 0)
}
