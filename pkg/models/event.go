package models

import "time"

// EventType classifies a calendar event for display.
type EventType string

const (
	EventMeeting  EventType = "meeting"
	EventReminder EventType = "reminder"
	EventDeadline EventType = "deadline"
)

// DisplayColor is the semantic color class an event renders with. The UI
// layer maps these onto theme colors.
type DisplayColor string

const (
	ColorPrimary DisplayColor = "primary"
	ColorDanger  DisplayColor = "danger"
	ColorAccent  DisplayColor = "accent"
)

// DisplayColor returns the color class for an event type. Unknown types
// fall back to the primary color.
func (t EventType) DisplayColor() DisplayColor {
	switch t {
	case EventMeeting:
		return ColorPrimary
	case EventDeadline:
		return ColorDanger
	case EventReminder:
		return ColorAccent
	default:
		return ColorPrimary
	}
}

// CalendarEvent is a single entry on the month calendar. Meeting-type
// events derived from the meeting list share the meeting's id, which is
// what lets the calendar detail panel resolve related emails.
type CalendarEvent struct {
	ID      string
	Title   string
	Date    time.Time
	EndDate time.Time
	Type    EventType
	Color   string // optional display override
}
