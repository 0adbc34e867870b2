package models

import "testing"

func TestEventTypeDisplayColor(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      DisplayColor
	}{
		{EventMeeting, ColorPrimary},
		{EventDeadline, ColorDanger},
		{EventReminder, ColorAccent},
		{EventType("holiday"), ColorPrimary},
		{EventType(""), ColorPrimary},
	}

	for _, tc := range tests {
		if got := tc.eventType.DisplayColor(); got != tc.want {
			t.Errorf("DisplayColor(%q) = %q, want %q", tc.eventType, got, tc.want)
		}
	}
}

func TestDraftID(t *testing.T) {
	if got := DraftID("email-3"); got != "draft-email-3" {
		t.Errorf("DraftID = %q", got)
	}
}
