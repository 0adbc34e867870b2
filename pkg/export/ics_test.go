package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prisha207/flow-onestop/pkg/models"
)

func TestEncode(t *testing.T) {
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		{
			ID:      "meeting-2",
			Title:   "VC Call - TechVentures",
			Date:    time.Date(2026, time.February, 1, 14, 0, 0, 0, time.UTC),
			EndDate: time.Date(2026, time.February, 1, 15, 0, 0, 0, time.UTC),
			Type:    models.EventMeeting,
		},
		{
			ID:      "event-1",
			Title:   "Capstone Draft Due",
			Date:    time.Date(2026, time.February, 5, 17, 0, 0, 0, time.UTC),
			EndDate: time.Date(2026, time.February, 5, 17, 0, 0, 0, time.UTC),
			Type:    models.EventDeadline,
		},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, events, now); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"VERSION:2.0",
		"UID:meeting-2",
		"SUMMARY:VC Call - TechVentures",
		"CATEGORIES:meeting",
		"UID:event-1",
		"CATEGORIES:deadline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}

	// The zero-length deadline has no DTEND; only the meeting does.
	if got := strings.Count(out, "DTEND"); got != 1 {
		t.Errorf("DTEND count = %d, want 1", got)
	}
}

func TestEncodeGeneratesUIDWhenMissing(t *testing.T) {
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		{Title: "Untracked", Date: now, Type: models.EventReminder},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, events, now); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for _, line := range strings.Split(buf.String(), "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			if strings.TrimPrefix(line, "UID:") == "" {
				t.Error("generated UID is empty")
			}
			return
		}
	}
	t.Error("no UID line in output")
}

func TestEncodeRejectsEmptySet(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, time.Now()); err == nil {
		t.Error("expected error for empty event set")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes despite error", buf.Len())
	}
}
