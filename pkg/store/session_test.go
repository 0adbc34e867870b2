package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/prisha207/flow-onestop/pkg/models"
)

func TestMarkHandledExcludesFromBuckets(t *testing.T) {
	rs := NewRecordStore()
	s := NewSessionState()

	s.MarkHandled("email-1")
	s.MarkHandled("email-1") // idempotent

	if !s.IsHandled("email-1") {
		t.Error("email-1 not reported handled")
	}
	if s.IsHandled("email-2") {
		t.Error("email-2 reported handled")
	}

	got := emailIDs(s.FilterHandled(rs.Carryover()))
	if diff := cmp.Diff([]string{"email-2"}, got); diff != "" {
		t.Errorf("carryover after handling (-want +got):\n%s", diff)
	}

	// Other buckets are untouched.
	got = emailIDs(s.FilterHandled(rs.NeedsAttention()))
	if diff := cmp.Diff([]string{"email-3", "email-6"}, got); diff != "" {
		t.Errorf("needs attention after handling (-want +got):\n%s", diff)
	}

	// The underlying store never changes.
	if len(rs.Carryover()) != 2 {
		t.Errorf("store carryover mutated: %d entries", len(rs.Carryover()))
	}
}

func TestAddDraftUpserts(t *testing.T) {
	s := NewSessionState()
	saved := time.Date(2026, time.February, 1, 11, 0, 0, 0, time.UTC)

	s.AddDraft(models.Draft{ID: "draft-email-1", To: "Prof. Williams", Body: "first pass", SavedAt: saved})
	s.AddDraft(models.Draft{ID: "draft-email-2", To: "Ravi Mehta", Body: "hello", SavedAt: saved})
	s.AddDraft(models.Draft{ID: "draft-email-1", To: "Prof. Williams", Body: "second pass", SavedAt: saved.Add(time.Minute)})

	drafts := s.Drafts()
	if len(drafts) != 2 {
		t.Fatalf("len(Drafts) = %d, want 2", len(drafts))
	}
	// Re-saving moves the draft to the end with the latest body.
	if drafts[0].ID != "draft-email-2" {
		t.Errorf("drafts[0] = %+v", drafts[0])
	}
	if drafts[1].ID != "draft-email-1" || drafts[1].Body != "second pass" {
		t.Errorf("drafts[1] = %+v", drafts[1])
	}

	if d := s.DraftByID("draft-email-1"); d == nil || d.Body != "second pass" {
		t.Errorf("DraftByID = %+v", d)
	}
	if d := s.DraftByID("draft-email-9"); d != nil {
		t.Errorf("DraftByID miss = %+v, want nil", d)
	}
}

func TestRemoveDraft(t *testing.T) {
	s := NewSessionState()
	s.AddDraft(models.Draft{ID: "draft-email-1"})
	s.AddDraft(models.Draft{ID: "draft-email-2"})

	s.RemoveDraft("draft-email-1")
	s.RemoveDraft("draft-email-1") // absent id is a no-op

	drafts := s.Drafts()
	if len(drafts) != 1 || drafts[0].ID != "draft-email-2" {
		t.Errorf("Drafts = %+v", drafts)
	}
}

func TestSendReply(t *testing.T) {
	s := NewSessionState()
	s.AddDraft(models.Draft{ID: "draft-email-1", Body: "half-written"})

	// A blank body is rejected and the draft survives untouched.
	for _, body := range []string{"", "   ", " \n\t "} {
		if err := s.SendReply("draft-email-1", body); err == nil {
			t.Errorf("SendReply(%q) accepted a blank body", body)
		}
	}
	if drafts := s.Drafts(); len(drafts) != 1 || drafts[0].Body != "half-written" {
		t.Errorf("rejected send changed drafts: %+v", drafts)
	}

	if err := s.SendReply("draft-email-1", "Sounds good, Wednesday works."); err != nil {
		t.Fatalf("SendReply: %v", err)
	}
	if drafts := s.Drafts(); len(drafts) != 0 {
		t.Errorf("sent draft not consumed: %+v", drafts)
	}

	// Replying without a saved draft is still a valid send.
	if err := s.SendReply("draft-email-2", "ok"); err != nil {
		t.Errorf("SendReply without draft: %v", err)
	}
}

func TestScheduledEventsAccumulate(t *testing.T) {
	s := NewSessionState()
	ev := models.CalendarEvent{ID: "scheduled-1", Title: "Follow up", Type: models.EventReminder}

	s.AddScheduledEvent(ev)
	s.AddScheduledEvent(ev) // duplicates are kept

	got := s.ScheduledEvents()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if diff := cmp.Diff(ev, got[0]); diff != "" {
		t.Errorf("scheduled event mismatch (-want +got):\n%s", diff)
	}

	// Snapshots are independent of internal state.
	got[0].Title = "mutated"
	if s.ScheduledEvents()[0].Title != "Follow up" {
		t.Error("snapshot mutation leaked into session state")
	}
}

func TestToggleCanWait(t *testing.T) {
	s := NewSessionState()

	if s.CanWaitExpanded() {
		t.Error("expanded before first toggle")
	}
	if !s.ToggleCanWait() {
		t.Error("first toggle should expand")
	}
	if !s.CanWaitExpanded() {
		t.Error("not expanded after first toggle")
	}
	if s.ToggleCanWait() {
		t.Error("second toggle should collapse")
	}
}
