package store

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/prisha207/flow-onestop/pkg/models"
)

// SessionState holds the mutable per-session state shared by every view:
// saved drafts, reminder events scheduled this session, the handled-email
// set, and the Can Wait expansion flag. State lives for the process
// lifetime only; nothing here is persisted.
//
// Guarded by a RWMutex so a render never observes a half-applied
// mutation.
type SessionState struct {
	mu        sync.RWMutex
	drafts    []models.Draft
	scheduled []models.CalendarEvent
	handled   map[string]bool

	canWaitExpanded bool
}

// NewSessionState creates an empty session.
func NewSessionState() *SessionState {
	return &SessionState{
		handled: make(map[string]bool),
	}
}

// AddDraft upserts a draft by id: an existing draft with the same id is
// removed and the new version appended, so the drafts bar lists the most
// recently saved draft last. Relative order of other drafts is
// preserved.
func (s *SessionState) AddDraft(d models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drafts {
		if s.drafts[i].ID == d.ID {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			break
		}
	}
	s.drafts = append(s.drafts, d)
}

// SendReply validates a reply body and, on success, consumes the draft
// saved under the given id. A blank body is rejected and nothing
// changes; sending without a saved draft is valid.
func (s *SessionState) SendReply(draftID, body string) error {
	if strings.TrimSpace(body) == "" {
		return errors.New("reply body is empty")
	}
	s.RemoveDraft(draftID)
	return nil
}

// RemoveDraft removes the draft with the given id. Absent ids are a
// no-op.
func (s *SessionState) RemoveDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drafts {
		if s.drafts[i].ID == id {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			return
		}
	}
}

// DraftByID returns a copy of the draft with the given id, or nil.
func (s *SessionState) DraftByID(id string) *models.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.drafts {
		if s.drafts[i].ID == id {
			d := s.drafts[i]
			return &d
		}
	}
	return nil
}

// Drafts returns a snapshot of the saved drafts in insertion order.
func (s *SessionState) Drafts() []models.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Draft, len(s.drafts))
	copy(out, s.drafts)
	return out
}

// AddScheduledEvent appends a scheduled reminder. Events are never
// deduplicated and never removed for the rest of the session.
func (s *SessionState) AddScheduledEvent(ev models.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduled = append(s.scheduled, ev)
}

// ScheduledEvents returns a snapshot of the session's scheduled events.
func (s *SessionState) ScheduledEvents() []models.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CalendarEvent, len(s.scheduled))
	copy(out, s.scheduled)
	return out
}

// MarkHandled records an email as handled for the rest of the session.
// Idempotent. The stored email flags are never mutated; handled ids are
// excluded at read time by FilterHandled.
func (s *SessionState) MarkHandled(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handled[id] = true
}

// IsHandled reports whether an email was marked handled this session.
func (s *SessionState) IsHandled(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.handled[id]
}

// FilterHandled returns the emails not yet marked handled, preserving
// order.
func (s *SessionState) FilterHandled(emails []models.Email) []models.Email {
	s.mu.RLock()
	defer s.mu.RUnlock()

	remaining := []models.Email{}
	for _, e := range emails {
		if !s.handled[e.ID] {
			remaining = append(remaining, e)
		}
	}
	return remaining
}

// ToggleCanWait flips the Can Wait section expansion and returns the new
// state. The toggle has no other side effects.
func (s *SessionState) ToggleCanWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.canWaitExpanded = !s.canWaitExpanded
	return s.canWaitExpanded
}

// CanWaitExpanded reports whether the Can Wait section is expanded.
func (s *SessionState) CanWaitExpanded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.canWaitExpanded
}
