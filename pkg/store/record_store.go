package store

import (
	"time"

	"github.com/prisha207/flow-onestop/pkg/models"
)

// RecordStore holds the fixed demo record set. All queries are pure reads
// that preserve insertion order; unknown ids resolve to nil or an empty
// slice, never an error.
type RecordStore struct {
	emails   []models.Email
	meetings []models.Meeting
	events   []models.CalendarEvent
	today    time.Time
}

// NewRecordStore builds a store populated with the demo data.
func NewRecordStore() *RecordStore {
	meetings := seedMeetings()
	return &RecordStore{
		emails:   seedEmails(),
		meetings: meetings,
		events:   seedEvents(meetings),
		today:    sessionDate,
	}
}

// Today returns the fixed session date the demo data is anchored on.
func (rs *RecordStore) Today() time.Time {
	return rs.today
}

// Emails returns every email in insertion order.
func (rs *RecordStore) Emails() []models.Email {
	return rs.emails
}

// Carryover returns the emails flagged urgent and unresolved from a prior
// period.
func (rs *RecordStore) Carryover() []models.Email {
	return rs.filterEmails(func(e models.Email) bool { return e.IsCarryover })
}

// NeedsAttention returns the emails flagged for attention today.
func (rs *RecordStore) NeedsAttention() []models.Email {
	return rs.filterEmails(func(e models.Email) bool { return e.NeedsAttention })
}

// CanWait returns the emails that can be deferred.
func (rs *RecordStore) CanWait() []models.Email {
	return rs.filterEmails(func(e models.Email) bool { return e.CanWait })
}

// EmailsByCategory returns the emails in a mailbox category. An empty
// category returns everything.
func (rs *RecordStore) EmailsByCategory(cat models.EmailCategory) []models.Email {
	if cat == "" {
		return rs.emails
	}
	return rs.filterEmails(func(e models.Email) bool { return e.Category == cat })
}

// EmailByID returns the email with the given id, or nil.
func (rs *RecordStore) EmailByID(id string) *models.Email {
	for i := range rs.emails {
		if rs.emails[i].ID == id {
			return &rs.emails[i]
		}
	}
	return nil
}

// MeetingByID returns the meeting with the given id, or nil.
func (rs *RecordStore) MeetingByID(id string) *models.Meeting {
	for i := range rs.meetings {
		if rs.meetings[i].ID == id {
			return &rs.meetings[i]
		}
	}
	return nil
}

// RelatedEmails returns the emails whose related-meeting reference equals
// the given meeting id, in insertion order. A dangling id yields an empty
// slice.
func (rs *RecordStore) RelatedEmails(meetingID string) []models.Email {
	return rs.filterEmails(func(e models.Email) bool { return e.RelatedMeetingID == meetingID })
}

// TodaysMeetings returns the meetings shown on the focus day view. The
// demo data set covers a single day, so no date filtering is applied.
func (rs *RecordStore) TodaysMeetings() []models.Meeting {
	return rs.meetings
}

// UpcomingMeetings returns the meetings page list: everything from the
// trailing one-year horizon forward.
func (rs *RecordStore) UpcomingMeetings() []models.Meeting {
	horizon := rs.today.AddDate(-1, 0, 0)
	upcoming := []models.Meeting{}
	for _, m := range rs.meetings {
		if !m.Time.Before(horizon) {
			upcoming = append(upcoming, m)
		}
	}
	return upcoming
}

// Events returns the base calendar events in insertion order. Events
// scheduled during the session live in SessionState and are appended by
// the caller.
func (rs *RecordStore) Events() []models.CalendarEvent {
	return rs.events
}

func (rs *RecordStore) filterEmails(keep func(models.Email) bool) []models.Email {
	matched := []models.Email{}
	for _, e := range rs.emails {
		if keep(e) {
			matched = append(matched, e)
		}
	}
	return matched
}
