package models

import "time"

// EmailCategory classifies an email for the mailbox filter tabs.
type EmailCategory string

const (
	CategoryWork         EmailCategory = "work"
	CategoryPersonal     EmailCategory = "personal"
	CategoryNewsletter   EmailCategory = "newsletter"
	CategoryNotification EmailCategory = "notification"
)

// Email represents a single inbox message.
type Email struct {
	ID               string
	Sender           string // display name
	SenderEmail      string
	Subject          string
	Summary          string
	Timestamp        time.Time
	IsRead           bool
	IsCarryover      bool // urgent and unresolved from a prior period
	NeedsAttention   bool
	CanWait          bool
	RelatedMeetingID string // weak reference, resolved by store lookup
	Category         EmailCategory
}
