package models

import "time"

// Draft is an unsent reply. The id convention enforces at most one draft
// per email.
type Draft struct {
	ID      string
	To      string // recipient display name
	ToEmail string
	Subject string
	Body    string
	SavedAt time.Time
}

// DraftID returns the draft id for an email.
func DraftID(emailID string) string {
	return "draft-" + emailID
}
