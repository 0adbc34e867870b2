package models

import "time"

// Meeting represents a scheduled meeting with attendees.
type Meeting struct {
	ID              string
	Title           string
	Time            time.Time
	EndTime         time.Time
	Purpose         string
	RelatedEmailIDs []string // weak references, resolved by store lookup
	Attendees       []string
}
