package store

import (
	"time"

	"github.com/prisha207/flow-onestop/pkg/models"
)

// sessionDate is the fixed "today" of the demo data set. Every record
// lands on or around this day so the focus view always has content.
var sessionDate = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)

func at(day, hour, min int) time.Time {
	return time.Date(2026, time.February, day, hour, min, 0, 0, time.Local)
}

func seedEmails() []models.Email {
	return []models.Email{
		{
			ID:               "email-1",
			Sender:           "Prof. Williams",
			SenderEmail:      "j.williams@university.edu",
			Subject:          "Capstone Project Deadline Extension Request",
			Summary:          "Regarding your request - I can give you until Friday, but need the draft by Wednesday for review.",
			Timestamp:        at(1, 6, 30),
			IsCarryover:      true,
			RelatedMeetingID: "meeting-1",
			Category:         models.CategoryWork,
		},
		{
			ID:               "email-2",
			Sender:           "Ravi Mehta",
			SenderEmail:      "ravi@techventures.vc",
			Subject:          "Follow-up: Seed Round Discussion",
			Summary:          "Impressed by your demo yesterday. Our partners want to schedule a deeper dive into your traction metrics.",
			Timestamp:        at(1, 5, 15),
			IsCarryover:      true,
			RelatedMeetingID: "meeting-2",
			Category:         models.CategoryWork,
		},
		{
			ID:             "email-3",
			Sender:         "Ananya (Co-founder)",
			SenderEmail:    "ananya@ourstartup.io",
			Subject:        "Beta user feedback compiled",
			Summary:        "Put together all the feedback from our 50 beta users. Top request is mobile app - should we prioritize?",
			Timestamp:      at(1, 8, 45),
			NeedsAttention: true,
			Category:       models.CategoryWork,
		},
		{
			ID:          "email-4",
			Sender:      "University Housing",
			SenderEmail: "housing@university.edu",
			Subject:     "Room assignment confirmed for Spring",
			Summary:     "Your room assignment for Spring semester has been confirmed. Check the portal for details.",
			Timestamp:   at(1, 9, 0),
			IsRead:      true,
			CanWait:     true,
			Category:    models.CategoryNotification,
		},
		{
			ID:          "email-5",
			Sender:      "Indie Hackers Weekly",
			SenderEmail: "newsletter@indiehackers.com",
			Subject:     "How a solo founder hit $10K MRR while in college",
			Summary:     "This week: inspiring stories from student founders building in public.",
			Timestamp:   at(1, 7, 0),
			IsRead:      true,
			CanWait:     true,
			Category:    models.CategoryNewsletter,
		},
		{
			ID:               "email-6",
			Sender:           "AWS Activate",
			SenderEmail:      "activate@aws.amazon.com",
			Subject:          "Your $5,000 credits are expiring soon",
			Summary:          "Reminder: Your startup credits expire in 30 days. Apply for an extension or use them before March 1.",
			Timestamp:        at(1, 10, 30),
			NeedsAttention:   true,
			RelatedMeetingID: "meeting-3",
			Category:         models.CategoryWork,
		},
		{
			ID:          "email-7",
			Sender:      "Campus Events",
			SenderEmail: "events@university.edu",
			Subject:     "Startup Pitch Competition - Registration Open",
			Summary:     "Annual entrepreneurship pitch competition. $10K prize pool. Registration closes Feb 15.",
			Timestamp:   at(1, 6, 0),
			IsRead:      true,
			CanWait:     true,
			Category:    models.CategoryNotification,
		},
	}
}

func seedMeetings() []models.Meeting {
	return []models.Meeting{
		{
			ID:              "meeting-1",
			Title:           "Office Hours - Prof. Williams",
			Time:            at(1, 10, 0),
			EndTime:         at(1, 10, 30),
			Purpose:         "Discuss capstone project scope and get feedback on MVP approach.",
			RelatedEmailIDs: []string{"email-1"},
			Attendees:       []string{"Prof. Williams", "You"},
		},
		{
			ID:              "meeting-2",
			Title:           "VC Call - TechVentures",
			Time:            at(1, 14, 0),
			EndTime:         at(1, 15, 0),
			Purpose:         "Deep dive into metrics, user growth, and funding ask for seed round.",
			RelatedEmailIDs: []string{"email-2"},
			Attendees:       []string{"Ravi Mehta", "Partner Team", "Ananya", "You"},
		},
		{
			ID:              "meeting-3",
			Title:           "Co-founder Sync",
			Time:            at(1, 17, 0),
			EndTime:         at(1, 17, 45),
			Purpose:         "Review beta feedback, plan sprint priorities, discuss AWS credits.",
			RelatedEmailIDs: []string{"email-6", "email-3"},
			Attendees:       []string{"Ananya", "You"},
		},
	}
}

// seedEvents derives meeting-type events from the meeting list (keyed by
// the meeting id) and appends the standalone month entries.
func seedEvents(meetings []models.Meeting) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(meetings)+5)
	for _, m := range meetings {
		events = append(events, models.CalendarEvent{
			ID:      m.ID,
			Title:   m.Title,
			Date:    m.Time,
			EndDate: m.EndTime,
			Type:    models.EventMeeting,
		})
	}

	events = append(events,
		models.CalendarEvent{
			ID:      "event-1",
			Title:   "Capstone Draft Due",
			Date:    at(5, 17, 0),
			EndDate: at(5, 17, 0),
			Type:    models.EventDeadline,
		},
		models.CalendarEvent{
			ID:      "event-2",
			Title:   "CS 401 Lecture",
			Date:    at(3, 9, 0),
			EndDate: at(3, 10, 30),
			Type:    models.EventMeeting,
		},
		models.CalendarEvent{
			ID:      "event-3",
			Title:   "Pitch Competition Deadline",
			Date:    at(15, 23, 59),
			EndDate: at(15, 23, 59),
			Type:    models.EventDeadline,
		},
		models.CalendarEvent{
			ID:      "event-4",
			Title:   "Midterm - Data Structures",
			Date:    at(10, 14, 0),
			EndDate: at(10, 16, 0),
			Type:    models.EventDeadline,
		},
		models.CalendarEvent{
			ID:      "event-5",
			Title:   "Product Launch Prep",
			Date:    at(20, 10, 0),
			EndDate: at(20, 12, 0),
			Type:    models.EventMeeting,
		},
	)

	return events
}
