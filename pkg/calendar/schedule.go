package calendar

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/prisha207/flow-onestop/pkg/models"
)

// DefaultReminderDuration is applied when scheduling an email reminder;
// the dialog only asks for a start time.
const DefaultReminderDuration = 30 * time.Minute

// BuildReminder validates a schedule request and constructs the reminder
// event. date carries the calendar day, clock the "HH:MM" slot from the
// picker. Validation failure leaves no trace: the caller surfaces the
// error and mutates nothing.
func BuildReminder(title string, date time.Time, clock string, now time.Time) (models.CalendarEvent, error) {
	if date.IsZero() || clock == "" {
		return models.CalendarEvent{}, errors.New("both date and time are required")
	}

	t, err := time.Parse("15:04", clock)
	if err != nil {
		return models.CalendarEvent{}, errors.Wrapf(err, "invalid time %q", clock)
	}

	if title == "" {
		title = "Scheduled Email"
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
	return models.CalendarEvent{
		ID:      fmt.Sprintf("scheduled-%d", now.UnixMilli()),
		Title:   title,
		Date:    start,
		EndDate: start.Add(DefaultReminderDuration),
		Type:    models.EventReminder,
	}, nil
}

// TimeSlots lists the half-hour slot labels offered by the schedule
// dialog, "00:00" through "23:30".
func TimeSlots() []string {
	slots := make([]string, 0, 48)
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}
