// Package export renders calendar events as iCalendar data so the
// visible month can be handed to a real calendar application.
package export

import (
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/prisha207/flow-onestop/pkg/models"
)

const productID = "-//flow-onestop//Calendar Export//EN"

// Encode writes the given events as a VCALENDAR stream. Events keep
// their stable ids as UIDs so repeated exports stay consistent; an event
// without an id gets a generated UUID. The event type is carried in
// CATEGORIES. An empty event set is rejected: a VCALENDAR must contain
// at least one component.
func Encode(w io.Writer, events []models.CalendarEvent, now time.Time) error {
	if len(events) == 0 {
		return errors.New("no events to export")
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, ev := range events {
		ve := ical.NewEvent()

		uid := ev.ID
		if uid == "" {
			uid = uuid.New().String()
		}
		ve.Props.SetText(ical.PropUID, uid)
		ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		ve.Props.SetText(ical.PropSummary, ev.Title)
		ve.Props.SetText(ical.PropCategories, string(ev.Type))
		ve.Props.SetDateTime(ical.PropDateTimeStart, ev.Date)

		// Deadlines are stored as zero-length events; DTEND is only
		// meaningful when the event actually spans time.
		if ev.EndDate.After(ev.Date) {
			ve.Props.SetDateTime(ical.PropDateTimeEnd, ev.EndDate)
		}

		cal.Children = append(cal.Children, ve.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return errors.Wrap(err, "encode calendar")
	}
	return nil
}
