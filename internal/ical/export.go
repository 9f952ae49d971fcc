// Package ical serializes event snapshots to iCalendar documents.
package ical

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/example/calendar-resolver/internal/application"
)

const productID = "-//calendar-resolver//EN"

// Export renders the supplied events as a VCALENDAR document. Each event
// becomes one VEVENT carrying its window, title, and place.
func Export(events []application.Event) (string, error) {
	for _, ev := range events {
		if !ev.End.After(ev.Start) {
			return "", fmt.Errorf("event %s: end must be after start", ev.ID)
		}
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range events {
		vevent := cal.AddEvent(ev.ID)
		vevent.SetSummary(ev.Title)
		vevent.SetStartAt(ev.Start)
		vevent.SetEndAt(ev.End)
		if ev.Place != "" {
			vevent.SetLocation(ev.Place)
		}
		if !ev.CreatedAt.IsZero() {
			vevent.SetCreatedTime(ev.CreatedAt)
		}
		if !ev.UpdatedAt.IsZero() {
			vevent.SetDtStampTime(ev.UpdatedAt)
		}
	}

	return cal.Serialize(), nil
}
