package meetings

import (
	"time"

	"meeting-sync/feature/meetings/models"

	ics "github.com/arran4/golang-ical"
)

const productID = "-//meeting-sync//Calendly mirror//EN"

// BuildCalendar renders events as an iCalendar document. The invitee is listed
// as attendee so calendar clients show who the meeting is with.
func BuildCalendar(events []models.CalendarEvent, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("Today's meetings")

	for _, e := range events {
		ev := cal.AddEvent(e.ExternalID + "@calendly")
		ev.SetDtStampTime(stamp.UTC())
		ev.SetStartAt(e.StartTime.UTC())
		ev.SetEndAt(e.EndTime.UTC())
		ev.SetSummary(summaryFor(e))
		if e.IsActive() {
			ev.SetStatus(ics.ObjectStatusConfirmed)
		} else {
			ev.SetStatus(ics.ObjectStatusCancelled)
		}
		if e.InviteeEmail != "" {
			ev.AddAttendee("mailto:"+e.InviteeEmail, ics.WithCN(e.InviteeName))
		}
		if e.Timezone != "" {
			ev.SetDescription("Invitee timezone: " + e.Timezone)
		}
	}

	return cal.Serialize()
}

func summaryFor(e models.CalendarEvent) string {
	if e.InviteeName == "" {
		return "Meeting"
	}
	return "Meeting with " + e.InviteeName
}
