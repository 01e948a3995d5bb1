// Package meetings owns the local mirror of Calendly meetings.
//
// The Store upserts CalendarEvent rows keyed by the Calendly event id and serves
// the two read views: every event (latest first) and the active meetings of a
// calendar date in a fixed UTC offset (earliest first). Service and Handler expose
// those views over HTTP, including an iCalendar feed of today's meetings.
package meetings
