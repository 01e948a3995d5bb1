package models

import "time"

// Status is the lifecycle state of a scheduled meeting.
type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

// CalendarEvent is the local mirror of one scheduled Calendly meeting and its
// first invitee. ExternalID is the unique key; every other column is overwritten
// on each sync pass that observes the event.
type CalendarEvent struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ExternalID   string    `gorm:"column:calendly_event_id;size:64;not null;uniqueIndex" json:"calendly_event_id"`
	InviteeName  string    `gorm:"column:invitee_name;size:255" json:"invitee_name"`
	InviteeEmail string    `gorm:"column:invitee_email;size:255" json:"invitee_email"`
	StartTime    time.Time `gorm:"column:event_start;not null;index" json:"event_start"`
	EndTime      time.Time `gorm:"column:event_end;not null" json:"event_end"`
	Timezone     string    `gorm:"column:timezone;size:64" json:"timezone"`
	Status       Status    `gorm:"column:status;size:16;not null;index" json:"status"`
}

// TableName keeps the table name used by the existing deployment.
func (CalendarEvent) TableName() string {
	return "calendly_events"
}

// MutableColumns are overwritten on conflict with an existing external id.
var MutableColumns = []string{
	"invitee_name",
	"invitee_email",
	"event_start",
	"event_end",
	"timezone",
	"status",
}

// IsActive reports whether the meeting is still scheduled.
func (e CalendarEvent) IsActive() bool {
	return e.Status == StatusActive
}
