package calendlysync

import (
	"fmt"
	"strings"
	"time"

	"meeting-sync/core/calendly"
	"meeting-sync/core/utils"
	"meeting-sync/feature/meetings/models"
)

// Normalize maps a remote event and its first invitee onto a local record.
// Instants are stored in UTC at second precision.
func Normalize(event calendly.RemoteEvent, invitee calendly.RemoteInvitee) (models.CalendarEvent, error) {
	id := utils.LastPathSegment(event.URI)
	if id == "" {
		return models.CalendarEvent{}, fmt.Errorf("event uri %q has no identifier", event.URI)
	}

	return models.CalendarEvent{
		ExternalID:   id,
		InviteeName:  strings.TrimSpace(invitee.Name),
		InviteeEmail: strings.TrimSpace(invitee.Email),
		StartTime:    event.StartTime.UTC().Truncate(time.Second),
		EndTime:      event.EndTime.UTC().Truncate(time.Second),
		Timezone:     invitee.Timezone,
		Status:       models.Status(event.Status),
	}, nil
}
