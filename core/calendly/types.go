package calendly

import "time"

// Event statuses as reported by Calendly.
const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
)

// RemoteEvent is one item of the scheduled_events collection.
type RemoteEvent struct {
	URI       string    `json:"uri" validate:"required,url"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtefield=StartTime"`
	Status    string    `json:"status" validate:"required,oneof=active canceled"`
}

// RemoteInvitee is one item of an event's invitees collection.
type RemoteInvitee struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Timezone string `json:"timezone"`
	Status   string `json:"status"`
}

type pagination struct {
	Count         int     `json:"count"`
	NextPage      *string `json:"next_page"`
	NextPageToken *string `json:"next_page_token"`
}

type collectionPage[T any] struct {
	Collection []T        `json:"collection"`
	Pagination pagination `json:"pagination"`
}

type userResponse struct {
	Resource struct {
		URI string `json:"uri" validate:"required,url"`
	} `json:"resource" validate:"required"`
}

type errorBody struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
