package api

import "github.com/dmitrijs2005/eventhive/internal/client/models"

// EventRequest is the create/update body. The backend expects snake_case
// field names. EventLink and EventLocation are pointers so that the one not
// matching the event type is serialized as an explicit null.
type EventRequest struct {
	Title            string  `json:"title"`
	ShortDescription string  `json:"short_description"`
	LongDescription  string  `json:"long_description,omitempty"`
	OrganizerEmail   string  `json:"organizer_email"`
	EventDateTime    string  `json:"event_datetime"`
	Timezone         string  `json:"timezone"`
	EventType        string  `json:"event_type"`
	EventLink        *string `json:"event_link"`
	EventLocation    *string `json:"event_location"`
	EventHostName    string  `json:"event_host_name"`
	EventHostEmail   string  `json:"event_host_email,omitempty"`
	Tags             string  `json:"tags,omitempty"`
	Duration         int     `json:"duration,omitempty"`
}

// StatusResponse is the generic {success, message} envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthResponse is returned by a successful OTP login.
type AuthResponse struct {
	AccessToken string   `json:"accessToken"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles,omitempty"`
}

// EventsResponse carries a list of events plus server-driven pagination
// totals when page/size were sent.
type EventsResponse struct {
	Success       bool           `json:"success"`
	Events        []models.Event `json:"events"`
	TotalPages    int            `json:"totalPages"`
	TotalElements int            `json:"totalElements"`
	Message       string         `json:"message"`
}

// EventResponse carries a single event.
type EventResponse struct {
	Success bool         `json:"success"`
	DTO     models.Event `json:"dto"`
	Message string       `json:"message"`
}

// PageQuery selects a server-driven page. A nil *PageQuery requests the
// unpaginated listing.
type PageQuery struct {
	Page int
	Size int
}
