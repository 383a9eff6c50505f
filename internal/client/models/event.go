// Package models defines client-side data models used by the EventHive CLI.
package models

import "strings"

// EventType classifies how an event is held.
type EventType string

const (
	EventTypeOnline   EventType = "online"
	EventTypeInPerson EventType = "in-person"
)

// Event mirrors the backend's event DTO. Exactly one of EventLink and
// EventLocation is populated, depending on EventType; the backend clears
// the other on submission.
type Event struct {
	// EventID is the server-assigned identifier.
	EventID string `json:"eventId"`

	Title string `json:"title"`

	// ShortDescription is the card/overview text; LongDescription is
	// optional detail shown on the event page.
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription,omitempty"`

	OrganizerEmail string `json:"organizerEmail"`

	// EventDateTime is an ISO 8601 datetime with offset.
	EventDateTime string `json:"eventDateTime"`

	// Timezone is the IANA zone the organizer picked when creating the event.
	Timezone string `json:"timezone"`

	EventType EventType `json:"eventType"`

	EventLink     string `json:"eventLink,omitempty"`
	EventLocation string `json:"eventLocation,omitempty"`

	EventHostName  string `json:"eventHostName"`
	EventHostEmail string `json:"eventHostEmail,omitempty"`

	// Duration is in minutes; 0 means unknown.
	Duration int `json:"duration,omitempty"`

	// Tags is a comma-separated free-text list.
	Tags string `json:"tags,omitempty"`

	// AllRSVPs is the total attendee count.
	AllRSVPs int `json:"allRSVPs"`

	// CurrentUserRSVP is true when the authenticated viewer has RSVPed.
	CurrentUserRSVP bool `json:"currentUserRSVP"`

	// CreatedBy is the creator's email.
	CreatedBy string `json:"createdBy,omitempty"`
}

// TagList splits the comma-separated Tags field into trimmed, non-empty
// entries.
func (e Event) TagList() []string {
	if e.Tags == "" {
		return nil
	}
	parts := strings.Split(e.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// IsOnline reports whether the event is held online.
func (e Event) IsOnline() bool {
	return e.EventType == EventTypeOnline
}

// Place returns the location for in-person events and the link otherwise.
func (e Event) Place() string {
	if e.IsOnline() {
		return e.EventLink
	}
	return e.EventLocation
}
