package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/eventhive/internal/client/models"
)

func TestFormatEventLine(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := models.Event{
		EventID:         "ev-7",
		Title:           "Sisters Meetup",
		EventDateTime:   "2026-09-01T18:00:00Z",
		EventType:       models.EventTypeInPerson,
		AllRSVPs:        12,
		CurrentUserRSVP: true,
	}

	line := formatEventLine(e, now)
	require.Contains(t, line, "[ev-7]")
	require.Contains(t, line, "Sisters Meetup")
	require.Contains(t, line, "(in-person)")
	require.Contains(t, line, "12 going")
	require.Contains(t, line, "*")
}

func TestFormatEventLine_UnknownDate(t *testing.T) {
	line := formatEventLine(models.Event{EventID: "x", Title: "T"}, time.Now())
	require.Contains(t, line, "date unknown")
}

func TestRenderEventDetail(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	e := models.Event{
		EventID:          "ev-7",
		Title:            "Sisters Meetup",
		ShortDescription: "Monthly community meetup",
		LongDescription:  "Talks, snacks and networking.",
		OrganizerEmail:   "org@example.com",
		EventDateTime:    "2026-09-01T18:00:00Z",
		EventType:        models.EventTypeOnline,
		EventLink:        "https://meet.example.com/sisters",
		EventHostName:    "Ada",
		EventHostEmail:   "ada@example.com",
		Duration:         90,
		Tags:             "community, tech",
		AllRSVPs:         12,
		CurrentUserRSVP:  true,
		CreatedBy:        "org@example.com",
	}

	var out bytes.Buffer
	renderEventDetail(&out, e, now)
	s := out.String()

	require.Contains(t, s, "Sisters Meetup")
	require.Contains(t, s, "Online: https://meet.example.com/sisters")
	require.Contains(t, s, "Duration: 90 minutes")
	require.Contains(t, s, "Host: Ada <ada@example.com>")
	require.Contains(t, s, "Tags: community, tech")
	require.Contains(t, s, "Attendees: 12")
	require.Contains(t, s, "You are going to this event")
	require.Contains(t, s, "Created by: org@example.com")
}

func TestRenderEventDetail_InPerson(t *testing.T) {
	e := models.Event{
		Title:         "Hall Meetup",
		EventDateTime: "2026-09-01T18:00:00Z",
		EventType:     models.EventTypeInPerson,
		EventLocation: "Community Hall, Oslo",
	}

	var out bytes.Buffer
	renderEventDetail(&out, e, time.Now())
	require.Contains(t, out.String(), "Where: Community Hall, Oslo")
}
