// Package icalx renders a single event as an iCalendar (.ics) document so
// users can import it into their own calendars.
package icalx

import (
	"regexp"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/eventhive/internal/client/models"
	"github.com/dmitrijs2005/eventhive/internal/common"
	"github.com/dmitrijs2005/eventhive/internal/datex"
)

const prodID = "-//EventHive//EventHive CLI//EN"

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives a safe .ics filename from an event title.
func Filename(title string) string {
	if title == "" {
		title = "event"
	}
	safe := unsafeFilenameChars.ReplaceAllString(strings.ToLower(title), "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		safe = "event"
	}
	return safe + ".ics"
}

// Build serializes the event as a VCALENDAR with one VEVENT. The event end
// is the effective end (start + duration, or start alone when the duration
// is missing). A malformed start datetime yields an error; export cannot
// proceed without one.
func Build(e models.Event) (string, error) {
	start := datex.ToLocal(e.EventDateTime)
	if start.IsZero() {
		return "", common.ErrInternal
	}
	end := datex.EffectiveEnd(e.EventDateTime, e.Duration)

	uid := e.EventID
	if uid == "" {
		uid = uuid.NewString()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	ev := cal.AddEvent(uid)
	ev.SetDtStampTime(time.Now().UTC())
	ev.SetStartAt(start.UTC())
	ev.SetEndAt(end.UTC())
	ev.SetSummary(e.Title)
	if e.ShortDescription != "" {
		ev.SetDescription(e.ShortDescription)
	}
	if place := e.Place(); place != "" {
		ev.SetLocation(place)
	}
	if e.EventHostEmail != "" {
		ev.SetOrganizer("mailto:"+e.EventHostEmail, ics.WithCN(e.EventHostName))
	}

	return cal.Serialize(), nil
}
