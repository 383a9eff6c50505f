package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventhive/internal/client/models"
	"github.com/dmitrijs2005/eventhive/internal/datex"
)

// formatEventLine renders one dashboard row:
//
//	[ev-7] Sisters Meetup - Today, 6:00 PM (in-person) - 12 going *
//
// The trailing asterisk marks events the viewer has RSVPed to.
func formatEventLine(e models.Event, now time.Time) string {
	when := datex.RelativeDate(e.EventDateTime, now)
	f := datex.FormatEventDateTime(e.EventDateTime)
	if when != "" && f.Time != "" {
		when = when + ", " + f.Time
	}
	if when == "" {
		when = "date unknown"
	}

	mark := ""
	if e.CurrentUserRSVP {
		mark = " *"
	}
	return fmt.Sprintf("[%s] %s - %s (%s) - %d going%s",
		e.EventID, e.Title, when, e.EventType, e.AllRSVPs, mark)
}

// renderEventDetail prints the full event view.
func renderEventDetail(w io.Writer, e models.Event, now time.Time) {
	fmt.Fprintln(w, e.Title)

	f := datex.FormatEventDateTime(e.EventDateTime)
	if f.FullDateTime != "" {
		fmt.Fprintf(w, "When: %s (%s)\n", f.FullDateTime, datex.TimeUntil(e.EventDateTime, now))
	}
	if e.Duration > 0 {
		fmt.Fprintf(w, "Duration: %d minutes\n", e.Duration)
	}

	if e.IsOnline() {
		if e.EventLink != "" {
			fmt.Fprintf(w, "Online: %s\n", e.EventLink)
		} else {
			fmt.Fprintln(w, "Online (link not announced yet)")
		}
	} else {
		fmt.Fprintf(w, "Where: %s\n", e.EventLocation)
	}

	if e.ShortDescription != "" {
		fmt.Fprintln(w, e.ShortDescription)
	}
	if e.LongDescription != "" {
		fmt.Fprintln(w, e.LongDescription)
	}

	if e.EventHostName != "" {
		host := e.EventHostName
		if e.EventHostEmail != "" {
			host = fmt.Sprintf("%s <%s>", host, e.EventHostEmail)
		}
		fmt.Fprintf(w, "Host: %s\n", host)
	}
	if e.OrganizerEmail != "" {
		fmt.Fprintf(w, "Organizer: %s\n", e.OrganizerEmail)
	}
	if tags := e.TagList(); tags != nil {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(tags, ", "))
	}

	fmt.Fprintf(w, "Attendees: %d\n", e.AllRSVPs)
	if e.CurrentUserRSVP {
		fmt.Fprintln(w, "You are going to this event")
	}
	if e.CreatedBy != "" {
		fmt.Fprintf(w, "Created by: %s\n", e.CreatedBy)
	}
}
