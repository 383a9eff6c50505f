package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/eventhive/internal/client/eventform"
	"github.com/dmitrijs2005/eventhive/internal/client/models"
)

// Create collects a new event interactively and submits it. The organizer
// email and host name are pre-filled from the session.
func (a *App) Create(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to create events")
		return nil
	}

	f := eventform.NewForm()
	if s, err := a.auth.Current(); err == nil && s != nil {
		f.OrganizerEmail = s.Email
		f.EventHostName = s.Name
	}

	if err := a.promptForm(f); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	msg, err := a.events.Create(ctx, f)
	if err != nil {
		return a.reportFormError(err)
	}
	log.Println(msg)
	return nil
}

// Edit fetches an event, pre-fills the form with its current values and
// submits the changes. Pressing Enter on a field keeps the shown value.
func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to edit events")
		return nil
	}

	id, err := a.eventIDArg(args, "Enter event id to edit")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	e, err := a.events.Get(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	f := eventform.EditForm(*e)
	if err := a.promptForm(f); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	msg, err := a.events.Update(ctx, f)
	if err != nil {
		return a.reportFormError(err)
	}
	log.Println(msg)
	return nil
}

// promptForm walks the user through every form field. Defaults shown in
// brackets come from the form itself, so the same walk serves both create
// (mostly blank) and edit (pre-filled).
func (a *App) promptForm(f *eventform.Form) error {
	w := os.Stdout
	r := a.reader
	var err error

	if f.Title, err = GetTextDefault(r, "Title", f.Title, w); err != nil {
		return err
	}
	if f.ShortDescription, err = GetTextDefault(r, "Short description", f.ShortDescription, w); err != nil {
		return err
	}
	long, err := GetMultiline(r, "Long description (optional)", w)
	if err != nil {
		return err
	}
	if long != "" {
		f.LongDescription = long
	}
	if f.OrganizerEmail, err = GetTextDefault(r, "Organizer email", f.OrganizerEmail, w); err != nil {
		return err
	}
	if f.DateTime, err = GetTextDefault(r, "Date and time (YYYY-MM-DDThh:mm)", f.DateTime, w); err != nil {
		return err
	}
	if f.Timezone, err = GetTextDefault(r, "Timezone", f.Timezone, w); err != nil {
		return err
	}

	et, err := GetTextDefault(r, "Event type (online/in-person)", string(f.EventType), w)
	if err != nil {
		return err
	}
	f.EventType = models.EventType(et)

	if f.EventType == models.EventTypeOnline {
		if f.EventLink, err = GetTextDefault(r, "Event link (optional)", f.EventLink, w); err != nil {
			return err
		}
	} else {
		if f.EventLocation, err = GetTextDefault(r, "Event location", f.EventLocation, w); err != nil {
			return err
		}
	}

	if f.EventHostName, err = GetTextDefault(r, "Host name", f.EventHostName, w); err != nil {
		return err
	}
	if f.EventHostEmail, err = GetTextDefault(r, "Host email (optional)", f.EventHostEmail, w); err != nil {
		return err
	}

	durDef := ""
	if f.Duration > 0 {
		durDef = strconv.Itoa(f.Duration)
	}
	dur, err := GetTextDefault(r, "Duration in minutes (optional)", durDef, w)
	if err != nil {
		return err
	}
	if dur != "" {
		n, convErr := strconv.Atoi(dur)
		if convErr != nil {
			printlnFn("Duration must be a number, keeping previous value")
		} else {
			f.Duration = n
		}
	}

	if f.Tags, err = GetTextDefault(r, "Tags (comma-separated, optional)", f.Tags, w); err != nil {
		return err
	}
	return nil
}

// reportFormError prints per-field validation messages when the error is a
// *eventform.ValidationError, and logs anything else.
func (a *App) reportFormError(err error) error {
	var verr *eventform.ValidationError
	if errors.As(err, &verr) {
		printlnFn("Please fix the following fields:")
		keys := make([]string, 0, len(verr.Fields))
		for k := range verr.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			printlnFn(fmt.Sprintf("  %s: %s", k, verr.Fields[k]))
		}
		return err
	}
	log.Printf("Error: %s", err.Error())
	return err
}
