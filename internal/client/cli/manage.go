package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/eventhive/internal/client/models"
)

// Delete removes an event after a confirmation prompt.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to delete events")
		return nil
	}

	id, err := a.eventIDArg(args, "Enter event id to delete")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete event %s?", id), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	msg, err := a.events.Delete(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	log.Println(msg)
	return nil
}

// Rsvp records the viewer's attendance for an event.
func (a *App) Rsvp(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to RSVP")
		return nil
	}

	id, err := a.eventIDArg(args, "Enter event id to RSVP")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	msg, err := a.events.RSVP(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	log.Println(msg)
	return nil
}

// My shows personal listings: "my rsvps" (default) or "my created".
func (a *App) My(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return nil
	}

	kind := "rsvps"
	if len(args) > 0 {
		kind = args[0]
	}

	var (
		events []models.Event
		err    error
	)
	switch kind {
	case "rsvps":
		events, err = a.events.MyRSVPs(ctx)
	case "created":
		events, err = a.events.MyCreated(ctx)
	default:
		printlnFn("Usage: my [rsvps|created]")
		return nil
	}
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(events) == 0 {
		printlnFn("Nothing here yet")
		return nil
	}
	now := time.Now()
	for _, e := range events {
		printlnFn(formatEventLine(e, now))
	}
	return nil
}
