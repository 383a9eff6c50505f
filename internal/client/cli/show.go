package cli

import (
	"context"
	"log"
	"os"
	"time"
)

// eventIDArg takes the event id from the command arguments, prompting for it
// when absent.
func (a *App) eventIDArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}

// Show fetches and displays a single event.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.eventIDArg(args, "Enter event id to show")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	e, err := a.events.Get(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	renderEventDetail(os.Stdout, *e, time.Now())
	return nil
}

// Export saves an event as an .ics file in the working directory.
func (a *App) Export(ctx context.Context, args []string) error {
	id, err := a.eventIDArg(args, "Enter event id to export")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := a.events.ExportICS(ctx, id, ".")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	log.Printf("Calendar file saved to: %s", path)
	return nil
}
