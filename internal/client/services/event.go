package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/eventhive/internal/client/api"
	"github.com/dmitrijs2005/eventhive/internal/client/dashboard"
	"github.com/dmitrijs2005/eventhive/internal/client/eventform"
	"github.com/dmitrijs2005/eventhive/internal/client/models"
	"github.com/dmitrijs2005/eventhive/internal/client/session"
	"github.com/dmitrijs2005/eventhive/internal/common"
	"github.com/dmitrijs2005/eventhive/internal/icalx"
)

// EventService bundles the event operations behind the CLI commands.
//
// Create/Update/Delete/RSVP require an authenticated session and fail with
// common.ErrUnauthorized before any network call otherwise. Listing is
// public; the token rides along opportunistically when present.
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	ListPage(ctx context.Context, cur *dashboard.Cursor) ([]models.Event, error)
	Get(ctx context.Context, eventID string) (*models.Event, error)
	Create(ctx context.Context, f *eventform.Form) (string, error)
	Update(ctx context.Context, f *eventform.Form) (string, error)
	Delete(ctx context.Context, eventID string) (string, error)
	RSVP(ctx context.Context, eventID string) (string, error)
	MyRSVPs(ctx context.Context) ([]models.Event, error)
	MyCreated(ctx context.Context) ([]models.Event, error)
	ExportICS(ctx context.Context, eventID, dir string) (string, error)
}

type eventService struct {
	client   api.Client
	sessions *session.Manager
}

func NewEventService(client api.Client, sessions *session.Manager) EventService {
	return &eventService{client: client, sessions: sessions}
}

// List fetches the full event collection without pagination.
func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	resp, err := s.client.ListEvents(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching events: %w", err)
	}
	if !resp.Success {
		return nil, errors.New(messageOr(resp.Message, "no events found"))
	}
	return resp.Events, nil
}

// ListPage fetches one server-driven page and records the reported totals
// on the cursor.
func (s *eventService) ListPage(ctx context.Context, cur *dashboard.Cursor) ([]models.Event, error) {
	resp, err := s.client.ListEvents(ctx, &api.PageQuery{Page: cur.Page, Size: cur.Size})
	if err != nil {
		return nil, fmt.Errorf("error fetching events: %w", err)
	}
	if !resp.Success {
		return nil, errors.New(messageOr(resp.Message, "no events found"))
	}
	cur.Apply(resp.TotalPages, resp.TotalElements)
	return resp.Events, nil
}

func (s *eventService) Get(ctx context.Context, eventID string) (*models.Event, error) {
	resp, err := s.client.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	if !resp.Success {
		return nil, errors.New(messageOr(resp.Message, "event not found"))
	}
	e := resp.DTO
	return &e, nil
}

// Create validates the form and submits it. An unauthenticated attempt is
// rejected client-side, before the request is built.
func (s *eventService) Create(ctx context.Context, f *eventform.Form) (string, error) {
	if !s.sessions.IsAuthenticated() {
		return "", common.ErrUnauthorized
	}
	if verr := f.Validate(); verr != nil {
		return "", verr
	}

	resp, err := s.client.CreateEvent(ctx, f.Payload())
	if err != nil {
		return "", fmt.Errorf("error creating event: %w", err)
	}
	if !resp.Success {
		return "", errors.New(messageOr(resp.Message, "failed to create event"))
	}
	return messageOr(resp.Message, "Event created successfully!"), nil
}

// Update validates the form and submits it against the form's EventID.
func (s *eventService) Update(ctx context.Context, f *eventform.Form) (string, error) {
	if !s.sessions.IsAuthenticated() {
		return "", common.ErrUnauthorized
	}
	if f.EventID == "" {
		return "", errors.New("no event id to update")
	}
	if verr := f.Validate(); verr != nil {
		return "", verr
	}

	resp, err := s.client.UpdateEvent(ctx, f.EventID, f.Payload())
	if err != nil {
		return "", fmt.Errorf("error updating event: %w", err)
	}
	if !resp.Success {
		return "", errors.New(messageOr(resp.Message, "failed to update event"))
	}
	return messageOr(resp.Message, "Event updated successfully!"), nil
}

func (s *eventService) Delete(ctx context.Context, eventID string) (string, error) {
	if !s.sessions.IsAuthenticated() {
		return "", common.ErrUnauthorized
	}

	resp, err := s.client.DeleteEvent(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("error deleting event: %w", err)
	}
	if !resp.Success {
		return "", errors.New(messageOr(resp.Message, "failed to delete event"))
	}
	return messageOr(resp.Message, "Event deleted"), nil
}

// RSVP records attendance intent. Repeats are the server's concern; it
// answers with a business message ("already RSVPed") rather than a
// duplicate row.
func (s *eventService) RSVP(ctx context.Context, eventID string) (string, error) {
	if !s.sessions.IsAuthenticated() {
		return "", common.ErrUnauthorized
	}

	resp, err := s.client.RSVP(ctx, eventID, true)
	if err != nil {
		return "", fmt.Errorf("error submitting RSVP: %w", err)
	}
	if !resp.Success {
		return "", errors.New(messageOr(resp.Message, "failed to RSVP"))
	}
	return messageOr(resp.Message, "RSVP successful!"), nil
}

func (s *eventService) MyRSVPs(ctx context.Context) ([]models.Event, error) {
	resp, err := s.client.MyRSVPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching RSVPs: %w", err)
	}
	return resp.Events, nil
}

func (s *eventService) MyCreated(ctx context.Context) ([]models.Event, error) {
	resp, err := s.client.MyCreatedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching created events: %w", err)
	}
	return resp.Events, nil
}

// ExportICS fetches the event and writes it as an .ics file into dir,
// returning the written path.
func (s *eventService) ExportICS(ctx context.Context, eventID, dir string) (string, error) {
	e, err := s.Get(ctx, eventID)
	if err != nil {
		return "", err
	}

	body, err := icalx.Build(*e)
	if err != nil {
		return "", fmt.Errorf("error building calendar file: %w", err)
	}

	path := filepath.Join(dir, icalx.Filename(e.Title))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("error writing calendar file: %w", err)
	}
	return path, nil
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
