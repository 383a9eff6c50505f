// Package api is the REST client for the EventHive backend. Every operation
// issues one HTTP request and normalizes the result: a decoded response DTO
// on 2xx, a typed *Error (with the server's message when the body carries
// one) otherwise. 401/403 responses additionally clear the stored session
// and fire the OnUnauthorized hook, except on the auth endpoints themselves.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventhive/internal/client/session"
	"github.com/dmitrijs2005/eventhive/internal/common"
	"github.com/dmitrijs2005/eventhive/internal/logging"
)

// Client defines the backend operations the application services need.
type Client interface {
	SendOtp(ctx context.Context, email string) (*StatusResponse, error)
	LoginWithOtp(ctx context.Context, email, otp string) (*AuthResponse, error)

	ListEvents(ctx context.Context, page *PageQuery) (*EventsResponse, error)
	GetEventByID(ctx context.Context, eventID string) (*EventResponse, error)
	CreateEvent(ctx context.Context, req *EventRequest) (*StatusResponse, error)
	UpdateEvent(ctx context.Context, eventID string, req *EventRequest) (*StatusResponse, error)
	DeleteEvent(ctx context.Context, eventID string) (*StatusResponse, error)
	RSVP(ctx context.Context, eventID string, going bool) (*StatusResponse, error)
	MyRSVPs(ctx context.Context) (*EventsResponse, error)
	MyCreatedEvents(ctx context.Context) (*EventsResponse, error)
}

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	sessions       *session.Manager
	log            logging.Logger
	onUnauthorized func(status int)
}

type Option func(*HTTPClient)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithUnauthorizedHook installs a callback fired after a 401/403 response
// has cleared the session.
func WithUnauthorizedHook(fn func(status int)) Option {
	return func(c *HTTPClient) { c.onUnauthorized = fn }
}

func NewHTTPClient(baseURL string, sessions *session.Manager, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		sessions: sessions,
		log:      log,
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: &bearerTransport{sessions: sessions},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes the response into out.
//
// interceptAuth is false on the auth endpoints: a rejected login must not
// recursively "log out" the user (the browser-era analog was not redirecting
// to /login while already on it).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, interceptAuth bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: extractMessage(data, resp.StatusCode)}

		if interceptAuth && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			c.log.Warn(ctx, "authorization failure, clearing session", "status", resp.StatusCode)
			_ = c.sessions.Clear()
			if c.onUnauthorized != nil {
				c.onUnauthorized(resp.StatusCode)
			}
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error body,
// falling back to a generic string when none is present.
func extractMessage(data []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func (c *HTTPClient) SendOtp(ctx context.Context, email string) (*StatusResponse, error) {
	var out StatusResponse
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/auth/send-otp", nil, body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) LoginWithOtp(ctx context.Context, email, otp string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "otp": otp}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context, page *PageQuery) (*EventsResponse, error) {
	var query url.Values
	if page != nil {
		query = url.Values{}
		query.Set("page", strconv.Itoa(page.Page))
		query.Set("size", strconv.Itoa(page.Size))
	}
	var out EventsResponse
	if err := c.do(ctx, http.MethodGet, "/public/events/all", query, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetEventByID(ctx context.Context, eventID string) (*EventResponse, error) {
	query := url.Values{}
	query.Set("eventId", eventID)
	var out EventResponse
	if err := c.do(ctx, http.MethodGet, "/public/events/id", query, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, req *EventRequest) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/events/create-new", nil, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, eventID string, req *EventRequest) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPut, "/events/update/"+url.PathEscape(eventID), nil, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, eventID string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID), nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RSVP(ctx context.Context, eventID string, going bool) (*StatusResponse, error) {
	var out StatusResponse
	body := map[string]any{"event_id": eventID, "rsvp": going}
	if err := c.do(ctx, http.MethodPost, "/events/rsvp", nil, body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyRSVPs(ctx context.Context) (*EventsResponse, error) {
	var out EventsResponse
	if err := c.do(ctx, http.MethodGet, "/events/my-rsvps", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyCreatedEvents(ctx context.Context) (*EventsResponse, error) {
	var out EventsResponse
	if err := c.do(ctx, http.MethodGet, "/events/my-created", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
