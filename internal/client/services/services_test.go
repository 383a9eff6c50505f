package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/eventhive/internal/client/api"
	"github.com/dmitrijs2005/eventhive/internal/client/dashboard"
	"github.com/dmitrijs2005/eventhive/internal/client/eventform"
	"github.com/dmitrijs2005/eventhive/internal/client/models"
	"github.com/dmitrijs2005/eventhive/internal/client/session"
	"github.com/dmitrijs2005/eventhive/internal/common"
)

// fakeClient реализует api.Client для юнит-тестов.
type fakeClient struct {
	status       *api.StatusResponse
	auth         *api.AuthResponse
	events       *api.EventsResponse
	event        *api.EventResponse
	err          error
	lastPage     *api.PageQuery
	lastEventID  string
	lastRequest  *api.EventRequest
	rsvpGoing    bool
	calledMethod string
}

func (f *fakeClient) SendOtp(ctx context.Context, email string) (*api.StatusResponse, error) {
	f.calledMethod = "SendOtp"
	return f.status, f.err
}

func (f *fakeClient) LoginWithOtp(ctx context.Context, email, otp string) (*api.AuthResponse, error) {
	f.calledMethod = "LoginWithOtp"
	return f.auth, f.err
}

func (f *fakeClient) ListEvents(ctx context.Context, page *api.PageQuery) (*api.EventsResponse, error) {
	f.calledMethod = "ListEvents"
	f.lastPage = page
	return f.events, f.err
}

func (f *fakeClient) GetEventByID(ctx context.Context, eventID string) (*api.EventResponse, error) {
	f.calledMethod = "GetEventByID"
	f.lastEventID = eventID
	return f.event, f.err
}

func (f *fakeClient) CreateEvent(ctx context.Context, req *api.EventRequest) (*api.StatusResponse, error) {
	f.calledMethod = "CreateEvent"
	f.lastRequest = req
	return f.status, f.err
}

func (f *fakeClient) UpdateEvent(ctx context.Context, eventID string, req *api.EventRequest) (*api.StatusResponse, error) {
	f.calledMethod = "UpdateEvent"
	f.lastEventID = eventID
	f.lastRequest = req
	return f.status, f.err
}

func (f *fakeClient) DeleteEvent(ctx context.Context, eventID string) (*api.StatusResponse, error) {
	f.calledMethod = "DeleteEvent"
	f.lastEventID = eventID
	return f.status, f.err
}

func (f *fakeClient) RSVP(ctx context.Context, eventID string, going bool) (*api.StatusResponse, error) {
	f.calledMethod = "RSVP"
	f.lastEventID = eventID
	f.rsvpGoing = going
	return f.status, f.err
}

func (f *fakeClient) MyRSVPs(ctx context.Context) (*api.EventsResponse, error) {
	f.calledMethod = "MyRSVPs"
	return f.events, f.err
}

func (f *fakeClient) MyCreatedEvents(ctx context.Context) (*api.EventsResponse, error) {
	f.calledMethod = "MyCreatedEvents"
	return f.events, f.err
}

func authedManager(t *testing.T) *session.Manager {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	store := session.NewMemStore()
	m := session.NewManager(store)
	require.NoError(t, m.Set(&models.Session{AccessToken: token, Name: "Ada", Email: "ada@example.com"}))
	return m
}

func anonymousManager() *session.Manager {
	return session.NewManager(session.NewMemStore())
}

func validEventForm() *eventform.Form {
	return &eventform.Form{
		Mode:             eventform.ModeNew,
		Title:            "Tech Sisters Meetup",
		ShortDescription: "Monthly community meetup",
		OrganizerEmail:   "organizer@example.com",
		DateTime:         "2026-09-01T18:00",
		Timezone:         "UTC",
		EventType:        models.EventTypeOnline,
		EventLink:        "https://meet.example.com/sisters",
		EventHostName:    "Ada",
	}
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	fc := &fakeClient{auth: &api.AuthResponse{
		AccessToken: "tok", Name: "Ada", Email: "ada@example.com", Roles: []string{"member"},
	}}
	m := anonymousManager()
	svc := NewAuthService(fc, m)

	require.NoError(t, svc.Login(context.Background(), "ada@example.com", "123456"))

	s, err := m.Current()
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, "tok", s.AccessToken)
	require.Equal(t, []string{"member"}, s.Roles)
}

func TestAuthService_LoginWithoutToken(t *testing.T) {
	fc := &fakeClient{auth: &api.AuthResponse{}}
	m := anonymousManager()
	svc := NewAuthService(fc, m)

	err := svc.Login(context.Background(), "ada@example.com", "000000")
	require.Error(t, err)

	s, err := m.Current()
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestAuthService_SendOtpReturnsServerMessage(t *testing.T) {
	fc := &fakeClient{status: &api.StatusResponse{Success: true, Message: "An OTP has been sent to ada@example.com"}}
	svc := NewAuthService(fc, anonymousManager())

	msg, err := svc.SendOtp(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Contains(t, msg, "ada@example.com")
}

func TestAuthService_Logout(t *testing.T) {
	m := authedManager(t)
	svc := NewAuthService(&fakeClient{}, m)
	require.True(t, svc.IsAuthenticated())

	require.NoError(t, svc.Logout(context.Background()))
	require.False(t, svc.IsAuthenticated())
}

func TestEventService_ListPageAppliesTotals(t *testing.T) {
	fc := &fakeClient{events: &api.EventsResponse{
		Success:       true,
		Events:        []models.Event{{EventID: "ev-1"}, {EventID: "ev-2"}},
		TotalPages:    4,
		TotalElements: 38,
	}}
	svc := NewEventService(fc, anonymousManager())

	cur := dashboard.NewCursor()
	cur.Page = 2
	events, err := svc.ListPage(context.Background(), cur)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.NotNil(t, fc.lastPage)
	require.Equal(t, 2, fc.lastPage.Page)
	require.Equal(t, dashboard.DefaultPageSize, fc.lastPage.Size)
	require.Equal(t, 4, cur.TotalPages)
	require.Equal(t, 38, cur.TotalElements)
}

func TestEventService_ListUnpaginated(t *testing.T) {
	fc := &fakeClient{events: &api.EventsResponse{Success: true, Events: []models.Event{{EventID: "ev-1"}}}}
	svc := NewEventService(fc, anonymousManager())

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Nil(t, fc.lastPage)
}

func TestEventService_CreateRequiresAuth(t *testing.T) {
	fc := &fakeClient{}
	svc := NewEventService(fc, anonymousManager())

	_, err := svc.Create(context.Background(), validEventForm())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Empty(t, fc.calledMethod, "no request should be issued")
}

func TestEventService_CreateRejectsInvalidForm(t *testing.T) {
	fc := &fakeClient{}
	svc := NewEventService(fc, authedManager(t))

	f := validEventForm()
	f.Title = "ab"
	_, err := svc.Create(context.Background(), f)
	require.Error(t, err)

	var verr *eventform.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "Title")
	require.Empty(t, fc.calledMethod)
}

func TestEventService_CreateSubmitsPayload(t *testing.T) {
	fc := &fakeClient{status: &api.StatusResponse{Success: true, Message: "Event created successfully!"}}
	svc := NewEventService(fc, authedManager(t))

	msg, err := svc.Create(context.Background(), validEventForm())
	require.NoError(t, err)
	require.Equal(t, "Event created successfully!", msg)

	require.NotNil(t, fc.lastRequest)
	require.Equal(t, "Tech Sisters Meetup", fc.lastRequest.Title)
	require.Equal(t, "2026-09-01T18:00:00Z", fc.lastRequest.EventDateTime)
}

func TestEventService_UpdateNeedsEventID(t *testing.T) {
	svc := NewEventService(&fakeClient{}, authedManager(t))

	f := validEventForm()
	f.Mode = eventform.ModeEdit
	_, err := svc.Update(context.Background(), f)
	require.Error(t, err)
}

func TestEventService_Update(t *testing.T) {
	fc := &fakeClient{status: &api.StatusResponse{Success: true, Message: "Event updated successfully!"}}
	svc := NewEventService(fc, authedManager(t))

	f := validEventForm()
	f.Mode = eventform.ModeEdit
	f.EventID = "ev-7"
	msg, err := svc.Update(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, "Event updated successfully!", msg)
	require.Equal(t, "ev-7", fc.lastEventID)
}

func TestEventService_DeleteRequiresAuth(t *testing.T) {
	svc := NewEventService(&fakeClient{}, anonymousManager())
	_, err := svc.Delete(context.Background(), "ev-7")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestEventService_RSVPPassesServerMessageThrough(t *testing.T) {
	fc := &fakeClient{status: &api.StatusResponse{Success: true, Message: "You have already RSVPed to this event"}}
	svc := NewEventService(fc, authedManager(t))

	msg, err := svc.RSVP(context.Background(), "ev-7")
	require.NoError(t, err)
	require.Equal(t, "You have already RSVPed to this event", msg)
	require.Equal(t, "ev-7", fc.lastEventID)
	require.True(t, fc.rsvpGoing)
}

func TestEventService_GetNotFound(t *testing.T) {
	fc := &fakeClient{event: &api.EventResponse{Success: false, Message: "Event not found"}}
	svc := NewEventService(fc, anonymousManager())

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Event not found")
}

func TestEventService_GetWrapsTransportError(t *testing.T) {
	fc := &fakeClient{err: common.ErrUnavailable}
	svc := NewEventService(fc, anonymousManager())

	_, err := svc.Get(context.Background(), "ev-7")
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestEventService_ExportICS(t *testing.T) {
	fc := &fakeClient{event: &api.EventResponse{
		Success: true,
		DTO: models.Event{
			EventID:       "ev-7",
			Title:         "Sisters Meetup",
			EventDateTime: "2026-09-01T18:00:00Z",
			Duration:      90,
		},
	}}
	svc := NewEventService(fc, anonymousManager())

	dir := t.TempDir()
	path, err := svc.ExportICS(context.Background(), "ev-7", dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "sisters_meetup.ics"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "BEGIN:VCALENDAR")
	require.Contains(t, string(data), "UID:ev-7")
}

func TestEventService_ExportICSPropagatesLookupFailure(t *testing.T) {
	fc := &fakeClient{err: errors.New("boom")}
	svc := NewEventService(fc, anonymousManager())

	_, err := svc.ExportICS(context.Background(), "ev-7", t.TempDir())
	require.Error(t, err)
}
