// Package eventform holds the create/edit form state for an event and its
// client-side validation. The same rules run server-side; validating here
// just keeps bad submissions off the wire and lets the caller show messages
// per field.
package eventform

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/eventhive/internal/client/api"
	"github.com/dmitrijs2005/eventhive/internal/client/models"
	"github.com/dmitrijs2005/eventhive/internal/datex"
)

// Mode distinguishes creating a new event from editing an existing one.
type Mode string

const (
	ModeNew  Mode = "new"
	ModeEdit Mode = "edit"
)

// Form carries the user's input. DateTime is the minute-precision local
// string ("2006-01-02T15:04"); conversion to an absolute ISO value happens
// in Payload.
type Form struct {
	Mode    Mode
	EventID string

	Title            string           `validate:"required,min=3,max=120"`
	ShortDescription string           `validate:"required,max=200"`
	LongDescription  string           `validate:"-"`
	OrganizerEmail   string           `validate:"required,email"`
	DateTime         string           `validate:"required"`
	Timezone         string           `validate:"-"`
	EventType        models.EventType `validate:"required,oneof=online in-person"`
	EventLink        string           `validate:"omitempty,eventlink"`
	EventLocation    string           `validate:"-"`
	EventHostName    string           `validate:"required"`
	EventHostEmail   string           `validate:"omitempty,email"`
	Duration         int              `validate:"omitempty,gte=10"`
	Tags             string           `validate:"omitempty,taglist"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("eventlink", validateEventLink)
	_ = v.RegisterValidation("taglist", validateTagList)
	v.RegisterStructValidation(validateFormStruct, Form{})
	return v
}

func validateEventLink(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// validateTagList rejects comma-separated lists with empty entries, e.g. a
// trailing comma or ",,".
func validateTagList(fl validator.FieldLevel) bool {
	for _, part := range strings.Split(fl.Field().String(), ",") {
		if strings.TrimSpace(part) == "" {
			return false
		}
	}
	return true
}

// validateFormStruct enforces the type-conditional rule: an in-person event
// must carry a location. The link stays optional for online events.
func validateFormStruct(sl validator.StructLevel) {
	f := sl.Current().Interface().(Form)
	if f.EventType == models.EventTypeInPerson && strings.TrimSpace(f.EventLocation) == "" {
		sl.ReportError(f.EventLocation, "EventLocation", "EventLocation", "location_required", "")
	}
}

// NewForm returns an empty create form with the timezone pre-filled from
// the runtime's detected zone.
func NewForm() *Form {
	return &Form{
		Mode:      ModeNew,
		Timezone:  datex.UserTimezone(),
		EventType: models.EventTypeOnline,
	}
}

// EditForm pre-fills a form from an existing event, converting the stored
// absolute datetime into the local input format.
func EditForm(e models.Event) *Form {
	tz := e.Timezone
	if tz == "" {
		tz = datex.UserTimezone()
	}
	return &Form{
		Mode:             ModeEdit,
		EventID:          e.EventID,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		LongDescription:  e.LongDescription,
		OrganizerEmail:   e.OrganizerEmail,
		DateTime:         datex.ISOToLocalInput(e.EventDateTime),
		Timezone:         tz,
		EventType:        e.EventType,
		EventLink:        e.EventLink,
		EventLocation:    e.EventLocation,
		EventHostName:    e.EventHostName,
		EventHostEmail:   e.EventHostEmail,
		Duration:         e.Duration,
		Tags:             e.Tags,
	}
}

// ValidationError aggregates per-field messages for inline display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", ve.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + ve.Param()
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "eventlink":
		return "must start with http:// or https://"
	case "taglist":
		return "tags must be a comma-separated list without empty entries"
	case "location_required":
		return "location is required for in-person events"
	default:
		return "invalid value"
	}
}

// Validate checks all rules and returns a *ValidationError keyed by struct
// field name, or nil when the form is valid.
func (f *Form) Validate() *ValidationError {
	err := validate.Struct(*f)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &ValidationError{Fields: map[string]string{"Form": "invalid input"}}
	}

	fields := make(map[string]string, len(ves))
	for _, ve := range ves {
		if _, taken := fields[ve.Field()]; !taken {
			fields[ve.Field()] = message(ve)
		}
	}
	return &ValidationError{Fields: fields}
}

// Payload converts the form into the API request body: local datetime to
// absolute ISO, timezone attached, and the field not matching the selected
// event type nulled out.
func (f *Form) Payload() *api.EventRequest {
	tz := f.Timezone
	if tz == "" {
		tz = datex.UserTimezone()
	}

	req := &api.EventRequest{
		Title:            strings.TrimSpace(f.Title),
		ShortDescription: strings.TrimSpace(f.ShortDescription),
		LongDescription:  strings.TrimSpace(f.LongDescription),
		OrganizerEmail:   strings.TrimSpace(f.OrganizerEmail),
		EventDateTime:    datex.LocalInputToISO(f.DateTime, tz),
		Timezone:         tz,
		EventType:        string(f.EventType),
		EventHostName:    strings.TrimSpace(f.EventHostName),
		EventHostEmail:   strings.TrimSpace(f.EventHostEmail),
		Tags:             strings.TrimSpace(f.Tags),
		Duration:         f.Duration,
	}

	if f.EventType == models.EventTypeOnline {
		link := strings.TrimSpace(f.EventLink)
		req.EventLink = &link
		req.EventLocation = nil
	} else {
		location := strings.TrimSpace(f.EventLocation)
		req.EventLocation = &location
		req.EventLink = nil
	}

	return req
}
