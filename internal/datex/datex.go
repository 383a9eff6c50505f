// Package datex contains pure helpers for converting the backend's ISO 8601
// event datetimes into local, human-oriented values: formatted strings,
// relative-day labels, countdowns and upcoming/past classification.
//
// A malformed or empty input never causes an error or panic; functions
// return zero values ("", time.Time{}) and callers treat those as "unknown".
package datex

import (
	"fmt"
	"time"
)

// localLocation is a test seam for the runtime's local timezone.
var localLocation = func() *time.Location { return time.Local }

const localInputLayout = "2006-01-02T15:04"

// parseISO parses an ISO 8601 datetime with offset. Returns the zero time
// when the value cannot be parsed.
func parseISO(iso string) time.Time {
	if iso == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ToLocal converts an ISO 8601 datetime string to the local timezone.
// Returns the zero time for unparseable input.
func ToLocal(iso string) time.Time {
	t := parseISO(iso)
	if t.IsZero() {
		return time.Time{}
	}
	return t.In(localLocation())
}

// Formatted holds display-ready pieces of an event datetime.
type Formatted struct {
	Date         string // "Mon, Jan 2, 2006"
	Time         string // "3:04 PM"
	FullDateTime string // "Mon, Jan 2, 2006, 3:04 PM"
	DayOfWeek    string // "Monday"
}

// FormatEventDateTime renders an ISO datetime for display in the local zone.
// All fields are empty strings when the input is unparseable.
func FormatEventDateTime(iso string) Formatted {
	t := ToLocal(iso)
	if t.IsZero() {
		return Formatted{}
	}
	return Formatted{
		Date:         t.Format("Mon, Jan 2, 2006"),
		Time:         t.Format("3:04 PM"),
		FullDateTime: t.Format("Mon, Jan 2, 2006, 3:04 PM"),
		DayOfWeek:    t.Format("Monday"),
	}
}

func sameLocalDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsToday reports whether the event falls on the current local calendar day.
func IsToday(iso string, now time.Time) bool {
	t := ToLocal(iso)
	if t.IsZero() {
		return false
	}
	return sameLocalDay(t, now.In(localLocation()))
}

// IsTomorrow reports whether the event falls on the next local calendar day.
// "Tomorrow" means the next calendar date, which may be less or more than
// 24 hours away around DST transitions.
func IsTomorrow(iso string, now time.Time) bool {
	t := ToLocal(iso)
	if t.IsZero() {
		return false
	}
	return sameLocalDay(t, now.In(localLocation()).AddDate(0, 0, 1))
}

// RelativeDate returns "Today", "Tomorrow", or a short formatted date
// without the year ("Mon, Jan 2"). Empty string for unparseable input.
func RelativeDate(iso string, now time.Time) string {
	t := ToLocal(iso)
	if t.IsZero() {
		return ""
	}
	if IsToday(iso, now) {
		return "Today"
	}
	if IsTomorrow(iso, now) {
		return "Tomorrow"
	}
	return t.Format("Mon, Jan 2")
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("In %d %ss", n, unit)
	}
	return fmt.Sprintf("In %d %s", n, unit)
}

// TimeUntil returns a countdown label for the event start: the largest
// nonzero unit among days/hours/minutes, "Starting soon!" when the start is
// less than a minute away, and "Event has passed" for past starts.
func TimeUntil(iso string, now time.Time) string {
	t := parseISO(iso)
	if t.IsZero() {
		return ""
	}

	diff := t.Sub(now)
	if diff < 0 {
		return "Event has passed"
	}

	minutes := int(diff.Minutes())
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	default:
		return "Starting soon!"
	}
}

// EffectiveEnd returns the event start plus its duration in minutes.
// A zero or negative duration means the event is treated as zero-length
// (end == start). Returns the zero time for unparseable input.
func EffectiveEnd(iso string, durationMin int) time.Time {
	t := parseISO(iso)
	if t.IsZero() {
		return time.Time{}
	}
	if durationMin <= 0 {
		return t
	}
	return t.Add(time.Duration(durationMin) * time.Minute)
}

// IsUpcoming reports whether the event's effective end is at or after now.
func IsUpcoming(iso string, durationMin int, now time.Time) bool {
	end := EffectiveEnd(iso, durationMin)
	if end.IsZero() {
		return false
	}
	return !end.Before(now)
}

// IsLive reports whether now falls within [start, start+duration].
func IsLive(iso string, durationMin int, now time.Time) bool {
	start := parseISO(iso)
	if start.IsZero() {
		return false
	}
	end := EffectiveEnd(iso, durationMin)
	return !now.Before(start) && !now.After(end)
}

// UserTimezone returns the runtime's IANA timezone name.
func UserTimezone() string {
	return localLocation().String()
}

// TimezoneAbbreviation returns the short display name ("EST") for an IANA
// timezone. Unknown names are returned unchanged; an empty name means the
// local zone.
func TimezoneAbbreviation(name string) string {
	loc := localLocation()
	if name != "" {
		l, err := time.LoadLocation(name)
		if err != nil {
			return name
		}
		loc = l
	}
	return time.Now().In(loc).Format("MST")
}

// LocalInputToISO converts a minute-precision local datetime string
// ("2006-01-02T15:04", the shape produced by interactive date entry) into an
// absolute ISO 8601 string in UTC. The value is interpreted in the given
// IANA timezone, falling back to the local zone when tz is empty or unknown.
func LocalInputToISO(local, tz string) string {
	if local == "" {
		return ""
	}

	loc := localLocation()
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	t, err := time.ParseInLocation(localInputLayout, local, loc)
	if err != nil {
		// some inputs carry seconds already
		t, err = time.ParseInLocation("2006-01-02T15:04:05", local, loc)
		if err != nil {
			return ""
		}
	}
	return t.UTC().Format(time.RFC3339)
}

// ISOToLocalInput converts an absolute ISO datetime into the local
// minute-precision input format, for pre-filling an edit form.
func ISOToLocalInput(iso string) string {
	t := ToLocal(iso)
	if t.IsZero() {
		return ""
	}
	return t.Format(localInputLayout)
}
