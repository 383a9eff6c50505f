// Package dashboard implements the list-view logic: partitioning events into
// upcoming and past by their effective end, free-text search, ordering, and
// the pagination cursor.
package dashboard

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/eventhive/internal/client/models"
	"github.com/dmitrijs2005/eventhive/internal/datex"
	"time"
)

// Tab selects which partition of events is shown.
type Tab string

const (
	TabUpcoming Tab = "upcoming"
	TabPast     Tab = "past"
)

// matchesSearch does a case-insensitive substring match over title,
// descriptions and tags. A blank query matches everything.
func matchesSearch(e models.Event, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.ShortDescription), q) ||
		strings.Contains(strings.ToLower(e.LongDescription), q) ||
		strings.Contains(strings.ToLower(e.Tags), q)
}

// Filter returns the events for the given tab and search query, ordered
// soonest-first for upcoming and most-recent-first for past.
//
// An event belongs to "upcoming" while its effective end (start + duration,
// or start alone when the duration is missing) is at or after now.
func Filter(events []models.Event, tab Tab, query string, now time.Time) []models.Event {
	result := make([]models.Event, 0, len(events))
	for _, e := range events {
		upcoming := datex.IsUpcoming(e.EventDateTime, e.Duration, now)
		if (tab == TabPast) == upcoming {
			continue
		}
		if !matchesSearch(e, query) {
			continue
		}
		result = append(result, e)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a := datex.ToLocal(result[i].EventDateTime)
		b := datex.ToLocal(result[j].EventDateTime)
		if tab == TabPast {
			return a.After(b)
		}
		return a.Before(b)
	})

	return result
}

// Counts returns how many events fall into the upcoming and past partitions.
func Counts(events []models.Event, now time.Time) (upcoming, past int) {
	for _, e := range events {
		if datex.IsUpcoming(e.EventDateTime, e.Duration, now) {
			upcoming++
		} else {
			past++
		}
	}
	return upcoming, past
}
