package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/eventhive/internal/client/models"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func eventAt(id, title string, start time.Time, durationMin int, tags string) models.Event {
	return models.Event{
		EventID:          id,
		Title:            title,
		ShortDescription: "short",
		EventDateTime:    start.Format(time.RFC3339),
		Duration:         durationMin,
		Tags:             tags,
	}
}

func TestFilter_TabAndSearch(t *testing.T) {
	a := eventAt("a", "Sisters Meetup", now.Add(48*time.Hour), 60, "community")
	b := eventAt("b", "Winter Meetup", now.Add(-72*time.Hour), 60, "community")
	c := eventAt("c", "Go Workshop", now.Add(24*time.Hour), 90, "golang")

	events := []models.Event{a, b, c}

	got := Filter(events, TabUpcoming, "meetup", now)
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].EventID)

	got = Filter(events, TabPast, "meetup", now)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].EventID)

	// blank query keeps everything in the tab
	got = Filter(events, TabUpcoming, "   ", now)
	require.Len(t, got, 2)
}

func TestFilter_SearchIsCaseInsensitiveAndCoversTags(t *testing.T) {
	a := eventAt("a", "Quiet Evening", now.Add(time.Hour), 0, "AI, Tech")
	got := Filter([]models.Event{a}, TabUpcoming, "tech", now)
	require.Len(t, got, 1)

	got = Filter([]models.Event{a}, TabUpcoming, "QUIET", now)
	require.Len(t, got, 1)

	got = Filter([]models.Event{a}, TabUpcoming, "banana", now)
	require.Empty(t, got)
}

func TestFilter_EffectiveEndClassification(t *testing.T) {
	// started 30 minutes ago, runs for an hour: still upcoming
	running := eventAt("r", "Running", now.Add(-30*time.Minute), 60, "")
	// started 30 minutes ago, no duration: past the moment the start passed
	zeroLength := eventAt("z", "Zero", now.Add(-30*time.Minute), 0, "")

	events := []models.Event{running, zeroLength}

	up := Filter(events, TabUpcoming, "", now)
	require.Len(t, up, 1)
	require.Equal(t, "r", up[0].EventID)

	past := Filter(events, TabPast, "", now)
	require.Len(t, past, 1)
	require.Equal(t, "z", past[0].EventID)
}

func TestFilter_Ordering(t *testing.T) {
	e1 := eventAt("1", "One", now.Add(72*time.Hour), 0, "")
	e2 := eventAt("2", "Two", now.Add(24*time.Hour), 0, "")
	e3 := eventAt("3", "Three", now.Add(-24*time.Hour), 0, "")
	e4 := eventAt("4", "Four", now.Add(-72*time.Hour), 0, "")

	up := Filter([]models.Event{e1, e2}, TabUpcoming, "", now)
	require.Equal(t, []string{"2", "1"}, []string{up[0].EventID, up[1].EventID})

	past := Filter([]models.Event{e4, e3}, TabPast, "", now)
	require.Equal(t, []string{"3", "4"}, []string{past[0].EventID, past[1].EventID})
}

func TestCounts(t *testing.T) {
	events := []models.Event{
		eventAt("1", "One", now.Add(time.Hour), 0, ""),
		eventAt("2", "Two", now.Add(2*time.Hour), 0, ""),
		eventAt("3", "Three", now.Add(-time.Hour), 0, ""),
	}
	upcoming, past := Counts(events, now)
	require.Equal(t, 2, upcoming)
	require.Equal(t, 1, past)
}

func TestCursor_Navigation(t *testing.T) {
	c := NewCursor()
	require.Equal(t, DefaultPageSize, c.Size)
	require.Equal(t, 0, c.Page)

	c.Apply(3, 25)
	require.True(t, c.Next())
	require.True(t, c.Next())
	require.False(t, c.Next(), "cannot advance past the last page")
	require.Equal(t, 2, c.Page)

	require.True(t, c.Prev())
	require.True(t, c.Prev())
	require.False(t, c.Prev(), "cannot step before the first page")
	require.Equal(t, 0, c.Page)
}

func TestCursor_SetSizeResetsPage(t *testing.T) {
	c := NewCursor()
	c.Apply(5, 50)
	c.Page = 3

	require.True(t, c.SetSize(20))
	require.Equal(t, 20, c.Size)
	require.Equal(t, 0, c.Page)

	// unknown size is ignored
	require.False(t, c.SetSize(7))
	require.Equal(t, 20, c.Size)
}

func TestCursor_ApplyClampsPage(t *testing.T) {
	c := NewCursor()
	c.Page = 9
	c.Apply(2, 12)
	require.Equal(t, 1, c.Page)
}
