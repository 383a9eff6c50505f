package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withClock(t *testing.T, now time.Time) func(time.Time) {
	t.Helper()
	orig := nowFn
	current := now
	nowFn = func() time.Time { return current }
	t.Cleanup(func() { nowFn = orig })
	return func(tm time.Time) { current = tm }
}

func TestCooldown(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	advance := withClock(t, start)

	cd := newCooldown(30 * time.Second)
	require.False(t, cd.Ready())
	require.Equal(t, 30, cd.Remaining())

	advance(start.Add(12 * time.Second))
	require.False(t, cd.Ready())
	require.Equal(t, 18, cd.Remaining())

	// partial seconds round up
	advance(start.Add(29*time.Second + 100*time.Millisecond))
	require.Equal(t, 1, cd.Remaining())

	advance(start.Add(30 * time.Second))
	require.True(t, cd.Ready())
	require.Equal(t, 0, cd.Remaining())

	cd.Restart(30 * time.Second)
	require.False(t, cd.Ready())
	require.Equal(t, 30, cd.Remaining())
}
