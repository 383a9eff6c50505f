package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvent_TagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{name: "plain list", tags: "AI, Tech, Community", want: []string{"AI", "Tech", "Community"}},
		{name: "empty string", tags: "", want: nil},
		{name: "trailing comma dropped", tags: "go,", want: []string{"go"}},
		{name: "only separators", tags: ", ,", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Event{Tags: tc.tags}
			require.Equal(t, tc.want, e.TagList())
		})
	}
}

func TestEvent_Place(t *testing.T) {
	online := Event{EventType: EventTypeOnline, EventLink: "https://meet.example.com/x"}
	require.Equal(t, "https://meet.example.com/x", online.Place())
	require.True(t, online.IsOnline())

	offline := Event{EventType: EventTypeInPerson, EventLocation: "Community Hall, Oslo"}
	require.Equal(t, "Community Hall, Oslo", offline.Place())
	require.False(t, offline.IsOnline())
}
