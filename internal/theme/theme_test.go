package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsDark(t *testing.T) {
	t.Parallel()

	var zero Theme
	require.Equal(t, Dark, zero)
	require.Equal(t, "dark", NewController(zero).Theme().String())
}

func TestToggleTwiceRestores(t *testing.T) {
	t.Parallel()

	for _, start := range []Theme{Dark, Light} {
		c := NewController(start)
		require.Equal(t, start.Other(), c.Toggle())
		require.Equal(t, start, c.Toggle())
	}
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	t.Parallel()

	c := NewController(Dark)
	var seen []Theme
	release := c.Subscribe(func(t Theme) { seen = append(seen, t) })

	c.Toggle()
	c.Toggle()
	require.Equal(t, []Theme{Light, Dark}, seen)

	release()
	release()
	require.Zero(t, c.Subscribers())

	c.Toggle()
	require.Len(t, seen, 2)
}

func TestParseAndLabels(t *testing.T) {
	t.Parallel()

	th, err := Parse(" Light ")
	require.NoError(t, err)
	require.Equal(t, Light, th)
	require.Equal(t, "Switch to dark mode", th.ToggleLabel())
	require.Equal(t, "Switch to light mode", Dark.ToggleLabel())

	_, err = Parse("sepia")
	require.Error(t, err)
}
