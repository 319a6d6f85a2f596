package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressBounds(t *testing.T) {
	t.Parallel()

	sig := Signal{DocumentHeight: 3000, ViewportHeight: 800}
	require.Equal(t, 0.0, Progress(sig))

	sig.Offset = sig.Range()
	require.Equal(t, 100.0, Progress(sig))

	sig.Offset = 500
	require.InDelta(t, 22.727, Progress(sig), 0.001)

	// Overscroll (rubber banding) stays inside the range.
	sig.Offset = -20
	require.Equal(t, 0.0, Progress(sig))
	sig.Offset = 5000
	require.Equal(t, 100.0, Progress(sig))
}

func TestProgressMonotonic(t *testing.T) {
	t.Parallel()

	sig := Signal{DocumentHeight: 2400, ViewportHeight: 900}
	prev := -1.0
	for off := 0.0; off <= sig.Range(); off += 37 {
		sig.Offset = off
		p := Progress(sig)
		require.GreaterOrEqual(t, p, prev, "offset %v", off)
		prev = p
	}
}

func TestProgressShortPage(t *testing.T) {
	t.Parallel()

	for _, doc := range []float64{0, 400, 800} {
		for _, off := range []float64{0, 10, 400} {
			sig := Signal{Offset: off, DocumentHeight: doc, ViewportHeight: 800}
			require.Equal(t, 0.0, Progress(sig))
		}
	}

	var ind Indicator
	var src Source
	release := ind.Mount(&src)
	defer release()

	src.Publish(Signal{Offset: 50, DocumentHeight: 600, ViewportHeight: 800})
	require.False(t, ind.Visible())
	require.Empty(t, ind.Width())
}

func TestIndicatorTracksTicks(t *testing.T) {
	t.Parallel()

	var src Source
	var ind Indicator
	release := ind.Mount(&src)

	require.False(t, ind.Visible(), "hidden at page load")

	src.Publish(Signal{Offset: 500, DocumentHeight: 3000, ViewportHeight: 800})
	require.True(t, ind.Visible())
	require.Equal(t, "22.73%", ind.Width())

	src.Publish(Signal{Offset: 0, DocumentHeight: 3000, ViewportHeight: 800})
	require.False(t, ind.Visible())

	release()
	src.Publish(Signal{Offset: 900, DocumentHeight: 3000, ViewportHeight: 800})
	require.Equal(t, 0.0, ind.Progress(), "released indicator must not update")
}

func TestSourceReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	var src Source
	var calls []string
	r1 := src.Subscribe(func(Signal) { calls = append(calls, "a") })
	r2 := src.Subscribe(func(Signal) { calls = append(calls, "b") })
	require.Equal(t, 2, src.Len())

	src.Publish(Signal{})
	require.Equal(t, []string{"a", "b"}, calls)

	r1()
	r1()
	require.Equal(t, 1, src.Len())

	calls = nil
	src.Publish(Signal{Offset: 3})
	require.Equal(t, []string{"b"}, calls)
	require.Equal(t, 3.0, src.Last().Offset)

	r2()
	require.Zero(t, src.Len())
}
