// Package viewport decides which page sections sit inside the detection band of
// the viewport and reports enter/leave transitions for each of them.
package viewport

import (
	"github.com/yashasviudayan/portfolio/internal/scroll"
	"github.com/yashasviudayan/portfolio/internal/section"
)

// Box is a section's vertical extent in document coordinates.
type Box struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Layout maps section ids to their boxes. Sections absent from the page are
// absent from the layout.
type Layout map[section.ID]Box

// Band shrinks the viewport the way a negative root margin does. Margins are
// fractions of the viewport height.
type Band struct {
	TopMargin    float64
	BottomMargin float64
}

// DefaultBand is a thin slice above the middle of the viewport, where readers
// keep the heading they are on.
var DefaultBand = Band{TopMargin: -0.40, BottomMargin: -0.55}

// Bounds returns the band's top and bottom edges in document coordinates.
func (b Band) Bounds(sig scroll.Signal) (top, bottom float64) {
	vh := sig.ViewportHeight
	top = sig.Offset - b.TopMargin*vh
	bottom = sig.Offset + vh + b.BottomMargin*vh
	return top, bottom
}

// Intersects reports whether box overlaps the band for sig.
func (b Band) Intersects(box Box, sig scroll.Signal) bool {
	if box.Height <= 0 || sig.ViewportHeight <= 0 {
		return false
	}
	top, bottom := b.Bounds(sig)
	if bottom < top {
		return false
	}
	return box.Top <= bottom && box.Top+box.Height >= top
}

// Report receives one intersection transition.
type Report func(id section.ID, intersecting bool)

// Dispatcher schedules fn to run after the current event has been handled.
type Dispatcher func(fn func())

// Observer watches one section.
type Observer struct {
	id     section.ID
	set    *Set
	seen   bool
	inside bool
	placed bool // last evaluation found a box in the layout
}

func (o *Observer) observe(sig scroll.Signal) {
	box, ok := o.set.layout[o.id]
	if !ok {
		if o.placed {
			if o.inside {
				o.set.deliver(o.id, false)
			}
			o.seen, o.inside, o.placed = false, false, false
		}
		return
	}
	o.placed = true
	in := o.set.band.Intersects(box, sig)
	if o.seen && in == o.inside {
		return
	}
	o.seen = true
	o.inside = in
	o.set.deliver(o.id, in)
}
