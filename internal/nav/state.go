// Package nav owns the header's navigation state: whether the page has been
// scrolled, which section is active, and whether the mobile menu is open.
package nav

import "github.com/yashasviudayan/portfolio/internal/section"

// ScrollThreshold is the offset past which the header switches to its
// scrolled style. There is no hysteresis.
const ScrollThreshold = 40.0

// State is the navigation state of one page session.
type State struct {
	Scrolled bool
	Active   section.ID
	MenuOpen bool
}

// Initial returns the state at page load: unscrolled, menu closed, and the
// first link active.
func Initial(links []section.NavLink) State {
	var s State
	if len(links) > 0 {
		s.Active = links[0].ID
	}
	return s
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// ScrollTick carries the current vertical offset.
type ScrollTick struct {
	Offset float64
}

// SectionIntersect is one intersection report for a section.
type SectionIntersect struct {
	ID           section.ID
	Intersecting bool
}

// MenuToggled flips the mobile menu.
type MenuToggled struct{}

// LinkSelected is a click on a header link. Narrow is true on mobile layouts.
type LinkSelected struct {
	ID     section.ID
	Narrow bool
}

func (ScrollTick) isEvent()       {}
func (SectionIntersect) isEvent() {}
func (MenuToggled) isEvent()      {}
func (LinkSelected) isEvent()     {}

// Reduce applies e to s. The most recent intersecting report always wins; a
// report that a section left the band never reverts the active section.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case ScrollTick:
		s.Scrolled = e.Offset > ScrollThreshold
	case SectionIntersect:
		if e.Intersecting {
			s.Active = e.ID
		}
	case MenuToggled:
		s.MenuOpen = !s.MenuOpen
	case LinkSelected:
		if e.Narrow {
			s.MenuOpen = false
		}
	}
	return s
}
