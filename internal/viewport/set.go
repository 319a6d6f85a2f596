package viewport

import (
	"github.com/yashasviudayan/portfolio/internal/scroll"
	"github.com/yashasviudayan/portfolio/internal/section"
)

// Set is the group of observers created for one mounted header. Observers are
// evaluated in the order their ids were given, so when two sections enter the
// band on the same tick the later one is reported last.
type Set struct {
	band      Band
	layout    Layout
	observers []*Observer
	releases  []func()
	dispatch  Dispatcher
	report    Report
	released  bool
}

// Observe creates one observer per id, each subscribed to src. Reports are
// handed to dispatch rather than delivered inline. A nil dispatch runs reports
// immediately.
func Observe(src *scroll.Source, ids []section.ID, layout Layout, band Band, dispatch Dispatcher, report Report) *Set {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	s := &Set{
		band:     band,
		layout:   copyLayout(layout),
		dispatch: dispatch,
		report:   report,
	}
	for _, id := range ids {
		o := &Observer{id: id, set: s}
		s.observers = append(s.observers, o)
		s.releases = append(s.releases, src.Subscribe(o.observe))
	}
	return s
}

// UpdateLayout replaces the section geometry, e.g. after a resize. Observers
// re-evaluate on the next tick. A section that disappeared while inside the
// band reports leaving it once, then stays silent until it is laid out again.
func (s *Set) UpdateLayout(layout Layout) {
	s.layout = copyLayout(layout)
}

// Forward delivers a report produced outside the set, such as one from a
// browser-side observer. Ids the set does not observe are dropped.
func (s *Set) Forward(id section.ID, intersecting bool) bool {
	for _, o := range s.observers {
		if o.id == id {
			o.seen = true
			o.inside = intersecting
			s.deliver(id, intersecting)
			return true
		}
	}
	return false
}

// Release unsubscribes every observer. Reports already dispatched but not yet
// run are dropped.
func (s *Set) Release() {
	if s.released {
		return
	}
	s.released = true
	for _, release := range s.releases {
		release()
	}
	s.releases = nil
}

// Released reports whether Release has been called.
func (s *Set) Released() bool {
	return s.released
}

func (s *Set) deliver(id section.ID, intersecting bool) {
	s.dispatch(func() {
		if s.released || s.report == nil {
			return
		}
		s.report(id, intersecting)
	})
}

func copyLayout(layout Layout) Layout {
	out := make(Layout, len(layout))
	for id, box := range layout {
		out[id] = box
	}
	return out
}
