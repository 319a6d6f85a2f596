// Package scroll carries the page scroll signal to its consumers and derives the
// reading progress from it.
package scroll

// Signal is one scroll tick: the vertical offset plus the document and viewport
// heights at the time of the tick.
type Signal struct {
	Offset         float64 `json:"offset"`
	DocumentHeight float64 `json:"document"`
	ViewportHeight float64 `json:"viewport"`
}

// Range is the largest offset the page can scroll to.
func (s Signal) Range() float64 {
	return s.DocumentHeight - s.ViewportHeight
}

type subscription struct {
	id uint64
	fn func(Signal)
}

// Source fans scroll ticks out to subscribers. Delivery is synchronous and in
// subscription order. A Source belongs to one page session and must be driven
// from that session's goroutine.
type Source struct {
	subs []subscription
	next uint64
	last Signal
}

// Subscribe registers fn for every future tick. The returned release removes
// it; calling release more than once is harmless.
func (s *Source) Subscribe(fn func(Signal)) (release func()) {
	s.next++
	id := s.next
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers sig to every subscriber.
func (s *Source) Publish(sig Signal) {
	s.last = sig
	subs := s.subs
	for _, sub := range subs {
		sub.fn(sig)
	}
}

// Last returns the most recently published tick.
func (s *Source) Last() Signal {
	return s.last
}

// Len is the number of live subscriptions.
func (s *Source) Len() int {
	return len(s.subs)
}
