package scroll

import "strconv"

// Progress returns how far through the page sig is, in [0, 100]. Pages that do
// not scroll report 0.
func Progress(sig Signal) float64 {
	total := sig.Range()
	if total <= 0 {
		return 0
	}
	p := 100 * sig.Offset / total
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Indicator is the thin bar across the top of the page. It keeps its own copy
// of the progress and shares nothing with the navigation state.
type Indicator struct {
	progress float64
}

// Mount subscribes the indicator to src.
func (i *Indicator) Mount(src *Source) (release func()) {
	return src.Subscribe(func(sig Signal) {
		i.progress = Progress(sig)
	})
}

// Progress is the value computed on the last tick.
func (i *Indicator) Progress() float64 {
	return i.progress
}

// Visible is false at exactly zero progress; a zero-width bar is not drawn.
func (i *Indicator) Visible() bool {
	return i.progress != 0
}

// Width is the CSS width of the bar, or "" when it is hidden.
func (i *Indicator) Width() string {
	if !i.Visible() {
		return ""
	}
	return strconv.FormatFloat(i.progress, 'f', 2, 64) + "%"
}
