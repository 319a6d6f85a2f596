package nav

import (
	"errors"
	"fmt"

	"github.com/yashasviudayan/portfolio/internal/scroll"
	"github.com/yashasviudayan/portfolio/internal/section"
	"github.com/yashasviudayan/portfolio/internal/viewport"
)

// ErrUnknownLink is returned when a selected id is not in the link registry.
var ErrUnknownLink = errors.New("nav: unknown link")

// Controller is the only writer of a session's navigation State.
type Controller struct {
	route  section.Route
	links  []section.NavLink
	state  State
	narrow bool
}

// NewController returns a controller for a header rendered on route.
func NewController(route section.Route, links []section.NavLink) *Controller {
	return &Controller{
		route: route,
		links: links,
		state: Initial(links),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// SetNarrow records the current layout width class.
func (c *Controller) SetNarrow(narrow bool) {
	c.narrow = narrow
}

// Apply runs e through Reduce.
func (c *Controller) Apply(e Event) {
	c.state = Reduce(c.state, e)
}

// OnScrollTick records the latest scroll offset.
func (c *Controller) OnScrollTick(offset float64) {
	c.Apply(ScrollTick{Offset: offset})
}

// OnSectionIntersect applies one observer report.
func (c *Controller) OnSectionIntersect(id section.ID, intersecting bool) {
	c.Apply(SectionIntersect{ID: id, Intersecting: intersecting})
}

// ToggleMobileMenu opens a closed menu and closes an open one.
func (c *Controller) ToggleMobileMenu() {
	c.Apply(MenuToggled{})
}

// SelectLink resolves the link's target for the current route and closes the
// mobile menu on narrow layouts.
func (c *Controller) SelectLink(id section.ID) (section.Target, error) {
	link, ok := c.link(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLink, id)
	}
	c.Apply(LinkSelected{ID: id, Narrow: c.narrow})
	return section.Resolve(c.route, link), nil
}

// IsActive reports whether the link for id gets the active marker. On the home
// page that is the active section; elsewhere the link's resolved path must
// equal the current path.
func (c *Controller) IsActive(id section.ID) bool {
	if c.route.IsHome() {
		return c.state.Active == id
	}
	link, ok := c.link(id)
	if !ok {
		return false
	}
	return c.route.Matches(section.Resolve(c.route, link).Href())
}

func (c *Controller) link(id section.ID) (section.NavLink, bool) {
	for _, l := range c.links {
		if l.ID == id {
			return l, true
		}
	}
	return section.NavLink{}, false
}

// Mount is the set of subscriptions held while a header is mounted.
type Mount struct {
	Observers *viewport.Set
	releases  []func()
}

// Release frees every subscription taken by Mount. It is safe to call twice.
func (m *Mount) Release() {
	if m == nil {
		return
	}
	for i := len(m.releases) - 1; i >= 0; i-- {
		m.releases[i]()
	}
	m.releases = nil
}

// Mount subscribes the controller to src and starts one section observer per
// link. Observer reports go through dispatch.
func (c *Controller) Mount(src *scroll.Source, layout viewport.Layout, dispatch viewport.Dispatcher) *Mount {
	m := &Mount{}
	m.releases = append(m.releases, src.Subscribe(func(sig scroll.Signal) {
		c.OnScrollTick(sig.Offset)
	}))
	m.Observers = viewport.Observe(src, section.IDs(c.links), layout, viewport.DefaultBand, dispatch, c.OnSectionIntersect)
	m.releases = append(m.releases, m.Observers.Release)
	return m
}
