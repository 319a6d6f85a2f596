package nav

import "github.com/yashasviudayan/portfolio/internal/section"

// LinkView is one rendered header link.
type LinkView struct {
	ID     section.ID
	Label  string
	Href   string
	Active bool
}

// View is what the header template needs.
type View struct {
	Scrolled  bool
	MenuOpen  bool
	MenuLabel string
	HomeHref  string
	Links     []LinkView
}

// View renders the current state. Targets are resolved once here so templates
// never branch on the route.
func (c *Controller) View() View {
	v := View{
		Scrolled:  c.state.Scrolled,
		MenuOpen:  c.state.MenuOpen,
		MenuLabel: "Open navigation menu",
		HomeHref:  section.Resolve(c.route, section.NavLink{ID: section.Home}).Href(),
		Links:     make([]LinkView, 0, len(c.links)),
	}
	if v.MenuOpen {
		v.MenuLabel = "Close navigation menu"
	}
	for _, l := range c.links {
		v.Links = append(v.Links, LinkView{
			ID:     l.ID,
			Label:  l.Label,
			Href:   section.Resolve(c.route, l).Href(),
			Active: c.IsActive(l.ID),
		})
	}
	return v
}
