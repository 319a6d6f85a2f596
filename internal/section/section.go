// Package section holds the fixed registry of page sections and the navigation
// links that point at them.
package section

import (
	"fmt"
	"strings"
)

// ID names an anchorable region of the home page.
type ID string

const (
	Home     ID = "home"
	Projects ID = "projects"
	About    ID = "about"
	Stack    ID = "stack"
	Contact  ID = "contact"

	// Hobbies is the secondary static page. It is reached by full navigation,
	// never by in-page scroll.
	Hobbies ID = "hobbies"
)

var known = map[ID]bool{
	Home:     true,
	Projects: true,
	About:    true,
	Stack:    true,
	Contact:  true,
	Hobbies:  true,
}

// Parse returns the ID for s, or false when s is not a known section.
func Parse(s string) (ID, bool) {
	id := ID(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	return id, known[id]
}

// Anchor returns the in-document fragment for the section, e.g. "#projects".
func (id ID) Anchor() string {
	return "#" + string(id)
}

// NavLink is one entry of the header navigation.
type NavLink struct {
	ID    ID
	Href  string
	Label string
}

var links = []NavLink{
	{ID: Home, Href: Home.Anchor(), Label: "Home"},
	{ID: Projects, Href: Projects.Anchor(), Label: "Projects"},
	{ID: About, Href: About.Anchor(), Label: "About"},
	{ID: Stack, Href: Stack.Anchor(), Label: "Stack"},
	{ID: Contact, Href: Contact.Anchor(), Label: "Contact"},
}

// Links returns the header links in display order. The slice is a copy.
func Links() []NavLink {
	out := make([]NavLink, len(links))
	copy(out, links)
	return out
}

// IDs returns the section ids of links in order.
func IDs(links []NavLink) []ID {
	ids := make([]ID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}
	return ids
}

// Validate checks that every link names a known section exactly once.
func Validate(links []NavLink) error {
	if len(links) == 0 {
		return fmt.Errorf("section: no links configured")
	}
	seen := make(map[ID]bool, len(links))
	for _, l := range links {
		if !known[l.ID] {
			return fmt.Errorf("section: unknown link id %q", l.ID)
		}
		if seen[l.ID] {
			return fmt.Errorf("section: duplicate link id %q", l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}
