// Package theme holds the light/dark theme of one page session.
package theme

import (
	"fmt"
	"strings"
)

// Theme is Light or Dark. The zero value is Dark.
type Theme int

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// ToggleLabel is the accessible label of the switch that leaves t.
func (t Theme) ToggleLabel() string {
	if t == Light {
		return "Switch to dark mode"
	}
	return "Switch to light mode"
}

// Parse reads "light" or "dark".
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("theme: unknown theme %q", s)
}

// Controller owns the theme value. It is created per page session and handed
// to every consumer that needs it; there is no package-level instance.
type Controller struct {
	theme Theme
	subs  map[int]func(Theme)
	order []int
	next  int
}

// NewController returns a controller starting at initial.
func NewController(initial Theme) *Controller {
	return &Controller{theme: initial, subs: make(map[int]func(Theme))}
}

// Theme returns the current theme.
func (c *Controller) Theme() Theme {
	return c.theme
}

// Toggle flips the theme, notifies subscribers and returns the new value.
func (c *Controller) Toggle() Theme {
	c.theme = c.theme.Other()
	for _, id := range c.order {
		if fn, ok := c.subs[id]; ok {
			fn(c.theme)
		}
	}
	return c.theme
}

// Subscribe calls fn after every change until release is called.
func (c *Controller) Subscribe(fn func(Theme)) (release func()) {
	c.next++
	id := c.next
	c.subs[id] = fn
	c.order = append(c.order, id)
	return func() {
		if _, ok := c.subs[id]; !ok {
			return
		}
		delete(c.subs, id)
		for i, o := range c.order {
			if o == id {
				c.order = append(c.order[:i:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Subscribers is the number of live subscriptions.
func (c *Controller) Subscribers() int {
	return len(c.subs)
}
