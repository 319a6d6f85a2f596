package section

import "strings"

// Route is the page a header is rendered on.
type Route struct {
	Path string
}

var (
	HomeRoute    = Route{Path: "/"}
	HobbiesRoute = Route{Path: "/hobbies"}
)

// RouteFor builds the route for a request path.
func RouteFor(path string) Route {
	return Route{Path: NormalizePath(path)}
}

// IsHome reports whether in-document anchors are meaningful on this route.
func (r Route) IsHome() bool {
	return NormalizePath(r.Path) == "/"
}

// Matches reports an exact path match against target.
func (r Route) Matches(target string) bool {
	return NormalizePath(r.Path) == NormalizePath(target)
}

// NormalizePath cleans a request path: leading slash, no duplicate or trailing
// slashes, and no query string.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}

// Target is where a navigation link leads. It is either an InPageAnchor or a
// FullPageRoute.
type Target interface {
	Href() string
	isTarget()
}

// InPageAnchor scrolls within the current document.
type InPageAnchor struct {
	ID ID
}

func (a InPageAnchor) Href() string { return a.ID.Anchor() }
func (InPageAnchor) isTarget()      {}

// FullPageRoute loads another document.
type FullPageRoute struct {
	Path string
}

func (r FullPageRoute) Href() string { return r.Path }
func (FullPageRoute) isTarget()      {}

// Resolve picks the target for link on route. Off the home page, anchors are
// rewritten to "/#anchor" so the browser first loads home.
func Resolve(route Route, link NavLink) Target {
	if route.IsHome() {
		return InPageAnchor{ID: link.ID}
	}
	return FullPageRoute{Path: "/" + link.ID.Anchor()}
}
