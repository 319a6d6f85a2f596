package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinksAreValidAndOrdered(t *testing.T) {
	t.Parallel()

	links := Links()
	require.NoError(t, Validate(links))
	require.Equal(t, []ID{Home, Projects, About, Stack, Contact}, IDs(links))

	// Callers cannot mutate the registry.
	links[0].Label = "changed"
	require.Equal(t, "Home", Links()[0].Label)
}

func TestValidateRejectsDuplicatesAndUnknown(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
	require.Error(t, Validate([]NavLink{{ID: Home}, {ID: Home}}))
	require.Error(t, Validate([]NavLink{{ID: "blog"}}))
}

func TestParse(t *testing.T) {
	t.Parallel()

	id, ok := Parse("#projects")
	require.True(t, ok)
	require.Equal(t, Projects, id)

	_, ok = Parse("nowhere")
	require.False(t, ok)
}

func TestResolveTargets(t *testing.T) {
	t.Parallel()

	link := NavLink{ID: Projects, Href: "#projects", Label: "Projects"}

	home := Resolve(HomeRoute, link)
	require.Equal(t, InPageAnchor{ID: Projects}, home)
	require.Equal(t, "#projects", home.Href())

	away := Resolve(HobbiesRoute, link)
	require.Equal(t, FullPageRoute{Path: "/#projects"}, away)
	require.Equal(t, "/#projects", away.Href())
}

func TestRouteMatching(t *testing.T) {
	t.Parallel()

	require.True(t, RouteFor("").IsHome())
	require.True(t, RouteFor("/?utm=x").IsHome())
	require.False(t, RouteFor("/hobbies/").IsHome())
	require.True(t, RouteFor("hobbies//").Matches("/hobbies"))
	require.False(t, HobbiesRoute.Matches("/#projects"))
}
