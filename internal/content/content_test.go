package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	site, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "YU", site.Initials)
	require.NotEmpty(t, site.Projects)
	require.Contains(t, string(site.About), "<strong>how something works</strong>")
	require.Contains(t, string(site.About), `href="/hobbies"`)

	for _, p := range site.Projects {
		require.NotEmpty(t, p.Summary, "project %d", p.ID)
	}
}

func TestMarkdownIsSanitized(t *testing.T) {
	t.Parallel()

	site, err := Parse([]byte("about: |\n  hi <script>alert(1)</script> [x](javascript:alert(1))\n"))
	require.NoError(t, err)
	require.NotContains(t, string(site.About), "<script>")
	require.NotContains(t, string(site.About), "javascript:")
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Someone\nprojects:\n  - id: 7\n    title: X\n    status: In Progress\n"), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Someone", site.Name)
	require.True(t, site.Projects[0].Building())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Parse([]byte("projects: [:"))
	require.Error(t, err)
}

func TestHobbiesSelection(t *testing.T) {
	t.Parallel()

	site, err := Load("")
	require.NoError(t, err)
	h := site.Hobbies

	require.Equal(t, []string{"2026", "2025"}, h.Years())

	sel := h.Select("", "")
	require.Equal(t, "2026", sel.Year)
	require.Equal(t, FilterAll, sel.Filter)
	require.Len(t, sel.Items, len(h.Watched["2026"]))

	sel = h.Select("2025", Film)
	require.Equal(t, 3, sel.Counts[Film])
	require.Equal(t, 5, sel.Counts[FilterAll])
	for _, it := range sel.Items {
		require.Equal(t, Film, it.Type)
	}

	sel = h.Select("1999", "Podcast")
	require.Equal(t, "2026", sel.Year)
	require.Equal(t, FilterAll, sel.Filter)
}

func TestFilterItems(t *testing.T) {
	t.Parallel()

	items := []WatchedItem{{Title: "a", Type: Film}, {Title: "b", Type: TVMini}}
	require.Len(t, FilterItems(items, FilterAll), 2)

	got := FilterItems(items, TVMini)
	require.Len(t, got, 1)
	require.True(t, strings.EqualFold("b", got[0].Title))
}
