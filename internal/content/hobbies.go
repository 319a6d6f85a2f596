package content

import "sort"

// Kinds of watched items.
const (
	Film   = "Film"
	TVShow = "TV Show"
	TVMini = "TV Mini"

	FilterAll = "All"
)

// Filters lists the watched-list filters in display order.
var Filters = []string{FilterAll, Film, TVShow, TVMini}

type Hobbies struct {
	FavouriteFilm Favourite                `yaml:"favourite_film"`
	FavouriteShow Favourite                `yaml:"favourite_show"`
	Watched       map[string][]WatchedItem `yaml:"watched"`
	Music         []Album                  `yaml:"music"`
	Books         []Book                   `yaml:"books"`
}

type Favourite struct {
	Title  string `yaml:"title"`
	Credit string `yaml:"credit"`
	Note   string `yaml:"note"`
}

type WatchedItem struct {
	Title   string `yaml:"title"`
	Type    string `yaml:"type"`
	Rewatch bool   `yaml:"rewatch"`
	Note    string `yaml:"note"`
}

type Album struct {
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

type Book struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Status string `yaml:"status"`
}

// Years returns the years with watched lists, newest first.
func (h Hobbies) Years() []string {
	years := make([]string, 0, len(h.Watched))
	for y := range h.Watched {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// Selection is the resolved year and filter for a hobbies page request.
type Selection struct {
	Year   string
	Filter string
	Items  []WatchedItem
	Counts map[string]int
}

// Select resolves the requested year and filter. Unknown years fall back to the
// newest one and unknown filters to FilterAll.
func (h Hobbies) Select(year, filter string) Selection {
	years := h.Years()
	if _, ok := h.Watched[year]; !ok {
		year = ""
		if len(years) > 0 {
			year = years[0]
		}
	}
	if !validFilter(filter) {
		filter = FilterAll
	}
	list := h.Watched[year]
	return Selection{
		Year:   year,
		Filter: filter,
		Items:  FilterItems(list, filter),
		Counts: Counts(list),
	}
}

// FilterItems keeps items of the given type. FilterAll keeps everything.
func FilterItems(items []WatchedItem, filter string) []WatchedItem {
	if filter == FilterAll {
		return items
	}
	out := make([]WatchedItem, 0, len(items))
	for _, it := range items {
		if it.Type == filter {
			out = append(out, it)
		}
	}
	return out
}

// Counts returns the number of items per filter.
func Counts(items []WatchedItem) map[string]int {
	counts := map[string]int{FilterAll: len(items)}
	for _, it := range items {
		counts[it.Type]++
	}
	return counts
}

func validFilter(f string) bool {
	for _, v := range Filters {
		if v == f {
			return true
		}
	}
	return false
}
