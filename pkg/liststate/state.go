// Package liststate holds the client-side view of lists and URLs as plain
// values. Every update returns a new State; derived views (published lists,
// ordered URLs) are computed from the current value on each call.
package liststate

import (
	"sort"

	"github.com/gamassss/urlist/internal/domain"
)

type State struct {
	Lists    []domain.List
	Selected *domain.List
	Loading  bool
	Error    string

	URLs        []domain.URL
	URLsLoading bool
	URLsError   string
}

func SetLists(s State, lists []domain.List) State {
	s.Lists = append([]domain.List(nil), lists...)
	return s
}

// AddList puts a freshly created list first, matching the newest-first index.
func AddList(s State, list domain.List) State {
	s.Lists = append([]domain.List{list}, s.Lists...)
	return s
}

func UpdateList(s State, list domain.List) State {
	lists := make([]domain.List, len(s.Lists))
	copy(lists, s.Lists)
	for i := range lists {
		if lists[i].ID == list.ID {
			lists[i] = list
			break
		}
	}
	s.Lists = lists

	if s.Selected != nil && s.Selected.ID == list.ID {
		selected := list
		s.Selected = &selected
	}
	return s
}

func RemoveList(s State, id string) State {
	lists := make([]domain.List, 0, len(s.Lists))
	for _, l := range s.Lists {
		if l.ID != id {
			lists = append(lists, l)
		}
	}
	s.Lists = lists

	if s.Selected != nil && s.Selected.ID == id {
		s.Selected = nil
	}
	return s
}

func Select(s State, list *domain.List) State {
	if list == nil {
		s.Selected = nil
		return s
	}
	selected := *list
	s.Selected = &selected
	return s
}

func SetLoading(s State, loading bool) State {
	s.Loading = loading
	return s
}

func SetError(s State, msg string) State {
	s.Error = msg
	return s
}

func SetURLs(s State, urls []domain.URL) State {
	s.URLs = append([]domain.URL(nil), urls...)
	return s
}

func AddURL(s State, url domain.URL) State {
	urls := make([]domain.URL, 0, len(s.URLs)+1)
	urls = append(urls, s.URLs...)
	s.URLs = append(urls, url)
	return s
}

func UpdateURL(s State, url domain.URL) State {
	urls := make([]domain.URL, len(s.URLs))
	copy(urls, s.URLs)
	for i := range urls {
		if urls[i].ID == url.ID {
			urls[i] = url
			break
		}
	}
	s.URLs = urls
	return s
}

func RemoveURL(s State, id string) State {
	urls := make([]domain.URL, 0, len(s.URLs))
	for _, u := range s.URLs {
		if u.ID != id {
			urls = append(urls, u)
		}
	}
	s.URLs = urls
	return s
}

func SetURLsLoading(s State, loading bool) State {
	s.URLsLoading = loading
	return s
}

func SetURLsError(s State, msg string) State {
	s.URLsError = msg
	return s
}

func Published(lists []domain.List) []domain.List {
	return filter(lists, true)
}

func Unpublished(lists []domain.List) []domain.List {
	return filter(lists, false)
}

func filter(lists []domain.List, published bool) []domain.List {
	out := make([]domain.List, 0, len(lists))
	for _, l := range lists {
		if l.IsPublished == published {
			out = append(out, l)
		}
	}
	return out
}

// SortedURLs orders by position, then creation time. The input is not modified.
func SortedURLs(urls []domain.URL) []domain.URL {
	out := append([]domain.URL(nil), urls...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// ApplyPositions returns a copy of urls with the given positions assigned by id.
func ApplyPositions(urls []domain.URL, updates []domain.PositionUpdate) []domain.URL {
	byID := make(map[string]int, len(updates))
	for _, u := range updates {
		byID[u.ID] = u.Position
	}

	out := append([]domain.URL(nil), urls...)
	for i := range out {
		if pos, ok := byID[out[i].ID]; ok {
			out[i].Position = pos
		}
	}
	return out
}
