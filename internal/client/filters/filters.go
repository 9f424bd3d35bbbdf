// Package filters holds the pure search/filter logic for problem and
// contest collections. State is an immutable value; transitions return a new
// State and the apply functions never touch the network or mutate their
// input, so the whole layer is unit-testable without any UI harness.
package filters

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cforge/cforge/internal/client/models"
)

// State is the current filter selection: a free-text query and at most one
// active tag. The zero value selects nothing and filters nothing.
type State struct {
	Query string
	Tag   string
}

// WithQuery returns a State with the search text replaced.
func (s State) WithQuery(query string) State {
	s.Query = query
	return s
}

// ToggleTag returns a State with the tag selected, or cleared when the same
// tag was already active.
func (s State) ToggleTag(tag string) State {
	if s.Tag == tag {
		s.Tag = ""
	} else {
		s.Tag = tag
	}
	return s
}

// ApplyProblems reduces a problem collection by the filter state.
//
// Composition order: when the whole query parses as an integer it is an
// exact-rating match, otherwise a case-insensitive substring match over
// title, tags, contest id and index; the tag filter applies after either.
// An empty query returns the input selection unchanged.
func ApplyProblems(s State, in []models.Problem) []models.Problem {
	out := in

	if rating, err := strconv.Atoi(s.Query); err == nil && s.Query != "" {
		out = filterProblems(out, func(p models.Problem) bool {
			return p.Rating != nil && *p.Rating == rating
		})
	} else if s.Query != "" {
		q := strings.ToLower(s.Query)
		out = filterProblems(out, func(p models.Problem) bool {
			if strings.Contains(strings.ToLower(p.Title), q) {
				return true
			}
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), q) {
					return true
				}
			}
			return strings.Contains(strconv.Itoa(p.ContestID), s.Query) ||
				strings.Contains(strings.ToLower(p.Index), q)
		})
	}

	if s.Tag != "" {
		out = filterProblems(out, func(p models.Problem) bool {
			return p.HasTag(s.Tag)
		})
	}

	return out
}

// ApplyContests reduces a contest collection by the query (case-insensitive
// name match) and orders it ascending by start instant. The sort is stable:
// ties keep their input order, and sorting an already-sorted collection is
// a no-op.
func ApplyContests(s State, in []models.Contest) []models.Contest {
	out := in
	if s.Query != "" {
		q := strings.ToLower(s.Query)
		filtered := make([]models.Contest, 0, len(out))
		for _, c := range out {
			if strings.Contains(strings.ToLower(c.Name), q) {
				filtered = append(filtered, c)
			}
		}
		out = filtered
	}

	sorted := make([]models.Contest, len(out))
	copy(sorted, out)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime().Before(sorted[j].StartTime())
	})
	return sorted
}

func filterProblems(in []models.Problem, keep func(models.Problem) bool) []models.Problem {
	out := make([]models.Problem, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns the distinct tags of a problem collection in first-seen
// order, for rendering a tag picker.
func Tags(in []models.Problem) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range in {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
