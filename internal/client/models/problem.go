package models

import "fmt"

// Problem is a single problem from problemset.problems. Its identity is the
// (ContestID, Index) pair; Rating is nil for unrated problems.
type Problem struct {
	ContestID   int
	Index       string
	Title       string
	Rating      *int
	Tags        []string
	SolvedCount int
}

// ID returns the composite identity, e.g. "4A".
func (p Problem) ID() string {
	return fmt.Sprintf("%d%s", p.ContestID, p.Index)
}

// HasTag reports whether tag is an exact member of the problem's tag set.
func (p Problem) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
