package search

import (
	"iter"

	"github.com/coregx/ahocorasick"
)

// SetFinder searches for any of several literal patterns at once using an
// Aho-Corasick automaton. Like Finder it is immutable and safe for
// concurrent use.
type SetFinder struct {
	auto     *ahocorasick.Automaton
	patterns [][]byte
}

// NewSetFinder builds a SetFinder for patterns. At least one pattern is
// required and none may be empty.
func NewSetFinder(patterns ...[]byte) (*SetFinder, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}
	builder := ahocorasick.NewBuilder()
	owned := make([][]byte, len(patterns))
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, &BuildError{Index: i, Err: ErrEmptyPattern}
		}
		owned[i] = append([]byte(nil), p...)
		builder.AddPattern(owned[i])
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &BuildError{Index: -1, Err: err}
	}
	return &SetFinder{auto: auto, patterns: owned}, nil
}

// Len returns the number of patterns.
func (s *SetFinder) Len() int {
	return len(s.patterns)
}

// Find returns the leftmost match of any pattern in haystack.
func (s *SetFinder) Find(haystack []byte) (Match, bool) {
	return s.FindAt(haystack, 0)
}

// FindAt is like Find but starts searching at offset at. Offsets in the
// result are relative to the start of haystack.
func (s *SetFinder) FindAt(haystack []byte, at int) (Match, bool) {
	if at < 0 || at >= len(haystack) {
		return Match{}, false
	}
	m := s.auto.Find(haystack, at)
	if m == nil {
		return Match{}, false
	}
	return Match{Start: m.Start, End: m.End}, true
}

// IsMatch reports whether any pattern occurs in haystack.
func (s *SetFinder) IsMatch(haystack []byte) bool {
	return s.auto.IsMatch(haystack)
}

// SetIter yields non-overlapping matches of a SetFinder, left to right.
type SetIter struct {
	s        *SetFinder
	haystack []byte
	pos      int
}

// Iter returns an iterator over the matches of s in haystack.
func (s *SetFinder) Iter(haystack []byte) *SetIter {
	return &SetIter{s: s, haystack: haystack}
}

// Next returns the next match.
func (it *SetIter) Next() (Match, bool) {
	m, ok := it.s.FindAt(it.haystack, it.pos)
	if !ok {
		it.pos = len(it.haystack) + 1
		return Match{}, false
	}
	it.pos = m.End
	return m, true
}

// All returns the non-overlapping matches of s in haystack.
func (s *SetFinder) All(haystack []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		it := s.Iter(haystack)
		for m, ok := it.Next(); ok; m, ok = it.Next() {
			if !yield(m) {
				return
			}
		}
	}
}
