package search

import "iter"

// Match is a half-open byte range [Start, End) of one occurrence.
type Match struct {
	Start int
	End   int
}

// Len returns End - Start.
func (m Match) Len() int {
	return m.End - m.Start
}

// FindIter yields non-overlapping matches left to right. Each search
// resumes at the end of the previous match. For the empty pattern it
// advances one byte after every match, yielding 0 through len(haystack).
//
// A FindIter is not safe for concurrent use. The Finder it was created
// from is.
type FindIter struct {
	f        *Finder
	haystack []byte
	pos      int
}

// Iter returns an iterator over the matches of f in haystack.
func (f *Finder) Iter(haystack []byte) *FindIter {
	return &FindIter{f: f, haystack: haystack}
}

// Next returns the start of the next match.
func (it *FindIter) Next() (start int, ok bool) {
	if it.pos > len(it.haystack) {
		return -1, false
	}
	i := it.f.Find(it.haystack[it.pos:])
	if i < 0 {
		it.pos = len(it.haystack) + 1
		return -1, false
	}
	start = it.pos + i
	it.pos = start + max(1, len(it.f.needle))
	return start, true
}

// All returns the match starts of f in haystack, left to right.
func (f *Finder) All(haystack []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := f.Iter(haystack)
		for start, ok := it.Next(); ok; start, ok = it.Next() {
			if !yield(start) {
				return
			}
		}
	}
}

// Matches is like All but yields full match ranges.
func (f *Finder) Matches(haystack []byte) iter.Seq[Match] {
	n := len(f.needle)
	return func(yield func(Match) bool) {
		for start := range f.All(haystack) {
			if !yield(Match{Start: start, End: start + n}) {
				return
			}
		}
	}
}

// FindReverseIter yields non-overlapping matches right to left. Each
// search looks strictly left of the previous match start. For the empty
// pattern it yields len(haystack) down to 0.
//
// The result is a greedy tiling from the right. For patterns that overlap
// themselves it can differ from the reversed FindIter sequence.
type FindReverseIter struct {
	f        *FinderReverse
	haystack []byte
	end      int
}

// Iter returns an iterator over the matches of f in haystack, rightmost
// first.
func (f *FinderReverse) Iter(haystack []byte) *FindReverseIter {
	return &FindReverseIter{f: f, haystack: haystack, end: len(haystack)}
}

// Next returns the start of the next match.
func (it *FindReverseIter) Next() (start int, ok bool) {
	if it.end < 0 {
		return -1, false
	}
	i := it.f.RFind(it.haystack[:it.end])
	if i < 0 {
		it.end = -1
		return -1, false
	}
	if len(it.f.needle) == 0 {
		it.end = i - 1
	} else {
		it.end = i
	}
	return i, true
}

// All returns the match starts of f in haystack, right to left.
func (f *FinderReverse) All(haystack []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := f.Iter(haystack)
		for start, ok := it.Next(); ok; start, ok = it.Next() {
			if !yield(start) {
				return
			}
		}
	}
}

// Matches is like All but yields full match ranges.
func (f *FinderReverse) Matches(haystack []byte) iter.Seq[Match] {
	n := len(f.needle)
	return func(yield func(Match) bool) {
		for start := range f.All(haystack) {
			if !yield(Match{Start: start, End: start + n}) {
				return
			}
		}
	}
}
