// Package search implements substring search over raw bytes.
//
// A Finder is built once from a pattern and reused across any number of
// haystacks. Construction picks a strategy from the pattern alone:
//
//   - empty pattern: matches at every offset
//   - one byte: simd.Memchr / simd.Memrchr
//   - longer: Two-Way (Crochemore-Perrin), O(n+m) time, O(1) space,
//     with a rare byte prefilter in the forward direction and a
//     Rabin-Karp rolling hash for tiny haystacks
//
// Finders and reverse finders are immutable after construction and safe
// for concurrent use. Per-call state (such as prefilter statistics) lives
// on the caller's stack.
//
// Offsets are byte offsets into the haystack. Absence is reported as -1,
// never as an error.
package search

import (
	"slices"

	"github.com/coregx/bstr/simd"
)

// Finder searches for the leftmost occurrence of one pattern.
type Finder struct {
	needle  []byte
	tw      twoWay
	rk      rabinKarp
	pair    rarePair
	hasPair bool
	rkMax   int
}

// NewFinder returns a forward searcher for pattern using DefaultConfig.
// The pattern is copied.
func NewFinder(pattern []byte) *Finder {
	return newFinder(slices.Clone(pattern), DefaultConfig())
}

// NewFinderWithConfig is like NewFinder with an explicit configuration.
func NewFinderWithConfig(pattern []byte, config Config) (*Finder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newFinder(slices.Clone(pattern), config), nil
}

func newFinder(needle []byte, config Config) *Finder {
	f := &Finder{needle: needle, rkMax: config.RabinKarpMaxHaystack}
	if len(needle) < 2 {
		return f
	}
	f.tw = newTwoWay(needle)
	f.rk = newRabinKarp(needle)
	if config.EnablePrefilter {
		f.pair, f.hasPair = newRarePair(needle, byte(config.PrefilterMaxRank))
	}
	return f
}

// Needle returns the pattern. The caller must not modify it.
func (f *Finder) Needle() []byte {
	return f.needle
}

// Find returns the offset of the leftmost occurrence of the pattern in
// haystack, or -1. The empty pattern matches at 0.
func (f *Finder) Find(haystack []byte) int {
	n := len(f.needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return simd.Memchr(haystack, f.needle[0])
	case len(haystack) < f.rkMax:
		return f.rk.find(haystack, f.needle)
	}
	if !f.hasPair {
		return f.tw.find(haystack, f.needle, nil)
	}
	pre := prefilterState{pair: &f.pair}
	return f.tw.find(haystack, f.needle, &pre)
}

// FinderReverse searches for the rightmost occurrence of one pattern.
type FinderReverse struct {
	needle []byte
	tw     twoWay
	rk     rabinKarp
	rkMax  int
}

// NewFinderReverse returns a reverse searcher for pattern using
// DefaultConfig. The pattern is copied.
func NewFinderReverse(pattern []byte) *FinderReverse {
	return newFinderReverse(slices.Clone(pattern), DefaultConfig())
}

// NewFinderReverseWithConfig is like NewFinderReverse with an explicit
// configuration. The prefilter settings do not apply to reverse search.
func NewFinderReverseWithConfig(pattern []byte, config Config) (*FinderReverse, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newFinderReverse(slices.Clone(pattern), config), nil
}

func newFinderReverse(needle []byte, config Config) *FinderReverse {
	f := &FinderReverse{needle: needle, rkMax: config.RabinKarpMaxHaystack}
	if len(needle) < 2 {
		return f
	}
	f.tw = newTwoWayReverse(needle)
	f.rk = newRabinKarpReverse(needle)
	return f
}

// Needle returns the pattern. The caller must not modify it.
func (f *FinderReverse) Needle() []byte {
	return f.needle
}

// RFind returns the offset of the rightmost occurrence of the pattern in
// haystack, or -1. The empty pattern matches at len(haystack).
func (f *FinderReverse) RFind(haystack []byte) int {
	n := len(f.needle)
	switch {
	case n == 0:
		return len(haystack)
	case n > len(haystack):
		return -1
	case n == 1:
		return simd.Memrchr(haystack, f.needle[0])
	case len(haystack) < f.rkMax:
		return f.rk.rfind(haystack, f.needle)
	}
	return f.tw.rfind(haystack, f.needle)
}

// Index returns the offset of the leftmost occurrence of pattern in
// haystack, or -1. Use a Finder to search for the same pattern repeatedly.
func Index(haystack, pattern []byte) int {
	switch {
	case len(pattern) == 0:
		return 0
	case len(pattern) > len(haystack):
		return -1
	case len(pattern) == 1:
		return simd.Memchr(haystack, pattern[0])
	case len(haystack) < DefaultConfig().RabinKarpMaxHaystack:
		return newRabinKarp(pattern).find(haystack, pattern)
	}
	return newFinder(pattern, DefaultConfig()).Find(haystack)
}

// LastIndex returns the offset of the rightmost occurrence of pattern in
// haystack, or -1. Use a FinderReverse to search for the same pattern
// repeatedly.
func LastIndex(haystack, pattern []byte) int {
	switch {
	case len(pattern) == 0:
		return len(haystack)
	case len(pattern) > len(haystack):
		return -1
	case len(pattern) == 1:
		return simd.Memrchr(haystack, pattern[0])
	case len(haystack) < DefaultConfig().RabinKarpMaxHaystack:
		return newRabinKarpReverse(pattern).rfind(haystack, pattern)
	}
	return newFinderReverse(pattern, DefaultConfig()).RFind(haystack)
}

// Contains reports whether pattern occurs in haystack.
func Contains(haystack, pattern []byte) bool {
	return Index(haystack, pattern) >= 0
}
