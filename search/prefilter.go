package search

import "github.com/coregx/bstr/simd"

// Prefilter tuning, in the spirit of the memchr crate's heuristics.
const (
	// prefilterMinSkips is the number of prefilter calls observed before
	// its effectiveness is judged.
	prefilterMinSkips = 50
	// prefilterMinSkipBytes is the average number of bytes each call must
	// skip to stay enabled.
	prefilterMinSkipBytes = 8
)

// rarePair is the pattern-only part of the rare byte prefilter: two
// distinct rare bytes of the needle at a fixed distance, scanned with
// simd.MemchrPair. It never rejects a true match, it only jumps to the
// next position where a match is possible.
type rarePair struct {
	rare simd.RareBytes
}

// newRarePair returns the prefilter for needle, or ok == false when the
// rarest byte is too common for a candidate scan to beat plain Two-Way.
func newRarePair(needle []byte, maxRank byte) (rarePair, bool) {
	rb := simd.SelectRareBytes(needle)
	if len(needle) < 2 || rb.Index1 == rb.Index2 {
		return rarePair{}, false
	}
	if min(simd.ByteRank(rb.Byte1), simd.ByteRank(rb.Byte2)) > maxRank {
		return rarePair{}, false
	}
	return rarePair{rare: rb}, true
}

// candidate returns the smallest needle start >= pos at which both rare
// bytes line up, or -1.
func (p *rarePair) candidate(haystack []byte, pos int) int {
	from := pos + p.rare.Index1
	if from >= len(haystack) {
		return -1
	}
	i := simd.MemchrPair(haystack[from:], p.rare.Byte1, p.rare.Byte2, p.rare.Offset())
	if i < 0 {
		return -1
	}
	return pos + i
}

// prefilterState tracks, for a single search call, whether the prefilter
// is still paying for itself. It lives on the caller's stack so that a
// Finder stays immutable and shareable across goroutines.
type prefilterState struct {
	pair    *rarePair
	skips   int
	skipped int
	inert   bool
}

// effective reports whether the prefilter should be consulted. Once a
// prefilter is judged ineffective it stays off for the rest of the call.
// A nil state is never effective.
func (s *prefilterState) effective() bool {
	if s == nil || s.inert {
		return false
	}
	if s.skips < prefilterMinSkips {
		return true
	}
	if s.skipped >= prefilterMinSkipBytes*s.skips {
		return true
	}
	s.inert = true
	return false
}

// find runs the prefilter from pos and records how far it jumped.
func (s *prefilterState) find(haystack []byte, pos int) int {
	next := s.pair.candidate(haystack, pos)
	s.skips++
	if next < 0 {
		s.skipped += len(haystack) - pos
	} else {
		s.skipped += next - pos
	}
	return next
}
