package search

// This file implements the Two-Way string matching algorithm of Crochemore
// and Perrin ("Two-way string-matching", JACM 1991) in both directions.
//
// The needle is split at a critical factorization u·v. Matching compares v
// left to right, then u right to left. On a mismatch in v the window moves
// by the number of bytes of v that matched; on a mismatch in u it moves by
// the needle's period (with memory of the already matched part when the
// period is exact) or by a large safe shift. Every haystack byte is looked
// at a bounded number of times, so search is O(n+m) with O(1) extra space,
// regardless of how repetitive the needle or haystack is.

// approxByteSet is a 64-bit Bloom-style set over bytes, keyed by the low 6
// bits. A byte not in the set is certainly not in the needle, which gives
// a bad-character skip over the whole window.
type approxByteSet uint64

func newApproxByteSet(needle []byte) approxByteSet {
	var set approxByteSet
	for _, b := range needle {
		set |= 1 << (b % 64)
	}
	return set
}

func (s approxByteSet) contains(b byte) bool {
	return s&(1<<(b%64)) != 0
}

// suffixKind selects the lexicographic order used by maximal suffix
// computation. Running both and keeping the later split yields a critical
// factorization.
type suffixKind int

const (
	// minimalSuffix orders bytes so that smaller bytes win.
	minimalSuffix suffixKind = iota
	// maximalSuffix orders bytes so that larger bytes win.
	maximalSuffix
)

// suffixOrdering is the outcome of comparing a candidate byte against the
// current suffix byte.
type suffixOrdering int

const (
	// accept: the candidate starts a better suffix.
	accept suffixOrdering = iota
	// skip: the candidate cannot start a better suffix.
	skip
	// push: bytes are equal, extend the comparison.
	push
)

func (k suffixKind) cmp(current, candidate byte) suffixOrdering {
	switch {
	case current == candidate:
		return push
	case k == maximalSuffix && current < candidate,
		k == minimalSuffix && current > candidate:
		return accept
	default:
		return skip
	}
}

// suffix is a needle position and the period of the suffix starting there.
type suffix struct {
	pos    int
	period int
}

// forwardSuffix computes the maximal (or minimal) suffix of needle and its
// period. needle must hold at least one byte.
func forwardSuffix(needle []byte, kind suffixKind) suffix {
	s := suffix{pos: 0, period: 1}
	candidate, offset := 1, 0
	for candidate+offset < len(needle) {
		current := needle[s.pos+offset]
		next := needle[candidate+offset]
		switch kind.cmp(current, next) {
		case accept:
			s = suffix{pos: candidate, period: 1}
			candidate++
			offset = 0
		case skip:
			candidate += offset + 1
			offset = 0
			s.period = candidate - s.pos
		case push:
			if offset+1 == s.period {
				candidate += s.period
				offset = 0
			} else {
				offset++
			}
		}
	}
	return s
}

// reverseSuffix is forwardSuffix on the reversed needle, expressed in the
// original needle's coordinates: pos is the end of the maximal prefix.
func reverseSuffix(needle []byte, kind suffixKind) suffix {
	s := suffix{pos: len(needle), period: 1}
	if len(needle) == 1 {
		return s
	}
	candidate, offset := len(needle)-1, 0
	for offset < candidate {
		current := needle[s.pos-offset-1]
		next := needle[candidate-offset-1]
		switch kind.cmp(current, next) {
		case accept:
			s = suffix{pos: candidate, period: 1}
			candidate--
			offset = 0
		case skip:
			candidate -= offset + 1
			offset = 0
			s.period = s.pos - candidate
		case push:
			if offset+1 == s.period {
				candidate -= s.period
				offset = 0
			} else {
				offset++
			}
		}
	}
	return s
}

// twoWayShift is how far the window moves after a mismatch in the left
// half. When small is true, n is the exact period of the needle and the
// search remembers how much of the window already matched. Otherwise n is
// a large shift that is always safe.
type twoWayShift struct {
	small bool
	n     int
}

func forwardShift(needle []byte, period, critical int) twoWayShift {
	large := max(critical, len(needle)-critical)
	if critical*2 >= len(needle) {
		return twoWayShift{n: large}
	}
	u, v := needle[:critical], needle[critical:]
	if !hasSuffix(v[:period], u) {
		return twoWayShift{n: large}
	}
	return twoWayShift{small: true, n: period}
}

func reverseShift(needle []byte, period, critical int) twoWayShift {
	large := max(critical, len(needle)-critical)
	if (len(needle)-critical)*2 >= len(needle) {
		return twoWayShift{n: large}
	}
	v, u := needle[:critical], needle[critical:]
	if !hasPrefix(v[len(v)-period:], u) {
		return twoWayShift{n: large}
	}
	return twoWayShift{small: true, n: period}
}

func hasPrefix(s, prefix []byte) bool {
	return len(prefix) <= len(s) && string(s[:len(prefix)]) == string(prefix)
}

func hasSuffix(s, suffix []byte) bool {
	return len(suffix) <= len(s) && string(s[len(s)-len(suffix):]) == string(suffix)
}

// twoWay holds the pattern-only tables of one search direction.
type twoWay struct {
	byteset  approxByteSet
	critical int
	shift    twoWayShift
}

// newTwoWay preprocesses needle (len >= 2) for forward search.
func newTwoWay(needle []byte) twoWay {
	minS := forwardSuffix(needle, minimalSuffix)
	maxS := forwardSuffix(needle, maximalSuffix)
	period, critical := maxS.period, maxS.pos
	if minS.pos > maxS.pos {
		period, critical = minS.period, minS.pos
	}
	return twoWay{
		byteset:  newApproxByteSet(needle),
		critical: critical,
		shift:    forwardShift(needle, period, critical),
	}
}

// newTwoWayReverse preprocesses needle (len >= 2) for reverse search.
func newTwoWayReverse(needle []byte) twoWay {
	minS := reverseSuffix(needle, minimalSuffix)
	maxS := reverseSuffix(needle, maximalSuffix)
	period, critical := maxS.period, maxS.pos
	if minS.pos < maxS.pos {
		period, critical = minS.period, minS.pos
	}
	return twoWay{
		byteset:  newApproxByteSet(needle),
		critical: critical,
		shift:    reverseShift(needle, period, critical),
	}
}

// find returns the leftmost occurrence of needle in haystack, or -1.
// pre may be nil.
func (tw *twoWay) find(haystack, needle []byte, pre *prefilterState) int {
	if tw.shift.small {
		return tw.findSmall(haystack, needle, pre)
	}
	return tw.findLarge(haystack, needle, pre)
}

func (tw *twoWay) findSmall(haystack, needle []byte, pre *prefilterState) int {
	n := len(needle)
	last := n - 1
	period := tw.shift.n
	pos, memory := 0, 0
	for pos+n <= len(haystack) {
		i := max(tw.critical, memory)
		if pre.effective() {
			pos = pre.find(haystack, pos)
			if pos < 0 || pos+n > len(haystack) {
				return -1
			}
			memory = 0
			i = tw.critical
		}
		if !tw.byteset.contains(haystack[pos+last]) {
			pos += n
			memory = 0
			continue
		}
		for i < n && needle[i] == haystack[pos+i] {
			i++
		}
		if i < n {
			pos += i - tw.critical + 1
			memory = 0
			continue
		}
		j := tw.critical
		for j > memory && needle[j] == haystack[pos+j] {
			j--
		}
		if j <= memory && needle[memory] == haystack[pos+memory] {
			return pos
		}
		pos += period
		memory = n - period
	}
	return -1
}

func (tw *twoWay) findLarge(haystack, needle []byte, pre *prefilterState) int {
	n := len(needle)
	last := n - 1
	pos := 0
outer:
	for pos+n <= len(haystack) {
		if pre.effective() {
			pos = pre.find(haystack, pos)
			if pos < 0 || pos+n > len(haystack) {
				return -1
			}
		}
		if !tw.byteset.contains(haystack[pos+last]) {
			pos += n
			continue
		}
		i := tw.critical
		for i < n && needle[i] == haystack[pos+i] {
			i++
		}
		if i < n {
			pos += i - tw.critical + 1
			continue
		}
		for j := tw.critical - 1; j >= 0; j-- {
			if needle[j] != haystack[pos+j] {
				pos += tw.shift.n
				continue outer
			}
		}
		return pos
	}
	return -1
}

// rfind returns the rightmost occurrence of needle in haystack, or -1.
// tw must come from newTwoWayReverse.
func (tw *twoWay) rfind(haystack, needle []byte) int {
	if tw.shift.small {
		return tw.rfindSmall(haystack, needle)
	}
	return tw.rfindLarge(haystack, needle)
}

func (tw *twoWay) rfindSmall(haystack, needle []byte) int {
	n := len(needle)
	period := tw.shift.n
	// end is the exclusive end of the current window. The window's bytes
	// at [memory, n) are known to match when memory < n.
	end, memory := len(haystack), n
	for end >= n {
		start := end - n
		if !tw.byteset.contains(haystack[start]) {
			end -= n
			memory = n
			continue
		}
		i := min(tw.critical, memory)
		for i > 0 && needle[i-1] == haystack[start+i-1] {
			i--
		}
		if i > 0 || needle[0] != haystack[start] {
			end -= tw.critical - i + 1
			memory = n
			continue
		}
		j := tw.critical
		for j < memory && needle[j] == haystack[start+j] {
			j++
		}
		if j >= memory {
			return start
		}
		end -= period
		memory = period
	}
	return -1
}

func (tw *twoWay) rfindLarge(haystack, needle []byte) int {
	n := len(needle)
	end := len(haystack)
	for end >= n {
		start := end - n
		if !tw.byteset.contains(haystack[start]) {
			end -= n
			continue
		}
		i := tw.critical
		for i > 0 && needle[i-1] == haystack[start+i-1] {
			i--
		}
		if i > 0 || needle[0] != haystack[start] {
			end -= tw.critical - i + 1
			continue
		}
		j := tw.critical
		for j < n && needle[j] == haystack[start+j] {
			j++
		}
		if j == n {
			return start
		}
		end -= tw.shift.n
	}
	return -1
}
