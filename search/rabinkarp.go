package search

// primeRK is the multiplier of the Rabin-Karp rolling hash. It is the same
// constant the Go runtime uses for strings.Index.
const primeRK = 16777619

// rabinKarp holds the needle hash and the factor that removes a byte
// leaving the window. For tiny haystacks this beats building any skip
// structure on the fly, and it stays O(n) expected time.
type rabinKarp struct {
	hash uint32
	pow  uint32
}

// newRabinKarp hashes needle front to back for forward search.
func newRabinKarp(needle []byte) rabinKarp {
	var hash uint32
	for _, b := range needle {
		hash = hash*primeRK + uint32(b)
	}
	return rabinKarp{hash: hash, pow: rabinKarpPow(len(needle))}
}

// newRabinKarpReverse hashes needle back to front for reverse search.
func newRabinKarpReverse(needle []byte) rabinKarp {
	var hash uint32
	for i := len(needle) - 1; i >= 0; i-- {
		hash = hash*primeRK + uint32(needle[i])
	}
	return rabinKarp{hash: hash, pow: rabinKarpPow(len(needle))}
}

// rabinKarpPow returns primeRK**n by repeated squaring.
func rabinKarpPow(n int) uint32 {
	var pow, sq uint32 = 1, primeRK
	for i := n; i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return pow
}

// find returns the leftmost occurrence of needle in haystack, or -1.
// Caller guarantees 0 < len(needle) <= len(haystack).
func (rk rabinKarp) find(haystack, needle []byte) int {
	n := len(needle)
	var h uint32
	for i := 0; i < n; i++ {
		h = h*primeRK + uint32(haystack[i])
	}
	if h == rk.hash && string(haystack[:n]) == string(needle) {
		return 0
	}
	for i := n; i < len(haystack); {
		h *= primeRK
		h += uint32(haystack[i])
		h -= rk.pow * uint32(haystack[i-n])
		i++
		if h == rk.hash && string(haystack[i-n:i]) == string(needle) {
			return i - n
		}
	}
	return -1
}

// rfind returns the rightmost occurrence of needle in haystack, or -1.
// rk must come from newRabinKarpReverse.
func (rk rabinKarp) rfind(haystack, needle []byte) int {
	n := len(needle)
	last := len(haystack) - n
	var h uint32
	for i := len(haystack) - 1; i >= last; i-- {
		h = h*primeRK + uint32(haystack[i])
	}
	if h == rk.hash && string(haystack[last:]) == string(needle) {
		return last
	}
	for i := last - 1; i >= 0; i-- {
		h *= primeRK
		h += uint32(haystack[i])
		h -= rk.pow * uint32(haystack[i+n])
		if h == rk.hash && string(haystack[i:i+n]) == string(needle) {
			return i
		}
	}
	return -1
}
