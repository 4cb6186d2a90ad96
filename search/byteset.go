package search

import (
	"unicode/utf8"

	"github.com/coregx/bstr/runes"
	"github.com/coregx/bstr/simd"
)

// IndexByte returns the offset of the first b in haystack, or -1.
func IndexByte(haystack []byte, b byte) int {
	return simd.Memchr(haystack, b)
}

// LastIndexByte returns the offset of the last b in haystack, or -1.
func LastIndexByte(haystack []byte, b byte) int {
	return simd.Memrchr(haystack, b)
}

// IndexByteSet returns the offset of the first byte of haystack that is
// in set, or -1. An empty set matches nothing.
func IndexByteSet(haystack, set []byte) int {
	switch len(set) {
	case 0:
		return -1
	case 1:
		return simd.Memchr(haystack, set[0])
	case 2:
		return simd.Memchr2(haystack, set[0], set[1])
	case 3:
		return simd.Memchr3(haystack, set[0], set[1], set[2])
	}
	return simd.MemchrInTable(haystack, simd.NewByteTable(set))
}

// LastIndexByteSet returns the offset of the last byte of haystack that
// is in set, or -1.
func LastIndexByteSet(haystack, set []byte) int {
	switch len(set) {
	case 0:
		return -1
	case 1:
		return simd.Memrchr(haystack, set[0])
	case 2:
		return simd.Memrchr2(haystack, set[0], set[1])
	case 3:
		return simd.Memrchr3(haystack, set[0], set[1], set[2])
	}
	return simd.MemrchrInTable(haystack, simd.NewByteTable(set))
}

// IndexNotByteSet returns the offset of the first byte of haystack that
// is not in set, or -1.
func IndexNotByteSet(haystack, set []byte) int {
	if len(set) == 0 {
		if len(haystack) == 0 {
			return -1
		}
		return 0
	}
	return simd.MemchrNotInTable(haystack, simd.NewByteTable(set))
}

// LastIndexNotByteSet returns the offset of the last byte of haystack
// that is not in set, or -1.
func LastIndexNotByteSet(haystack, set []byte) int {
	if len(set) == 0 {
		return len(haystack) - 1
	}
	return simd.MemrchrNotInTable(haystack, simd.NewByteTable(set))
}

// IndexRune returns the offset of the first occurrence of r in haystack,
// or -1. utf8.RuneError matches both an encoded U+FFFD and the first
// invalid span, as in bytes.IndexRune. Runes that have no UTF-8 encoding
// match nothing.
func IndexRune(haystack []byte, r rune) int {
	switch {
	case 0 <= r && r < utf8.RuneSelf:
		return simd.Memchr(haystack, byte(r))
	case r == utf8.RuneError:
		for s := range runes.Spans(haystack) {
			if s.Rune == utf8.RuneError {
				return s.Start
			}
		}
		return -1
	case !utf8.ValidRune(r):
		return -1
	}
	var buf [utf8.UTFMax]byte
	return Index(haystack, utf8.AppendRune(buf[:0], r))
}

// LastIndexRune returns the offset of the last occurrence of r in
// haystack, or -1. It follows the same matching rules as IndexRune.
func LastIndexRune(haystack []byte, r rune) int {
	switch {
	case 0 <= r && r < utf8.RuneSelf:
		return simd.Memrchr(haystack, byte(r))
	case r == utf8.RuneError:
		for s := range runes.SpansBackward(haystack) {
			if s.Rune == utf8.RuneError {
				return s.Start
			}
		}
		return -1
	case !utf8.ValidRune(r):
		return -1
	}
	var buf [utf8.UTFMax]byte
	return LastIndex(haystack, utf8.AppendRune(buf[:0], r))
}
