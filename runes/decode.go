// Package runes decodes conventionally UTF-8 byte slices into codepoints.
//
// Invalid UTF-8 is data, not an error. Whenever the bytes at the current
// position cannot form a valid encoding, the decoder reports a single
// replacement (utf8.RuneError) covering the maximal subpart of an
// ill-formed sequence, as defined by the Unicode Standard (chapter 3,
// "U+FFFD Substitution of Maximal Subparts"):
//
//	"\xFF"         → RuneError, 1 byte
//	"\xF0\x9F\x87" → RuneError, 3 bytes (a prefix of a 4-byte sequence)
//	"\xE2\x98z"    → RuneError, 2 bytes, then 'z'
//
// Repeatedly decoding and advancing by the reported size always tiles the
// whole input: sizes sum to len(b), with no gaps and no overlap. Decoding
// backwards from the end yields exactly the same spans in reverse order.
package runes

import "unicode/utf8"

// isCont reports whether b matches the continuation byte pattern 10xxxxxx.
func isCont(b byte) bool {
	return b&0xC0 == 0x80
}

// lead classifies a non-ASCII lead byte. It returns the total encoded
// length and the range accepted for the second byte, or size 0 when b can
// never start a sequence (continuation bytes, C0, C1, F5..FF).
//
// The narrowed second-byte ranges reject overlong forms (E0, F0),
// surrogates (ED) and codepoints above U+10FFFF (F4).
func lead(b byte) (size int, lo, hi byte) {
	switch {
	case b >= 0xC2 && b <= 0xDF:
		return 2, 0x80, 0xBF
	case b == 0xE0:
		return 3, 0xA0, 0xBF
	case b == 0xED:
		return 3, 0x80, 0x9F
	case b >= 0xE1 && b <= 0xEF:
		return 3, 0x80, 0xBF
	case b == 0xF0:
		return 4, 0x90, 0xBF
	case b >= 0xF1 && b <= 0xF3:
		return 4, 0x80, 0xBF
	case b == 0xF4:
		return 4, 0x80, 0x8F
	}
	return 0, 0, 0
}

// Decode decodes the first codepoint of b.
//
// For valid UTF-8 it returns the codepoint, its encoded length (1..4) and
// ok == true. Otherwise r is utf8.RuneError, ok is false and size is the
// length of the maximal subpart (1..3). An empty b returns size 0.
//
// Decode never reads past the first invalid byte: a byte that does not
// continue the sequence is left for the next call.
func Decode(b []byte) (r rune, size int, ok bool) {
	n := len(b)
	if n == 0 {
		return utf8.RuneError, 0, false
	}
	b0 := b[0]
	if b0 < utf8.RuneSelf {
		return rune(b0), 1, true
	}

	want, lo, hi := lead(b0)
	if want == 0 {
		return utf8.RuneError, 1, false
	}
	if n < 2 || b[1] < lo || b[1] > hi {
		return utf8.RuneError, 1, false
	}
	if want == 2 {
		return rune(b0&0x1F)<<6 | rune(b[1]&0x3F), 2, true
	}
	if n < 3 || !isCont(b[2]) {
		return utf8.RuneError, 2, false
	}
	if want == 3 {
		return rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3, true
	}
	if n < 4 || !isCont(b[3]) {
		return utf8.RuneError, 3, false
	}
	return rune(b0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4, true
}

// DecodeLast decodes the last codepoint of b, with the same results as
// taking the final span of a forward decode of the whole of b.
//
// Any byte that is not a continuation byte always starts a new span, so the
// last span begins at the nearest such byte within the final four bytes.
// If decoding from there stops short of the end, the remaining bytes are
// stray continuation bytes and the last one is a 1-byte invalid span.
func DecodeLast(b []byte) (r rune, size int, ok bool) {
	n := len(b)
	if n == 0 {
		return utf8.RuneError, 0, false
	}
	if b[n-1] < utf8.RuneSelf {
		return rune(b[n-1]), 1, true
	}

	start := n - 1
	limit := max(0, n-utf8.UTFMax)
	for start > limit && isCont(b[start]) {
		start--
	}
	r, size, ok = Decode(b[start:])
	if start+size != n {
		return utf8.RuneError, 1, false
	}
	return r, size, ok
}

// DecodeRune is Decode without the validity flag: invalid spans come back
// as utf8.RuneError. Use Decode to tell a replacement apart from a literal
// U+FFFD in the input.
func DecodeRune(b []byte) (rune, int) {
	r, size, _ := Decode(b)
	return r, size
}

// DecodeLastRune is DecodeLast without the validity flag.
func DecodeLastRune(b []byte) (rune, int) {
	r, size, _ := DecodeLast(b)
	return r, size
}

// NeedsMore reports whether b, which decodes as invalid, is a strict prefix
// of some valid encoding, so that appending bytes could still make it valid.
// Streaming decoders use it to hold back a split sequence at a chunk edge.
func NeedsMore(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	_, size, ok := Decode(b)
	if ok || size != len(b) {
		return false
	}
	want, _, _ := lead(b[0])
	return size < want
}
