// Package bstr provides byte strings that are conventionally UTF-8.
//
// A BStr is a plain []byte that is treated as text without requiring it
// to be valid UTF-8. Valid sequences decode to their codepoints. Invalid
// ones decode to U+FFFD using the Unicode "maximal subparts" rule, and
// every position reported by this package is a byte offset into the
// original buffer, so the raw bytes behind a replacement are never lost.
//
// Basic usage:
//
//	s := bstr.B("foo bar\xFFfoo")
//	fmt.Println(s.Find([]byte("bar")))     // 4
//	for r := range s.Runes() {             // f o o ' ' b a r U+FFFD f o o
//	    fmt.Printf("%q ", r)
//	}
//	for field := range s.Fields() {
//	    fmt.Println(field)
//	}
//
// Repeated searches for the same pattern should build a search.Finder once
// and reuse it. Finders are immutable and safe for concurrent use.
//
// Transformations (Replace, ToLower, ToUpper, ToValidUTF8) return a Cow
// that borrows the receiver when nothing changes and owns a fresh BString
// otherwise. The no-op path never allocates.
//
// The read-only API is defined once on BStr. BString, the owned growable
// buffer, reaches it through AsBStr.
//
// Nothing in this package fails on malformed input: invalid UTF-8 is data.
package bstr

import (
	"bytes"
	"iter"

	"github.com/coregx/bstr/runes"
	"github.com/coregx/bstr/search"
	"github.com/coregx/bstr/simd"
)

// BStr is a borrowed view of a conventionally UTF-8 byte string.
//
// A BStr carries no validity guarantee and is never mutated by this
// package. Like any slice it may alias other views.
type BStr []byte

// B converts a string or byte slice to a BStr. A []byte is not copied.
//
// Example:
//
//	b := bstr.B("hello")
//	b2 := bstr.B([]byte{0xFF, 'a'})
func B[T ~string | ~[]byte](s T) BStr {
	return BStr(s)
}

// Find returns the byte offset of the first occurrence of pattern, or -1.
// The empty pattern matches at 0.
func (b BStr) Find(pattern []byte) int {
	return search.Index(b, pattern)
}

// RFind returns the byte offset of the last occurrence of pattern, or -1.
// The empty pattern matches at len(b).
func (b BStr) RFind(pattern []byte) int {
	return search.LastIndex(b, pattern)
}

// FindIter returns the starts of the non-overlapping occurrences of
// pattern, left to right.
func (b BStr) FindIter(pattern []byte) iter.Seq[int] {
	return search.NewFinder(pattern).All(b)
}

// FindReverseIter returns the starts of the non-overlapping occurrences of
// pattern, right to left. See search.FindReverseIter for how this differs
// from reversing FindIter.
func (b BStr) FindReverseIter(pattern []byte) iter.Seq[int] {
	return search.NewFinderReverse(pattern).All(b)
}

// FindByte returns the offset of the first c, or -1.
func (b BStr) FindByte(c byte) int {
	return search.IndexByte(b, c)
}

// RFindByte returns the offset of the last c, or -1.
func (b BStr) RFindByte(c byte) int {
	return search.LastIndexByte(b, c)
}

// FindChar returns the offset of the first occurrence of r, or -1.
// utf8.RuneError also matches invalid spans.
func (b BStr) FindChar(r rune) int {
	return search.IndexRune(b, r)
}

// RFindChar returns the offset of the last occurrence of r, or -1.
func (b BStr) RFindChar(r rune) int {
	return search.LastIndexRune(b, r)
}

// FindByteset returns the offset of the first byte in set, or -1.
func (b BStr) FindByteset(set []byte) int {
	return search.IndexByteSet(b, set)
}

// RFindByteset returns the offset of the last byte in set, or -1.
func (b BStr) RFindByteset(set []byte) int {
	return search.LastIndexByteSet(b, set)
}

// FindNotByteset returns the offset of the first byte not in set, or -1.
func (b BStr) FindNotByteset(set []byte) int {
	return search.IndexNotByteSet(b, set)
}

// RFindNotByteset returns the offset of the last byte not in set, or -1.
func (b BStr) RFindNotByteset(set []byte) int {
	return search.LastIndexNotByteSet(b, set)
}

// FindAny returns the leftmost match of any pattern of set.
func (b BStr) FindAny(set *search.SetFinder) (search.Match, bool) {
	return set.Find(b)
}

// Contains reports whether pattern occurs in b.
func (b BStr) Contains(pattern []byte) bool {
	return search.Contains(b, pattern)
}

// HasPrefix reports whether b begins with prefix.
func (b BStr) HasPrefix(prefix []byte) bool {
	return bytes.HasPrefix(b, prefix)
}

// HasSuffix reports whether b ends with suffix.
func (b BStr) HasSuffix(suffix []byte) bool {
	return bytes.HasSuffix(b, suffix)
}

// Chars returns a double-ended iterator over the codepoints of b.
func (b BStr) Chars() *runes.Chars {
	return runes.NewChars(b)
}

// CharIndices returns a double-ended iterator over the codepoints of b
// together with their byte ranges.
func (b BStr) CharIndices() *runes.CharIndices {
	return runes.NewCharIndices(b)
}

// Runes returns the codepoints of b, front to back. Invalid spans yield
// utf8.RuneError.
func (b BStr) Runes() iter.Seq[rune] {
	return runes.All(b)
}

// RunesBackward returns the codepoints of b, back to front.
func (b BStr) RunesBackward() iter.Seq[rune] {
	return runes.Backward(b)
}

// CharSpans returns the codepoints of b with their byte ranges. Slicing b
// with a span recovers the original bytes behind a replacement.
func (b BStr) CharSpans() iter.Seq[runes.Span] {
	return runes.Spans(b)
}

// CharSpansBackward is CharSpans back to front.
func (b BStr) CharSpansBackward() iter.Seq[runes.Span] {
	return runes.SpansBackward(b)
}

// CharCount returns the number of codepoints in b, counting each invalid
// span as one.
func (b BStr) CharCount() int {
	return runes.Count(b)
}

// IsASCII reports whether every byte of b is below 0x80.
func (b BStr) IsASCII() bool {
	return simd.IsASCII(b)
}

// IsUTF8 reports whether b is entirely valid UTF-8.
func (b BStr) IsUTF8() bool {
	return runes.Valid(b)
}

// ToStr converts b to a string if it is valid UTF-8. Otherwise it returns
// a *Utf8Error locating the first invalid sequence.
func (b BStr) ToStr() (string, error) {
	n := runes.ValidPrefix(b)
	if n == len(b) {
		return string(b), nil
	}
	rest := b[n:]
	if runes.NeedsMore(rest) {
		return "", &Utf8Error{ValidUpTo: n}
	}
	_, size, _ := runes.Decode(rest)
	return "", &Utf8Error{ValidUpTo: n, ErrorLen: size}
}

// String converts b to a string, replacing each invalid span with U+FFFD.
func (b BStr) String() string {
	if runes.Valid(b) {
		return string(b)
	}
	return string(runes.AppendLossy(make([]byte, 0, len(b)+8), b))
}
