package bstr

import (
	"bytes"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/bstr/runes"
	"github.com/coregx/bstr/search"
	"github.com/coregx/bstr/simd"
)

// Cow is the result of a transformation that may or may not have changed
// its input: either the original view, borrowed, or a freshly allocated
// BString, owned.
type Cow struct {
	borrowed BStr
	owned    *BString
}

// Borrowed returns a Cow holding the view b.
func Borrowed(b BStr) Cow {
	return Cow{borrowed: b}
}

// Owned returns a Cow holding s.
func Owned(s *BString) Cow {
	return Cow{owned: s}
}

// IsOwned reports whether the transformation allocated.
func (c Cow) IsOwned() bool {
	return c.owned != nil
}

// BStr returns a view of the result.
func (c Cow) BStr() BStr {
	if c.owned != nil {
		return c.owned.AsBStr()
	}
	return c.borrowed
}

// IntoOwned returns the owned result, copying a borrowed one.
func (c Cow) IntoOwned() *BString {
	if c.owned != nil {
		return c.owned
	}
	return NewBString(c.borrowed)
}

// String converts the result to a string, as BStr.String does.
func (c Cow) String() string {
	return c.BStr().String()
}

// Replace replaces every non-overlapping occurrence of old with new. It
// follows bytes.Replace: an empty old matches at the start and after each
// codepoint span.
func (b BStr) Replace(old, new []byte) Cow {
	return b.ReplaceN(old, new, -1)
}

// ReplaceN is like Replace but replaces at most n occurrences. n < 0
// means no limit.
func (b BStr) ReplaceN(old, new []byte, n int) Cow {
	if n == 0 || bytes.Equal(old, new) {
		return Borrowed(b)
	}
	if len(old) == 0 {
		return b.replaceMatches(spanBoundaries(b), new, n)
	}
	return b.replaceMatches(search.NewFinder(old).Matches(b), new, n)
}

// ReplaceAny replaces every non-overlapping match of set with new.
func (b BStr) ReplaceAny(set *search.SetFinder, new []byte) Cow {
	return b.replaceMatches(set.All(b), new, -1)
}

// replaceMatches splices new over at most n of matches, which must be
// ordered and non-overlapping.
func (b BStr) replaceMatches(matches iter.Seq[search.Match], new []byte, n int) Cow {
	var out *BString
	last := 0
	for m := range matches {
		if n == 0 {
			break
		}
		if out == nil {
			out = &BString{buf: make([]byte, 0, len(b)+len(new))}
		}
		out.buf = append(out.buf, b[last:m.Start]...)
		out.buf = append(out.buf, new...)
		last = m.End
		if n > 0 {
			n--
		}
	}
	if out == nil {
		return Borrowed(b)
	}
	out.buf = append(out.buf, b[last:]...)
	return Owned(out)
}

// spanBoundaries yields an empty match at the start of every codepoint
// span and at len(b).
func spanBoundaries(b BStr) iter.Seq[search.Match] {
	return func(yield func(search.Match) bool) {
		for s := range runes.Spans(b) {
			if !yield(search.Match{Start: s.Start, End: s.Start}) {
				return
			}
		}
		yield(search.Match{Start: len(b), End: len(b)})
	}
}

// ToLower maps every valid codepoint to lower case. Invalid spans are
// copied unchanged.
func (b BStr) ToLower() Cow {
	if simd.IsASCII(b) && simd.MemchrInTable(b, &asciiUpper) < 0 {
		return Borrowed(b)
	}
	return b.mapRunes(unicode.ToLower)
}

// ToUpper maps every valid codepoint to upper case. Invalid spans are
// copied unchanged.
func (b BStr) ToUpper() Cow {
	if simd.IsASCII(b) && simd.MemchrInTable(b, &asciiLower) < 0 {
		return Borrowed(b)
	}
	return b.mapRunes(unicode.ToUpper)
}

var (
	asciiUpper = byteRange('A', 'Z')
	asciiLower = byteRange('a', 'z')
)

func byteRange(lo, hi byte) simd.ByteTable {
	var t simd.ByteTable
	for c := lo; c <= hi; c++ {
		t[c] = true
	}
	return t
}

// mapRunes applies mapping to each valid codepoint. It borrows when no
// codepoint changes.
func (b BStr) mapRunes(mapping func(rune) rune) Cow {
	var out *BString
	for s := range runes.Spans(b) {
		mapped := s.Rune
		if s.Rune != utf8.RuneError {
			mapped = mapping(s.Rune)
		}
		if out == nil {
			if mapped == s.Rune {
				continue
			}
			out = &BString{buf: make([]byte, 0, len(b)+utf8.UTFMax)}
			out.buf = append(out.buf, b[:s.Start]...)
		}
		if mapped == s.Rune {
			out.buf = append(out.buf, b[s.Start:s.End]...)
		} else {
			out.buf = utf8.AppendRune(out.buf, mapped)
		}
	}
	if out == nil {
		return Borrowed(b)
	}
	return Owned(out)
}

// ToValidUTF8 replaces each invalid span with U+FFFD. Valid input is
// borrowed.
func (b BStr) ToValidUTF8() Cow {
	n := runes.ValidPrefix(b)
	if n == len(b) {
		return Borrowed(b)
	}
	buf := make([]byte, 0, len(b)+8)
	buf = append(buf, b[:n]...)
	return Owned(&BString{buf: runes.AppendLossy(buf, b[n:])})
}
