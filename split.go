package bstr

import (
	"iter"
	"unicode"

	"github.com/coregx/bstr/runes"
	"github.com/coregx/bstr/search"
	"github.com/coregx/bstr/simd"
)

// Split returns the pieces of b between non-overlapping occurrences of
// sep, left to right. It follows bytes.Split: an empty b yields one empty
// piece, and an empty sep splits b into its codepoint spans (an invalid
// span is kept as its raw bytes).
//
// The pieces alias b with their capacity clipped.
func (b BStr) Split(sep []byte) iter.Seq[BStr] {
	return b.SplitN(sep, -1)
}

// SplitN is like Split but yields at most n pieces, the last one holding
// the unsplit remainder. n == 0 yields nothing and n < 0 means no limit.
func (b BStr) SplitN(sep []byte, n int) iter.Seq[BStr] {
	return func(yield func(BStr) bool) {
		if n == 0 {
			return
		}
		if len(sep) == 0 {
			explode(b, n, yield)
			return
		}
		f := search.NewFinder(sep)
		rest := b
		for n != 1 {
			i := f.Find(rest)
			if i < 0 {
				break
			}
			if !yield(rest[:i:i]) {
				return
			}
			rest = rest[i+len(sep):]
			if n > 0 {
				n--
			}
		}
		yield(rest[:len(rest):len(rest)])
	}
}

// SplitReverse is Split right to left. The pieces are yielded last first
// and are separated by a greedy right-to-left tiling of sep.
func (b BStr) SplitReverse(sep []byte) iter.Seq[BStr] {
	return b.SplitNReverse(sep, -1)
}

// SplitNReverse is SplitN right to left: at most n pieces, the last one
// yielded being the unsplit leftmost remainder.
func (b BStr) SplitNReverse(sep []byte, n int) iter.Seq[BStr] {
	return func(yield func(BStr) bool) {
		if n == 0 {
			return
		}
		if len(sep) == 0 {
			explodeBackward(b, n, yield)
			return
		}
		f := search.NewFinderReverse(sep)
		rest := b
		for n != 1 {
			i := f.RFind(rest)
			if i < 0 {
				break
			}
			if !yield(rest[i+len(sep) : len(rest) : len(rest)]) {
				return
			}
			rest = rest[:i]
			if n > 0 {
				n--
			}
		}
		yield(rest[:len(rest):len(rest)])
	}
}

func explode(b BStr, n int, yield func(BStr) bool) {
	for s := range runes.Spans(b) {
		if n == 1 {
			yield(b[s.Start:len(b):len(b)])
			return
		}
		if !yield(b[s.Start:s.End:s.End]) {
			return
		}
		if n > 0 {
			n--
		}
	}
}

func explodeBackward(b BStr, n int, yield func(BStr) bool) {
	for s := range runes.SpansBackward(b) {
		if n == 1 {
			yield(b[:s.End:s.End])
			return
		}
		if !yield(b[s.Start:s.End:s.End]) {
			return
		}
		if n > 0 {
			n--
		}
	}
}

// LinesWithTerminator returns the lines of b including their "\n" or
// "\r\n" terminator. The last line may lack one. An empty b has no lines.
func (b BStr) LinesWithTerminator() iter.Seq[BStr] {
	return func(yield func(BStr) bool) {
		rest := b
		for len(rest) > 0 {
			i := simd.Memchr(rest, '\n')
			if i < 0 {
				yield(rest[:len(rest):len(rest)])
				return
			}
			if !yield(rest[: i+1 : i+1]) {
				return
			}
			rest = rest[i+1:]
		}
	}
}

// Lines returns the lines of b without terminators. A line ends at "\n";
// a "\r" directly before it is dropped too. A trailing terminator does
// not start an extra empty line.
func (b BStr) Lines() iter.Seq[BStr] {
	return func(yield func(BStr) bool) {
		for line := range b.LinesWithTerminator() {
			if !yield(trimTerminator(line)) {
				return
			}
		}
	}
}

func trimTerminator(line BStr) BStr {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}

// Fields returns the non-empty runs of b separated by Unicode white space.
// Invalid spans are never white space.
func (b BStr) Fields() iter.Seq[BStr] {
	return b.FieldsFunc(unicode.IsSpace)
}

// FieldsFunc returns the non-empty runs of b separated by codepoints for
// which sep returns true. Invalid spans are passed to sep as
// utf8.RuneError.
func (b BStr) FieldsFunc(sep func(rune) bool) iter.Seq[BStr] {
	return func(yield func(BStr) bool) {
		start := -1
		for s := range runes.Spans(b) {
			switch {
			case !sep(s.Rune):
				if start < 0 {
					start = s.Start
				}
			case start >= 0:
				if !yield(b[start:s.Start:s.Start]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(b[start:len(b):len(b)])
		}
	}
}
