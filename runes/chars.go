package runes

import (
	"iter"
	"unicode/utf8"

	"github.com/coregx/bstr/simd"
)

// Span is one decode step: the byte range [Start, End) of the original
// input and the codepoint it decoded to. For invalid UTF-8, Rune is
// utf8.RuneError and input[Start:End] recovers the raw bytes.
type Span struct {
	Start int
	End   int
	Rune  rune
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Chars iterates over the codepoints of a byte slice from both ends.
// Invalid UTF-8 is substituted with utf8.RuneError per maximal subpart.
//
// A Chars holds no resources; dropping it early is free. Iterating again
// requires a new Chars.
type Chars struct {
	b []byte
}

// NewChars returns a Chars over b.
func NewChars(b []byte) *Chars {
	return &Chars{b: b}
}

// Next returns the next codepoint from the front.
func (c *Chars) Next() (rune, bool) {
	if len(c.b) == 0 {
		return 0, false
	}
	r, size := DecodeRune(c.b)
	c.b = c.b[size:]
	return r, true
}

// NextBack returns the next codepoint from the back.
func (c *Chars) NextBack() (rune, bool) {
	if len(c.b) == 0 {
		return 0, false
	}
	r, size := DecodeLastRune(c.b)
	c.b = c.b[:len(c.b)-size]
	return r, true
}

// Bytes returns the bytes not yet consumed from either end.
func (c *Chars) Bytes() []byte {
	return c.b
}

// CharIndices is like Chars but yields spans carrying byte offsets into
// the original slice.
type CharIndices struct {
	b     []byte
	front int
	back  int
}

// NewCharIndices returns a CharIndices over b.
func NewCharIndices(b []byte) *CharIndices {
	return &CharIndices{b: b, back: len(b)}
}

// Next returns the next span from the front.
func (c *CharIndices) Next() (Span, bool) {
	if c.front >= c.back {
		return Span{}, false
	}
	r, size := DecodeRune(c.b[c.front:c.back])
	s := Span{Start: c.front, End: c.front + size, Rune: r}
	c.front += size
	return s, true
}

// NextBack returns the next span from the back.
func (c *CharIndices) NextBack() (Span, bool) {
	if c.front >= c.back {
		return Span{}, false
	}
	r, size := DecodeLastRune(c.b[c.front:c.back])
	s := Span{Start: c.back - size, End: c.back, Rune: r}
	c.back -= size
	return s, true
}

// Offset returns the byte offset of the next span from the front.
func (c *CharIndices) Offset() int {
	return c.front
}

// All returns a sequence of the codepoints of b, front to back.
// Each range over the sequence starts again from the beginning of b.
func All(b []byte) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		rest := b
		for len(rest) > 0 {
			if c := rest[0]; c < utf8.RuneSelf {
				if !yield(rune(c)) {
					return
				}
				rest = rest[1:]
				continue
			}
			r, size := DecodeRune(rest)
			if !yield(r) {
				return
			}
			rest = rest[size:]
		}
	}
}

// Backward returns a sequence of the codepoints of b, back to front.
func Backward(b []byte) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		rest := b
		for len(rest) > 0 {
			r, size := DecodeLastRune(rest)
			if !yield(r) {
				return
			}
			rest = rest[:len(rest)-size]
		}
	}
}

// Spans returns a sequence of the spans of b, in increasing Start order.
func Spans(b []byte) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for pos := 0; pos < len(b); {
			r, size := DecodeRune(b[pos:])
			if !yield(Span{Start: pos, End: pos + size, Rune: r}) {
				return
			}
			pos += size
		}
	}
}

// SpansBackward returns a sequence of the spans of b, in decreasing Start
// order.
func SpansBackward(b []byte) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for end := len(b); end > 0; {
			r, size := DecodeLastRune(b[:end])
			if !yield(Span{Start: end - size, End: end, Rune: r}) {
				return
			}
			end -= size
		}
	}
}

// Count returns the number of decode steps needed to consume b, which is
// the number of codepoints for valid UTF-8.
func Count(b []byte) int {
	count := 0
	for len(b) > 0 {
		i := simd.FirstNonASCII(b)
		if i < 0 {
			return count + len(b)
		}
		count += i
		_, size, _ := Decode(b[i:])
		count++
		b = b[i+size:]
	}
	return count
}

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	for len(b) > 0 {
		i := simd.FirstNonASCII(b)
		if i < 0 {
			return true
		}
		_, size, ok := Decode(b[i:])
		if !ok {
			return false
		}
		b = b[i+size:]
	}
	return true
}

// ValidPrefix returns the length of the longest prefix of b that is valid
// UTF-8. It equals len(b) when Valid(b) is true.
func ValidPrefix(b []byte) int {
	pos := 0
	for pos < len(b) {
		i := simd.FirstNonASCII(b[pos:])
		if i < 0 {
			return len(b)
		}
		pos += i
		_, size, ok := Decode(b[pos:])
		if !ok {
			return pos
		}
		pos += size
	}
	return pos
}
