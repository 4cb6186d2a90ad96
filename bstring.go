package bstr

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/coregx/bstr/runes"
)

// BString is an owned, growable, conventionally UTF-8 byte string.
//
// BString has no search or iteration methods of its own. Use AsBStr to get
// the read-only view. Views taken with AsBStr alias the buffer, so the
// BString must not be mutated while a view is in use. One writer at a time;
// any number of concurrent readers when nobody writes.
//
// The zero value is an empty string ready to use.
type BString struct {
	buf []byte
}

// NewBString returns a BString holding a copy of s.
func NewBString[T ~string | ~[]byte](s T) *BString {
	return &BString{buf: append([]byte(nil), s...)}
}

// AsBStr returns a view of the current contents.
func (s *BString) AsBStr() BStr {
	return BStr(s.buf)
}

// Bytes returns the underlying buffer. It aliases the BString.
func (s *BString) Bytes() []byte {
	return s.buf
}

// Len returns the length in bytes.
func (s *BString) Len() int {
	return len(s.buf)
}

// Append appends p.
func (s *BString) Append(p []byte) {
	s.buf = append(s.buf, p...)
}

// AppendString appends str.
func (s *BString) AppendString(str string) {
	s.buf = append(s.buf, str...)
}

// AppendByte appends a single byte.
func (s *BString) AppendByte(c byte) {
	s.buf = append(s.buf, c)
}

// AppendRune appends the UTF-8 encoding of r. Runes without an encoding
// are appended as U+FFFD.
func (s *BString) AppendRune(r rune) {
	s.buf = utf8.AppendRune(s.buf, r)
}

// Write appends p. It never fails, so a BString can sit at the end of an
// io pipeline.
func (s *BString) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Reset empties the string, keeping its capacity.
func (s *BString) Reset() {
	s.buf = s.buf[:0]
}

// String converts the contents to a string, replacing invalid spans with
// U+FFFD.
func (s *BString) String() string {
	return s.AsBStr().String()
}

// NewValidUTF8Reader returns a reader yielding the bytes of r with each
// invalid span replaced by U+FFFD. Sequences split across reads are
// handled.
func NewValidUTF8Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, runes.NewLossyTransformer())
}

// NewValidUTF8Writer returns a writer that replaces each invalid span with
// U+FFFD before writing to w. Close flushes a trailing incomplete sequence.
func NewValidUTF8Writer(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, runes.NewLossyTransformer())
}

// Concat returns a new BString holding parts back to back.
func Concat(parts ...BStr) *BString {
	return Join(nil, parts...)
}

// Join returns a new BString holding parts separated by sep.
func Join(sep []byte, parts ...BStr) *BString {
	if len(parts) == 0 {
		return &BString{}
	}
	n := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = append(buf, p...)
	}
	return &BString{buf: buf}
}
