package bstr

import "fmt"

// Utf8Error describes the first invalid UTF-8 sequence found by ToStr.
type Utf8Error struct {
	// ValidUpTo is the length of the longest valid UTF-8 prefix.
	ValidUpTo int

	// ErrorLen is the length of the invalid maximal subpart starting at
	// ValidUpTo. It is 0 when the input ends in the middle of an otherwise
	// valid sequence, in which case more input could still make it valid.
	ErrorLen int
}

// Error implements the error interface
func (e *Utf8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("bstr: incomplete UTF-8 byte sequence from index %d", e.ValidUpTo)
	}
	return fmt.Sprintf("bstr: invalid UTF-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

// Incomplete reports whether the input ended inside a sequence.
func (e *Utf8Error) Incomplete() bool {
	return e.ErrorLen == 0
}
