package simd

import (
	"encoding/binary"
)

// IsASCII reports whether every byte of data is below 0x80.
// An empty slice is trivially ASCII.
//
// Example:
//
//	if simd.IsASCII(data) {
//	    // every byte decodes to itself
//	}
func IsASCII(data []byte) bool {
	return FirstNonASCII(data) == -1
}

// FirstNonASCII returns the index of the first byte >= 0x80, or -1 if all
// bytes are ASCII.
//
// Algorithm: AND each 8-byte chunk with 0x8080808080808080; a non-zero
// result means one of its bytes has the high bit set, and the lowest set
// bit locates it exactly (no borrow is involved).
func FirstNonASCII(data []byte) int {
	n := len(data)
	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if high := chunk & hi8; high != 0 {
			return idx + firstByte(high)
		}
		idx += 8
	}
	for ; idx < n; idx++ {
		if data[idx] >= 0x80 {
			return idx
		}
	}
	return -1
}

// LastNonASCII returns the index of the last byte >= 0x80, or -1 if all
// bytes are ASCII.
func LastNonASCII(data []byte) int {
	idx := len(data)
	for idx >= 8 {
		chunk := binary.LittleEndian.Uint64(data[idx-8:])
		if high := chunk & hi8; high != 0 {
			return idx - 8 + lastByte(high)
		}
		idx -= 8
	}
	for idx > 0 {
		idx--
		if data[idx] >= 0x80 {
			return idx
		}
	}
	return -1
}
