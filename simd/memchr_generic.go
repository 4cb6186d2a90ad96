package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
	lo7 = uint64(0x7F7F7F7F7F7F7F7F)
)

// splat broadcasts b to all 8 bytes of a uint64.
// Example: b=0x42 → 0x4242424242424242
func splat(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroLow sets the high bit of every zero byte in v using the Hacker's
// Delight formula (v - 0x01..01) & ^v & 0x80..80.
//
// Borrow propagation can also flag a byte sitting above a real zero byte,
// so only the LOWEST flagged byte is guaranteed to be a true zero. This is
// exactly what forward scans need and it is one instruction cheaper than
// zeroExact.
func zeroLow(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// zeroExact sets the high bit of exactly the zero bytes of v, with no
// false positives. Reverse scans and paired scans need this.
//
// Per byte x: ((x & 0x7F) + 0x7F) | x has the high bit set iff x != 0, and
// the addition never carries into the next byte.
func zeroExact(v uint64) uint64 {
	return ^(((v & lo7) + lo7) | v | lo7)
}

// firstByte converts a non-zero detection mask into the index of the lowest
// flagged byte.
func firstByte(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// lastByte converts a non-zero detection mask into the index of the highest
// flagged byte.
func lastByte(mask uint64) int {
	return (63 - bits.LeadingZeros64(mask)) / 8
}

// memchrGeneric implements pure Go byte search using SWAR.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64
//  2. XOR each 8-byte little-endian chunk with it (matching bytes become 0x00)
//  3. Detect zero bytes and take the lowest one
//
// Inputs shorter than 8 bytes are scanned byte-by-byte.
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := splat(needle)
	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		if found := zeroLow(chunk ^ mask); found != 0 {
			return idx + firstByte(found)
		}
		idx += 8
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// memchr2Generic searches for either of two needles, 8 bytes at a time.
// The OR of two zeroLow masks still has an exact lowest bit because each
// mask's lowest bit is exact.
func memchr2Generic(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 {
				return i
			}
		}
		return -1
	}

	mask1, mask2 := splat(needle1), splat(needle2)
	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		found := zeroLow(chunk^mask1) | zeroLow(chunk^mask2)
		if found != 0 {
			return idx + firstByte(found)
		}
		idx += 8
	}

	for ; idx < n; idx++ {
		if c := haystack[idx]; c == needle1 || c == needle2 {
			return idx
		}
	}
	return -1
}

// memchr3Generic searches for any of three needles, 8 bytes at a time.
func memchr3Generic(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
				return i
			}
		}
		return -1
	}

	mask1, mask2, mask3 := splat(needle1), splat(needle2), splat(needle3)
	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		found := zeroLow(chunk^mask1) | zeroLow(chunk^mask2) | zeroLow(chunk^mask3)
		if found != 0 {
			return idx + firstByte(found)
		}
		idx += 8
	}

	for ; idx < n; idx++ {
		if c := haystack[idx]; c == needle1 || c == needle2 || c == needle3 {
			return idx
		}
	}
	return -1
}

// memchrPairGeneric finds the first i with haystack[i] == byte1 and
// haystack[i+offset] == byte2. Caller guarantees 0 < offset < len(haystack).
//
// Two chunks are loaded per step, one at idx and one at idx+offset, and
// their exact detection masks are ANDed. zeroLow cannot be used here: a
// false positive in one mask may coincide with a true hit in the other.
func memchrPairGeneric(haystack []byte, byte1, byte2 byte, offset int) int {
	n := len(haystack)
	mask1, mask2 := splat(byte1), splat(byte2)

	idx := 0
	for idx+8+offset <= n {
		chunk1 := binary.LittleEndian.Uint64(haystack[idx:])
		chunk2 := binary.LittleEndian.Uint64(haystack[idx+offset:])
		found := zeroExact(chunk1^mask1) & zeroExact(chunk2^mask2)
		if found != 0 {
			return idx + firstByte(found)
		}
		idx += 8
	}

	for ; idx+offset < n; idx++ {
		if haystack[idx] == byte1 && haystack[idx+offset] == byte2 {
			return idx
		}
	}
	return -1
}
