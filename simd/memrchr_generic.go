package simd

import "encoding/binary"

// memrchrGeneric is the reverse counterpart of memchrGeneric. Chunks are
// read from the end of the haystack towards its start, and the highest
// flagged byte of each chunk is taken, which requires exact detection.
func memrchrGeneric(haystack []byte, needle byte) int {
	idx := len(haystack)
	if idx >= 8 {
		mask := splat(needle)
		for idx >= 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx-8:])
			if found := zeroExact(chunk ^ mask); found != 0 {
				return idx - 8 + lastByte(found)
			}
			idx -= 8
		}
	}

	for idx > 0 {
		idx--
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// memrchr2Generic searches backward for either of two needles.
func memrchr2Generic(haystack []byte, needle1, needle2 byte) int {
	idx := len(haystack)
	if idx >= 8 {
		mask1, mask2 := splat(needle1), splat(needle2)
		for idx >= 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx-8:])
			found := zeroExact(chunk^mask1) | zeroExact(chunk^mask2)
			if found != 0 {
				return idx - 8 + lastByte(found)
			}
			idx -= 8
		}
	}

	for idx > 0 {
		idx--
		if c := haystack[idx]; c == needle1 || c == needle2 {
			return idx
		}
	}
	return -1
}

// memrchr3Generic searches backward for any of three needles.
func memrchr3Generic(haystack []byte, needle1, needle2, needle3 byte) int {
	idx := len(haystack)
	if idx >= 8 {
		mask1, mask2, mask3 := splat(needle1), splat(needle2), splat(needle3)
		for idx >= 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx-8:])
			found := zeroExact(chunk^mask1) | zeroExact(chunk^mask2) | zeroExact(chunk^mask3)
			if found != 0 {
				return idx - 8 + lastByte(found)
			}
			idx -= 8
		}
	}

	for idx > 0 {
		idx--
		if c := haystack[idx]; c == needle1 || c == needle2 || c == needle3 {
			return idx
		}
	}
	return -1
}
