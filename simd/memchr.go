// Package simd provides fast byte scanning primitives for conventionally
// UTF-8 byte strings.
//
// Forward searches dispatch on CPU features: when the CPU has wide vector
// units (AVX2 on x86-64, ASIMD on arm64) and the input is large enough,
// the runtime's vectorised bytes.IndexByte kernel is used. Everything else
// runs on portable SWAR (SIMD Within A Register) code that processes 8
// bytes per step using uint64 arithmetic.
//
// Reverse searches (Memrchr and friends) are always SWAR: the runtime has
// no vectorised kernel for them.
//
// All functions accept any byte slice, including nil, and never panic.
package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// CPU feature detection flags set at package initialization.
var (
	// hasVectorIndexByte reports whether bytes.IndexByte runs on a wide
	// vector kernel on this CPU.
	hasVectorIndexByte = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
)

// vectorThreshold is the haystack length below which the vector kernel's
// setup cost outweighs the benefit.
const vectorThreshold = 32

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if hasVectorIndexByte && len(haystack) >= vectorThreshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2 or
// needle3 in haystack, or -1 if none are present.
//
// Example searching for whitespace:
//
//	pos := simd.Memchr3([]byte("hello\tworld\nfoo"), ' ', '\t', '\n')
//	// pos == 5
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}

// MemchrPair finds the first position i where haystack[i] == byte1 and
// haystack[i+offset] == byte2. It returns -1 if there is no such position
// or if offset is negative.
//
// Requiring two bytes at a fixed distance is far more selective than a
// single byte search, which makes this the candidate finder for substring
// prefilters.
//
// Example:
//
//	pos := simd.MemchrPair([]byte("hello example world"), 'e', 'x', 1)
//	// pos == 6
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	if offset < 0 || len(haystack) <= offset {
		return -1
	}
	if offset == 0 {
		if byte1 != byte2 {
			return -1
		}
		return Memchr(haystack, byte1)
	}
	return memchrPairGeneric(haystack, byte1, byte2, offset)
}

// Memrchr returns the index of the last instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memrchr([]byte("hello world"), 'o')
//	// pos == 7
func Memrchr(haystack []byte, needle byte) int {
	return memrchrGeneric(haystack, needle)
}

// Memrchr2 returns the index of the last instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memrchr2(haystack []byte, needle1, needle2 byte) int {
	return memrchr2Generic(haystack, needle1, needle2)
}

// Memrchr3 returns the index of the last instance of needle1, needle2 or
// needle3 in haystack, or -1 if none are present.
func Memrchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memrchr3Generic(haystack, needle1, needle2, needle3)
}
