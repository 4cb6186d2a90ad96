package simd

import (
	"bytes"
	"fmt"
	"testing"
)

// naiveIndexAny returns the first index of any needle byte, or -1.
func naiveIndexAny(haystack []byte, needles ...byte) int {
	for i, c := range haystack {
		for _, n := range needles {
			if c == n {
				return i
			}
		}
	}
	return -1
}

// naiveLastIndexAny returns the last index of any needle byte, or -1.
func naiveLastIndexAny(haystack []byte, needles ...byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		for _, n := range needles {
			if haystack[i] == n {
				return i
			}
		}
	}
	return -1
}

// TestMemchrBasic tests basic functionality and edge cases
func TestMemchrBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"nil_haystack", nil, 'a', -1},
		{"empty_haystack", []byte{}, 'a', -1},
		{"single_match", []byte{'a'}, 'a', 0},
		{"single_no_match", []byte{'a'}, 'b', -1},
		{"first_position", []byte("hello"), 'h', 0},
		{"last_position", []byte("hello"), 'o', 4},
		{"multiple_returns_first", []byte("hello world"), 'o', 4},
		{"null_byte", []byte{1, 2, 0, 3}, 0, 2},
		{"high_byte_0xff", []byte{1, 2, 255, 4}, 255, 2},
		{"longer_found", []byte("the quick brown fox jumps over the lazy dog"), 'q', 4},
		{"longer_last_char", []byte("the quick brown fox jumps over the lazy dog"), 'g', 42},
		{"utf8_continuation", []byte("h\xc3\xa9llo w\xc3\xb6rld"), 0xB6, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if std := bytes.IndexByte(tt.haystack, tt.needle); got != std {
				t.Errorf("Memchr != stdlib: got %d, stdlib %d", got, std)
			}
		})
	}
}

// TestMemrchrBasic tests the reverse scan against bytes.LastIndexByte
func TestMemrchrBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"nil_haystack", nil, 'a', -1},
		{"single_match", []byte{'a'}, 'a', 0},
		{"single_no_match", []byte{'a'}, 'b', -1},
		{"multiple_returns_last", []byte("hello world"), 'o', 7},
		{"first_only", []byte("xaaaaaaaaaaaaaaaaa"), 'x', 0},
		{"zero_then_one", []byte{0, 1, 1, 1, 1, 1, 1, 1, 1}, 0, 0},
		{"not_found", []byte("hello world"), 'z', -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memrchr(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("Memrchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if std := bytes.LastIndexByte(tt.haystack, tt.needle); got != std {
				t.Errorf("Memrchr != stdlib: got %d, stdlib %d", got, std)
			}
		})
	}
}

// TestMemchrSizes places the needle at every interesting boundary
func TestMemchrSizes(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 255, 256, 1025}

	for _, size := range sizes {
		for _, pos := range []int{0, size / 2, size - 1} {
			t.Run(fmt.Sprintf("size_%d_pos_%d", size, pos), func(t *testing.T) {
				haystack := bytes.Repeat([]byte{'a'}, size)
				haystack[pos] = 'X'

				if got := Memchr(haystack, 'X'); got != pos {
					t.Errorf("Memchr = %d, want %d", got, pos)
				}
				if got := Memrchr(haystack, 'X'); got != pos {
					t.Errorf("Memrchr = %d, want %d", got, pos)
				}
				if got := Memchr2(haystack, 'Y', 'X'); got != pos {
					t.Errorf("Memchr2 = %d, want %d", got, pos)
				}
				if got := Memrchr3(haystack, 'Y', 'Z', 'X'); got != pos {
					t.Errorf("Memrchr3 = %d, want %d", got, pos)
				}
			})
		}
	}
}

// TestMemchrMultiNeedle cross-checks the 2 and 3 needle variants in both
// directions against a naive scan.
func TestMemchrMultiNeedle(t *testing.T) {
	haystacks := [][]byte{
		nil,
		[]byte("abc"),
		[]byte("name,age;city|zip"),
		[]byte("no delimiters here at all, well one"),
		bytes.Repeat([]byte("0123456789"), 13),
		append(bytes.Repeat([]byte{0}, 17), 1, 0, 1, 1, 1, 1, 1, 1, 1, 1),
	}
	needles := [][3]byte{
		{',', ';', '|'},
		{'0', '9', 'x'},
		{0, 1, 2},
		{'z', 'y', 'w'},
	}

	for i, h := range haystacks {
		for _, n := range needles {
			t.Run(fmt.Sprintf("haystack_%d_%q", i, n[:]), func(t *testing.T) {
				if got, want := Memchr2(h, n[0], n[1]), naiveIndexAny(h, n[0], n[1]); got != want {
					t.Errorf("Memchr2 = %d, want %d", got, want)
				}
				if got, want := Memchr3(h, n[0], n[1], n[2]), naiveIndexAny(h, n[:]...); got != want {
					t.Errorf("Memchr3 = %d, want %d", got, want)
				}
				if got, want := Memrchr2(h, n[0], n[1]), naiveLastIndexAny(h, n[0], n[1]); got != want {
					t.Errorf("Memrchr2 = %d, want %d", got, want)
				}
				if got, want := Memrchr3(h, n[0], n[1], n[2]), naiveLastIndexAny(h, n[:]...); got != want {
					t.Errorf("Memrchr3 = %d, want %d", got, want)
				}
			})
		}
	}
}

// TestMemchrPair covers the paired scan, including the case where a zero
// byte in one lane would produce a false positive with a borrow-based mask.
func TestMemchrPair(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		b1, b2   byte
		offset   int
		want     int
	}{
		{"adjacent", []byte("hello example world"), 'e', 'x', 1, 6},
		{"distance", []byte("contact@test.com for info"), '@', 'c', 6, 7},
		{"offset_zero_same", []byte("abc"), 'b', 'b', 0, 1},
		{"offset_zero_diff", []byte("abc"), 'b', 'c', 0, -1},
		{"negative_offset", []byte("abc"), 'a', 'b', -1, -1},
		{"offset_too_large", []byte("abc"), 'a', 'c', 3, -1},
		{"not_found", []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), 'a', 'b', 3, -1},
		{"found_in_tail", []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaab"), 'a', 'b', 3, 29},
		{"borrow_false_positive", []byte{'x', 'y', 'a', 'q', 'q', 'q', 'q', 'q', 'q', 'q', 'a', 'b', 'q', 'q', 'q', 'q', 'q', 'q'}, 'x', 'b', 11, 0},
		{"borrow_lane", []byte{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 1, 1, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MemchrPair(tt.haystack, tt.b1, tt.b2, tt.offset)
			if got != tt.want {
				t.Errorf("MemchrPair(%q, %q, %q, %d) = %d, want %d",
					tt.haystack, tt.b1, tt.b2, tt.offset, got, tt.want)
			}
		})
	}
}

func BenchmarkMemchr(b *testing.B) {
	for _, size := range []int{16, 256, 4096, 65536} {
		haystack := bytes.Repeat([]byte{'a'}, size)
		haystack[size-1] = 'X'
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = Memchr(haystack, 'X')
			}
		})
	}
}

func BenchmarkMemrchr(b *testing.B) {
	for _, size := range []int{16, 256, 4096, 65536} {
		haystack := bytes.Repeat([]byte{'a'}, size)
		haystack[0] = 'X'
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = Memrchr(haystack, 'X')
			}
		})
	}
}

func FuzzMemchr(f *testing.F) {
	f.Add([]byte("hello world"), byte('o'))
	f.Add([]byte{}, byte(0))
	f.Add([]byte{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}, byte(1))

	f.Fuzz(func(t *testing.T, haystack []byte, needle byte) {
		if got, want := Memchr(haystack, needle), bytes.IndexByte(haystack, needle); got != want {
			t.Errorf("Memchr = %d, stdlib = %d", got, want)
		}
		if got, want := Memrchr(haystack, needle), bytes.LastIndexByte(haystack, needle); got != want {
			t.Errorf("Memrchr = %d, stdlib = %d", got, want)
		}
	})
}
