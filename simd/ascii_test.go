package simd

import (
	"bytes"
	"fmt"
	"testing"
)

// TestIsASCII_Basic tests basic ASCII detection functionality
func TestIsASCII_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{"empty", nil, true},
		{"empty_slice", []byte{}, true},
		{"single_ascii_zero", []byte{0x00}, true},
		{"single_ascii_del", []byte{0x7F}, true},
		{"single_non_ascii_0x80", []byte{0x80}, false},
		{"single_non_ascii_0xFF", []byte{0xFF}, false},
		{"short_hello", []byte("hello"), true},
		{"utf8_two_byte", []byte("caf\xc3\xa9"), false},
		{"long_ascii", bytes.Repeat([]byte("abcdefgh"), 40), true},
		{"long_non_ascii_at_end", append(bytes.Repeat([]byte("abcdefgh"), 40), 0xE2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCII(tt.input); got != tt.expected {
				t.Errorf("IsASCII(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestFirstLastNonASCII checks both directions at every position of a
// buffer long enough to exercise the chunked loop and the tail.
func TestFirstLastNonASCII(t *testing.T) {
	for size := 1; size <= 40; size++ {
		for pos := 0; pos < size; pos++ {
			t.Run(fmt.Sprintf("size_%d_pos_%d", size, pos), func(t *testing.T) {
				data := bytes.Repeat([]byte{'a'}, size)
				data[pos] = 0xC3
				if got := FirstNonASCII(data); got != pos {
					t.Errorf("FirstNonASCII = %d, want %d", got, pos)
				}
				if got := LastNonASCII(data); got != pos {
					t.Errorf("LastNonASCII = %d, want %d", got, pos)
				}
			})
		}
	}

	if got := FirstNonASCII([]byte("plain")); got != -1 {
		t.Errorf("FirstNonASCII(plain) = %d, want -1", got)
	}
	if got := LastNonASCII(nil); got != -1 {
		t.Errorf("LastNonASCII(nil) = %d, want -1", got)
	}
}

func BenchmarkIsASCII_1KB(b *testing.B) {
	data := bytes.Repeat([]byte("abcdefgh"), 128)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = IsASCII(data)
	}
}
