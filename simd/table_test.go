package simd

import "testing"

func TestMemchrInTable(t *testing.T) {
	vowels := NewByteTable([]byte("aeiouAEIOU"))

	tests := []struct {
		name     string
		haystack string
		want     int
		wantLast int
	}{
		{"empty", "", -1, -1},
		{"first is vowel", "apple", 0, 4},
		{"vowel in middle", "xyz_a_xyz", 4, 4},
		{"no vowels", "rhythm", -1, -1},
		{"upper vowel", "XYZ_A", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MemchrInTable([]byte(tt.haystack), vowels); got != tt.want {
				t.Errorf("MemchrInTable(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
			if got := MemrchrInTable([]byte(tt.haystack), vowels); got != tt.wantLast {
				t.Errorf("MemrchrInTable(%q) = %d, want %d", tt.haystack, got, tt.wantLast)
			}
		})
	}
}

func TestMemchrNotInTable(t *testing.T) {
	vowels := NewByteTable([]byte("aeiouAEIOU"))

	tests := []struct {
		name     string
		haystack string
		want     int
		wantLast int
	}{
		{"empty", "", -1, -1},
		{"first is consonant", "hello", 0, 3},
		{"all vowels", "aeiou", -1, -1},
		{"vowels then consonant", "aeioub", 5, 5},
		{"consonant then vowels", "baeiou", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MemchrNotInTable([]byte(tt.haystack), vowels); got != tt.want {
				t.Errorf("MemchrNotInTable(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
			if got := MemrchrNotInTable([]byte(tt.haystack), vowels); got != tt.wantLast {
				t.Errorf("MemrchrNotInTable(%q) = %d, want %d", tt.haystack, got, tt.wantLast)
			}
		})
	}
}

func TestNilTable(t *testing.T) {
	if got := MemchrInTable([]byte("abc"), nil); got != -1 {
		t.Errorf("MemchrInTable(nil) = %d, want -1", got)
	}
	if got := MemchrNotInTable([]byte("abc"), nil); got != 0 {
		t.Errorf("MemchrNotInTable(nil) = %d, want 0", got)
	}
	if got := MemrchrNotInTable([]byte("abc"), nil); got != 2 {
		t.Errorf("MemrchrNotInTable(nil) = %d, want 2", got)
	}
}
