package runes

import (
	"slices"
	"testing"
	"unicode/utf8"
)

const rep = utf8.RuneError

func TestChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"empty", "", nil},
		{"ascii", "abc", []rune{'a', 'b', 'c'}},
		{"two_invalid_bytes", "a\xFF\xFFz", []rune{'a', rep, rep, 'z'}},
		{"maximal_subpart", "a\xF0\x9F\x87z", []rune{'a', rep, 'z'}},
		{"mixed", "h\xC3\xA9llo \xE2\x98\x83", []rune{'h', 'é', 'l', 'l', 'o', ' ', '☃'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []rune
			c := NewChars([]byte(tt.input))
			for r, ok := c.Next(); ok; r, ok = c.Next() {
				got = append(got, r)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Chars.Next over %q = %q, want %q", tt.input, got, tt.want)
			}

			var back []rune
			c = NewChars([]byte(tt.input))
			for r, ok := c.NextBack(); ok; r, ok = c.NextBack() {
				back = append(back, r)
			}
			slices.Reverse(back)
			if !slices.Equal(back, tt.want) {
				t.Errorf("Chars.NextBack over %q = %q, want %q", tt.input, back, tt.want)
			}

			if got := slices.Collect(All([]byte(tt.input))); !slices.Equal(got, tt.want) {
				t.Errorf("All(%q) = %q, want %q", tt.input, got, tt.want)
			}
			wantBack := slices.Clone(tt.want)
			slices.Reverse(wantBack)
			if got := slices.Collect(Backward([]byte(tt.input))); !slices.Equal(got, wantBack) {
				t.Errorf("Backward(%q) = %q, want %q", tt.input, got, wantBack)
			}
			if got := Count([]byte(tt.input)); got != len(tt.want) {
				t.Errorf("Count(%q) = %d, want %d", tt.input, got, len(tt.want))
			}
		})
	}
}

func TestCharsMeetInTheMiddle(t *testing.T) {
	c := NewChars([]byte("ab\xE2\x98\x83cd"))
	if r, _ := c.Next(); r != 'a' {
		t.Fatalf("Next = %q, want 'a'", r)
	}
	if r, _ := c.NextBack(); r != 'd' {
		t.Fatalf("NextBack = %q, want 'd'", r)
	}
	if got := string(c.Bytes()); got != "b☃c" {
		t.Fatalf("Bytes = %q, want %q", got, "b☃c")
	}
}

func TestCharIndices(t *testing.T) {
	input := []byte("a\xE2\x98z")
	want := []Span{{0, 1, 'a'}, {1, 3, rep}, {3, 4, 'z'}}

	var got []Span
	ci := NewCharIndices(input)
	for s, ok := ci.Next(); ok; s, ok = ci.Next() {
		got = append(got, s)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("CharIndices = %v, want %v", got, want)
	}
	if got := slices.Collect(Spans(input)); !slices.Equal(got, want) {
		t.Fatalf("Spans = %v, want %v", got, want)
	}

	raw := make([]string, 0, len(got))
	for _, s := range got {
		raw = append(raw, string(input[s.Start:s.End]))
	}
	if !slices.Equal(raw, []string{"a", "\xE2\x98", "z"}) {
		t.Fatalf("raw bytes = %q", raw)
	}

	wantBack := slices.Clone(want)
	slices.Reverse(wantBack)
	if got := slices.Collect(SpansBackward(input)); !slices.Equal(got, wantBack) {
		t.Fatalf("SpansBackward = %v, want %v", got, wantBack)
	}

	ci = NewCharIndices(input)
	var back []Span
	for s, ok := ci.NextBack(); ok; s, ok = ci.NextBack() {
		back = append(back, s)
	}
	if !slices.Equal(back, wantBack) {
		t.Fatalf("CharIndices.NextBack = %v, want %v", back, wantBack)
	}
}

func TestCharIndicesMixedEnds(t *testing.T) {
	ci := NewCharIndices([]byte("x\xF0\x9F\x98\x80y"))
	first, _ := ci.Next()
	last, _ := ci.NextBack()
	mid, _ := ci.Next()
	if first != (Span{0, 1, 'x'}) || last != (Span{5, 6, 'y'}) || mid != (Span{1, 5, '😀'}) {
		t.Fatalf("got %v %v %v", first, last, mid)
	}
	if _, ok := ci.NextBack(); ok {
		t.Fatal("iterator should be exhausted")
	}
	if ci.Offset() != 5 {
		t.Fatalf("Offset = %d, want 5", ci.Offset())
	}
}

func TestSeqEarlyStopAndRestart(t *testing.T) {
	seq := All([]byte("abc"))
	for r := range seq {
		if r != 'a' {
			t.Fatalf("first rune = %q", r)
		}
		break
	}
	if got := slices.Collect(seq); string(got) != "abc" {
		t.Fatalf("second range = %q, want %q", string(got), "abc")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input  string
		valid  bool
		prefix int
	}{
		{"", true, 0},
		{"hello", true, 5},
		{"h\xC3\xA9llo", true, 6},
		{"abc\xFF", false, 3},
		{"\xE2\x98", false, 0},
		{"long ascii run before the bad byte \xC0", false, 35},
	}
	for _, tt := range tests {
		if got := Valid([]byte(tt.input)); got != tt.valid {
			t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.valid)
		}
		if got := ValidPrefix([]byte(tt.input)); got != tt.prefix {
			t.Errorf("ValidPrefix(%q) = %d, want %d", tt.input, got, tt.prefix)
		}
		if got, std := Valid([]byte(tt.input)), utf8.Valid([]byte(tt.input)); got != std {
			t.Errorf("Valid(%q) = %v, stdlib %v", tt.input, got, std)
		}
	}
}
