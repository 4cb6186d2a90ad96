package bstr

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/bstr/search"
)

// Each of BStr, BString, Finder and FinderReverse must be usable from many
// goroutines at once when nobody writes, and must keep working after a
// panic was recovered while it was in use.

const conformanceWorkers = 16

// runShared calls read concurrently from many goroutines, each comparing
// the result with want.
func runShared[T comparable](t *testing.T, want T, read func() T) {
	t.Helper()
	var wg sync.WaitGroup
	for range conformanceWorkers {
		wg.Go(func() {
			for range 50 {
				if got := read(); got != want {
					assert.Equal(t, want, got)
					return
				}
			}
		})
	}
	wg.Wait()
}

// panicMidway panics from inside use and recovers in a separate goroutine.
func panicMidway(t *testing.T, use func(stop func())) {
	t.Helper()
	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		use(func() { panic("boom") })
	}()
	require.Equal(t, "boom", <-done)
}

var conformanceText = B("the quick brown fox \xFF jumps over the lazy dog, the end")

func TestConformanceBStr(t *testing.T) {
	read := func() string {
		return fmt.Sprint(
			conformanceText.Find([]byte("the")),
			conformanceText.RFind([]byte("the")),
			slices.Collect(conformanceText.FindIter([]byte("the"))),
			conformanceText.CharCount(),
			conformanceText.ToUpper().String(),
		)
	}
	want := read()
	runShared(t, want, read)

	panicMidway(t, func(stop func()) {
		for range conformanceText.Fields() {
			stop()
		}
	})
	require.Equal(t, want, read())
}

func TestConformanceBString(t *testing.T) {
	s := NewBString("shared \xE2\x98 buffer with the word the")
	read := func() string {
		v := s.AsBStr()
		return fmt.Sprint(s.Len(), v.Find([]byte("the")), v.String(), slices.Collect(v.Lines()))
	}
	want := read()
	runShared(t, want, read)

	panicMidway(t, func(stop func()) {
		for range s.AsBStr().Runes() {
			stop()
		}
	})
	require.Equal(t, want, read())

	// Exclusive writer after the readers are gone.
	s.AppendString(" again")
	require.Equal(t, 31, s.AsBStr().RFind([]byte("the")))
}

func TestConformanceFinder(t *testing.T) {
	f := search.NewFinder([]byte("the"))
	haystack := []byte(conformanceText)
	read := func() string {
		return fmt.Sprint(f.Find(haystack), slices.Collect(f.All(haystack)))
	}
	want := read()
	require.Equal(t, "0 [0 33 47]", want)
	runShared(t, want, read)

	panicMidway(t, func(stop func()) {
		it := f.Iter(haystack)
		it.Next()
		stop()
	})
	require.Equal(t, want, read())
}

func TestConformanceFinderReverse(t *testing.T) {
	f := search.NewFinderReverse([]byte("the"))
	haystack := []byte(conformanceText)
	read := func() string {
		return fmt.Sprint(f.RFind(haystack), slices.Collect(f.All(haystack)))
	}
	want := read()
	require.Equal(t, "47 [47 33 0]", want)
	runShared(t, want, read)

	panicMidway(t, func(stop func()) {
		for range f.Matches(haystack) {
			stop()
		}
	})
	require.Equal(t, want, read())
}
