package search

import (
	"errors"
	"fmt"
)

// Construction errors. Searching itself never fails.
var (
	// ErrEmptyPatternSet is returned by NewSetFinder when no patterns are given.
	ErrEmptyPatternSet = errors.New("bstr: empty pattern set")

	// ErrEmptyPattern is wrapped in a BuildError when a SetFinder pattern
	// has zero length. Use a Finder to match the empty pattern.
	ErrEmptyPattern = errors.New("bstr: empty pattern")
)

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "bstr: invalid config: " + e.Field + ": " + e.Message
}

// BuildError reports a SetFinder construction failure.
type BuildError struct {
	// Index is the offending pattern, or -1 when the failure is not tied
	// to a single pattern.
	Index int
	Err   error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("bstr: building pattern set: pattern %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("bstr: building pattern set: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}
