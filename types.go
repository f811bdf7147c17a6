package readinput

import (
	"context"
	"io"
)

// LineSource supplies raw input one line at a time.
// Returned lines must not include the line terminator. Bytes are not required to be valid UTF-8.
type LineSource interface {
	// ReadLine blocks until a line is available. Any error is treated as fatal.
	ReadLine() ([]byte, error)
}

// LineSourceFunc is a function adapter for LineSource interface.
type LineSourceFunc func() ([]byte, error)

func (f LineSourceFunc) ReadLine() ([]byte, error) {
	return f()
}

// Output receives prompts and error messages.
// Write and Flush failures are logged and otherwise ignored.
type Output interface {
	io.Writer

	// Flush makes everything written so far visible before the next blocking read.
	Flush() error
}

// MessageSource provides message table overrides from backends (files, env vars).
// Keys are lowercase dot-separated paths (e.g., "int.overflow").
type MessageSource interface {
	// Load returns overrides as a flat map. Missing optional sources should return empty map.
	Load(ctx context.Context) (map[string]string, error)

	// Name returns a human-readable identifier (e.g., "file:messages.yaml").
	Name() string
}

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}
