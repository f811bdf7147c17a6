package readinput

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Constraint reports whether a parsed value is acceptable.
// Ranges, collections and plain functions all satisfy it, so the builder accepts them uniformly.
type Constraint[T any] interface {
	Contains(v T) bool
}

// Predicate is a function adapter for Constraint interface.
type Predicate[T any] func(v T) bool

func (f Predicate[T]) Contains(v T) bool {
	return f(v)
}

// Values is an explicit finite collection of allowed values.
type Values[T comparable] []T

// OneOf returns a constraint accepting only the listed values.
func OneOf[T comparable](values ...T) Values[T] {
	return Values[T](slices.Clone(values))
}

func (vs Values[T]) Contains(v T) bool {
	return slices.Contains(vs, v)
}

func (vs Values[T]) String() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Set is a fixed collection of allowed values with constant-time lookup.
type Set[T comparable] map[T]struct{}

// NewSet builds a Set from values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) String() string {
	return fmt.Sprintf("set of %d values", len(s))
}

// BoundKind describes one endpoint of a Range.
type BoundKind int

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one endpoint of a Range.
type Bound[T cmp.Ordered] struct {
	Kind  BoundKind
	Value T
}

// Range is an interval over an ordered type. Each endpoint is independently
// inclusive, exclusive or absent. The zero Range contains every value.
type Range[T cmp.Ordered] struct {
	Lower Bound[T]
	Upper Bound[T]
}

// Between returns [lo, hi).
func Between[T cmp.Ordered](lo, hi T) Range[T] {
	return Range[T]{Lower: Bound[T]{Included, lo}, Upper: Bound[T]{Excluded, hi}}
}

// BetweenInclusive returns [lo, hi].
func BetweenInclusive[T cmp.Ordered](lo, hi T) Range[T] {
	return Range[T]{Lower: Bound[T]{Included, lo}, Upper: Bound[T]{Included, hi}}
}

// From returns [lo, +inf).
func From[T cmp.Ordered](lo T) Range[T] {
	return Range[T]{Lower: Bound[T]{Included, lo}}
}

// After returns (lo, +inf).
func After[T cmp.Ordered](lo T) Range[T] {
	return Range[T]{Lower: Bound[T]{Excluded, lo}}
}

// Until returns (-inf, hi).
func Until[T cmp.Ordered](hi T) Range[T] {
	return Range[T]{Upper: Bound[T]{Excluded, hi}}
}

// UntilInclusive returns (-inf, hi].
func UntilInclusive[T cmp.Ordered](hi T) Range[T] {
	return Range[T]{Upper: Bound[T]{Included, hi}}
}

// Full returns the unbounded range.
func Full[T cmp.Ordered]() Range[T] {
	return Range[T]{}
}

// Contains reports whether v satisfies both endpoints.
func (r Range[T]) Contains(v T) bool {
	var lowerOK bool
	switch r.Lower.Kind {
	case Included:
		lowerOK = r.Lower.Value <= v
	case Excluded:
		lowerOK = r.Lower.Value < v
	default:
		lowerOK = true
	}

	switch r.Upper.Kind {
	case Included:
		return lowerOK && v <= r.Upper.Value
	case Excluded:
		return lowerOK && v < r.Upper.Value
	default:
		return lowerOK
	}
}

// String renders the range in interval notation, e.g. "[1, 100)" or "(-inf, 5]".
func (r Range[T]) String() string {
	var b strings.Builder
	switch r.Lower.Kind {
	case Included:
		fmt.Fprintf(&b, "[%v", r.Lower.Value)
	case Excluded:
		fmt.Fprintf(&b, "(%v", r.Lower.Value)
	default:
		b.WriteString("(-inf")
	}
	b.WriteString(", ")
	switch r.Upper.Kind {
	case Included:
		fmt.Fprintf(&b, "%v]", r.Upper.Value)
	case Excluded:
		fmt.Fprintf(&b, "%v)", r.Upper.Value)
	default:
		b.WriteString("+inf)")
	}
	return b.String()
}
