package limit

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvertedBound is the panic cause when start is greater than end.
	ErrInvertedBound = fmt.Errorf("limit: start bound is greater than end bound")
	// ErrNaNBound is the panic cause when a float bound is NaN.
	ErrNaNBound = fmt.Errorf("limit: bound is NaN")
)

type shape uint8

const (
	unbounded shape = iota
	atLeast
	atMost
	between
)

// Bound is a range a value can be limited to.
// It can only be created with AtLeast, AtMost, Between or Unbounded.
// The zero value is unbounded.
type Bound[T constraints.Ordered] struct {
	shape      shape
	start, end T
}

// AtLeast returns the bound [start, +inf).
func AtLeast[T constraints.Ordered](start T) Bound[T] {
	return Bound[T]{shape: atLeast, start: start}
}

// AtMost returns the bound (-inf, end].
func AtMost[T constraints.Ordered](end T) Bound[T] {
	return Bound[T]{shape: atMost, end: end}
}

// Between returns the bound [start, end].
// The bound is only checked when it is applied.
func Between[T constraints.Ordered](start, end T) Bound[T] {
	return Bound[T]{shape: between, start: start, end: end}
}

// Unbounded returns the bound (-inf, +inf), which leaves every value unchanged.
func Unbounded[T constraints.Ordered]() Bound[T] {
	return Bound[T]{}
}

// Start returns the lower endpoint, if any.
func (b Bound[T]) Start() (T, bool) {
	if b.shape == atLeast || b.shape == between {
		return b.start, true
	}

	var zero T
	return zero, false
}

// End returns the upper endpoint, if any.
func (b Bound[T]) End() (T, bool) {
	if b.shape == atMost || b.shape == between {
		return b.end, true
	}

	var zero T
	return zero, false
}

// Contains reports whether v lies within the bound.
// NaN is only contained by an unbounded range.
func (b Bound[T]) Contains(v T) bool {
	switch b.shape {
	case atLeast:
		return v >= b.start
	case atMost:
		return v <= b.end
	case between:
		return v >= b.start && v <= b.end
	default:
		return true
	}
}

// String formats the bound in range notation, e.g. "3..", "..=7", "3..=7" or "..".
func (b Bound[T]) String() string {
	switch b.shape {
	case atLeast:
		return fmt.Sprintf("%v..", b.start)
	case atMost:
		return fmt.Sprintf("..=%v", b.end)
	case between:
		return fmt.Sprintf("%v..=%v", b.start, b.end)
	default:
		return ".."
	}
}

func invertedBound[T constraints.Ordered](b Bound[T]) error {
	return fmt.Errorf("%w: %s", ErrInvertedBound, b)
}
