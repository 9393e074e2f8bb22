package limit

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating point types.
type Float interface {
	constraints.Float
}

// LimitFloat constrains the floating point v to the bound b.
//
// It behaves like a clamp where a missing side is an infinity: if v is NaN the
// result is NaN, and Unbounded returns v as is.
//
// Panics with ErrNaNBound if an endpoint of b is NaN, and with ErrInvertedBound
// if b is Between(start, end) with start > end.
func LimitFloat[T Float](v T, b Bound[T]) T {
	switch b.shape {
	case atLeast:
		return clampFloat(v, b.start, T(math.Inf(1)), b)
	case atMost:
		return clampFloat(v, T(math.Inf(-1)), b.end, b)
	case between:
		return clampFloat(v, b.start, b.end, b)
	default:
		return v
	}
}

func clampFloat[T Float](v, lo, hi T, b Bound[T]) T {
	if isNaN(lo) || isNaN(hi) {
		panic(fmt.Errorf("%w: %s", ErrNaNBound, b))
	}
	if lo > hi {
		panic(invertedBound(b))
	}

	// NaN fails both comparisons and falls through.
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func isNaN[T Float](v T) bool {
	return v != v
}
