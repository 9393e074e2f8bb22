package limit

import "golang.org/x/exp/constraints"

// Ordered is the set of types with a total order.
// Floats are excluded because NaN is not comparable; use LimitFloat instead.
type Ordered interface {
	constraints.Integer | ~string
}

// Limit constrains v to the bound b.
//
// Panics with ErrInvertedBound if b is Between(start, end) with start > end,
// even when v is already in range.
func Limit[T Ordered](v T, b Bound[T]) T {
	switch b.shape {
	case atLeast:
		return max(v, b.start)
	case atMost:
		return min(v, b.end)
	case between:
		if b.start > b.end {
			panic(invertedBound(b))
		}

		return max(b.start, min(v, b.end))
	default:
		return v
	}
}
