// Package limit constrains a value to a range.
//
// A range is one of four bound shapes, mirroring the usual range notations:
//
//	AtLeast(start)       start..       [start, +inf)
//	AtMost(end)          ..=end        (-inf, end]
//	Between(start, end)  start..=end   [start, end]
//	Unbounded()          ..            (-inf, +inf)
//
// Limit works on totally ordered types (integers and strings). LimitFloat works
// on floating point types, where a NaN value passes through unchanged and a NaN
// bound panics.
//
// Both panic when the start of a Between bound is greater than its end.
package limit
