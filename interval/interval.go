package interval

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/tspooner/intervals/bound"
)

// Interval defines the boundaries around a contiguous span of values (i.e. "integers from 1 to 100 inclusive").
//
// It is not possible to iterate over the contained values. Each side may be bounded or unbounded. If bounded, there
// is an associated value and the side is either open (does not include the value) or closed (includes the value).
//
// With three possibilities on each side, this yields nine basic types of intervals, enumerated below:
//
//	Notation         Definition          Factory method
//	(a .. b)         {x | a < x < b}     Open
//	[a .. b]         {x | a <= x <= b}   Closed
//	(a .. b]         {x | a < x <= b}    OpenClosed
//	[a .. b)         {x | a <= x < b}    ClosedOpen
//	(a .. +INF)      {x | x > a}         GreaterThan
//	[a .. +INF)      {x | x >= a}        AtLeast
//	(-INF .. b)      {x | x < b}         LessThan
//	(-INF .. b]      {x | x <= b}        AtMost
//	(-INF .. +INF)   {x}                 All
//
// Intervals whose lower value exceeds the upper value, or whose values are equal while one side is open, are empty.
// Empty intervals are valid values and every operation accepts them. Intervals are immutable; every operation
// returns a new Interval. The zero value is the Interval that contains everything.
type Interval[V constraints.Ordered] struct {
	lower bound.Bound[V]
	upper bound.Bound[V]
}

// New creates an Interval from two Bounds. It does not validate the order of the Bounds, so the result may be empty.
func New[V constraints.Ordered](lower, upper bound.Bound[V]) Interval[V] {
	return Interval[V]{lower: lower, upper: upper}
}

// NewChecked creates an Interval from two Bounds and returns ErrDecreasingBounds if the result would be empty.
func NewChecked[V constraints.Ordered](lower, upper bound.Bound[V]) (Interval[V], error) {
	if bound.Separated(upper, lower) {
		return Interval[V]{}, ierrors.Wrapf(ErrDecreasingBounds, "lower %s, upper %s", lower.FormatLower(), upper.FormatUpper())
	}

	return New(lower, upper), nil
}

// All returns an Interval that contains all possible values.
func All[V constraints.Ordered]() Interval[V] {
	return Interval[V]{}
}

// Empty returns the canonical empty Interval (v, v) of the value type.
func Empty[V constraints.Ordered]() Interval[V] {
	var zero V

	return Open(zero, zero)
}

// Closed returns an Interval that contains all values greater than or equal to lower and less than or equal to
// upper.
func Closed[V constraints.Ordered](lower, upper V) Interval[V] {
	return New(bound.Closed(lower), bound.Closed(upper))
}

// Open returns an Interval that contains all values strictly greater than lower and strictly less than upper.
func Open[V constraints.Ordered](lower, upper V) Interval[V] {
	return New(bound.Open(lower), bound.Open(upper))
}

// ClosedOpen returns an Interval that contains all values greater than or equal to lower and strictly less than
// upper.
func ClosedOpen[V constraints.Ordered](lower, upper V) Interval[V] {
	return New(bound.Closed(lower), bound.Open(upper))
}

// OpenClosed returns an Interval that contains all values strictly greater than lower and less than or equal to
// upper.
func OpenClosed[V constraints.Ordered](lower, upper V) Interval[V] {
	return New(bound.Open(lower), bound.Closed(upper))
}

// AtLeast returns an Interval that contains all values greater than or equal to lower.
func AtLeast[V constraints.Ordered](lower V) Interval[V] {
	return New(bound.Closed(lower), bound.Unbounded[V]())
}

// AtMost returns an Interval that contains all values less than or equal to upper.
func AtMost[V constraints.Ordered](upper V) Interval[V] {
	return New(bound.Unbounded[V](), bound.Closed(upper))
}

// GreaterThan returns an Interval that contains all values strictly greater than lower.
func GreaterThan[V constraints.Ordered](lower V) Interval[V] {
	return New(bound.Open(lower), bound.Unbounded[V]())
}

// LessThan returns an Interval that contains all values strictly less than upper.
func LessThan[V constraints.Ordered](upper V) Interval[V] {
	return New(bound.Unbounded[V](), bound.Open(upper))
}

// Degenerate returns the Interval [value, value] that contains exactly one value.
func Degenerate[V constraints.Ordered](value V) Interval[V] {
	return Closed(value, value)
}

// Lower returns the lower Bound of the Interval.
func (i Interval[V]) Lower() bound.Bound[V] {
	return i.lower
}

// Upper returns the upper Bound of the Interval.
func (i Interval[V]) Upper() bound.Bound[V] {
	return i.upper
}

// IsEmpty returns true if no value lies within the Interval.
func (i Interval[V]) IsEmpty() bool {
	return bound.Separated(i.upper, i.lower)
}

// IsDegenerate returns true if the Interval contains exactly one value.
func (i Interval[V]) IsDegenerate() bool {
	return i.lower.IsClosed() && i.upper.IsClosed() && i.lower.Value() == i.upper.Value()
}

// IsBounded returns true if neither side of the Interval is unbounded.
func (i Interval[V]) IsBounded() bool {
	return !i.lower.IsUnbounded() && !i.upper.IsUnbounded()
}

// Equal returns true if both Intervals contain the same values. All empty Intervals are equal.
func (i Interval[V]) Equal(other Interval[V]) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return i.IsEmpty() && other.IsEmpty()
	}

	return i == other
}

// String returns the Interval in bracket notation, e.g. "[1, 5)" or "(-inf, 3]". Empty Intervals render as "∅".
func (i Interval[V]) String() string {
	if i.IsEmpty() {
		return "∅"
	}

	return i.lower.FormatLower() + ", " + i.upper.FormatUpper()
}
