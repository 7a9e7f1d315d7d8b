package bound

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// CompareLower compares two Bounds in their role as lower bounds. It returns -1 if a starts before b, 0 if both
// start at the same place and 1 if a starts after b.
//
// An unbounded lower Bound starts before every other lower Bound. At a shared value a closed Bound starts before an
// open one, since it already includes the value.
func CompareLower[V constraints.Ordered](a, b Bound[V]) int {
	switch {
	case a.kind == KindUnbounded && b.kind == KindUnbounded:
		return 0
	case a.kind == KindUnbounded:
		return -1
	case b.kind == KindUnbounded:
		return 1
	}

	if valueComparison := lo.Comparator(a.value, b.value); valueComparison != 0 {
		return valueComparison
	}

	return compareKinds(a.kind, b.kind)
}

// CompareUpper compares two Bounds in their role as upper bounds. It returns -1 if a ends before b, 0 if both end at
// the same place and 1 if a ends after b.
//
// An unbounded upper Bound ends after every other upper Bound. At a shared value an open Bound ends before a closed
// one, since it already excludes the value.
func CompareUpper[V constraints.Ordered](a, b Bound[V]) int {
	switch {
	case a.kind == KindUnbounded && b.kind == KindUnbounded:
		return 0
	case a.kind == KindUnbounded:
		return 1
	case b.kind == KindUnbounded:
		return -1
	}

	if valueComparison := lo.Comparator(a.value, b.value); valueComparison != 0 {
		return valueComparison
	}

	return -compareKinds(a.kind, b.kind)
}

// compareKinds orders two finite Kinds at a shared value from the point of view of a lower bound.
func compareKinds(a, b Kind) int {
	switch {
	case a == b:
		return 0
	case a == KindClosed:
		return -1
	default:
		return 1
	}
}

// TighterLower returns the more restrictive of two lower Bounds (the one that starts later). Ties resolve towards
// the open Bound. This is the lower bound of an intersection.
func TighterLower[V constraints.Ordered](a, b Bound[V]) Bound[V] {
	return lo.Cond(CompareLower(a, b) >= 0, a, b)
}

// TighterUpper returns the more restrictive of two upper Bounds (the one that ends earlier). Ties resolve towards
// the open Bound. This is the upper bound of an intersection.
func TighterUpper[V constraints.Ordered](a, b Bound[V]) Bound[V] {
	return lo.Cond(CompareUpper(a, b) <= 0, a, b)
}

// LooserLower returns the less restrictive of two lower Bounds (the one that starts earlier). Ties resolve towards
// the closed Bound. This is the lower bound of a hull.
func LooserLower[V constraints.Ordered](a, b Bound[V]) Bound[V] {
	return lo.Cond(CompareLower(a, b) <= 0, a, b)
}

// LooserUpper returns the less restrictive of two upper Bounds (the one that ends later). Ties resolve towards the
// closed Bound. This is the upper bound of a hull.
func LooserUpper[V constraints.Ordered](a, b Bound[V]) Bound[V] {
	return lo.Cond(CompareUpper(a, b) >= 0, a, b)
}

// Adjacent returns true if an interval ending at upper and an interval starting at lower touch without overlapping
// and without leaving a gap: both Bounds share a value and exactly one of them is closed.
func Adjacent[V constraints.Ordered](upper, lower Bound[V]) bool {
	if upper.kind == KindUnbounded || lower.kind == KindUnbounded {
		return false
	}

	return upper.value == lower.value && upper.kind != lower.kind
}

// Separated returns true if no value satisfies both the upper and the lower Bound, i.e. an interval ending at upper
// lies entirely before an interval starting at lower. Applied to the two Bounds of a single interval it tells
// whether that interval is empty.
func Separated[V constraints.Ordered](upper, lower Bound[V]) bool {
	if upper.kind == KindUnbounded || lower.kind == KindUnbounded {
		return false
	}

	switch lo.Comparator(upper.value, lower.value) {
	case -1:
		return true
	case 1:
		return false
	default:
		return upper.kind != KindClosed || lower.kind != KindClosed
	}
}

// Gap returns true if at least one value lies strictly between an interval ending at upper and an interval starting
// at lower. Two intervals without a Gap between them merge into a single interval.
func Gap[V constraints.Ordered](upper, lower Bound[V]) bool {
	return Separated(upper, lower) && !Adjacent(upper, lower)
}

// AdmitsLower returns true if value satisfies b in its role as a lower bound.
func AdmitsLower[V constraints.Ordered](b Bound[V], value V) bool {
	switch b.kind {
	case KindClosed:
		return value >= b.value
	case KindOpen:
		return value > b.value
	default:
		return true
	}
}

// AdmitsUpper returns true if value satisfies b in its role as an upper bound.
func AdmitsUpper[V constraints.Ordered](b Bound[V], value V) bool {
	switch b.kind {
	case KindClosed:
		return value <= b.value
	case KindOpen:
		return value < b.value
	default:
		return true
	}
}
