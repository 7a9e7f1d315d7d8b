package interval

import (
	"github.com/iotaledger/hive.go/constraints"

	"github.com/tspooner/intervals/bound"
)

// Contains returns true if value lies within the Interval.
func (i Interval[V]) Contains(value V) bool {
	return bound.AdmitsLower(i.lower, value) && bound.AdmitsUpper(i.upper, value)
}

// ContainsInterval returns true if every value of other also lies within the Interval. An empty other is contained
// in every Interval.
func (i Interval[V]) ContainsInterval(other Interval[V]) bool {
	if other.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}

	return bound.CompareLower(i.lower, other.lower) <= 0 && bound.CompareUpper(i.upper, other.upper) >= 0
}

// Intersect returns the values that lie within both Intervals. The result may be empty.
func (i Interval[V]) Intersect(other Interval[V]) Interval[V] {
	return New(bound.TighterLower(i.lower, other.lower), bound.TighterUpper(i.upper, other.upper))
}

// Overlaps returns true if both Intervals share at least one value.
func (i Interval[V]) Overlaps(other Interval[V]) bool {
	return !i.Intersect(other).IsEmpty()
}

// Adjacent returns true if the Intervals do not overlap but touch without leaving a gap between them.
func (i Interval[V]) Adjacent(other Interval[V]) bool {
	switch Relate(i, other) {
	case Meets, MetBy:
		return true
	default:
		return false
	}
}

// Hull returns the smallest Interval that contains both Intervals, ignoring any gap between them. Empty operands do
// not contribute to the Hull.
func (i Interval[V]) Hull(other Interval[V]) Interval[V] {
	switch {
	case other.IsEmpty():
		return i
	case i.IsEmpty():
		return other
	default:
		return New(bound.LooserLower(i.lower, other.lower), bound.LooserUpper(i.upper, other.upper))
	}
}

// Union returns the values that lie within either Interval. If the Intervals overlap or are adjacent, the result
// holds their Hull. Otherwise it holds both Intervals ordered by their lower Bound.
func (i Interval[V]) Union(other Interval[V]) UnionResult[V] {
	if mergeable(i, other) {
		return UnionResult[V]{first: i.Hull(other)}
	}

	if bound.CompareLower(other.lower, i.lower) < 0 {
		i, other = other, i
	}

	return UnionResult[V]{first: i, second: other, disjoint: true}
}

// mergeable returns true if the union of both Intervals is a single Interval. This is the case if one of them is
// empty or if no value lies between them.
func mergeable[V constraints.Ordered](a, b Interval[V]) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return true
	}

	return !bound.Gap(a.upper, b.lower) && !bound.Gap(b.upper, a.lower)
}
