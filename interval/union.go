package interval

import (
	"github.com/iotaledger/hive.go/constraints"
)

// UnionResult is the result of Interval.Union. It either holds a single Interval (the operands overlapped or touched)
// or two disjoint Intervals ordered by their lower Bound. Callers have to check which shape they received.
type UnionResult[V constraints.Ordered] struct {
	first    Interval[V]
	second   Interval[V]
	disjoint bool
}

// IsSingle returns true if the union is a single contiguous Interval.
func (u UnionResult[V]) IsSingle() bool {
	return !u.disjoint
}

// Single returns the union as one Interval and true, or the zero Interval and false if the operands are disjoint.
func (u UnionResult[V]) Single() (Interval[V], bool) {
	if u.disjoint {
		return Interval[V]{}, false
	}

	return u.first, true
}

// Pair returns the two disjoint Intervals ordered by their lower Bound and true, or false if the union is a single
// Interval.
func (u UnionResult[V]) Pair() (first, second Interval[V], ok bool) {
	if !u.disjoint {
		return Interval[V]{}, Interval[V]{}, false
	}

	return u.first, u.second, true
}

// Partition returns the union as a normalized Partition. It works for both shapes.
func (u UnionResult[V]) Partition() *Partition[V] {
	if u.disjoint {
		return NewPartition(u.first, u.second)
	}

	return NewPartition(u.first)
}

// String returns the union in bracket notation.
func (u UnionResult[V]) String() string {
	if u.disjoint {
		return u.first.String() + " ∪ " + u.second.String()
	}

	return u.first.String()
}
