package interval

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"

	"github.com/tspooner/intervals/bound"
)

// Relation is the qualitative relation between two Intervals A and B, following Allen's interval algebra. Exactly
// one Relation holds for every pair of non-empty Intervals.
type Relation uint8

const (
	// Disjoint is reported if at least one of the Intervals is empty.
	Disjoint Relation = iota

	// Before means that A ends before B starts, leaving a gap.
	Before

	// Meets means that A ends exactly where B starts, without overlap and without a gap.
	Meets

	// Overlaps means that A starts before B and ends within B.
	Overlaps

	// Starts means that A and B start together and A ends first.
	Starts

	// ContainedBy means that A starts after and ends before B.
	ContainedBy

	// Finishes means that A starts after B and both end together.
	Finishes

	// Equal means that A and B start and end together.
	Equal

	// FinishedBy means that A starts before B and both end together.
	FinishedBy

	// Contains means that A starts before and ends after B.
	Contains

	// StartedBy means that A and B start together and B ends first.
	StartedBy

	// OverlappedBy means that B starts before A and ends within A.
	OverlappedBy

	// MetBy means that B ends exactly where A starts.
	MetBy

	// After means that A starts after B ends, leaving a gap.
	After
)

// RelationNames contains a dictionary of the names of Relations.
var RelationNames = [...]string{
	"Disjoint",
	"Before",
	"Meets",
	"Overlaps",
	"Starts",
	"ContainedBy",
	"Finishes",
	"Equal",
	"FinishedBy",
	"Contains",
	"StartedBy",
	"OverlappedBy",
	"MetBy",
	"After",
}

// Relate classifies the pair of Intervals into a Relation. The classification only uses the role comparisons of the
// bound package, so it holds for every combination of open, closed and unbounded sides.
func Relate[V constraints.Ordered](a, b Interval[V]) Relation {
	if a.IsEmpty() || b.IsEmpty() {
		return Disjoint
	}

	switch {
	case bound.Separated(a.upper, b.lower):
		return lo.Cond(bound.Adjacent(a.upper, b.lower), Meets, Before)
	case bound.Separated(b.upper, a.lower):
		return lo.Cond(bound.Adjacent(b.upper, a.lower), MetBy, After)
	}

	lowerComparison := bound.CompareLower(a.lower, b.lower)
	upperComparison := bound.CompareUpper(a.upper, b.upper)

	switch {
	case lowerComparison == 0 && upperComparison == 0:
		return Equal
	case lowerComparison == 0:
		return lo.Cond(upperComparison < 0, Starts, StartedBy)
	case upperComparison == 0:
		return lo.Cond(lowerComparison > 0, Finishes, FinishedBy)
	case lowerComparison > 0 && upperComparison < 0:
		return ContainedBy
	case lowerComparison < 0 && upperComparison > 0:
		return Contains
	case lowerComparison < 0:
		return Overlaps
	default:
		return OverlappedBy
	}
}

// Inverse returns the Relation that holds if the operands are swapped.
func (r Relation) Inverse() Relation {
	if r == Disjoint || r > After {
		return r
	}

	return After + Before - r
}

// String returns a human-readable version of the Relation.
func (r Relation) String() string {
	if int(r) >= len(RelationNames) {
		return fmt.Sprintf("Relation(%X)", uint8(r))
	}

	return RelationNames[r]
}
