package interval

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"

	"github.com/tspooner/intervals/bound"
)

// Partition is a normalized set of values described by Intervals. Its members are non-empty, sorted by their lower
// Bound, pairwise disjoint and never adjacent (adjacent members are merged into one). Every mutation leaves the
// Partition normalized again.
//
// A Partition is not safe for concurrent use; see ThreadSafePartition.
type Partition[V constraints.Ordered] struct {
	intervals []Interval[V]
}

// NewPartition creates a Partition that holds the union of the given Intervals.
func NewPartition[V constraints.Ordered](intervals ...Interval[V]) *Partition[V] {
	candidates := lo.Filter(intervals, func(i Interval[V]) bool {
		return !i.IsEmpty()
	})
	slices.SortFunc(candidates, func(a, b Interval[V]) int {
		return bound.CompareLower(a.lower, b.lower)
	})

	p := &Partition[V]{
		intervals: make([]Interval[V], 0, len(candidates)),
	}
	for _, candidate := range candidates {
		if last := len(p.intervals) - 1; last >= 0 && mergeable(p.intervals[last], candidate) {
			p.intervals[last] = p.intervals[last].Hull(candidate)

			continue
		}

		p.intervals = append(p.intervals, candidate)
	}

	return p
}

// Insert adds all values of the Interval to the Partition. Members that overlap or touch the Interval are merged with
// it into a single member.
func (p *Partition[V]) Insert(i Interval[V]) {
	if i.IsEmpty() {
		return
	}

	// members in [start, end) overlap or touch i, everything before ends and everything after starts with a gap
	start := sort.Search(len(p.intervals), func(k int) bool {
		return !bound.Gap(p.intervals[k].upper, i.lower)
	})
	end := sort.Search(len(p.intervals), func(k int) bool {
		return bound.Gap(i.upper, p.intervals[k].lower)
	})

	merged := i
	for _, member := range p.intervals[start:end] {
		merged = merged.Hull(member)
	}

	p.intervals = slices.Replace(p.intervals, start, end, merged)
}

// InsertAll adds all values of the given Intervals to the Partition.
func (p *Partition[V]) InsertAll(intervals ...Interval[V]) {
	for _, i := range intervals {
		p.Insert(i)
	}
}

// Remove removes all values of the Interval from the Partition. Members that are partially covered by the Interval
// are cut down to the parts that are not covered.
func (p *Partition[V]) Remove(i Interval[V]) {
	if i.IsEmpty() {
		return
	}

	// members in [start, end) overlap i
	start := sort.Search(len(p.intervals), func(k int) bool {
		return !bound.Separated(p.intervals[k].upper, i.lower)
	})
	end := sort.Search(len(p.intervals), func(k int) bool {
		return bound.Separated(i.upper, p.intervals[k].lower)
	})
	if start >= end {
		return
	}

	remainders := make([]Interval[V], 0, 2)
	if !i.lower.IsUnbounded() {
		if left := p.intervals[start].Intersect(New(bound.Unbounded[V](), i.lower.Complement())); !left.IsEmpty() {
			remainders = append(remainders, left)
		}
	}
	if !i.upper.IsUnbounded() {
		if right := p.intervals[end-1].Intersect(New(i.upper.Complement(), bound.Unbounded[V]())); !right.IsEmpty() {
			remainders = append(remainders, right)
		}
	}

	p.intervals = slices.Replace(p.intervals, start, end, remainders...)
}

// Clear removes all members from the Partition.
func (p *Partition[V]) Clear() {
	p.intervals = p.intervals[:0]
}

// Contains returns true if value lies within one of the members.
func (p *Partition[V]) Contains(value V) bool {
	candidate := sort.Search(len(p.intervals), func(k int) bool {
		return bound.AdmitsUpper(p.intervals[k].upper, value)
	})

	return candidate < len(p.intervals) && p.intervals[candidate].Contains(value)
}

// IsCovering returns true if every value of the Interval lies within the Partition. An empty Interval is always
// covered.
func (p *Partition[V]) IsCovering(i Interval[V]) bool {
	if i.IsEmpty() {
		return true
	}

	first := sort.Search(len(p.intervals), func(k int) bool {
		return !bound.Separated(p.intervals[k].upper, i.lower)
	})

	// frontier is the lower bound of the part of i that is not covered yet
	frontier := i.lower
	for _, member := range p.intervals[first:] {
		if bound.CompareLower(member.lower, frontier) > 0 {
			return false
		}
		if bound.CompareUpper(member.upper, i.upper) >= 0 {
			return true
		}

		frontier = member.upper.Complement()
	}

	return false
}

// ContainsInterval is an alias for IsCovering.
func (p *Partition[V]) ContainsInterval(i Interval[V]) bool {
	return p.IsCovering(i)
}

// IntersectInterval returns a new Partition that holds the values of the Partition that also lie within the
// Interval.
func (p *Partition[V]) IntersectInterval(i Interval[V]) *Partition[V] {
	intersections := lo.Map(p.intervals, func(member Interval[V]) Interval[V] {
		return member.Intersect(i)
	})

	return &Partition[V]{
		intervals: lo.Filter(intersections, func(member Interval[V]) bool {
			return !member.IsEmpty()
		}),
	}
}

// Union returns a new Partition that holds the values of both Partitions.
func (p *Partition[V]) Union(other *Partition[V]) *Partition[V] {
	union := p.Clone()
	union.InsertAll(other.intervals...)

	return union
}

// Complement returns a new Partition that holds exactly the values that do not lie within the Partition.
func (p *Partition[V]) Complement() *Partition[V] {
	complement := &Partition[V]{
		intervals: make([]Interval[V], 0, len(p.intervals)+1),
	}

	lower := bound.Unbounded[V]()
	for _, member := range p.intervals {
		if !member.lower.IsUnbounded() {
			complement.intervals = append(complement.intervals, New(lower, member.lower.Complement()))
		}
		if member.upper.IsUnbounded() {
			return complement
		}

		lower = member.upper.Complement()
	}

	complement.intervals = append(complement.intervals, New(lower, bound.Unbounded[V]()))

	return complement
}

// Span returns the smallest Interval that contains every member, and false if the Partition is empty.
func (p *Partition[V]) Span() (Interval[V], bool) {
	if len(p.intervals) == 0 {
		return Empty[V](), false
	}

	return New(p.intervals[0].lower, p.intervals[len(p.intervals)-1].upper), true
}

// Len returns the number of members of the Partition.
func (p *Partition[V]) Len() int {
	return len(p.intervals)
}

// IsEmpty returns true if the Partition has no members.
func (p *Partition[V]) IsEmpty() bool {
	return len(p.intervals) == 0
}

// Intervals returns a copy of the members of the Partition in ascending order.
func (p *Partition[V]) Intervals() []Interval[V] {
	return lo.CopySlice(p.intervals)
}

// All returns an iterator over the members of the Partition in ascending order.
func (p *Partition[V]) All() iter.Seq[Interval[V]] {
	return func(yield func(Interval[V]) bool) {
		for _, member := range p.intervals {
			if !yield(member) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the Partition.
func (p *Partition[V]) Clone() *Partition[V] {
	return &Partition[V]{
		intervals: lo.CopySlice(p.intervals),
	}
}

// Equal returns true if both Partitions hold the same values.
func (p *Partition[V]) Equal(other *Partition[V]) bool {
	return slices.EqualFunc(p.intervals, other.intervals, Interval[V].Equal)
}

// String returns the Partition in set notation, e.g. "{[1, 5], [8, 9]}".
func (p *Partition[V]) String() string {
	return "{" + strings.Join(lo.Map(p.intervals, Interval[V].String), ", ") + "}"
}
