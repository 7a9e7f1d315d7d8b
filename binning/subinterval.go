package binning

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/tspooner/intervals/interval"
)

// SubInterval is a single cell of a Binning.
type SubInterval[V constraints.Ordered] struct {
	index    int
	interval interval.Interval[V]
}

// newSubInterval creates the cell with the given index. Only the last cell includes its right end.
func newSubInterval[V constraints.Ordered](index, size int, left, right V) SubInterval[V] {
	if index == size-1 {
		return SubInterval[V]{index: index, interval: interval.Closed(left, right)}
	}

	return SubInterval[V]{index: index, interval: interval.ClosedOpen(left, right)}
}

// Index returns the position of the cell within its Binning.
func (s SubInterval[V]) Index() int {
	return s.index
}

// Interval returns the values that belong to the cell.
func (s SubInterval[V]) Interval() interval.Interval[V] {
	return s.interval
}

// Contains returns true if the value belongs to the cell.
func (s SubInterval[V]) Contains(value V) bool {
	return s.interval.Contains(value)
}

// String returns a human-readable version of the SubInterval.
func (s SubInterval[V]) String() string {
	return stringify.Struct("SubInterval",
		stringify.NewStructField("index", s.index),
		stringify.NewStructField("interval", s.interval),
	)
}

// Width returns the distance between the left and the right end of the cell.
func Width[V constraints.Numeric](s SubInterval[V]) V {
	return s.interval.Upper().Value() - s.interval.Lower().Value()
}

// Midpoint returns the value halfway between the left and the right end of the cell.
func Midpoint[V constraints.Numeric](s SubInterval[V]) V {
	return s.interval.Lower().Value() + Width(s)/2
}
