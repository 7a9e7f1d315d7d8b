package binning

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Declarative is a binning whose cells are given by an explicit sequence of cut points. N cut points describe N-1
// cells; the k-th cell spans from the k-th to the (k+1)-th cut point.
type Declarative[V constraints.Ordered] struct {
	cuts []V

	// lowerThresholds maps the left end of every non-empty cell to its index.
	lowerThresholds *redblacktree.Tree
}

// NewDeclarative creates a Declarative binning from a non-decreasing sequence of at least two cut points.
func NewDeclarative[V constraints.Ordered](cuts ...V) (*Declarative[V], error) {
	if len(cuts) < 2 {
		return nil, ierrors.Wrapf(ErrIllFormedBounds, "binning needs at least two cut points (got %d)", len(cuts))
	}

	d := &Declarative[V]{
		cuts: lo.CopySlice(cuts),
		lowerThresholds: redblacktree.NewWith(func(a interface{}, b interface{}) int {
			return lo.Comparator(a.(V), b.(V))
		}),
	}

	for k := 0; k < len(cuts)-1; k++ {
		if cuts[k] > cuts[k+1] {
			return nil, ierrors.Wrapf(ErrIllFormedBounds, "cut points must not decrease (%v > %v)", cuts[k], cuts[k+1])
		}

		// a cut point repeated later hides the empty cells in front of it
		d.lowerThresholds.Put(cuts[k], k)
	}

	return d, nil
}

// Len returns the number of cells.
func (d *Declarative[V]) Len() int {
	return len(d.cuts) - 1
}

// Cuts returns a copy of the cut points.
func (d *Declarative[V]) Cuts() []V {
	return lo.CopySlice(d.cuts)
}

// Index returns the index of the cell that contains the value.
func (d *Declarative[V]) Index(value V) (int, bool) {
	if value < d.cuts[0] || value > d.cuts[len(d.cuts)-1] {
		return 0, false
	}

	if value == d.cuts[len(d.cuts)-1] {
		return d.Len() - 1, true
	}

	node, found := d.lowerThresholds.Floor(value)
	if !found {
		return 0, false
	}

	return node.Value.(int), true
}

// SubInterval returns the cell with the given index.
func (d *Declarative[V]) SubInterval(index int) (SubInterval[V], bool) {
	if index < 0 || index >= d.Len() {
		return SubInterval[V]{}, false
	}

	return newSubInterval(index, d.Len(), d.cuts[index], d.cuts[index+1]), true
}

// Digitise returns the cell that contains the value.
func (d *Declarative[V]) Digitise(value V) (SubInterval[V], bool) {
	return digitise[V](d, value)
}

var _ Binning[string] = new(Declarative[string])
