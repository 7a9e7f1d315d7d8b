// Package binning splits a closed interval into consecutive cells and maps values to the cell that contains them.
// Every cell is closed on the left and open on the right, except for the last one, which is closed on both ends so
// that the right end of the binned range belongs to a cell.
package binning

import (
	"github.com/iotaledger/hive.go/constraints"
)

// Binning is the interface of all binnings.
type Binning[V constraints.Ordered] interface {
	// Len returns the number of cells.
	Len() int

	// Index returns the index of the cell that contains the value, and false if the value lies outside the binned
	// range.
	Index(value V) (index int, ok bool)

	// SubInterval returns the cell with the given index, and false if the index is out of range.
	SubInterval(index int) (subInterval SubInterval[V], ok bool)

	// Digitise returns the cell that contains the value, and false if the value lies outside the binned range.
	Digitise(value V) (subInterval SubInterval[V], ok bool)
}

// digitise implements Binning.Digitise on top of Index and SubInterval.
func digitise[V constraints.Ordered](b Binning[V], value V) (SubInterval[V], bool) {
	index, ok := b.Index(value)
	if !ok {
		return SubInterval[V]{}, false
	}

	return b.SubInterval(index)
}
