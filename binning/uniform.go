package binning

import (
	"math"
	"math/bits"
	"sort"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/tspooner/intervals/interval"
)

// Uniform splits the closed range [left, right] into cells of equal width.
type Uniform[V constraints.Numeric] struct {
	size  int
	left  V
	right V

	// width is right-left, which is known to be representable in V.
	width V

	// integral is set for integer V, whose boundaries are computed without intermediate products that could wrap.
	integral bool
}

// NewUniform creates a Uniform binning of [left, right] with the given number of cells.
func NewUniform[V constraints.Numeric](size int, left, right V) (*Uniform[V], error) {
	if size <= 0 {
		return nil, ierrors.Wrapf(ErrIllFormedBounds, "binning needs at least one cell (size %d)", size)
	}
	if left > right {
		return nil, ierrors.Wrapf(ErrIllFormedBounds, "left end %v exceeds right end %v", left, right)
	}
	if int(V(size)) != size {
		return nil, ierrors.Wrapf(ErrIllFormedBounds, "size %d is not representable as %T", size, left)
	}

	width := right - left
	if width < 0 || math.IsInf(float64(width), 0) {
		return nil, ierrors.Wrapf(ErrIllFormedBounds, "span from %v to %v is not representable as %T", left, right, left)
	}

	return &Uniform[V]{
		size:     size,
		left:     left,
		right:    right,
		width:    width,
		integral: V(1)/V(2) == 0,
	}, nil
}

// Linspace creates a Uniform binning of the closed Interval with n cells.
func Linspace[V constraints.Numeric](i interval.Interval[V], n int) (*Uniform[V], error) {
	if !i.Lower().IsClosed() || !i.Upper().IsClosed() {
		return nil, ierrors.Wrapf(ErrIllFormedBounds, "only closed intervals can be binned (%s)", i)
	}

	return NewUniform(n, i.Lower().Value(), i.Upper().Value())
}

// Len returns the number of cells.
func (u *Uniform[V]) Len() int {
	return u.size
}

// Left returns the left end of the binned range.
func (u *Uniform[V]) Left() V {
	return u.left
}

// Right returns the right end of the binned range.
func (u *Uniform[V]) Right() V {
	return u.right
}

// Index returns the index of the cell that contains the value.
func (u *Uniform[V]) Index(value V) (int, bool) {
	if value < u.left || value > u.right {
		return 0, false
	}

	// the first boundary beyond value closes the cell that contains it
	index := sort.Search(u.size, func(k int) bool {
		return u.boundary(k+1) > value
	})

	return min(index, u.size-1), true
}

// SubInterval returns the cell with the given index.
func (u *Uniform[V]) SubInterval(index int) (SubInterval[V], bool) {
	if index < 0 || index >= u.size {
		return SubInterval[V]{}, false
	}

	return newSubInterval(index, u.size, u.boundary(index), u.boundary(index+1)), true
}

// Digitise returns the cell that contains the value.
func (u *Uniform[V]) Digitise(value V) (SubInterval[V], bool) {
	return digitise[V](u, value)
}

// boundary returns the left end of the k-th cell. The boundary after the last cell is the right end of the range.
func (u *Uniform[V]) boundary(k int) V {
	if k >= u.size {
		return u.right
	}

	if !u.integral {
		return u.left + u.width/V(u.size)*V(k)
	}

	// width*k/size in unsigned arithmetic, with the remainder part carried through a 128 bit product
	width, size, index := uint64(u.width), uint64(u.size), uint64(k)
	hi, lo := bits.Mul64(width%size, index)
	fraction, _ := bits.Div64(hi, lo, size)

	return u.left + V(width/size*index+fraction)
}

var _ Binning[float64] = new(Uniform[float64])
