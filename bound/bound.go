package bound

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
)

// Bound is one endpoint of an interval. It combines a threshold value with a Kind that decides whether the value
// itself belongs to the interval. Whether a Bound acts as the lower or the upper end of an interval is decided by
// the caller; the comparison functions of this package are split by that role.
type Bound[V constraints.Ordered] struct {
	value V
	kind  Kind
}

// New creates a Bound of the given Kind. The value is discarded for unbounded Bounds, so that all unbounded Bounds
// of the same value type are identical.
func New[V constraints.Ordered](kind Kind, value V) Bound[V] {
	if kind == KindUnbounded {
		return Unbounded[V]()
	}

	return Bound[V]{value: value, kind: kind}
}

// Closed returns a Bound that includes value.
func Closed[V constraints.Ordered](value V) Bound[V] {
	return Bound[V]{value: value, kind: KindClosed}
}

// Open returns a Bound that excludes value.
func Open[V constraints.Ordered](value V) Bound[V] {
	return Bound[V]{value: value, kind: KindOpen}
}

// Unbounded returns a Bound without a value.
func Unbounded[V constraints.Ordered]() Bound[V] {
	return Bound[V]{}
}

// Kind returns the Kind of the Bound.
func (b Bound[V]) Kind() Kind {
	return b.kind
}

// Value returns the threshold value of the Bound. It returns the zero value for unbounded Bounds.
func (b Bound[V]) Value() V {
	return b.value
}

// IsClosed returns true if the Bound includes its value.
func (b Bound[V]) IsClosed() bool {
	return b.kind == KindClosed
}

// IsOpen returns true if the Bound excludes its value.
func (b Bound[V]) IsOpen() bool {
	return b.kind == KindOpen
}

// IsUnbounded returns true if the Bound has no value.
func (b Bound[V]) IsUnbounded() bool {
	return b.kind == KindUnbounded
}

// Complement returns the Bound that includes exactly what this Bound excludes at its value. A closed Bound becomes
// open and vice versa. An unbounded Bound stays unbounded.
func (b Bound[V]) Complement() Bound[V] {
	switch b.kind {
	case KindClosed:
		return Open(b.value)
	case KindOpen:
		return Closed(b.value)
	default:
		return b
	}
}

// FormatLower renders the Bound as the left end of an interval: "[v", "(v" or "(-inf".
func (b Bound[V]) FormatLower() string {
	switch b.kind {
	case KindClosed:
		return fmt.Sprintf("[%v", b.value)
	case KindOpen:
		return fmt.Sprintf("(%v", b.value)
	default:
		return "(-inf"
	}
}

// FormatUpper renders the Bound as the right end of an interval: "v]", "v)" or "+inf)".
func (b Bound[V]) FormatUpper() string {
	switch b.kind {
	case KindClosed:
		return fmt.Sprintf("%v]", b.value)
	case KindOpen:
		return fmt.Sprintf("%v)", b.value)
	default:
		return "+inf)"
	}
}

// String returns a human-readable version of the Bound.
func (b Bound[V]) String() string {
	if b.kind == KindUnbounded {
		return "Bound(unbounded)"
	}

	return fmt.Sprintf("Bound(%s %v)", b.kind, b.value)
}
