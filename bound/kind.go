package bound

import (
	"fmt"
)

// Kind indicates how a Bound treats its value. A closed bound includes the value, an open bound excludes it and an
// unbounded side has no value at all.
type Kind uint8

const (
	// KindUnbounded indicates that the side of the interval extends indefinitely. It is the zero value, so the zero
	// Bound is unbounded.
	KindUnbounded Kind = iota

	// KindClosed indicates that the value of the Bound is part of the interval ("inclusive").
	KindClosed

	// KindOpen indicates that the value of the Bound is not part of the interval ("exclusive").
	KindOpen
)

// IsValid returns true if the Kind is one of KindUnbounded, KindClosed and KindOpen.
func (k Kind) IsValid() bool {
	return k <= KindOpen
}

// HasValue returns true if Bounds of this Kind carry a value.
func (k Kind) HasValue() bool {
	return k == KindClosed || k == KindOpen
}

func (k Kind) String() string {
	switch k {
	case KindUnbounded:
		return "KindUnbounded"
	case KindClosed:
		return "KindClosed"
	case KindOpen:
		return "KindOpen"
	default:
		return fmt.Sprintf("Kind(%X)", uint8(k))
	}
}
