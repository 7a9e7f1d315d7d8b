package interval

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrDecreasingBounds is returned if a checked constructor receives Bounds that describe an empty Interval.
	ErrDecreasingBounds = ierrors.New("lower bound exceeds upper bound")
)
