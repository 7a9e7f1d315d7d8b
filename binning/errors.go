package binning

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrIllFormedBounds is returned if a Binning is created from bounds that do not describe a non-empty range.
var ErrIllFormedBounds = ierrors.New("ill-formed binning bounds")
