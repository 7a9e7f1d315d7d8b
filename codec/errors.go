package codec

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrParseBytesFailed is returned if information can not be unmarshaled from a sequence of bytes.
var ErrParseBytesFailed = ierrors.New("failed to parse bytes")
