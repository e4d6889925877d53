package strand

import (
	"errors"

	"github.com/dshills/strand/internal/bytebuf"
)

// Errors returned by String operations.
var (
	// ErrAllocation reports that buffer growth was refused by the configured
	// capacity limit. The value is unchanged; treat as fatal or propagate per
	// embedding policy.
	ErrAllocation = bytebuf.ErrAllocation

	// ErrIndexOutOfRange reports an index or length outside the valid range
	// for the active index space.
	ErrIndexOutOfRange = bytebuf.ErrOutOfRange

	// ErrIncompatibleEncoding reports a case-fold operation requested on
	// content that cannot support it.
	ErrIncompatibleEncoding = errors.New("operation not supported by content encoding")

	// ErrEncoding reports a text view requested on content that is not valid
	// encoded text.
	ErrEncoding = errors.New("invalid byte sequence for encoding")
)
