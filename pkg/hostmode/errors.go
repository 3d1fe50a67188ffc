package hostmode

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedHost indicates that host definitions are missing a required
	// constant or are internally inconsistent (e.g. overlapping masks). It is
	// raised when definitions are constructed, never during encoding or
	// decoding.
	ErrUnsupportedHost = errors.New("unsupported host")
	// ErrUnknownFileKind indicates that the type bits of a raw mode value don't
	// correspond to any known file kind.
	ErrUnknownFileKind = errors.New("unknown file kind")
)

// UnknownFileKindError is returned when decoding a raw mode value whose type
// bits match none of the known file kinds. It matches ErrUnknownFileKind under
// errors.Is.
type UnknownFileKindError struct {
	// Raw is the raw mode value that was being decoded.
	Raw uint32
	// Bits are the type bits extracted from Raw.
	Bits uint32
}

// Error implements error.Error.
func (e *UnknownFileKindError) Error() string {
	return fmt.Sprintf("unknown file kind: type bits %#o in mode %#o", e.Bits, e.Raw)
}

// Is reports whether target is ErrUnknownFileKind.
func (e *UnknownFileKindError) Is(target error) bool {
	return target == ErrUnknownFileKind
}
