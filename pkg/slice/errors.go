package slice

import (
	"errors"
	"fmt"

	"github.com/henderiw/slicer/pkg/stride"
)

var (
	ErrZeroStride      = stride.ErrZeroStride
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidExpr     = errors.New("invalid slice expression")
)

// IndexError reports an element access outside [0, Length).
type IndexError struct {
	// Index is the raw index the caller passed.
	Index int
	// Position is Index resolved against Length.
	Position int
	Length   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d (position %d) out of range for length %d", e.Index, e.Position, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
