package rescale

import (
	"errors"

	"github.com/gogpu/rescale/internal/geom"
)

var (
	// ErrInvalidGeometry is returned when a resize target leaves both
	// dimensions empty, so no size can be derived.
	ErrInvalidGeometry = geom.ErrInvalidGeometry

	// ErrEmptySource is returned when the source image has no area.
	ErrEmptySource = geom.ErrEmptySource

	// ErrNilLayer is returned by operations that need a resize policy
	// but were given none.
	ErrNilLayer = errors.New("rescale: nil resize layer")
)

// ProcessingError wraps a failure that occurred inside a resize
// operation together with the name of the operation that failed. Use
// errors.As to recover it and errors.Is to match the wrapped cause.
type ProcessingError struct {
	// Op names the failed operation, e.g. "bicubic" or "resize".
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *ProcessingError) Error() string {
	return "rescale: " + e.Op + ": " + e.Err.Error()
}

func (e *ProcessingError) Unwrap() error { return e.Err }
