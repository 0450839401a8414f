// Package export drives a rendered document tree through the rasterizer and
// document encoder to produce PDF bytes, or serializes it to a standalone
// markup snapshot.
package export

import (
	"errors"
	"fmt"
)

// errEmptyBitmap reports a rasterizer that produced no usable pixels.
var errEmptyBitmap = errors.New("rasterizer returned an empty bitmap")

// ExportFailedError indicates the rasterize or encode step failed. The
// operation is attempted once; it is idempotent, so the caller may retry.
type ExportFailedError struct {
	Stage string
	Cause error
}

func (e *ExportFailedError) Error() string {
	return fmt.Sprintf("export failed during %s: %v", e.Stage, e.Cause)
}

func (e *ExportFailedError) Unwrap() error {
	return e.Cause
}
