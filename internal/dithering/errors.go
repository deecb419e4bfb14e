package dithering

import "errors"

// Sentinel errors for the three caller-triggerable failures. All are
// input-validation errors detected before any output is produced; callers
// can test for them with errors.Is.
var (
	// ErrEmptyPalette is returned when a palette has no entries. There is
	// no sane default color, so the whole operation is aborted.
	ErrEmptyPalette = errors.New("palette has no colors")

	// ErrInvalidKernel is returned for a non-positive divisor or a tap
	// that points at an already-visited pixel in raster order.
	ErrInvalidKernel = errors.New("invalid diffusion kernel")

	// ErrInvalidMatrixSize is returned when a Bayer matrix size is not a
	// positive power of two.
	ErrInvalidMatrixSize = errors.New("matrix size must be a positive power of two")
)
