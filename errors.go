package stim

import "errors"

// Package-level errors.
var (
	// ErrInvalidVertexShape is returned when vertex input is neither a
	// single point, an Nx2 sequence, nor a nonempty list of such
	// sequences. Raised at assignment time, never silently coerced.
	ErrInvalidVertexShape = errors.New("stim: vertices must be a single point, an Nx2 sequence, or a nonempty list of Nx2 sequences")

	// ErrTessellationFailed signals a corrupt tessellation result
	// (a vertex count that is not a multiple of 3). It is fatal and
	// never retried.
	ErrTessellationFailed = errors.New("stim: tessellation produced a non-triangle vertex count")

	// ErrUnsupportedColorOp marks an unrecognized color arithmetic
	// operator. It is reported through the package logger and the
	// mutation becomes a no-op; it is never returned from a setter,
	// so a batch of stimulus updates cannot abort mid-experiment.
	ErrUnsupportedColorOp = errors.New("stim: unsupported color operation")

	// ErrCloseShapeFixed is returned when changing the close-shape flag
	// of a shape whose loop was synthesized at construction
	// (Polygon, Circle, Rect, Line).
	ErrCloseShapeFixed = errors.New("stim: close-shape flag is fixed for computed-loop shapes")

	// ErrNoSurface is returned by Draw when no surface is given and the
	// shape's window does not implement Surface.
	ErrNoSurface = errors.New("stim: no drawable surface")

	// ErrNilWindow is returned by constructors given a nil window.
	ErrNilWindow = errors.New("stim: nil window")

	// ErrUnknownUnits is returned for a unit system tag this package
	// does not know how to convert to pixels.
	ErrUnknownUnits = errors.New("stim: unknown unit system")
)
