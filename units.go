package stim

import "math"

// Units is the logical unit system a shape's vertices, position, and
// size are expressed in. Conversion to device pixels happens in the
// transform pipeline using the window's physical metrics.
type Units string

const (
	// UnitPix is device pixels.
	UnitPix Units = "pix"

	// UnitNorm is normalized coordinates: -1..+1 spans each window axis.
	UnitNorm Units = "norm"

	// UnitHeight scales both axes by the window height, so 1.0 is one
	// full window height regardless of aspect ratio.
	UnitHeight Units = "height"

	// UnitCM is centimeters on the screen surface.
	UnitCM Units = "cm"

	// UnitDeg is degrees of visual angle at the viewing distance,
	// using the conventional linear (small-angle) approximation.
	UnitDeg Units = "deg"
)

// WindowMetrics is the pixel-metric query interface of the window that
// shapes are drawn into. The window itself is owned by the presentation
// toolkit; shapes hold it only as a borrowed reference.
type WindowMetrics interface {
	// SizePix returns the window's drawable size in device pixels.
	SizePix() (width, height int)

	// WidthCM returns the physical width of the display in centimeters.
	WidthCM() float64

	// ViewDistanceCM returns the observer's viewing distance in
	// centimeters, used for degrees of visual angle.
	ViewDistanceCM() float64

	// BackgroundColor returns the window clear color. Exported
	// calibration specs resolve "no paint" to this color.
	BackgroundColor() Color

	// Units returns the window's default unit system, used by shapes
	// constructed without an explicit one.
	Units() Units
}

// validUnits reports whether u is a unit system this package can
// convert to pixels.
func validUnits(u Units) bool {
	switch u {
	case UnitPix, UnitNorm, UnitHeight, UnitCM, UnitDeg:
		return true
	}
	return false
}

// pixPerUnit returns the per-axis factors converting one logical unit
// into device pixels for the given window. The unit tag must have been
// validated at assignment time; an unknown tag falls back to pixels so
// the draw path cannot crash mid-frame.
func pixPerUnit(u Units, win WindowMetrics) (sx, sy float64) {
	w, h := win.SizePix()
	switch u {
	case UnitNorm:
		return float64(w) / 2, float64(h) / 2
	case UnitHeight:
		return float64(h), float64(h)
	case UnitCM:
		f := float64(w) / win.WidthCM()
		return f, f
	case UnitDeg:
		// deg -> cm by the small-angle approximation, then cm -> pix.
		f := win.ViewDistanceCM() * (math.Pi / 180) * float64(w) / win.WidthCM()
		return f, f
	default:
		return 1, 1
	}
}
