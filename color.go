package stim

import (
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// ColorSpace tags the coordinate system of a Color's components.
type ColorSpace string

const (
	// SpaceRGB is the signed RGB space: each component in [-1, 1],
	// 0 is mid-gray. The native space of the presentation toolkit.
	SpaceRGB ColorSpace = "rgb"

	// SpaceRGB1 is normalized RGB: each component in [0, 1].
	SpaceRGB1 ColorSpace = "rgb1"

	// SpaceRGB255 is 8-bit RGB: each component in [0, 255].
	SpaceRGB255 ColorSpace = "rgb255"
)

// Color is a color expressed in a declared color space. The zero value
// is black in signed RGB. Alpha is always in [0, 1] regardless of space.
//
// Colors are values: arithmetic helpers return new colors and never
// mutate the receiver.
type Color struct {
	Space   ColorSpace
	R, G, B float64
	A       float64
}

// NewColor creates an opaque color with components in the given space.
func NewColor(space ColorSpace, r, g, b float64) Color {
	return Color{Space: space, R: r, G: g, B: b, A: 1}
}

// NewColorA creates a color with an explicit alpha in [0, 1].
func NewColorA(space ColorSpace, r, g, b, a float64) Color {
	return Color{Space: space, R: r, G: g, B: b, A: a}
}

// NamedColor resolves a CSS/X11 color name ("black", "white",
// "firebrick", ...) to a Color in normalized RGB. Unknown names log a
// warning and resolve to opaque black rather than failing, so a typo in
// a stimulus script degrades visibly instead of aborting a session.
func NamedColor(name string) Color {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		Logger().Warn("unknown color name", "name", name)
		return NewColor(SpaceRGB1, 0, 0, 0)
	}
	return Color{
		Space: SpaceRGB1,
		R:     float64(c.R) / 255,
		G:     float64(c.G) / 255,
		B:     float64(c.B) / 255,
		A:     float64(c.A) / 255,
	}
}

// RGBA is a display-ready color: normalized [0, 1] components with
// premultiplication left to the surface. This is the only form the draw
// protocol submits to the GPU.
type RGBA struct {
	R, G, B, A float32
}

// NRGBA converts to the standard library color type, for surfaces built
// on image/color. Components stay float32 end to end.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math32.Round(clamp32(c.R) * 255)),
		G: uint8(math32.Round(clamp32(c.G) * 255)),
		B: uint8(math32.Round(clamp32(c.B) * 255)),
		A: uint8(math32.Round(clamp32(c.A) * 255)),
	}
}

func clamp32(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// signed returns the components converted to signed RGB ([-1, 1]).
func (c Color) signed() (r, g, b float64) {
	switch c.Space {
	case SpaceRGB1:
		return c.R*2 - 1, c.G*2 - 1, c.B*2 - 1
	case SpaceRGB255:
		return c.R/127.5 - 1, c.G/127.5 - 1, c.B/127.5 - 1
	default:
		return c.R, c.G, c.B
	}
}

// convert returns the color re-expressed in the given space.
func (c Color) convert(space ColorSpace) Color {
	if c.Space == space {
		return c
	}
	r, g, b := c.signed()
	out := Color{Space: space, A: c.A}
	switch space {
	case SpaceRGB1:
		out.R, out.G, out.B = (r+1)/2, (g+1)/2, (b+1)/2
	case SpaceRGB255:
		out.R, out.G, out.B = (r+1)*127.5, (g+1)*127.5, (b+1)*127.5
	default:
		out.R, out.G, out.B = r, g, b
	}
	return out
}

// Render produces the normalized RGBA to submit to the display.
// Contrast scales the signed components about mid-gray; opacity
// multiplies alpha. Out-of-range results are clamped here, at the last
// moment before GPU submission.
func (c Color) Render(contrast, opacity float64) RGBA {
	r, g, b := c.signed()
	r *= contrast
	g *= contrast
	b *= contrast
	return RGBA{
		R: float32(clamp01((r + 1) / 2)),
		G: float32(clamp01((g + 1) / 2)),
		B: float32(clamp01((b + 1) / 2)),
		A: float32(clamp01(c.A * opacity)),
	}
}

// OptColor is an explicit tri-state color parameter for configuration
// structs: unset (keep the documented default), set to a color, or
// explicitly "no paint". The zero value is unset.
type OptColor struct {
	c   *Color
	set bool
}

// SomeColor returns an OptColor carrying the given color.
func SomeColor(c Color) OptColor {
	return OptColor{c: &c, set: true}
}

// NoColor returns an OptColor that explicitly disables paint.
func NoColor() OptColor {
	return OptColor{set: true}
}

// or resolves the parameter against a default: unset yields def,
// otherwise the explicit value (which may be nil for "no paint").
func (o OptColor) or(def *Color) *Color {
	if !o.set {
		return def
	}
	return o.c
}

// ColorOp is an arithmetic operator token for incremental color updates.
type ColorOp string

const (
	// OpReplace assigns the new color outright. The empty token is an
	// accepted alias.
	OpReplace ColorOp = "="

	// OpAdd adds the new color's components to the current value.
	OpAdd ColorOp = "+"

	// OpSubtract subtracts the new color's components.
	OpSubtract ColorOp = "-"
)

// applyColorOp combines cur and val under op, in cur's color space.
// The second return value reports whether the operator was recognized;
// unrecognized operators leave the color for the caller to keep as-is.
func applyColorOp(cur Color, val Color, op ColorOp) (Color, bool) {
	switch op {
	case OpReplace, ColorOp(""):
		return val, true
	case OpAdd:
		v := val.convert(cur.Space)
		return Color{Space: cur.Space, R: cur.R + v.R, G: cur.G + v.G, B: cur.B + v.B, A: cur.A}, true
	case OpSubtract:
		v := val.convert(cur.Space)
		return Color{Space: cur.Space, R: cur.R - v.R, G: cur.G - v.G, B: cur.B - v.B, A: cur.A}, true
	default:
		return cur, false
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
