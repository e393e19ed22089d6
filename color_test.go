package stim

import (
	"image/color"
	"log/slog"
	"math"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name     string
		c        Color
		contrast float64
		opacity  float64
		want     RGBA
	}{
		{
			"signed red",
			NewColor(SpaceRGB, 1, -1, -1), 1, 1,
			RGBA{1, 0, 0, 1},
		},
		{
			"mid gray",
			NewColor(SpaceRGB, 0, 0, 0), 1, 1,
			RGBA{0.5, 0.5, 0.5, 1},
		},
		{
			"contrast halves the excursion",
			NewColor(SpaceRGB, 1, -1, 0), 0.5, 1,
			RGBA{0.75, 0.25, 0.5, 1},
		},
		{
			"zero contrast collapses to gray",
			NewColor(SpaceRGB, 1, -1, 1), 0, 1,
			RGBA{0.5, 0.5, 0.5, 1},
		},
		{
			"opacity scales alpha only",
			NewColor(SpaceRGB, 1, 1, 1), 1, 0.25,
			RGBA{1, 1, 1, 0.25},
		},
		{
			"overdriven contrast clamps",
			NewColor(SpaceRGB, 1, -1, 0), 4, 1,
			RGBA{1, 0, 0.5, 1},
		},
		{
			"rgb1 white",
			NewColor(SpaceRGB1, 1, 1, 1), 1, 1,
			RGBA{1, 1, 1, 1},
		},
		{
			"rgb255 mid",
			NewColor(SpaceRGB255, 255, 0, 127.5), 1, 1,
			RGBA{1, 0, 0.5, 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.c.Render(tc.contrast, tc.opacity)
			if !rgbaApprox(got, tc.want, 1e-6) {
				t.Errorf("Render() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func rgbaApprox(a, b RGBA, tol float64) bool {
	return math.Abs(float64(a.R-b.R)) < tol &&
		math.Abs(float64(a.G-b.G)) < tol &&
		math.Abs(float64(a.B-b.B)) < tol &&
		math.Abs(float64(a.A-b.A)) < tol
}

func TestConvertRoundTrip(t *testing.T) {
	c := NewColor(SpaceRGB, 0.5, -0.25, 0)
	for _, space := range []ColorSpace{SpaceRGB1, SpaceRGB255, SpaceRGB} {
		back := c.convert(space).convert(SpaceRGB)
		if math.Abs(back.R-c.R) > 1e-12 || math.Abs(back.G-c.G) > 1e-12 || math.Abs(back.B-c.B) > 1e-12 {
			t.Errorf("round trip through %q: %+v", space, back)
		}
	}
}

func TestNamedColor(t *testing.T) {
	white := NamedColor("white")
	if white.Space != SpaceRGB1 || white.R != 1 || white.G != 1 || white.B != 1 || white.A != 1 {
		t.Errorf("white = %+v", white)
	}
	// Case-insensitive, as in CSS.
	if NamedColor("FireBrick") != NamedColor("firebrick") {
		t.Error("name lookup should be case-insensitive")
	}
}

func TestNamedColorUnknownWarnsAndReturnsBlack(t *testing.T) {
	h := captureLogs(t)
	c := NamedColor("not-a-color")
	if c != NewColor(SpaceRGB1, 0, 0, 0) {
		t.Errorf("unknown name = %+v, want opaque black", c)
	}
	if h.count(slog.LevelWarn) != 1 {
		t.Errorf("warnings = %d, want 1", h.count(slog.LevelWarn))
	}
}

func TestNRGBA(t *testing.T) {
	cases := []struct {
		in   RGBA
		want color.NRGBA
	}{
		{RGBA{1, 0, 0.5, 1}, color.NRGBA{R: 255, G: 0, B: 128, A: 255}},
		{RGBA{0, 0, 0, 0}, color.NRGBA{}},
		{RGBA{2, -1, 1, 1}, color.NRGBA{R: 255, G: 0, B: 255, A: 255}},
	}
	for _, tc := range cases {
		if got := tc.in.NRGBA(); got != tc.want {
			t.Errorf("%+v.NRGBA() = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestApplyColorOp(t *testing.T) {
	cur := NewColor(SpaceRGB, 0.5, 0, -0.5)

	got, ok := applyColorOp(cur, NewColor(SpaceRGB, -1, -1, -1), OpReplace)
	if !ok || got.R != -1 {
		t.Errorf("replace: %+v ok=%v", got, ok)
	}

	got, ok = applyColorOp(cur, NewColor(SpaceRGB, 0.25, 0.25, 0.25), OpAdd)
	if !ok || got.R != 0.75 || got.G != 0.25 || got.B != -0.25 {
		t.Errorf("add: %+v ok=%v", got, ok)
	}
	if got.A != cur.A {
		t.Errorf("add changed alpha: %v", got.A)
	}

	got, ok = applyColorOp(cur, NewColor(SpaceRGB, 1, 0, 0), OpSubtract)
	if !ok || got.R != -0.5 {
		t.Errorf("subtract: %+v ok=%v", got, ok)
	}

	// Empty operator is an alias for replace.
	got, ok = applyColorOp(cur, NewColor(SpaceRGB, 1, 1, 1), ColorOp(""))
	if !ok || got.R != 1 {
		t.Errorf("empty op: %+v ok=%v", got, ok)
	}

	got, ok = applyColorOp(cur, NewColor(SpaceRGB, 1, 1, 1), ColorOp("*"))
	if ok {
		t.Error("unknown operator reported as recognized")
	}
	if got != cur {
		t.Errorf("unknown operator changed the color: %+v", got)
	}
}

func TestApplyColorOpConvertsSpaces(t *testing.T) {
	// Adding an rgb1 color to a signed color must convert the operand
	// into the current space first.
	cur := NewColor(SpaceRGB, 0, 0, 0)
	val := NewColor(SpaceRGB1, 1, 0.5, 0) // signed: (1, 0, -1)
	got, ok := applyColorOp(cur, val, OpAdd)
	if !ok {
		t.Fatal("add not recognized")
	}
	if got.Space != SpaceRGB || got.R != 1 || got.G != 0 || got.B != -1 {
		t.Errorf("cross-space add: %+v", got)
	}
}

func TestOptColor(t *testing.T) {
	def := NewColor(SpaceRGB, 1, 1, 1)

	var unset OptColor
	if got := unset.or(&def); got == nil || *got != def {
		t.Errorf("unset.or(def) = %v, want the default", got)
	}

	if got := NoColor().or(&def); got != nil {
		t.Errorf("NoColor().or(def) = %v, want nil", got)
	}

	c := NewColor(SpaceRGB, -1, 0, 1)
	if got := SomeColor(c).or(&def); got == nil || *got != c {
		t.Errorf("SomeColor(c).or(def) = %v, want c", got)
	}
	if got := SomeColor(c).or(nil); got == nil || *got != c {
		t.Errorf("SomeColor(c).or(nil) = %v, want c", got)
	}
}
