package stim

import "fmt"

// TargetStyle selects the appearance of a calibration target.
type TargetStyle string

const (
	// TargetCircles draws two nested circles.
	TargetCircles TargetStyle = "circles"

	// TargetCross draws a circle with a cross inside.
	TargetCross TargetStyle = "cross"
)

// TargetConfig configures a TargetStim. The zero value gives the
// standard calibration marker: a faint white outer circle of radius
// 0.05 with a white border, and a solid red inner dot of radius 0.01.
type TargetConfig struct {
	// Name for attribute logging; "target" when empty.
	Name string

	// Style of the marker; TargetCircles when empty.
	Style TargetStyle

	// Radius of the outer shape in Units; 0.05 when zero.
	Radius float64

	// InnerRadius of the inner shape in Units; 0.01 when zero.
	InnerRadius float64

	// FillColor and BorderColor style the outer shape. Unset keeps the
	// defaults (faint white fill, white border); NoColor disables the
	// paint.
	FillColor   OptColor
	BorderColor OptColor

	// InnerFillColor and InnerBorderColor style the inner shape.
	// Defaults: solid red fill, no border.
	InnerFillColor   OptColor
	InnerBorderColor OptColor

	// LineWidth of the outer border in pixels; 2 when zero.
	LineWidth float64

	// InnerLineWidth of the inner border; LineWidth when zero.
	InnerLineWidth float64

	// Pos of the target center in Units.
	Pos Point

	// Units for radius and position; the window default when empty.
	Units Units
}

// TargetStim is a fixation/calibration marker built from two nested
// shape stimuli that move and resize together. Its flattened Dict form
// matches the key set external calibration software expects.
type TargetStim struct {
	win   WindowMetrics
	name  string
	style TargetStyle
	units Units

	outer *ShapeStim
	inner *ShapeStim

	radius      float64
	innerRadius float64
}

// NewTargetStim creates a calibration target on the given window.
func NewTargetStim(win WindowMetrics, cfg TargetConfig) (*TargetStim, error) {
	if win == nil {
		return nil, ErrNilWindow
	}

	name := cfg.Name
	if name == "" {
		name = "target"
	}
	units := cfg.Units
	if units == "" {
		units = win.Units()
	}
	if !validUnits(units) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnits, units)
	}

	radius := cfg.Radius
	if radius == 0 {
		radius = 0.05
	}
	innerRadius := cfg.InnerRadius
	if innerRadius == 0 {
		innerRadius = 0.01
	}
	lineWidth := cfg.LineWidth
	if lineWidth == 0 {
		lineWidth = 2
	}
	innerLineWidth := cfg.InnerLineWidth
	if innerLineWidth == 0 {
		innerLineWidth = lineWidth
	}

	faintWhite := NewColorA(SpaceRGB, 1, 1, 1, 0.1)
	white := NamedColor("white")
	red := NamedColor("red")

	fill := cfg.FillColor.or(&faintWhite)
	border := cfg.BorderColor.or(&white)
	innerFill := cfg.InnerFillColor.or(&red)
	innerBorder := cfg.InnerBorderColor.or(nil)

	outer, err := NewShapeStim(win,
		WithName(name),
		WithUnits(units),
		WithVertices("circle"),
		WithPos(cfg.Pos),
		WithSize(Point{}),
		WithLineWidth(lineWidth),
		colorOption(fill, WithFillColor, WithNoFill),
		colorOption(border, WithLineColor, WithNoLine),
	)
	if err != nil {
		return nil, err
	}
	inner, err := NewShapeStim(win,
		WithName(name+"Inner"),
		WithUnits(units),
		WithVertices("circle"),
		WithPos(cfg.Pos),
		WithSize(Point{}),
		WithLineWidth(innerLineWidth),
		colorOption(innerFill, WithFillColor, WithNoFill),
		colorOption(innerBorder, WithLineColor, WithNoLine),
	)
	if err != nil {
		return nil, err
	}

	t := &TargetStim{
		win:   win,
		name:  name,
		units: units,
		outer: outer,
		inner: inner,
	}
	t.SetStyle(styleOrDefault(cfg.Style))
	t.setOuterRadius(radius)
	t.setInnerRadius(innerRadius)
	return t, nil
}

func styleOrDefault(s TargetStyle) TargetStyle {
	if s == "" {
		return TargetCircles
	}
	return s
}

// colorOption maps a resolved optional color onto the matching shape
// construction option.
func colorOption(c *Color, with func(Color) Option, without func() Option) Option {
	if c == nil {
		return without()
	}
	return with(*c)
}

// Name returns the target name.
func (t *TargetStim) Name() string { return t.name }

// Outer returns the outer shape, for styling beyond what TargetStim
// exposes directly.
func (t *TargetStim) Outer() *ShapeStim { return t.outer }

// Inner returns the inner shape.
func (t *TargetStim) Inner() *ShapeStim { return t.inner }

// Style returns the current marker style.
func (t *TargetStim) Style() TargetStyle { return t.style }

// SetStyle switches the marker appearance between nested circles and a
// circle with a cross inside.
func (t *TargetStim) SetStyle(style TargetStyle) {
	t.style = style
	switch style {
	case TargetCross:
		_ = t.outer.SetVertices("circle")
		_ = t.inner.SetVertices("cross")
	default:
		_ = t.outer.SetVertices("circle")
		_ = t.inner.SetVertices("circle")
	}
	logAttrib(t.name, "style", string(style))
}

// Pos returns the target center.
func (t *TargetStim) Pos() Point { return t.outer.Pos() }

// SetPos moves both nested shapes together.
func (t *TargetStim) SetPos(p Point) {
	t.outer.SetPos(p)
	t.inner.SetPos(p)
}

// Radius returns the outer radius in the target's units.
func (t *TargetStim) Radius() float64 { return t.radius }

// SetRadius resizes the target, keeping the inner/outer ratio.
func (t *TargetStim) SetRadius(r float64) {
	ratio := t.innerRadius / t.radius
	t.setOuterRadius(r)
	t.setInnerRadius(r * ratio)
}

// InnerRadius returns the inner radius in the target's units.
func (t *TargetStim) InnerRadius() float64 { return t.innerRadius }

// SetInnerRadius resizes only the inner shape.
func (t *TargetStim) SetInnerRadius(r float64) { t.setInnerRadius(r) }

// setOuterRadius applies the outer diameter as a pixel-square size:
// the vertical extent is authoritative and the horizontal extent is
// compensated for anisotropic units (norm), so the marker is always
// round on screen.
func (t *TargetStim) setOuterRadius(r float64) {
	t.radius = r
	t.outer.SetSize(squareSize(2*r, t.units, t.win))
}

func (t *TargetStim) setInnerRadius(r float64) {
	t.innerRadius = r
	t.inner.SetSize(squareSize(2*r, t.units, t.win))
}

// squareSize returns a size whose on-screen pixel extent is d in both
// axes, expressed in the given units.
func squareSize(d float64, u Units, win WindowMetrics) Point {
	ux, uy := pixPerUnit(u, win)
	return Pt(uy/ux, 1).Scale(d)
}

// LineWidth returns the outer border width in pixels.
func (t *TargetStim) LineWidth() float64 { return t.outer.LineWidth() }

// SetLineWidth sets the outer border width.
func (t *TargetStim) SetLineWidth(w float64) { t.outer.SetLineWidth(w) }

// ForeColor returns the inner shape's visible color: its fill when
// painted, otherwise its border.
func (t *TargetStim) ForeColor() (Color, bool) {
	if c, ok := t.inner.FillColor(); ok {
		return c, true
	}
	return t.inner.LineColor()
}

// SetForeColor recolors whichever inner paints are present.
func (t *TargetStim) SetForeColor(c Color) {
	if _, ok := t.inner.FillColor(); ok {
		t.inner.SetFillColor(c)
	}
	if _, ok := t.inner.LineColor(); ok {
		t.inner.SetLineColor(c)
	}
}

// Draw renders the target: outer shape first, inner on top.
func (t *TargetStim) Draw(surface Surface, keepMatrix bool) error {
	if err := t.outer.Draw(surface, keepMatrix); err != nil {
		return err
	}
	return t.inner.Draw(surface, keepMatrix)
}

// Dict flattens the target into the key/value form external
// calibration hardware and software expect. The external format has no
// "no paint" value, so transparency resolves to a concrete fallback:
// the window background for the outer shape, and the outer shape's
// own colors for the inner one.
func (t *TargetStim) Dict() map[string]any {
	bg := t.win.BackgroundColor()

	outerFill := bg
	if c, ok := t.outer.FillColor(); ok {
		outerFill = c
	}
	outerBorder := bg
	if c, ok := t.outer.LineColor(); ok {
		outerBorder = c
	}
	innerFill := outerFill
	if c, ok := t.inner.FillColor(); ok {
		innerFill = c
	}
	innerBorder := outerBorder
	if c, ok := t.inner.LineColor(); ok {
		innerBorder = c
	}

	return map[string]any{
		"outer_diameter":     t.radius * 2,
		"outer_stroke_width": t.outer.LineWidth(),
		"outer_fill_color":   outerFill,
		"outer_line_color":   outerBorder,
		"inner_diameter":     t.innerRadius * 2,
		"inner_stroke_width": t.inner.LineWidth(),
		"inner_fill_color":   innerFill,
		"inner_line_color":   innerBorder,
	}
}

// TargetFromDict reconstructs a target from the flattened external
// form. Missing keys are treated as absent (no paint / zero size), not
// as errors, because calibration specs from third-party tools are
// frequently sparse.
func TargetFromDict(win WindowMetrics, spec map[string]any, cfg TargetConfig) (*TargetStim, error) {
	if d, ok := dictFloat(spec, "outer_diameter"); ok {
		cfg.Radius = d / 2
	}
	if d, ok := dictFloat(spec, "inner_diameter"); ok {
		cfg.InnerRadius = d / 2
	}
	if w, ok := dictFloat(spec, "outer_stroke_width"); ok {
		cfg.LineWidth = w
	}
	if w, ok := dictFloat(spec, "inner_stroke_width"); ok {
		cfg.InnerLineWidth = w
	}
	cfg.FillColor = dictColor(spec, "outer_fill_color")
	cfg.BorderColor = dictColor(spec, "outer_line_color")
	cfg.InnerFillColor = dictColor(spec, "inner_fill_color")
	cfg.InnerBorderColor = dictColor(spec, "inner_line_color")
	return NewTargetStim(win, cfg)
}

func dictFloat(spec map[string]any, key string) (float64, bool) {
	switch v := spec[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func dictColor(spec map[string]any, key string) OptColor {
	switch v := spec[key].(type) {
	case Color:
		return SomeColor(v)
	case string:
		return SomeColor(NamedColor(v))
	}
	return NoColor()
}
