package stim

import (
	"fmt"

	"github.com/gostim/stim/internal/tess"
)

// WindingRule selects how the tessellator resolves overlapping regions
// of self-intersecting or multi-loop outlines. It is fixed at
// construction; simple shapes never consult it.
type WindingRule int

const (
	// WindingOdd fills regions with odd winding number (the default).
	WindingOdd WindingRule = iota
	// WindingNonZero fills regions with nonzero winding number.
	WindingNonZero
	// WindingPositive fills regions with positive winding number.
	WindingPositive
	// WindingNegative fills regions with negative winding number.
	WindingNegative
	// WindingAbsGeqTwo fills regions with |winding| >= 2.
	WindingAbsGeqTwo
)

func (r WindingRule) tessRule() tess.WindingRule { return tess.WindingRule(r) }

// maxHardwareLineWidth is the widest line most GL-family drivers accept.
// Wider values are retained but flagged, since the driver will clamp
// them silently at draw time.
const maxHardwareLineWidth = 127

// ShapeStim is an arbitrary 2D vector shape: a polygon (concave,
// convex, or self-crossing), an open polyline, or a multi-loop outline
// with holes. It owns its vertex data, style, and transform state, and
// borrows the window only for pixel-metric queries and drawing.
//
// All mutators are cheap: they update state and mark derived data
// dirty. Tessellation and the logical-to-pixel transform run lazily on
// the first read of the pixel vertex arrays. ShapeStim is not safe for
// concurrent use; all access must come from the frame thread.
type ShapeStim struct {
	win  WindowMetrics
	name string

	// style
	lineWidth   float64
	interpolate bool
	closeShape  bool
	closeFixed  bool
	windingRule WindingRule
	fillColor   *Color // nil means "do not fill"
	lineColor   *Color // nil means "no border"
	opacity     float64
	contrast    float64

	// transform state
	units Units
	pos   Point
	size  Point
	ori   float64

	// vertex data
	vertices []Loop
	fanLoop  Loop // non-nil for computed-loop primitives: fill by fan, no tessellator

	// derived caches, valid while the flags below are false
	tessVerts   []Point // fill triangles in logical units
	fillPix     []float32
	borderPix   []float32
	needsTess   bool
	needsUpdate bool

	// recompute counters, used to verify lazy coalescing in tests
	tessPasses      int
	transformPasses int
}

// Option configures a ShapeStim during construction.
type Option func(*shapeOptions)

type shapeOptions struct {
	name        string
	units       Units // empty = window default
	vertices    any   // nil = default triangle
	fill        *Color
	fillSet     bool
	line        *Color
	lineSet     bool
	color       *Color
	lineWidth   float64
	pos         Point
	size        Point
	ori         float64
	opacity     float64
	contrast    float64
	interpolate bool
	closeShape  bool
	winding     WindingRule

	// primitives pin a precomputed simple loop
	fanLoop   Loop
	fixClose  bool
	openShape bool
}

func defaultShapeOptions() shapeOptions {
	return shapeOptions{
		name:        "shape",
		lineWidth:   1.5,
		size:        Point{X: 1, Y: 1},
		opacity:     1,
		contrast:    1,
		interpolate: true,
		closeShape:  true,
	}
}

// WithName names the stimulus for attribute logging.
func WithName(name string) Option { return func(o *shapeOptions) { o.name = name } }

// WithUnits sets the shape's logical unit system. Defaults to the
// window's unit system.
func WithUnits(u Units) Option { return func(o *shapeOptions) { o.units = u } }

// WithVertices sets the initial vertex data; it accepts the same forms
// as [ShapeStim.SetVertices]. Defaults to a triangle.
func WithVertices(v any) Option { return func(o *shapeOptions) { o.vertices = v } }

// WithFillColor sets the interior color. Without it (and without
// WithColor) the shape is not filled.
func WithFillColor(c Color) Option {
	return func(o *shapeOptions) { o.fill = &c; o.fillSet = true }
}

// WithNoFill explicitly disables filling, even when WithColor is given.
func WithNoFill() Option {
	return func(o *shapeOptions) { o.fill = nil; o.fillSet = true }
}

// WithLineColor sets the border color. Defaults to black.
func WithLineColor(c Color) Option {
	return func(o *shapeOptions) { o.line = &c; o.lineSet = true }
}

// WithNoLine explicitly disables the border.
func WithNoLine() Option {
	return func(o *shapeOptions) { o.line = nil; o.lineSet = true }
}

// WithColor sets both fill and border to the same color. WithFillColor,
// WithNoFill, WithLineColor, and WithNoLine take precedence for their
// respective halves.
func WithColor(c Color) Option {
	return func(o *shapeOptions) { o.color = &c }
}

// WithLineWidth sets the border width in pixels.
func WithLineWidth(w float64) Option { return func(o *shapeOptions) { o.lineWidth = w } }

// WithPos sets the shape position in its unit system.
func WithPos(p Point) Option { return func(o *shapeOptions) { o.pos = p } }

// WithSize sets the per-axis scale factors applied to the vertices.
func WithSize(s Point) Option { return func(o *shapeOptions) { o.size = s } }

// WithOri sets the orientation in degrees, counter-clockwise positive.
func WithOri(deg float64) Option { return func(o *shapeOptions) { o.ori = deg } }

// WithOpacity sets the overall opacity in [0, 1].
func WithOpacity(v float64) Option { return func(o *shapeOptions) { o.opacity = v } }

// WithContrast sets the contrast multiplier applied in signed color
// space at render time.
func WithContrast(v float64) Option { return func(o *shapeOptions) { o.contrast = v } }

// WithInterpolate sets the antialiasing flag.
func WithInterpolate(on bool) Option { return func(o *shapeOptions) { o.interpolate = on } }

// WithOpenShape marks the shape as an open polyline: the last vertex is
// not connected back to the first and no fill is produced.
func WithOpenShape() Option { return func(o *shapeOptions) { o.openShape = true } }

// WithWindingRule sets the tessellation winding rule. Only relevant for
// self-crossing or multi-loop shapes; cannot be changed afterwards.
func WithWindingRule(r WindingRule) Option { return func(o *shapeOptions) { o.winding = r } }

// withComputedLoop is used by the primitive constructors: the loop is
// guaranteed simple, the close-shape flag is pinned, and filling is a
// direct triangle fan with no tessellation.
func withComputedLoop(loop Loop, closed bool) Option {
	return func(o *shapeOptions) {
		o.fanLoop = loop
		o.fixClose = true
		o.closeShape = closed
		o.vertices = []Loop{loop}
	}
}

// NewShapeStim creates a shape stimulus on the given window.
func NewShapeStim(win WindowMetrics, opts ...Option) (*ShapeStim, error) {
	if win == nil {
		return nil, ErrNilWindow
	}
	o := defaultShapeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	units := o.units
	if units == "" {
		units = win.Units()
	}
	if !validUnits(units) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnits, units)
	}

	// Resolve the tri-state color parameters: an explicit per-half
	// option wins, then the unified color, then the defaults
	// (no fill, black border).
	fill := o.fill
	line := o.line
	if !o.fillSet && o.color != nil {
		fill = o.color
	}
	if !o.lineSet {
		if o.color != nil {
			line = o.color
		} else {
			black := NewColor(SpaceRGB, -1, -1, -1)
			line = &black
		}
	}

	s := &ShapeStim{
		win:         win,
		name:        o.name,
		lineWidth:   o.lineWidth,
		interpolate: o.interpolate,
		closeShape:  o.closeShape && !o.openShape,
		closeFixed:  o.fixClose,
		windingRule: o.winding,
		fillColor:   fill,
		lineColor:   line,
		opacity:     o.opacity,
		contrast:    o.contrast,
		units:       units,
		pos:         o.pos,
		size:        o.size,
		ori:         o.ori,
		fanLoop:     o.fanLoop,
		needsTess:   true,
		needsUpdate: true,
	}
	checkLineWidth(s.name, s.lineWidth)

	verts := o.vertices
	if verts == nil {
		verts = "triangle"
	}
	loops, err := normalizeVertices(verts)
	if err != nil {
		return nil, err
	}
	s.vertices = loops

	Logger().Info("created stimulus", "stim", s.name, "vertices", vertexCount(loops), "units", string(units))
	return s, nil
}

// Name returns the stimulus name used in attribute logs.
func (s *ShapeStim) Name() string { return s.name }

// Window returns the window metrics the shape was created with.
func (s *ShapeStim) Window() WindowMetrics { return s.win }

// Vertices returns a snapshot of the raw vertex loops in logical units.
// The snapshot is a deep copy; mutating it does not affect the shape.
func (s *ShapeStim) Vertices() []Loop { return cloneLoops(s.vertices) }

// SetVertices replaces the shape's vertex data. It accepts a preset
// name, a scalar, a single point, an Nx2 sequence, or a list of loops
// (see normalizeVertices for the full set of forms) and fails with
// ErrInvalidVertexShape for anything else. Assigning vertices re-runs
// tessellation on the next pixel-vertex read.
func (s *ShapeStim) SetVertices(v any) error {
	loops, err := normalizeVertices(v)
	if err != nil {
		return err
	}
	s.vertices = loops
	// User-assigned vertices lose any computed-loop guarantee and go
	// through the general tessellator.
	s.fanLoop = nil
	s.markGeometryDirty()
	logAttrib(s.name, "vertices", vertexCount(loops))
	return nil
}

// Pos returns the shape position in its unit system.
func (s *ShapeStim) Pos() Point { return s.pos }

// SetPos moves the shape. Invalidates only the transform, not the
// tessellation.
func (s *ShapeStim) SetPos(p Point) {
	s.pos = p
	s.markTransformDirty()
	logAttrib(s.name, "pos", p)
}

// Size returns the per-axis scale factors.
func (s *ShapeStim) Size() Point { return s.size }

// SetSize rescales the shape. Size is independent of the unit system:
// it multiplies the vertices before rotation and translation.
func (s *ShapeStim) SetSize(sz Point) {
	s.size = sz
	s.markTransformDirty()
	logAttrib(s.name, "size", sz)
}

// Ori returns the orientation in degrees.
func (s *ShapeStim) Ori() float64 { return s.ori }

// SetOri rotates the shape to the given orientation in degrees,
// counter-clockwise positive.
func (s *ShapeStim) SetOri(deg float64) {
	s.ori = deg
	s.markTransformDirty()
	logAttrib(s.name, "ori", deg)
}

// Units returns the shape's unit system.
func (s *ShapeStim) Units() Units { return s.units }

// SetUnits changes the shape's unit system. Returns ErrUnknownUnits for
// a tag this package cannot convert.
func (s *ShapeStim) SetUnits(u Units) error {
	if !validUnits(u) {
		return fmt.Errorf("%w: %q", ErrUnknownUnits, u)
	}
	s.units = u
	s.markTransformDirty()
	logAttrib(s.name, "units", string(u))
	return nil
}

// Opacity returns the overall opacity.
func (s *ShapeStim) Opacity() float64 { return s.opacity }

// SetOpacity sets the overall opacity. Values outside [0, 1] are
// accepted and clamped only at render time.
func (s *ShapeStim) SetOpacity(v float64) {
	s.opacity = v
	logAttrib(s.name, "opacity", v)
}

// Contrast returns the contrast multiplier.
func (s *ShapeStim) Contrast() float64 { return s.contrast }

// SetContrast sets the contrast multiplier applied in signed color
// space at render time.
func (s *ShapeStim) SetContrast(v float64) {
	s.contrast = v
	logAttrib(s.name, "contrast", v)
}

// LineWidth returns the border width in pixels.
func (s *ShapeStim) LineWidth() float64 { return s.lineWidth }

// SetLineWidth sets the border width in pixels. Widths above the
// GL-family hardware cap (127) are retained but logged as a warning,
// since drivers clamp them silently; they are never an error.
func (s *ShapeStim) SetLineWidth(w float64) {
	checkLineWidth(s.name, w)
	s.lineWidth = w
	logAttrib(s.name, "lineWidth", w)
}

func checkLineWidth(name string, w float64) {
	if w > maxHardwareLineWidth {
		Logger().Warn("line width exceeds the maximum supported by GL-family drivers; use a filled rectangle for thicker lines",
			"stim", name, "lineWidth", w, "max", maxHardwareLineWidth)
	}
}

// Interpolate returns the antialiasing flag.
func (s *ShapeStim) Interpolate() bool { return s.interpolate }

// SetInterpolate sets the antialiasing flag.
func (s *ShapeStim) SetInterpolate(on bool) {
	s.interpolate = on
	logAttrib(s.name, "interpolate", on)
}

// CloseShape reports whether the last vertex connects back to the
// first (polygon) or not (polyline).
func (s *ShapeStim) CloseShape() bool { return s.closeShape }

// SetCloseShape changes the close-shape flag. Shapes whose loops were
// computed at construction (Polygon, Circle, Rect, Line) have the flag
// fixed and return ErrCloseShapeFixed.
func (s *ShapeStim) SetCloseShape(closed bool) error {
	if s.closeFixed {
		return ErrCloseShapeFixed
	}
	s.closeShape = closed
	s.markGeometryDirty()
	logAttrib(s.name, "closeShape", closed)
	return nil
}

// Winding returns the tessellation winding rule fixed at construction.
func (s *ShapeStim) Winding() WindingRule { return s.windingRule }

// FillColor returns the interior color and whether one is set.
func (s *ShapeStim) FillColor() (Color, bool) {
	if s.fillColor == nil {
		return Color{}, false
	}
	return *s.fillColor, true
}

// LineColor returns the border color and whether one is set.
func (s *ShapeStim) LineColor() (Color, bool) {
	if s.lineColor == nil {
		return Color{}, false
	}
	return *s.lineColor, true
}

// SetColor sets the fill and border to the same color.
func (s *ShapeStim) SetColor(c Color) {
	s.SetFillColor(c)
	s.SetLineColor(c)
}

// SetFillColor sets the interior color.
func (s *ShapeStim) SetFillColor(c Color) {
	s.fillColor = &c
	logAttrib(s.name, "fillColor", c)
}

// ClearFillColor removes the interior paint; the shape draws border
// only.
func (s *ShapeStim) ClearFillColor() {
	s.fillColor = nil
	logAttrib(s.name, "fillColor", nil)
}

// SetLineColor sets the border color.
func (s *ShapeStim) SetLineColor(c Color) {
	s.lineColor = &c
	logAttrib(s.name, "lineColor", c)
}

// ClearLineColor removes the border paint.
func (s *ShapeStim) ClearLineColor() {
	s.lineColor = nil
	logAttrib(s.name, "lineColor", nil)
}

// SetFillColorOp updates the fill color with an arithmetic operator:
// OpReplace assigns, OpAdd and OpSubtract adjust the current components.
// An unrecognized operator is reported through the package logger and
// leaves the color unchanged, so a batch of stimulus updates cannot
// abort mid-experiment.
func (s *ShapeStim) SetFillColorOp(c Color, op ColorOp) {
	s.fillColor = s.applyOp(s.fillColor, c, op, "fillColor")
}

// SetLineColorOp updates the border color with an arithmetic operator;
// see SetFillColorOp.
func (s *ShapeStim) SetLineColorOp(c Color, op ColorOp) {
	s.lineColor = s.applyOp(s.lineColor, c, op, "lineColor")
}

func (s *ShapeStim) applyOp(cur *Color, val Color, op ColorOp, attrib string) *Color {
	base := Color{Space: val.Space, A: 1}
	if cur != nil {
		base = *cur
	}
	next, ok := applyColorOp(base, val, op)
	if !ok {
		Logger().Warn("color operation not recognised",
			"stim", s.name, "attrib", attrib, "op", string(op), "err", ErrUnsupportedColorOp)
		return cur
	}
	logAttrib(s.name, attrib, next)
	return &next
}

// markGeometryDirty invalidates both the tessellation and the pixel
// arrays.
func (s *ShapeStim) markGeometryDirty() {
	s.needsTess = true
	s.needsUpdate = true
}

// markTransformDirty invalidates the pixel arrays only; the cached
// logical-unit triangles stay valid.
func (s *ShapeStim) markTransformDirty() {
	s.needsUpdate = true
}

// FillVerticesPix returns the tessellated fill vertices in device
// pixels (flat x,y pairs; every 6 floats one triangle), recomputing
// lazily if any geometry or transform state changed since the last
// read. The returned slice is owned by the shape and valid until the
// next mutation.
func (s *ShapeStim) FillVerticesPix() ([]float32, error) {
	if s.needsUpdate {
		if err := s.updateVertices(); err != nil {
			return nil, err
		}
	}
	return s.fillPix, nil
}

// BorderVerticesPix returns the original (non-tessellated) outline
// vertices in device pixels, transformed with exactly the same
// parameters as the fill so the two stay geometrically coincident.
func (s *ShapeStim) BorderVerticesPix() ([]float32, error) {
	if s.needsUpdate {
		if err := s.updateVertices(); err != nil {
			return nil, err
		}
	}
	return s.borderPix, nil
}

// updateVertices recomputes the derived arrays: tessellation first when
// the raw vertices changed, then one transform pass over both the fill
// triangles and the border outline.
func (s *ShapeStim) updateVertices() error {
	if s.needsTess {
		if err := s.retessellate(); err != nil {
			return err
		}
		s.needsTess = false
		s.tessPasses++
	}
	t := newPixelTransform(s.size, s.ori, s.pos, s.units, s.win)
	s.fillPix = t.apply(s.tessVerts, s.fillPix[:0])
	s.borderPix = t.applyLoops(s.vertices, s.borderPix[:0])
	s.transformPasses++
	s.needsUpdate = false
	return nil
}

func (s *ShapeStim) retessellate() error {
	if s.fanLoop != nil {
		// Computed simple loop: a direct triangle fan is always valid
		// and skips the tessellator entirely.
		if s.closeShape {
			s.tessVerts = fanTriangles(s.fanLoop)
		} else {
			s.tessVerts = nil
		}
		return nil
	}

	out, err := tess.Triangulate(loopsToTess(s.vertices), s.windingRule.tessRule(), s.closeShape)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTessellationFailed, err)
	}
	if len(out) == 0 && s.closeShape {
		// Degenerate closed input (collinear points, single point):
		// degrade to an open outline with no fill. The border then
		// draws as a strip rather than a loop. Never an error.
		s.closeShape = false
		s.tessVerts = nil
		Logger().Warn("tessellation yielded no triangles; treating shape as open outline", "stim", s.name)
		return nil
	}
	s.tessVerts = fromTess(out)
	return nil
}

// fanTriangles emits the triangle fan (v0, vi, vi+1) over a guaranteed
// simple loop, skipping zero-area triangles from collinear runs.
func fanTriangles(loop Loop) []Point {
	if len(loop) < 3 {
		return nil
	}
	tris := make([]Point, 0, (len(loop)-2)*3)
	for i := 1; i < len(loop)-1; i++ {
		a, b, c := loop[0], loop[i], loop[i+1]
		if b.Sub(a).Cross(c.Sub(a)) == 0 {
			continue
		}
		tris = append(tris, a, b, c)
	}
	return tris
}

func loopsToTess(loops []Loop) [][]tess.Point {
	out := make([][]tess.Point, len(loops))
	for i, l := range loops {
		tl := make([]tess.Point, len(l))
		for j, p := range l {
			tl[j] = tess.Point{X: p.X, Y: p.Y}
		}
		out[i] = tl
	}
	return out
}

func fromTess(pts []tess.Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
