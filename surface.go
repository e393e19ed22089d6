package stim

// Program identifies a shader program slot on a surface.
type Program int

const (
	// ProgramNone unbinds any bound program.
	ProgramNone Program = iota

	// ProgramSignedColor is the flat-color shape program used for both
	// the fill and border passes.
	ProgramSignedColor
)

// Surface is the rendering target of the draw protocol. Implementations
// wrap a concrete window or GPU context; backend/record provides a
// command-recording surface and backend/ebitensurface an on-screen one.
//
// All methods are called from the single thread that owns the surface.
// The draw protocol guarantees that every state change (program binding,
// transform stack, smoothing) is restored before Draw returns, so
// sibling shapes drawn in sequence are unaffected by each other.
type Surface interface {
	// HasShaders reports whether the surface supports a shader
	// pipeline. When false, program binding is skipped entirely.
	HasShaders() bool

	// UseProgram binds a shader program; ProgramNone unbinds.
	UseProgram(p Program)

	// PushMatrix saves the current transform stack entry.
	PushMatrix()

	// PopMatrix restores the last pushed transform stack entry.
	PopMatrix()

	// SetScalePix sets the coordinate scale to device-pixel mode.
	// Valid only between PushMatrix and PopMatrix.
	SetScalePix()

	// DisableTexturing unbinds any texture on the given texture unit.
	// Shapes never sample textures; a stray bound texture would
	// modulate the flat fill color.
	DisableTexturing(unit int)

	// SetLineSmoothing sets the antialiasing state for line primitives.
	SetLineSmoothing(on bool)

	// DrawTriangles submits a triangle list. verts holds x,y pixel
	// coordinates; every 6 floats form one triangle.
	DrawTriangles(verts []float32, c RGBA)

	// DrawLineLoop submits a closed outline through the given points
	// (x,y pairs) with the given line width in pixels.
	DrawLineLoop(verts []float32, width float32, c RGBA)

	// DrawLineStrip submits an open polyline through the given points.
	DrawLineStrip(verts []float32, width float32, c RGBA)
}
