package stim

// Draw submits the shape to the surface for the current frame: fill
// pass first (tessellated triangles), then the border pass (line loop
// when closed, strip when open), so the border always renders on top.
//
// Pass a nil surface to draw into the shape's own window (which must
// then implement Surface). Set keepMatrix when drawing inside a
// clipping or aperture context that manages its own transform stack;
// the push/pop and pixel-scale steps are skipped.
//
// Draw restores every piece of shared surface state it touches
// (program binding, transform stack), so sibling shapes drawn in
// sequence are unaffected. It must not be re-entered from within a
// shape's own recompute path.
func (s *ShapeStim) Draw(surface Surface, keepMatrix bool) error {
	if surface == nil {
		ws, ok := s.win.(Surface)
		if !ok {
			return ErrNoSurface
		}
		surface = ws
	}

	// Recompute the pixel arrays once, before any surface state is
	// touched, so a tessellation failure leaves the surface untouched.
	fillPix, err := s.FillVerticesPix()
	if err != nil {
		return err
	}
	borderPix, err := s.BorderVerticesPix()
	if err != nil {
		return err
	}

	hasShaders := surface.HasShaders()
	if hasShaders {
		surface.UseProgram(ProgramSignedColor)
	}
	if !keepMatrix {
		surface.PushMatrix()
		surface.SetScalePix()
	}

	// Shapes never sample textures; stray bound textures on units 0/1
	// would modulate the flat color, so they are cleared every draw.
	surface.DisableTexturing(0)
	surface.DisableTexturing(1)

	surface.SetLineSmoothing(s.interpolate)

	if s.closeShape && len(fillPix) > 4 && s.fillColor != nil {
		surface.DrawTriangles(fillPix, s.fillColor.Render(s.contrast, s.opacity))
	}

	// A border needs at least two points; a degenerate single-point
	// shape submits nothing.
	if s.lineColor != nil && s.lineWidth != 0 && len(borderPix) >= 4 {
		c := s.lineColor.Render(s.contrast, s.opacity)
		w := float32(s.lineWidth)
		if s.closeShape {
			surface.DrawLineLoop(borderPix, w, c)
		} else {
			surface.DrawLineStrip(borderPix, w, c)
		}
	}

	if hasShaders {
		surface.UseProgram(ProgramNone)
	}
	if !keepMatrix {
		surface.PopMatrix()
	}
	return nil
}
