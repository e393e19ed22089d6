package stim

// pixelTransform is the composed affine map from a shape's logical
// coordinates to device pixels:
//
//	scale by size -> rotate by orientation -> translate by position
//	-> convert declared units to pixels
//
// The composition is built as a [Matrix] and narrowed to float32 once;
// float32 is the layout GPU vertex buffers use, so the fill and border
// arrays come out submission-ready.
//
// It is a pure value derived from (transform state, unit system, window
// metrics); ShapeStim caches its output behind a dirty flag and
// recomputes on any change rather than diffing.
type pixelTransform struct {
	a, b, c float32
	d, e, f float32
}

// newPixelTransform composes the transform for the given state.
// Orientation is in degrees, counter-clockwise positive.
func newPixelTransform(size Point, oriDeg float64, pos Point, u Units, win WindowMetrics) pixelTransform {
	ux, uy := pixPerUnit(u, win)
	m := ScaleXY(ux, uy).
		Multiply(Translate(pos.X, pos.Y)).
		Multiply(RotateDeg(oriDeg)).
		Multiply(ScaleXY(size.X, size.Y))
	return pixelTransform{
		a: float32(m.A), b: float32(m.B), c: float32(m.C),
		d: float32(m.D), e: float32(m.E), f: float32(m.F),
	}
}

// apply transforms the points into dst as flat x,y pixel pairs,
// appending to dst (which may be nil or a reused buffer truncated to
// zero length).
func (t pixelTransform) apply(pts []Point, dst []float32) []float32 {
	for _, p := range pts {
		x, y := float32(p.X), float32(p.Y)
		dst = append(dst,
			t.a*x+t.b*y+t.c,
			t.d*x+t.e*y+t.f,
		)
	}
	return dst
}

// applyLoops transforms a loop set into a single flat pixel array.
// Multi-loop borders are concatenated in loop order; border drawing for
// multi-loop shapes is a documented approximation (the outline visits
// every loop in sequence).
func (t pixelTransform) applyLoops(loops []Loop, dst []float32) []float32 {
	for _, l := range loops {
		dst = t.apply(l, dst)
	}
	return dst
}
