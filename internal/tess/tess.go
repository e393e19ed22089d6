// Package tess converts polygon loops into triangle lists for filled
// GPU rendering.
//
// Two strategies are used. A single loop with no self-intersections is
// ear-clipped, which yields exactly N-2 triangles for a simple polygon
// (the fan identity holds for convex input). Multi-loop shapes, loops
// with holes, and self-intersecting outlines go through a scanline band
// sweep that resolves overlapping regions with a configurable winding
// rule, the way a GLU-style tessellator does.
//
// Triangulation is stateless per call: there is no shared tessellation
// context, so shapes on different surfaces can never bleed state into
// each other.
package tess

import "errors"

// Point is a 2D vertex in the shape's logical units.
type Point struct {
	X, Y float64
}

// WindingRule resolves which regions of a self-intersecting or
// multi-loop outline count as interior.
type WindingRule int

const (
	// WindingOdd fills regions with odd winding number (even-odd
	// parity). The default.
	WindingOdd WindingRule = iota

	// WindingNonZero fills regions with nonzero winding number.
	WindingNonZero

	// WindingPositive fills regions with positive winding number.
	WindingPositive

	// WindingNegative fills regions with negative winding number.
	WindingNegative

	// WindingAbsGeqTwo fills regions whose winding number has absolute
	// value of at least two (intersections of overlapping loops).
	WindingAbsGeqTwo
)

// inside reports whether a region with winding number w is interior
// under the rule.
func (r WindingRule) inside(w int) bool {
	switch r {
	case WindingNonZero:
		return w != 0
	case WindingPositive:
		return w > 0
	case WindingNegative:
		return w < 0
	case WindingAbsGeqTwo:
		return w >= 2 || w <= -2
	default:
		return w%2 != 0
	}
}

// String returns the rule name.
func (r WindingRule) String() string {
	switch r {
	case WindingNonZero:
		return "nonzero"
	case WindingPositive:
		return "positive"
	case WindingNegative:
		return "negative"
	case WindingAbsGeqTwo:
		return "abs>=2"
	default:
		return "odd"
	}
}

// ErrNonTriangleCount signals a corrupt triangulation result whose
// vertex count is not a multiple of 3.
var ErrNonTriangleCount = errors.New("tess: result vertex count is not a multiple of 3")

// Triangulate converts one or more vertex loops into a flat triangle
// list (every 3 points form one triangle).
//
// If closeShape is false the shape is an open polyline: no fill exists
// and triangulation is skipped entirely, returning (nil, nil).
//
// Degenerate input (loops of fewer than 3 points, zero-area outlines,
// collinear vertices) degrades to an empty result rather than an error;
// an ambiguous shape must never crash the draw path. The caller treats
// an empty result for a nominally closed shape as "no fill".
func Triangulate(loops [][]Point, rule WindingRule, closeShape bool) ([]Point, error) {
	if !closeShape {
		return nil, nil
	}

	// Loops that cannot enclose area contribute nothing to the fill.
	areaLoops := loops[:0:0]
	for _, l := range loops {
		if len(l) >= 3 {
			areaLoops = append(areaLoops, l)
		}
	}
	if len(areaLoops) == 0 {
		return nil, nil
	}

	var tris []Point
	if len(areaLoops) == 1 && isSimple(areaLoops[0]) {
		// A simple loop has winding number +1 or -1 everywhere inside,
		// so the rule reduces to a fill-or-empty decision up front.
		w := 1
		if signedArea(areaLoops[0]) < 0 {
			w = -1
		}
		if !rule.inside(w) {
			return nil, nil
		}
		var ok bool
		tris, ok = earClip(areaLoops[0])
		if !ok {
			// Numerically stuck (near-degenerate self-touching input);
			// the sweep handles it without ear ordering assumptions.
			tris = sweep(areaLoops, rule)
		}
	} else {
		tris = sweep(areaLoops, rule)
	}

	if len(tris)%3 != 0 {
		return nil, ErrNonTriangleCount
	}
	return tris, nil
}

// isSimple reports whether the closed polygon has no two non-adjacent
// edges intersecting. O(n^2), acceptable for stimulus-sized outlines.
func isSimple(loop []Point) bool {
	n := len(loop)
	for i := 0; i < n; i++ {
		a0 := loop[i]
		a1 := loop[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges sharing a vertex with edge i.
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b0 := loop[j]
			b1 := loop[(j+1)%n]
			if segmentsCross(a0, a1, b0, b1) {
				return false
			}
		}
	}
	return true
}

// segmentsCross reports whether segments a0-a1 and b0-b1 properly
// intersect (crossing in their interiors).
func segmentsCross(a0, a1, b0, b1 Point) bool {
	d1 := orient(b0, b1, a0)
	d2 := orient(b0, b1, a1)
	d3 := orient(a0, a1, b0)
	d4 := orient(a0, a1, b1)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orient returns twice the signed area of triangle (a, b, c):
// positive when c lies to the left of a->b.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
