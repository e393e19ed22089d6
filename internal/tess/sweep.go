package tess

import (
	"math"
	"sort"
)

// sweepEps merges event coordinates closer than this, and rejects
// slivers thinner than this, to keep band classification stable.
const sweepEps = 1e-9

// edge is a non-horizontal polygon edge normalized so y0 < y1.
// dir records the original direction: +1 if the outline traversed the
// edge upward (+Y), -1 downward. Summing dir over the edges to the
// right of a region gives that region's winding number.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int
}

// xAt returns the edge's x coordinate at height y by linear
// interpolation.
func (e edge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + t*(e.x1-e.x0)
}

// sweep triangulates an arbitrary loop set by slicing the plane into
// horizontal bands at every vertex and every edge intersection, then
// classifying each trapezoidal span inside a band by its winding number
// under the rule. Each interior trapezoid contributes two triangles.
//
// This is O(n^2) in the edge count, which is fine at stimulus scale
// and avoids the ordering fragility of sweep-status structures.
func sweep(loops [][]Point, rule WindingRule) []Point {
	edges := buildEdges(loops)
	if len(edges) == 0 {
		return nil
	}

	ys := eventYs(edges)
	if len(ys) < 2 {
		return nil
	}

	var tris []Point
	type crossing struct {
		x float64
		e edge
	}
	var active []crossing

	for b := 0; b < len(ys)-1; b++ {
		y0, y1 := ys[b], ys[b+1]
		if y1-y0 <= sweepEps {
			continue
		}
		mid := (y0 + y1) / 2

		active = active[:0]
		for _, e := range edges {
			if e.y0 < mid && mid < e.y1 {
				active = append(active, crossing{x: e.xAt(mid), e: e})
			}
		}
		if len(active) < 2 {
			continue
		}
		sort.Slice(active, func(i, j int) bool { return active[i].x < active[j].x })

		// Winding of the span after crossing k is the sum of directions
		// of all edges strictly to its right.
		winding := 0
		suffix := make([]int, len(active)+1)
		for k := len(active) - 1; k >= 0; k-- {
			winding += active[k].e.dir
			suffix[k] = winding
		}

		for k := 0; k+1 < len(active); k++ {
			if !rule.inside(suffix[k+1]) {
				continue
			}
			l, r := active[k].e, active[k+1].e
			lx0, lx1 := l.xAt(y0), l.xAt(y1)
			rx0, rx1 := r.xAt(y0), r.xAt(y1)
			tris = appendTriangle(tris,
				Point{lx0, y0}, Point{rx0, y0}, Point{rx1, y1})
			tris = appendTriangle(tris,
				Point{lx0, y0}, Point{rx1, y1}, Point{lx1, y1})
		}
	}
	return tris
}

// appendTriangle appends a triangle unless it is degenerate.
func appendTriangle(tris []Point, a, b, c Point) []Point {
	if math.Abs(orient(a, b, c)) <= sweepEps {
		return tris
	}
	return append(tris, a, b, c)
}

// buildEdges flattens the loop set into normalized edges, implicitly
// closing each loop and dropping horizontal edges (they never cross a
// band midline).
func buildEdges(loops [][]Point) []edge {
	var edges []edge
	for _, loop := range loops {
		n := len(loop)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p := loop[i]
			q := loop[(i+1)%n]
			if p.Y == q.Y {
				continue
			}
			if p.Y < q.Y {
				edges = append(edges, edge{x0: p.X, y0: p.Y, x1: q.X, y1: q.Y, dir: +1})
			} else {
				edges = append(edges, edge{x0: q.X, y0: q.Y, x1: p.X, y1: p.Y, dir: -1})
			}
		}
	}
	return edges
}

// eventYs returns the sorted, deduplicated set of band boundaries:
// every edge endpoint plus every pairwise edge intersection. Including
// intersections guarantees edges do not swap horizontal order inside a
// band, so midline sampling classifies every span correctly even for
// self-intersecting outlines.
func eventYs(edges []edge) []float64 {
	ys := make([]float64, 0, len(edges)*2)
	for _, e := range edges {
		ys = append(ys, e.y0, e.y1)
	}
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if y, ok := intersectY(edges[i], edges[j]); ok {
				ys = append(ys, y)
			}
		}
	}
	sort.Float64s(ys)

	out := ys[:0]
	for _, y := range ys {
		if len(out) == 0 || y-out[len(out)-1] > sweepEps {
			out = append(out, y)
		}
	}
	return out
}

// intersectY returns the y coordinate where two edges cross, if they
// properly intersect in their interiors.
func intersectY(a, b edge) (float64, bool) {
	rX, rY := a.x1-a.x0, a.y1-a.y0
	sX, sY := b.x1-b.x0, b.y1-b.y0
	denom := rX*sY - rY*sX
	if math.Abs(denom) <= sweepEps {
		return 0, false // parallel or collinear
	}
	qpX, qpY := b.x0-a.x0, b.y0-a.y0
	t := (qpX*sY - qpY*sX) / denom
	u := (qpX*rY - qpY*rX) / denom
	if t <= sweepEps || t >= 1-sweepEps || u <= sweepEps || u >= 1-sweepEps {
		return 0, false
	}
	return a.y0 + t*rY, true
}
