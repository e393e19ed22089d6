package tess

// earClip triangulates a simple polygon by iteratively clipping ears.
// Returns ok=false only when no ear can be found before the polygon is
// exhausted, which indicates the input was not actually simple enough
// for this strategy; the caller then falls back to the sweep.
//
// A degenerate loop (zero enclosed area, or fewer than 3 distinct
// vertices after deduplication) yields (nil, true): an empty fill, not
// a failure.
func earClip(loop []Point) ([]Point, bool) {
	pts := dedupe(loop)
	if len(pts) < 3 {
		return nil, true
	}

	area := signedArea(pts)
	if area == 0 {
		return nil, true
	}
	// Work in counter-clockwise orientation so ear tests are sign-fixed.
	if area < 0 {
		reverse(pts)
	}

	if isConvex(pts) {
		return fan(pts), true
	}

	tris := make([]Point, 0, (len(pts)-2)*3)
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}

	for len(idx) > 3 {
		clipped := false
		for k := 0; k < len(idx); k++ {
			prev := idx[(k+len(idx)-1)%len(idx)]
			cur := idx[k]
			next := idx[(k+1)%len(idx)]
			if !isEar(pts, idx, prev, cur, next) {
				continue
			}
			if orient(pts[prev], pts[cur], pts[next]) > 0 {
				tris = append(tris, pts[prev], pts[cur], pts[next])
			}
			idx = append(idx[:k], idx[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, false
		}
	}
	if orient(pts[idx[0]], pts[idx[1]], pts[idx[2]]) != 0 {
		tris = append(tris, pts[idx[0]], pts[idx[1]], pts[idx[2]])
	}
	return tris, true
}

// isEar reports whether vertex cur forms a clippable ear: the corner is
// convex (or flat) and no remaining vertex lies strictly inside the
// candidate triangle.
func isEar(pts []Point, idx []int, prev, cur, next int) bool {
	if orient(pts[prev], pts[cur], pts[next]) < 0 {
		return false
	}
	for _, i := range idx {
		if i == prev || i == cur || i == next {
			continue
		}
		if pointInTriangle(pts[i], pts[prev], pts[cur], pts[next]) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies strictly inside triangle abc
// (assumed counter-clockwise).
func pointInTriangle(p, a, b, c Point) bool {
	return orient(a, b, p) > 0 && orient(b, c, p) > 0 && orient(c, a, p) > 0
}

// isConvex reports whether the polygon (assumed counter-clockwise) has
// no reflex corner. Flat (collinear) corners are allowed.
func isConvex(pts []Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		if orient(pts[i], pts[(i+1)%n], pts[(i+2)%n]) < 0 {
			return false
		}
	}
	return true
}

// fan emits the triangle fan (v0, vi, vi+1), skipping zero-area
// triangles from collinear runs. For a clean convex polygon this is
// exactly N-2 triangles.
func fan(pts []Point) []Point {
	tris := make([]Point, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		if orient(pts[0], pts[i], pts[i+1]) == 0 {
			continue
		}
		tris = append(tris, pts[0], pts[i], pts[i+1])
	}
	return tris
}

// signedArea returns twice the signed area of the polygon: positive for
// counter-clockwise winding (with +Y up).
func signedArea(pts []Point) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum
}

// dedupe drops consecutive duplicate vertices and a trailing vertex
// equal to the first, copying the input.
func dedupe(loop []Point) []Point {
	out := make([]Point, 0, len(loop))
	for _, p := range loop {
		if len(out) > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
