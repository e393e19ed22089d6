package stim

import "math"

// Point is a 2D location in the shape's logical unit system,
// relative to the shape center. +X is right and +Y is up.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled component-wise by q.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
// Useful for orientation tests during tessellation.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the distance of the point from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Rotate returns the point rotated by angle radians counter-clockwise
// around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Approx returns true if two points are equal within epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// Loop is an ordered sequence of vertices defining one contour of a
// shape. A loop with a single point is a degenerate marker (a bare
// coordinate, not a drawable edge). Whether the last vertex connects
// back to the first is a property of the owning shape (closeShape),
// not of the loop itself.
type Loop []Point

// clone returns a deep copy of the loop.
func (l Loop) clone() Loop {
	out := make(Loop, len(l))
	copy(out, l)
	return out
}

// cloneLoops returns a deep copy of a loop set.
func cloneLoops(loops []Loop) []Loop {
	out := make([]Loop, len(loops))
	for i, l := range loops {
		out[i] = l.clone()
	}
	return out
}
