package stim

import "fmt"

// NewPolygon creates a regular polygon with the given number of edges,
// circumscribed by the given radius in the shape's units.
//
// The loop is computed here and guaranteed simple, so filling uses a
// direct triangle fan and never runs the tessellator; the close-shape
// flag is fixed at construction.
func NewPolygon(win WindowMetrics, edges int, radius float64, opts ...Option) (*ShapeStim, error) {
	if edges < 3 {
		return nil, fmt.Errorf("%w: a polygon needs at least 3 edges, got %d", ErrInvalidVertexShape, edges)
	}
	loop := regularLoop(edges, radius, 0)
	return NewShapeStim(win, append(opts, withComputedLoop(loop, true))...)
}

// NewCircle creates a circle of the given radius, approximated by a
// regular polygon with enough edges to look round at stimulus sizes.
func NewCircle(win WindowMetrics, radius float64, opts ...Option) (*ShapeStim, error) {
	loop := regularLoop(circleSegments, radius, 0)
	return NewShapeStim(win, append(opts, withComputedLoop(loop, true))...)
}

// NewRect creates an axis-aligned rectangle of the given width and
// height, centered on the shape position.
func NewRect(win WindowMetrics, width, height float64, opts ...Option) (*ShapeStim, error) {
	w, h := width/2, height/2
	loop := Loop{{-w, -h}, {+w, -h}, {+w, +h}, {-w, +h}}
	return NewShapeStim(win, append(opts, withComputedLoop(loop, true))...)
}

// NewLine creates a straight line segment between two points. Lines are
// open shapes with no fill; only the border pass draws.
func NewLine(win WindowMetrics, start, end Point, opts ...Option) (*ShapeStim, error) {
	loop := Loop{start, end}
	opts = append(opts, WithNoFill(), withComputedLoop(loop, false))
	return NewShapeStim(win, opts...)
}
