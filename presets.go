package stim

import (
	"math"
	"strings"
)

// circleSegments is the number of edges used for the "circle" preset.
// 60 edges keep the outline visually round at typical stimulus sizes
// while staying a guaranteed simple loop.
const circleSegments = 60

// knownShapes maps symbolic vertex names to fixed loops in logical
// units, spanning roughly -0.5..+0.5 so size acts as the bounding
// extent. The table is populated once at init and read-only afterwards.
var knownShapes = map[string]Loop{
	"cross": {
		{-0.1, +0.5}, // up
		{+0.1, +0.5},
		{+0.1, +0.1},
		{+0.5, +0.1}, // right
		{+0.5, -0.1},
		{+0.1, -0.1},
		{+0.1, -0.5}, // down
		{-0.1, -0.5},
		{-0.1, -0.1},
		{-0.5, -0.1}, // left
		{-0.5, +0.1},
		{-0.1, +0.1},
	},
	"star7": {
		{0.0, 0.5}, {0.09, 0.18}, {0.39, 0.31}, {0.19, 0.04},
		{0.49, -0.11}, {0.16, -0.12}, {0.22, -0.45}, {0.0, -0.2},
		{-0.22, -0.45}, {-0.16, -0.12}, {-0.49, -0.11}, {-0.19, 0.04},
		{-0.39, 0.31}, {-0.09, 0.18},
	},
	"triangle": {
		{-0.5, 0}, {0, +0.5}, {+0.5, 0},
	},
	"rectangle": {
		{-0.5, -0.5}, {+0.5, -0.5}, {+0.5, +0.5}, {-0.5, +0.5},
	},
}

func init() {
	knownShapes["circle"] = regularLoop(circleSegments, 0.5, 0)
}

// regularLoop returns the vertices of a regular n-gon of the given
// radius, starting at the given rotation (radians). The loop is wound
// counter-clockwise and always simple.
func regularLoop(n int, radius, rotation float64) Loop {
	angle := 2 * math.Pi / float64(n)
	spoke := Pt(radius, 0)
	loop := make(Loop, n)
	for i := 0; i < n; i++ {
		loop[i] = spoke.Rotate(rotation + angle*float64(i))
	}
	return loop
}

// resolvePreset looks up a named vertex preset. Lookup is
// case-insensitive; the returned loop is a copy the caller owns.
func resolvePreset(name string) (Loop, bool) {
	l, ok := knownShapes[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return l.clone(), true
}
