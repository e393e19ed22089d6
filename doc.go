// Package stim renders 2D vector shape stimuli for visual presentation
// in behavioral and psychophysics experiments.
//
// # Overview
//
// The central type is [ShapeStim]: an arbitrary polygon, polyline, or
// multi-loop outline defined by vertex locations in a logical unit system
// (pixels, normalized coordinates, centimeters, or degrees of visual
// angle). Shapes carry independent fill and border colors, can be moved,
// rotated and scaled per frame, and are submitted to a rendering
// [Surface] as a fill pass (tessellated triangles) followed by a border
// pass (line loop or strip).
//
// # Quick Start
//
//	import "github.com/gostim/stim"
//
//	shape, err := stim.NewShapeStim(win,
//	    stim.WithVertices("cross"),
//	    stim.WithFillColor(stim.NamedColor("white")),
//	    stim.WithLineColor(stim.NamedColor("black")),
//	    stim.WithUnits(stim.UnitHeight),
//	)
//	if err != nil {
//	    ...
//	}
//
//	// once per presentation frame:
//	shape.SetOri(shape.Ori() + 1)
//	shape.Draw(nil, false)
//
// # Laziness
//
// Mutating vertices, size, position, orientation, or units only marks
// the shape dirty. Tessellation and the logical-to-pixel transform run
// on the first subsequent read of the pixel vertex arrays (typically the
// next Draw), so a burst of property updates before a frame costs exactly
// one recomputation. This keeps per-frame timing deterministic, which is
// what the presentation toolkit needs for stimulus-onset accuracy.
//
// # Architecture
//
// The package is organized into:
//   - Public API: ShapeStim, TargetStim, Color, Surface, WindowMetrics
//   - Internal: tess (polygon tessellation with winding rules)
//   - Surfaces: backend/record (command recording), backend/ebitensurface
//
// # Coordinate System
//
// Shape vertices are relative to the shape center, +x right and +y up
// (the presentation toolkit's screen convention, not image convention).
// Orientation is in degrees, counter-clockwise positive.
package stim
