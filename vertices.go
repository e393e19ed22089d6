package stim

import "fmt"

// normalizeVertices converts the accepted vertex input forms into the
// canonical loop-set representation:
//
//   - string: a named preset ("cross", "star7", "circle", ...)
//   - float64 / int: a degenerate loop of one point (v, v)
//   - Point or [2]float64: a degenerate loop of one point
//   - Loop, []Point, [][2]float64, [][]float64: a single loop
//   - []Loop: a multi-loop shape (e.g. an outline with holes)
//
// Anything else, an unknown preset name, an empty loop, or an empty
// loop list fails with ErrInvalidVertexShape. The result is freshly
// allocated and shares no memory with the input.
func normalizeVertices(v any) ([]Loop, error) {
	switch t := v.(type) {
	case string:
		loop, ok := resolvePreset(t)
		if !ok {
			return nil, fmt.Errorf("%w: unknown shape name %q", ErrInvalidVertexShape, t)
		}
		return []Loop{loop}, nil

	case int:
		f := float64(t)
		return []Loop{{Point{X: f, Y: f}}}, nil

	case float64:
		return []Loop{{Point{X: t, Y: t}}}, nil

	case Point:
		return []Loop{{t}}, nil

	case [2]float64:
		return []Loop{{Point{X: t[0], Y: t[1]}}}, nil

	case Loop:
		return singleLoop(t.clone())

	case []Point:
		return singleLoop(Loop(t).clone())

	case [][2]float64:
		loop := make(Loop, len(t))
		for i, p := range t {
			loop[i] = Point{X: p[0], Y: p[1]}
		}
		return singleLoop(loop)

	case [][]float64:
		loop := make(Loop, len(t))
		for i, p := range t {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: vertex %d has %d coordinates", ErrInvalidVertexShape, i, len(p))
			}
			loop[i] = Point{X: p[0], Y: p[1]}
		}
		return singleLoop(loop)

	case []Loop:
		if len(t) == 0 {
			return nil, fmt.Errorf("%w: empty loop list", ErrInvalidVertexShape)
		}
		out := make([]Loop, len(t))
		for i, l := range t {
			if len(l) == 0 {
				return nil, fmt.Errorf("%w: loop %d is empty", ErrInvalidVertexShape, i)
			}
			out[i] = l.clone()
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidVertexShape, v)
	}
}

func singleLoop(l Loop) ([]Loop, error) {
	if len(l) == 0 {
		return nil, fmt.Errorf("%w: empty loop", ErrInvalidVertexShape)
	}
	return []Loop{l}, nil
}

// vertexCount returns the total number of points across all loops.
func vertexCount(loops []Loop) int {
	n := 0
	for _, l := range loops {
		n += len(l)
	}
	return n
}
