// Package record provides a command-recording Surface.
//
// The recording surface captures the draw protocol as typed command
// structures instead of submitting GPU work. Typed structs keep the
// stream inspectable and debuggable; tests assert on the exact command
// order, and experiment scripts can dump a frame's submission sequence
// when diagnosing rendering problems.
package record

import (
	"fmt"
	"strings"

	"github.com/gostim/stim"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// CmdUseProgram binds or unbinds a shader program.
	CmdUseProgram CommandType = iota
	// CmdPushMatrix saves a transform stack entry.
	CmdPushMatrix
	// CmdPopMatrix restores a transform stack entry.
	CmdPopMatrix
	// CmdSetScalePix switches to device-pixel coordinates.
	CmdSetScalePix
	// CmdDisableTexturing clears a texture unit.
	CmdDisableTexturing
	// CmdSetLineSmoothing sets the antialiasing state.
	CmdSetLineSmoothing
	// CmdDrawTriangles submits fill triangles.
	CmdDrawTriangles
	// CmdDrawLineLoop submits a closed border outline.
	CmdDrawLineLoop
	// CmdDrawLineStrip submits an open border polyline.
	CmdDrawLineStrip
)

var commandTypeNames = [...]string{
	CmdUseProgram:       "UseProgram",
	CmdPushMatrix:       "PushMatrix",
	CmdPopMatrix:        "PopMatrix",
	CmdSetScalePix:      "SetScalePix",
	CmdDisableTexturing: "DisableTexturing",
	CmdSetLineSmoothing: "SetLineSmoothing",
	CmdDrawTriangles:    "DrawTriangles",
	CmdDrawLineLoop:     "DrawLineLoop",
	CmdDrawLineStrip:    "DrawLineStrip",
}

// String returns the command type name.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all recorded command types.
type Command interface {
	Type() CommandType
}

// UseProgram records a program bind/unbind.
type UseProgram struct{ Program stim.Program }

// PushMatrix records a transform stack push.
type PushMatrix struct{}

// PopMatrix records a transform stack pop.
type PopMatrix struct{}

// SetScalePix records the switch to device-pixel coordinates.
type SetScalePix struct{}

// DisableTexturing records clearing a texture unit.
type DisableTexturing struct{ Unit int }

// SetLineSmoothing records the antialiasing state.
type SetLineSmoothing struct{ On bool }

// DrawTriangles records a fill submission. Verts is a copy of the
// submitted pixel vertices.
type DrawTriangles struct {
	Verts []float32
	Color stim.RGBA
}

// DrawLineLoop records a closed-border submission.
type DrawLineLoop struct {
	Verts []float32
	Width float32
	Color stim.RGBA
}

// DrawLineStrip records an open-border submission.
type DrawLineStrip struct {
	Verts []float32
	Width float32
	Color stim.RGBA
}

// Type implementations.
func (UseProgram) Type() CommandType       { return CmdUseProgram }
func (PushMatrix) Type() CommandType       { return CmdPushMatrix }
func (PopMatrix) Type() CommandType        { return CmdPopMatrix }
func (SetScalePix) Type() CommandType      { return CmdSetScalePix }
func (DisableTexturing) Type() CommandType { return CmdDisableTexturing }
func (SetLineSmoothing) Type() CommandType { return CmdSetLineSmoothing }
func (DrawTriangles) Type() CommandType    { return CmdDrawTriangles }
func (DrawLineLoop) Type() CommandType     { return CmdDrawLineLoop }
func (DrawLineStrip) Type() CommandType    { return CmdDrawLineStrip }

// Surface records the draw protocol. It implements [stim.Surface].
// The zero value records with HasShaders() == false; use New to
// configure a shader-capable recording surface.
//
// Surface is not safe for concurrent use, matching the single-threaded
// frame loop it stands in for.
type Surface struct {
	shaders  bool
	commands []Command
}

// New creates a recording surface. withShaders controls what
// HasShaders reports, so tests can cover both protocol variants.
func New(withShaders bool) *Surface {
	return &Surface{shaders: withShaders}
}

// HasShaders implements stim.Surface.
func (s *Surface) HasShaders() bool { return s.shaders }

// UseProgram implements stim.Surface.
func (s *Surface) UseProgram(p stim.Program) {
	s.append(UseProgram{Program: p})
}

// PushMatrix implements stim.Surface.
func (s *Surface) PushMatrix() { s.append(PushMatrix{}) }

// PopMatrix implements stim.Surface.
func (s *Surface) PopMatrix() { s.append(PopMatrix{}) }

// SetScalePix implements stim.Surface.
func (s *Surface) SetScalePix() { s.append(SetScalePix{}) }

// DisableTexturing implements stim.Surface.
func (s *Surface) DisableTexturing(unit int) {
	s.append(DisableTexturing{Unit: unit})
}

// SetLineSmoothing implements stim.Surface.
func (s *Surface) SetLineSmoothing(on bool) {
	s.append(SetLineSmoothing{On: on})
}

// DrawTriangles implements stim.Surface.
func (s *Surface) DrawTriangles(verts []float32, c stim.RGBA) {
	s.append(DrawTriangles{Verts: copyVerts(verts), Color: c})
}

// DrawLineLoop implements stim.Surface.
func (s *Surface) DrawLineLoop(verts []float32, width float32, c stim.RGBA) {
	s.append(DrawLineLoop{Verts: copyVerts(verts), Width: width, Color: c})
}

// DrawLineStrip implements stim.Surface.
func (s *Surface) DrawLineStrip(verts []float32, width float32, c stim.RGBA) {
	s.append(DrawLineStrip{Verts: copyVerts(verts), Width: width, Color: c})
}

func (s *Surface) append(c Command) {
	s.commands = append(s.commands, c)
	stim.Logger().Debug("recorded command", "type", c.Type().String())
}

func copyVerts(verts []float32) []float32 {
	out := make([]float32, len(verts))
	copy(out, verts)
	return out
}

// Commands returns the recorded command stream.
func (s *Surface) Commands() []Command { return s.commands }

// Types returns just the command type sequence, the usual shape for
// protocol-order assertions.
func (s *Surface) Types() []CommandType {
	out := make([]CommandType, len(s.commands))
	for i, c := range s.commands {
		out[i] = c.Type()
	}
	return out
}

// Reset discards the recorded commands, keeping capacity for reuse
// across frames.
func (s *Surface) Reset() { s.commands = s.commands[:0] }

// String dumps the command stream one command per line.
func (s *Surface) String() string {
	var b strings.Builder
	for i, c := range s.commands {
		fmt.Fprintf(&b, "%3d %s\n", i, c.Type())
	}
	return b.String()
}

// Window is a recording surface with fixed window metrics, usable as a
// complete stand-in for a presentation window in tests and dry runs.
type Window struct {
	Surface

	WidthPix, HeightPix int
	ScreenWidthCM       float64
	ViewDistCM          float64
	Background          stim.Color
	DefaultUnits        stim.Units
}

// NewWindow creates a recording window with the given pixel size and
// conventional psychophysics bench metrics (40 cm wide screen viewed
// from 57 cm, where 1 cm subtends about 1 degree).
func NewWindow(widthPix, heightPix int, withShaders bool) *Window {
	return &Window{
		Surface:       Surface{shaders: withShaders},
		WidthPix:      widthPix,
		HeightPix:     heightPix,
		ScreenWidthCM: 40,
		ViewDistCM:    57,
		Background:    stim.NewColor(stim.SpaceRGB, 0, 0, 0),
		DefaultUnits:  stim.UnitHeight,
	}
}

// SizePix implements stim.WindowMetrics.
func (w *Window) SizePix() (int, int) { return w.WidthPix, w.HeightPix }

// WidthCM implements stim.WindowMetrics.
func (w *Window) WidthCM() float64 { return w.ScreenWidthCM }

// ViewDistanceCM implements stim.WindowMetrics.
func (w *Window) ViewDistanceCM() float64 { return w.ViewDistCM }

// BackgroundColor implements stim.WindowMetrics.
func (w *Window) BackgroundColor() stim.Color { return w.Background }

// Units implements stim.WindowMetrics.
func (w *Window) Units() stim.Units { return w.DefaultUnits }
