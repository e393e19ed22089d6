// Package ebitensurface implements a stim Surface on top of an Ebiten
// game window.
//
// Fill passes go through (*ebiten.Image).DrawTriangles with a 1x1 white
// source (the standard flat-color idiom), and border passes are stroked
// into triangles with ebiten's vector package. The surface also carries
// the physical window metrics the transform pipeline needs, so it can
// serve as a shape's window directly:
//
//	surf := ebitensurface.New(ebitensurface.Config{WidthCM: 40, ViewDistanceCM: 57})
//	shape, _ := stim.NewShapeStim(surf, stim.WithVertices("cross"))
//
//	func (g *game) Draw(screen *ebiten.Image) {
//	    surf.SetTarget(screen)
//	    shape.Draw(surf, false)
//	}
package ebitensurface

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gostim/stim"
)

// whiteImage is the flat-color source for DrawTriangles. The 1x1
// sub-image of a 3x3 white image avoids bleeding at texel edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Config holds the physical metrics of the display an Ebiten window
// runs on. Zero values fall back to a conventional bench setup.
type Config struct {
	// WidthCM is the physical display width; 40 when zero.
	WidthCM float64

	// ViewDistanceCM is the observer distance; 57 when zero.
	ViewDistanceCM float64

	// Background is the window clear color, used by calibration
	// exports as the transparency fallback.
	Background stim.Color

	// Units is the window's default unit system; height when empty.
	Units stim.Units
}

// Surface renders stim draw submissions into an ebiten.Image. It
// implements both stim.Surface and stim.WindowMetrics.
//
// Incoming vertices are in the shape core's pixel space (origin at the
// window center, +Y up); the surface converts to Ebiten's top-left
// origin at submission time.
type Surface struct {
	cfg    Config
	target *ebiten.Image
	smooth bool

	// scratch buffers reused across submissions within a frame
	verts   []ebiten.Vertex
	indices []uint16
}

// New creates an Ebiten-backed surface.
func New(cfg Config) *Surface {
	if cfg.WidthCM == 0 {
		cfg.WidthCM = 40
	}
	if cfg.ViewDistanceCM == 0 {
		cfg.ViewDistanceCM = 57
	}
	if cfg.Units == "" {
		cfg.Units = stim.UnitHeight
	}
	return &Surface{cfg: cfg}
}

// SetTarget points the surface at this frame's destination image.
// Call it at the top of the game's Draw callback.
func (s *Surface) SetTarget(dst *ebiten.Image) { s.target = dst }

// SizePix implements stim.WindowMetrics.
func (s *Surface) SizePix() (int, int) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

// WidthCM implements stim.WindowMetrics.
func (s *Surface) WidthCM() float64 { return s.cfg.WidthCM }

// ViewDistanceCM implements stim.WindowMetrics.
func (s *Surface) ViewDistanceCM() float64 { return s.cfg.ViewDistanceCM }

// BackgroundColor implements stim.WindowMetrics.
func (s *Surface) BackgroundColor() stim.Color { return s.cfg.Background }

// Units implements stim.WindowMetrics.
func (s *Surface) Units() stim.Units { return s.cfg.Units }

// HasShaders reports false: Ebiten manages its own pipeline, so the
// protocol's program-binding steps are skipped.
func (s *Surface) HasShaders() bool { return false }

// UseProgram implements stim.Surface; nothing to bind.
func (s *Surface) UseProgram(stim.Program) {}

// PushMatrix implements stim.Surface. Ebiten has no client transform
// stack; incoming vertices are already in device pixels.
func (s *Surface) PushMatrix() {}

// PopMatrix implements stim.Surface.
func (s *Surface) PopMatrix() {}

// SetScalePix implements stim.Surface.
func (s *Surface) SetScalePix() {}

// DisableTexturing implements stim.Surface. Flat-color submissions
// always use the white source image, so there is no stray texture
// state to clear.
func (s *Surface) DisableTexturing(int) {}

// SetLineSmoothing implements stim.Surface.
func (s *Surface) SetLineSmoothing(on bool) { s.smooth = on }

// DrawTriangles implements stim.Surface.
func (s *Surface) DrawTriangles(verts []float32, c stim.RGBA) {
	if s.target == nil || len(verts) < 6 {
		return
	}
	cx, cy := s.center()

	s.verts = s.verts[:0]
	s.indices = s.indices[:0]
	for i := 0; i+1 < len(verts); i += 2 {
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   cx + verts[i],
			DstY:   cy - verts[i+1],
			SrcX:   1,
			SrcY:   1,
			ColorR: c.R,
			ColorG: c.G,
			ColorB: c.B,
			ColorA: c.A,
		})
		s.indices = append(s.indices, uint16(i/2))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: s.smooth}
	s.target.DrawTriangles(s.verts, s.indices, whiteSubImage, op)
}

// DrawLineLoop implements stim.Surface.
func (s *Surface) DrawLineLoop(verts []float32, width float32, c stim.RGBA) {
	s.strokePath(verts, width, c, true)
}

// DrawLineStrip implements stim.Surface.
func (s *Surface) DrawLineStrip(verts []float32, width float32, c stim.RGBA) {
	s.strokePath(verts, width, c, false)
}

func (s *Surface) strokePath(verts []float32, width float32, c stim.RGBA, closed bool) {
	if s.target == nil || len(verts) < 4 {
		return
	}
	if width < 0 {
		// GL drivers reject negative widths; match the visible
		// outcome of a zero-thickness line.
		return
	}
	cx, cy := s.center()

	var path vector.Path
	path.MoveTo(cx+verts[0], cy-verts[1])
	for i := 2; i+1 < len(verts); i += 2 {
		path.LineTo(cx+verts[i], cy-verts[i+1])
	}
	if closed {
		path.Close()
	}

	op := &vector.StrokeOptions{Width: width, MiterLimit: 10}
	s.verts, s.indices = path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.indices[:0], op)
	for i := range s.verts {
		s.verts[i].SrcX = 1
		s.verts[i].SrcY = 1
		s.verts[i].ColorR = c.R
		s.verts[i].ColorG = c.G
		s.verts[i].ColorB = c.B
		s.verts[i].ColorA = c.A
	}

	dop := &ebiten.DrawTrianglesOptions{AntiAlias: s.smooth}
	s.target.DrawTriangles(s.verts, s.indices, whiteSubImage, dop)
}

func (s *Surface) center() (float32, float32) {
	w, h := s.SizePix()
	return float32(w) / 2, float32(h) / 2
}
