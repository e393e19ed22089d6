package stim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostim/stim"
	"github.com/gostim/stim/backend/record"
)

func TestNewTargetStimDefaults(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{})
	require.NoError(t, err)

	assert.Equal(t, "target", tgt.Name())
	assert.Equal(t, stim.TargetCircles, tgt.Style())
	assert.Equal(t, 0.05, tgt.Radius())
	assert.Equal(t, 0.01, tgt.InnerRadius())
	assert.Equal(t, 2.0, tgt.LineWidth())

	fill, ok := tgt.Outer().FillColor()
	require.True(t, ok)
	assert.Equal(t, stim.NewColorA(stim.SpaceRGB, 1, 1, 1, 0.1), fill)

	border, ok := tgt.Outer().LineColor()
	require.True(t, ok)
	assert.Equal(t, stim.NamedColor("white"), border)

	innerFill, ok := tgt.Inner().FillColor()
	require.True(t, ok)
	assert.Equal(t, stim.NamedColor("red"), innerFill)

	_, ok = tgt.Inner().LineColor()
	assert.False(t, ok, "inner shape should have no border by default")
}

func TestTargetStimNilWindow(t *testing.T) {
	_, err := stim.NewTargetStim(nil, stim.TargetConfig{})
	assert.ErrorIs(t, err, stim.ErrNilWindow)
}

func TestTargetSetRadiusKeepsRatio(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{})
	require.NoError(t, err)

	tgt.SetRadius(0.1)
	assert.Equal(t, 0.1, tgt.Radius())
	assert.InDelta(t, 0.02, tgt.InnerRadius(), 1e-12)
}

func TestTargetSetPosMovesBothShapes(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{})
	require.NoError(t, err)

	p := stim.Pt(0.2, -0.1)
	tgt.SetPos(p)
	assert.Equal(t, p, tgt.Pos())
	assert.Equal(t, p, tgt.Outer().Pos())
	assert.Equal(t, p, tgt.Inner().Pos())
}

func TestTargetCrossStyle(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{Style: stim.TargetCross})
	require.NoError(t, err)

	assert.Equal(t, stim.TargetCross, tgt.Style())
	inner := tgt.Inner().Vertices()
	require.Len(t, inner, 1)
	assert.Len(t, inner[0], 12, "cross style inner shape should use the 12-point cross")

	tgt.SetStyle(stim.TargetCircles)
	inner = tgt.Inner().Vertices()
	assert.Len(t, inner[0], 60, "circles style inner shape should be a circle")
}

func TestTargetForeColor(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{})
	require.NoError(t, err)

	c, ok := tgt.ForeColor()
	require.True(t, ok)
	assert.Equal(t, stim.NamedColor("red"), c)

	blue := stim.NamedColor("blue")
	tgt.SetForeColor(blue)
	c, ok = tgt.ForeColor()
	require.True(t, ok)
	assert.Equal(t, blue, c)
}

func TestTargetDict(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{Radius: 0.2, InnerRadius: 0.05, LineWidth: 4})
	require.NoError(t, err)

	d := tgt.Dict()
	assert.Equal(t, 0.4, d["outer_diameter"])
	assert.Equal(t, 0.1, d["inner_diameter"])
	assert.Equal(t, 4.0, d["outer_stroke_width"])
	assert.Equal(t, 4.0, d["inner_stroke_width"])
	assert.Equal(t, stim.NewColorA(stim.SpaceRGB, 1, 1, 1, 0.1), d["outer_fill_color"])
	assert.Equal(t, stim.NamedColor("white"), d["outer_line_color"])
	assert.Equal(t, stim.NamedColor("red"), d["inner_fill_color"])
	// The inner shape has no border; the export falls back to the outer
	// border color.
	assert.Equal(t, stim.NamedColor("white"), d["inner_line_color"])
}

func TestTargetDictTransparencyFallsBackToBackground(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	win.Background = stim.NewColor(stim.SpaceRGB, 0.5, 0.5, 0.5)

	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{
		FillColor:   stim.NoColor(),
		BorderColor: stim.NoColor(),
	})
	require.NoError(t, err)

	d := tgt.Dict()
	assert.Equal(t, win.Background, d["outer_fill_color"])
	assert.Equal(t, win.Background, d["outer_line_color"])
	// With the outer border absent, the inner border fallback chains
	// down to the background too.
	assert.Equal(t, win.Background, d["inner_line_color"])
	// The inner fill keeps its own default.
	assert.Equal(t, stim.NamedColor("red"), d["inner_fill_color"])
}

func TestTargetFromDict(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	spec := map[string]any{
		"outer_diameter":     0.3,
		"inner_diameter":     0.06,
		"outer_stroke_width": 5.0,
		"inner_stroke_width": 1,
		"outer_fill_color":   "black",
		"outer_line_color":   stim.NamedColor("gray"),
		"inner_fill_color":   "lime",
	}

	tgt, err := stim.TargetFromDict(win, spec, stim.TargetConfig{})
	require.NoError(t, err)

	assert.Equal(t, 0.15, tgt.Radius())
	assert.Equal(t, 0.03, tgt.InnerRadius())
	assert.Equal(t, 5.0, tgt.LineWidth())

	fill, ok := tgt.Outer().FillColor()
	require.True(t, ok)
	assert.Equal(t, stim.NamedColor("black"), fill)

	border, ok := tgt.Outer().LineColor()
	require.True(t, ok)
	assert.Equal(t, stim.NamedColor("gray"), border)

	innerFill, ok := tgt.Inner().FillColor()
	require.True(t, ok)
	assert.Equal(t, stim.NamedColor("lime"), innerFill)

	// Keys absent from the spec mean "no paint", not "default".
	_, ok = tgt.Inner().LineColor()
	assert.False(t, ok)
}

func TestTargetDrawOrder(t *testing.T) {
	win := record.NewWindow(800, 600, false)
	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{})
	require.NoError(t, err)

	surf := record.New(false)
	require.NoError(t, tgt.Draw(surf, false))

	// Outer fill, outer border, inner fill: the inner dot must land on
	// top of the outer disc.
	var draws []record.CommandType
	for _, ct := range surf.Types() {
		switch ct {
		case record.CmdDrawTriangles, record.CmdDrawLineLoop, record.CmdDrawLineStrip:
			draws = append(draws, ct)
		}
	}
	assert.Equal(t, []record.CommandType{
		record.CmdDrawTriangles,
		record.CmdDrawLineLoop,
		record.CmdDrawTriangles,
	}, draws)
}

func TestTargetRoundOnAnisotropicUnits(t *testing.T) {
	// In norm units a pixel-square extent needs unequal sizes on a
	// non-square window: the target compensates so the marker stays
	// round on screen.
	win := record.NewWindow(800, 600, false)
	win.DefaultUnits = stim.UnitNorm

	tgt, err := stim.NewTargetStim(win, stim.TargetConfig{Radius: 0.1})
	require.NoError(t, err)

	size := tgt.Outer().Size()
	assert.InDelta(t, 0.2, size.Y, 1e-12)
	assert.InDelta(t, 0.2*300.0/400.0, size.X, 1e-12)
}
