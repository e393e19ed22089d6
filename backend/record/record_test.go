package record_test

import (
	"strings"
	"testing"

	"github.com/gostim/stim"
	"github.com/gostim/stim/backend/record"
)

var (
	_ stim.Surface       = (*record.Surface)(nil)
	_ stim.Surface       = (*record.Window)(nil)
	_ stim.WindowMetrics = (*record.Window)(nil)
)

func TestRecordsCommandStream(t *testing.T) {
	s := record.New(true)
	if !s.HasShaders() {
		t.Error("HasShaders() = false, want true")
	}

	s.UseProgram(stim.ProgramSignedColor)
	s.PushMatrix()
	s.SetScalePix()
	s.DisableTexturing(0)
	s.SetLineSmoothing(true)
	s.DrawTriangles([]float32{0, 0, 1, 0, 0, 1}, stim.RGBA{R: 1, A: 1})
	s.DrawLineLoop([]float32{0, 0, 1, 1}, 2, stim.RGBA{A: 1})
	s.DrawLineStrip([]float32{0, 0, 1, 1}, 3, stim.RGBA{A: 1})
	s.PopMatrix()

	want := []record.CommandType{
		record.CmdUseProgram,
		record.CmdPushMatrix,
		record.CmdSetScalePix,
		record.CmdDisableTexturing,
		record.CmdSetLineSmoothing,
		record.CmdDrawTriangles,
		record.CmdDrawLineLoop,
		record.CmdDrawLineStrip,
		record.CmdPopMatrix,
	}
	got := s.Types()
	if len(got) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRecordedVerticesAreCopies(t *testing.T) {
	s := record.New(false)
	verts := []float32{0, 0, 1, 0, 0, 1}
	s.DrawTriangles(verts, stim.RGBA{})
	verts[0] = 99

	cmd := s.Commands()[0].(record.DrawTriangles)
	if cmd.Verts[0] == 99 {
		t.Error("recorded vertices alias the caller's slice")
	}
}

func TestReset(t *testing.T) {
	s := record.New(false)
	s.PushMatrix()
	s.PopMatrix()
	s.Reset()
	if n := len(s.Commands()); n != 0 {
		t.Errorf("commands after Reset = %d, want 0", n)
	}
}

func TestString(t *testing.T) {
	s := record.New(false)
	s.PushMatrix()
	s.DrawTriangles([]float32{0, 0, 1, 0, 0, 1}, stim.RGBA{})

	out := s.String()
	if !strings.Contains(out, "PushMatrix") || !strings.Contains(out, "DrawTriangles") {
		t.Errorf("String() = %q", out)
	}
}

func TestCommandTypeString(t *testing.T) {
	if got := record.CmdDrawLineLoop.String(); got != "DrawLineLoop" {
		t.Errorf("got %q", got)
	}
	if got := record.CommandType(200).String(); got != "Unknown" {
		t.Errorf("got %q", got)
	}
}

func TestNewWindowMetrics(t *testing.T) {
	w := record.NewWindow(1024, 768, true)

	pw, ph := w.SizePix()
	if pw != 1024 || ph != 768 {
		t.Errorf("SizePix() = (%d, %d)", pw, ph)
	}
	if w.WidthCM() != 40 || w.ViewDistanceCM() != 57 {
		t.Errorf("bench metrics = (%v, %v), want (40, 57)", w.WidthCM(), w.ViewDistanceCM())
	}
	if w.Units() != stim.UnitHeight {
		t.Errorf("Units() = %q, want height", w.Units())
	}
	if !w.HasShaders() {
		t.Error("HasShaders() = false, want true")
	}
}
