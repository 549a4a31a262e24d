package sketch

import (
	"strings"
	"testing"
)

func TestRecorderCapturesCommands(t *testing.T) {
	r := NewRecorder()
	r.SetPen(NewPen(Red))
	r.DrawLine(0, 0, 10, 10)
	r.DrawRect(R(1, 2, 3, 4))
	r.DrawEllipse(R(0, 0, 5, 5))

	if got := r.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}
	if got := r.CountOp(OpLine); got != 1 {
		t.Errorf("CountOp(OpLine) = %d, want 1", got)
	}
	cmd, ok := r.Last(OpRect)
	if !ok {
		t.Fatal("Last(OpRect) reported no command")
	}
	if cmd.Frame != R(1, 2, 3, 4) {
		t.Errorf("rect frame = %v, want %v", cmd.Frame, R(1, 2, 3, 4))
	}
}

func TestRecorderLastReturnsMostRecent(t *testing.T) {
	r := NewRecorder()
	r.DrawLine(0, 0, 1, 1)
	r.DrawLine(2, 2, 3, 3)

	cmd, ok := r.Last(OpLine)
	if !ok {
		t.Fatal("Last(OpLine) reported no command")
	}
	if cmd.X0 != 2 || cmd.Y0 != 2 {
		t.Errorf("last line starts at (%v, %v), want (2, 2)", cmd.X0, cmd.Y0)
	}
}

func TestRecorderChordAngles(t *testing.T) {
	r := NewRecorder()
	r.DrawChord(R(0, 0, 10, 10), 45*16, 90*16)

	cmd, ok := r.Last(OpChord)
	if !ok {
		t.Fatal("Last(OpChord) reported no command")
	}
	if cmd.Start16 != 720 || cmd.Sweep16 != 1440 {
		t.Errorf("chord angles = (%d, %d), want (720, 1440)", cmd.Start16, cmd.Sweep16)
	}
}

func TestRecorderPolygonCopiesPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(5, 8)}
	r := NewRecorder()
	r.DrawPolygon(pts)

	pts[0] = Pt(99, 99)

	cmd, _ := r.Last(OpPolygon)
	if cmd.Points[0] != Pt(0, 0) {
		t.Errorf("recorded point mutated to %v, want (0, 0)", cmd.Points[0])
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.DrawText(5, 10, "hello")
	r.Reset()
	if got := r.Count(); got != 0 {
		t.Errorf("Count() after Reset = %d, want 0", got)
	}
}

func TestRecorderString(t *testing.T) {
	r := NewRecorder()
	r.DrawLine(0, 0, 1, 1)
	s := r.String()
	if !strings.Contains(s, "Line") {
		t.Errorf("String() = %q, want it to mention Line", s)
	}
}
