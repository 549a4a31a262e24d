package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/gocanvas/sketch"
)

func TestSetOpacityValidation(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if err := r.SetOpacity(1.5); !errors.Is(err, ErrOpacityRange) {
		t.Errorf("SetOpacity(1.5) error = %v, want ErrOpacityRange", err)
	}
	if err := r.SetOpacity(-0.1); !errors.Is(err, ErrOpacityRange) {
		t.Errorf("SetOpacity(-0.1) error = %v, want ErrOpacityRange", err)
	}
	if got := r.Opacity(); got != 1 {
		t.Errorf("Opacity() after failed sets = %v, want 1", got)
	}

	if err := r.SetOpacity(0.5); err != nil {
		t.Fatalf("SetOpacity(0.5) error = %v", err)
	}
	if got := r.Opacity(); got != 0.5 {
		t.Errorf("Opacity() = %v, want 0.5", got)
	}
}

func TestSetLineWidthValidation(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if err := r.SetLineWidth(-1); !errors.Is(err, ErrNegativeLineWidth) {
		t.Errorf("SetLineWidth(-1) error = %v, want ErrNegativeLineWidth", err)
	}
	if err := r.SetLineWidth(3); err != nil {
		t.Fatalf("SetLineWidth(3) error = %v", err)
	}
	if got := r.LineWidth(); got != 3 {
		t.Errorf("LineWidth() = %v, want 3", got)
	}
}

func TestSetColorString(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if err := r.SetColorString("red"); err != nil {
		t.Fatalf("SetColorString(red) error = %v", err)
	}
	if got := r.Color(); got != sketch.Red {
		t.Errorf("Color() = %v, want %v", got, sketch.Red)
	}
	if err := r.SetColorString("nosuchcolor"); err == nil {
		t.Error("SetColorString(nosuchcolor) = nil error, want non-nil")
	}
}

func TestSetFillColorEnablesFill(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if r.IsFilled() {
		t.Fatal("new rect IsFilled() = true, want false")
	}

	r.SetFillColor(sketch.Blue)
	if !r.IsFilled() {
		t.Error("IsFilled() after SetFillColor = false, want true")
	}

	if err := r.SetFillColorString(""); err != nil {
		t.Fatalf("SetFillColorString(\"\") error = %v", err)
	}
	if r.IsFilled() {
		t.Error("IsFilled() after clearing fill = true, want false")
	}
}

func TestMoveAndSetCenter(t *testing.T) {
	r := NewRect(10, 20, 4, 6)
	r.Move(5, -5)
	if r.X() != 15 || r.Y() != 15 {
		t.Errorf("location after Move = (%v, %v), want (15, 15)", r.X(), r.Y())
	}

	r.SetCenter(10, 10)
	if r.X() != 8 || r.Y() != 7 {
		t.Errorf("location after SetCenter = (%v, %v), want (8, 7)", r.X(), r.Y())
	}
	c := r.Center()
	if c.X != 10 || c.Y != 10 {
		t.Errorf("Center() = %v, want (10, 10)", c)
	}
}

func TestResizeTransformedFails(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	r.Rotate(45)
	if err := r.SetSize(20, 20); !errors.Is(err, ErrTransformedResize) {
		t.Errorf("SetSize after Rotate error = %v, want ErrTransformedResize", err)
	}

	r.ResetTransform()
	if err := r.SetSize(20, 20); err != nil {
		t.Errorf("SetSize after ResetTransform error = %v", err)
	}
	if r.Width() != 20 || r.Height() != 20 {
		t.Errorf("size = (%v, %v), want (20, 20)", r.Width(), r.Height())
	}
}

func TestSetFrame(t *testing.T) {
	r := NewRect(0, 0, 1, 1)
	r.SetFrame(sketch.R(5, 6, 7, 8))
	if r.X() != 5 || r.Y() != 6 || r.Width() != 7 || r.Height() != 8 {
		t.Errorf("frame = (%v, %v, %v, %v), want (5, 6, 7, 8)",
			r.X(), r.Y(), r.Width(), r.Height())
	}
}

func TestVisibleChildSkippedInDraw(t *testing.T) {
	c := NewCompound()
	r := NewRect(0, 0, 10, 10)
	if err := c.Add(r); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	r.SetVisible(false)

	rec := sketch.NewRecorder()
	c.Draw(rec)
	if got := rec.CountOp(sketch.OpRect); got != 0 {
		t.Errorf("hidden child produced %d rect commands, want 0", got)
	}
}

func TestStringDescribesObject(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	s := r.String()
	if !strings.HasPrefix(s, "Rect(") {
		t.Errorf("String() = %q, want Rect(...) prefix", s)
	}
	if !strings.Contains(s, "x=1") || !strings.Contains(s, "w=3") {
		t.Errorf("String() = %q, want it to carry the frame", s)
	}
}

func TestDrawAppliesState(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	r.SetColor(sketch.Green)
	r.SetFilled(true)
	r.SetFillColor(sketch.Yellow)
	if err := r.SetLineWidth(2); err != nil {
		t.Fatal(err)
	}

	rec := sketch.NewRecorder()
	r.Draw(rec)

	pen, ok := rec.Last(sketch.OpSetPen)
	if !ok {
		t.Fatal("no pen command recorded")
	}
	if pen.Pen.Color != sketch.Green || pen.Pen.Width != 2 {
		t.Errorf("pen = %+v, want green width 2", pen.Pen)
	}

	fill, ok := rec.Last(sketch.OpSetFill)
	if !ok {
		t.Fatal("no fill command recorded")
	}
	if !fill.Fill.Set || fill.Fill.Color != sketch.Yellow {
		t.Errorf("fill = %+v, want yellow", fill.Fill)
	}
}

func TestLineNoneSuppressesDash(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	r.SetLineStyle(sketch.LineDash)

	rec := sketch.NewRecorder()
	r.Draw(rec)

	pen, _ := rec.Last(sketch.OpSetPen)
	if pen.Pen.Dash == nil {
		t.Error("dashed style produced nil dash pattern")
	}
}
