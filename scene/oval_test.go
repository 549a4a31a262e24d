package scene

import (
	"testing"

	"github.com/gocanvas/sketch"
)

func TestOvalContains(t *testing.T) {
	o := NewOval(0, 0, 100, 50)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 25, true},
		{"on horizontal extreme", 100, 25, true},
		{"on vertical extreme", 50, 0, true},
		{"just past horizontal extreme", 100.5, 25, false},
		{"bounds corner", 0, 0, false},
		{"inside the curve", 60, 30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDegenerateOvalContainsNothing(t *testing.T) {
	o := NewOval(10, 10, 0, 20)
	if o.Contains(10, 20) {
		t.Error("zero-width oval Contains = true, want false")
	}
}

func TestOvalDraw(t *testing.T) {
	o := NewOval(5, 6, 7, 8)
	rec := sketch.NewRecorder()
	o.Draw(rec)

	cmd, ok := rec.Last(sketch.OpEllipse)
	if !ok {
		t.Fatal("no ellipse command recorded")
	}
	if cmd.Frame != sketch.R(5, 6, 7, 8) {
		t.Errorf("frame = %v, want (5, 6, 7, 8)", cmd.Frame)
	}
}
