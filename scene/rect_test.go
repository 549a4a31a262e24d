package scene

import (
	"errors"
	"testing"

	"github.com/gocanvas/sketch"
)

func TestRectBoundsAndContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if got := r.Bounds(); got != sketch.R(10, 20, 30, 40) {
		t.Errorf("Bounds() = %v, want (10, 20, 30, 40)", got)
	}
	if !r.Contains(15, 25) {
		t.Error("Contains(15, 25) = false, want true")
	}
	if r.Contains(45, 25) {
		t.Error("Contains(45, 25) = true, want false")
	}
}

func TestRoundRectDefaultCorner(t *testing.T) {
	r := NewRoundRect(0, 0, 100, 50)
	if got := r.Corner(); got != DefaultCorner {
		t.Errorf("Corner() = %v, want %v", got, DefaultCorner)
	}
}

func TestRoundRectNegativeCorner(t *testing.T) {
	if _, err := NewRoundRectCorner(0, 0, 10, 10, -1); !errors.Is(err, ErrNegativeCorner) {
		t.Errorf("NewRoundRectCorner(-1) error = %v, want ErrNegativeCorner", err)
	}

	r := NewRoundRect(0, 0, 10, 10)
	if err := r.SetCorner(-2); !errors.Is(err, ErrNegativeCorner) {
		t.Errorf("SetCorner(-2) error = %v, want ErrNegativeCorner", err)
	}
	if got := r.Corner(); got != DefaultCorner {
		t.Errorf("Corner() after failed set = %v, want %v", got, DefaultCorner)
	}
}

func TestRoundRectZeroCornerMatchesRect(t *testing.T) {
	rr, err := NewRoundRectCorner(0, 0, 20, 10, 0)
	if err != nil {
		t.Fatalf("NewRoundRectCorner error: %v", err)
	}
	plain := NewRect(0, 0, 20, 10)

	points := []struct{ x, y float64 }{
		{0, 0}, {20, 10}, {0.1, 0.1}, {19.9, 9.9}, {10, 5}, {20.1, 5}, {-0.1, 5},
	}
	for _, p := range points {
		if rr.Contains(p.x, p.y) != plain.Contains(p.x, p.y) {
			t.Errorf("corner 0 containment differs from rect at (%v, %v)", p.x, p.y)
		}
	}
}

func TestRoundRectCornerContainment(t *testing.T) {
	r, err := NewRoundRectCorner(0, 0, 100, 100, 40)
	if err != nil {
		t.Fatalf("NewRoundRectCorner error: %v", err)
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"middle of top edge", 50, 0, true},
		{"middle of left edge", 0, 50, true},
		{"sharp corner point is rounded away", 0.5, 0.5, false},
		{"inside the corner curve", 10, 10, true},
		{"outside entirely", 101, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRoundRectDrawFallsBackToRect(t *testing.T) {
	r := NewRoundRect(0, 0, 50, 30)
	rec := sketch.NewRecorder()
	r.Draw(rec)

	cmd, ok := rec.Last(sketch.OpRect)
	if !ok {
		t.Fatal("no rect command recorded")
	}
	if cmd.Frame != sketch.R(0, 0, 50, 30) {
		t.Errorf("frame = %v, want (0, 0, 50, 30)", cmd.Frame)
	}
}

type roundRectSurface struct {
	*sketch.Recorder
	frames  []sketch.Rect
	corners []float64
}

func (s *roundRectSurface) DrawRoundRect(frame sketch.Rect, corner float64) {
	s.frames = append(s.frames, frame)
	s.corners = append(s.corners, corner)
}

func TestRoundRectDrawUsesDrawerWhenAvailable(t *testing.T) {
	r := NewRoundRect(0, 0, 50, 30)
	s := &roundRectSurface{Recorder: sketch.NewRecorder()}
	r.Draw(s)

	if len(s.frames) != 1 {
		t.Fatalf("DrawRoundRect called %d times, want 1", len(s.frames))
	}
	if s.corners[0] != DefaultCorner {
		t.Errorf("corner = %v, want %v", s.corners[0], DefaultCorner)
	}
	if got := s.CountOp(sketch.OpRect); got != 0 {
		t.Errorf("fallback rect also drawn %d times, want 0", got)
	}
}
