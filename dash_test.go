package sketch

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{
			name:    "empty input returns nil",
			lengths: []float64{},
			wantNil: true,
		},
		{
			name:    "nil input returns nil",
			lengths: nil,
			wantNil: true,
		},
		{
			name:    "all zeros returns nil",
			lengths: []float64{0, 0, 0},
			wantNil: true,
		},
		{
			name:      "simple dash-gap pattern",
			lengths:   []float64{5, 3},
			wantNil:   false,
			wantArray: []float64{5, 3},
		},
		{
			name:      "complex pattern",
			lengths:   []float64{10, 5, 2, 5},
			wantNil:   false,
			wantArray: []float64{10, 5, 2, 5},
		},
		{
			name:      "negative values become absolute",
			lengths:   []float64{-5, 3},
			wantNil:   false,
			wantArray: []float64{5, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if tt.wantNil {
				if d != nil {
					t.Errorf("NewDash(%v) = %v, want nil", tt.lengths, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("NewDash(%v) = nil, want non-nil", tt.lengths)
			}
			if len(d.Array) != len(tt.wantArray) {
				t.Fatalf("len(Array) = %d, want %d", len(d.Array), len(tt.wantArray))
			}
			for i, want := range tt.wantArray {
				if math.Abs(d.Array[i]-want) > 1e-9 {
					t.Errorf("Array[%d] = %v, want %v", i, d.Array[i], want)
				}
			}
		})
	}
}

func TestDashPatternLength(t *testing.T) {
	d := NewDash(5, 3)
	if got := d.PatternLength(); math.Abs(got-8) > 1e-9 {
		t.Errorf("PatternLength() = %v, want 8", got)
	}
}

func TestDashIsDashed(t *testing.T) {
	if !NewDash(5, 3).IsDashed() {
		t.Error("IsDashed() = false for a real pattern, want true")
	}
	var d *Dash
	if d.IsDashed() {
		t.Error("nil dash IsDashed() = true, want false")
	}
}

func TestDashScale(t *testing.T) {
	d := NewDash(4, 2).Scale(2)
	want := []float64{8, 4}
	for i, w := range want {
		if math.Abs(d.Array[i]-w) > 1e-9 {
			t.Errorf("Array[%d] = %v, want %v", i, d.Array[i], w)
		}
	}
}

func TestDashForStyle(t *testing.T) {
	tests := []struct {
		name  string
		style LineStyle
		width float64
		want  []float64
	}{
		{"solid has no pattern", LineSolid, 1, nil},
		{"none has no pattern", LineNone, 1, nil},
		{"dash", LineDash, 1, []float64{4, 2}},
		{"dot", LineDot, 1, []float64{1, 2}},
		{"dash-dot", LineDashDot, 1, []float64{4, 2, 1, 2}},
		{"dash-dot-dot", LineDashDotDot, 1, []float64{4, 2, 1, 2, 1, 2}},
		{"pattern scales with width", LineDash, 3, []float64{12, 6}},
		{"thin pens clamp to width one", LineDash, 0.25, []float64{4, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DashForStyle(tt.style, tt.width)
			if tt.want == nil {
				if d != nil {
					t.Errorf("DashForStyle(%v) = %v, want nil", tt.style, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("DashForStyle(%v) = nil, want pattern", tt.style)
			}
			if len(d.Array) != len(tt.want) {
				t.Fatalf("len(Array) = %d, want %d", len(d.Array), len(tt.want))
			}
			for i, w := range tt.want {
				if math.Abs(d.Array[i]-w) > 1e-9 {
					t.Errorf("Array[%d] = %v, want %v", i, d.Array[i], w)
				}
			}
		})
	}
}
