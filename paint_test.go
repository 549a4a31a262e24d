package sketch

import "testing"

func TestNewPenDefaults(t *testing.T) {
	p := NewPen(Red)
	if p.Color != Red {
		t.Errorf("Color = %v, want %v", p.Color, Red)
	}
	if p.Width != 1 {
		t.Errorf("Width = %v, want 1", p.Width)
	}
	if p.Style != LineSolid {
		t.Errorf("Style = %v, want LineSolid", p.Style)
	}
	if p.Cap != LineCapButt {
		t.Errorf("Cap = %v, want LineCapButt", p.Cap)
	}
	if p.Join != LineJoinMiter {
		t.Errorf("Join = %v, want LineJoinMiter", p.Join)
	}
	if p.Dash != nil {
		t.Errorf("Dash = %v, want nil", p.Dash)
	}
}

func TestSolidFill(t *testing.T) {
	f := SolidFill(Blue)
	if !f.Set {
		t.Error("Set = false, want true")
	}
	if f.Color != Blue {
		t.Errorf("Color = %v, want %v", f.Color, Blue)
	}
	var zero Fill
	if zero.Set {
		t.Error("zero Fill reports Set = true, want false")
	}
}

func TestLineStyleString(t *testing.T) {
	tests := []struct {
		style LineStyle
		want  string
	}{
		{LineNone, "none"},
		{LineSolid, "solid"},
		{LineDash, "dash"},
		{LineDot, "dot"},
		{LineDashDot, "dashdot"},
		{LineDashDotDot, "dashdotdot"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("LineStyle(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}
