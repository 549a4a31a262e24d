package scene

import (
	"fmt"
	"math"

	"github.com/gocanvas/sketch"
)

// DefaultCorner is the corner diameter a RoundRect uses when none is
// given.
const DefaultCorner = 10.0

// Rect is an axis-aligned rectangle.
type Rect struct {
	Base
}

// NewRect creates a rectangle with the given frame.
func NewRect(x, y, width, height float64) *Rect {
	r := &Rect{Base: newBase(x, y, width, height)}
	r.self = r
	return r
}

// TypeName implements Object.
func (r *Rect) TypeName() string { return "Rect" }

// Bounds returns the rectangle's own frame.
func (r *Rect) Bounds() sketch.Rect {
	return sketch.R(r.x, r.y, r.width, r.height)
}

// Contains reports whether the point lies inside the frame.
func (r *Rect) Contains(x, y float64) bool {
	return r.Bounds().Contains(x, y)
}

// Draw implements Object.
func (r *Rect) Draw(s sketch.Surface) {
	r.applyState(s)
	s.DrawRect(r.Bounds())
}

// String returns a diagnostic description of the rectangle.
func (r *Rect) String() string { return describe(r, "") }

// RoundRect is a rectangle with rounded corners. The corner value is
// the diameter of the quarter-ellipse inscribed at each corner,
// clamped to the frame's extent.
type RoundRect struct {
	Rect
	corner float64
}

// NewRoundRect creates a rounded rectangle with the default corner
// diameter.
func NewRoundRect(x, y, width, height float64) *RoundRect {
	r, _ := NewRoundRectCorner(x, y, width, height, DefaultCorner)
	return r
}

// NewRoundRectCorner creates a rounded rectangle with an explicit
// corner diameter. A negative corner is rejected.
func NewRoundRectCorner(x, y, width, height, corner float64) (*RoundRect, error) {
	if corner < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeCorner, corner)
	}
	r := &RoundRect{
		Rect:   Rect{Base: newBase(x, y, width, height)},
		corner: corner,
	}
	r.self = r
	return r, nil
}

// TypeName implements Object.
func (r *RoundRect) TypeName() string { return "RoundRect" }

// Corner returns the corner diameter.
func (r *RoundRect) Corner() float64 { return r.corner }

// SetCorner changes the corner diameter. Negative values are rejected.
func (r *RoundRect) SetCorner(corner float64) error {
	if corner < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeCorner, corner)
	}
	r.corner = corner
	r.repaint()
	return nil
}

// Contains reports whether the point lies inside the rounded
// rectangle: inside the frame, and near a corner inside that corner's
// inscribed quarter-ellipse. Points in the central cross between the
// corner regions are always contained. A corner of 0 degenerates to
// plain rectangle containment.
func (r *RoundRect) Contains(x, y float64) bool {
	if !r.Bounds().Contains(x, y) {
		return false
	}

	// Corner diameters beyond the frame behave as if clamped.
	a := math.Min(r.corner, r.width) / 2
	b := math.Min(r.corner, r.height) / 2
	if a <= 0 || b <= 0 {
		return true
	}

	// Distance from the nearest vertical and horizontal edges.
	dx := math.Min(math.Abs(x-r.x), math.Abs(x-r.Right()))
	dy := math.Min(math.Abs(y-r.y), math.Abs(y-r.Bottom()))

	if dx > a || dy > b {
		return true // central cross
	}
	return (dx-a)*(dx-a)/(a*a)+(dy-b)*(dy-b)/(b*b) <= 1
}

// Draw implements Object.
func (r *RoundRect) Draw(s sketch.Surface) {
	r.applyState(s)

	// Surfaces with a native rounded-rect primitive get the corner
	// diameter; others render the plain frame.
	if rr, ok := s.(RoundRectDrawer); ok {
		rr.DrawRoundRect(r.Bounds(), r.corner)
		return
	}
	s.DrawRect(r.Bounds())
}

// String returns a diagnostic description of the rounded rectangle.
func (r *RoundRect) String() string {
	return describe(r, fmt.Sprintf("corner=%g", r.corner))
}

// RoundRectDrawer is implemented by surfaces with a native
// rounded-rectangle primitive. RoundRect.Draw prefers it over the
// plain-frame fallback.
type RoundRectDrawer interface {
	DrawRoundRect(frame sketch.Rect, corner float64)
}
