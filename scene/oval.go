package scene

import "github.com/gocanvas/sketch"

// Oval is an ellipse inscribed in its frame.
type Oval struct {
	Base
}

// NewOval creates an oval inscribed in the given frame.
func NewOval(x, y, width, height float64) *Oval {
	o := &Oval{Base: newBase(x, y, width, height)}
	o.self = o
	return o
}

// TypeName implements Object.
func (o *Oval) TypeName() string { return "Oval" }

// Bounds returns the oval's frame.
func (o *Oval) Bounds() sketch.Rect {
	return sketch.R(o.x, o.y, o.width, o.height)
}

// Contains reports whether the point lies inside the inscribed
// ellipse: the normalized squared distance from the center is at most
// 1. A zero-extent oval contains nothing.
func (o *Oval) Contains(x, y float64) bool {
	rx := o.width / 2
	ry := o.height / 2
	if rx == 0 || ry == 0 {
		return false
	}
	dx := x - (o.x + rx)
	dy := y - (o.y + ry)
	return (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) <= 1.0
}

// Draw implements Object.
func (o *Oval) Draw(s sketch.Surface) {
	o.applyState(s)
	s.DrawEllipse(o.Bounds())
}

// String returns a diagnostic description of the oval.
func (o *Oval) String() string { return describe(o, "") }
