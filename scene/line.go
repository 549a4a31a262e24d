package scene

import (
	"fmt"
	"math"

	"github.com/gocanvas/sketch"
)

// lineTolerance is the pixel distance within which a point is
// considered on a line.
const lineTolerance = 1.5

// Line is a line segment from an anchor point to an endpoint stored as
// a direction vector, so moving the line preserves its extent.
type Line struct {
	Base
	dx, dy float64
}

// NewLine creates a line segment from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 float64) *Line {
	l := &Line{
		Base: newBase(x0, y0, 0, 0),
		dx:   x1 - x0,
		dy:   y1 - y0,
	}
	l.self = l
	return l
}

// TypeName implements Object.
func (l *Line) TypeName() string { return "Line" }

// Start returns the line's starting point.
func (l *Line) Start() sketch.Point { return sketch.Pt(l.x, l.y) }

// End returns the line's ending point.
func (l *Line) End() sketch.Point { return sketch.Pt(l.x+l.dx, l.y+l.dy) }

// SetStart moves the starting point, leaving the endpoint fixed.
func (l *Line) SetStart(x, y float64) {
	l.dx += l.x - x
	l.dy += l.y - y
	l.SetLocation(x, y)
}

// SetEnd moves the endpoint, leaving the starting point fixed.
func (l *Line) SetEnd(x, y float64) {
	l.dx = x - l.x
	l.dy = y - l.y
	l.repaint()
}

// Width returns the horizontal extent of the segment.
func (l *Line) Width() float64 { return math.Abs(l.dx) }

// Height returns the vertical extent of the segment.
func (l *Line) Height() float64 { return math.Abs(l.dy) }

// Bounds returns the rectangle spanning the two endpoints.
func (l *Line) Bounds() sketch.Rect {
	return sketch.RectFromPoints(l.Start(), l.End())
}

// Contains reports whether the point lies within the line tolerance of
// the segment: near either endpoint, or within the tolerance of the
// perpendicular projection clamped to the segment. A zero-length line
// contains nothing beyond its endpoints' tolerance disks.
func (l *Line) Contains(x, y float64) bool {
	x0, y0 := l.x, l.y
	x1, y1 := l.x+l.dx, l.y+l.dy
	t2 := lineTolerance * lineTolerance
	if dsq(x, y, x0, y0) < t2 {
		return true
	}
	if dsq(x, y, x1, y1) < t2 {
		return true
	}
	if x < math.Min(x0, x1)-lineTolerance || x > math.Max(x0, x1)+lineTolerance {
		return false
	}
	if y < math.Min(y0, y1)-lineTolerance || y > math.Max(y0, y1)+lineTolerance {
		return false
	}
	if x0 == x1 && y0 == y1 {
		return false
	}
	u := ((x-x0)*(x1-x0) + (y-y0)*(y1-y0)) / dsq(x0, y0, x1, y1)
	return dsq(x, y, x0+u*(x1-x0), y0+u*(y1-y0)) < t2
}

// Draw implements Object.
func (l *Line) Draw(s sketch.Surface) {
	l.applyState(s)
	s.DrawLine(l.x, l.y, l.x+l.dx, l.y+l.dy)
}

// String returns a diagnostic description of the line.
func (l *Line) String() string {
	return describe(l, fmt.Sprintf("x2=%g,y2=%g", l.x+l.dx, l.y+l.dy))
}

// dsq returns the squared distance between two points.
func dsq(x0, y0, x1, y1 float64) float64 {
	return (x1-x0)*(x1-x0) + (y1-y0)*(y1-y0)
}
