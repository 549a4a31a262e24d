package scene

import (
	"fmt"
	"math"

	"github.com/gocanvas/sketch"
)

// arcTolerance is the pixel distance within which a point is
// considered on an unfilled arc's rim.
const arcTolerance = 2.5

// Arc is an elliptical arc measured on the ellipse inscribed in its
// frame. Angles are in degrees, counterclockwise-positive, with 0 at
// the +x axis. A filled arc is the chord-bounded pie wedge region.
type Arc struct {
	Base
	start float64
	sweep float64
}

// NewArc creates an arc inscribed in the given frame, spanning sweep
// degrees counterclockwise from the start angle.
func NewArc(x, y, width, height, start, sweep float64) *Arc {
	a := &Arc{
		Base:  newBase(x, y, width, height),
		start: start,
		sweep: sweep,
	}
	a.self = a
	return a
}

// TypeName implements Object.
func (a *Arc) TypeName() string { return "Arc" }

// StartAngle returns the starting angle in degrees.
func (a *Arc) StartAngle() float64 { return a.start }

// SetStartAngle changes the starting angle.
func (a *Arc) SetStartAngle(start float64) {
	a.start = start
	a.repaint()
}

// SweepAngle returns the swept extent in degrees.
func (a *Arc) SweepAngle() float64 { return a.sweep }

// SetSweepAngle changes the swept extent.
func (a *Arc) SetSweepAngle(sweep float64) {
	a.sweep = sweep
	a.repaint()
}

// ArcPoint returns the point on the arc's ellipse at the given angle
// in degrees.
func (a *Arc) ArcPoint(theta float64) sketch.Point {
	rx := a.width / 2
	ry := a.height / 2
	cx := a.x + rx
	cy := a.y + ry
	radians := theta * math.Pi / 180
	return sketch.Pt(cx+rx*math.Cos(radians), cy-ry*math.Sin(radians))
}

// StartPoint returns the point where the arc begins.
func (a *Arc) StartPoint() sketch.Point { return a.ArcPoint(a.start) }

// EndPoint returns the point where the arc ends.
func (a *Arc) EndPoint() sketch.Point { return a.ArcPoint(a.start + a.sweep) }

// ContainsAngle reports whether the angle (in degrees) falls inside
// the swept range, handling negative sweeps and wraparound past 360.
// A sweep of 360 or more contains every angle.
func (a *Arc) ContainsAngle(theta float64) bool {
	start := math.Min(a.start, a.start+a.sweep)
	sweep := math.Abs(a.sweep)
	if sweep >= 360 {
		return true
	}
	theta = normalizeAngle(theta)
	start = normalizeAngle(start)
	if start+sweep > 360 {
		return theta >= start || theta <= start+sweep-360
	}
	return theta >= start && theta <= start+sweep
}

// Contains reports whether the point lies on the arc. For a filled
// arc the point must be inside the inscribed ellipse; for an unfilled
// one its normalized radius must be within the arc tolerance of the
// rim. Either way its angle, corrected for the ellipse aspect ratio,
// must fall inside the swept range.
func (a *Arc) Contains(x, y float64) bool {
	rx := a.width / 2
	ry := a.height / 2
	if rx == 0 || ry == 0 {
		return false
	}
	dx := x - (a.x + rx)
	dy := y - (a.y + ry)
	r := (dx*dx)/(rx*rx) + (dy*dy)/(ry*ry)
	if a.filled {
		if r > 1.0 {
			return false
		}
	} else {
		t := arcTolerance / ((rx + ry) / 2)
		if math.Abs(1.0-r) > t {
			return false
		}
	}
	// Scaling by the radii corrects the angle for the aspect ratio.
	return a.ContainsAngle(math.Atan2(-dy/ry, dx/rx) * 180 / math.Pi)
}

// Bounds returns the box spanning the arc's two endpoints, expanded to
// the ellipse extremes at whichever cardinal angles the sweep crosses,
// and to the center for a filled arc.
func (a *Arc) Bounds() sketch.Rect {
	rx := a.width / 2
	ry := a.height / 2
	cx := a.x + rx
	cy := a.y + ry
	p1 := a.StartPoint()
	p2 := a.EndPoint()
	xMin := math.Min(p1.X, p2.X)
	xMax := math.Max(p1.X, p2.X)
	yMin := math.Min(p1.Y, p2.Y)
	yMax := math.Max(p1.Y, p2.Y)
	if a.ContainsAngle(0) {
		xMax = cx + rx
	}
	if a.ContainsAngle(90) {
		yMin = cy - ry
	}
	if a.ContainsAngle(180) {
		xMin = cx - rx
	}
	if a.ContainsAngle(270) {
		yMax = cy + ry
	}
	if a.filled {
		xMin = math.Min(xMin, cx)
		yMin = math.Min(yMin, cy)
		xMax = math.Max(xMax, cx)
		yMax = math.Max(yMax, cy)
	}
	return sketch.R(xMin, yMin, xMax-xMin, yMax-yMin)
}

// Draw implements Object.
func (a *Arc) Draw(s sketch.Surface) {
	a.applyState(s)
	// Chord primitives take angles in 1/16ths of a degree.
	s.DrawChord(sketch.R(a.x, a.y, a.width, a.height),
		int(a.start*16), int(a.sweep*16))
}

// String returns a diagnostic description of the arc.
func (a *Arc) String() string {
	return describe(a, fmt.Sprintf("start=%g,sweep=%g", a.start, a.sweep))
}

// normalizeAngle reduces an angle in degrees to [0, 360).
func normalizeAngle(theta float64) float64 {
	if theta < 0 {
		return 360 - math.Mod(-theta, 360)
	}
	return math.Mod(theta, 360)
}
