package scene

import (
	"fmt"
	"math"

	"github.com/gocanvas/sketch"
)

// ErrVertexIndex is returned for a vertex index outside the polygon.
var ErrVertexIndex = fmt.Errorf("scene: vertex index out of range")

// Polygon is a closed polygon built from vertices in the object's own
// coordinate space; the anchor point translates the whole outline.
// Edges can be appended relative to the current pen position, which
// tracks the most recently added vertex.
type Polygon struct {
	Base
	vertices []sketch.Point
	cx, cy   float64 // pen position for relative edges
}

// NewPolygon creates an empty polygon anchored at the origin.
func NewPolygon() *Polygon {
	p := &Polygon{Base: newBase(0, 0, 0, 0)}
	p.self = p
	return p
}

// NewPolygonFrom creates a polygon from an initial vertex list.
func NewPolygonFrom(vertices ...sketch.Point) *Polygon {
	p := NewPolygon()
	for _, v := range vertices {
		p.AddVertexPoint(v)
	}
	return p
}

// TypeName implements Object.
func (p *Polygon) TypeName() string { return "Polygon" }

// AddVertex appends a vertex at (x, y) in the polygon's coordinate
// space and moves the pen there.
func (p *Polygon) AddVertex(x, y float64) {
	p.cx = x
	p.cy = y
	p.vertices = append(p.vertices, sketch.Pt(x, y))
	p.repaint()
}

// AddVertexPoint appends the vertex v.
func (p *Polygon) AddVertexPoint(v sketch.Point) {
	p.AddVertex(v.X, v.Y)
}

// AddEdge appends a vertex displaced from the pen position by
// (dx, dy).
func (p *Polygon) AddEdge(dx, dy float64) {
	p.AddVertex(p.cx+dx, p.cy+dy)
}

// AddPolarEdge appends a vertex displaced from the pen position by the
// polar vector (r, theta), theta in degrees counterclockwise.
func (p *Polygon) AddPolarEdge(r, theta float64) {
	radians := theta * math.Pi / 180
	p.AddEdge(r*math.Cos(radians), -r*math.Sin(radians))
}

// Vertex returns the i'th vertex.
func (p *Polygon) Vertex(i int) (sketch.Point, error) {
	if i < 0 || i >= len(p.vertices) {
		return sketch.Point{}, fmt.Errorf("%w: %d of %d", ErrVertexIndex, i, len(p.vertices))
	}
	return p.vertices[i], nil
}

// SetVertex replaces the i'th vertex.
func (p *Polygon) SetVertex(i int, v sketch.Point) error {
	if i < 0 || i >= len(p.vertices) {
		return fmt.Errorf("%w: %d of %d", ErrVertexIndex, i, len(p.vertices))
	}
	p.vertices[i] = v
	p.repaint()
	return nil
}

// VertexCount returns the number of vertices.
func (p *Polygon) VertexCount() int { return len(p.vertices) }

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []sketch.Point {
	out := make([]sketch.Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Clear removes all vertices and resets the pen to the origin.
func (p *Polygon) Clear() {
	p.vertices = p.vertices[:0]
	p.cx = 0
	p.cy = 0
	p.repaint()
}

// Contains reports whether the point is inside the polygon, using the
// edge-crossing parity test. The closing edge from the last vertex to
// the first is implicit unless the outline is already closed. Fewer
// than two vertices contain nothing. Boundary behavior follows the
// crossing formula: edges at the minimum x and minimum y of the
// outline count as inside, edges at the maximum x and maximum y as
// outside.
func (p *Polygon) Contains(x, y float64) bool {
	n := len(p.vertices)
	if n < 2 {
		return false
	}
	// Translate the query into the polygon's coordinate space.
	x -= p.x
	y -= p.y
	if p.vertices[0] == p.vertices[n-1] {
		n--
	}
	crossings := 0
	x0 := p.vertices[0].X
	y0 := p.vertices[0].Y
	for i := 1; i <= n; i++ {
		x1 := p.vertices[i%n].X
		y1 := p.vertices[i%n].Y
		if (y0 > y) != (y1 > y) && x-x0 < (x1-x0)*(y-y0)/(y1-y0) {
			crossings++
		}
		x0 = x1
		y0 = y1
	}
	return crossings%2 == 1
}

// Bounds returns the min/max box over the vertices, offset by the
// polygon's anchor point.
func (p *Polygon) Bounds() sketch.Rect {
	if len(p.vertices) == 0 {
		return sketch.R(p.x, p.y, 0, 0)
	}
	xMin := p.vertices[0].X
	yMin := p.vertices[0].Y
	xMax := xMin
	yMax := yMin
	for _, v := range p.vertices[1:] {
		xMin = math.Min(xMin, v.X)
		yMin = math.Min(yMin, v.Y)
		xMax = math.Max(xMax, v.X)
		yMax = math.Max(yMax, v.Y)
	}
	return sketch.R(xMin+p.x, yMin+p.y, xMax-xMin, yMax-yMin)
}

// Width returns the width of the polygon's bounding box.
func (p *Polygon) Width() float64 { return p.Bounds().Width }

// Height returns the height of the polygon's bounding box.
func (p *Polygon) Height() float64 { return p.Bounds().Height }

// Draw implements Object.
func (p *Polygon) Draw(s sketch.Surface) {
	p.applyState(s)
	pts := make([]sketch.Point, len(p.vertices))
	for i, v := range p.vertices {
		pts[i] = sketch.Pt(v.X+p.x, v.Y+p.y)
	}
	s.DrawPolygon(pts)
}

// String returns a diagnostic description of the polygon.
func (p *Polygon) String() string {
	return describe(p, fmt.Sprintf("vertices=%d", len(p.vertices)))
}
