package scene

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gocanvas/sketch"
)

// Validation errors returned by mutating setters.
var (
	// ErrOpacityRange is returned when an opacity lies outside [0, 1].
	ErrOpacityRange = errors.New("scene: opacity out of range [0, 1]")

	// ErrNegativeLineWidth is returned for a line width below zero.
	ErrNegativeLineWidth = errors.New("scene: negative line width")

	// ErrNegativeCorner is returned for a negative corner diameter.
	ErrNegativeCorner = errors.New("scene: negative corner diameter")

	// ErrTransformedResize is returned when SetSize is called on an
	// object that has been rotated or scaled.
	ErrTransformedResize = errors.New("scene: cannot resize a transformed object")

	// ErrNilObject is returned when a nil child is passed to a compound.
	ErrNilObject = errors.New("scene: nil object")
)

// Object is the capability set every node in the scene graph provides:
// rendering onto a Surface, bounds computation, point containment
// against the actual geometry, and a type name for diagnostics.
//
// The set of implementations is closed: Line, Rect, RoundRect, Oval,
// Arc, Polygon, Text, Image and Compound. All of them embed Base,
// which carries the shared position, attribute and transform state.
type Object interface {
	// Draw renders the object onto the surface, applying its stroke,
	// fill, font, opacity and transform state first.
	Draw(s sketch.Surface)

	// Bounds returns the minimal axis-aligned rectangle enclosing the
	// object's visible extent.
	Bounds() sketch.Rect

	// Contains reports whether the point lies inside the object's
	// actual geometry (not merely its bounding box).
	Contains(x, y float64) bool

	// TypeName identifies the concrete variant ("Rect", "Oval", ...).
	TypeName() string

	// base exposes the shared state and keeps the variant set closed.
	base() *Base
}

// Base holds the state shared by every scene object. It is embedded by
// the concrete variants and is not used on its own.
//
// Every mutating setter issues a repaint notification that walks the
// parent links to the outermost compound; detached objects mutate
// silently.
type Base struct {
	x, y          float64
	width, height float64

	color     sketch.RGBA
	colorSet  bool
	fillColor sketch.RGBA
	filled    bool

	lineWidth float64
	lineStyle sketch.LineStyle
	font      string
	opacity   float64
	visible   bool

	transform   sketch.Matrix
	transformed bool

	parent *Compound

	// self points back at the embedding variant. Constructors bind it
	// so z-order delegation can identify this object inside its parent.
	self Object
}

// newBase returns the shared state initialized to the defaults every
// variant starts from: solid 1px outline, unfilled, fully opaque,
// visible, identity transform.
func newBase(x, y, width, height float64) Base {
	return Base{
		x:         x,
		y:         y,
		width:     width,
		height:    height,
		lineWidth: 1,
		lineStyle: sketch.LineSolid,
		opacity:   1,
		visible:   true,
		transform: sketch.Identity(),
	}
}

func (b *Base) base() *Base { return b }

// X returns the x coordinate of the object's anchor point.
func (b *Base) X() float64 { return b.x }

// Y returns the y coordinate of the object's anchor point.
func (b *Base) Y() float64 { return b.y }

// Location returns the object's anchor point.
func (b *Base) Location() sketch.Point { return sketch.Pt(b.x, b.y) }

// Width returns the extent of the object along the x axis.
func (b *Base) Width() float64 { return b.width }

// Height returns the extent of the object along the y axis.
func (b *Base) Height() float64 { return b.height }

// Right returns the x coordinate of the right edge.
func (b *Base) Right() float64 { return b.x + b.width }

// Bottom returns the y coordinate of the bottom edge.
func (b *Base) Bottom() float64 { return b.y + b.height }

// Center returns the center of the object's frame.
func (b *Base) Center() sketch.Point {
	return sketch.Pt(b.x+b.width/2, b.y+b.height/2)
}

// Parent returns the compound this object is attached to, or nil.
func (b *Base) Parent() *Compound { return b.parent }

// Color returns the stroke color, or black if none was set.
func (b *Base) Color() sketch.RGBA {
	if !b.colorSet {
		return sketch.Black
	}
	return b.color
}

// SetColor sets the stroke color.
func (b *Base) SetColor(c sketch.RGBA) {
	b.color = c
	b.colorSet = true
	b.repaint()
}

// SetColorString sets the stroke color from a symbolic name or hex
// literal.
func (b *Base) SetColorString(s string) error {
	c, err := sketch.Parse(s)
	if err != nil {
		return err
	}
	b.SetColor(c)
	return nil
}

// IsFilled reports whether the interior is painted.
func (b *Base) IsFilled() bool { return b.filled }

// SetFilled turns interior painting on or off.
func (b *Base) SetFilled(filled bool) {
	b.filled = filled
	b.repaint()
}

// FillColor returns the interior color.
func (b *Base) FillColor() sketch.RGBA { return b.fillColor }

// SetFillColor sets the interior color and marks the object filled.
func (b *Base) SetFillColor(c sketch.RGBA) {
	b.fillColor = c
	b.filled = true
	b.repaint()
}

// SetFillColorString sets the interior color from a symbolic name or
// hex literal. An empty string clears the fill.
func (b *Base) SetFillColorString(s string) error {
	if s == "" {
		b.fillColor = sketch.RGBA{}
		b.filled = false
		b.repaint()
		return nil
	}
	c, err := sketch.Parse(s)
	if err != nil {
		return err
	}
	b.SetFillColor(c)
	return nil
}

// LineWidth returns the stroke width.
func (b *Base) LineWidth() float64 { return b.lineWidth }

// SetLineWidth sets the stroke width. Negative widths are rejected.
func (b *Base) SetLineWidth(w float64) error {
	if w < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeLineWidth, w)
	}
	b.lineWidth = w
	b.repaint()
	return nil
}

// LineStyle returns the stroke dash style.
func (b *Base) LineStyle() sketch.LineStyle { return b.lineStyle }

// SetLineStyle sets the stroke dash style.
func (b *Base) SetLineStyle(style sketch.LineStyle) {
	b.lineStyle = style
	b.repaint()
}

// Font returns the font descriptor, or "" when the default applies.
func (b *Base) Font() string { return b.font }

// SetFont sets the font descriptor ("Family-Style-Size"). Text shadows
// this to remeasure itself.
func (b *Base) SetFont(font string) {
	b.font = font
	b.repaint()
}

// Opacity returns the object's opacity in [0, 1].
func (b *Base) Opacity() float64 { return b.opacity }

// SetOpacity sets the opacity. Values outside [0, 1] are rejected and
// leave the object unchanged.
func (b *Base) SetOpacity(opacity float64) error {
	if opacity < 0 || opacity > 1 || math.IsNaN(opacity) {
		return fmt.Errorf("%w: %g", ErrOpacityRange, opacity)
	}
	b.opacity = opacity
	b.repaint()
	return nil
}

// Visible reports whether the object is drawn.
func (b *Base) Visible() bool { return b.visible }

// SetVisible shows or hides the object.
func (b *Base) SetVisible(visible bool) {
	b.visible = visible
	b.repaint()
}

// SetLocation moves the anchor point to (x, y).
func (b *Base) SetLocation(x, y float64) {
	b.x = x
	b.y = y
	b.repaint()
}

// Move translates the object by (dx, dy).
func (b *Base) Move(dx, dy float64) {
	b.SetLocation(b.x+dx, b.y+dy)
}

// SetCenter positions the object so its frame is centered on (x, y).
func (b *Base) SetCenter(x, y float64) {
	b.SetLocation(x-b.width/2, y-b.height/2)
}

// SetSize changes the object's extent. Resizing an object that has
// been rotated or scaled is rejected.
func (b *Base) SetSize(width, height float64) error {
	if b.transformed {
		return ErrTransformedResize
	}
	b.width = width
	b.height = height
	b.repaint()
	return nil
}

// SetFrame sets position and extent in one call.
func (b *Base) SetFrame(r sketch.Rect) {
	b.x = r.X
	b.y = r.Y
	b.width = r.Width
	b.height = r.Height
	b.repaint()
}

// Transform returns the object's affine transform.
func (b *Base) Transform() sketch.Matrix { return b.transform }

// Transformed reports whether the object has been rotated or scaled.
func (b *Base) Transformed() bool { return b.transformed }

// Rotate post-multiplies a rotation of theta degrees onto the
// object's transform.
func (b *Base) Rotate(theta float64) {
	b.transformed = true
	b.transform = b.transform.Multiply(sketch.RotateDegrees(theta))
	b.repaint()
}

// Scale post-multiplies a uniform scale onto the object's transform.
func (b *Base) Scale(sf float64) {
	b.ScaleXY(sf, sf)
}

// ScaleXY post-multiplies a non-uniform scale onto the object's
// transform.
func (b *Base) ScaleXY(sx, sy float64) {
	b.transformed = true
	b.transform = b.transform.Multiply(sketch.Scale(sx, sy))
	b.repaint()
}

// ResetTransform restores the identity transform.
func (b *Base) ResetTransform() {
	b.transform = sketch.Identity()
	b.transformed = false
	b.repaint()
}

// SendToFront moves this object to the top of its parent's z-order.
// No-op when detached.
func (b *Base) SendToFront() {
	if b.parent != nil {
		b.parent.SendToFront(b.self)
	}
}

// SendToBack moves this object to the bottom of its parent's z-order.
// No-op when detached.
func (b *Base) SendToBack() {
	if b.parent != nil {
		b.parent.SendToBack(b.self)
	}
}

// SendForward moves this object one step toward the front.
// No-op when detached.
func (b *Base) SendForward() {
	if b.parent != nil {
		b.parent.SendForward(b.self)
	}
}

// SendBackward moves this object one step toward the back.
// No-op when detached.
func (b *Base) SendBackward() {
	if b.parent != nil {
		b.parent.SendBackward(b.self)
	}
}

// repaint notifies the outermost compound that the display is stale.
// Detached non-compound objects drop the notification.
func (b *Base) repaint() {
	root, ok := b.self.(*Compound)
	if !ok {
		root = b.parent
	}
	if root == nil {
		return
	}
	for root.parent != nil {
		root = root.parent
	}
	root.conditionalRepaint()
}

// applyState pushes the object's stroke, fill, font, opacity and
// transform onto the surface before a draw call.
func (b *Base) applyState(s sketch.Surface) {
	pen := sketch.NewPen(b.Color())
	pen.Width = b.lineWidth
	pen.Style = b.lineStyle
	pen.Dash = sketch.DashForStyle(b.lineStyle, b.lineWidth)
	s.SetPen(pen)

	if b.filled {
		s.SetFill(sketch.SolidFill(b.fillColor))
	} else {
		s.SetFill(sketch.Fill{})
	}
	s.SetFont(b.font)
	s.SetOpacity(b.opacity)
	s.SetTransform(b.transform)
}

// describe renders the shared attribute section of an object's
// diagnostic string.
func describe(o Object, extra string) string {
	b := o.base()
	var sb strings.Builder
	sb.WriteString(o.TypeName())
	fmt.Fprintf(&sb, "(x=%g,y=%g,w=%g,h=%g", b.x, b.y, b.width, b.height)
	if b.lineWidth > 1 {
		fmt.Fprintf(&sb, ",lineWidth=%g", b.lineWidth)
	}
	if b.colorSet {
		fmt.Fprintf(&sb, ",color=%s", b.color.HexString())
	}
	if b.filled {
		fmt.Fprintf(&sb, ",fillColor=%s", b.fillColor.HexString())
	}
	if b.font != "" {
		fmt.Fprintf(&sb, ",font=%s", b.font)
	}
	if !b.visible {
		sb.WriteString(",visible=false")
	}
	if extra != "" {
		sb.WriteByte(',')
		sb.WriteString(extra)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Compile-time checks that every drawable satisfies Object.
var (
	_ Object = (*Line)(nil)
	_ Object = (*Rect)(nil)
	_ Object = (*RoundRect)(nil)
	_ Object = (*Oval)(nil)
	_ Object = (*Arc)(nil)
	_ Object = (*Polygon)(nil)
	_ Object = (*Text)(nil)
	_ Object = (*Image)(nil)
	_ Object = (*Compound)(nil)
)
