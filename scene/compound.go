package scene

import (
	"fmt"
	"slices"

	"github.com/gocanvas/sketch"
)

// Compound is a container object holding an ordered collection of
// children. The order is the z-order: index 0 is the backmost child,
// the last index the frontmost. A child's parent back-reference is set
// exactly while it is present in the container.
//
// Compounds nest; the outermost one may be bound to a Display, the
// redraw target repaint notifications resolve to. Structural mutation
// is caller-synchronized: children must not be added or removed from
// multiple goroutines concurrently.
type Compound struct {
	Base
	children    []Object
	autoRepaint bool
	display     Display
}

// NewCompound creates an empty container at the origin.
func NewCompound() *Compound {
	c := &Compound{
		Base:        newBase(0, 0, 0, 0),
		autoRepaint: true,
	}
	c.self = c
	return c
}

// TypeName implements Object.
func (c *Compound) TypeName() string { return "Compound" }

// BindDisplay attaches the redraw target repaint requests resolve to
// when this compound is the outermost container. A nil display drops
// repaint requests silently.
func (c *Compound) BindDisplay(d Display) {
	c.display = d
}

// AutoRepaint reports whether mutations trigger repaint notifications.
func (c *Compound) AutoRepaint() bool { return c.autoRepaint }

// SetAutoRepaint enables or disables automatic repaint notifications.
// Re-enabling does not flush repaints suppressed while disabled; the
// caller requests one explicitly via Repaint.
func (c *Compound) SetAutoRepaint(auto bool) {
	c.autoRepaint = auto
}

// Add attaches a child at the top of the z-order.
func (c *Compound) Add(child Object) error {
	if child == nil {
		return fmt.Errorf("%w in Add", ErrNilObject)
	}
	c.children = append(c.children, child)
	b := child.base()
	b.parent = c
	c.conditionalRepaintRegion(grownBounds(child))
	return nil
}

// AddAt repositions the child to (x, y) and attaches it.
func (c *Compound) AddAt(child Object, x, y float64) error {
	if child == nil {
		return fmt.Errorf("%w in AddAt", ErrNilObject)
	}
	child.base().SetLocation(x, y)
	return c.Add(child)
}

// Remove detaches the child, clearing its parent back-reference.
// A child not present is a no-op.
func (c *Compound) Remove(child Object) error {
	if child == nil {
		return fmt.Errorf("%w in Remove", ErrNilObject)
	}
	if i := c.indexOf(child); i >= 0 {
		c.RemoveAt(i)
	}
	return nil
}

// RemoveAt detaches the child at the given z-order index.
func (c *Compound) RemoveAt(index int) {
	child := c.children[index]
	c.children = slices.Delete(c.children, index, index+1)
	child.base().parent = nil
	c.conditionalRepaintRegion(grownBounds(child))
}

// RemoveAll detaches every child with a single repaint.
func (c *Compound) RemoveAll() {
	if len(c.children) == 0 {
		return
	}
	for _, child := range c.children {
		child.base().parent = nil
	}
	c.children = c.children[:0]
	c.conditionalRepaint()
}

// Len returns the number of children.
func (c *Compound) Len() int { return len(c.children) }

// IsEmpty reports whether the container has no children.
func (c *Compound) IsEmpty() bool { return len(c.children) == 0 }

// Object returns the child at z-order index i (0 = backmost).
func (c *Compound) Object(i int) Object { return c.children[i] }

// Objects returns a copy of the child list in z-order.
func (c *Compound) Objects() []Object {
	out := make([]Object, len(c.children))
	copy(out, c.children)
	return out
}

// ObjectAt returns the topmost child whose geometry contains the
// point, or nil. Children are tested front to back.
func (c *Compound) ObjectAt(x, y float64) Object {
	for i := len(c.children) - 1; i >= 0; i-- {
		if c.children[i].Contains(x, y) {
			return c.children[i]
		}
	}
	return nil
}

// Contains reports whether any child contains the point.
func (c *Compound) Contains(x, y float64) bool {
	for _, child := range c.children {
		if child.Contains(x, y) {
			return true
		}
	}
	return false
}

// Bounds returns the union of all children's bounds offset by the
// container's own position. An empty container has a zero-size
// rectangle at its position.
func (c *Compound) Bounds() sketch.Rect {
	if len(c.children) == 0 {
		return sketch.R(c.x, c.y, 0, 0)
	}
	agg := c.children[0].Bounds()
	for _, child := range c.children[1:] {
		agg = agg.Union(child.Bounds())
	}
	return agg.Offset(c.x, c.y)
}

// Draw renders every visible child in z-order.
func (c *Compound) Draw(s sketch.Surface) {
	for _, child := range c.children {
		if child.base().visible {
			child.Draw(s)
		}
	}
}

// SendToFront moves the child to the top of the z-order. Already
// frontmost or absent children are a no-op.
func (c *Compound) SendToFront(child Object) {
	i := c.indexOf(child)
	if i < 0 || i == len(c.children)-1 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.children = append(c.children, child)
	c.conditionalRepaint()
}

// SendToBack moves the child to the bottom of the z-order. Already
// backmost or absent children are a no-op.
func (c *Compound) SendToBack(child Object) {
	i := c.indexOf(child)
	if i <= 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.children = slices.Insert(c.children, 0, child)
	c.conditionalRepaint()
}

// SendForward moves the child one step toward the front.
func (c *Compound) SendForward(child Object) {
	i := c.indexOf(child)
	if i < 0 || i == len(c.children)-1 {
		return
	}
	c.children[i], c.children[i+1] = c.children[i+1], c.children[i]
	c.conditionalRepaint()
}

// SendBackward moves the child one step toward the back.
func (c *Compound) SendBackward(child Object) {
	i := c.indexOf(child)
	if i <= 0 {
		return
	}
	c.children[i], c.children[i-1] = c.children[i-1], c.children[i]
	c.conditionalRepaint()
}

// Repaint requests a full redraw of the display, regardless of the
// auto-repaint setting. Resolved through the outermost container; a
// compound with no display bound drops the request.
func (c *Compound) Repaint() {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	if root.display == nil {
		return
	}
	sketch.Logger().Debug("scene: repaint", "compound", fmt.Sprintf("%p", root))
	root.display.Repaint()
}

// RepaintRegion requests a redraw of a region given in this
// compound's coordinate space.
func (c *Compound) RepaintRegion(r sketch.Rect) {
	root := c
	for root.parent != nil {
		r = r.Offset(root.x, root.y)
		root = root.parent
	}
	if root.display == nil {
		return
	}
	root.display.RepaintRegion(r)
}

func (c *Compound) conditionalRepaint() {
	if c.autoRepaint {
		c.Repaint()
	}
}

func (c *Compound) conditionalRepaintRegion(r sketch.Rect) {
	if c.autoRepaint {
		c.RepaintRegion(r)
	}
}

func (c *Compound) indexOf(child Object) int {
	return slices.IndexFunc(c.children, func(o Object) bool { return o == child })
}

// grownBounds expands a child's bounds by half its line width plus one
// to cover stroke overflow when repainting the vacated or covered
// region.
func grownBounds(child Object) sketch.Rect {
	return child.Bounds().Expand((child.base().lineWidth + 1) / 2)
}

// String returns a diagnostic description of the container.
func (c *Compound) String() string {
	return describe(c, fmt.Sprintf("children=%d", len(c.children)))
}
