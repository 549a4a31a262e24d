// Package scene implements a retained-mode 2D scene graph: drawable
// geometric primitives composed into hierarchical compounds, with
// hit-testing against each shape's actual geometry, bounds
// aggregation, z-ordering and repaint propagation.
//
// # Objects
//
// Every node implements the Object interface: Draw onto a
// sketch.Surface, Bounds, Contains and TypeName. The concrete
// variants are Line, Rect, RoundRect, Oval, Arc, Polygon, Text, Image
// and Compound; all embed Base, which carries the shared position,
// color, stroke, font, opacity, visibility and transform state.
//
// Objects are built with constructors, then mutated through setters.
// Every mutating setter issues a repaint notification that bubbles up
// the parent chain to the outermost compound; if that compound is
// bound to a Display the display is told which region went stale.
// Setters with invariants (opacity in [0, 1], non-negative line width
// and corner, no resize after a transform) return an error and leave
// the object unchanged on violation.
//
// # Compounds
//
// A Compound owns an ordered child list; the order is the z-order,
// back to front. Children know their container through a parent
// back-reference maintained by Add and Remove. Compounds nest, and a
// compound's bounds are the union of its children's bounds offset by
// its own position.
//
// # Threads
//
// Scene mutation is single-owner: callers must not mutate a compound's
// structure from several goroutines at once. Repaint notifications,
// however, may be triggered from any goroutine; RenderQueue and
// QueueDisplay marshal them onto a dedicated render goroutine in
// submission order, fire-and-forget.
package scene
