package sketch

// Surface is the drawing backend the scene graph renders onto.
// Implementations translate these primitive calls into pixels (raster
// backends), vector output (PDF, SVG), or recorded command streams.
//
// State setters (SetPen, SetFill, SetFont, SetOpacity, SetTransform)
// establish the graphics state applied to subsequent draw calls. A shape
// applies its complete state before issuing its draw call, so backends
// do not need a save/restore stack to render a scene correctly.
//
// Draw calls with an active Fill paint the interior; with a Pen whose
// style is not LineNone they stroke the outline. DrawChord takes its
// angles in 1/16ths of a degree, counterclockwise, 0 at the +x axis
// (the convention of Qt and X11 chord primitives).
//
// Implementations are not required to be safe for concurrent use;
// the scene graph issues all draw calls from a single render pass.
type Surface interface {
	SetPen(p Pen)
	SetFill(f Fill)
	SetFont(font string)
	SetOpacity(opacity float64)
	SetTransform(m Matrix)

	DrawLine(x0, y0, x1, y1 float64)
	DrawRect(r Rect)
	DrawEllipse(r Rect)
	DrawChord(r Rect, start16, sweep16 int)
	DrawPolygon(points []Point)
	DrawImage(x, y float64, pm *Pixmap)
	DrawText(x, y float64, text string)
}
