package sketch

import (
	"fmt"
	"strings"
)

// Op identifies the type of a recorded surface command.
type Op uint8

const (
	// State commands
	OpSetPen Op = iota
	OpSetFill
	OpSetFont
	OpSetOpacity
	OpSetTransform

	// Drawing commands
	OpLine
	OpRect
	OpEllipse
	OpChord
	OpPolygon
	OpImage
	OpText
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpSetPen:       "SetPen",
	OpSetFill:      "SetFill",
	OpSetFont:      "SetFont",
	OpSetOpacity:   "SetOpacity",
	OpSetTransform: "SetTransform",
	OpLine:         "Line",
	OpRect:         "Rect",
	OpEllipse:      "Ellipse",
	OpChord:        "Chord",
	OpPolygon:      "Polygon",
	OpImage:        "Image",
	OpText:         "Text",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Command is one recorded surface call. Only the fields relevant to
// the Op are populated.
type Command struct {
	Op Op

	Pen       Pen
	Fill      Fill
	Font      string
	Opacity   float64
	Transform Matrix

	// Line endpoints, or the single anchor for Image/Text.
	X0, Y0 float64
	X1, Y1 float64

	// Frame for Rect, Ellipse and Chord.
	Frame Rect

	// Chord angles in 1/16ths of a degree.
	Start16, Sweep16 int

	Points []Point
	Pixmap *Pixmap
	Text   string
}

// Recorder is a Surface implementation that captures drawing commands
// in memory instead of producing pixels. It is the test double for
// render assertions and the base for replay-style export backends.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

var _ Surface = (*Recorder)(nil)

// Reset discards all recorded commands, keeping allocated capacity.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Commands returns the recorded command stream in submission order.
// The returned slice is owned by the Recorder; callers must not mutate it.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns the number of recorded commands.
func (r *Recorder) Count() int {
	return len(r.commands)
}

// CountOp returns the number of recorded commands with the given Op.
func (r *Recorder) CountOp(op Op) int {
	n := 0
	for _, c := range r.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent command with the given Op, or false if
// none was recorded.
func (r *Recorder) Last(op Op) (Command, bool) {
	for i := len(r.commands) - 1; i >= 0; i-- {
		if r.commands[i].Op == op {
			return r.commands[i], true
		}
	}
	return Command{}, false
}

// String renders the command stream one op per line, for debugging and
// golden-style test comparisons.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, c := range r.commands {
		b.WriteString(c.Op.String())
		switch c.Op {
		case OpLine:
			fmt.Fprintf(&b, "(%g,%g)-(%g,%g)", c.X0, c.Y0, c.X1, c.Y1)
		case OpRect, OpEllipse:
			fmt.Fprintf(&b, "(%g,%g %gx%g)", c.Frame.X, c.Frame.Y, c.Frame.Width, c.Frame.Height)
		case OpChord:
			fmt.Fprintf(&b, "(%g,%g %gx%g %d..%d)", c.Frame.X, c.Frame.Y, c.Frame.Width, c.Frame.Height, c.Start16, c.Sweep16)
		case OpPolygon:
			fmt.Fprintf(&b, "(%d pts)", len(c.Points))
		case OpText:
			fmt.Fprintf(&b, "(%g,%g %q)", c.X0, c.Y0, c.Text)
		case OpImage:
			fmt.Fprintf(&b, "(%g,%g)", c.X0, c.Y0)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SetPen implements Surface.
func (r *Recorder) SetPen(p Pen) {
	r.commands = append(r.commands, Command{Op: OpSetPen, Pen: p})
}

// SetFill implements Surface.
func (r *Recorder) SetFill(f Fill) {
	r.commands = append(r.commands, Command{Op: OpSetFill, Fill: f})
}

// SetFont implements Surface.
func (r *Recorder) SetFont(font string) {
	r.commands = append(r.commands, Command{Op: OpSetFont, Font: font})
}

// SetOpacity implements Surface.
func (r *Recorder) SetOpacity(opacity float64) {
	r.commands = append(r.commands, Command{Op: OpSetOpacity, Opacity: opacity})
}

// SetTransform implements Surface.
func (r *Recorder) SetTransform(m Matrix) {
	r.commands = append(r.commands, Command{Op: OpSetTransform, Transform: m})
}

// DrawLine implements Surface.
func (r *Recorder) DrawLine(x0, y0, x1, y1 float64) {
	r.commands = append(r.commands, Command{Op: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// DrawRect implements Surface.
func (r *Recorder) DrawRect(rect Rect) {
	r.commands = append(r.commands, Command{Op: OpRect, Frame: rect})
}

// DrawEllipse implements Surface.
func (r *Recorder) DrawEllipse(rect Rect) {
	r.commands = append(r.commands, Command{Op: OpEllipse, Frame: rect})
}

// DrawChord implements Surface.
func (r *Recorder) DrawChord(rect Rect, start16, sweep16 int) {
	r.commands = append(r.commands, Command{Op: OpChord, Frame: rect, Start16: start16, Sweep16: sweep16})
}

// DrawPolygon implements Surface.
func (r *Recorder) DrawPolygon(points []Point) {
	pts := make([]Point, len(points))
	copy(pts, points)
	r.commands = append(r.commands, Command{Op: OpPolygon, Points: pts})
}

// DrawImage implements Surface.
func (r *Recorder) DrawImage(x, y float64, pm *Pixmap) {
	r.commands = append(r.commands, Command{Op: OpImage, X0: x, Y0: y, Pixmap: pm})
}

// DrawText implements Surface.
func (r *Recorder) DrawText(x, y float64, text string) {
	r.commands = append(r.commands, Command{Op: OpText, X0: x, Y0: y, Text: text})
}
