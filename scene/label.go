package scene

import (
	"fmt"
	"sync/atomic"

	"github.com/gocanvas/sketch"
	"github.com/gocanvas/sketch/text"
)

// defaultMetrics is the metrics service Text uses when none is given.
// It defaults to an empty text.Library, which measures every font with
// the builtin fallback face.
var defaultMetrics atomic.Pointer[Metrics]

func init() {
	var m Metrics = text.NewLibrary()
	defaultMetrics.Store(&m)
}

// SetDefaultMetrics replaces the metrics service used by Text objects
// created without an explicit one. Passing nil restores the builtin
// fallback.
func SetDefaultMetrics(m Metrics) {
	if m == nil {
		m = text.NewLibrary()
	}
	defaultMetrics.Store(&m)
}

// Text is a single line of text anchored at its baseline origin: the
// anchor point is the start of the baseline, and the bounds extend
// from one ascent above it to one descent below. Width and height are
// remeasured from the font metrics whenever the content or font
// changes.
type Text struct {
	Base
	text    string
	metrics Metrics
	ascent  float64
	descent float64
}

// NewText creates a text object with the default font and metrics
// service, anchored at (x, y).
func NewText(str string, x, y float64) *Text {
	return NewTextWithMetrics(*defaultMetrics.Load(), str, x, y)
}

// NewTextWithMetrics creates a text object measured by m.
func NewTextWithMetrics(m Metrics, str string, x, y float64) *Text {
	t := &Text{
		Base:    newBase(x, y, 0, 0),
		text:    str,
		metrics: m,
	}
	t.self = t
	t.font = DefaultFont
	t.remeasure()
	return t
}

// TypeName implements Object.
func (t *Text) TypeName() string { return "Text" }

// Text returns the string content.
func (t *Text) Text() string { return t.text }

// SetText replaces the string content and remeasures the bounds.
func (t *Text) SetText(str string) {
	t.text = str
	t.remeasure()
	t.repaint()
}

// SetFont sets the font descriptor and remeasures the bounds.
func (t *Text) SetFont(font string) {
	t.font = font
	t.remeasure()
	t.repaint()
}

// Ascent returns the font ascent above the baseline.
func (t *Text) Ascent() float64 { return t.ascent }

// Descent returns the font descent below the baseline.
func (t *Text) Descent() float64 { return t.descent }

// Bounds returns the measured frame: the anchor lies on the baseline,
// so the box starts one ascent above it.
func (t *Text) Bounds() sketch.Rect {
	return sketch.R(t.x, t.y-t.ascent, t.width, t.height)
}

// Contains reports whether the point lies inside the measured frame.
func (t *Text) Contains(x, y float64) bool {
	return t.Bounds().Contains(x, y)
}

// Draw implements Object.
func (t *Text) Draw(s sketch.Surface) {
	t.applyState(s)
	s.DrawText(t.x, t.y, t.text)
}

// String returns a diagnostic description of the text object.
func (t *Text) String() string {
	return describe(t, fmt.Sprintf("text=%q", t.text))
}

// remeasure rederives width, height, ascent and descent from the
// metrics service for the current content and font.
func (t *Text) remeasure() {
	font := t.font
	if font == "" {
		font = DefaultFont
	}
	asc, desc, height := t.metrics.LineMetrics(font)
	t.ascent = asc
	t.descent = desc
	t.height = height
	t.width = t.metrics.Advance(font, t.text)
}

var _ Metrics = (*text.Library)(nil)
