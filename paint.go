package sketch

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// LineStyle specifies the dash pattern of a stroked outline.
type LineStyle int

const (
	// LineNone draws no outline at all.
	LineNone LineStyle = iota
	// LineSolid draws a continuous outline.
	LineSolid
	// LineDash draws a dashed outline.
	LineDash
	// LineDot draws a dotted outline.
	LineDot
	// LineDashDot alternates dashes and dots.
	LineDashDot
	// LineDashDotDot alternates dashes and pairs of dots.
	LineDashDotDot
)

// String returns the name of the line style.
func (s LineStyle) String() string {
	switch s {
	case LineNone:
		return "none"
	case LineSolid:
		return "solid"
	case LineDash:
		return "dash"
	case LineDot:
		return "dot"
	case LineDashDot:
		return "dashdot"
	case LineDashDotDot:
		return "dashdotdot"
	default:
		return "unknown"
	}
}

// Pen describes the stroke state a Surface applies before outline draws.
type Pen struct {
	Color RGBA
	Width float64
	Style LineStyle
	Cap   LineCap
	Join  LineJoin
	Dash  *Dash
}

// NewPen returns a solid 1px pen in the given color with the flat caps
// and mitered joins the scene graph uses by default.
func NewPen(c RGBA) Pen {
	return Pen{
		Color: c,
		Width: 1,
		Style: LineSolid,
		Cap:   LineCapButt,
		Join:  LineJoinMiter,
	}
}

// Fill describes the interior paint a Surface applies before filled draws.
// An unset Fill leaves shape interiors untouched.
type Fill struct {
	Color RGBA
	Set   bool
}

// SolidFill returns a fill in the given color.
func SolidFill(c RGBA) Fill {
	return Fill{Color: c, Set: true}
}
