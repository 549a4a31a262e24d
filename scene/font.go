package scene

import (
	"strconv"
	"strings"
)

// DefaultFont is the descriptor Text falls back to when none is set.
const DefaultFont = "SansSerif-12"

// Metrics is the font-measurement collaborator Text depends on.
// Implementations answer for a font descriptor string of the form
// "Family-Style-Size" (style optional), e.g. "Helvetica-Bold-14" or
// "SansSerif-12". The text package provides the standard
// implementation; any backend with font access can substitute its own.
type Metrics interface {
	// LineMetrics returns the ascent and descent above/below the
	// baseline (both positive) and the overall line height for the
	// font.
	LineMetrics(font string) (ascent, descent, height float64)

	// Advance returns the measured width of s rendered in the font.
	Advance(font string, s string) float64
}

// FontSpec is a parsed font descriptor.
type FontSpec struct {
	Family string
	Bold   bool
	Italic bool
	Size   float64
}

// ParseFont splits a "Family-Style-Size" descriptor. Both the style
// and size segments are optional; unrecognized trailing segments are
// folded into the family name. An empty descriptor parses as the
// default font.
func ParseFont(desc string) FontSpec {
	if desc == "" {
		desc = DefaultFont
	}
	spec := FontSpec{Size: 12}
	parts := strings.Split(desc, "-")

	// Size is the last segment when numeric.
	if n := len(parts); n > 1 {
		if sz, err := strconv.ParseFloat(parts[n-1], 64); err == nil && sz > 0 {
			spec.Size = sz
			parts = parts[:n-1]
		}
	}

	// Style segments follow the family.
	for len(parts) > 1 {
		switch strings.ToLower(parts[len(parts)-1]) {
		case "bold":
			spec.Bold = true
		case "italic":
			spec.Italic = true
		case "bolditalic":
			spec.Bold = true
			spec.Italic = true
		case "plain":
			// explicit default
		default:
			spec.Family = strings.Join(parts, "-")
			return spec
		}
		parts = parts[:len(parts)-1]
	}
	spec.Family = parts[0]
	return spec
}

// String reassembles the descriptor in canonical form.
func (f FontSpec) String() string {
	var b strings.Builder
	b.WriteString(f.Family)
	switch {
	case f.Bold && f.Italic:
		b.WriteString("-BoldItalic")
	case f.Bold:
		b.WriteString("-Bold")
	case f.Italic:
		b.WriteString("-Italic")
	}
	b.WriteByte('-')
	b.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	return b.String()
}
