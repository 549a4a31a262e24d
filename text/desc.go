package text

import (
	"strconv"
	"strings"
)

// desc is a parsed font descriptor.
type desc struct {
	family string
	style  string // "", "bold", "italic", or "bolditalic"
	size   float64
}

const defaultSize = 12

// parseDesc splits a "Family-Style-Size" descriptor. Every component
// after the family is optional. Unrecognized style tokens are folded
// back into the family name, so "Sans-Serif-12" keeps its hyphen.
func parseDesc(s string) desc {
	d := desc{size: defaultSize}
	parts := strings.Split(s, "-")

	// Trailing numeric token is the point size.
	if len(parts) > 1 {
		if v, err := strconv.ParseFloat(parts[len(parts)-1], 64); err == nil && v > 0 {
			d.size = v
			parts = parts[:len(parts)-1]
		}
	}

	// A recognized style token directly before the size.
	if len(parts) > 1 {
		switch strings.ToLower(parts[len(parts)-1]) {
		case "bold":
			d.style = "bold"
			parts = parts[:len(parts)-1]
		case "italic":
			d.style = "italic"
			parts = parts[:len(parts)-1]
		case "bolditalic":
			d.style = "bolditalic"
			parts = parts[:len(parts)-1]
		case "plain":
			parts = parts[:len(parts)-1]
		}
	}

	d.family = strings.Join(parts, "-")
	return d
}

// familyKey normalizes a family name for lookup.
func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
