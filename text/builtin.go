package text

import "unicode"

// Builtin fallback metrics, used when a Library has no Source for the
// requested family. The widths approximate a generic sans-serif face so
// labels get plausible bounds without any font file on disk. Values are
// fractions of the point size.

const (
	builtinAscentRatio  = 0.80
	builtinDescentRatio = 0.20
	builtinGapRatio     = 0.15
)

// builtinLineMetrics returns ascent, descent, and line height for the
// fallback face at the given size.
func builtinLineMetrics(size float64) (ascent, descent, height float64) {
	ascent = builtinAscentRatio * size
	descent = builtinDescentRatio * size
	height = ascent + descent + builtinGapRatio*size
	return ascent, descent, height
}

// builtinAdvance sums per-rune width estimates for s at the given size.
func builtinAdvance(size float64, s string) float64 {
	var w float64
	for _, r := range s {
		w += builtinRuneWidth(r) * size
	}
	return w
}

// builtinRuneWidth estimates the advance of a single rune as a fraction
// of the point size.
func builtinRuneWidth(r rune) float64 {
	switch r {
	case 'i', 'j', 'l', '\'', '|', '.', ',', ':', ';', '!':
		return 0.28
	case 'f', 't', 'r', 'I', '(', ')', '[', ']', '-', ' ':
		return 0.35
	case 'm', 'w', 'M', 'W', '@':
		return 0.85
	}
	switch {
	case r >= '0' && r <= '9':
		return 0.56
	case unicode.IsUpper(r):
		return 0.70
	case unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hangul, r) ||
		unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
		return 1.0
	default:
		return 0.55
	}
}
