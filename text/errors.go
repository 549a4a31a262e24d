package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFamily is returned when a font is registered under an
	// empty family name.
	ErrEmptyFamily = errors.New("text: empty font family")
)
