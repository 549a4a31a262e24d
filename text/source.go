package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// Source represents a loaded font file (TTF or OTF).
// One Source serves every size a scene asks for; the size is applied at
// shaping time, not at load time. Source is heavyweight and should be
// shared across the application.
//
// The parsed *font.Font is read-only and safe for concurrent use.
// font.Face instances are NOT, so Source hands out a fresh lightweight
// Face per shaping call instead of caching one.
type Source struct {
	data []byte
	font *font.Font
}

// NewSource parses font data (TTF or OTF) into a Source.
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	return &Source{data: dataCopy, font: face.Font}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewSource(data)
}

// newFace wraps the parsed font in a fresh Face. font.NewFace is cheap;
// it initializes per-Face glyph caches around the shared *Font.
func (s *Source) newFace() *font.Face {
	return font.NewFace(s.font)
}
