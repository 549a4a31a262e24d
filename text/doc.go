// Package text measures strings against loaded font files.
//
// The central type is [Library], a registry mapping font family names to
// parsed font sources. A Library answers the two questions a scene needs
// when laying out a text object: how wide is this string, and how tall is
// a line of this font. Shaping is delegated to go-text/typesetting's
// HarfBuzz port, so kerning, ligatures, and right-to-left scripts are
// measured correctly when a real font file is registered.
//
// A Library with no registered fonts still works: it falls back to a
// builtin proportional metric table so callers always get plausible
// dimensions, even in environments with no font files at all (CI,
// headless tests).
//
//	lib := text.NewLibrary()
//	if err := lib.LoadFile("Serif", "fonts/DejaVuSerif.ttf"); err != nil {
//		log.Fatal(err)
//	}
//	w := lib.Advance("Serif-14", "Hello, world")
//
// Font descriptors follow the "Family-Style-Size" convention, for example
// "SansSerif-12" or "Serif-Bold-18". The style and size components are
// optional; size defaults to 12.
package text
