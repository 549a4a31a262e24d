package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// refString is shaped to obtain line metrics for a face. Any string
// works; HarfBuzz reports the face's line bounds regardless of content.
const refString = "Mg"

// Library maps font family names to loaded Sources and measures strings
// against them. Families without a registered Source fall back to the
// builtin proportional metrics, so a zero-configuration Library is still
// usable.
//
// Library is safe for concurrent use. HarfbuzzShaper instances have
// internal mutable state and are pooled rather than shared.
type Library struct {
	mu      sync.RWMutex
	sources map[string]*Source
	def     *Source

	shapers sync.Pool
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{
		sources: make(map[string]*Source),
		shapers: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Register associates a Source with a family name. Styled variants can
// be registered under "Family Bold", "Family Italic", or
// "Family BoldItalic"; plain lookups fall back to the base family when a
// styled variant is missing.
func (l *Library) Register(family string, src *Source) error {
	if familyKey(family) == "" {
		return ErrEmptyFamily
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[familyKey(family)] = src
	return nil
}

// LoadFile reads and parses a font file and registers it under family.
func (l *Library) LoadFile(family, path string) error {
	src, err := NewSourceFromFile(path)
	if err != nil {
		return err
	}
	return l.Register(family, src)
}

// SetDefault sets the Source used for families with no registration of
// their own. A nil default restores the builtin fallback metrics.
func (l *Library) SetDefault(src *Source) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.def = src
}

// Has reports whether a Source is registered for the family.
func (l *Library) Has(family string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.sources[familyKey(family)]
	return ok
}

// lookup resolves a parsed descriptor to a Source, preferring the styled
// variant, then the base family, then the default. Returns nil when the
// Library has nothing to offer and the builtin fallback should be used.
func (l *Library) lookup(d desc) *Source {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if d.style != "" {
		if src, ok := l.sources[familyKey(d.family+" "+d.style)]; ok {
			return src
		}
	}
	if src, ok := l.sources[familyKey(d.family)]; ok {
		return src
	}
	return l.def
}

// LineMetrics returns the ascent, descent, and line height for the font
// descriptor, all in pixels. Ascent and descent are both positive;
// height includes the font's recommended line gap.
func (l *Library) LineMetrics(font string) (ascent, descent, height float64) {
	d := parseDesc(font)
	src := l.lookup(d)
	if src == nil {
		return builtinLineMetrics(d.size)
	}

	out := l.shape(src, d.size, refString)
	ascent = fixedToFloat(out.LineBounds.Ascent)
	// go-text reports descent as a negative offset from the baseline.
	descent = -fixedToFloat(out.LineBounds.Descent)
	height = ascent + descent + fixedToFloat(out.LineBounds.Gap)
	return ascent, descent, height
}

// Advance returns the width of s rendered in the font descriptor, in
// pixels. The empty string has zero advance.
func (l *Library) Advance(font, s string) float64 {
	if s == "" {
		return 0
	}
	d := parseDesc(font)
	src := l.lookup(d)
	if src == nil {
		return builtinAdvance(d.size, s)
	}
	return fixedToFloat(l.shape(src, d.size, s).Advance)
}

// shape runs a single-run HarfBuzz shaping pass over s.
func (l *Library) shape(src *Source, size float64, s string) shaping.Output {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: paragraphDirection(s),
		Face:      src.newFace(),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := l.shapers.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	l.shapers.Put(shaper)
	return out
}

// paragraphDirection runs the Unicode bidi algorithm over s and returns
// the direction of its first run. Mixed-direction strings are measured
// as a single run in that direction; callers needing per-run layout
// should split the text themselves.
func paragraphDirection(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. For
// mixed-script text this is a heuristic; single-script runs are the
// common case for scene labels.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
