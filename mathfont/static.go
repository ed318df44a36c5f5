package mathfont

import "github.com/boergens/gomath/dimen"

// StaticGlyph is one entry in a StaticProvider's glyph table: everything
// FontContext needs to resolve a codepoint without touching a real font
// file.
type StaticGlyph struct {
	GID        uint16
	Advance    dimen.Font
	LSB        dimen.Font
	Italics    dimen.Font
	Attachment dimen.Font
	XMin, YMin, XMax, YMax dimen.Font
	Kern       KernInfo
}

// StaticProvider is a deterministic, in-memory Provider implementation used
// by the engine's own test suite so layout tests do not depend on parsing a
// real OpenType font file. It is the package's analogue of a hand-built
// fixture, not a production adapter.
type StaticProvider struct {
	UnitsPerEmFactor float64
	Constants        MathConstants
	Glyphs           map[rune]StaticGlyph
	VertVariants     map[rune]VariantGlyph
	HorzVariants     map[rune]VariantGlyph
}

// NewStaticProvider builds an empty fixture with a sensible default
// units-per-em; callers populate Glyphs/VertVariants/HorzVariants/Constants
// directly.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		UnitsPerEmFactor: 1.0 / 1000,
		Glyphs:           map[rune]StaticGlyph{},
		VertVariants:     map[rune]VariantGlyph{},
		HorzVariants:     map[rune]VariantGlyph{},
	}
}

func (p *StaticProvider) UnitsPerEm() dimen.FontToEm {
	return dimen.FontToEm{Factor: p.UnitsPerEmFactor}
}

func (p *StaticProvider) GIDForCodepoint(cp rune) (uint16, bool) {
	g, ok := p.Glyphs[cp]
	if !ok {
		return 0, false
	}
	return g.GID, true
}

func (p *StaticProvider) glyphByGID(gid uint16) (StaticGlyph, bool) {
	for _, g := range p.Glyphs {
		if g.GID == gid {
			return g, true
		}
	}
	return StaticGlyph{}, false
}

func (p *StaticProvider) GlyphMetrics(gid uint16) (advance, lsb dimen.Font, ok bool) {
	g, found := p.glyphByGID(gid)
	if !found {
		return 0, 0, false
	}
	return g.Advance, g.LSB, true
}

func (p *StaticProvider) GlyphBBox(gid uint16) (xmin, ymin, xmax, ymax dimen.Font, ok bool) {
	g, found := p.glyphByGID(gid)
	if !found {
		return 0, 0, 0, 0, false
	}
	return g.XMin, g.YMin, g.XMax, g.YMax, true
}

func (p *StaticProvider) MathConstants() MathConstants { return p.Constants }

func (p *StaticProvider) ItalicsCorrection(gid uint16) dimen.Font {
	g, _ := p.glyphByGID(gid)
	return g.Italics
}

func (p *StaticProvider) TopAccentAttachment(gid uint16) dimen.Font {
	g, _ := p.glyphByGID(gid)
	return g.Attachment
}

func (p *StaticProvider) KernInfo(gid uint16) KernInfo {
	g, _ := p.glyphByGID(gid)
	return g.Kern
}

func (p *StaticProvider) VertVariant(cp rune, targetHeight dimen.Font) (VariantGlyph, bool) {
	if v, ok := p.VertVariants[cp]; ok {
		return v, true
	}
	gid, ok := p.GIDForCodepoint(cp)
	if !ok {
		return VariantGlyph{}, false
	}
	return NewReplacementVariant(gid), true
}

func (p *StaticProvider) HorzVariant(cp rune, targetWidth dimen.Font) (VariantGlyph, bool) {
	if v, ok := p.HorzVariants[cp]; ok {
		return v, true
	}
	gid, ok := p.GIDForCodepoint(cp)
	if !ok {
		return VariantGlyph{}, false
	}
	return NewReplacementVariant(gid), true
}

// StepTable is a simple sorted-slice KernTable implementation for tests:
// CorrectionHeight[i] is the upper bound of the i-th step, KernValue[i] its
// value, with the last value extending to infinity.
type StepTable struct {
	CorrectionHeight []dimen.Font
	KernValue        []dimen.Font
}

func (t StepTable) KernForHeight(h dimen.Font) dimen.Font {
	for i, ch := range t.CorrectionHeight {
		if h <= ch {
			return t.KernValue[i]
		}
	}
	if len(t.KernValue) == 0 {
		return 0
	}
	return t.KernValue[len(t.KernValue)-1]
}
