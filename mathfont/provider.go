package mathfont

import "github.com/boergens/gomath/dimen"

// KernTable is a step function from height (font units) to kern amount
// (font units), as stored per-corner in the OpenType MATH MathKernInfo
// table.
type KernTable interface {
	// KernForHeight returns the kerning value in effect at the given
	// height, 0 if the table is empty.
	KernForHeight(h dimen.Font) dimen.Font
}

// Corner names one of the four per-glyph MATH cut-in kern records.
type Corner int

const (
	TopRight Corner = iota
	TopLeft
	BottomRight
	BottomLeft
)

// KernInfo exposes the four corner kern tables for a single glyph, absent
// entirely for glyphs with no MathKernInfo record.
type KernInfo struct {
	TopRight, TopLeft, BottomRight, BottomLeft KernTable
}

// Provider is the font-provider boundary the layout engine consumes: it
// opens an OpenType font and exposes glyph metrics, the MATH header,
// variant construction, and italics/attachment tables. Concrete
// implementations live in gotext.go (wrapping go-text/typesetting) and
// static.go (a deterministic fixture for tests).
type Provider interface {
	// UnitsPerEm returns the font's design-to-em scale.
	UnitsPerEm() dimen.FontToEm
	// GIDForCodepoint looks up the glyph id mapped to a Unicode codepoint.
	GIDForCodepoint(cp rune) (uint16, bool)
	// GlyphMetrics returns a glyph's advance and left side bearing.
	GlyphMetrics(gid uint16) (advance, lsb dimen.Font, ok bool)
	// GlyphBBox returns a glyph's bounding box in font units.
	GlyphBBox(gid uint16) (xmin, ymin, xmax, ymax dimen.Font, ok bool)
	// MathConstants returns the font's MATH constants table.
	MathConstants() MathConstants
	// ItalicsCorrection returns a glyph's italics correction, 0 if absent.
	ItalicsCorrection(gid uint16) dimen.Font
	// TopAccentAttachment returns a glyph's top accent attachment point, 0
	// if absent (mathlayout's accent layout then uses (advance+italics)/2).
	TopAccentAttachment(gid uint16) dimen.Font
	// KernInfo returns a glyph's four corner cut-in kern tables, the zero
	// value (all nil) if the glyph has no MathKernInfo record.
	KernInfo(gid uint16) KernInfo
	// VertVariant requests a vertical VariantGlyph for cp sized to at
	// least targetHeight.
	VertVariant(cp rune, targetHeight dimen.Font) (VariantGlyph, bool)
	// HorzVariant requests a horizontal VariantGlyph for cp sized to at
	// least targetWidth.
	HorzVariant(cp rune, targetWidth dimen.Font) (VariantGlyph, bool)
}

// FontContext wraps a Provider, caching its em-unit Constants and
// units-per-em scale so recursive layout never recomputes them.
type FontContext struct {
	Provider   Provider
	Constants  Constants
	UnitsPerEm dimen.FontToEm
}

// NewFontContext builds a FontContext from a Provider, reading and
// converting its MATH constants once up front.
func NewFontContext(p Provider) *FontContext {
	unitsPerEm := p.UnitsPerEm()
	return &FontContext{
		Provider:   p,
		Constants:  NewConstants(p.MathConstants(), unitsPerEm),
		UnitsPerEm: unitsPerEm,
	}
}

// Glyph resolves a Unicode codepoint to its full Glyph metrics.
func (fc *FontContext) Glyph(cp rune) (Glyph, error) {
	gid, ok := fc.Provider.GIDForCodepoint(cp)
	if !ok {
		return Glyph{}, MissingGlyphCodepoint(cp)
	}
	return fc.GlyphFromGID(gid)
}

// GlyphFromGID resolves a glyph id to its full Glyph metrics.
func (fc *FontContext) GlyphFromGID(gid uint16) (Glyph, error) {
	advance, lsb, ok := fc.Provider.GlyphMetrics(gid)
	if !ok {
		return Glyph{}, MissingGlyphGID(gid)
	}
	xmin, ymin, xmax, ymax, ok := fc.Provider.GlyphBBox(gid)
	if !ok {
		return Glyph{}, MissingGlyphGID(gid)
	}
	return Glyph{
		GID:        gid,
		Advance:    advance,
		LSB:        lsb,
		Italics:    fc.Provider.ItalicsCorrection(gid),
		Attachment: fc.Provider.TopAccentAttachment(gid),
		BBoxXMin:   xmin,
		BBoxYMin:   ymin,
		BBoxXMax:   xmax,
		BBoxYMax:   ymax,
		kernInfo:   fc.Provider.KernInfo(gid),
	}, nil
}

// VertVariant requests a vertical variant of cp sized to at least
// targetHeight font units.
func (fc *FontContext) VertVariant(cp rune, targetHeight dimen.Font) (VariantGlyph, error) {
	if _, ok := fc.Provider.GIDForCodepoint(cp); !ok {
		return VariantGlyph{}, MissingGlyphCodepoint(cp)
	}
	v, _ := fc.Provider.VertVariant(cp, targetHeight)
	return v, nil
}

// HorzVariant requests a horizontal variant of cp sized to at least
// targetWidth font units.
func (fc *FontContext) HorzVariant(cp rune, targetWidth dimen.Font) (VariantGlyph, error) {
	if _, ok := fc.Provider.GIDForCodepoint(cp); !ok {
		return VariantGlyph{}, MissingGlyphCodepoint(cp)
	}
	v, _ := fc.Provider.HorzVariant(cp, targetWidth)
	return v, nil
}
