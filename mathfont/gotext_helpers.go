package mathfont

import (
	"bytes"
	"io"

	gomath "github.com/go-text/typesetting/opentype/tables"

	"github.com/boergens/gomath/dimen"
)

// glyphID is the concrete glyph-id type go-text/typesetting's Face API
// expects; its own GID type is a thin wrapper over uint16/uint32 depending
// on version, so conversions are centralized here.
type glyphID = gomath.GlyphID

func newByteReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}

// stepFunctionTable adapts the go-text/typesetting MATH kern table
// representation (a sorted list of (height, kern) correction pairs) into
// the KernTable interface the engine consults.
type stepFunctionTable gomath.MathKernTable

func (t stepFunctionTable) KernForHeight(h dimen.Font) dimen.Font {
	heights := gomath.MathKernTable(t).CorrectionHeight
	values := gomath.MathKernTable(t).KernValue
	for i, ch := range heights {
		if float64(h) <= float64(ch) {
			return dimen.Font(values[i])
		}
	}
	if len(values) == 0 {
		return 0
	}
	return dimen.Font(values[len(values)-1])
}

// convertVariant adapts go-text/typesetting's assembled-glyph variant
// representation into the engine's VariantGlyph.
func convertVariant(v gomath.MathGlyphVariant) VariantGlyph {
	if len(v.Parts) == 0 {
		return NewReplacementVariant(uint16(v.Glyph))
	}
	parts := make([]GlyphPart, len(v.Parts))
	for i, p := range v.Parts {
		parts[i] = GlyphPart{GID: uint16(p.Glyph), Overlap: dimen.Font(p.StartConnectorLength)}
	}
	dir := Vertical
	if v.Horizontal {
		dir = Horizontal
	}
	return NewConstructableVariant(dir, parts)
}
