package mathfont

import (
	"fmt"

	gofont "github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"

	"github.com/boergens/gomath/dimen"
)

// GoTextProvider adapts a parsed go-text/typesetting font.Face into the
// Provider interface the layout engine consumes. This is the primary
// domain adapter: production callers load a real OpenType MATH font
// through it. Grounded on boergens/gotypst's font.Font wrapping pattern and
// the original FontContext's construction from a MathHeader.
type GoTextProvider struct {
	face *gofont.Face
}

// NewGoTextProvider wraps an already-parsed go-text/typesetting face. The
// face must carry a MATH table; callers that load fonts without verifying
// this will get zero-valued MathConstants rather than an error, since the
// OpenType MATH table is optional at the format level.
func NewGoTextProvider(face *gofont.Face) *GoTextProvider {
	return &GoTextProvider{face: face}
}

// LoadGoTextFont parses raw OpenType font bytes and wraps the first face as
// a GoTextProvider.
func LoadGoTextFont(data []byte) (*GoTextProvider, error) {
	face, err := gofont.ParseTTF(newByteReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return NewGoTextProvider(face), nil
}

func (p *GoTextProvider) UnitsPerEm() dimen.FontToEm {
	upem := p.face.Upem()
	if upem == 0 {
		upem = 1000
	}
	return dimen.FontToEm{Factor: 1.0 / float64(upem)}
}

func (p *GoTextProvider) GIDForCodepoint(cp rune) (uint16, bool) {
	gid, ok := p.face.NominalGlyph(cp)
	if !ok {
		return 0, false
	}
	return uint16(gid), true
}

func (p *GoTextProvider) GlyphMetrics(gid uint16) (advance, lsb dimen.Font, ok bool) {
	adv, found := p.face.HorizontalAdvance(glyphID(gid))
	if !found {
		return 0, 0, false
	}
	ext, extOK := p.face.GlyphExtents(glyphID(gid))
	if !extOK {
		return dimen.Font(adv), 0, true
	}
	return dimen.Font(adv), dimen.Font(fixedToFloat(ext.XBearing)), true
}

func (p *GoTextProvider) GlyphBBox(gid uint16) (xmin, ymin, xmax, ymax dimen.Font, ok bool) {
	ext, found := p.face.GlyphExtents(glyphID(gid))
	if !found {
		return 0, 0, 0, 0, false
	}
	x0 := dimen.Font(fixedToFloat(ext.XBearing))
	y1 := dimen.Font(fixedToFloat(ext.YBearing))
	x1 := x0 + dimen.Font(fixedToFloat(ext.Width))
	y0 := y1 - dimen.Font(fixedToFloat(ext.Height))
	return x0, y0, x1, y1, true
}

func (p *GoTextProvider) MathConstants() MathConstants {
	math := p.face.MathData()
	if math == nil {
		return MathConstants{}
	}
	c := math.Constants
	return MathConstants{
		SubscriptTopMax:                          c.SubscriptTopMax,
		SubscriptBaselineDropMin:                 c.SubscriptBaselineDropMin,
		SuperscriptBaselineDropMax:                c.SuperscriptBaselineDropMax,
		SuperscriptBottomMin:                      c.SuperscriptBottomMin,
		SuperscriptShiftUpCramped:                 c.SuperscriptShiftUpCramped,
		SuperscriptShiftUp:                        c.SuperscriptShiftUp,
		SubSuperscriptGapMin:                      c.SubSuperscriptGapMin,
		UpperLimitBaselineRiseMin:                 c.UpperLimitBaselineRiseMin,
		UpperLimitGapMin:                          c.UpperLimitGapMin,
		LowerLimitGapMin:                          c.LowerLimitGapMin,
		LowerLimitBaselineDropMin:                 c.LowerLimitBaselineDropMin,
		FractionRuleThickness:                     c.FractionRuleThickness,
		FractionNumeratorDisplayStyleShiftUp:       c.FractionNumeratorDisplayStyleShiftUp,
		FractionDenominatorDisplayStyleShiftDown:   c.FractionDenominatorDisplayStyleShiftDown,
		FractionNumDisplayStyleGapMin:              c.FractionNumDisplayStyleGapMin,
		FractionDenomDisplayStyleGapMin:             c.FractionDenomDisplayStyleGapMin,
		FractionNumeratorShiftUp:                   c.FractionNumeratorShiftUp,
		FractionDenominatorShiftDown:                c.FractionDenominatorShiftDown,
		FractionNumeratorGapMin:                     c.FractionNumeratorGapMin,
		FractionDenominatorGapMin:                   c.FractionDenominatorGapMin,
		AxisHeight:                                  c.AxisHeight,
		AccentBaseHeight:                            c.AccentBaseHeight,
		DelimitedSubFormulaMinHeight:                c.DelimitedSubFormulaMinHeight,
		DisplayOperatorMinHeight:                     c.DisplayOperatorMinHeight,
		RadicalDisplayStyleVerticalGap:               c.RadicalDisplayStyleVerticalGap,
		RadicalVerticalGap:                           c.RadicalVerticalGap,
		RadicalRuleThickness:                         c.RadicalRuleThickness,
		RadicalExtraAscender:                         c.RadicalExtraAscender,
		StackDisplayStyleGapMin:                      c.StackDisplayStyleGapMin,
		StackTopDisplayStyleShiftUp:                  c.StackTopDisplayStyleShiftUp,
		StackTopShiftUp:                              c.StackTopShiftUp,
		StackBottomShiftDown:                         c.StackBottomShiftDown,
		StackGapMin:                                  c.StackGapMin,
		ScriptPercentScaleDown:                       c.ScriptPercentScaleDown,
		ScriptScriptPercentScaleDown:                 c.ScriptScriptPercentScaleDown,
	}
}

func (p *GoTextProvider) ItalicsCorrection(gid uint16) dimen.Font {
	math := p.face.MathData()
	if math == nil {
		return 0
	}
	if v, ok := math.GlyphInfo.ItalicsCorrection[glyphID(gid)]; ok {
		return dimen.Font(v)
	}
	return 0
}

func (p *GoTextProvider) TopAccentAttachment(gid uint16) dimen.Font {
	math := p.face.MathData()
	if math == nil {
		return 0
	}
	if v, ok := math.GlyphInfo.TopAccentAttachment[glyphID(gid)]; ok {
		return dimen.Font(v)
	}
	return 0
}

func (p *GoTextProvider) KernInfo(gid uint16) KernInfo {
	math := p.face.MathData()
	if math == nil {
		return KernInfo{}
	}
	rec, ok := math.GlyphInfo.KernInfo[glyphID(gid)]
	if !ok {
		return KernInfo{}
	}
	return KernInfo{
		TopRight:    stepFunctionTable(rec.TopRight),
		TopLeft:     stepFunctionTable(rec.TopLeft),
		BottomRight: stepFunctionTable(rec.BottomRight),
		BottomLeft:  stepFunctionTable(rec.BottomLeft),
	}
}

func (p *GoTextProvider) VertVariant(cp rune, targetHeight dimen.Font) (VariantGlyph, bool) {
	gid, ok := p.GIDForCodepoint(cp)
	if !ok {
		return VariantGlyph{}, false
	}
	math := p.face.MathData()
	if math == nil {
		return NewReplacementVariant(gid), true
	}
	return convertVariant(math.Variants.VertVariant(glyphID(gid), uint32(targetHeight))), true
}

func (p *GoTextProvider) HorzVariant(cp rune, targetWidth dimen.Font) (VariantGlyph, bool) {
	gid, ok := p.GIDForCodepoint(cp)
	if !ok {
		return VariantGlyph{}, false
	}
	math := p.face.MathData()
	if math == nil {
		return NewReplacementVariant(gid), true
	}
	return convertVariant(math.Variants.HorzVariant(glyphID(gid), uint32(targetWidth))), true
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
