package mathlayout

import (
	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
)

// Settings carries everything the recursive layout algorithm threads
// through every call: the font context (glyph metrics and MATH
// constants), the current font size, and the current cascading style. It
// is passed by value, the same way the original engine threads a Copy
// LayoutSettings through its recursion.
type Settings struct {
	Ctx      *mathfont.FontContext
	FontSize dimen.EmToPx
	Style    mathast.Style
}

// NewSettings builds the root Settings for a top-level layout call:
// fontSizePx is the pixel size of 1 em at the document's base size.
func NewSettings(ctx *mathfont.FontContext, fontSizePx float64, style mathast.Style) Settings {
	return Settings{Ctx: ctx, FontSize: dimen.EmToPx{Factor: fontSizePx}, Style: style}
}

// Cramped returns Settings with the cramped flag forced on.
func (s Settings) Cramped() Settings { s.Style = s.Style.Cramped(); return s }

// SuperscriptVariant returns Settings styled for a superscript.
func (s Settings) SuperscriptVariant() Settings { s.Style = s.Style.SuperscriptVariant(); return s }

// SubscriptVariant returns Settings styled for a subscript.
func (s Settings) SubscriptVariant() Settings { s.Style = s.Style.SubscriptVariant(); return s }

// Numerator returns Settings styled for a fraction numerator.
func (s Settings) Numerator() Settings { s.Style = s.Style.Numerator(); return s }

// Denominator returns Settings styled for a fraction denominator.
func (s Settings) Denominator() Settings { s.Style = s.Style.Denominator(); return s }

// WithDisplay forces display style, used when a fraction explicitly
// requests display-style numerator/denominator regardless of ambient
// style.
func (s Settings) WithDisplay() Settings { s.Style = mathast.Display; return s }

// WithText forces text style.
func (s Settings) WithText() Settings { s.Style = mathast.Text; return s }

// scaleFactor is the glyph scale-down factor for the current style's size
// class.
func (s Settings) scaleFactor() float64 {
	return s.Style.ScaleFactor(s.Ctx.Constants.ScriptPercentScaleDown, s.Ctx.Constants.ScriptScriptPercentScaleDown)
}

// fontToPx composes the font context's units-per-em scale with the
// current font size, i.e. the scale from raw font design units directly
// to pixels (before the style-dependent scaleFactor).
func (s Settings) fontToPx() dimen.FontToPx {
	return dimen.Compose(s.Ctx.UnitsPerEm, s.FontSize)
}

// ToFont converts a Px length back into font design units, the inverse of
// scaling a Font length to Px: used when a computed pixel clearance must
// be handed back to the font provider (e.g. a target height for variant
// glyph selection).
func (s Settings) ToFont(length dimen.Px) dimen.Font {
	pxToFont := dimen.ComposePxToFont(s.FontSize.Inv(), s.Ctx.UnitsPerEm.Inv())
	return pxToFont.Apply(length)
}
