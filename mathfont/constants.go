package mathfont

import "github.com/boergens/gomath/dimen"

// MathConstants mirrors the raw OpenType MATH table's MathConstants
// subtable: every field is in font design units (or, for the two
// percentage fields, already a unitless percentage), exactly as a font
// parser would hand them back before em-conversion.
type MathConstants struct {
	SubscriptTopMax                           int16
	SubscriptBaselineDropMin                  int16
	SuperscriptBaselineDropMax                int16
	SuperscriptBottomMin                      int16
	SuperscriptShiftUpCramped                 int16
	SuperscriptShiftUp                        int16
	SubSuperscriptGapMin                      int16
	UpperLimitBaselineRiseMin                 int16
	UpperLimitGapMin                          int16
	LowerLimitGapMin                          int16
	LowerLimitBaselineDropMin                 int16
	FractionRuleThickness                     int16
	FractionNumeratorDisplayStyleShiftUp      int16
	FractionDenominatorDisplayStyleShiftDown  int16
	FractionNumDisplayStyleGapMin             int16
	FractionDenomDisplayStyleGapMin           int16
	FractionNumeratorShiftUp                  int16
	FractionDenominatorShiftDown              int16
	FractionNumeratorGapMin                   int16
	FractionDenominatorGapMin                 int16
	AxisHeight                                int16
	AccentBaseHeight                          int16
	DelimitedSubFormulaMinHeight              int16
	DisplayOperatorMinHeight                  int16
	RadicalDisplayStyleVerticalGap            int16
	RadicalVerticalGap                        int16
	RadicalRuleThickness                      int16
	RadicalExtraAscender                      int16
	StackDisplayStyleGapMin                   int16
	StackTopDisplayStyleShiftUp               int16
	StackTopShiftUp                           int16
	StackBottomShiftDown                      int16
	StackGapMin                               int16
	ScriptPercentScaleDown                    int16
	ScriptScriptPercentScaleDown              int16
}

// Constants caches every MATH-table field converted into em units, so the
// layout engine never repeats the font-unit conversion inside the
// recursion. Field names match the distilled specification's naming
// exactly.
type Constants struct {
	SubscriptShiftDown          dimen.Em
	SubscriptTopMax             dimen.Em
	SubscriptBaselineDropMin    dimen.Em

	SuperscriptBaselineDropMax dimen.Em
	SuperscriptBottomMin       dimen.Em
	SuperscriptShiftUpCramped  dimen.Em
	SuperscriptShiftUp         dimen.Em
	SubSuperscriptGapMin       dimen.Em

	UpperLimitBaselineRiseMin dimen.Em
	UpperLimitGapMin          dimen.Em
	LowerLimitGapMin          dimen.Em
	LowerLimitBaselineDropMin dimen.Em

	FractionRuleThickness                    dimen.Em
	FractionNumeratorDisplayStyleShiftUp     dimen.Em
	FractionDenominatorDisplayStyleShiftDown dimen.Em
	FractionNumDisplayStyleGapMin            dimen.Em
	FractionDenomDisplayStyleGapMin          dimen.Em
	FractionNumeratorShiftUp                 dimen.Em
	FractionDenominatorShiftDown             dimen.Em
	FractionNumeratorGapMin                  dimen.Em
	FractionDenominatorGapMin                dimen.Em

	AxisHeight       dimen.Em
	AccentBaseHeight dimen.Em

	DelimitedSubFormulaMinHeight dimen.Em
	DisplayOperatorMinHeight     dimen.Em

	RadicalDisplayStyleVerticalGap dimen.Em
	RadicalVerticalGap             dimen.Em
	RadicalRuleThickness           dimen.Em
	RadicalExtraAscender           dimen.Em

	StackDisplayStyleGapMin     dimen.Em
	StackTopDisplayStyleShiftUp dimen.Em
	StackTopShiftUp             dimen.Em
	StackBottomShiftDown        dimen.Em
	StackGapMin                 dimen.Em

	DelimiterFactor     float64
	DelimiterShortFall  dimen.Em
	NullDelimiterSpace  dimen.Em

	ScriptPercentScaleDown       float64
	ScriptScriptPercentScaleDown float64
}

// NewConstants converts a raw MathConstants table (font design units) into
// em units via fontToEm.
//
// The SubscriptShiftDown field is deliberately initialized from
// SubscriptTopMax rather than from a SubscriptShiftDown table entry of its
// own (MathConstants carries none) — this mirrors an apparent typo in the
// constants table this engine is modeled on, kept faithfully so output
// matches exactly.
func NewConstants(math MathConstants, fontToEm dimen.FontToEm) Constants {
	em := func(v int16) dimen.Em { return fontToEm.Apply(dimen.Font(v)) }

	return Constants{
		SubscriptShiftDown:       em(math.SubscriptTopMax),
		SubscriptTopMax:          em(math.SubscriptTopMax),
		SubscriptBaselineDropMin: em(math.SubscriptBaselineDropMin),

		SuperscriptBaselineDropMax: em(math.SuperscriptBaselineDropMax),
		SuperscriptBottomMin:       em(math.SuperscriptBottomMin),
		SuperscriptShiftUpCramped:  em(math.SuperscriptShiftUpCramped),
		SuperscriptShiftUp:         em(math.SuperscriptShiftUp),
		SubSuperscriptGapMin:       em(math.SubSuperscriptGapMin),

		UpperLimitBaselineRiseMin: em(math.UpperLimitBaselineRiseMin),
		UpperLimitGapMin:          em(math.UpperLimitGapMin),
		LowerLimitGapMin:          em(math.LowerLimitGapMin),
		LowerLimitBaselineDropMin: em(math.LowerLimitBaselineDropMin),

		FractionRuleThickness:                    em(math.FractionRuleThickness),
		FractionNumeratorDisplayStyleShiftUp:     em(math.FractionNumeratorDisplayStyleShiftUp),
		FractionDenominatorDisplayStyleShiftDown: em(math.FractionDenominatorDisplayStyleShiftDown),
		FractionNumDisplayStyleGapMin:            em(math.FractionNumDisplayStyleGapMin),
		FractionDenomDisplayStyleGapMin:          em(math.FractionDenomDisplayStyleGapMin),
		FractionNumeratorShiftUp:                 em(math.FractionNumeratorShiftUp),
		FractionDenominatorShiftDown:             em(math.FractionDenominatorShiftDown),
		FractionNumeratorGapMin:                  em(math.FractionNumeratorGapMin),
		FractionDenominatorGapMin:                em(math.FractionDenominatorGapMin),

		AxisHeight:       em(math.AxisHeight),
		AccentBaseHeight: em(math.AccentBaseHeight),

		DelimitedSubFormulaMinHeight: em(math.DelimitedSubFormulaMinHeight),
		DisplayOperatorMinHeight:     em(math.DisplayOperatorMinHeight),

		RadicalDisplayStyleVerticalGap: em(math.RadicalDisplayStyleVerticalGap),
		RadicalVerticalGap:             em(math.RadicalVerticalGap),
		RadicalRuleThickness:           em(math.RadicalRuleThickness),
		RadicalExtraAscender:           em(math.RadicalExtraAscender),

		StackDisplayStyleGapMin:     em(math.StackDisplayStyleGapMin),
		StackTopDisplayStyleShiftUp: em(math.StackTopDisplayStyleShiftUp),
		StackTopShiftUp:             em(math.StackTopShiftUp),
		StackBottomShiftDown:        em(math.StackBottomShiftDown),
		StackGapMin:                 em(math.StackGapMin),

		DelimiterFactor:    0.901,
		DelimiterShortFall: dimen.Em(0.1),
		NullDelimiterSpace: dimen.Em(0.1),

		ScriptPercentScaleDown:       0.01 * float64(math.ScriptPercentScaleDown),
		ScriptScriptPercentScaleDown: 0.01 * float64(math.ScriptScriptPercentScaleDown),
	}
}
