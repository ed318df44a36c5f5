package mathlayout

import (
	"testing"

	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
)

func testSettings(t *testing.T) Settings {
	t.Helper()
	p := mathfont.NewStaticProvider()
	p.Constants = mathfont.MathConstants{
		AxisHeight:                   250,
		ScriptPercentScaleDown:       70,
		ScriptScriptPercentScaleDown: 50,
		SuperscriptShiftUp:           400,
		SuperscriptShiftUpCramped:    350,
		SuperscriptBaselineDropMax:   300,
		SuperscriptBottomMin:         100,
		SubscriptTopMax:              400,
		SubscriptBaselineDropMin:     50,
		SubSuperscriptGapMin:         50,
		DelimitedSubFormulaMinHeight: 1500,
		DisplayOperatorMinHeight:     1500,
	}
	p.Glyphs['x'] = mathfont.StaticGlyph{
		GID: 10, Advance: 500, XMin: 20, YMin: 0, XMax: 480, YMax: 450,
	}
	p.Glyphs['2'] = mathfont.StaticGlyph{
		GID: 11, Advance: 400, XMin: 20, YMin: 0, XMax: 380, YMax: 300,
	}
	p.Glyphs['+'] = mathfont.StaticGlyph{
		GID: 12, Advance: 600, XMin: 20, YMin: -50, XMax: 580, YMax: 400,
	}
	ctx := mathfont.NewFontContext(p)
	return NewSettings(ctx, 12.0, mathast.Text)
}

func symbolNode(cp rune, at mathast.AtomType) mathast.Node {
	return &mathast.SymbolNode{Symbol: mathast.Symbol{Codepoint: cp, AtomType: at}}
}

func TestLayoutSingleSymbol(t *testing.T) {
	settings := testSettings(t)
	nodes := []mathast.Node{symbolNode('x', mathast.Alpha)}

	l, err := LayoutNodes(nodes, settings)
	if err != nil {
		t.Fatalf("LayoutNodes: %v", err)
	}
	if len(l.Contents) != 1 {
		t.Fatalf("expected 1 content node, got %d", len(l.Contents))
	}
	if l.Width <= 0 {
		t.Fatalf("expected positive width, got %v", l.Width)
	}
}

func TestLayoutInsertsAtomSpacing(t *testing.T) {
	settings := testSettings(t)
	nodes := []mathast.Node{
		symbolNode('x', mathast.Alpha),
		symbolNode('+', mathast.Binary),
		symbolNode('2', mathast.Alpha),
	}

	l, err := LayoutNodes(nodes, settings)
	if err != nil {
		t.Fatalf("LayoutNodes: %v", err)
	}
	// x, medium-space kern, +, medium-space kern, 2 = 5 nodes.
	if len(l.Contents) != 5 {
		t.Fatalf("expected 5 content nodes (with spacing kerns), got %d", len(l.Contents))
	}
}

func TestLayoutLeadingBinaryCoercedToAlpha(t *testing.T) {
	settings := testSettings(t)
	// A binary atom with nothing before it must coerce to Alpha, so no
	// medium space is inserted before it.
	nodes := []mathast.Node{
		symbolNode('+', mathast.Binary),
		symbolNode('x', mathast.Alpha),
	}

	l, err := LayoutNodes(nodes, settings)
	if err != nil {
		t.Fatalf("LayoutNodes: %v", err)
	}
	if len(l.Contents) != 2 {
		t.Fatalf("expected 2 content nodes (no spacing before coerced leading binary), got %d", len(l.Contents))
	}
}

func TestLayoutScriptsSuperscript(t *testing.T) {
	settings := testSettings(t)
	scripts := &mathast.Scripts{
		Base:        symbolNode('x', mathast.Alpha),
		Superscript: []mathast.Node{symbolNode('2', mathast.Alpha)},
	}

	l, err := LayoutNodes([]mathast.Node{scripts}, settings)
	if err != nil {
		t.Fatalf("LayoutNodes: %v", err)
	}
	// base box + scripts vbox.
	if len(l.Contents) != 2 {
		t.Fatalf("expected 2 content nodes (base, scripts), got %d", len(l.Contents))
	}
	if l.Height <= 0 {
		t.Fatalf("expected superscript to raise total height above base alone, got %v", l.Height)
	}
}

func TestLayoutRadical(t *testing.T) {
	settings := testSettings(t)
	settings.Ctx.Constants.RadicalVerticalGap = dimen.Em(0.05)
	settings.Ctx.Constants.RadicalRuleThickness = dimen.Em(0.04)
	settings.Ctx.Constants.RadicalExtraAscender = dimen.Em(0.04)
	settings.Ctx.Provider.(*mathfont.StaticProvider).Glyphs['√'] = mathfont.StaticGlyph{
		GID: 13, Advance: 700, XMin: 0, YMin: -50, XMax: 700, YMax: 900,
	}

	rad := &mathast.Radical{Inner: []mathast.Node{symbolNode('x', mathast.Alpha)}}
	l, err := LayoutNodes([]mathast.Node{rad}, settings)
	if err != nil {
		t.Fatalf("LayoutNodes: %v", err)
	}
	if len(l.Contents) != 2 {
		t.Fatalf("expected sqrt glyph box + rule/contents box, got %d", len(l.Contents))
	}
}

func TestLayoutFraction(t *testing.T) {
	settings := testSettings(t)
	settings.Ctx.Constants.FractionRuleThickness = dimen.Em(0.04)
	settings.Ctx.Constants.FractionNumeratorShiftUp = dimen.Em(0.6)
	settings.Ctx.Constants.FractionDenominatorShiftDown = dimen.Em(0.6)
	settings.Ctx.Constants.FractionNumeratorGapMin = dimen.Em(0.1)
	settings.Ctx.Constants.FractionDenominatorGapMin = dimen.Em(0.1)

	frac := &mathast.GenFraction{
		Numerator:    []mathast.Node{symbolNode('x', mathast.Alpha)},
		Denominator:  []mathast.Node{symbolNode('2', mathast.Alpha)},
		BarThickness: mathast.DefaultBar,
		Style:        mathast.FractionNoChange,
	}

	l, err := LayoutNodes([]mathast.Node{frac}, settings)
	if err != nil {
		t.Fatalf("LayoutNodes: %v", err)
	}
	// left delim kern + inner + right delim kern.
	if len(l.Contents) != 3 {
		t.Fatalf("expected 3 content nodes (null delims + inner), got %d", len(l.Contents))
	}
}

func TestLayoutSymbolAppliesStyleBeforeGlyphLookup(t *testing.T) {
	settings := testSettings(t)
	// Blackboard-bold 'A' lives at U+1D538 in the Unicode math alphanumeric
	// block; register it distinctly from plain 'A' so the test can tell
	// whether the styled or the bare codepoint was resolved.
	settings.Ctx.Provider.(*mathfont.StaticProvider).Glyphs['A'] = mathfont.StaticGlyph{
		GID: 20, Advance: 500, XMax: 480, YMax: 450,
	}
	settings.Ctx.Provider.(*mathfont.StaticProvider).Glyphs[0x1D538] = mathfont.StaticGlyph{
		GID: 21, Advance: 600, XMax: 580, YMax: 450,
	}

	styled := &mathast.SymbolNode{Symbol: mathast.Symbol{
		Codepoint: 'A',
		AtomType:  mathast.Alpha,
		Style:     mathfont.SymbolStyle{Family: mathfont.FamilyBlackboard},
	}}

	l, err := LayoutNodes([]mathast.Node{styled}, settings)
	if err != nil {
		t.Fatalf("LayoutNodes: %v", err)
	}
	if len(l.Contents) != 1 {
		t.Fatalf("expected 1 content node, got %d", len(l.Contents))
	}
	g, ok := l.Contents[0].Variant.(LayoutGlyph)
	if !ok {
		t.Fatalf("expected a glyph node, got %T", l.Contents[0].Variant)
	}
	if g.GID != 21 {
		t.Errorf("expected styled lookup to resolve the blackboard-bold glyph (GID 21), got GID %d", g.GID)
	}
}

func TestLayoutMissingGlyphPropagatesError(t *testing.T) {
	settings := testSettings(t)
	nodes := []mathast.Node{symbolNode('Z', mathast.Alpha)}

	if _, err := LayoutNodes(nodes, settings); err == nil {
		t.Fatalf("expected error for unresolvable glyph")
	}
}
