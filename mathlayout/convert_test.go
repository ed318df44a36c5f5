package mathlayout

import (
	"testing"

	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
)

func TestGlyphAsLayoutScalesFontUnits(t *testing.T) {
	p := mathfont.NewStaticProvider()
	ctx := mathfont.NewFontContext(p)
	s := NewSettings(ctx, 12.0, mathast.Text)

	g := mathfont.Glyph{GID: 7, Advance: 500, BBoxYMax: 400, BBoxYMin: -50}
	node := glyphAsLayout(s, g)

	glyph, ok := node.Variant.(LayoutGlyph)
	if !ok {
		t.Fatalf("expected LayoutGlyph variant, got %T", node.Variant)
	}
	if glyph.GID != 7 {
		t.Errorf("expected GID 7, got %v", glyph.GID)
	}
	if node.Width <= 0 || node.Height <= 0 {
		t.Errorf("expected positive scaled width/height, got width=%v height=%v", node.Width, node.Height)
	}
	if node.Depth >= 0 {
		t.Errorf("expected negative depth from negative bbox ymin, got %v", node.Depth)
	}
}

func TestRuleAsLayoutUsesDeclaredUnit(t *testing.T) {
	p := mathfont.NewStaticProvider()
	ctx := mathfont.NewFontContext(p)
	s := NewSettings(ctx, 10.0, mathast.Text)

	node := ruleAsLayout(s, dimen.UnitEm(1), dimen.UnitPx(3))
	if _, ok := node.Variant.(RuleBox); !ok {
		t.Fatalf("expected RuleBox variant, got %T", node.Variant)
	}
	if node.Width != 10 {
		t.Errorf("expected 1em at 10px font size = 10px width, got %v", node.Width)
	}
	if node.Height != 3 {
		t.Errorf("expected 3px declared directly, got %v", node.Height)
	}
}

func TestVariantAsLayoutReplacement(t *testing.T) {
	p := mathfont.NewStaticProvider()
	p.Glyphs['('] = mathfont.StaticGlyph{GID: 20, Advance: 300, YMax: 600, YMin: -100}
	ctx := mathfont.NewFontContext(p)
	s := NewSettings(ctx, 10.0, mathast.Text)

	v := mathfont.NewReplacementVariant(20)
	node, err := variantAsLayout(s, v)
	if err != nil {
		t.Fatalf("variantAsLayout: %v", err)
	}
	glyph, ok := node.Variant.(LayoutGlyph)
	if !ok || glyph.GID != 20 {
		t.Fatalf("expected replacement glyph GID 20, got %+v", node.Variant)
	}
}

func TestVariantAsLayoutConstructedVertical(t *testing.T) {
	p := mathfont.NewStaticProvider()
	p.Glyphs['a'] = mathfont.StaticGlyph{GID: 1, Advance: 100, YMax: 100, YMin: 0}
	p.Glyphs['b'] = mathfont.StaticGlyph{GID: 2, Advance: 100, YMax: 100, YMin: 0}
	ctx := mathfont.NewFontContext(p)
	s := NewSettings(ctx, 10.0, mathast.Text)

	v := mathfont.NewConstructableVariant(mathfont.Vertical, []mathfont.GlyphPart{
		{GID: 1, Overlap: 0},
		{GID: 2, Overlap: 10},
	})
	node, err := variantAsLayout(s, v)
	if err != nil {
		t.Fatalf("variantAsLayout: %v", err)
	}
	vb, ok := node.Variant.(VerticalBox)
	if !ok {
		t.Fatalf("expected VerticalBox variant, got %T", node.Variant)
	}
	// Two glyphs plus one overlap kern.
	if len(vb.Contents) != 3 {
		t.Fatalf("expected 3 contents (2 glyphs + 1 kern), got %d", len(vb.Contents))
	}
}
