package mathfont

import (
	"testing"

	"github.com/boergens/gomath/dimen"
)

func testProvider() *StaticProvider {
	p := NewStaticProvider()
	p.Constants = MathConstants{
		AxisHeight:             250,
		FractionRuleThickness:  40,
		SubscriptTopMax:        300,
		SuperscriptShiftUp:     350,
	}
	p.Glyphs['x'] = StaticGlyph{
		GID:        12,
		Advance:    500,
		LSB:        20,
		Italics:    30,
		Attachment: 260,
		XMax:       480, YMax: 450,
		Kern: KernInfo{
			TopRight: StepTable{
				CorrectionHeight: []dimen.Font{100, 300},
				KernValue:        []dimen.Font{5, 10},
			},
		},
	}
	p.Glyphs['y'] = StaticGlyph{GID: 13, Advance: 300}
	return p
}

func TestFontContextGlyphLookup(t *testing.T) {
	fc := NewFontContext(testProvider())
	g, err := fc.Glyph('x')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.GID != 12 {
		t.Errorf("GID = %d, want 12", g.GID)
	}
	if g.Advance != 500 {
		t.Errorf("Advance = %v, want 500", g.Advance)
	}
}

func TestFontContextMissingGlyph(t *testing.T) {
	fc := NewFontContext(testProvider())
	_, err := fc.Glyph('z')
	if err == nil {
		t.Fatal("expected error for missing glyph")
	}
	fe, ok := err.(*FontError)
	if !ok {
		t.Fatalf("expected *FontError, got %T: %v", err, err)
	}
	if fe.ByGID() {
		t.Errorf("expected codepoint-based error")
	}
}

func TestStepTableKernForHeight(t *testing.T) {
	kt := StepTable{
		CorrectionHeight: []dimen.Font{100, 300},
		KernValue:        []dimen.Font{5, 10},
	}
	cases := []struct {
		h    dimen.Font
		want dimen.Font
	}{
		{0, 5},
		{100, 5},
		{200, 10},
		{301, 10},
	}
	for _, c := range cases {
		if got := kt.KernForHeight(c.h); got != c.want {
			t.Errorf("KernForHeight(%v) = %v, want %v", c.h, got, c.want)
		}
	}
}

func TestSuperscriptKernUsesLargerCandidate(t *testing.T) {
	// The base-height candidate (h=400) reads 20, the shifted-superscript
	// candidate (h=-10+350=340) reads 5; the larger one must win.
	base := Glyph{kernInfo: KernInfo{TopRight: StepTable{
		CorrectionHeight: []dimen.Font{350, 1000},
		KernValue:        []dimen.Font{5, 20},
	}}}
	sup := Glyph{BBoxYMin: -10, BBoxYMax: 40}
	k := SuperscriptKern(base, sup, 400, 350)
	if k != 20 {
		t.Errorf("SuperscriptKern = %v, want 20", k)
	}
}
