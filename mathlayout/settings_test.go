package mathlayout

import (
	"testing"

	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
)

func TestSettingsStyleTransitions(t *testing.T) {
	p := mathfont.NewStaticProvider()
	ctx := mathfont.NewFontContext(p)
	s := NewSettings(ctx, 10, mathast.Display)

	if got := s.Cramped().Style; got != mathast.DisplayCramped {
		t.Errorf("Cramped() from Display = %v, want DisplayCramped", got)
	}
	if got := s.SuperscriptVariant().Style; got != mathast.Script {
		t.Errorf("SuperscriptVariant() from Display = %v, want Script", got)
	}
	if got := s.Numerator().Style; got != mathast.Text {
		t.Errorf("Numerator() from Display = %v, want Text", got)
	}
	if got := s.WithText().Style; got != mathast.Text {
		t.Errorf("WithText() = %v, want Text", got)
	}
}

func TestSettingsToFontRoundTrip(t *testing.T) {
	p := mathfont.NewStaticProvider()
	p.UnitsPerEmFactor = 1.0 / 1000
	ctx := mathfont.NewFontContext(p)
	s := NewSettings(ctx, 12.0, mathast.Text)

	px := scaledFont(s, 500)
	font := s.ToFont(px)
	// ToFont is the inverse of the raw (unscaled) font->px conversion, not
	// of scaledFont (which additionally applies the style scale factor);
	// at Text style the scale factor is 1.0 so the round trip holds exactly.
	if font != 500 {
		t.Errorf("round trip 500 font units -> px -> font = %v, want 500", font)
	}
}
