package dimen

import "testing"

func TestPxArithmetic(t *testing.T) {
	a := Px(10)
	b := Px(4)

	if a.Add(b) != 14 {
		t.Errorf("Add(10, 4) = %v, expected 14", a.Add(b))
	}
	if a.Sub(b) != 6 {
		t.Errorf("Sub(10, 4) = %v, expected 6", a.Sub(b))
	}
	if a.Max(b) != 10 {
		t.Errorf("Max(10, 4) = %v, expected 10", a.Max(b))
	}
	if a.Min(b) != 4 {
		t.Errorf("Min(10, 4) = %v, expected 4", a.Min(b))
	}
	if a.Neg() != -10 {
		t.Errorf("Neg(10) = %v, expected -10", a.Neg())
	}
}

func TestSumAndExtrema(t *testing.T) {
	vs := []Px{1, 5, -2, 3}
	if got := SumPx(vs...); got != 7 {
		t.Errorf("SumPx = %v, expected 7", got)
	}
	if got := MaxPx(vs...); got != 5 {
		t.Errorf("MaxPx = %v, expected 5", got)
	}
	if got := MinPx(vs...); got != -2 {
		t.Errorf("MinPx = %v, expected -2", got)
	}
}

func TestScaleComposition(t *testing.T) {
	fontToEm := FontToEm{Factor: 1.0 / 1000} // 1000 units per em
	emToPx := EmToPx{Factor: 12}             // 12px font size

	composed := Compose(fontToEm, emToPx)
	if got := composed.Apply(500); got != 6 {
		t.Errorf("500 font units at 1000upm, 12px -> %v, expected 6", got)
	}

	em := fontToEm.Apply(500)
	if em != 0.5 {
		t.Errorf("500 font units at 1000upm -> %v em, expected 0.5", em)
	}
	if px := emToPx.Apply(em); px != 6 {
		t.Errorf("0.5em at 12px -> %v, expected 6", px)
	}
}

func TestScaleInverse(t *testing.T) {
	fontToEm := FontToEm{Factor: 1.0 / 2000}
	emToFont := fontToEm.Inv()

	if got := emToFont.Apply(1); got != 2000 {
		t.Errorf("1em -> %v font units, expected 2000", got)
	}
}

func TestScalePxRoundTrip(t *testing.T) {
	fontToEm := FontToEm{Factor: 1.0 / 1000}
	emToPx := EmToPx{Factor: 12}

	pxToEm := emToPx.Inv()
	emToFont := fontToEm.Inv()
	pxToFont := ComposePxToFont(pxToEm, emToFont)

	px := Compose(fontToEm, emToPx).Apply(500)
	if got := pxToFont.Apply(px); got != 500 {
		t.Errorf("round trip 500 font units -> px -> font = %v, expected 500", got)
	}
}

func TestUnitToPx(t *testing.T) {
	em := UnitEm(0.5)
	if got := em.ToPx(20); got != 10 {
		t.Errorf("0.5em at 20px font size -> %v, expected 10", got)
	}

	px := UnitPx(7)
	if got := px.ToPx(20); got != 7 {
		t.Errorf("7px -> %v, expected 7 regardless of font size", got)
	}
}
