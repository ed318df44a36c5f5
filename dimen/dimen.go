// Package dimen implements the length and scale algebra used throughout the
// layout engine. Three unit spaces exist: Font (raw font design units), Em
// (font-relative), and Px (device pixels after scaling by a font size).
// Arithmetic is closed within a unit; crossing unit spaces requires an
// explicit Scale.
package dimen

import "fmt"

// Font is a length expressed in raw font design units (the font's own
// unitsPerEm grid, before any scaling).
type Font float64

// Em is a length expressed in font-relative em units (1 em = the current
// font size).
type Em float64

// Px is a length expressed in device pixels, the unit of the final box
// tree consumed by a renderer.
type Px float64

func (v Font) Add(w Font) Font  { return v + w }
func (v Font) Sub(w Font) Font  { return v - w }
func (v Font) Neg() Font        { return -v }
func (v Font) Scale(k float64) Font { return Font(float64(v) * k) }
func (v Font) IsZero() bool     { return v == 0 }
func (v Font) Max(w Font) Font  { if v > w { return v }; return w }
func (v Font) Min(w Font) Font  { if v < w { return v }; return w }
func (v Font) String() string   { return fmt.Sprintf("%g Font", float64(v)) }

func (v Em) Add(w Em) Em  { return v + w }
func (v Em) Sub(w Em) Em  { return v - w }
func (v Em) Neg() Em      { return -v }
func (v Em) Scale(k float64) Em { return Em(float64(v) * k) }
func (v Em) IsZero() bool { return v == 0 }
func (v Em) Max(w Em) Em  { if v > w { return v }; return w }
func (v Em) Min(w Em) Em  { if v < w { return v }; return w }
func (v Em) String() string { return fmt.Sprintf("%g Em", float64(v)) }

func (v Px) Add(w Px) Px  { return v + w }
func (v Px) Sub(w Px) Px  { return v - w }
func (v Px) Neg() Px      { return -v }
func (v Px) Scale(k float64) Px { return Px(float64(v) * k) }
func (v Px) IsZero() bool { return v == 0 }
func (v Px) Max(w Px) Px  { if v > w { return v }; return w }
func (v Px) Min(w Px) Px  { if v < w { return v }; return w }
func (v Px) String() string { return fmt.Sprintf("%g Px", float64(v)) }

// SumPx adds a sequence of Px lengths.
func SumPx(vs ...Px) Px {
	var total Px
	for _, v := range vs {
		total += v
	}
	return total
}

// SumEm adds a sequence of Em lengths.
func SumEm(vs ...Em) Em {
	var total Em
	for _, v := range vs {
		total += v
	}
	return total
}

// MaxPx returns the maximum of a non-empty sequence of Px lengths.
func MaxPx(vs ...Px) Px {
	m := vs[0]
	for _, v := range vs[1:] {
		m = m.Max(v)
	}
	return m
}

// MinPx returns the minimum of a non-empty sequence of Px lengths.
func MinPx(vs ...Px) Px {
	m := vs[0]
	for _, v := range vs[1:] {
		m = m.Min(v)
	}
	return m
}

// FontToEm is a conversion factor from Font units to Em units, i.e. the
// reciprocal of a font's unitsPerEm.
type FontToEm struct{ Factor float64 }

// EmToPx is a conversion factor from Em units to Px units, i.e. the current
// font size in pixels per em.
type EmToPx struct{ Factor float64 }

// FontToPx is the composition of FontToEm and EmToPx.
type FontToPx struct{ Factor float64 }

// Apply converts a Font length into an Em length.
func (s FontToEm) Apply(v Font) Em { return Em(float64(v) * s.Factor) }

// Apply converts an Em length into a Px length.
func (s EmToPx) Apply(v Em) Px { return Px(float64(v) * s.Factor) }

// Apply converts a Font length directly into a Px length.
func (s FontToPx) Apply(v Font) Px { return Px(float64(v) * s.Factor) }

// Compose builds the Font->Px scale from Font->Em and Em->Px scales, mirroring
// Scale<T,U> composition in the original phantom-typed design.
func Compose(fontToEm FontToEm, emToPx EmToPx) FontToPx {
	return FontToPx{Factor: fontToEm.Factor * emToPx.Factor}
}

// Inv returns the reciprocal scale, converting Em back to Font units.
func (s FontToEm) Inv() EmToFont { return EmToFont{Factor: 1 / s.Factor} }

// EmToFont is the reciprocal of FontToEm.
type EmToFont struct{ Factor float64 }

// Apply converts an Em length into a Font length.
func (s EmToFont) Apply(v Em) Font { return Font(float64(v) * s.Factor) }

// Inv returns the reciprocal scale, converting Px back to Em units.
func (s EmToPx) Inv() PxToEm { return PxToEm{Factor: 1 / s.Factor} }

// PxToEm is the reciprocal of EmToPx.
type PxToEm struct{ Factor float64 }

// Apply converts a Px length into an Em length.
func (s PxToEm) Apply(v Px) Em { return Em(float64(v) * s.Factor) }

// Inv returns the reciprocal scale, converting Px back to Font units.
func (s FontToPx) Inv() PxToFont { return PxToFont{Factor: 1 / s.Factor} }

// PxToFont is the reciprocal of FontToPx.
type PxToFont struct{ Factor float64 }

// Apply converts a Px length into a Font length.
func (s PxToFont) Apply(v Px) Font { return Font(float64(v) * s.Factor) }

// ComposePxToFont builds the Px->Font scale from Px->Em and Em->Font scales.
func ComposePxToFont(pxToEm PxToEm, emToFont EmToFont) PxToFont {
	return PxToFont{Factor: pxToEm.Factor * emToFont.Factor}
}

// Unit is a user-declared dimension not yet bound to the current font: a sum
// of Em(f64) or Px(f64), exactly as it appears in the input AST before
// layout resolves it against a font size.
type Unit struct {
	isPx  bool
	value float64
}

// UnitEm constructs an em-valued Unit.
func UnitEm(v float64) Unit { return Unit{isPx: false, value: v} }

// UnitPx constructs a px-valued Unit.
func UnitPx(v float64) Unit { return Unit{isPx: true, value: v} }

// IsPx reports whether the unit was declared in pixels rather than ems.
func (u Unit) IsPx() bool { return u.isPx }

// Value returns the raw numeric value, ignoring which unit it is tagged with.
func (u Unit) Value() float64 { return u.value }

// ToPx resolves a Unit to a Px length given the current font size in pixels
// per em: {Em(x) -> x*fontSize, Px(x) -> x}.
func (u Unit) ToPx(fontSize Px) Px {
	if u.isPx {
		return Px(u.value)
	}
	return Px(u.value * float64(fontSize))
}
