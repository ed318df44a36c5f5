package mathfont

// Family selects a math alphanumeric symbol family (TeXbook/Unicode-math
// style families), used to pick a codepoint variant of a letter before
// layout — e.g. \mathbb{R} needs the blackboard-bold variant of 'R', a
// different codepoint entirely under Unicode math.
type Family int

const (
	FamilyNormal Family = iota
	FamilyRoman
	FamilyScript
	FamilyFraktur
	FamilySansSerif
	FamilyBlackboard
	FamilyMonospace
)

// Weight selects bold/italic shaping within a Family.
type Weight int

const (
	WeightNone Weight = iota
	WeightItalic
	WeightBold
	WeightBoldItalic
)

// WithBold returns the weight produced by additionally applying bold.
func (w Weight) WithBold() Weight {
	if w == WeightItalic || w == WeightBoldItalic {
		return WeightBoldItalic
	}
	return WeightBold
}

// WithItalics returns the weight produced by additionally applying italics.
func (w Weight) WithItalics() Weight {
	if w == WeightBold || w == WeightBoldItalic {
		return WeightBoldItalic
	}
	return WeightItalic
}

// SymbolStyle is a (Family, Weight) pair selecting a math alphanumeric
// variant.
type SymbolStyle struct {
	Family Family
	Weight Weight
}

// WithFamily returns a copy of s with Family replaced.
func (s SymbolStyle) WithFamily(f Family) SymbolStyle { s.Family = f; return s }

// WithWeight returns a copy of s with Weight replaced.
func (s SymbolStyle) WithWeight(w Weight) SymbolStyle { s.Weight = w; return s }

// WithBold returns a copy of s with bold applied to its weight.
func (s SymbolStyle) WithBold() SymbolStyle { s.Weight = s.Weight.WithBold(); return s }

// WithItalics returns a copy of s with italics applied to its weight.
func (s SymbolStyle) WithItalics() SymbolStyle { s.Weight = s.Weight.WithItalics(); return s }

// mathAlphanumericBase maps a (Family, Weight) pair to the Unicode
// "Mathematical Alphanumeric Symbols" block's base offset for uppercase
// Latin letters, covering the families the Unicode Math standard actually
// assigns a contiguous block to. Families/weights without a dedicated
// block (e.g. FamilyNormal) fall back to the input codepoint unchanged.
var mathAlphanumericBase = map[SymbolStyle]rune{
	{FamilyRoman, WeightBold}:        0x1D400, // MATHEMATICAL BOLD CAPITAL A
	{FamilyRoman, WeightItalic}:      0x1D434, // MATHEMATICAL ITALIC CAPITAL A
	{FamilyRoman, WeightBoldItalic}:  0x1D468,
	{FamilyScript, WeightNone}:       0x1D49C,
	{FamilyScript, WeightBold}:       0x1D4D0,
	{FamilyFraktur, WeightNone}:      0x1D504,
	{FamilyFraktur, WeightBold}:      0x1D56C,
	{FamilyBlackboard, WeightNone}:   0x1D538,
	{FamilySansSerif, WeightNone}:    0x1D5A0,
	{FamilySansSerif, WeightBold}:    0x1D5D4,
	{FamilySansSerif, WeightItalic}:  0x1D608,
	{FamilyMonospace, WeightNone}:    0x1D670,
}

// StyleSymbol maps an ASCII uppercase letter to its styled Unicode
// alphanumeric variant for the requested (Family, Weight), returning cp
// unchanged if no dedicated Unicode block exists for that combination (or
// the input isn't an uppercase ASCII letter).
func StyleSymbol(cp rune, style SymbolStyle) rune {
	if cp < 'A' || cp > 'Z' {
		return cp
	}
	base, ok := mathAlphanumericBase[style]
	if !ok {
		return cp
	}
	return base + (cp - 'A')
}
