package mathast

import "github.com/boergens/gomath/mathfont"

// Symbol is a single math token bound to a codepoint and the atom
// classification governing its spacing. Style selects a math alphanumeric
// variant (e.g. blackboard-bold, fraktur) to resolve the codepoint to
// before glyph lookup; the zero Style leaves Codepoint unchanged.
type Symbol struct {
	Codepoint rune
	AtomType  AtomType
	Style     mathfont.SymbolStyle
}

// StyledCodepoint returns the codepoint the layout engine should actually
// look up: Codepoint run through mathfont.StyleSymbol for s.Style.
func (s Symbol) StyledCodepoint() rune {
	return mathfont.StyleSymbol(s.Codepoint, s.Style)
}

// ExpectLeft validates that the symbol is usable as a left (opening)
// delimiter: Open, Fence, or the null-delimiter placeholder '.'.
func (s Symbol) ExpectLeft() (Symbol, error) {
	if s.AtomType.is(kindOpen) || s.AtomType.is(kindFence) || s.Codepoint == '.' {
		return s, nil
	}
	return Symbol{}, &ParseError{Kind: ErrExpectedOpen, Sym: s}
}

// ExpectRight validates that the symbol is usable as a right (closing)
// delimiter: Close, Fence, or the null-delimiter placeholder '.'.
func (s Symbol) ExpectRight() (Symbol, error) {
	if s.AtomType.is(kindClose) || s.AtomType.is(kindFence) || s.Codepoint == '.' {
		return s, nil
	}
	return Symbol{}, &ParseError{Kind: ErrExpectedClose, Sym: s}
}
