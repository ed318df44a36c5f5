package mathast

import "fmt"

// ParseError reports a structural problem in the AST discovered while the
// layout engine interprets it (e.g. a delimiter slot holding a symbol that
// isn't actually an opening or closing bracket). The engine itself never
// constructs a ParseError from font data — that's FontError, in mathfont.
type ParseError struct {
	Kind ParseErrorKind
	Sym  Symbol
}

// ParseErrorKind enumerates the distinguishable ParseError cases.
type ParseErrorKind int

const (
	ErrExpectedOpen ParseErrorKind = iota
	ErrExpectedClose
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrExpectedOpen:
		return fmt.Sprintf("expected an opening delimiter, found symbol %q (%s)", e.Sym.Codepoint, e.Sym.AtomType)
	case ErrExpectedClose:
		return fmt.Sprintf("expected a closing delimiter, found symbol %q (%s)", e.Sym.Codepoint, e.Sym.AtomType)
	}
	return "unknown parse error"
}
