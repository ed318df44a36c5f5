package mathast

import "github.com/boergens/gomath/dimen"

// Node is the sealed interface implemented by every ParseNode variant. The
// unexported marker method prevents other packages from adding new
// variants, matching the closed-enum discipline of the Rust source's
// ParseNode.
type Node interface {
	isNode()
	// AtomType reports the atom classification used by the spacing table
	// and the binary-coercion rule when this node appears in a sequence.
	AtomType() AtomType
}

// SetAtomType overrides the effective atom type of nodes that carry one
// explicitly (Symbol, Scripts.Base, AtomChange, Stack); all other variants
// ignore the call, mirroring ParseNode::set_atom_type's match arms.
func SetAtomType(n Node, at AtomType) {
	switch v := n.(type) {
	case *SymbolNode:
		v.Symbol.AtomType = at
	case *Scripts:
		if v.Base != nil {
			SetAtomType(v.Base, at)
		}
	case *AtomChange:
		v.At = at
	case *Stack:
		v.AtomType = at
	}
}

// IsSymbol returns the unique symbol of a one-element sequence, peering
// through Scripts.Base, Accent.Nucleus, AtomChange.Inner, and Color.Inner.
func IsSymbol(seq []Node) (Symbol, bool) {
	if len(seq) != 1 {
		return Symbol{}, false
	}
	return nodeSymbol(seq[0])
}

func nodeSymbol(n Node) (Symbol, bool) {
	switch v := n.(type) {
	case *SymbolNode:
		return v.Symbol, true
	case *Scripts:
		if v.Base == nil {
			return Symbol{}, false
		}
		return nodeSymbol(v.Base)
	case *Accent:
		return IsSymbol(v.Nucleus)
	case *AtomChange:
		return IsSymbol(v.Inner)
	case *Color:
		return IsSymbol(v.Inner)
	}
	return Symbol{}, false
}

// SymbolNode wraps a single Symbol as a ParseNode.
type SymbolNode struct{ Symbol Symbol }

func (*SymbolNode) isNode() {}
func (n *SymbolNode) AtomType() AtomType { return n.Symbol.AtomType }

// Delimited wraps Inner between Left and Right delimiter symbols.
type Delimited struct {
	Left, Right Symbol
	Inner       []Node
}

func (*Delimited) isNode() {}
func (*Delimited) AtomType() AtomType { return Inner }

// Radical is a square root (or higher-index radical, left unindexed here per
// the distilled AST) applied to Inner.
type Radical struct{ Inner []Node }

func (*Radical) isNode() {}
func (*Radical) AtomType() AtomType { return Alpha }

// BarThickness selects the fraction rule's thickness.
type BarThickness struct {
	kind  barKind
	value dimen.Unit
}

type barKind uint8

const (
	barDefault barKind = iota
	barNone
	barUnit
)

var DefaultBar = BarThickness{kind: barDefault}
var NoBar = BarThickness{kind: barNone}

// UnitBar constructs a BarThickness with an explicit user-declared unit.
func UnitBar(u dimen.Unit) BarThickness { return BarThickness{kind: barUnit, value: u} }

// Kind reports which of the three bar-thickness cases this value holds.
func (b BarThickness) Kind() (isDefault, isNone bool, unit dimen.Unit) {
	return b.kind == barDefault, b.kind == barNone, b.value
}

// FractionStyle selects whether a GenFraction overrides the ambient style.
type FractionStyle int

const (
	FractionNoChange FractionStyle = iota
	FractionDisplay
	FractionText
)

// GenFraction is a generalized fraction: a numerator over a denominator,
// with an optional rule thickness override, optional flanking delimiters,
// and an optional forced display/text style.
type GenFraction struct {
	Numerator, Denominator       []Node
	BarThickness                 BarThickness
	LeftDelimiter, RightDelimiter *Symbol
	Style                         FractionStyle
}

func (*GenFraction) isNode() {}
func (*GenFraction) AtomType() AtomType { return Inner }

// Scripts attaches an optional superscript and/or subscript to an optional
// base.
type Scripts struct {
	Base                  Node
	Superscript, Subscript []Node
}

func (*Scripts) isNode() {}
func (s *Scripts) AtomType() AtomType {
	if s.Base == nil {
		return Alpha
	}
	return s.Base.AtomType()
}

// Rule is a filled rectangle of the given width and height (both
// user-declared, unbound units).
type Rule struct{ Width, Height dimen.Unit }

func (*Rule) isNode() {}
func (*Rule) AtomType() AtomType { return Alpha }

// Kerning is an explicit horizontal kern of a user-declared dimension.
type Kerning struct{ Amount dimen.Unit }

func (*Kerning) isNode() {}
func (*Kerning) AtomType() AtomType { return Transparent }

// Accent places Symbol over (or under, depending on the symbol) Nucleus.
type Accent struct {
	Symbol  Symbol
	Nucleus []Node
}

func (*Accent) isNode() {}
func (a *Accent) AtomType() AtomType {
	if len(a.Nucleus) == 0 {
		return Alpha
	}
	return a.Nucleus[0].AtomType()
}

// StyleNode is an inline style switch: subsequent siblings in the enclosing
// sequence are laid out under the given Style until overridden again.
type StyleNode struct{ Style Style }

func (*StyleNode) isNode() {}
func (*StyleNode) AtomType() AtomType { return Transparent }

// AtomChange reclassifies Inner's effective atom type to At.
type AtomChange struct {
	At    AtomType
	Inner []Node
}

func (*AtomChange) isNode() {}
func (n *AtomChange) AtomType() AtomType { return n.At }

// Color wraps Inner in a color scope.
type Color struct {
	RGBA  RGBA
	Inner []Node
}

func (*Color) isNode() {}
func (c *Color) AtomType() AtomType {
	if len(c.Inner) == 0 {
		return Alpha
	}
	return c.Inner[0].AtomType()
}

// Group is a sequence of nodes laid out as a single horizontal unit.
type Group struct{ Inner []Node }

func (*Group) isNode() {}
func (*Group) AtomType() AtomType { return Alpha }

// Stack is a vertically-stacked sequence of lines (\substack and similar).
type Stack struct {
	AtomType_ AtomType
	Lines     [][]Node
}

func (*Stack) isNode() {}
func (s *Stack) AtomType() AtomType { return s.AtomType_ }

// Extend is a stretchable character extended to a user-declared dimension.
// The original dispatcher never handles this variant; the layout engine
// preserves that and treats it as a no-op (see mathlayout's dispatch
// switch).
type Extend struct {
	Codepoint rune
	Amount    dimen.Unit
}

func (*Extend) isNode() {}
func (*Extend) AtomType() AtomType { return Inner }

// Array is a grid of cells with optional flanking delimiters and per-column
// formatting.
type Array struct {
	ColumnFormat                  ColumnsFormatting
	Rows                          [][][]Node
	LeftDelimiter, RightDelimiter *Symbol
}

func (*Array) isNode() {}
func (*Array) AtomType() AtomType { return Inner }
