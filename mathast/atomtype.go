// Package mathast defines the math AST consumed by the layout engine: the
// ParseNode tree, atom classification, symbols, colors, and the cascading
// style used both as an inline AST switch and as the layout engine's style
// context.
package mathast

// AtomType classifies a math token for the purposes of inter-token spacing
// and the binary-coercion rule. Operator carries whether the operator
// should display its scripts as limits (above/below) rather than side-set.
type AtomType struct {
	kind   atomKind
	limits bool
}

type atomKind uint8

const (
	kindOrdinal atomKind = iota
	kindAlpha
	kindBinary
	kindRelation
	kindOpen
	kindClose
	kindFence
	kindPunctuation
	kindInner
	kindAccent
	kindOperator
	kindTransparent
)

var (
	Ordinal     = AtomType{kind: kindOrdinal}
	Alpha       = AtomType{kind: kindAlpha}
	Binary      = AtomType{kind: kindBinary}
	Relation    = AtomType{kind: kindRelation}
	Open        = AtomType{kind: kindOpen}
	Close       = AtomType{kind: kindClose}
	Fence       = AtomType{kind: kindFence}
	Punctuation = AtomType{kind: kindPunctuation}
	Inner       = AtomType{kind: kindInner}
	Accent      = AtomType{kind: kindAccent}
	Transparent = AtomType{kind: kindTransparent}
)

// Operator constructs an Operator atom type, with limits indicating whether
// super/subscripts should be placed above/below the base rather than beside
// it (e.g. \sum takes limits in display style, \log never does).
func Operator(limits bool) AtomType {
	return AtomType{kind: kindOperator, limits: limits}
}

// IsOperator reports whether this is an Operator atom, and if so whether it
// takes limits.
func (a AtomType) IsOperator() (limits bool, ok bool) {
	return a.limits, a.kind == kindOperator
}

func (a AtomType) is(k atomKind) bool { return a.kind == k }

func (a AtomType) String() string {
	switch a.kind {
	case kindOrdinal:
		return "Ordinal"
	case kindAlpha:
		return "Alpha"
	case kindBinary:
		return "Binary"
	case kindRelation:
		return "Relation"
	case kindOpen:
		return "Open"
	case kindClose:
		return "Close"
	case kindFence:
		return "Fence"
	case kindPunctuation:
		return "Punctuation"
	case kindInner:
		return "Inner"
	case kindAccent:
		return "Accent"
	case kindOperator:
		return "Operator"
	case kindTransparent:
		return "Transparent"
	}
	return "Unknown"
}

// Equal reports whether two atom types are the same, including (for
// Operator) the same limits flag.
func (a AtomType) Equal(b AtomType) bool { return a == b }
