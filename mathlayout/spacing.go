package mathlayout

import (
	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathast"
)

// Spacing is one of the four discrete inter-atom gaps the TeXbook's
// spacing table assigns.
type Spacing int

const (
	SpacingNone Spacing = iota
	SpacingThin
	SpacingMedium
	SpacingThick
)

// ToEm returns the em-unit width of a Spacing value.
func (sp Spacing) ToEm() dimen.Em {
	switch sp {
	case SpacingThin:
		return dimen.Em(1.0 / 6.0)
	case SpacingMedium:
		return dimen.Em(2.0 / 9.0)
	case SpacingThick:
		return dimen.Em(1.0 / 3.0)
	default:
		return 0
	}
}

// AtomSpace returns the spacing to insert between two adjacent atom types
// at the given style, per the TeXbook's spacing table (pg. 170). Text and
// Display styles use the full table; Script and ScriptScript styles (and
// their cramped variants) only insert Thin space, and only around
// operators.
func AtomSpace(left, right mathast.AtomType, style mathast.Style) Spacing {
	if style >= mathast.TextCramped {
		return atomSpaceText(left, right)
	}
	return atomSpaceScript(left, right)
}

func atomSpaceText(left, right mathast.AtomType) Spacing {
	_, leftOp := left.IsOperator()
	_, rightOp := right.IsOperator()

	switch {
	case left.Equal(mathast.Alpha) && rightOp:
		return SpacingThin
	case left.Equal(mathast.Alpha) && right.Equal(mathast.Binary):
		return SpacingMedium
	case left.Equal(mathast.Alpha) && right.Equal(mathast.Relation):
		return SpacingThick
	case left.Equal(mathast.Alpha) && right.Equal(mathast.Inner):
		return SpacingThin
	case leftOp && right.Equal(mathast.Alpha):
		return SpacingThin
	case leftOp && rightOp:
		return SpacingThin
	case leftOp && right.Equal(mathast.Relation):
		return SpacingThick
	case leftOp && right.Equal(mathast.Inner):
		return SpacingThin
	case left.Equal(mathast.Binary) && right.Equal(mathast.Alpha):
		return SpacingMedium
	case left.Equal(mathast.Binary) && rightOp:
		return SpacingMedium
	case left.Equal(mathast.Binary) && right.Equal(mathast.Open):
		return SpacingMedium
	case left.Equal(mathast.Binary) && right.Equal(mathast.Inner):
		return SpacingMedium
	case left.Equal(mathast.Relation) && right.Equal(mathast.Alpha):
		return SpacingThick
	case left.Equal(mathast.Relation) && rightOp:
		return SpacingThick
	case left.Equal(mathast.Relation) && right.Equal(mathast.Open):
		return SpacingThick
	case left.Equal(mathast.Relation) && right.Equal(mathast.Inner):
		return SpacingThick
	case left.Equal(mathast.Close) && rightOp:
		return SpacingThin
	case left.Equal(mathast.Close) && right.Equal(mathast.Binary):
		return SpacingMedium
	case left.Equal(mathast.Close) && right.Equal(mathast.Relation):
		return SpacingThick
	case left.Equal(mathast.Close) && right.Equal(mathast.Inner):
		return SpacingThin

	case left.Equal(mathast.Inner) && right.Equal(mathast.Binary):
		return SpacingMedium
	case left.Equal(mathast.Inner) && right.Equal(mathast.Relation):
		return SpacingThick
	case left.Equal(mathast.Inner) && right.Equal(mathast.Close):
		return SpacingNone
	case left.Equal(mathast.Inner):
		return SpacingThin

	case left.Equal(mathast.Punctuation):
		return SpacingThin

	default:
		return SpacingNone
	}
}

func atomSpaceScript(left, right mathast.AtomType) Spacing {
	_, leftOp := left.IsOperator()
	_, rightOp := right.IsOperator()

	switch {
	case left.Equal(mathast.Alpha) && rightOp:
		return SpacingThin
	case leftOp && right.Equal(mathast.Alpha):
		return SpacingThin
	case leftOp && rightOp:
		return SpacingThin
	case left.Equal(mathast.Close) && rightOp:
		return SpacingThin
	case left.Equal(mathast.Inner) && rightOp:
		return SpacingThin
	default:
		return SpacingNone
	}
}
