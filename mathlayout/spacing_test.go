package mathlayout

import (
	"testing"

	"github.com/boergens/gomath/mathast"
)

func TestAtomSpaceTextTable(t *testing.T) {
	cases := []struct {
		left, right mathast.AtomType
		want        Spacing
	}{
		{mathast.Alpha, mathast.Binary, SpacingMedium},
		{mathast.Alpha, mathast.Relation, SpacingThick},
		{mathast.Relation, mathast.Alpha, SpacingThick},
		{mathast.Binary, mathast.Alpha, SpacingMedium},
		{mathast.Inner, mathast.Close, SpacingNone},
		{mathast.Punctuation, mathast.Alpha, SpacingThin},
		{mathast.Alpha, mathast.Alpha, SpacingNone},
	}
	for _, c := range cases {
		if got := AtomSpace(c.left, c.right, mathast.Text); got != c.want {
			t.Errorf("AtomSpace(%v, %v, Text) = %v, want %v", c.left, c.right, got, c.want)
		}
	}
}

func TestAtomSpaceScriptTableOnlyThinAroundOperators(t *testing.T) {
	if got := AtomSpace(mathast.Alpha, mathast.Binary, mathast.Script); got != SpacingNone {
		t.Errorf("script-style spacing between Alpha/Binary should be None, got %v", got)
	}
	if got := AtomSpace(mathast.Alpha, mathast.Operator(false), mathast.Script); got != SpacingThin {
		t.Errorf("script-style spacing before an operator should be Thin, got %v", got)
	}
}

func TestSpacingToEm(t *testing.T) {
	if SpacingThin.ToEm() != 1.0/6.0 {
		t.Errorf("thin space should be 1/6 em")
	}
	if SpacingMedium.ToEm() != 2.0/9.0 {
		t.Errorf("medium space should be 2/9 em")
	}
	if SpacingThick.ToEm() != 1.0/3.0 {
		t.Errorf("thick space should be 1/3 em")
	}
	if SpacingNone.ToEm() != 0 {
		t.Errorf("no space should be 0 em")
	}
}
