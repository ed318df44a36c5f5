package mathtables

import (
	"testing"

	"github.com/boergens/gomath/mathast"
)

func TestSymbolByNameBuiltin(t *testing.T) {
	cases := []struct {
		name string
		cp   rune
	}{
		{"alpha", 0x3B1},
		{"to", 0x2192},
		{"{", 0x7B},
		{"cdots", 0x22EF},
	}
	for _, c := range cases {
		s, ok := SymbolByName(c.name)
		if !ok {
			t.Errorf("SymbolByName(%q) not found", c.name)
			continue
		}
		if s.Codepoint != c.cp {
			t.Errorf("SymbolByName(%q).Codepoint = %#x, want %#x", c.name, s.Codepoint, c.cp)
		}
	}
}

func TestSymbolByNameUnknown(t *testing.T) {
	if _, ok := SymbolByName("notarealsymbol"); ok {
		t.Error("expected unknown name to miss")
	}
}

func TestLoadExtraOverridesBuiltin(t *testing.T) {
	defer ResetExtra()
	err := LoadExtra([]byte(`
symbols:
  - name: therefore
    codepoint: 8756
    atom_type: relation
  - name: alpha
    codepoint: 65
    atom_type: ordinal
`))
	if err != nil {
		t.Fatalf("LoadExtra: %v", err)
	}
	s, ok := SymbolByName("therefore")
	if !ok || s.Codepoint != 0x2234 {
		t.Errorf("therefore = %+v, ok=%v", s, ok)
	}
	s, ok = SymbolByName("alpha")
	if !ok || s.Codepoint != 'A' || !s.AtomType.Equal(mathast.Ordinal) {
		t.Errorf("alpha override = %+v, ok=%v", s, ok)
	}
}

func TestLoadExtraRejectsUnknownAtomType(t *testing.T) {
	defer ResetExtra()
	err := LoadExtra([]byte(`
symbols:
  - name: bogus
    codepoint: 65
    atom_type: notreal
`))
	if err == nil {
		t.Fatal("expected error for unknown atom type")
	}
}
