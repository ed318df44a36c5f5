package mathast

import "testing"

func TestTextToSymbolsOneNodePerGrapheme(t *testing.T) {
	nodes := TextToSymbols("abc", Alpha)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 symbol nodes, got %d", len(nodes))
	}
	for i, want := range []rune{'a', 'b', 'c'} {
		sym, ok := nodeSymbol(nodes[i])
		if !ok || sym.Codepoint != want {
			t.Errorf("node %d: expected symbol %q, got %+v (ok=%v)", i, want, sym, ok)
		}
		if sym.AtomType != Alpha {
			t.Errorf("node %d: expected Alpha atom type, got %v", i, sym.AtomType)
		}
	}
}

func TestTextToSymbolsEmptyString(t *testing.T) {
	if nodes := TextToSymbols("", Alpha); nodes != nil {
		t.Fatalf("expected nil for empty text, got %+v", nodes)
	}
}

func TestTextToSymbolsKeepsCombiningMarkBaseRune(t *testing.T) {
	// "e" followed by COMBINING ACUTE ACCENT (U+0301) forms one grapheme
	// cluster; TextToSymbols should produce a single symbol keyed on the
	// base rune, not one node per rune.
	decomposedEAcute := "e" + string(rune(0x0301))
	nodes := TextToSymbols(decomposedEAcute, Alpha)
	if len(nodes) != 1 {
		t.Fatalf("expected combining sequence to collapse to 1 node, got %d", len(nodes))
	}
	sym, ok := nodeSymbol(nodes[0])
	if !ok || sym.Codepoint != 'e' {
		t.Fatalf("expected base rune 'e', got %+v (ok=%v)", sym, ok)
	}
}
