package mathast

import "github.com/rivo/uniseg"

// TextToSymbols splits a literal text run (the content of a \text-like
// cell or a Stack/Array line given as plain text) into one Symbol node per
// user-perceived character, classified as at. Splitting on grapheme
// clusters rather than runes keeps a base letter and any combining marks
// riding with it together as a single glyph rather than being laid out
// (and spaced) as separate symbols.
func TextToSymbols(text string, at AtomType) []Node {
	var nodes []Node
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Runes()
		if len(cluster) == 0 {
			continue
		}
		nodes = append(nodes, &SymbolNode{Symbol: Symbol{Codepoint: cluster[0], AtomType: at}})
	}
	return nodes
}
