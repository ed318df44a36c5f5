package mathtables

import (
	"golang.org/x/text/unicode/norm"

	"github.com/boergens/gomath/mathast"
)

// namedSymbol pairs a TeX-style command name with the Symbol it resolves
// to.
type namedSymbol struct {
	name   string
	symbol mathast.Symbol
}

// shimTable holds names with no entry in a Unicode-math symbol table:
// TeX-only Greek letter names, escaped-punctuation shims, accent shims, and
// a handful of binary-operator/misc aliases. Grounded on the original
// engine's "others" name table.
var shimTable = []namedSymbol{
	{"Alpha", sym(0x391, mathast.Alpha)},
	{"Beta", sym(0x392, mathast.Alpha)},
	{"Gamma", sym(0x393, mathast.Alpha)},
	{"Delta", sym(0x394, mathast.Alpha)},
	{"Epsilon", sym(0x395, mathast.Alpha)},
	{"Zeta", sym(0x396, mathast.Alpha)},
	{"Eta", sym(0x397, mathast.Alpha)},
	{"Theta", sym(0x398, mathast.Alpha)},
	{"Iota", sym(0x399, mathast.Alpha)},
	{"Kappa", sym(0x39A, mathast.Alpha)},
	{"Lambda", sym(0x39B, mathast.Alpha)},
	{"Mu", sym(0x39C, mathast.Alpha)},
	{"Nu", sym(0x39D, mathast.Alpha)},
	{"Xi", sym(0x39E, mathast.Alpha)},
	{"Omicron", sym(0x39F, mathast.Alpha)},
	{"Pi", sym(0x3A0, mathast.Alpha)},
	{"Rho", sym(0x3A1, mathast.Alpha)},
	{"Sigma", sym(0x3A3, mathast.Alpha)},
	{"Tau", sym(0x3A4, mathast.Alpha)},
	{"Upsilon", sym(0x3A5, mathast.Alpha)},
	{"Phi", sym(0x3A6, mathast.Alpha)},
	{"Chi", sym(0x3A7, mathast.Alpha)},
	{"Psi", sym(0x3A8, mathast.Alpha)},
	{"Omega", sym(0x3A9, mathast.Alpha)},
	{"alpha", sym(0x3B1, mathast.Alpha)},
	{"beta", sym(0x3B2, mathast.Alpha)},
	{"gamma", sym(0x3B3, mathast.Alpha)},
	{"delta", sym(0x3B4, mathast.Alpha)},
	{"epsilon", sym(0x3B5, mathast.Alpha)},
	{"zeta", sym(0x3B6, mathast.Alpha)},
	{"eta", sym(0x3B7, mathast.Alpha)},
	{"theta", sym(0x3B8, mathast.Alpha)},
	{"iota", sym(0x3B9, mathast.Alpha)},
	{"kappa", sym(0x3BA, mathast.Alpha)},
	{"lambda", sym(0x3BB, mathast.Alpha)},
	{"mu", sym(0x3BC, mathast.Alpha)},
	{"nu", sym(0x3BD, mathast.Alpha)},
	{"xi", sym(0x3BE, mathast.Alpha)},
	{"omicron", sym(0x3BF, mathast.Alpha)},
	{"pi", sym(0x3C0, mathast.Alpha)},
	{"rho", sym(0x3C1, mathast.Alpha)},
	{"sigma", sym(0x3C3, mathast.Alpha)},
	{"tau", sym(0x3C4, mathast.Alpha)},
	{"upsilon", sym(0x3C5, mathast.Alpha)},
	{"phi", sym(0x3C6, mathast.Alpha)},
	{"chi", sym(0x3C7, mathast.Alpha)},
	{"psi", sym(0x3C8, mathast.Alpha)},
	{"omega", sym(0x3C9, mathast.Alpha)},

	{"varphi", sym(0x3C6, mathast.Alpha)},
	{"varsigma", sym(0x3C2, mathast.Alpha)},
	{"varbeta", sym(0x3D0, mathast.Alpha)},
	{"vartheta", sym(0x3D1, mathast.Alpha)},
	{"varpi", sym(0x3D6, mathast.Alpha)},
	{"varkappa", sym(0x3F0, mathast.Alpha)},
	{"varrho", sym(0x3F1, mathast.Alpha)},
	{"varTheta", sym(0x3F4, mathast.Alpha)},
	{"varepsilon", sym(0x3F5, mathast.Alpha)},
	{"to", sym(0x2192, mathast.Relation)},

	{"{", sym(0x7B, mathast.Open)},
	{"}", sym(0x7D, mathast.Close)},
	{"%", sym(0x25, mathast.Ordinal)},
	{"&", sym(0x26, mathast.Ordinal)},
	{"$", sym(0x24, mathast.Ordinal)},
	{"#", sym(0x23, mathast.Ordinal)},

	{"`", sym(0x300, mathast.Accent)},
	{"'", sym(0x301, mathast.Accent)},
	{"^", sym(0x302, mathast.Accent)},
	{"\"", sym(0x308, mathast.Accent)},
	{"~", sym(0x303, mathast.Accent)},
	{".", sym(0x307, mathast.Accent)},

	{"circ", sym(0x2218, mathast.Binary)},
	{"bullet", sym(0x2219, mathast.Binary)},
	{"diamond", sym(0x22C4, mathast.Binary)},

	{"cdots", sym(0x22EF, mathast.Alpha)},

	{"|", sym(0x2016, mathast.Fence)},
}

func sym(cp rune, at mathast.AtomType) mathast.Symbol {
	return mathast.Symbol{Codepoint: cp, AtomType: at}
}

// shimIndex is built once from shimTable for O(1) lookup.
var shimIndex = func() map[string]mathast.Symbol {
	m := make(map[string]mathast.Symbol, len(shimTable))
	for _, e := range shimTable {
		m[e.name] = e.symbol
	}
	return m
}()

// extraIndex holds entries loaded at runtime via LoadExtra, consulted
// before the built-in tables so deployments can override or add names
// without a rebuild.
var extraIndex = map[string]mathast.Symbol{}

// SymbolByName resolves a TeX-style command name (without the leading
// backslash) to its Symbol, consulting, in order, the runtime-loaded extra
// table and the built-in shim table. It does not consult a full
// Unicode-math operator dictionary; callers needing the complete set
// should layer one in via LoadExtra.
func SymbolByName(name string) (mathast.Symbol, bool) {
	name = norm.NFC.String(name)
	if s, ok := extraIndex[name]; ok {
		return s, true
	}
	s, ok := shimIndex[name]
	return s, ok
}

// extraFile is the on-disk shape LoadExtra expects: a flat list of
// (name, codepoint, atom type) entries.
type extraFile struct {
	Symbols []extraEntry `yaml:"symbols"`
}

type extraEntry struct {
	Name      string `yaml:"name"`
	Codepoint rune   `yaml:"codepoint"`
	AtomType  string `yaml:"atom_type"`
}

// atomTypeByName maps the small set of lowercase names LoadExtra accepts
// in its YAML documents to the corresponding mathast.AtomType.
var atomTypeByName = map[string]mathast.AtomType{
	"ordinal":     mathast.Ordinal,
	"alpha":       mathast.Alpha,
	"binary":      mathast.Binary,
	"relation":    mathast.Relation,
	"open":        mathast.Open,
	"close":       mathast.Close,
	"fence":       mathast.Fence,
	"punctuation": mathast.Punctuation,
	"inner":       mathast.Inner,
	"accent":      mathast.Accent,
	"transparent": mathast.Transparent,
}
