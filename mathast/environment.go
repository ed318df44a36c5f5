package mathast

// Environment names a recognized array-like environment, used to build an
// Array node with the delimiters and formatting the environment implies
// without the caller having to spell them out. Grounded on the original's
// environments.rs Environment enum.
type Environment int

const (
	EnvArray Environment = iota
	EnvMatrix
	EnvPMatrix
	EnvBMatrix
	EnvBbMatrix
	EnvVMatrix
	EnvVvMatrix
)

// EnvironmentFromName parses an environment name into its Environment
// value, mirroring Environment::try_from_str.
func EnvironmentFromName(name string) (Environment, bool) {
	switch name {
	case "array":
		return EnvArray, true
	case "matrix":
		return EnvMatrix, true
	case "pmatrix":
		return EnvPMatrix, true
	case "bmatrix":
		return EnvBMatrix, true
	case "Bmatrix":
		return EnvBbMatrix, true
	case "vmatrix":
		return EnvVMatrix, true
	case "Vmatrix":
		return EnvVvMatrix, true
	}
	return 0, false
}

// delimiters returns the (left, right) delimiter symbols implied by an
// environment, or (nil, nil) for environments without automatic delimiters.
func (e Environment) delimiters() (left, right *Symbol) {
	paren := func(cp rune) *Symbol { return &Symbol{Codepoint: cp, AtomType: Fence} }
	switch e {
	case EnvPMatrix:
		return paren('('), paren(')')
	case EnvBMatrix:
		return paren('['), paren(']')
	case EnvBbMatrix:
		return paren('{'), paren('}')
	case EnvVMatrix:
		return paren('|'), paren('|')
	case EnvVvMatrix:
		return paren('‖'), paren('‖')
	default:
		return nil, nil
	}
}

// ColumnAlign is the horizontal alignment of a single array column.
type ColumnAlign int

const (
	ColumnCentered ColumnAlign = iota
	ColumnLeft
	ColumnRight
)

// ColumnFormat holds one column's alignment and the count of vertical bar
// rules immediately to its left. mathlayout's array layout does not read
// it: every cell is centered in its column and no bar rules are drawn.
type ColumnFormat struct {
	Align    ColumnAlign
	LeftBars int
}

// ColumnsFormatting is the full per-array column formatting: one
// ColumnFormat per column plus a trailing bar count after the last column.
type ColumnsFormatting struct {
	Columns   []ColumnFormat
	RightBars int
}

// NewArrayFromEnvironment builds an Array node for a named environment,
// filling in the delimiters the environment implies and defaulting every
// column to centered alignment with no bars — a genuine supplement over the
// bare Array node, letting callers write "\begin{pmatrix}...\end{pmatrix}"
// without manually specifying left/right delimiter symbols.
func NewArrayFromEnvironment(env Environment, rows [][][]Node) *Array {
	left, right := env.delimiters()
	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	cols := make([]ColumnFormat, numCols)
	return &Array{
		ColumnFormat:  ColumnsFormatting{Columns: cols},
		Rows:          rows,
		LeftDelimiter: left,
		RightDelimiter: right,
	}
}
