package mathfont

import "github.com/boergens/gomath/dimen"

// Glyph is a resolved glyph's metrics in font design units: its advance,
// left side bearing, italics correction, top accent attachment point, and
// bounding box (xmin, ymin, xmax, ymax).
type Glyph struct {
	GID        uint16
	Advance    dimen.Font
	LSB        dimen.Font
	Italics    dimen.Font
	Attachment dimen.Font
	BBoxXMin   dimen.Font
	BBoxYMin   dimen.Font
	BBoxXMax   dimen.Font
	BBoxYMax   dimen.Font

	kernInfo KernInfo
}

// Height is the glyph's extent above the baseline.
func (g Glyph) Height() dimen.Font { return g.BBoxYMax }

// Depth is the glyph's extent below the baseline (bbox ymin, typically
// negative or zero).
func (g Glyph) Depth() dimen.Font { return g.BBoxYMin }

// Direction is the axis along which a VariantGlyph is constructed.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// GlyphPart is one piece of a Constructable VariantGlyph: a glyph id and
// the amount by which it should overlap the adjacent part.
type GlyphPart struct {
	GID     uint16
	Overlap dimen.Font
}

// VariantGlyph is the result of requesting a glyph grown (or shrunk) to a
// target size: either a single replacement glyph, or an assembly of parts
// glued together along Direction.
type VariantGlyph struct {
	Replacement uint16
	isReplacement bool

	Direction Direction
	Parts     []GlyphPart
}

// NewReplacementVariant builds a VariantGlyph that is a single replacement
// glyph.
func NewReplacementVariant(gid uint16) VariantGlyph {
	return VariantGlyph{Replacement: gid, isReplacement: true}
}

// NewConstructableVariant builds a VariantGlyph assembled from parts along
// dir.
func NewConstructableVariant(dir Direction, parts []GlyphPart) VariantGlyph {
	return VariantGlyph{Direction: dir, Parts: parts}
}

// IsReplacement reports whether this variant is a single replacement glyph
// rather than a constructed assembly.
func (v VariantGlyph) IsReplacement() bool { return v.isReplacement }
