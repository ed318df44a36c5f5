package mathlayout

import (
	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathfont"
)

// scaledFont converts a Font length to Px under the given Settings: font
// units to px via the font context's units-per-em and font size, then
// scaled down further by the current style's size class.
func scaledFont(s Settings, v dimen.Font) dimen.Px {
	return s.fontToPx().Apply(v).Scale(s.scaleFactor())
}

// scaledEm converts an Em length to Px under the given Settings.
func scaledEm(s Settings, v dimen.Em) dimen.Px {
	return s.FontSize.Apply(v).Scale(s.scaleFactor())
}

// rawEm converts an Em length to Px at the current font size alone, with no
// style-dependent scale-down applied. A handful of geometry computations
// (delimiter clearance, axis height used as a raw threshold) intentionally
// work in this unscaled space before the final result is re-scaled, mirroring
// the original engine's direct `value * config.font_size` expressions.
func rawEm(s Settings, v dimen.Em) dimen.Px {
	return s.FontSize.Apply(v)
}

// scaledPx rescales a Px length by the current style's size class alone
// (used for lengths already expressed in px, e.g. atom spacing converted
// once to em and then to px).
func scaledPx(s Settings, v dimen.Px) dimen.Px {
	return v.Scale(s.scaleFactor())
}

// scaledUnit resolves a user-declared Unit (em or px) to Px, scaled by the
// current style's size class.
func scaledUnit(s Settings, u dimen.Unit) dimen.Px {
	return u.ToPx(dimen.Px(s.FontSize.Factor)).Scale(s.scaleFactor())
}

// glyphAsLayout converts a resolved font Glyph into a LayoutNode.
func glyphAsLayout(s Settings, g mathfont.Glyph) LayoutNode {
	return LayoutNode{
		Height: scaledFont(s, g.Height()),
		Width:  scaledFont(s, g.Advance),
		Depth:  scaledFont(s, g.Depth()),
		Variant: LayoutGlyph{
			GID:        g.GID,
			Size:       scaledEm(s, 1),
			Attachment: scaledFont(s, g.Attachment),
			Italics:    scaledFont(s, g.Italics),
		},
	}
}

// ruleAsLayout converts an AST rule (a plain filled box of the given
// width/height) into a LayoutNode.
func ruleAsLayout(s Settings, width, height dimen.Unit) LayoutNode {
	return LayoutNode{
		Width:   scaledUnit(s, width),
		Height:  scaledUnit(s, height),
		Variant: RuleBox{},
	}
}

// variantAsLayout converts a font VariantGlyph — a single replacement
// glyph or an assembly of glyph parts glued along an axis — into a
// LayoutNode.
func variantAsLayout(s Settings, v mathfont.VariantGlyph) (LayoutNode, error) {
	if v.IsReplacement() {
		g, err := s.Ctx.GlyphFromGID(v.Replacement)
		if err != nil {
			return LayoutNode{}, err
		}
		return glyphAsLayout(s, g), nil
	}

	switch v.Direction {
	case mathfont.Vertical:
		contents := NewVBox()
		for _, part := range v.Parts {
			g, err := s.Ctx.GlyphFromGID(part.GID)
			if err != nil {
				return LayoutNode{}, err
			}
			contents.InsertNode(0, glyphAsLayout(s, g))
			if part.Overlap != 0 {
				overlap := part.Overlap + g.Depth()
				contents.AddNode(kernVert(-scaledFont(s, overlap)))
			}
		}
		return contents.Build(), nil

	default: // mathfont.Horizontal
		contents := NewHBox()
		for _, part := range v.Parts {
			g, err := s.Ctx.GlyphFromGID(part.GID)
			if err != nil {
				return LayoutNode{}, err
			}
			if part.Overlap != 0 {
				contents.AddNode(kernHorz(-scaledFont(s, part.Overlap)))
			}
			contents.AddNode(glyphAsLayout(s, g))
		}
		return contents.Build(), nil
	}
}
