package mathfont

import "github.com/boergens/gomath/dimen"

// kernFrom evaluates a single corner's kern table at height h, returning 0
// if the glyph has no record for that corner.
func kernFrom(table KernTable, h dimen.Font) dimen.Font {
	if table == nil {
		return 0
	}
	return table.KernForHeight(h)
}

// SuperscriptKern computes the extra horizontal kern to apply between a
// base glyph and a superscript glyph already shifted up by shift, using the
// base's top-right and the superscript's bottom-left cut-in tables. Two
// candidate kerns are evaluated (one at the base's own height, one at the
// superscript's bottom after it is shifted up) and the larger is used, matching the
// OpenType MATH recommendation for tight superscript placement.
func SuperscriptKern(base, sup Glyph, baseHeight, shift dimen.Font) dimen.Font {
	kt := kernFrom(base.kernInfo.TopRight, baseHeight) + kernFrom(sup.kernInfo.BottomLeft, baseHeight)
	ks := kernFrom(base.kernInfo.TopRight, sup.Depth()+shift) + kernFrom(sup.kernInfo.BottomLeft, sup.Depth()+shift)
	if kt > ks {
		return kt
	}
	return ks
}

// SubscriptKern computes the extra horizontal kern to apply between a base
// glyph and a subscript glyph shifted down by shift, using the base's
// bottom-right and the subscript's top-left cut-in tables. The smaller of
// the two candidate kerns is used.
func SubscriptKern(base, sub Glyph, baseDepth, shift dimen.Font) dimen.Font {
	kt := kernFrom(base.kernInfo.BottomRight, baseDepth) + kernFrom(sub.kernInfo.TopLeft, baseDepth)
	ks := kernFrom(base.kernInfo.BottomRight, sub.Height()-shift) + kernFrom(sub.kernInfo.TopLeft, sub.Height()-shift)
	if kt < ks {
		return kt
	}
	return ks
}
