package mathfont

import "fmt"

// FontError reports a font lookup that failed: a codepoint absent from the
// font's cmap, or a glyph id with no metrics. The engine never substitutes
// a fallback glyph for these — see mathlayout's error-propagation policy.
type FontError struct {
	Codepoint rune
	GID       uint16
	byGID     bool
}

// MissingGlyphCodepoint reports that no glyph exists for the given
// codepoint.
func MissingGlyphCodepoint(cp rune) *FontError {
	return &FontError{Codepoint: cp}
}

// MissingGlyphGID reports that the given glyph id has no metrics in the
// font.
func MissingGlyphGID(gid uint16) *FontError {
	return &FontError{GID: gid, byGID: true}
}

func (e *FontError) Error() string {
	if e.byGID {
		return fmt.Sprintf("missing glyph with gid %d", e.GID)
	}
	return fmt.Sprintf("missing glyph for codepoint %q", e.Codepoint)
}

// ByGID reports whether the error was raised for a glyph id lookup rather
// than a codepoint lookup.
func (e *FontError) ByGID() bool { return e.byGID }
