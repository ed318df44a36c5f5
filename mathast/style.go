package mathast

// Style is the cartesian {Display, Text, Script, ScriptScript} x
// {Normal, Cramped}: eight variants, totally ordered by size. It serves
// double duty as an inline AST node (ParseNode.Style switches the ambient
// style for subsequent siblings) and as the layout engine's style context
// (see mathlayout.Settings), matching the dual use of layout::Style in the
// original engine.
type Style int

const (
	ScriptScriptCramped Style = iota
	ScriptScript
	ScriptCramped
	Script
	TextCramped
	Text
	DisplayCramped
	Display
)

func (s Style) String() string {
	switch s {
	case ScriptScriptCramped:
		return "ScriptScriptCramped"
	case ScriptScript:
		return "ScriptScript"
	case ScriptCramped:
		return "ScriptCramped"
	case Script:
		return "Script"
	case TextCramped:
		return "TextCramped"
	case Text:
		return "Text"
	case DisplayCramped:
		return "DisplayCramped"
	case Display:
		return "Display"
	}
	return "Unknown"
}

// Cramped forces the cramped flag on, keeping the same size class.
func (s Style) Cramped() Style {
	switch s {
	case ScriptScriptCramped, ScriptScript:
		return ScriptScriptCramped
	case ScriptCramped, Script:
		return ScriptCramped
	case TextCramped, Text:
		return TextCramped
	default:
		return DisplayCramped
	}
}

// SuperscriptVariant returns the style used to lay out a superscript: one
// size class smaller, propagating the cramped flag.
func (s Style) SuperscriptVariant() Style {
	switch s {
	case Display, Text:
		return Script
	case DisplayCramped, TextCramped:
		return ScriptCramped
	case Script, ScriptScript:
		return ScriptScript
	default:
		return ScriptScriptCramped
	}
}

// SubscriptVariant returns the style used to lay out a subscript: one size
// class smaller and always cramped.
func (s Style) SubscriptVariant() Style {
	switch s {
	case Display, Text, DisplayCramped, TextCramped:
		return ScriptCramped
	default:
		return ScriptScriptCramped
	}
}

// Numerator returns the style used to lay out a fraction's numerator.
func (s Style) Numerator() Style {
	switch s {
	case Display:
		return Text
	case DisplayCramped:
		return TextCramped
	default:
		return s.SuperscriptVariant()
	}
}

// Denominator returns the style used to lay out a fraction's denominator.
func (s Style) Denominator() Style {
	switch s {
	case Display, DisplayCramped:
		return TextCramped
	default:
		return s.SubscriptVariant()
	}
}

// IsCramped reports whether the style is one of the four cramped variants.
func (s Style) IsCramped() bool {
	switch s {
	case Display, Text, Script, ScriptScript:
		return false
	default:
		return true
	}
}

// ScaleFactor returns the glyph scale-down factor for this style's size
// class: 1.0 for Display/Text, scriptScale for Script, scriptScriptScale
// for ScriptScript (cramped variants inherit their non-cramped factor).
func (s Style) ScaleFactor(scriptScale, scriptScriptScale float64) float64 {
	switch s {
	case Display, DisplayCramped, Text, TextCramped:
		return 1.0
	case Script, ScriptCramped:
		return scriptScale
	default:
		return scriptScriptScale
	}
}
