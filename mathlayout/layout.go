// Package mathlayout implements the recursive algorithm that turns a math
// AST into a tree of positioned boxes: the same Horizontal/Vertical box
// model HTML and TeX both use, sized in device pixels, with every
// inter-glyph gap already resolved from font metrics and atom spacing
// rules.
package mathlayout

import (
	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathast"
)

// AlignmentKind selects how a box is positioned within a wider slot.
type AlignmentKind int

const (
	AlignDefault AlignmentKind = iota
	AlignInherit
	AlignLeft
	AlignCentered
	AlignRight
)

// Alignment pairs an AlignmentKind with the width it's relative to; Width
// is unused for AlignDefault/AlignInherit/AlignLeft.
type Alignment struct {
	Kind  AlignmentKind
	Width dimen.Px
}

// Centered builds an Alignment that centers a box of the given natural
// width within its slot.
func Centered(width dimen.Px) Alignment { return Alignment{Kind: AlignCentered, Width: width} }

// RightAligned builds an Alignment that right-aligns a box of the given
// natural width within its slot.
func RightAligned(width dimen.Px) Alignment { return Alignment{Kind: AlignRight, Width: width} }

// LeftAligned is the left-alignment constant.
var LeftAligned = Alignment{Kind: AlignLeft}

// LayoutVariant is the sealed set of concrete box kinds a LayoutNode can
// carry.
type LayoutVariant interface {
	isLayoutVariant()
}

// Grid holds a sparse two-dimensional arrangement of boxes (used for array
// environments), along with each column's width and each row's
// height/depth.
type Grid struct {
	Contents map[GridPos]LayoutNode
	Columns  []dimen.Px
	Rows     []RowExtent
}

func (Grid) isLayoutVariant() {}

// GridPos addresses one cell of a Grid.
type GridPos struct{ Row, Col int }

// RowExtent is a Grid row's height above, and depth below, its baseline.
type RowExtent struct{ Height, Depth dimen.Px }

// HorizontalBox lays its contents out left to right.
type HorizontalBox struct {
	Contents  []LayoutNode
	Offset    dimen.Px
	Alignment Alignment
}

func (HorizontalBox) isLayoutVariant() {}

// VerticalBox stacks its contents top to bottom.
type VerticalBox struct {
	Contents  []LayoutNode
	Offset    dimen.Px
	Alignment Alignment
}

func (VerticalBox) isLayoutVariant() {}

// LayoutGlyph is a single positioned glyph.
type LayoutGlyph struct {
	GID        uint16
	Size       dimen.Px
	Offset     dimen.Px
	Attachment dimen.Px
	Italics    dimen.Px
}

func (LayoutGlyph) isLayoutVariant() {}

// ColorChange wraps a run of boxes that should render in a different color.
type ColorChange struct {
	Color mathast.RGBA
	Inner []LayoutNode
}

func (ColorChange) isLayoutVariant() {}

// RuleBox is a solid filled rectangle (e.g. a fraction bar or radical
// rule); its extent comes from the enclosing LayoutNode's Width/Height.
type RuleBox struct{}

func (RuleBox) isLayoutVariant() {}

// KernBox is pure spacing with no visible content; its extent comes from
// the enclosing LayoutNode's Width (horizontal kern) or Height (vertical
// kern).
type KernBox struct{}

func (KernBox) isLayoutVariant() {}

// LayoutNode is one positioned box in the output tree: its own extent plus
// the concrete Variant describing what it contains.
type LayoutNode struct {
	Width, Height, Depth dimen.Px
	Variant              LayoutVariant
}

// IsSymbol reports whether contents is exactly one node that is (possibly
// through HorizontalBox/VerticalBox/ColorChange wrapping) a single glyph,
// returning that glyph if so. Used to apply font-kerning-table corrections
// only when both sides of a script pair are plain symbols.
func IsSymbol(contents []LayoutNode) (LayoutGlyph, bool) {
	if len(contents) != 1 {
		return LayoutGlyph{}, false
	}
	return nodeIsSymbol(contents[0])
}

func nodeIsSymbol(n LayoutNode) (LayoutGlyph, bool) {
	switch v := n.Variant.(type) {
	case LayoutGlyph:
		return v, true
	case HorizontalBox:
		return IsSymbol(v.Contents)
	case VerticalBox:
		return IsSymbol(v.Contents)
	case ColorChange:
		return IsSymbol(v.Inner)
	default:
		return LayoutGlyph{}, false
	}
}

// CenterOnAxis shifts n so its vertical center sits on axis: a VerticalBox
// gets its offset adjusted in place, a bare glyph is wrapped in a new
// VerticalBox carrying the shift, anything else is returned unchanged.
func (n LayoutNode) CenterOnAxis(axis dimen.Px) LayoutNode {
	shift := (n.Height + n.Depth).Scale(0.5) - axis
	switch v := n.Variant.(type) {
	case VerticalBox:
		v.Offset = shift
		n.Height -= shift
		n.Depth -= shift
		n.Variant = v
		return n
	case LayoutGlyph:
		return vboxOffset(shift, n)
	default:
		return n
	}
}

// Layout is the accumulator used while building a horizontal run of
// LayoutNodes: the same role Layout plays in the original engine before
// being finalized into a single LayoutNode.
type Layout struct {
	Contents  []LayoutNode
	Width     dimen.Px
	Height    dimen.Px
	Depth     dimen.Px
	Offset    dimen.Px
	Alignment Alignment
}

// NewLayout returns an empty accumulator.
func NewLayout() *Layout { return &Layout{} }

// AddNode appends n, growing width and widening the [height,depth] extent.
func (l *Layout) AddNode(n LayoutNode) {
	l.Width += n.Width
	l.Height = dimen.MaxPx(l.Height, n.Height)
	l.Depth = dimen.MinPx(l.Depth, n.Depth)
	l.Contents = append(l.Contents, n)
}

// SetOffset records the vertical offset to subtract out in Finalize.
func (l *Layout) SetOffset(offset dimen.Px) { l.Offset = offset }

// Finalize removes the accumulated offset from height/depth, after which
// the Layout is ready to become a LayoutNode.
func (l *Layout) Finalize() *Layout {
	l.Depth -= l.Offset
	l.Height -= l.Offset
	return l
}

// AsNode converts the accumulator into a HorizontalBox LayoutNode.
func (l *Layout) AsNode() LayoutNode {
	return LayoutNode{
		Width:  l.Width,
		Height: l.Height,
		Depth:  l.Depth,
		Variant: HorizontalBox{
			Contents:  l.Contents,
			Offset:    l.Offset,
			Alignment: l.Alignment,
		},
	}
}

// Centered marks the accumulator itself as centered within newWidth,
// widening it without touching its contents.
func (l *Layout) Centered(newWidth dimen.Px) *Layout {
	l.Alignment = Centered(l.Width)
	l.Width = newWidth
	return l
}

// IsSymbol reports whether the accumulator currently holds exactly one
// node that resolves to a single glyph.
func (l *Layout) IsSymbol() (LayoutGlyph, bool) {
	return IsSymbol(l.Contents)
}
