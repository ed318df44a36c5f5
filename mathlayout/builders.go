package mathlayout

import (
	"github.com/boergens/gomath/dimen"
	"github.com/boergens/gomath/mathast"
)

// VBoxBuilder accumulates LayoutNodes stacked top to bottom, tracking the
// widest child's width and the running total height as nodes are added.
// The Go equivalent of the original engine's vbox! builder macro.
type VBoxBuilder struct {
	width, height, depth dimen.Px
	node                 VerticalBox
}

// NewVBox returns an empty VBoxBuilder.
func NewVBox() *VBoxBuilder { return &VBoxBuilder{} }

// InsertNode inserts n at position idx, widening the box as needed.
func (b *VBoxBuilder) InsertNode(idx int, n LayoutNode) {
	b.width = dimen.MaxPx(b.width, n.Width)
	b.height += n.Height
	b.node.Contents = append(b.node.Contents, LayoutNode{})
	copy(b.node.Contents[idx+1:], b.node.Contents[idx:])
	b.node.Contents[idx] = n
}

// AddNode appends n to the bottom of the stack.
func (b *VBoxBuilder) AddNode(n LayoutNode) {
	b.width = dimen.MaxPx(b.width, n.Width)
	b.height += n.Height
	b.node.Contents = append(b.node.Contents, n)
}

// SetOffset records the vertical offset Build will subtract from
// height/depth, leaving the baseline at the requested row.
func (b *VBoxBuilder) SetOffset(offset dimen.Px) { b.node.Offset = offset }

// Build finalizes the box: depth comes from the last child's depth alone
// (a vbox's shape below the baseline is entirely the last row's), adjusted
// by the offset.
func (b *VBoxBuilder) Build() LayoutNode {
	if n := len(b.node.Contents); n > 0 {
		b.depth = b.node.Contents[n-1].Depth
	}
	b.depth -= b.node.Offset
	b.height -= b.node.Offset
	return LayoutNode{Width: b.width, Height: b.height, Depth: b.depth, Variant: b.node}
}

// HBoxBuilder accumulates LayoutNodes laid out left to right. The Go
// equivalent of the original engine's hbox! builder macro.
type HBoxBuilder struct {
	width, height, depth dimen.Px
	node                 HorizontalBox
}

// NewHBox returns an empty HBoxBuilder.
func NewHBox() *HBoxBuilder { return &HBoxBuilder{} }

// AddNode appends n to the right of the run.
func (b *HBoxBuilder) AddNode(n LayoutNode) {
	b.width += n.Width
	b.height = dimen.MaxPx(b.height, n.Height)
	b.depth = dimen.MinPx(b.depth, n.Depth)
	b.node.Contents = append(b.node.Contents, n)
}

// SetOffset records the vertical offset Build will subtract from
// height/depth.
func (b *HBoxBuilder) SetOffset(offset dimen.Px) { b.node.Offset = offset }

// SetAlignment records how this box should be positioned within a wider
// slot.
func (b *HBoxBuilder) SetAlignment(a Alignment) { b.node.Alignment = a }

// SetWidth overrides the box's reported width, independent of its
// contents' combined width (used when a box must report a wider slot than
// its natural content for alignment purposes).
func (b *HBoxBuilder) SetWidth(w dimen.Px) { b.width = w }

// Build finalizes the box.
func (b *HBoxBuilder) Build() LayoutNode {
	b.depth -= b.node.Offset
	b.height -= b.node.Offset
	return LayoutNode{Width: b.width, Height: b.height, Depth: b.depth, Variant: b.node}
}

// GridBuilder accumulates a sparse row/column arrangement, tracking each
// column's max width and each row's max height/min depth as cells are
// inserted.
type GridBuilder struct {
	contents map[GridPos]LayoutNode
	rows     []RowExtent
	columns  []dimen.Px
}

// NewGrid returns an empty GridBuilder.
func NewGrid() *GridBuilder {
	return &GridBuilder{contents: map[GridPos]LayoutNode{}}
}

// Insert places n at (row, col), growing the row/column extent tables as
// needed.
func (g *GridBuilder) Insert(row, col int, n LayoutNode) {
	for row >= len(g.rows) {
		g.rows = append(g.rows, RowExtent{})
	}
	if n.Height > g.rows[row].Height {
		g.rows[row].Height = n.Height
	}
	if n.Depth < g.rows[row].Depth {
		g.rows[row].Depth = n.Depth
	}
	for col >= len(g.columns) {
		g.columns = append(g.columns, 0)
	}
	if n.Width > g.columns[col] {
		g.columns[col] = n.Width
	}
	g.contents[GridPos{Row: row, Col: col}] = n
}

// Build finalizes the grid: total width is the sum of column widths, total
// height the sum of each row's (height - depth).
func (g *GridBuilder) Build() LayoutNode {
	width := dimen.SumPx(g.columns...)
	var height dimen.Px
	for _, r := range g.rows {
		height += r.Height - r.Depth
	}
	return LayoutNode{
		Width:  width,
		Height: height,
		Variant: Grid{
			Contents: g.contents,
			Columns:  g.columns,
			Rows:     g.rows,
		},
	}
}

// XOffsets returns each column's cumulative x-offset from the grid's left
// edge.
func (g *GridBuilder) XOffsets() []dimen.Px {
	offsets := make([]dimen.Px, len(g.columns))
	var acc dimen.Px
	for i, w := range g.columns {
		offsets[i] = acc
		acc += w
	}
	return offsets
}

// YOffsets returns each row's cumulative y-offset from the grid's top edge.
func (g *GridBuilder) YOffsets() []dimen.Px {
	offsets := make([]dimen.Px, len(g.rows))
	var acc dimen.Px
	for i, r := range g.rows {
		offsets[i] = acc
		acc += r.Height - r.Depth
	}
	return offsets
}

// kernVert builds a pure vertical spacing node of height h.
func kernVert(h dimen.Px) LayoutNode {
	return LayoutNode{Height: h, Variant: KernBox{}}
}

// kernHorz builds a pure horizontal spacing node of width w.
func kernHorz(w dimen.Px) LayoutNode {
	return LayoutNode{Width: w, Variant: KernBox{}}
}

// ruleNode builds a filled rectangle of the given width and height, zero
// depth.
func ruleNode(width, height dimen.Px) LayoutNode {
	return LayoutNode{Width: width, Height: height, Variant: RuleBox{}}
}

// colorNode wraps the contents accumulated in inner with a color change,
// adopting inner's extent.
func colorNode(inner *Layout, color mathast.RGBA) LayoutNode {
	return LayoutNode{
		Width:   inner.Width,
		Height:  inner.Height,
		Depth:   inner.Depth,
		Variant: ColorChange{Color: color, Inner: inner.Contents},
	}
}

// vboxOffset stacks nodes top to bottom with the given baseline offset.
func vboxOffset(offset dimen.Px, nodes ...LayoutNode) LayoutNode {
	b := NewVBox()
	for _, n := range nodes {
		b.AddNode(n)
	}
	b.SetOffset(offset)
	return b.Build()
}

// vboxOf stacks nodes top to bottom with no baseline offset.
func vboxOf(nodes ...LayoutNode) LayoutNode {
	return vboxOffset(0, nodes...)
}

// hboxOf lays nodes out left to right with no offset or alignment override.
func hboxOf(nodes ...LayoutNode) LayoutNode {
	b := NewHBox()
	for _, n := range nodes {
		b.AddNode(n)
	}
	return b.Build()
}

// hboxAligned lays nodes out left to right, then overrides the resulting
// box's alignment and reported width (used to center/right-align a run
// within a wider slot).
func hboxAligned(align Alignment, width dimen.Px, nodes ...LayoutNode) LayoutNode {
	b := NewHBox()
	for _, n := range nodes {
		b.AddNode(n)
	}
	b.SetAlignment(align)
	b.SetWidth(width)
	return b.Build()
}
