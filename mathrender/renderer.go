// Package mathrender walks a mathlayout box tree and drives a pluggable
// Backend with absolute device-pixel positions: the last stage between the
// layout engine's output and an actual drawing surface (a rasterizer, an
// SVG writer, a debug dumper).
package mathrender

import (
	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
	"github.com/boergens/gomath/mathlayout"
)

// Cursor is the current drawing position in device pixels, origin at the
// left end of the overall layout's baseline with y increasing downward.
type Cursor struct {
	X, Y float64
}

func (c Cursor) Translate(dx, dy float64) Cursor { return Cursor{c.X + dx, c.Y + dy} }
func (c Cursor) Left(dx float64) Cursor          { return Cursor{c.X - dx, c.Y} }
func (c Cursor) Right(dx float64) Cursor         { return Cursor{c.X + dx, c.Y} }
func (c Cursor) Up(dy float64) Cursor            { return Cursor{c.X, c.Y - dy} }
func (c Cursor) Down(dy float64) Cursor          { return Cursor{c.X, c.Y + dy} }

// Role distinguishes the kind of box a debug bbox call outlines.
type Role int

const (
	RoleGlyph Role = iota
	RoleHBox
	RoleVBox
)

// Backend receives the fully positioned drawing calls a Renderer produces.
// Bbox is for debug outlining only and has a no-op default via
// NopBboxBackend; implementations that don't want debug boxes can embed it.
type Backend interface {
	Bbox(pos Cursor, width, height float64, role Role)
	Symbol(pos Cursor, gid uint16, scale float64, ctx mathfont.Provider)
	Rule(pos Cursor, width, height float64)
	BeginColor(color mathast.RGBA)
	EndColor()
}

// NopBboxBackend can be embedded by a Backend implementation that has no
// use for debug bounding boxes.
type NopBboxBackend struct{}

func (NopBboxBackend) Bbox(Cursor, float64, float64, Role) {}

// Renderer walks a *mathlayout.Layout (or a single LayoutNode) and emits
// Backend calls for every visible box. A single Renderer is tied to the
// font its layout was built against, since every glyph id in the tree
// resolves only in that font.
type Renderer struct {
	Font mathfont.Provider

	// Debug, when set, causes Bbox to be called around every glyph, HBox,
	// and VBox before its contents are drawn.
	Debug bool
}

// NewRenderer returns a Renderer with debugging off, drawing glyphs
// against font.
func NewRenderer(font mathfont.Provider) *Renderer { return &Renderer{Font: font} }

// Size returns the (x0, y0, x1, y1) bounding box of a finished layout, in
// device pixels: x runs from 0 to the layout's width, y from its depth
// (zero or negative, below the baseline) to its height above the baseline.
func (r *Renderer) Size(l *mathlayout.Layout) (x0, y0, x1, y1 float64) {
	return 0, float64(l.Depth), float64(l.Width), float64(l.Height)
}

// Render draws the full contents of l onto out, starting at the origin.
func (r *Renderer) Render(l *mathlayout.Layout, out Backend) {
	pos := Cursor{}
	r.renderHBox(out, pos, l.Contents, float64(l.Height), float64(l.Width), l.Alignment)
}

func (r *Renderer) renderGrid(out Backend, pos Cursor, grid mathlayout.Grid) {
	xOffsets := gridXOffsets(grid)
	yOffsets := gridYOffsets(grid)
	for gp, node := range grid.Contents {
		height := grid.Rows[gp.Row].Height
		r.renderNode(out, pos.Translate(float64(xOffsets[gp.Col]), float64(yOffsets[gp.Row]+height)), node)
	}
}

func (r *Renderer) renderHBox(out Backend, pos Cursor, nodes []mathlayout.LayoutNode, height, width float64, align mathlayout.Alignment) {
	if r.Debug {
		out.Bbox(pos.Up(height), width, height, RoleHBox)
	}
	if align.Kind == mathlayout.AlignCentered {
		pos.X += (width - float64(align.Width)) * 0.5
	}
	for _, node := range nodes {
		r.renderNode(out, pos, node)
		pos.X += float64(node.Width)
	}
}

func (r *Renderer) renderVBox(out Backend, pos Cursor, nodes []mathlayout.LayoutNode) {
	for _, node := range nodes {
		switch v := node.Variant.(type) {
		case mathlayout.RuleBox:
			out.Rule(pos, float64(node.Width), float64(node.Height))
		case mathlayout.Grid:
			r.renderGrid(out, pos, v)
		case mathlayout.HorizontalBox:
			r.renderHBox(out, pos.Down(float64(node.Height)), v.Contents, float64(node.Height), float64(node.Width), v.Alignment)
		case mathlayout.VerticalBox:
			if r.Debug {
				out.Bbox(pos, float64(node.Width), float64(node.Height-node.Depth), RoleVBox)
			}
			r.renderVBox(out, pos, v.Contents)
		case mathlayout.LayoutGlyph:
			if r.Debug {
				out.Bbox(pos, float64(node.Width), float64(node.Height-node.Depth), RoleGlyph)
			}
			out.Symbol(pos.Down(float64(node.Height)), v.GID, float64(v.Size), r.Font)
		case mathlayout.ColorChange:
			// A color change should never appear nested inside a vertical
			// box; the engine only ever produces them at the top of a
			// horizontal run.
			panic("mathrender: color change inside vertical box")
		case mathlayout.KernBox:
			// no-op
		}
		pos.Y += float64(node.Height)
	}
}

func (r *Renderer) renderNode(out Backend, pos Cursor, node mathlayout.LayoutNode) {
	switch v := node.Variant.(type) {
	case mathlayout.LayoutGlyph:
		if r.Debug {
			out.Bbox(pos.Up(float64(node.Height)), float64(node.Width), float64(node.Height-node.Depth), RoleGlyph)
		}
		out.Symbol(pos, v.GID, float64(v.Size), r.Font)

	case mathlayout.RuleBox:
		out.Rule(pos.Up(float64(node.Height)), float64(node.Width), float64(node.Height))

	case mathlayout.VerticalBox:
		if r.Debug {
			out.Bbox(pos.Up(float64(node.Height)), float64(node.Width), float64(node.Height-node.Depth), RoleVBox)
		}
		r.renderVBox(out, pos.Up(float64(node.Height)), v.Contents)

	case mathlayout.HorizontalBox:
		r.renderHBox(out, pos, v.Contents, float64(node.Height), float64(node.Width), v.Alignment)

	case mathlayout.Grid:
		r.renderGrid(out, pos, v)

	case mathlayout.ColorChange:
		out.BeginColor(v.Color)
		r.renderHBox(out, pos, v.Inner, float64(node.Height), float64(node.Width), mathlayout.Alignment{})
		out.EndColor()

	case mathlayout.KernBox:
		// no-op
	}
}

func gridXOffsets(g mathlayout.Grid) []float64 {
	offsets := make([]float64, len(g.Columns))
	var running float64
	for i, w := range g.Columns {
		offsets[i] = running
		running += float64(w)
	}
	return offsets
}

func gridYOffsets(g mathlayout.Grid) []float64 {
	offsets := make([]float64, len(g.Rows))
	var running float64
	for i, row := range g.Rows {
		offsets[i] = running
		running += float64(row.Height + -row.Depth)
	}
	return offsets
}
