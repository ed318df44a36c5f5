package mathlayout

import "testing"

func TestIsSymbolThroughWrapping(t *testing.T) {
	glyph := LayoutNode{Width: 10, Variant: LayoutGlyph{GID: 5}}

	wrapped := LayoutNode{Variant: HorizontalBox{Contents: []LayoutNode{glyph}}}
	if g, ok := IsSymbol([]LayoutNode{wrapped}); !ok || g.GID != 5 {
		t.Fatalf("expected symbol to be found through HorizontalBox wrapping, got %+v, %v", g, ok)
	}

	coloredWrap := LayoutNode{Variant: ColorChange{Inner: []LayoutNode{glyph}}}
	if g, ok := IsSymbol([]LayoutNode{coloredWrap}); !ok || g.GID != 5 {
		t.Fatalf("expected symbol to be found through ColorChange wrapping, got %+v, %v", g, ok)
	}
}

func TestIsSymbolRejectsMultipleNodes(t *testing.T) {
	glyph := LayoutNode{Variant: LayoutGlyph{GID: 5}}
	if _, ok := IsSymbol([]LayoutNode{glyph, glyph}); ok {
		t.Fatalf("expected IsSymbol to reject a multi-node sequence")
	}
}

func TestCenterOnAxisWrapsGlyph(t *testing.T) {
	glyph := LayoutNode{Height: 10, Depth: -2, Variant: LayoutGlyph{GID: 1}}
	centered := glyph.CenterOnAxis(2)

	vb, ok := centered.Variant.(VerticalBox)
	if !ok {
		t.Fatalf("expected CenterOnAxis to wrap a bare glyph in a VerticalBox, got %T", centered.Variant)
	}
	if len(vb.Contents) != 1 {
		t.Fatalf("expected exactly one wrapped child, got %d", len(vb.Contents))
	}
}

func TestCenterOnAxisAdjustsVerticalBoxOffset(t *testing.T) {
	vbox := LayoutNode{Height: 10, Depth: -2, Variant: VerticalBox{Offset: 0}}
	centered := vbox.CenterOnAxis(2)

	vb := centered.Variant.(VerticalBox)
	wantShift := (vbox.Height + vbox.Depth).Scale(0.5) - 2
	if vb.Offset != wantShift {
		t.Fatalf("expected offset %v, got %v", wantShift, vb.Offset)
	}
	if centered.Height != vbox.Height-wantShift {
		t.Fatalf("expected height adjusted by shift, got %v", centered.Height)
	}
}

func TestLayoutAccumulatorAddNode(t *testing.T) {
	l := NewLayout()
	l.AddNode(LayoutNode{Width: 5, Height: 3, Depth: -1})
	l.AddNode(LayoutNode{Width: 7, Height: 2, Depth: -4})

	if l.Width != 12 {
		t.Fatalf("expected combined width 12, got %v", l.Width)
	}
	if l.Height != 3 {
		t.Fatalf("expected max height 3, got %v", l.Height)
	}
	if l.Depth != -4 {
		t.Fatalf("expected min depth -4, got %v", l.Depth)
	}
}

func TestLayoutFinalizeSubtractsOffset(t *testing.T) {
	l := NewLayout()
	l.AddNode(LayoutNode{Height: 10, Depth: -3})
	l.SetOffset(2)
	l.Finalize()

	if l.Height != 8 {
		t.Fatalf("expected height 8 after finalize, got %v", l.Height)
	}
	if l.Depth != -5 {
		t.Fatalf("expected depth -5 after finalize, got %v", l.Depth)
	}
}
