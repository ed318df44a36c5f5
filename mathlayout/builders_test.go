package mathlayout

import "testing"

func TestVBoxBuilderDepthFromLastChild(t *testing.T) {
	b := NewVBox()
	b.AddNode(LayoutNode{Width: 5, Height: 3, Depth: -9})
	b.AddNode(LayoutNode{Width: 7, Height: 2, Depth: -1})
	node := b.Build()

	if node.Width != 7 {
		t.Errorf("expected width 7 (widest child), got %v", node.Width)
	}
	if node.Depth != -1 {
		t.Errorf("expected depth from last child (-1), got %v", node.Depth)
	}
	if node.Height != 5 {
		t.Errorf("expected summed height 5, got %v", node.Height)
	}
}

func TestVBoxBuilderInsertNodeAtFront(t *testing.T) {
	b := NewVBox()
	b.AddNode(LayoutNode{Width: 3})
	b.InsertNode(0, LayoutNode{Width: 4})

	vb := b.Build().Variant.(VerticalBox)
	if len(vb.Contents) != 2 || vb.Contents[0].Width != 4 {
		t.Fatalf("expected inserted node at front, got %+v", vb.Contents)
	}
}

func TestHBoxBuilderHeightDepthExtent(t *testing.T) {
	b := NewHBox()
	b.AddNode(LayoutNode{Width: 3, Height: 5, Depth: -2})
	b.AddNode(LayoutNode{Width: 4, Height: 2, Depth: -7})
	node := b.Build()

	if node.Width != 7 {
		t.Errorf("expected summed width 7, got %v", node.Width)
	}
	if node.Height != 5 {
		t.Errorf("expected max height 5, got %v", node.Height)
	}
	if node.Depth != -7 {
		t.Errorf("expected min depth -7, got %v", node.Depth)
	}
}

func TestHBoxBuilderSetWidthOverridesNaturalWidth(t *testing.T) {
	b := NewHBox()
	b.AddNode(LayoutNode{Width: 3})
	b.SetWidth(100)
	if node := b.Build(); node.Width != 100 {
		t.Errorf("expected overridden width 100, got %v", node.Width)
	}
}

func TestGridBuilderTracksColumnsAndRows(t *testing.T) {
	g := NewGrid()
	g.Insert(0, 0, LayoutNode{Width: 5, Height: 3, Depth: -1})
	g.Insert(0, 1, LayoutNode{Width: 7, Height: 4, Depth: -2})
	g.Insert(1, 0, LayoutNode{Width: 6, Height: 2, Depth: -3})

	node := g.Build()
	if node.Width != 13 {
		t.Errorf("expected width 6 (col0 max) + 7 (col1) = 13, got %v", node.Width)
	}
}

func TestGridBuilderOffsets(t *testing.T) {
	g := NewGrid()
	g.Insert(0, 0, LayoutNode{Width: 5, Height: 3})
	g.Insert(0, 1, LayoutNode{Width: 7, Height: 4})
	g.Insert(1, 0, LayoutNode{Width: 6, Height: 2})

	xoff := g.XOffsets()
	if len(xoff) != 2 || xoff[0] != 0 || xoff[1] != 6 {
		t.Fatalf("unexpected column offsets: %v", xoff)
	}

	yoff := g.YOffsets()
	if len(yoff) != 2 || yoff[0] != 0 {
		t.Fatalf("unexpected row offsets: %v", yoff)
	}
}
