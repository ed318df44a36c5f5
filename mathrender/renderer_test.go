package mathrender_test

import (
	"testing"

	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
	"github.com/boergens/gomath/mathlayout"
	"github.com/boergens/gomath/mathrender"
)

func testProvider() *mathfont.StaticProvider {
	p := mathfont.NewStaticProvider()
	p.UnitsPerEmFactor = 1.0 / 1000
	return p
}

func TestRenderSingleGlyph(t *testing.T) {
	l := mathlayout.NewLayout()
	l.AddNode(mathlayout.LayoutNode{
		Width: 10, Height: 8, Depth: -2,
		Variant: mathlayout.LayoutGlyph{GID: 3, Size: 12},
	})

	scene := mathrender.NewScene()
	out := mathrender.NewSceneWrapper(scene)

	r := mathrender.NewRenderer(testProvider())
	r.Render(l, out)

	if len(scene.Commands) != 1 {
		t.Fatalf("expected 1 recorded command, got %d", len(scene.Commands))
	}
	cmd := scene.Commands[0]
	if cmd.Kind != mathrender.CommandSymbol || cmd.GID != 3 {
		t.Fatalf("expected symbol command for GID 3, got %+v", cmd)
	}
	// render_node draws at pos unchanged (top-level hbox doesn't shift y).
	if cmd.Pos.Y != 0 {
		t.Errorf("expected top-level glyph at y=0, got %v", cmd.Pos.Y)
	}
}

func TestRenderAdvancesCursorByWidth(t *testing.T) {
	l := mathlayout.NewLayout()
	l.AddNode(mathlayout.LayoutNode{Width: 10, Variant: mathlayout.LayoutGlyph{GID: 1}})
	l.AddNode(mathlayout.LayoutNode{Width: 5, Variant: mathlayout.LayoutGlyph{GID: 2}})

	scene := mathrender.NewScene()
	out := mathrender.NewSceneWrapper(scene)
	mathrender.NewRenderer(testProvider()).Render(l, out)

	if len(scene.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(scene.Commands))
	}
	if scene.Commands[0].Pos.X != 0 {
		t.Errorf("expected first glyph at x=0, got %v", scene.Commands[0].Pos.X)
	}
	if scene.Commands[1].Pos.X != 10 {
		t.Errorf("expected second glyph at x=10 (after first node's width), got %v", scene.Commands[1].Pos.X)
	}
}

func TestRenderColorChangeBeginsAndEndsColor(t *testing.T) {
	glyph := mathlayout.LayoutNode{Width: 4, Variant: mathlayout.LayoutGlyph{GID: 9}}
	colored := mathlayout.LayoutNode{
		Width: 4,
		Variant: mathlayout.ColorChange{
			Color: mathast.RGBA{R: 255, A: 0xff},
			Inner: []mathlayout.LayoutNode{glyph},
		},
	}
	l := mathlayout.NewLayout()
	l.AddNode(colored)

	scene := mathrender.NewScene()
	out := mathrender.NewSceneWrapper(scene)
	mathrender.NewRenderer(testProvider()).Render(l, out)

	if len(scene.Commands) != 3 {
		t.Fatalf("expected begin-color, symbol, end-color, got %d commands", len(scene.Commands))
	}
	if scene.Commands[0].Kind != mathrender.CommandBeginColor {
		t.Errorf("expected first command to begin color, got %v", scene.Commands[0].Kind)
	}
	if scene.Commands[1].Kind != mathrender.CommandSymbol {
		t.Errorf("expected second command to draw the wrapped glyph, got %v", scene.Commands[1].Kind)
	}
	if scene.Commands[2].Kind != mathrender.CommandEndColor {
		t.Errorf("expected third command to end color, got %v", scene.Commands[2].Kind)
	}
}

func TestRenderDebugEmitsBboxAroundGlyph(t *testing.T) {
	l := mathlayout.NewLayout()
	l.AddNode(mathlayout.LayoutNode{Width: 6, Height: 5, Depth: -1, Variant: mathlayout.LayoutGlyph{GID: 1}})

	scene := mathrender.NewScene()
	out := mathrender.NewSceneWrapper(scene)
	r := mathrender.NewRenderer(testProvider())
	r.Debug = true
	r.Render(l, out)

	if len(scene.Commands) != 3 {
		t.Fatalf("expected top-level hbox bbox + glyph bbox + symbol, got %d commands", len(scene.Commands))
	}
	if scene.Commands[0].Kind != mathrender.CommandBbox || scene.Commands[0].Role != mathrender.RoleHBox {
		t.Fatalf("expected leading top-level hbox bbox, got %+v", scene.Commands[0])
	}
	if scene.Commands[1].Kind != mathrender.CommandBbox || scene.Commands[1].Role != mathrender.RoleGlyph {
		t.Fatalf("expected glyph bbox ahead of the symbol, got %+v", scene.Commands[1])
	}
}

func TestSizeReportsPixelExtent(t *testing.T) {
	l := mathlayout.NewLayout()
	l.AddNode(mathlayout.LayoutNode{Width: 10, Height: 7, Depth: -3})
	l.Finalize()

	r := mathrender.NewRenderer(testProvider())
	x0, y0, x1, y1 := r.Size(l)
	if x0 != 0 || x1 != 10 {
		t.Errorf("expected x range [0,10], got [%v,%v]", x0, x1)
	}
	if y0 != -3 || y1 != 7 {
		t.Errorf("expected y range [-3,7], got [%v,%v]", y0, y1)
	}
}

func TestRenderVBoxStopsAtRuleAndKern(t *testing.T) {
	vbox := mathlayout.LayoutNode{
		Width: 10, Height: 6, Depth: -2,
		Variant: mathlayout.VerticalBox{Contents: []mathlayout.LayoutNode{
			{Width: 10, Height: 1, Variant: mathlayout.RuleBox{}},
			{Height: 3, Variant: mathlayout.KernBox{}},
			{Width: 10, Height: 2, Variant: mathlayout.LayoutGlyph{GID: 4}},
		}},
	}
	l := mathlayout.NewLayout()
	l.AddNode(vbox)

	scene := mathrender.NewScene()
	out := mathrender.NewSceneWrapper(scene)
	mathrender.NewRenderer(testProvider()).Render(l, out)

	if len(scene.Commands) != 2 {
		t.Fatalf("expected rule + symbol (kern produces nothing), got %d", len(scene.Commands))
	}
	if scene.Commands[0].Kind != mathrender.CommandRule {
		t.Errorf("expected first command to be the rule, got %v", scene.Commands[0].Kind)
	}
	if scene.Commands[1].Kind != mathrender.CommandSymbol {
		t.Errorf("expected second command to be the glyph after the kern, got %v", scene.Commands[1].Kind)
	}
}
