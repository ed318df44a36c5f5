package main

import (
	"fmt"

	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
	"github.com/boergens/gomath/mathlayout"
	"github.com/boergens/gomath/mathrender"
)

// buildDemo returns the AST for one of the CLI's built-in demo formulas.
// Kept separate from real parsing (a stated non-goal) so the layout and
// rendering pipeline has a concrete, deterministic input to exercise
// without needing a TeX/math source parser.
func buildDemo(name string) ([]mathast.Node, error) {
	switch name {
	case "symbol":
		return []mathast.Node{symbolNode('x', mathast.Alpha)}, nil

	case "super":
		return []mathast.Node{
			&mathast.Scripts{
				Base:        symbolNode('x', mathast.Alpha),
				Superscript: []mathast.Node{symbolNode('2', mathast.Alpha)},
			},
		}, nil

	case "fraction":
		return []mathast.Node{
			&mathast.GenFraction{
				Numerator:   []mathast.Node{symbolNode('1', mathast.Alpha)},
				Denominator: []mathast.Node{symbolNode('2', mathast.Alpha)},
				BarThickness: mathast.DefaultBar,
			},
		}, nil

	case "radical":
		return []mathast.Node{
			&mathast.Radical{Inner: []mathast.Node{symbolNode('x', mathast.Alpha)}},
		}, nil

	default:
		return nil, fmt.Errorf("unknown demo %q (want symbol, super, fraction, or radical)", name)
	}
}

func symbolNode(cp rune, at mathast.AtomType) mathast.Node {
	return &mathast.SymbolNode{Symbol: mathast.Symbol{Codepoint: cp, AtomType: at}}
}

// runLayout lays out the named demo formula at fontSizePx against ctx,
// renders it into a recording Scene, and summarizes the result as a
// human-readable string. Factored out of runLayoutCmd so it can be tested
// against a deterministic mathfont.Provider without needing a real font
// file on disk.
func runLayout(ctx *mathfont.FontContext, fontSizePx float64, demoName string, debug bool) (string, error) {
	nodes, err := buildDemo(demoName)
	if err != nil {
		return "", err
	}

	settings := mathlayout.NewSettings(ctx, fontSizePx, mathast.Display)
	layout, err := mathlayout.LayoutNodes(nodes, settings)
	if err != nil {
		return "", fmt.Errorf("layout: %w", err)
	}

	renderer := mathrender.NewRenderer(ctx.Provider)
	renderer.Debug = debug
	scene := mathrender.NewScene()
	renderer.Render(layout, mathrender.NewSceneWrapper(scene))

	x0, y0, x1, y1 := renderer.Size(layout)
	return fmt.Sprintf(
		"demo=%s size=%gpx bbox=(%g,%g,%g,%g) commands=%d",
		demoName, fontSizePx, x0, y0, x1, y1, len(scene.Commands),
	), nil
}
