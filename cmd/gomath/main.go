// Package main provides the CLI entry point for gomath.
//
// Usage:
//
//	gomath layout --font XITS-Math.otf --demo fraction
//	gomath version
//	gomath help
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boergens/gomath/mathconfig"
	"github.com/boergens/gomath/mathfont"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "layout", "l":
		if err := runLayoutCmd(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gomath - a math layout engine

Usage:
  gomath layout --font <path.otf> [--size <px>] [--demo <name>] [--debug]
  gomath help
  gomath version

Commands:
  layout    Load a MATH-table font and lay out a built-in demo formula
  help      Show this help message
  version   Show version information

Demos (--demo):
  symbol     a single letter
  super      a letter with a superscript
  fraction   a simple fraction
  radical    a square root

Options:
  --font    Path to an OpenType font carrying a MATH table (required
            unless the --config file sets font_path)
  --size    Font size in pixels (default from gomath.toml, else 12)
  --config  Path to a gomath.toml configuration file
  --debug   Ask the renderer for debug bounding boxes`)
}

func printVersion() {
	fmt.Println("gomath version 0.1.0")
}

func runLayoutCmd(args []string) error {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	fontPath := fs.String("font", "", "path to a MATH-table OpenType font")
	configPath := fs.String("config", "", "path to a gomath.toml configuration file")
	size := fs.Float64("size", 0, "font size in pixels")
	demo := fs.String("demo", "symbol", "demo formula to lay out")
	debug := fs.Bool("debug", false, "emit debug bounding boxes")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := mathconfig.Default()
	if *configPath != "" {
		loaded, err := mathconfig.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	font := *fontPath
	if font == "" {
		font = cfg.FontPath
	}
	if font == "" {
		return fmt.Errorf("missing --font (and no font_path in config)")
	}

	fontSize := *size
	if fontSize == 0 {
		fontSize = cfg.FontSize
	}

	debugOut := *debug || cfg.Debug

	data, err := os.ReadFile(font)
	if err != nil {
		return fmt.Errorf("cannot read font: %w", err)
	}
	provider, err := mathfont.LoadGoTextFont(data)
	if err != nil {
		return fmt.Errorf("cannot parse font: %w", err)
	}
	ctx := mathfont.NewFontContext(provider)

	summary, err := runLayout(ctx, fontSize, *demo, debugOut)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}
