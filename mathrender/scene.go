package mathrender

import (
	"github.com/boergens/gomath/mathast"
	"github.com/boergens/gomath/mathfont"
)

// CommandKind distinguishes the concrete payload a Command carries.
type CommandKind int

const (
	CommandSymbol CommandKind = iota
	CommandRule
	CommandBeginColor
	CommandEndColor
	CommandBbox
)

// Command is one recorded draw call. Only the fields relevant to Kind are
// populated; the rest are left at their zero value.
type Command struct {
	Kind CommandKind

	Pos    Cursor
	Width  float64
	Height float64

	// CommandSymbol
	GID   uint16
	Scale float64
	Font  mathfont.Provider

	// CommandBeginColor
	Color mathast.RGBA

	// CommandBbox
	Role Role
}

// Scene is a flat, ordered list of recorded draw calls: a backend that
// defers actual drawing, so a single Renderer pass can feed multiple
// downstream consumers (a rasterizer, an SVG writer, a snapshot test)
// without re-walking the layout tree.
type Scene struct {
	Commands []Command
}

// NewScene returns an empty Scene.
func NewScene() *Scene { return &Scene{} }

// SceneWrapper adapts a *Scene to the Backend interface, tracking the
// color-change nesting the same way the original backend's paint stack
// does: BeginColor pushes, EndColor pops, so nested color changes restore
// correctly.
type SceneWrapper struct {
	scene      *Scene
	colorStack []mathast.RGBA
}

// NewSceneWrapper returns a SceneWrapper recording into scene.
func NewSceneWrapper(scene *Scene) *SceneWrapper {
	return &SceneWrapper{scene: scene}
}

func (w *SceneWrapper) Bbox(pos Cursor, width, height float64, role Role) {
	w.scene.Commands = append(w.scene.Commands, Command{
		Kind: CommandBbox, Pos: pos, Width: width, Height: height, Role: role,
	})
}

func (w *SceneWrapper) Symbol(pos Cursor, gid uint16, scale float64, ctx mathfont.Provider) {
	w.scene.Commands = append(w.scene.Commands, Command{
		Kind: CommandSymbol, Pos: pos, GID: gid, Scale: scale, Font: ctx,
	})
}

func (w *SceneWrapper) Rule(pos Cursor, width, height float64) {
	w.scene.Commands = append(w.scene.Commands, Command{
		Kind: CommandRule, Pos: pos, Width: width, Height: height,
	})
}

func (w *SceneWrapper) BeginColor(color mathast.RGBA) {
	w.colorStack = append(w.colorStack, color)
	w.scene.Commands = append(w.scene.Commands, Command{Kind: CommandBeginColor, Color: color})
}

func (w *SceneWrapper) EndColor() {
	if len(w.colorStack) > 0 {
		w.colorStack = w.colorStack[:len(w.colorStack)-1]
	}
	w.scene.Commands = append(w.scene.Commands, Command{Kind: CommandEndColor})
}

// Scene returns the recorded commands.
func (w *SceneWrapper) Scene() *Scene { return w.scene }

var _ Backend = (*SceneWrapper)(nil)
