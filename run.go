package squall

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the logical screen size.
	Width, Height int
	// WindowWidth and WindowHeight default to Width and Height.
	WindowWidth, WindowHeight int
	// TPS is the fixed tick rate; zero keeps ebiten's default of 60.
	TPS     int
	ShowFPS bool
	// Renderer defaults to NewRenderer().
	Renderer *Renderer
	// Input defaults to EbitenInput.
	Input UserInput
	// Script, when set, replaces Input with the script's KeyState and is
	// stepped once per tick. The loop ends when the script is done.
	Script *InputScript
	// ScreenshotDir defaults to DefaultScreenshotDir. F12 captures a frame.
	ScreenshotDir string
	// Scenes holds further scenes the game can switch to. The scene passed
	// to Run or NewGame is added to it and activated.
	Scenes *SceneManager
}

// Game is the ebiten.Game host of a Scene. Each tick it runs the scene with
// a fixed elapsed time of 1000/TPS milliseconds, then draws it. Escape ends
// the loop, P toggles pause and F12 takes a screenshot.
type Game struct {
	scenes   *SceneManager
	renderer *Renderer
	input    UserInput
	cfg      RunConfig
	elapsed  float64
	paused   bool
	shots    []string
}

// tickEnder is implemented by inputs that buffer release edges, like KeyState.
type tickEnder interface {
	EndTick()
}

// NewGame wraps scene in an ebiten.Game. The input source of every scene
// the game activates is replaced by the config's.
func NewGame(scene *Scene, cfg RunConfig) *Game {
	if cfg.Renderer == nil {
		cfg.Renderer = NewRenderer()
	}
	if cfg.Script != nil {
		cfg.Input = cfg.Script.Keys()
	}
	if cfg.Input == nil {
		cfg.Input = EbitenInput{}
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	if cfg.Scenes == nil {
		cfg.Scenes = NewSceneManager()
	}
	cfg.Scenes.SetInput(cfg.Input)
	cfg.Scenes.Add(scene)
	cfg.Scenes.activate(scene)
	return &Game{
		scenes:   cfg.Scenes,
		renderer: cfg.Renderer,
		input:    cfg.Input,
		cfg:      cfg,
		elapsed:  1000 / float64(tps),
	}
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if te, ok := g.input.(tickEnder); ok {
		defer te.EndTick()
	}
	if sc := g.cfg.Script; sc != nil {
		sc.Step(g.Screenshot)
		if sc.Done() {
			return ebiten.Termination
		}
	}
	if g.input.IsKeyJustReleased(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.input.IsKeyJustReleased(ebiten.KeyF12) {
		g.Screenshot("f12")
	}
	if g.input.IsKeyJustReleased(ebiten.KeyP) || g.input.IsKeyJustReleased(ebiten.KeyPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	return g.scenes.Active().Update(g.elapsed)
}

// Scenes returns the game's scene manager.
func (g *Game) Scenes() *SceneManager {
	return g.scenes
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scenes.Active())
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused", g.cfg.Width/2-18, g.cfg.Height/2)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, g.cfg.Height-16)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs scene until the window is closed or Escape is
// released. It returns nil on a normal exit.
func Run(scene *Scene, cfg RunConfig) error {
	g := NewGame(scene, cfg)
	cfg = g.cfg
	if cfg.WindowWidth == 0 || cfg.WindowHeight == 0 {
		cfg.WindowWidth, cfg.WindowHeight = cfg.Width, cfg.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
