package squall

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestGame(t *testing.T) (*Game, *KeyState, *Entity) {
	t.Helper()
	s := newTestScene(320, 200)
	e := NewEntity("ball", 10, 10)
	s.Add(e)
	keys := NewKeyState()
	g := NewGame(s, RunConfig{Width: 320, Height: 200, TPS: 50, Input: keys})
	return g, keys, e
}

func TestGameDefaults(t *testing.T) {
	s := newTestScene(100, 100)
	g := NewGame(s, RunConfig{Width: 100, Height: 80})
	if g.renderer == nil {
		t.Error("renderer should default to NewRenderer")
	}
	if _, ok := g.input.(EbitenInput); !ok {
		t.Errorf("input = %T, want EbitenInput", g.input)
	}
	if !approxEqual(g.elapsed, 1000.0/ebiten.DefaultTPS, epsilon) {
		t.Errorf("elapsed = %v, want 1000/%d", g.elapsed, ebiten.DefaultTPS)
	}
	if w, h := g.Layout(640, 480); w != 100 || h != 80 {
		t.Errorf("Layout = %dx%d, want 100x80", w, h)
	}
}

func TestGameUpdateAdvancesScene(t *testing.T) {
	g, _, e := newTestGame(t)
	if g.elapsed != 20 {
		t.Errorf("elapsed = %v, want 20 at 50 TPS", g.elapsed)
	}
	y := e.Position.Y
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if e.Position.Y <= y {
		t.Errorf("Y = %v, want the ball to fall from %v", e.Position.Y, y)
	}
}

func TestGamePause(t *testing.T) {
	g, keys, e := newTestGame(t)
	keys.Tap(ebiten.KeyP)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !g.Paused() {
		t.Fatal("Paused = false after P")
	}
	pos := e.Position
	for range 3 {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if e.Position != pos {
		t.Errorf("paused scene moved %v -> %v", pos, e.Position)
	}
	if !g.Paused() {
		t.Error("release edge should be cleared after a tick")
	}

	keys.Tap(ebiten.KeyPause)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.Paused() {
		t.Error("Pause key should resume")
	}
}

func TestGameEscape(t *testing.T) {
	g, keys, _ := newTestGame(t)
	keys.Tap(ebiten.KeyEscape)
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want ebiten.Termination", err)
	}
}

func TestGameSceneError(t *testing.T) {
	s := NewScene("bare", NewPhysicsEngine())
	g := NewGame(s, RunConfig{Width: 10, Height: 10, Input: NewKeyState()})
	if err := g.Update(); !errors.Is(err, ErrNoWorld) {
		t.Errorf("Update = %v, want ErrNoWorld", err)
	}
}
