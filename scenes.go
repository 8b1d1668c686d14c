package squall

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownScene is returned by SceneManager.Activate for a name that was
// never added.
var ErrUnknownScene = errors.New("squall: unknown scene")

// SceneManager holds the scenes of a game by name and tracks the active one.
// Only the active scene is ticked and drawn by Game.
type SceneManager struct {
	scenes map[string]*Scene
	active *Scene
	input  UserInput

	// OnActivate, when set, is called after the active scene changed. prev is
	// nil on the first activation.
	OnActivate func(prev, next *Scene)
}

// NewSceneManager creates an empty manager.
func NewSceneManager() *SceneManager {
	return &SceneManager{scenes: make(map[string]*Scene)}
}

// Add registers s under its name, replacing any scene of the same name.
func (m *SceneManager) Add(s *Scene) {
	if s == nil {
		panic("squall: cannot add nil scene")
	}
	m.scenes[s.Name()] = s
}

// Scene returns the scene registered under name, or nil.
func (m *SceneManager) Scene(name string) *Scene {
	return m.scenes[name]
}

// Active returns the active scene, or nil before the first Activate.
func (m *SceneManager) Active() *Scene {
	return m.active
}

// SetInput sets the input source handed to every scene on activation.
func (m *SceneManager) SetInput(in UserInput) {
	m.input = in
	if m.active != nil {
		m.active.SetInput(in)
	}
}

// Activate makes the named scene the active one. Activating the active scene
// is a no-op.
func (m *SceneManager) Activate(name string) error {
	next, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	m.activate(next)
	return nil
}

func (m *SceneManager) activate(next *Scene) {
	if next == m.active {
		return
	}
	prev := m.active
	m.active = next
	if m.input != nil {
		next.SetInput(m.input)
	}
	if m.OnActivate != nil {
		m.OnActivate(prev, next)
	}
}

// SceneSwitcher activates Target when Key is released. Attach it to an
// entity of the scene to leave, e.g. a title screen.
type SceneSwitcher struct {
	NopBehavior
	Key    ebiten.Key
	Target string

	manager *SceneManager
}

// NewSceneSwitcher creates a switcher to target on the Enter key.
func NewSceneSwitcher(m *SceneManager, target string) *SceneSwitcher {
	return &SceneSwitcher{Key: ebiten.KeyEnter, Target: target, manager: m}
}

// Input activates Target when Key is released.
func (w *SceneSwitcher) Input(in UserInput, _ *Entity) {
	if !in.IsKeyJustReleased(w.Key) {
		return
	}
	if err := w.manager.Activate(w.Target); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[squall] scene switch: %v\n", err)
	}
}
