package squall

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// UserInput is the sampled keyboard state handed to Behavior.Input once per
// tick, before physics runs.
type UserInput interface {
	IsKeyPressed(key ebiten.Key) bool
	// IsKeyJustReleased reports a release edge during the current tick.
	IsKeyJustReleased(key ebiten.Key) bool
	IsShiftPressed() bool
	IsCtrlPressed() bool
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// EbitenInput reads the live ebiten keyboard state. Only valid inside an
// ebiten game loop.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (EbitenInput) IsKeyJustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}

func (EbitenInput) IsShiftPressed() bool { return readModifiers()&ModShift != 0 }
func (EbitenInput) IsCtrlPressed() bool { return readModifiers()&ModCtrl != 0 }

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// KeyState is a UserInput fed by hand. Hosts without an ebiten window (the
// terminal example, tests) press and release keys on it and call EndTick
// after each scene update.
type KeyState struct {
	pressed   map[ebiten.Key]bool
	released  map[ebiten.Key]bool
	Modifiers KeyModifiers
}

// NewKeyState creates an empty KeyState.
func NewKeyState() *KeyState {
	return &KeyState{
		pressed:  make(map[ebiten.Key]bool),
		released: make(map[ebiten.Key]bool),
	}
}

// Press marks key as held.
func (k *KeyState) Press(key ebiten.Key) {
	k.pressed[key] = true
}

// Release marks key as no longer held and records a release edge for the
// current tick.
func (k *KeyState) Release(key ebiten.Key) {
	if k.pressed[key] {
		k.released[key] = true
	}
	delete(k.pressed, key)
}

// Tap records a release edge without a held phase.
func (k *KeyState) Tap(key ebiten.Key) {
	delete(k.pressed, key)
	k.released[key] = true
}

// EndTick clears release edges.
func (k *KeyState) EndTick() {
	clear(k.released)
}

func (k *KeyState) IsKeyPressed(key ebiten.Key) bool { return k.pressed[key] }
func (k *KeyState) IsKeyJustReleased(key ebiten.Key) bool { return k.released[key] }
func (k *KeyState) IsShiftPressed() bool { return k.Modifiers&ModShift != 0 }
func (k *KeyState) IsCtrlPressed() bool { return k.Modifiers&ModCtrl != 0 }
