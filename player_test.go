package squall

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestPlayerInput(t *testing.T) {
	tests := []struct {
		name       string
		keys       []ebiten.Key
		mods       KeyModifiers
		step       float64
		vel        Vec2
		wantVel    Vec2
		wantAnim   string
		wantFacing int
	}{
		{"idle rising", nil, 0, 0, Vec2{0, -1}, Vec2{0, -0.998}, AnimIdle, 1},
		{"falling", nil, 0, 0, Vec2{-2, 3}, Vec2{-1.996, 2.994}, AnimFall, -1},
		{"left", []ebiten.Key{ebiten.KeyArrowLeft}, 0, 1.2, Vec2{0, 0}, Vec2{-1.2, 0}, AnimWalk, -1},
		{"right", []ebiten.Key{ebiten.KeyArrowRight}, 0, 0, Vec2{-3, 0}, Vec2{0.1, 0}, AnimWalk, 1},
		{"right shift ctrl", []ebiten.Key{ebiten.KeyArrowRight}, ModShift | ModCtrl, 0, Vec2{}, Vec2{0.8, 0}, AnimWalk, 1},
		{"jump", []ebiten.Key{ebiten.KeyArrowUp}, 0, 0, Vec2{0, 0.5}, Vec2{0, -0.3}, AnimJump, 1},
		{"down ignores modifiers", []ebiten.Key{ebiten.KeyArrowDown}, ModShift, 0, Vec2{}, Vec2{0, 0.1}, AnimWalk, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntity("player", 0, 0).SetVelocity(tt.vel.X, tt.vel.Y)
			if tt.step != 0 {
				e.SetAttribute(StepKey, tt.step)
			}
			keys := NewKeyState()
			for _, k := range tt.keys {
				keys.Press(k)
			}
			keys.Modifiers = tt.mods

			PlayerInputBehavior{}.Input(keys, e)

			if !approxEqual(e.Velocity.X, tt.wantVel.X, epsilon) || !approxEqual(e.Velocity.Y, tt.wantVel.Y, epsilon) {
				t.Errorf("Velocity = %v, want %v", e.Velocity, tt.wantVel)
			}
			if e.CurrentAnimation != tt.wantAnim {
				t.Errorf("CurrentAnimation = %q, want %q", e.CurrentAnimation, tt.wantAnim)
			}
			if e.Direction != tt.wantFacing {
				t.Errorf("Direction = %d, want %d", e.Direction, tt.wantFacing)
			}
		})
	}
}

func TestPlayerJumpAttribute(t *testing.T) {
	e := NewEntity("player", 0, 0).SetAttribute(JumpKey, -2.0)
	keys := NewKeyState()
	keys.Press(ebiten.KeyArrowUp)
	PlayerInputBehavior{}.Input(keys, e)
	if e.Velocity.Y != -2 {
		t.Errorf("Velocity.Y = %v, want -2", e.Velocity.Y)
	}
}

func TestPlayerUsesMaterialFriction(t *testing.T) {
	e := NewEntity("player", 0, 0).
		SetMaterial(NewMaterial("sticky", 0.5, 0.5, 0.5)).
		SetVelocity(4, 4)
	PlayerInputBehavior{}.Input(NewKeyState(), e)
	if e.Velocity != (Vec2{2, 2}) {
		t.Errorf("Velocity = %v, want {2 2}", e.Velocity)
	}
}
