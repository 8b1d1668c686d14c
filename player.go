package squall

import "github.com/hajimehoshi/ebiten/v2"

// Attribute keys read by PlayerInputBehavior.
const (
	StepKey = "step"
	JumpKey = "player_jump"
)

// Animation names selected by PlayerInputBehavior.
const (
	AnimIdle = "player_idle"
	AnimWalk = "player_walk"
	AnimFall = "player_fall"
	AnimJump = "player_jump"
)

// PlayerInputBehavior steers an entity with the arrow keys. The horizontal
// step comes from the StepKey attribute (default 0.1) and is doubled with
// shift and quadrupled with ctrl; up adds the JumpKey attribute (default
// -0.8) to the vertical velocity. Without input the velocity decays by the
// material friction. The matching player_* animation is selected every tick.
type PlayerInputBehavior struct {
	NopBehavior
}

// Input applies the arrow keys to p's velocity.
func (PlayerInputBehavior) Input(in UserInput, p *Entity) {
	move := false
	step := p.AttributeFloat(StepKey, 0.1)
	jump := p.AttributeFloat(JumpKey, -4.0*0.2)

	if in.IsKeyPressed(ebiten.KeyArrowUp) {
		p.Velocity.Y += jump
		p.CurrentAnimation = AnimJump
		move = true
	}
	if in.IsKeyPressed(ebiten.KeyArrowDown) {
		p.Velocity.Y += step
		p.CurrentAnimation = AnimWalk
		move = true
	}
	if in.IsShiftPressed() {
		step *= 2
	}
	if in.IsCtrlPressed() {
		step *= 4
	}
	if in.IsKeyPressed(ebiten.KeyArrowLeft) {
		p.Velocity.X = -step
		p.CurrentAnimation = AnimWalk
		move = true
	}
	if in.IsKeyPressed(ebiten.KeyArrowRight) {
		p.Velocity.X = step
		p.CurrentAnimation = AnimWalk
		move = true
	}
	if !move {
		f := p.material.friction
		p.Velocity = p.Velocity.Mul(f)
		if p.Velocity.Y > 0 {
			p.CurrentAnimation = AnimFall
		} else {
			p.CurrentAnimation = AnimIdle
		}
	}
	if p.Velocity.X >= 0 {
		p.Direction = 1
	} else {
		p.Direction = -1
	}
}
