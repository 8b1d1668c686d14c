package squall

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of an Entity simultaneously.
// Create one with TweenPosition, TweenSize or TweenRotation and either call
// Advance(dt) yourself or attach it to the entity with AddBehavior, in which
// case the PhysicsEngine drives it with the tick's elapsed time.
//
// Tweens write positions directly; use them on Static entities, or the
// integrator will fight them.
type TweenGroup struct {
	NopBehavior

	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Advance moves all tweens forward by dt seconds and writes the values to
// the target fields.
func (g *TweenGroup) Advance(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Update implements Behavior. elapsed is in milliseconds.
func (g *TweenGroup) Update(elapsed float64, _ *Entity) {
	g.Advance(float32(elapsed / 1000))
}

// TweenPosition creates a TweenGroup that moves e to (toX, toY) over
// duration seconds using the easing function.
func TweenPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(e.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &e.Position.X
	g.fields[1] = &e.Position.Y
	return g
}

// TweenSize creates a TweenGroup that resizes e to (toW, toH).
func TweenSize(e *Entity, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(e.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(e.Height), float32(toH), duration, fn)
	g.fields[0] = &e.Width
	g.fields[1] = &e.Height
	return g
}

// TweenRotation creates a TweenGroup that rotates e to the target angle in radians.
func TweenRotation(e *Entity, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(e.Rotation), float32(to), duration, fn)
	g.fields[0] = &e.Rotation
	return g
}

// TweenColor creates a TweenGroup that fades e's fill color to the target.
func TweenColor(e *Entity, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(e.FillColor.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(e.FillColor.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(e.FillColor.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(e.FillColor.A), float32(to.A), duration, fn)
	g.fields[0] = &e.FillColor.R
	g.fields[1] = &e.FillColor.G
	g.fields[2] = &e.FillColor.B
	g.fields[3] = &e.FillColor.A
	return g
}
