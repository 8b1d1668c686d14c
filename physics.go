package squall

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
)

// TimeFactor scales elapsed milliseconds into integration time. It is a tuning
// constant that sets the global simulation speed.
const TimeFactor = 0.045

// ErrNoWorld is returned by PhysicsEngine.Update when SetWorld was never called.
var ErrNoWorld = errors.New("squall: physics engine has no world")

// PhysicsEngine integrates every active entity of a scene once per tick and
// keeps dynamic entities inside the World's play area. It retains no state
// between ticks apart from the World and a reusable sort buffer.
type PhysicsEngine struct {
	world *World

	// IsolateBehaviors recovers a panicking behavior Update hook, logs it and
	// moves on to the entity's next behavior. When false a panic propagates
	// to the caller of Update.
	IsolateBehaviors bool

	buf []*Entity
}

// NewPhysicsEngine creates an engine. SetWorld must be called before Update.
func NewPhysicsEngine() *PhysicsEngine {
	return &PhysicsEngine{}
}

// SetWorld sets the gravity and play-area context.
func (p *PhysicsEngine) SetWorld(w *World) {
	p.world = w
}

// World returns the current World, or nil.
func (p *PhysicsEngine) World() *World {
	return p.world
}

// Update advances every active, non-camera entity of s by elapsed
// milliseconds. Entities are processed by descending Priority; equal
// priorities keep scene insertion order. The set of entities is captured
// before the pass, so entities added by behaviors during the pass are first
// integrated on the next tick.
func (p *PhysicsEngine) Update(s *Scene, elapsed float64) error {
	if p.world == nil {
		return ErrNoWorld
	}
	p.buf = p.buf[:0]
	for _, e := range s.order {
		if e.active && !e.IsCamera() {
			p.buf = append(p.buf, e)
		}
	}
	slices.SortStableFunc(p.buf, func(a, b *Entity) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	for _, e := range p.buf {
		wasActive := e.active
		p.updateEntity(e, elapsed)
		if wasActive && !e.active {
			s.emit(SimEvent{Type: EventExpired, EntityID: e.ID, Name: e.Name, X: e.Position.X, Y: e.Position.Y})
		}
		if !e.relativeToParent && !e.fixedToCamera {
			prev := e.Contact
			p.constrainToPlayArea(e)
			if e.Contact != 0 && e.Contact != prev {
				s.emit(SimEvent{Type: EventContact, EntityID: e.ID, Name: e.Name, Contact: e.Contact, X: e.Position.X, Y: e.Position.Y})
			}
		}
	}
	// Drop references so the buffer does not pin entities between ticks.
	clear(p.buf)
	return nil
}

// updateEntity applies gravity, contact friction and motion to a dynamic
// entity, then advances its animation, runs its behaviors and counts down its
// lifetime.
//
// Gravity assigns the vertical velocity rather than accumulating it, and
// behaviors run after that assignment.
func (p *PhysicsEngine) updateEntity(e *Entity, elapsed float64) {
	time := elapsed * TimeFactor
	if !e.fixedToCamera && e.physicType == Dynamic && !e.relativeToParent {
		if e.Mass != 0 {
			e.Velocity.Y = p.world.Gravity * (elapsed * 0.5) * 10.0 / e.Mass
		}
		if e.Contact != 0 {
			// Friction is applied twice on purpose; see DESIGN.md.
			e.Velocity.Y *= e.material.friction
			e.Velocity.Y *= e.material.friction
		}
		e.Position.X += e.Velocity.X * time
		e.Position.Y += e.Velocity.Y * time
	}

	if e.CurrentAnimation != "" {
		if a := e.animations[e.CurrentAnimation]; a != nil {
			a.Update(elapsed)
		}
	}

	for _, b := range e.behaviors {
		if p.IsolateBehaviors {
			p.safeUpdate(b, elapsed, e)
		} else {
			b.Update(elapsed, e)
		}
	}

	e.Update(elapsed)
}

func (p *PhysicsEngine) safeUpdate(b Behavior, elapsed float64, e *Entity) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[squall] behavior %T on %s panicked: %v\n", b, e, r)
		}
	}()
	b.Update(elapsed, e)
}

// constrainToPlayArea clamps e inside the play area. Each violated edge
// reflects the matching velocity component scaled by the material
// elasticity and sets its contact bit; a corner sets two bits. An entity
// lying exactly on an edge counts as touching it, so a second pass with no
// motion in between reports the same contacts.
func (p *PhysicsEngine) constrainToPlayArea(e *Entity) {
	area := p.world.PlayArea
	elasticity := e.material.elasticity
	e.Contact = 0
	if e.Position.X <= 0 {
		e.Position.X = 0
		e.Velocity.X = -(elasticity * e.Velocity.X)
		e.Contact |= ContactLeft
	}
	if e.Position.Y <= 0 {
		e.Position.Y = 0
		e.Velocity.Y = -(elasticity * e.Velocity.Y)
		e.Contact |= ContactTop
	}
	if e.Position.X+e.Width >= area.Width {
		e.Position.X = area.Width - e.Width
		e.Velocity.X = -(elasticity * e.Velocity.X)
		e.Contact |= ContactRight
	}
	if e.Position.Y+e.Height >= area.Height {
		e.Position.Y = area.Height - e.Height
		e.Velocity.Y = -(elasticity * e.Velocity.Y)
		e.Contact |= ContactBottom
	}
}
