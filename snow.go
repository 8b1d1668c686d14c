package squall

import (
	"fmt"
	"math/rand/v2"
)

// SnowBehaviorName is the name PlayScene-style setups register snow under.
const SnowBehaviorName = "snowBehavior"

// SnowBehavior is a ParticleBehavior that lets snow flakes drift down the
// play area. While running it adds a random batch of flakes each tick until
// the controller's MaxParticles is reached. Flakes reaching the ground go back
// to the top; when the effect is stopped they are parked there inactive and
// resume falling on the next Start.
type SnowBehavior struct {
	NopBehavior
	particlePool
}

// NewSnowBehavior creates a snow effect adding up to batch flakes per tick.
// New flakes are published to registry.
func NewSnowBehavior(registry Registry, world *World, batch int) *SnowBehavior {
	return &SnowBehavior{particlePool: newParticlePool(registry, world, batch)}
}

// Name identifies the effect in logs and debug output.
func (s *SnowBehavior) Name() string { return "Snow" }

// SetRand replaces the random source used for batches and flake placement.
func (s *SnowBehavior) SetRand(rng *rand.Rand) {
	s.particlePool.SetRand(rng)
}

// Update adds a batch of flakes while running and recycles landed ones.
func (s *SnowBehavior) Update(_ float64, e *Entity) {
	s.prepareController(e)
	if s.run {
		maxBatch := s.batchSize()
		for i := 0.0; i < maxBatch && len(s.drops) < e.MaxParticles; i++ {
			s.Create(e)
		}
	}
	floor := s.playArea.Height - 1
	for _, f := range s.drops {
		switch {
		case f.Position.Y >= floor:
			f.SetPosition(s.randomTop())
			f.SetActive(s.run)
		case s.run && !f.active:
			f.SetActive(true)
		}
	}
}

// Create adds a flake at a random top position while the pool is below
// parent.MaxParticles, otherwise reactivates the first parked flake. It
// returns nil when every flake is falling.
func (s *SnowBehavior) Create(parent *Entity) *Entity {
	x, y := s.randomTop()
	if len(s.drops) < parent.MaxParticles {
		f := NewParticle(fmt.Sprintf("%s_flake_%d", parent.Name, len(s.drops))).
			SetType(TypeDot).
			SetPhysicType(Dynamic).
			SetSize(1, 1).
			SetPosition(x, y).
			SetFillColor(ColorWhite).
			SetMass(4000.01).
			SetVelocity(0.8-s.rng.Float64()*1.6, s.rng.Float64()*0.0009).
			SetParentRelative(false)
		s.publish(parent, f)
		return f
	}
	f := s.firstInactive()
	if f == nil {
		return nil
	}
	f.SetPosition(x, y).SetActive(true)
	return f
}
