package squall

import (
	"fmt"
	"math/rand/v2"
)

// RainBehaviorName is the name PlayScene-style setups register rain under.
const RainBehaviorName = "rainBehavior"

// DefaultDropColor is a half-transparent light blue.
var DefaultDropColor = Color{R: 0.4, G: 0.7, B: 0.9, A: 0.5}

// RainBehavior is a ParticleBehavior that makes rain fall from the top of the
// play area. Every dropTime milliseconds it emits a random batch of drops
// until the controller's MaxParticles is reached; from then on it recycles
// drops that hit the ground instead of allocating new ones.
type RainBehavior struct {
	NopBehavior
	particlePool

	speed        float64
	dropTime     float64
	internalTime float64
	nbActive     int
	drop         *RainDropBehavior

	// DropColor is used for drops created after it is set.
	DropColor Color
}

// NewRainBehavior creates a rain effect emitting up to batch drops every
// dropTime milliseconds, each falling at dropSpeed. New drops are published
// to registry.
func NewRainBehavior(registry Registry, world *World, batch int, dropTime, dropSpeed float64) *RainBehavior {
	r := &RainBehavior{
		particlePool: newParticlePool(registry, world, batch),
		speed:        dropSpeed,
		dropTime:     dropTime,
		DropColor:    DefaultDropColor,
	}
	r.drop = &RainDropBehavior{pool: &r.particlePool}
	return r
}

// Name identifies the effect in logs and debug output.
func (r *RainBehavior) Name() string { return "Rain" }

// SetRand replaces the random source used for batches and drop placement.
func (r *RainBehavior) SetRand(rng *rand.Rand) {
	r.particlePool.SetRand(rng)
}

// Update emits a batch of drops when running and dropTime has elapsed since
// the previous batch.
func (r *RainBehavior) Update(elapsed float64, e *Entity) {
	r.prepareController(e)
	r.internalTime += elapsed
	if !r.run || r.internalTime <= r.dropTime {
		return
	}
	maxBatch := r.batchSize()
	// nbActive is the count from the previous batch. Drops that landed since
	// then are only seen by the next batch, so a full pool recycles on every
	// other batch.
	for i := 0.0; i < maxBatch && r.nbActive < e.MaxParticles; i++ {
		if r.Create(e) != nil {
			r.nbActive++
		}
	}
	r.nbActive = r.ActiveCount()
	r.internalTime = 0
}

// Create allocates a new drop while the pool is below parent.MaxParticles,
// otherwise reactivates the first inactive drop at a random top position.
// It returns nil when every drop is already falling.
func (r *RainBehavior) Create(parent *Entity) *Entity {
	if len(r.drops) < parent.MaxParticles {
		x, y := r.randomTop()
		d := NewParticle(fmt.Sprintf("%s_drop_%d", parent.Name, len(r.drops))).
			SetType(TypeLine).
			SetPhysicType(Dynamic).
			SetSize(1, 1).
			SetPosition(x, y).
			SetBorderColor(r.DropColor).
			SetMass(1000).
			SetVelocity(0.5-r.rng.Float64(), r.speed).
			SetParentRelative(false).
			AddBehavior(r.drop).
			SetActive(true)
		r.publish(parent, d)
		return d
	}
	d := r.firstInactive()
	if d == nil {
		return nil
	}
	x, y := r.randomTop()
	d.SetPosition(x, y).
		SetVelocity(0.5-r.rng.Float64(), r.speed).
		SetActive(true)
	d.Contact = 0
	return d
}

// RainDropBehavior returns a drop to its pool once it reaches the ground:
// the drop moves back to the top and deactivates until recycled.
type RainDropBehavior struct {
	NopBehavior
	pool *particlePool
}

// Update parks the drop once it reaches the bottom row of the play area.
func (b *RainDropBehavior) Update(_ float64, p *Entity) {
	if p.Position.Y >= b.pool.playArea.Height-1 {
		p.SetPosition(b.pool.randomTop())
		p.SetActive(false)
	}
}
