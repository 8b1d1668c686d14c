package squall

import (
	"math/rand/v2"
)

// particlePool is the state shared by the pooling behaviors: the particles
// created so far (never more than the controller's MaxParticles), the run
// flag, and where new particles are published.
type particlePool struct {
	registry Registry
	playArea Size
	batch    int
	run      bool
	drops    []*Entity
	rng      *rand.Rand
}

func newParticlePool(registry Registry, world *World, batch int) particlePool {
	if registry == nil {
		panic("squall: particle behavior needs a registry")
	}
	return particlePool{
		registry: registry,
		playArea: world.PlayArea,
		batch:    batch,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetRand replaces the random source, for reproducible effects.
func (p *particlePool) SetRand(r *rand.Rand) {
	p.rng = r
}

// Start enables particle generation.
func (p *particlePool) Start() { p.run = true }

// Stop disables particle generation.
func (p *particlePool) Stop() { p.run = false }

// Running reports whether generation is enabled.
func (p *particlePool) Running() bool { return p.run }

// Particles returns every particle created by the behavior, active or not.
// The returned slice MUST NOT be mutated by the caller.
func (p *particlePool) Particles() []*Entity {
	return p.drops
}

// ActiveCount returns the number of active particles in the pool.
func (p *particlePool) ActiveCount() int {
	n := 0
	for _, d := range p.drops {
		if d.active {
			n++
		}
	}
	return n
}

// batchSize returns a random batch size between 50% and 100% of the
// configured batch. Creation loops compare a float counter against it, so a
// fractional size rounds up to the next whole particle.
func (p *particlePool) batchSize() float64 {
	b := float64(p.batch)
	return b*0.5 + b*p.rng.Float64()*0.5
}

// prepareController spans the controller over the play area and keeps it out
// of integration.
func (p *particlePool) prepareController(e *Entity) {
	e.SetSize(p.playArea.Width, p.playArea.Height)
	e.SetPhysicType(Static)
}

// publish attaches child to parent and registers it with the scene. Both
// steps happen before the particle is handed back to any caller.
func (p *particlePool) publish(parent, child *Entity) {
	parent.AddChild(child)
	p.registry.Add(child)
	p.drops = append(p.drops, child)
}

// firstInactive returns the first inactive particle of the pool, or nil.
func (p *particlePool) firstInactive() *Entity {
	for _, d := range p.drops {
		if !d.active {
			return d
		}
	}
	return nil
}

// randomTop returns a random x along the top edge of the play area.
func (p *particlePool) randomTop() (x, y float64) {
	return p.playArea.Width * p.rng.Float64(), 0
}
