package squall

// DefaultGravity is the gravity used when none is configured.
const DefaultGravity = 0.981

// Influencer is a local force zone. It is stored by the World but not yet
// processed by the PhysicsEngine.
type Influencer struct {
	Name   string
	Area   Rect
	Force  Vec2
	Active bool
}

// World is the read-only context consulted by the PhysicsEngine: gravity and
// the play-area boundary every dynamic entity is constrained to.
type World struct {
	Gravity     float64
	PlayArea    Size
	influencers []*Influencer
}

// NewWorld creates a World with the given gravity and play area.
func NewWorld(gravity float64, playArea Size) *World {
	return &World{Gravity: gravity, PlayArea: playArea}
}

// AddInfluencer registers an influencer and returns the World for chaining.
func (w *World) AddInfluencer(i *Influencer) *World {
	w.influencers = append(w.influencers, i)
	return w
}

// Influencers returns the registered influencers. The returned slice MUST NOT
// be mutated by the caller.
func (w *World) Influencers() []*Influencer {
	return w.influencers
}
