package squall

// Behavior is a unit of logic attached to an entity. All three hooks are
// invoked every tick for every behavior of every active entity, in the order
// the behaviors were added. Embed NopBehavior to implement only the hooks
// you need.
//
// Behaviors are not typed against an entity specialization; a behavior that
// needs a specialization's fields checks Entity.Kind itself.
type Behavior interface {
	// Input runs once per tick before physics, with the sampled input state.
	Input(in UserInput, e *Entity)
	// Update runs during the entity's integration step. elapsed is in
	// milliseconds.
	Update(elapsed float64, e *Entity)
	// Draw runs after the entity has been drawn.
	Draw(ctx *DrawContext, e *Entity)
}

// NopBehavior implements every Behavior hook as a no-op.
type NopBehavior struct{}

func (NopBehavior) Input(UserInput, *Entity) {}
func (NopBehavior) Update(float64, *Entity) {}
func (NopBehavior) Draw(*DrawContext, *Entity) {}

// UpdateFunc adapts a plain function to a Behavior with only an Update hook.
type UpdateFunc func(elapsed float64, e *Entity)

func (f UpdateFunc) Input(UserInput, *Entity) {}
func (f UpdateFunc) Update(elapsed float64, e *Entity) { f(elapsed, e) }
func (f UpdateFunc) Draw(*DrawContext, *Entity) {}

// InputFunc adapts a plain function to a Behavior with only an Input hook.
type InputFunc func(in UserInput, e *Entity)

func (f InputFunc) Input(in UserInput, e *Entity) { f(in, e) }
func (f InputFunc) Update(float64, *Entity) {}
func (f InputFunc) Draw(*DrawContext, *Entity) {}

// ParticleBehavior drives a pool of child particles from a controller entity.
type ParticleBehavior interface {
	Behavior
	// Name identifies the effect ("Rain", "Snow").
	Name() string
	// Create builds or recycles one particle, attaches it to parent and
	// publishes it to the scene. It returns nil when the pool is exhausted.
	Create(parent *Entity) *Entity
	// Start enables particle generation.
	Start()
	// Stop disables particle generation.
	Stop()
	// Running reports whether generation is enabled.
	Running() bool
}
