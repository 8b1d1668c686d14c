package squall

// Material is a named physical profile. Materials are shared by pointer
// between entities and are never mutated after construction.
type Material struct {
	name       string
	density    float64
	elasticity float64
	friction   float64
}

// DefaultMaterial is assigned to every new entity.
var DefaultMaterial = NewMaterial("default", 1.0, 0.60, 0.998)

// NewMaterial creates a material. Elasticity scales the rebound velocity on a
// play-area contact; friction scales vertical velocity while in contact.
func NewMaterial(name string, density, elasticity, friction float64) *Material {
	return &Material{name: name, density: density, elasticity: elasticity, friction: friction}
}

func (m *Material) Name() string { return m.name }
func (m *Material) Density() float64 { return m.density }
func (m *Material) Elasticity() float64 { return m.elasticity }
func (m *Material) Friction() float64 { return m.friction }
