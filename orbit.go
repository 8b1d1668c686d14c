package squall

import (
	"math"
	"math/rand/v2"
)

// OrbitPhaseKey is the attribute OrbitBehavior keeps its angle in.
const OrbitPhaseKey = "life"

// OrbitBehavior moves an entity around (Center.X, Center.Y) on a wobbling
// circle of the given Radius. The current angle lives in the entity's
// OrbitPhaseKey attribute, so one behavior can drive several entities. Use it
// on parent-relative entities to orbit around the parent.
type OrbitBehavior struct {
	NopBehavior
	Center Vec2
	Radius float64
	// Speed is the angular step per tick, scaled by 0.05. Negative values
	// orbit counter-clockwise.
	Speed float64
}

// NewOrbitBehavior creates an orbit around (cx, cy) with a random speed in
// [-0.5, 0.5).
func NewOrbitBehavior(cx, cy, radius float64) *OrbitBehavior {
	return &OrbitBehavior{
		Center: Vec2{cx, cy},
		Radius: radius,
		Speed:  rand.Float64() - 0.5,
	}
}

// Update advances the orbit phase and places e on the wobbling circle.
func (o *OrbitBehavior) Update(_ float64, e *Entity) {
	life := e.AttributeFloat(OrbitPhaseKey, 2*math.Pi)
	life += 0.05 * o.Speed
	if life > 2*math.Pi {
		life = 0
	}
	if life < 0 {
		life = 2 * math.Pi
	}
	r := o.Radius
	e.Position.X = o.Center.X + math.Cos(life)*r
	e.Position.Y = o.Center.Y + math.Sin(life)*r +
		math.Sin(life*r*0.25)*8 +
		math.Sin(life*r*0.5)*4
	e.SetAttribute(OrbitPhaseKey, life)
}
