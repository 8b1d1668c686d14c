package squall

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// InfiniteLife is the duration of an entity that never expires.
const InfiniteLife = -1

// TextBlock holds the fields of a text entity (KindText).
type TextBlock struct {
	Content     string
	Face        text.Face
	Color       Color
	ShadowColor Color
	ShadowWidth int
	BorderWidth int
}

// Entity is the simulated object. A single flat struct is used for every
// specialization (camera, particle, text); Kind says which extra fields are
// meaningful.
//
// Setters return the receiver so scene setup can be written as one chain:
//
//	player := squall.NewEntity("player", 100, 80).
//		SetSize(32, 32).
//		SetMass(80).
//		SetPriority(1).
//		AddBehavior(squall.PlayerInputBehavior{})
type Entity struct {
	// Identity. ID is assigned by the Scene the entity is added to.
	ID   uint32
	Name string
	Kind Kind
	Type EntityType

	// Hierarchy
	parent   *Entity
	children []*Entity

	// Kinematics
	Position Vec2
	Velocity Vec2
	// Mass of zero means the entity is not affected by gravity.
	Mass float64

	// Geometry and render hints
	Width, Height float64
	Rotation      float64
	// Direction is a horizontal flip hint: 1 facing right, -1 facing left.
	Direction   int
	BorderColor Color
	FillColor   Color
	Image       *ebiten.Image

	// Physics
	material         *Material
	physicType       PhysicType
	relativeToParent bool
	fixedToCamera    bool
	// Contact is the bitmask of play-area edges touched during the last
	// constraint pass (ContactLeft | ContactTop | ContactRight | ContactBottom).
	Contact int

	// Priority orders processing and drawing: higher values are processed
	// first by physics and drawn last (on top).
	Priority int

	behaviors        []Behavior
	animations       map[string]*Animation
	CurrentAnimation string
	attributes       map[string]any

	// Lifecycle
	active   bool
	duration float64
	live     float64

	bbox Rect

	// MaxParticles is meaningful for KindParticle: -1 marks a free particle,
	// a value >= 0 marks a controller driving a pool of that many children.
	MaxParticles int

	// Text is set for KindText.
	Text *TextBlock
}

// entityDefaults sets the common default field values shared by all constructors.
func entityDefaults(e *Entity) {
	e.Type = TypeRectangle
	e.Width = 16
	e.Height = 16
	e.Mass = 1
	e.BorderColor = ColorWhite
	e.FillColor = ColorBlue
	e.material = DefaultMaterial
	e.physicType = Dynamic
	e.active = true
	e.duration = InfiniteLife
	e.updateBBox()
}

// NewEntity creates a 16x16 dynamic rectangle at (x, y).
func NewEntity(name string, x, y float64) *Entity {
	e := &Entity{Name: name, Kind: KindEntity, Position: Vec2{x, y}}
	entityDefaults(e)
	return e
}

// NewParticle creates a free particle whose position is an offset from its
// parent.
func NewParticle(name string) *Entity {
	e := &Entity{Name: name, Kind: KindParticle, MaxParticles: -1}
	entityDefaults(e)
	e.relativeToParent = true
	return e
}

// NewParticleController creates an invisible, massless entity driving a pool
// of at most maxParticles child particles through its ParticleBehaviors.
func NewParticleController(name string, x, y float64, maxParticles int) *Entity {
	e := &Entity{Name: name, Kind: KindParticle, Position: Vec2{x, y}, MaxParticles: maxParticles}
	entityDefaults(e)
	e.Type = TypeNone
	e.Mass = 0
	return e
}

// NewTextEntity creates a text entity at (x, y).
func NewTextEntity(name string, x, y float64, content string) *Entity {
	e := &Entity{
		Name:     name,
		Kind:     KindText,
		Position: Vec2{x, y},
		Text: &TextBlock{
			Content:     content,
			Color:       ColorWhite,
			ShadowColor: Color{0, 0, 0, 1},
		},
	}
	entityDefaults(e)
	return e
}

// --- Tree manipulation ---

// AddChild makes child a child of e. If child already has a parent, it is
// removed from that parent first.
// Panics if child is nil or child is e or one of its ancestors (cycle).
func (e *Entity) AddChild(child *Entity) *Entity {
	if child == nil {
		panic("squall: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("squall: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
	return e
}

// RemoveChild detaches child from e.
// Panics if child's parent is not e.
func (e *Entity) RemoveChild(child *Entity) {
	if child.parent != e {
		panic("squall: child's parent is not this entity")
	}
	e.removeChildByPtr(child)
	child.parent = nil
}

// Parent returns the parent entity, or nil for a root entity. The parent does
// not own the child.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Entity) Children() []*Entity {
	return e.children
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Entity) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.parent.
func (e *Entity) removeChildByPtr(child *Entity) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// --- Fluent setters ---

// SetPosition moves the entity to (x, y).
func (e *Entity) SetPosition(x, y float64) *Entity {
	e.Position = Vec2{x, y}
	return e
}

// SetVelocity sets the velocity in play-area units per tick.
func (e *Entity) SetVelocity(dx, dy float64) *Entity {
	e.Velocity = Vec2{dx, dy}
	return e
}

// SetSize sets the width and height.
func (e *Entity) SetSize(w, h float64) *Entity {
	e.Width = w
	e.Height = h
	return e
}

// SetMass sets the mass. Zero mass disables gravity.
func (e *Entity) SetMass(m float64) *Entity {
	e.Mass = m
	return e
}

// SetRotation sets the rotation in radians.
func (e *Entity) SetRotation(r float64) *Entity {
	e.Rotation = r
	return e
}

// SetType sets the rendering hint.
func (e *Entity) SetType(t EntityType) *Entity {
	e.Type = t
	return e
}

// SetBorderColor sets the outline color.
func (e *Entity) SetBorderColor(c Color) *Entity {
	e.BorderColor = c
	return e
}

// SetFillColor sets the fill color.
func (e *Entity) SetFillColor(c Color) *Entity {
	e.FillColor = c
	return e
}

// SetMaterial shares m with e. A nil material restores DefaultMaterial.
func (e *Entity) SetMaterial(m *Material) *Entity {
	if m == nil {
		m = DefaultMaterial
	}
	e.material = m
	return e
}

// SetPhysicType sets whether the entity is integrated (Dynamic) or not (Static).
func (e *Entity) SetPhysicType(pt PhysicType) *Entity {
	e.physicType = pt
	return e
}

// SetParentRelative marks the position as an offset from the parent. Relative
// entities are neither integrated nor constrained to the play area.
func (e *Entity) SetParentRelative(relative bool) *Entity {
	e.relativeToParent = relative
	return e
}

// SetFixedToCamera excludes the entity from the camera transform and from
// field-of-view checks (HUD elements).
func (e *Entity) SetFixedToCamera(fixed bool) *Entity {
	e.fixedToCamera = fixed
	return e
}

// SetPriority sets the update and draw priority. Higher priorities are
// updated first and drawn on top.
func (e *Entity) SetPriority(p int) *Entity {
	e.Priority = p
	return e
}

// SetActive enables or disables the entity.
func (e *Entity) SetActive(active bool) *Entity {
	e.active = active
	return e
}

// SetImage switches the entity to TypeImage and sizes it to img.
func (e *Entity) SetImage(img *ebiten.Image) *Entity {
	e.Image = img
	e.Type = TypeImage
	if img != nil {
		b := img.Bounds()
		e.SetSize(float64(b.Dx()), float64(b.Dy()))
	}
	e.updateBBox()
	return e
}

// SetDuration gives the entity a lifetime of d milliseconds, after which it
// deactivates. InfiniteLife removes the limit. A positive duration also
// reactivates the entity.
func (e *Entity) SetDuration(d float64) *Entity {
	e.duration = d
	e.live = d
	if d > 0 {
		e.active = true
	}
	return e
}

// --- Accessors ---

func (e *Entity) Material() *Material { return e.material }
func (e *Entity) PhysicType() PhysicType { return e.physicType }
func (e *Entity) IsRelativeToParent() bool { return e.relativeToParent }
func (e *Entity) IsFixedToCamera() bool { return e.fixedToCamera }
func (e *Entity) IsActive() bool { return e.active }
func (e *Entity) IsCamera() bool { return e.Kind == KindCamera }
func (e *Entity) Duration() float64 { return e.duration }
func (e *Entity) Live() float64 { return e.live }
func (e *Entity) Bounds() Rect { return e.bbox }

// AbsolutePosition returns the position in play-area coordinates, resolving
// parent-relative offsets up the tree.
func (e *Entity) AbsolutePosition() Vec2 {
	if e.relativeToParent && e.parent != nil {
		return e.Position.Add(e.parent.AbsolutePosition())
	}
	return e.Position
}

// --- Behaviors ---

// AddBehavior appends b to the behavior list.
func (e *Entity) AddBehavior(b Behavior) *Entity {
	e.behaviors = append(e.behaviors, b)
	return e
}

// RemoveBehavior removes the first occurrence of b. No-op if absent.
func (e *Entity) RemoveBehavior(b Behavior) {
	for i, eb := range e.behaviors {
		if eb == b {
			e.behaviors = append(e.behaviors[:i], e.behaviors[i+1:]...)
			return
		}
	}
}

// Behaviors returns the behavior list in dispatch order. The returned slice
// MUST NOT be mutated by the caller.
func (e *Entity) Behaviors() []Behavior {
	return e.behaviors
}

// --- Animations ---

// AddAnimation registers a under name and switches the entity to TypeImage.
// The first animation added becomes current and sizes the entity from its
// first frame.
func (e *Entity) AddAnimation(name string, a *Animation) *Entity {
	if e.animations == nil {
		e.animations = make(map[string]*Animation)
	}
	e.Type = TypeImage
	e.animations[name] = a
	if e.CurrentAnimation == "" {
		e.CurrentAnimation = name
		if img := a.Frame(); img != nil {
			b := img.Bounds()
			e.SetSize(float64(b.Dx()), float64(b.Dy()))
		}
	}
	return e
}

// SetAnimation selects the current animation. An empty name or a name with no
// registered animation is valid and draws nothing.
func (e *Entity) SetAnimation(name string) *Entity {
	e.CurrentAnimation = name
	return e
}

// Animation returns the named animation, or nil.
func (e *Entity) Animation(name string) *Animation {
	return e.animations[name]
}

// Animations returns the name to animation map.
func (e *Entity) Animations() map[string]*Animation {
	return e.animations
}

// CurrentFrame returns the image to draw for the current animation, or nil.
func (e *Entity) CurrentFrame() *ebiten.Image {
	if e.CurrentAnimation == "" {
		return nil
	}
	return e.animations[e.CurrentAnimation].Frame()
}

// --- Attributes ---

// SetAttribute stores behavior-private state under key.
func (e *Entity) SetAttribute(key string, value any) *Entity {
	if e.attributes == nil {
		e.attributes = make(map[string]any)
	}
	e.attributes[key] = value
	return e
}

// Attribute returns the value stored under key, or def when absent.
func (e *Entity) Attribute(key string, def any) any {
	if v, ok := e.attributes[key]; ok {
		return v
	}
	return def
}

// AttributeFloat returns the float64 stored under key, or def when absent or
// of another type.
func (e *Entity) AttributeFloat(key string, def float64) float64 {
	if v, ok := e.attributes[key].(float64); ok {
		return v
	}
	return def
}

// --- Per-tick update ---

// Update counts down a finite lifetime and refreshes the bounding shape.
// The entity deactivates once the cumulative elapsed time reaches its
// duration; it never reactivates on its own.
func (e *Entity) Update(elapsed float64) {
	if e.duration != InfiniteLife {
		e.live -= elapsed
		if e.live <= 0 {
			e.live = 0
			e.active = false
		}
	}
	e.updateBBox()
}

func (e *Entity) updateBBox() {
	e.bbox = Rect{X: e.Position.X, Y: e.Position.Y, Width: e.Width, Height: e.Height}
}

// Contains reports whether (x, y) lies inside the entity's bounding shape:
// an ellipse for TypeEllipse, a rectangle otherwise.
func (e *Entity) Contains(x, y float64) bool {
	if e.Type != TypeEllipse {
		return e.bbox.Contains(x, y)
	}
	rx, ry := e.bbox.Width/2, e.bbox.Height/2
	if rx == 0 || ry == 0 {
		return false
	}
	dx := (x - (e.bbox.X + rx)) / rx
	dy := (y - (e.bbox.Y + ry)) / ry
	return dx*dx+dy*dy <= 1
}

// DebugInfo returns human-readable lines for the debug overlay.
func (e *Entity) DebugInfo() []string {
	info := make([]string, 0, 6)
	info = append(info, fmt.Sprintf("#%d:%s", e.ID, e.Name))
	if e.relativeToParent {
		info = append(info, fmt.Sprintf("offset:%s", e.Position))
	} else {
		info = append(info, fmt.Sprintf("pos:%s", e.Position))
	}
	info = append(info, fmt.Sprintf("sz :%3.02f,%3.02f", e.Width, e.Height))
	info = append(info, fmt.Sprintf("spd:%s", e.Velocity))
	info = append(info, fmt.Sprintf("anm:%s", e.CurrentAnimation))
	if e.duration != InfiniteLife {
		info = append(info, fmt.Sprintf("life:%.0f/%.0f", e.live, e.duration))
	} else {
		info = append(info, "life:n/a")
	}
	return info
}

func (e *Entity) String() string {
	return fmt.Sprintf("#%d:%s", e.ID, e.Name)
}
