package squall

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default border color.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlue is the default fill color.
	ColorBlue = Color{0, 0, 1, 1}
	// ColorTransparent draws nothing.
	ColorTransparent = Color{}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Size is a width/height pair, used for play areas and viewports.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// EntityType is the rendering hint for an Entity. The renderer dispatches on it.
type EntityType uint8

const (
	TypeNone      EntityType = iota // invisible (particle controllers, logic holders)
	TypeDot                         // single pixel at the entity position
	TypeLine                        // segment from position along velocity
	TypeRectangle                   // filled and bordered rectangle
	TypeEllipse                     // filled and bordered ellipse
	TypeImage                       // image or current animation frame
)

var entityTypeNames = [...]string{"NONE", "DOT", "LINE", "RECTANGLE", "ELLIPSE", "IMAGE"}

func (t EntityType) String() string {
	if int(t) < len(entityTypeNames) {
		return entityTypeNames[t]
	}
	return "UNKNOWN"
}

// PhysicType selects how the PhysicsEngine treats an entity.
type PhysicType uint8

const (
	// Dynamic entities are fully integrated: gravity, friction, motion.
	Dynamic PhysicType = iota
	// Static entities are excluded from force integration but still run
	// behaviors, animation and lifetime.
	Static
)

func (p PhysicType) String() string {
	if p == Static {
		return "STATIC"
	}
	return "DYNAMIC"
}

// Kind distinguishes the entity specializations. It replaces type switches
// on wrapper structs: every specialization is an Entity with extra fields.
type Kind uint8

const (
	KindEntity   Kind = iota // plain entity
	KindCamera               // owned by a Camera, never integrated
	KindParticle             // free particle or particle pool controller
	KindText                 // carries a TextBlock
)

// Contact bits recorded by the play-area constraint, one per edge.
const (
	ContactLeft   = 1
	ContactTop    = 2
	ContactRight  = 4
	ContactBottom = 8
)
