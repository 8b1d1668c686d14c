package squall

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxFollowStep clamps the elapsed factor of the follow step so that a frame
// time spike cannot throw the camera past its target.
const maxFollowStep = 0.8

// Transformer is the 2D transform a renderer draws through. *ebiten.GeoM
// satisfies it, as does *DrawContext.
type Transformer interface {
	Translate(tx, ty float64)
	Rotate(theta float64)
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a view onto the play area. Its Position is the top-left corner
// of the viewport in play-area coordinates. Each tick it eases toward
// centering its target.
type Camera struct {
	*Entity

	// Tween is the follow smoothing factor in (0, 1]; higher follows faster.
	Tween float64
	// Viewport is the size of the visible area.
	Viewport Size

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the rectangle the camera is clamped to when BoundsEnabled is true.
	Bounds Rect

	target      *Entity
	scrollTween *scrollAnim
}

// NewCamera creates a camera entity. It is never integrated by the
// PhysicsEngine.
func NewCamera(name string) *Camera {
	e := NewEntity(name, 0, 0)
	e.Kind = KindCamera
	e.Type = TypeNone
	e.Mass = 0
	e.physicType = Static
	return &Camera{Entity: e, Tween: 1}
}

// SetTarget sets the entity the camera follows. The camera does not own it.
func (c *Camera) SetTarget(t *Entity) *Camera {
	c.target = t
	return c
}

// Target returns the followed entity, or nil.
func (c *Camera) Target() *Entity {
	return c.target
}

// SetTween sets the follow smoothing factor, scaled by the elapsed time of
// each Update.
func (c *Camera) SetTween(tween float64) *Camera {
	c.Tween = tween
	return c
}

// SetViewport sets the visible area size.
func (c *Camera) SetViewport(vp Size) *Camera {
	c.Viewport = vp
	return c
}

// SetRotation sets the view rotation in radians.
func (c *Camera) SetRotation(r float64) *Camera {
	c.Rotation = r
	return c
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) *Camera {
	c.BoundsEnabled = true
	c.Bounds = bounds
	return c
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ScrollTo animates the camera's top-left corner to (x, y) over duration
// seconds. Following is suspended until the scroll completes.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Position.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Position.Y), float32(y), duration, easeFn),
	}
}

// IsScrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) IsScrolling() bool {
	return c.scrollTween != nil
}

// Update moves the camera by elapsed milliseconds. Each axis steps by
//
//	ceil((targetCenter - viewport/2 - position) * Tween * min(elapsed, 0.8))
func (c *Camera) Update(elapsed float64) {
	switch {
	case c.scrollTween != nil:
		c.updateScroll(float32(elapsed / 1000))
	case c.target != nil:
		step := c.Tween * math.Min(elapsed, maxFollowStep)
		tp := c.target.AbsolutePosition()
		c.Position.X += math.Ceil((tp.X + c.target.Width*0.5 - c.Viewport.Width*0.5 - c.Position.X) * step)
		c.Position.Y += math.Ceil((tp.Y + c.target.Height*0.5 - c.Viewport.Height*0.5 - c.Position.Y) * step)
	}
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

func (c *Camera) updateScroll(dt float32) {
	s := c.scrollTween
	if !s.doneX {
		val, done := s.tweenX.Update(dt)
		c.Position.X = float64(val)
		s.doneX = done
	}
	if !s.doneY {
		val, done := s.tweenY.Update(dt)
		c.Position.Y = float64(val)
		s.doneY = done
	}
	if s.doneX && s.doneY {
		c.scrollTween = nil
	}
}

// clampToBounds restricts the camera position so the visible area stays
// within Bounds. If Bounds is smaller than the viewport on an axis, the
// viewport is centered on Bounds along that axis.
func (c *Camera) clampToBounds() {
	minX, maxX := c.Bounds.X, c.Bounds.X+c.Bounds.Width-c.Viewport.Width
	minY, maxY := c.Bounds.Y, c.Bounds.Y+c.Bounds.Height-c.Viewport.Height
	if minX > maxX {
		c.Position.X = c.Bounds.X + (c.Bounds.Width-c.Viewport.Width)/2
	} else {
		c.Position.X = math.Max(minX, math.Min(c.Position.X, maxX))
	}
	if minY > maxY {
		c.Position.Y = c.Bounds.Y + (c.Bounds.Height-c.Viewport.Height)/2
	} else {
		c.Position.Y = math.Max(minY, math.Min(c.Position.Y, maxY))
	}
}

// PreDraw applies the camera transform to t. Call it before drawing every
// entity that is not fixed to the camera, and PostDraw afterwards.
func (c *Camera) PreDraw(t Transformer) {
	t.Translate(-c.Position.X, -c.Position.Y)
	t.Rotate(-c.Rotation)
}

// PostDraw undoes PreDraw.
func (c *Camera) PostDraw(t Transformer) {
	t.Rotate(c.Rotation)
	t.Translate(c.Position.X, c.Position.Y)
}

// WorldToScreen converts play-area coordinates to viewport coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sin, cos := math.Sincos(-c.Rotation)
	x, y := wx-c.Position.X, wy-c.Position.Y
	return cos*x - sin*y, sin*x + cos*y
}

// ScreenToWorld converts viewport coordinates to play-area coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	sin, cos := math.Sincos(c.Rotation)
	return cos*sx - sin*sy + c.Position.X, sin*sx + cos*sy + c.Position.Y
}

// VisibleBounds returns the viewport rectangle in play-area coordinates,
// ignoring rotation.
func (c *Camera) VisibleBounds() Rect {
	return Rect{X: c.Position.X, Y: c.Position.Y, Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// IsInFOV reports whether e should be considered visible. Entities fixed to
// the camera and static entities always are; others are visible when their
// absolute position lies within the viewport.
func (c *Camera) IsInFOV(e *Entity) bool {
	if e.fixedToCamera || e.physicType == Static {
		return true
	}
	p := e.AbsolutePosition()
	return c.VisibleBounds().Contains(p.X, p.Y)
}
