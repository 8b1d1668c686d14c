package squall

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug levels of the Renderer overlay.
const (
	DebugOff     = 0 // no overlay
	DebugSummary = 1 // entity counts in the top-left corner
	DebugBounds  = 2 // plus bounding boxes
	DebugInfo    = 3 // plus per-entity DebugInfo lines
	DebugGrid    = 4 // plus the play-area grid
	debugLevels  = 5
)

// debugGridStep is the cell size of the play-area grid overlay.
const debugGridStep = 32

var (
	debugBoundsColor = Color{R: 1, G: 1, B: 0, A: 0.6}
	debugGridColor   = Color{R: 0.8, G: 0.4, B: 0.1, A: 0.6}
	debugAreaColor   = Color{R: 0, G: 0.5, B: 0.9, A: 0.6}
)

// whitePixel is a 1x1 white image used as the source of filled triangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// DrawContext is handed to Behavior.Draw. GeoM holds the camera transform
// while non-fixed entities are drawn.
type DrawContext struct {
	Screen     *ebiten.Image
	GeoM       ebiten.GeoM
	DebugLevel int
}

func (c *DrawContext) Translate(tx, ty float64) { c.GeoM.Translate(tx, ty) }
func (c *DrawContext) Rotate(theta float64) { c.GeoM.Rotate(theta) }

// Apply maps play-area coordinates to screen coordinates.
func (c *DrawContext) Apply(x, y float64) (float64, float64) {
	return c.GeoM.Apply(x, y)
}

// Renderer draws the entities of a Scene onto an ebiten image. Entities are
// drawn by ascending Priority, so higher priorities end up on top; the first
// camera of the scene transforms every entity that is not fixed to it.
type Renderer struct {
	// ClearColor fills the screen before drawing. Transparent skips the fill.
	ClearColor Color
	// Face is used for text entities without their own face. When both are
	// nil the ebitenutil debug font is used.
	Face       text.Face
	DebugLevel int

	order []*Entity
}

// NewRenderer creates a renderer with a black background.
func NewRenderer() *Renderer {
	return &Renderer{ClearColor: Color{0, 0, 0, 1}}
}

// CycleDebug moves to the next debug level, wrapping to DebugOff.
func (r *Renderer) CycleDebug() int {
	r.DebugLevel = (r.DebugLevel + 1) % debugLevels
	return r.DebugLevel
}

// drawOrder collects the active entities of s that are not cameras, sorted by
// ascending priority. Equal priorities keep insertion order.
func (r *Renderer) drawOrder(s *Scene) []*Entity {
	r.order = r.order[:0]
	for _, e := range s.order {
		if !e.active || e.IsCamera() {
			continue
		}
		r.order = append(r.order, e)
	}
	slices.SortStableFunc(r.order, func(a, b *Entity) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return r.order
}

// visible reports whether any part of e overlaps the camera viewport. Static
// and camera-fixed entities are always visible.
func visible(cam *Camera, e *Entity) bool {
	if cam == nil || cam.IsInFOV(e) {
		return true
	}
	p := e.AbsolutePosition()
	return cam.VisibleBounds().Intersects(Rect{X: p.X, Y: p.Y, Width: e.Width, Height: e.Height})
}

// Draw renders s onto screen. Entities outside the camera viewport are not
// drawn, but their behaviors' Draw hooks still run.
func (r *Renderer) Draw(screen *ebiten.Image, s *Scene) {
	if r.ClearColor.A > 0 {
		screen.Fill(r.ClearColor.RGBA())
	}
	ctx := &DrawContext{Screen: screen, DebugLevel: r.DebugLevel}
	cam := s.Camera()

	if cam != nil {
		cam.PreDraw(ctx)
	}
	if r.DebugLevel >= DebugGrid && s.physics.world != nil {
		drawGrid(ctx, s.physics.world.PlayArea)
	}
	if cam != nil {
		cam.PostDraw(ctx)
	}

	drawn := 0
	for _, e := range r.drawOrder(s) {
		transformed := cam != nil && !e.fixedToCamera
		if transformed {
			cam.PreDraw(ctx)
		}
		shown := visible(cam, e)
		if shown {
			r.drawEntity(ctx, e)
			drawn++
		}
		for _, b := range e.behaviors {
			b.Draw(ctx, e)
		}
		if shown && r.DebugLevel >= DebugBounds && e.Type != TypeNone {
			drawDebug(ctx, e)
		}
		if transformed {
			cam.PostDraw(ctx)
		}
	}

	if r.DebugLevel >= DebugSummary {
		msg := fmt.Sprintf("dbg:%d | entities: %d | active: %d | drawn: %d",
			r.DebugLevel, len(s.order), len(r.order), drawn)
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
	clear(r.order)
}

// drawEntity dispatches on the entity kind, then its type. Unknown types are
// logged once and skipped.
func (r *Renderer) drawEntity(ctx *DrawContext, e *Entity) {
	if e.Kind == KindText && e.Text != nil {
		r.drawText(ctx, e)
		return
	}
	p := e.AbsolutePosition()
	x, y := ctx.Apply(p.X, p.Y)
	switch e.Type {
	case TypeNone:
	case TypeDot:
		vector.DrawFilledRect(ctx.Screen, float32(x), float32(y), 1, 1, e.FillColor.RGBA(), false)
	case TypeLine:
		x1, y1 := ctx.Apply(p.X+e.Velocity.X, p.Y+e.Velocity.Y)
		vector.StrokeLine(ctx.Screen, float32(x), float32(y), float32(x1), float32(y1), 1, e.BorderColor.RGBA(), false)
	case TypeRectangle:
		w, h := float32(e.Width), float32(e.Height)
		vector.DrawFilledRect(ctx.Screen, float32(x), float32(y), w, h, e.FillColor.RGBA(), false)
		vector.StrokeRect(ctx.Screen, float32(x), float32(y), w, h, 1, e.BorderColor.RGBA(), false)
	case TypeEllipse:
		drawEllipse(ctx.Screen, x, y, e.Width, e.Height, e.FillColor, e.BorderColor)
	case TypeImage:
		drawImage(ctx, e, p)
	default:
		debugUnknownType(e)
	}
}

// drawImage draws the current animation frame, or the static image when the
// entity has no animation. "No frame" draws nothing.
func drawImage(ctx *DrawContext, e *Entity, p Vec2) {
	img := e.CurrentFrame()
	if img == nil {
		img = e.Image
	}
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if e.Direction < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(p.X, p.Y)
	op.GeoM.Concat(ctx.GeoM)
	ctx.Screen.DrawImage(img, op)
}

// ellipseSegments is the number of segments used to approximate an ellipse.
const ellipseSegments = 32

// drawEllipse fills the ellipse inscribed in (x, y, w, h) with a triangle fan
// and strokes its outline.
func drawEllipse(dst *ebiten.Image, x, y, w, h float64, fill, border Color) {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	fr, fg, fb, fa := float32(fill.R), float32(fill.G), float32(fill.B), float32(fill.A)

	verts := make([]ebiten.Vertex, 0, ellipseSegments+1)
	inds := make([]uint16, 0, ellipseSegments*3)
	verts = append(verts, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy), SrcX: 0.5, SrcY: 0.5,
		ColorR: fr * fa, ColorG: fg * fa, ColorB: fb * fa, ColorA: fa,
	})
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		verts = append(verts, ebiten.Vertex{
			DstX: float32(cx + math.Cos(a)*rx), DstY: float32(cy + math.Sin(a)*ry),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: fr * fa, ColorG: fg * fa, ColorB: fb * fa, ColorA: fa,
		})
		next := uint16(i+1)%ellipseSegments + 1
		inds = append(inds, 0, uint16(i+1), next)
	}
	dst.DrawTriangles(verts, inds, whitePixel, &ebiten.DrawTrianglesOptions{})

	bc := border.RGBA()
	for i := 1; i <= ellipseSegments; i++ {
		a, b := verts[i], verts[i%ellipseSegments+1]
		vector.StrokeLine(dst, a.DstX, a.DstY, b.DstX, b.DstY, 1, bc, false)
	}
}

// drawText draws a text entity: border outline, then shadow, then the text.
func (r *Renderer) drawText(ctx *DrawContext, e *Entity) {
	tb := e.Text
	p := e.AbsolutePosition()
	face := tb.Face
	if face == nil {
		face = r.Face
	}
	if face == nil {
		x, y := ctx.Apply(p.X, p.Y)
		ebitenutil.DebugPrintAt(ctx.Screen, tb.Content, int(x), int(y))
		return
	}
	draw := func(dx, dy float64, c Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(p.X+dx, p.Y+dy)
		op.GeoM.Concat(ctx.GeoM)
		op.ColorScale.ScaleWithColor(c.RGBA())
		text.Draw(ctx.Screen, tb.Content, face, op)
	}
	if bw := float64(tb.BorderWidth); bw > 0 {
		for _, d := range [...][2]float64{{-bw, -bw}, {bw, -bw}, {-bw, bw}, {bw, bw}} {
			draw(d[0], d[1], e.BorderColor)
		}
	}
	if sw := float64(tb.ShadowWidth); sw > 0 {
		draw(sw, sw, tb.ShadowColor)
	}
	draw(0, 0, tb.Color)
}

// drawDebug strokes the entity bounds and, at DebugInfo level, prints its
// DebugInfo lines next to it.
func drawDebug(ctx *DrawContext, e *Entity) {
	p := e.AbsolutePosition()
	x, y := ctx.Apply(p.X, p.Y)
	vector.StrokeRect(ctx.Screen, float32(x), float32(y), float32(e.Width), float32(e.Height), 1, debugBoundsColor.RGBA(), false)
	if ctx.DebugLevel >= DebugInfo && e.Kind != KindParticle {
		ebitenutil.DebugPrintAt(ctx.Screen, strings.Join(e.DebugInfo(), "\n"), int(x+e.Width)+2, int(y))
	}
}

// drawGrid strokes a debugGridStep grid over the play area and its outline.
func drawGrid(ctx *DrawContext, area Size) {
	gc := debugGridColor.RGBA()
	x0, y0 := ctx.Apply(0, 0)
	for ix := 0.0; ix < area.Width; ix += debugGridStep {
		x, _ := ctx.Apply(ix, 0)
		vector.StrokeLine(ctx.Screen, float32(x), float32(y0), float32(x), float32(y0+area.Height), 0.5, gc, false)
	}
	for iy := 0.0; iy < area.Height; iy += debugGridStep {
		_, y := ctx.Apply(0, iy)
		vector.StrokeLine(ctx.Screen, float32(x0), float32(y), float32(x0+area.Width), float32(y), 0.5, gc, false)
	}
	vector.StrokeRect(ctx.Screen, float32(x0), float32(y0), float32(area.Width), float32(area.Height), 1, debugAreaColor.RGBA(), false)
}

// DebugSwitcher cycles the renderer debug level each time Key is released.
type DebugSwitcher struct {
	NopBehavior
	// Key defaults to ebiten.KeyD.
	Key      ebiten.Key
	renderer *Renderer
}

// NewDebugSwitcher creates a switcher for r.
func NewDebugSwitcher(r *Renderer) *DebugSwitcher {
	return &DebugSwitcher{Key: ebiten.KeyD, renderer: r}
}

func (d *DebugSwitcher) Input(in UserInput, _ *Entity) {
	if in.IsKeyJustReleased(d.Key) {
		d.renderer.CycleDebug()
	}
}
