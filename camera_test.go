package squall

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera("cam")
	if !cam.IsCamera() {
		t.Error("camera entity should report IsCamera")
	}
	if cam.Type != TypeNone || cam.Mass != 0 || cam.PhysicType() != Static {
		t.Errorf("camera = {type:%v mass:%v physic:%v}, want {NONE 0 STATIC}", cam.Type, cam.Mass, cam.PhysicType())
	}
	if cam.Tween != 1 {
		t.Errorf("Tween = %v, want 1", cam.Tween)
	}
}

func TestCameraFollowStep(t *testing.T) {
	target := NewEntity("t", 200, 100).SetSize(20, 10)
	cam := NewCamera("cam").SetTarget(target).SetTween(0.5).SetViewport(Size{100, 50})

	cam.Update(0.4)

	// center (210, 105) - half viewport (50, 25) = (160, 80); step 0.5*0.4.
	wantX := math.Ceil(160 * 0.2)
	wantY := math.Ceil(80 * 0.2)
	if cam.Position.X != wantX || cam.Position.Y != wantY {
		t.Errorf("Position = %v, want {%v %v}", cam.Position, wantX, wantY)
	}
}

func TestCameraElapsedClamp(t *testing.T) {
	target := NewEntity("t", 1000, 0).SetSize(0, 0)
	a := NewCamera("a").SetTarget(target).SetTween(0.5)
	b := NewCamera("b").SetTarget(target).SetTween(0.5)

	a.Update(0.8)
	b.Update(500)

	if a.Position != b.Position {
		t.Errorf("elapsed 500 moved to %v, want same as elapsed 0.8 %v", b.Position, a.Position)
	}
}

func TestCameraConvergesWithoutOvershoot(t *testing.T) {
	target := NewEntity("t", 300, 200).SetSize(16, 16)
	cam := NewCamera("cam").SetTarget(target).SetTween(0.5).SetViewport(Size{160, 100})

	goalX := 300 + 8 - 80.0
	goalY := 200 + 8 - 50.0
	prevDX, prevDY := math.Inf(1), math.Inf(1)
	const maxTicks = 200
	converged := false
	for i := 0; i < maxTicks; i++ {
		cam.Update(0.5)
		dx, dy := goalX-cam.Position.X, goalY-cam.Position.Y
		// ceil may land one unit past a fractional goal, never more.
		if dx < -1 || dy < -1 {
			t.Fatalf("tick %d: overshoot, position %v goal (%v,%v)", i, cam.Position, goalX, goalY)
		}
		if math.Abs(dx) > prevDX || math.Abs(dy) > prevDY {
			t.Fatalf("tick %d: distance grew from (%v,%v) to (%v,%v)", i, prevDX, prevDY, dx, dy)
		}
		prevDX, prevDY = math.Abs(dx), math.Abs(dy)
		if prevDX <= 1 && prevDY <= 1 {
			converged = true
			break
		}
	}
	if !converged {
		t.Errorf("did not converge in %d ticks: %v", maxTicks, cam.Position)
	}
}

func TestCameraNoTarget(t *testing.T) {
	cam := NewCamera("cam")
	cam.Position = Vec2{5, 5}
	cam.Update(16)
	if cam.Position != (Vec2{5, 5}) {
		t.Errorf("Position = %v, want unchanged", cam.Position)
	}
}

func TestCameraPrePostDrawRoundtrip(t *testing.T) {
	cam := NewCamera("cam").SetRotation(0.3)
	cam.Position = Vec2{40, -12}

	var g ebiten.GeoM
	cam.PreDraw(&g)
	x, y := g.Apply(40, -12)
	if !approxEqual(x, 0, 1e-9) || !approxEqual(y, 0, 1e-9) {
		t.Errorf("camera position maps to (%v,%v), want origin", x, y)
	}
	cam.PostDraw(&g)
	for _, p := range [][2]float64{{0, 0}, {13, 7}, {-5, 100}} {
		x, y := g.Apply(p[0], p[1])
		if !approxEqual(x, p[0], 1e-9) || !approxEqual(y, p[1], 1e-9) {
			t.Errorf("after PostDraw (%v,%v) -> (%v,%v), want identity", p[0], p[1], x, y)
		}
	}
}

func TestCameraPreDrawMatchesWorldToScreen(t *testing.T) {
	cam := NewCamera("cam").SetRotation(math.Pi / 6)
	cam.Position = Vec2{10, 20}
	ctx := &DrawContext{}
	cam.PreDraw(ctx)

	gx, gy := ctx.Apply(55, 33)
	wx, wy := cam.WorldToScreen(55, 33)
	if !approxEqual(gx, wx, 1e-9) || !approxEqual(gy, wy, 1e-9) {
		t.Errorf("PreDraw (%v,%v) != WorldToScreen (%v,%v)", gx, gy, wx, wy)
	}
	bx, by := cam.ScreenToWorld(wx, wy)
	if !approxEqual(bx, 55, 1e-9) || !approxEqual(by, 33, 1e-9) {
		t.Errorf("ScreenToWorld roundtrip = (%v,%v), want (55,33)", bx, by)
	}
}

func TestCameraIsInFOV(t *testing.T) {
	cam := NewCamera("cam").SetViewport(Size{100, 100})
	cam.Position = Vec2{50, 50}
	parent := NewEntity("parent", 60, 60)
	child := NewEntity("child", 10, 10).SetParentRelative(true)
	parent.AddChild(child)

	tests := []struct {
		name string
		e    *Entity
		want bool
	}{
		{"inside", NewEntity("in", 100, 100), true},
		{"outside", NewEntity("out", 10, 10), false},
		{"edge", NewEntity("edge", 150, 150), true},
		{"past edge", NewEntity("past", 151, 100), false},
		{"fixed outside", NewEntity("hud", 0, 0).SetFixedToCamera(true), true},
		{"static outside", NewEntity("bg", 0, 0).SetPhysicType(Static), true},
		{"relative child", child, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.IsInFOV(tt.e); got != tt.want {
				t.Errorf("IsInFOV = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraBoundsClamp(t *testing.T) {
	target := NewEntity("t", 0, 0)
	cam := NewCamera("cam").SetTarget(target).SetViewport(Size{100, 100}).
		SetBounds(Rect{Width: 500, Height: 500})
	cam.Position = Vec2{-50, 900}
	cam.Tween = 0 // no follow movement
	cam.Update(0.5)
	if cam.Position != (Vec2{0, 400}) {
		t.Errorf("Position = %v, want {0 400}", cam.Position)
	}

	cam.SetBounds(Rect{X: 0, Y: 0, Width: 60, Height: 500})
	cam.Update(0.5)
	if cam.Position.X != -20 {
		t.Errorf("X = %v, want -20 (centered on narrow bounds)", cam.Position.X)
	}

	cam.ClearBounds()
	cam.Position = Vec2{-50, -50}
	cam.Update(0.5)
	if cam.Position != (Vec2{-50, -50}) {
		t.Errorf("Position = %v, want unclamped {-50 -50}", cam.Position)
	}
}

func TestCameraScrollTo(t *testing.T) {
	target := NewEntity("t", 1000, 1000)
	cam := NewCamera("cam").SetTarget(target)
	cam.ScrollTo(100, 50, 1.0, ease.Linear)
	if !cam.IsScrolling() {
		t.Fatal("IsScrolling = false after ScrollTo")
	}
	cam.Update(500)
	if !approxEqual(cam.Position.X, 50, 0.5) || !approxEqual(cam.Position.Y, 25, 0.5) {
		t.Errorf("halfway Position = %v, want ~{50 25}", cam.Position)
	}
	cam.Update(500)
	if cam.IsScrolling() {
		t.Error("scroll should be done")
	}
	if !approxEqual(cam.Position.X, 100, 0.5) || !approxEqual(cam.Position.Y, 50, 0.5) {
		t.Errorf("Position = %v, want ~{100 50}", cam.Position)
	}
	// Following resumes.
	cam.Update(0.5)
	if cam.Position.X <= 100 {
		t.Errorf("camera did not resume following: %v", cam.Position)
	}
}
