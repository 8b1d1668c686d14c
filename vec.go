package squall

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector used for positions, velocities and offsets.
// It is a value type: every operation returns a new Vec2.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) mgl() mgl64.Vec2 { return mgl64.Vec2{v.X, v.Y} }

func fromMgl(m mgl64.Vec2) Vec2 { return Vec2{m[0], m[1]} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return fromMgl(v.mgl().Add(o.mgl())) }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return fromMgl(v.mgl().Sub(o.mgl())) }

// Mul returns v scaled by f.
func (v Vec2) Mul(f float64) Vec2 { return fromMgl(v.mgl().Mul(f)) }

// Div returns v divided by f. Division by zero yields IEEE infinities.
func (v Vec2) Div(f float64) Vec2 { return Vec2{v.X / f, v.Y / f} }

// Negate returns -v.
func (v Vec2) Negate() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.mgl().Dot(o.mgl()) }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return v.mgl().Len() }

// Distance returns the length of v - o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns v scaled to unit length. The result is undefined (NaN
// components) for a zero vector; callers must check Len first.
func (v Vec2) Normalize() Vec2 { return fromMgl(v.mgl().Normalize()) }

// Angle returns the unsigned angle in radians between v and o, in [0, π].
// Either vector being zero yields NaN.
func (v Vec2) Angle(o Vec2) float64 {
	cos := v.Dot(o) / (v.Len() * o.Len())
	return math.Acos(mgl64.Clamp(cos, -1, 1))
}

// Clamp limits each component to [-limit, limit], keeping its sign.
func (v Vec2) Clamp(limit float64) Vec2 {
	return v.ClampXY(limit, limit)
}

// ClampXY limits X to [-maxX, maxX] and Y to [-maxY, maxY].
func (v Vec2) ClampXY(maxX, maxY float64) Vec2 {
	if math.Abs(v.X) > maxX {
		v.X = math.Copysign(maxX, v.X)
	}
	if math.Abs(v.Y) > maxY {
		v.Y = math.Copysign(maxY, v.Y)
	}
	return v
}

// SnapZero zeroes every component whose magnitude is below threshold.
func (v Vec2) SnapZero(threshold float64) Vec2 {
	if math.Abs(v.X) < threshold {
		v.X = 0
	}
	if math.Abs(v.Y) < threshold {
		v.Y = 0
	}
	return v
}

// Sum returns the sum of all vectors, or the zero vector for none.
func Sum(vs ...Vec2) Vec2 {
	var s Vec2
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}

func (v Vec2) String() string {
	return fmt.Sprintf("{x:%04.2f,y:%04.2f}", v.X, v.Y)
}
