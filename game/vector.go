package game

import "math"

// Vec3 is a 3D position or velocity in world units.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit-length copy of v, or the zero vector when v is
// too short to normalize safely.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// IsNearlyZero reports whether all components are within epsilon of zero.
func (v Vec3) IsNearlyZero() bool {
	const eps = 1e-9
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Forward is the unit X-axis vector, used as the documented "no aim
// possible" sentinel by the predictive aim solver.
var Forward = Vec3{X: 1}

// Distance returns the straight-line distance between two points.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// SpeedKPH converts a velocity in world units per second to km/h.
func SpeedKPH(vel Vec3) float64 {
	return vel.Length() * 0.036
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
