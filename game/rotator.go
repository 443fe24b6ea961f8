package game

import "math"

// Rotator is a look orientation in degrees. Roll is never used by the AI,
// so it is omitted entirely.
type Rotator struct {
	Pitch float64 // degrees, positive looks up
	Yaw   float64 // degrees, 0 = +X axis, counterclockwise
}

// RotatorFromVector builds the rotator that looks along dir.
func RotatorFromVector(dir Vec3) Rotator {
	if dir.IsNearlyZero() {
		return Rotator{}
	}
	flat := math.Sqrt(dir.X*dir.X + dir.Y*dir.Y)
	return Rotator{
		Pitch: math.Atan2(dir.Z, flat) * 180 / math.Pi,
		Yaw:   math.Atan2(dir.Y, dir.X) * 180 / math.Pi,
	}
}

// Vector returns the unit direction the rotator looks along.
func (r Rotator) Vector() Vec3 {
	pitch := r.Pitch * math.Pi / 180
	yaw := r.Yaw * math.Pi / 180
	cp := math.Cos(pitch)
	return Vec3{
		X: cp * math.Cos(yaw),
		Y: cp * math.Sin(yaw),
		Z: math.Sin(pitch),
	}
}

// NormalizeAngleDeg wraps an angle in degrees to (-180, 180].
func NormalizeAngleDeg(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// LerpRotator interpolates from a toward b by t in [0,1], taking the
// shortest path around the yaw wrap.
func LerpRotator(a, b Rotator, t float64) Rotator {
	return Rotator{
		Pitch: a.Pitch + NormalizeAngleDeg(b.Pitch-a.Pitch)*t,
		Yaw:   a.Yaw + NormalizeAngleDeg(b.Yaw-a.Yaw)*t,
	}
}

// AngleBetweenDeg returns the unsigned angle in degrees between two
// direction vectors.
func AngleBetweenDeg(a, b Vec3) float64 {
	an := a.Normalize()
	bn := b.Normalize()
	if an.IsNearlyZero() || bn.IsNearlyZero() {
		return 0
	}
	dot := Clamp(an.Dot(bn), -1, 1)
	return math.Acos(dot) * 180 / math.Pi
}
