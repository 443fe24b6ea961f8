package server

import (
	"math"

	"github.com/lab1702/arena-ctf/game"
)

// Predictive intercept solver. Treats the intercept as a law-of-cosines
// triangle between the shooter-target distance, the distance the target
// travels until impact, and the distance the projectile travels, over an
// unknown intercept time t. Solving for t gives the lead.

const smallTime = 1e-4

// WeaponAimVelocity returns the velocity vector a projectile should be
// fired with to hit the target, accounting for the fraction of the
// shooter's own velocity the projectile inherits. Returns game.Forward as
// the documented "no aim possible" sentinel when the target is nil.
func (b *Bot) WeaponAimVelocity(t Combatant, projectileSpeed, inheritance float64) game.Vec3 {
	if t == nil {
		return game.Forward
	}
	// The inherited velocity shifts the projectile's frame; fold it into
	// the target's velocity instead.
	inherited := b.pawn.Velocity().Scale(inheritance)
	adjustedVel := t.Velocity().Sub(inherited)
	return b.PredictiveAim(b.pawn.Position(), projectileSpeed, t.Position(), adjustedVel, 0)
}

// PredictiveAim computes the firing velocity that leads a target moving
// at constant velocity. The gravity parameter is accepted for future drop
// compensation but not currently applied.
//
// When no real solution exists (target outrunning the projectile, or a
// grazing geometry), the returned vector falls back to a straight-line
// aim scaled to projectileSpeed. The placeholder time used in that case
// is random in [1,5] purely to avoid a division by zero; only the
// direction is meaningful.
func (b *Bot) PredictiveAim(muzzle game.Vec3, projectileSpeed float64, targetPos game.Vec3, targetVel game.Vec3, gravity float64) game.Vec3 {
	_ = gravity

	// Targets hugging terrain get their aim point snapped to the ground
	// so the predicted shot doesn't over- or undershoot into it.
	groundZ := b.world.GroundHeight(targetPos)
	if targetPos.Z-groundZ < GroundSnapHeight {
		targetPos.Z = groundZ
	}

	projectileSpeedSq := projectileSpeed * projectileSpeed
	targetSpeed := targetVel.Length()
	targetSpeedSq := targetSpeed * targetSpeed
	targetToMuzzle := muzzle.Sub(targetPos)
	dist := targetToMuzzle.Length()
	distSq := dist * dist

	// Law of Cosines: A*A + B*B - 2*A*B*cos(theta) = C*C
	// A is the muzzle-target distance, B the target travel distance
	// (targetSpeed*t), C the projectile travel distance
	// (projectileSpeed*t).
	cosTheta := 1.0
	if targetSpeedSq > 0 {
		cosTheta = targetToMuzzle.Normalize().Dot(targetVel.Normalize())
	}

	validSolution := true
	var t float64
	if math.Abs(projectileSpeedSq-targetSpeedSq) < 1e-6 {
		// Equal speeds make the quadratic's leading term vanish; the
		// reduced linear form is B = A/(2*cos(theta)), which only has a
		// solution when the target is closing (cos(theta) > 0).
		if cosTheta > 0 {
			t = 0.5 * dist / (targetSpeed * cosTheta)
		} else {
			validSolution = false
			t = b.wildGuessTime()
		}
	} else {
		a := projectileSpeedSq - targetSpeedSq
		bq := 2.0 * dist * targetSpeed * cosTheta
		c := -distSq
		discriminant := bq*bq - 4.0*a*c

		if discriminant < 0 {
			// No real root: the target can't be intercepted.
			validSolution = false
			t = b.wildGuessTime()
		} else {
			root := math.Sqrt(discriminant)
			t0 := 0.5 * (-bq + root) / a
			t1 := 0.5 * (-bq - root) / a
			// Aim at the earliest hit.
			t = math.Min(t0, t1)
			if t < smallTime {
				t = math.Max(t0, t1)
			}
			if t < smallTime {
				// Time can't flow backwards when it comes to aiming.
				validSolution = false
				t = b.wildGuessTime()
			}
		}
	}

	// Vb = Vt + (Pt - Pm)/t
	aimVelocity := targetVel.Add(targetToMuzzle.Scale(-1.0 / t))
	if !validSolution {
		// The guessed t will not produce an impact, so the magnitude is
		// meaningless; keep only the direction, at the real projectile
		// speed.
		aimVelocity = aimVelocity.Normalize().Scale(projectileSpeed)
	}

	return aimVelocity
}

// wildGuessTime returns an arbitrary positive placeholder intercept time
// for the no-solution fallback.
func (b *Bot) wildGuessTime() float64 {
	return 1 + b.rng.Float64()*4
}
