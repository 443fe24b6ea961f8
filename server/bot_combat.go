package server

import (
	"math"

	"github.com/lab1702/arena-ctf/game"
)

// Combat actuation: the aim-and-fire state machine plus the per-frame
// handlers for the shooting-related tasks.

// ShootAtTarget picks the best weapon and aims with firing enabled.
func (b *Bot) ShootAtTarget() {
	b.SelectBestWeapon()
	b.AimAtTarget(true)
}

// WaitForBetterShot keeps tracking the target without firing.
func (b *Bot) WaitForBetterShot() {
	b.AimAtTarget(false)
	b.SelectBestWeapon()
	b.ctrl.SetTrigger(TriggerPrimary, false)
}

// ChangeTarget swings aim onto the newly chosen target without firing.
func (b *Bot) ChangeTarget() {
	b.AimAtTarget(false)
	b.ctrl.SetTrigger(TriggerPrimary, false)
}

// LookForEnemies sweeps the look direction by a small random yaw step
// each frame.
func (b *Bot) LookForEnemies() {
	b.lastLookTime = b.world.Now()
	b.ctrl.SetTrigger(TriggerPrimary, false)

	rot := b.pawn.LookRotation()
	rot.Yaw += b.rng.Float64() * 5
	b.ctrl.SetLookRotation(rot)
	b.ctrl.SetBodyYaw(rot.Yaw)
}

// weaponParams returns the projectile parameters for a weapon slot.
func weaponParams(slot int) (projectileSpeed, inheritance float64, rapidFire bool) {
	switch slot {
	case WeaponSlotMinigun:
		return MinigunProjectileSpeed, MinigunInheritance, true
	default:
		return LauncherProjectileSpeed, LauncherInheritance, false
	}
}

// AimAtTarget looks at the current target and may fire if asked to.
// Returns whether the target is aimable and unobstructed.
func (b *Bot) AimAtTarget(fireWeapon bool) bool {
	t := b.currentTarget()
	if t == nil || b.pawn == nil || t.Health() == 0 {
		if b.pawn != nil {
			b.ctrl.SetTrigger(TriggerPrimary, false)
		}
		return false
	}
	now := b.world.Now()

	projectileSpeed, inheritance, rapidFire := weaponParams(b.pawn.WeaponSlot())

	shouldFire := fireWeapon && b.Config.Shoots

	// Rate-limit firing per accuracy tier so low-difficulty bots don't
	// get overpowering. The launcher gates on time since last shot, the
	// minigun on weapon heat.
	timeSinceLastShot := now - b.lastShotTime
	if !rapidFire {
		switch b.Config.Accuracy {
		case AccuracyHorrible:
			if timeSinceLastShot < FireGateHorrible {
				shouldFire = false
			}
		case AccuracyDecent:
			if timeSinceLastShot < FireGateDecent {
				shouldFire = false
			}
		case AccuracyGood:
			if timeSinceLastShot < FireGateGood {
				shouldFire = false
			}
		}
	} else {
		switch b.Config.Accuracy {
		case AccuracyHorrible:
			if b.pawn.WeaponHeat() > HeatGateHorrible {
				shouldFire = false
			}
		case AccuracyDecent:
			if b.pawn.WeaponHeat() > HeatGateDecent {
				shouldFire = false
			}
		case AccuracyGood:
			if b.pawn.WeaponHeat() > HeatGateGood {
				shouldFire = false
			}
		}
	}
	if !b.pawn.WeaponReady() {
		shouldFire = false
	}

	// Refresh the deliberate mis-aim, at most once a second.
	b.rerollAimSkew(now)
	b.clampAimSkew()

	projectileSkew := 1.0
	if shouldFire {
		projectileSkew = b.projectileSkew
	}
	aimVelocity := b.WeaponAimVelocity(t, projectileSpeed*projectileSkew, inheritance*projectileSkew)
	if aimVelocity == game.Forward {
		return false
	}
	aimRot := game.RotatorFromVector(aimVelocity)

	if !shouldFire {
		// Look-only tracking still carries the fading post-shot skew so
		// the bot doesn't snap cleanly between aim points.
		skewFactor := (LookBackSkewDuration - math.Min(timeSinceLastShot, LookBackSkewDuration)) / LookBackSkewDuration
		trackRot := aimRot
		trackRot.Pitch += b.pitchSkew * skewFactor
		trackRot.Yaw += b.yawSkew * skewFactor
		b.ctrl.SetLookRotation(trackRot)
		b.ctrl.SetBodyYaw(trackRot.Yaw)
	}

	// Alter the aim point so we miss by however bad our aim is.
	aimRot.Pitch += b.pitchSkew
	aimRot.Yaw += b.yawSkew

	// Check whether geometry blocks the shot: a traced hit meaningfully
	// nearer than the aim point means no line of sight.
	pos := b.pawn.Position()
	aimPoint := pos.Add(aimVelocity)
	distanceToAim := game.Distance(pos, aimPoint)
	if hit, at := b.world.Raycast(pos, aimPoint); hit {
		if game.Distance(pos, at) < distanceToAim-LOSBlockTolerance {
			b.ctrl.SetTrigger(TriggerPrimary, false)
			return false
		}
	}

	if shouldFire {
		// Don't snap to the target; move smoothly toward it and only
		// pull the trigger once close enough to the desired aim point.
		current := b.pawn.LookRotation()
		final := game.LerpRotator(current, aimRot, AimLerpFactor)
		aimErrorDeg := game.AngleBetweenDeg(current.Vector(), final.Vector())

		b.ctrl.SetLookRotation(final)
		b.ctrl.SetBodyYaw(final.Yaw)

		// Now that we have decided to shoot, follow through with it.
		b.State.PendingWeaponFire = true

		// The launcher waits for a tight angle; the minigun just starts
		// spewing.
		if aimErrorDeg < TriggerAngleDeg || rapidFire {
			b.ctrl.SetTrigger(TriggerPrimary, true)
			b.lastShotTime = now
			b.State.PendingWeaponFire = false
		}
	}

	return true
}
