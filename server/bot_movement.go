package server

import (
	"math"

	"github.com/lab1702/arena-ctf/game"
)

// Movement actuation: steering toward the destination with ground-skim
// and vertical-thrust management, plus the ambient wander that keeps bots
// from standing perfectly still.

// wanderMove is the ambient movement direction chosen by MoveAround.
type wanderMove int

const (
	wanderStill wanderMove = iota
	wanderForward
	wanderBackward
	wanderLeft
	wanderRight
)

// MoveToTarget steers rotation and locomotion toward the desired move
// location.
func (b *Bot) MoveToTarget() {
	if b.pawn == nil || !b.pawn.Valid() {
		return
	}
	now := b.world.Now()
	pos := b.pawn.Position()
	heightAboveGround := b.heightAboveGround(pos)
	distToMove := game.Distance(pos, b.State.DesiredMoveLocation)

	toTarget := b.State.DesiredMoveLocation.Sub(pos)
	lookRot := game.RotatorFromVector(toTarget.Normalize())

	// If we just shot at something we want to keep looking at what we
	// shot at, and drift back to the move direction over time. Snapping
	// instantly reads as really jerky.
	timeSinceLastShot := now - b.lastShotTime
	skewFactor := (LookBackSkewDuration - math.Min(timeSinceLastShot, LookBackSkewDuration)) / LookBackSkewDuration
	lookRot.Pitch += b.pitchSkew * skewFactor
	lookRot.Yaw += b.yawSkew * skewFactor

	b.ctrl.SetLookRotation(lookRot)
	b.ctrl.SetBodyYaw(lookRot.Yaw)

	b.ctrl.MoveForward(1.0)

	// Skim only when it buys us ground toward the destination: near the
	// terrain, still far away, and momentum actually carrying us closer.
	// Sliding backwards from the target is the one case skiing hurts.
	distPlusVelocity := game.Distance(pos.Add(b.pawn.Velocity()), b.State.DesiredMoveLocation)
	if heightAboveGround < SkiMinHeight && distToMove > SkiMinDistance && distPlusVelocity < distToMove {
		b.ctrl.SetSkiing(true)
	} else {
		b.ctrl.SetSkiing(false)
	}

	// Vertical thrust toward the destination's height.
	heightAboveTarget := b.heightAbove(b.State.DesiredMoveLocation)
	wasJetting := b.jetting
	timeSinceJetChange := now - b.lastJetChange
	energy := b.pawn.Energy()

	belowTarget := heightAboveTarget < 0
	// Give jet energy some time to recharge when low before burning
	// again.
	energyRecharged := wasJetting || timeSinceJetChange > JetEnergyRechargeTime || energy > JetEnergyFloor
	// Stop thrusting early so momentum doesn't carry us way past the
	// target height.
	velocityZ := b.pawn.Velocity().Z
	noOvershoot := !(velocityZ/2+heightAboveTarget > JetOvershootFudge && timeSinceJetChange > 1.0)

	// Bots are bad with energy for now, so blatantly cheat.
	if energy < EnergyCheatThreshold {
		b.pawn.SetEnergy(100.0)
	}
	if belowTarget && energyRecharged && noOvershoot && b.pawn.Energy() > 0.01 {
		b.jetting = true
		b.ctrl.SetJetting(true)
	} else {
		b.jetting = false
		b.ctrl.SetJetting(false)
	}
	if wasJetting != b.jetting {
		b.lastJetChange = now
	}
}

// MoveAround is the ambient wander used alongside most stationary tasks:
// small random strafes and jet pulses that make the bot look natural and
// harder to hit. StationaryDefense bots hold perfectly still instead.
func (b *Bot) MoveAround() {
	if b.pawn == nil || !b.pawn.Valid() || b.Config.Role == RoleStationaryDefense {
		return
	}
	now := b.world.Now()
	timeSinceMovementChange := now - b.lastMovementChange
	if timeSinceMovementChange > WanderRerollTime {
		if b.randRange(0, WanderRerollWindow)+timeSinceMovementChange > WanderRerollWindow {
			// When we are where we want to be and nothing is close, just
			// chill most of the time rather than pacing randomly.
			chill := b.State.CurrentTask == TaskLookingForEnemy ||
				(b.State.CurrentTask == TaskShootAtTarget &&
					b.distanceToTarget(b.currentTarget()) > WanderChillDistance &&
					b.rng.Intn(4) > 1)
			if chill {
				b.wander = wanderStill
			} else {
				switch b.rng.Intn(4) {
				case 0:
					b.wander = wanderForward
				case 1:
					b.wander = wanderBackward
				case 2:
					b.wander = wanderLeft
				case 3:
					b.wander = wanderRight
				}
			}
			b.lastMovementChange = now
		}
	}
	// Random jet pulses, when energy is healthy or the pulse is almost
	// free anyway.
	timeSinceJetChange := now - b.lastJetChange
	if timeSinceJetChange > WanderRerollTime && (b.pawn.Energy() > 40 || b.pawn.Energy() < 5) {
		if b.randRange(0, WanderRerollWindow)+timeSinceJetChange > WanderRerollWindow {
			b.jetting = !b.jetting
			b.lastJetChange = now
		}
	}

	// Now that we know what we SHOULD do, do it. Wandering never skims.
	b.ctrl.SetSkiing(false)
	b.ctrl.SetJetting(b.jetting)

	switch b.wander {
	case wanderForward:
		b.ctrl.MoveForward(1.0)
	case wanderBackward:
		b.ctrl.MoveForward(-1.0)
	case wanderLeft:
		b.ctrl.MoveRight(-1.0)
	case wanderRight:
		b.ctrl.MoveRight(1.0)
	case wanderStill:
	}
}
