package server

import (
	"math"

	"github.com/lab1702/arena-ctf/game"
)

// Weapon selection: scores the two weapon choices from engagement
// geometry and switches if advantageous. The launcher starts ahead and
// wins all ties; the minigun has to earn its slot.

// SelectBestWeapon chooses between the launcher and the minigun for the
// current target. Skipped entirely within the anti-flicker cooldown.
func (b *Bot) SelectBestWeapon() {
	t := b.currentTarget()
	now := b.world.Now()
	if t == nil || b.pawn == nil || t.TimeOfDeath() != 0 || now-b.lastWeaponChange < WeaponSwitchCooldown {
		return
	}

	launcherWeight := 1.0
	minigunWeight := 0.0

	// Finish off low targets with the minigun.
	if t.Health() < LowHealthThreshold {
		minigunWeight += 30
		launcherWeight += 5
	}
	// Generally ground-pound with the launcher, hose flying targets
	// with the minigun.
	if b.heightAboveGround(t.Position()) < GroundPoundHeight {
		launcherWeight += 30
	} else {
		minigunWeight += 10
	}
	// The minigun tracks fast targets better.
	if game.SpeedKPH(t.Velocity()) > FastTargetKPH {
		minigunWeight += 15
	}
	// And it reaches much further.
	targetDistance := b.distanceToTarget(t)
	if targetDistance > LongRangeDistance {
		minigunWeight += 20
	} else if targetDistance < CloseRangeDistance {
		launcherWeight += 20
	}
	// A target moving directly toward or away from us is an easy
	// launcher shot.
	distancePlusVelocity := game.Distance(b.pawn.Position(), t.Position().Add(t.Velocity()))
	if math.Abs(distancePlusVelocity-targetDistance) > HeadOnVelocityRatio*t.Velocity().Length() {
		launcherWeight += 15
	}
	// ...but if the config says to not use a weapon, don't.
	if b.Config.NoMinigun {
		minigunWeight = WeaponDisabledWeight
	}
	if b.Config.NoLauncher {
		launcherWeight = WeaponDisabledWeight
	}

	// Discourage bad bots from leaning on the minigun for long.
	if b.pawn.WeaponSlot() == WeaponSlotMinigun {
		timeSinceWeaponChange := now - b.lastWeaponChange
		if b.Config.Accuracy == AccuracyHorrible && timeSinceWeaponChange > 2.0 {
			minigunWeight -= 50
		} else if b.Config.Accuracy == AccuracyDecent && timeSinceWeaponChange > 3.0 {
			minigunWeight -= 20
		}
	}

	if launcherWeight > minigunWeight {
		if b.pawn.WeaponSlot() == WeaponSlotMinigun {
			b.lastWeaponChange = now
		}
		b.ctrl.SwitchWeapon(WeaponSlotLauncher)
	} else {
		if b.pawn.WeaponSlot() == WeaponSlotLauncher {
			b.lastWeaponChange = now
		}
		b.ctrl.SwitchWeapon(WeaponSlotMinigun)
	}
}
