package server

import (
	"testing"

	"github.com/lab1702/arena-ctf/game"
)

func combatTestBot(accuracy AccuracyTier) (*Bot, *stubWorld, *stubPawn, *stubControls) {
	b, w, pawn, ctrl, _ := newTestBot(BotConfig{
		Team: game.TeamRed, Role: RoleStayAtHome, Accuracy: accuracy, Shoots: true,
	})
	pawn.pos = game.Vec3{}
	w.now = 100
	return b, w, pawn, ctrl
}

func TestAimAtTargetFiresWhenLinedUp(t *testing.T) {
	b, w, pawn, ctrl := combatTestBot(AccuracyPerfect)
	enemy := addEnemy(b, w, 1, game.Vec3{X: 5000})
	b.State.TargetID = enemy.id
	// Looking straight down the X axis already, exactly at the target.
	pawn.look = game.Rotator{}

	if !b.AimAtTarget(true) {
		t.Fatal("aimable target reported as not aimable")
	}
	if !ctrl.trigger {
		t.Error("trigger not pulled with a lined-up shot")
	}
	if b.lastShotTime != w.now {
		t.Errorf("lastShotTime = %v, want %v", b.lastShotTime, w.now)
	}
	if b.State.PendingWeaponFire {
		t.Error("pending fire should clear once the shot is taken")
	}
}

func TestAimAtTargetHoldsFireUntilLinedUp(t *testing.T) {
	b, w, pawn, ctrl := combatTestBot(AccuracyPerfect)
	enemy := addEnemy(b, w, 1, game.Vec3{X: 5000})
	b.State.TargetID = enemy.id
	// Facing 90 degrees away: one lerp step cannot close the angle.
	pawn.look = game.Rotator{Yaw: 90}

	if !b.AimAtTarget(true) {
		t.Fatal("aimable target reported as not aimable")
	}
	if ctrl.trigger {
		t.Error("trigger pulled while still far off the aim point")
	}
	if !b.State.PendingWeaponFire {
		t.Error("pending fire should be set while converging on the shot")
	}
	// The look rotation moved a fraction of the way toward the target.
	if ctrl.look.Yaw >= 90 || ctrl.look.Yaw < 70 {
		t.Errorf("look yaw = %v, want a partial step down from 90", ctrl.look.Yaw)
	}
}

func TestAimAtTargetFireGates(t *testing.T) {
	tests := []struct {
		name      string
		accuracy  AccuracyTier
		sinceShot float64
		wantFire  bool
	}{
		{"horrible gated", AccuracyHorrible, 5, false},
		{"horrible past gate", AccuracyHorrible, 7, true},
		{"decent gated", AccuracyDecent, 3, false},
		{"good gated", AccuracyGood, 1, false},
		{"good past gate", AccuracyGood, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, w, pawn, ctrl := combatTestBot(tt.accuracy)
			enemy := addEnemy(b, w, 1, game.Vec3{X: 200})
			b.State.TargetID = enemy.id
			b.lastShotTime = w.now - tt.sinceShot
			// Pin the skew at zero for this cycle so only the fire gate
			// decides the outcome.
			b.lastAimpointChange = w.now
			pawn.look = game.Rotator{}

			b.AimAtTarget(true)

			if ctrl.trigger != tt.wantFire {
				t.Errorf("trigger = %v, want %v", ctrl.trigger, tt.wantFire)
			}
		})
	}
}

func TestAimAtTargetHeatGates(t *testing.T) {
	b, w, pawn, ctrl := combatTestBot(AccuracyHorrible)
	enemy := addEnemy(b, w, 1, game.Vec3{X: 2000})
	b.State.TargetID = enemy.id
	pawn.weaponSlot = WeaponSlotMinigun

	// Overheated for this tier: no fire even though the minigun would
	// otherwise spray unconditionally.
	pawn.heat = HeatGateHorrible + 0.05
	b.AimAtTarget(true)
	if ctrl.trigger {
		t.Error("minigun fired past the tier heat gate")
	}

	// Cool again: rapid fire does not wait for a tight angle.
	pawn.heat = 0
	b.lastAimpointChange = w.now
	b.pitchSkew = 0
	b.yawSkew = 0
	pawn.look = game.Rotator{Yaw: 45}
	b.AimAtTarget(true)
	if !ctrl.trigger {
		t.Error("cool minigun should fire regardless of remaining aim error")
	}
}

func TestAimAtTargetBlockedByGeometry(t *testing.T) {
	b, w, _, ctrl := combatTestBot(AccuracyPerfect)
	enemy := addEnemy(b, w, 1, game.Vec3{X: 5000})
	b.State.TargetID = enemy.id
	// A wall 200 units out, far nearer than the aim point.
	w.raycastHit = true
	w.raycastAt = game.Vec3{X: 200}

	if b.AimAtTarget(true) {
		t.Error("blocked shot reported as aimable")
	}
	if ctrl.trigger {
		t.Error("trigger pulled through a wall")
	}
}

func TestAimAtTargetNoTarget(t *testing.T) {
	b, _, _, ctrl := combatTestBot(AccuracyPerfect)

	if b.AimAtTarget(true) {
		t.Error("no target reported as aimable")
	}
	if ctrl.trigger {
		t.Error("trigger pulled with no target")
	}
}

func TestPacifistNeverFires(t *testing.T) {
	b, w, pawn, ctrl := combatTestBot(AccuracyPerfect)
	b.Config.Shoots = false
	enemy := addEnemy(b, w, 1, game.Vec3{X: 5000})
	b.State.TargetID = enemy.id
	pawn.look = game.Rotator{}

	b.AimAtTarget(true)

	if ctrl.trigger {
		t.Error("pacifist bot pulled the trigger")
	}
}

func TestLookForEnemiesSweeps(t *testing.T) {
	b, w, pawn, ctrl := combatTestBot(AccuracyDecent)
	pawn.look = game.Rotator{Yaw: 10}

	b.LookForEnemies()

	if b.lastLookTime != w.now {
		t.Errorf("lastLookTime = %v, want %v", b.lastLookTime, w.now)
	}
	if ctrl.trigger {
		t.Error("looking around should release the trigger")
	}
	if ctrl.look.Yaw < 10 || ctrl.look.Yaw > 15 {
		t.Errorf("look yaw = %v, want swept within [10, 15]", ctrl.look.Yaw)
	}
}
