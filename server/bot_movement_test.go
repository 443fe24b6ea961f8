package server

import (
	"testing"

	"github.com/lab1702/arena-ctf/game"
)

func movementTestBot() (*Bot, *stubWorld, *stubPawn, *stubControls) {
	b, w, pawn, ctrl, _ := newTestBot(BotConfig{
		Team: game.TeamRed, Role: RoleChase, Accuracy: AccuracyDecent, Shoots: true,
	})
	pawn.pos = game.Vec3{}
	w.now = 50
	return b, w, pawn, ctrl
}

func TestMoveToTargetSteersAndRuns(t *testing.T) {
	b, _, _, ctrl := movementTestBot()
	b.State.DesiredMoveLocation = game.Vec3{X: 8000, Y: 8000}

	b.MoveToTarget()

	if ctrl.forward != 1.0 {
		t.Errorf("forward = %v, want full throttle", ctrl.forward)
	}
	if ctrl.look.Yaw < 40 || ctrl.look.Yaw > 50 {
		t.Errorf("look yaw = %v, want about 45 toward the destination", ctrl.look.Yaw)
	}
	if ctrl.bodyYaw != ctrl.look.Yaw {
		t.Error("body yaw should follow look yaw")
	}
}

func TestMoveToTargetSkiCondition(t *testing.T) {
	tests := []struct {
		name    string
		height  float64
		dest    game.Vec3
		vel     game.Vec3
		wantSki bool
	}{
		{"near ground, far, closing", 50, game.Vec3{X: 8000}, game.Vec3{X: 500}, true},
		{"too high", 500, game.Vec3{X: 8000}, game.Vec3{X: 500}, false},
		{"too close", 50, game.Vec3{X: 800}, game.Vec3{X: 500}, false},
		{"sliding backwards", 50, game.Vec3{X: 8000}, game.Vec3{X: -500}, false},
		{"standing still", 50, game.Vec3{X: 8000}, game.Vec3{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, pawn, ctrl := movementTestBot()
			pawn.pos = game.Vec3{Z: tt.height}
			pawn.vel = tt.vel
			b.State.DesiredMoveLocation = tt.dest

			b.MoveToTarget()

			if ctrl.skiing != tt.wantSki {
				t.Errorf("skiing = %v, want %v", ctrl.skiing, tt.wantSki)
			}
		})
	}
}

func TestMoveToTargetJetsWhenBelow(t *testing.T) {
	b, _, _, ctrl := movementTestBot()
	b.State.DesiredMoveLocation = game.Vec3{X: 2000, Z: 3000}

	b.MoveToTarget()

	if !ctrl.jetting {
		t.Error("should jet toward a destination far above")
	}
	if !b.jetting {
		t.Error("jet state not recorded")
	}
}

func TestMoveToTargetAvoidsJetOvershoot(t *testing.T) {
	b, _, pawn, ctrl := movementTestBot()
	b.State.DesiredMoveLocation = game.Vec3{X: 2000, Z: 100}
	// Just below the target but rocketing upward; momentum alone will
	// carry us well past it.
	pawn.vel = game.Vec3{Z: 5000}
	b.lastJetChange = 40

	b.MoveToTarget()

	if ctrl.jetting {
		t.Error("jetting into a guaranteed overshoot")
	}
}

func TestMoveToTargetEnergyCheat(t *testing.T) {
	b, _, pawn, _ := movementTestBot()
	b.State.DesiredMoveLocation = game.Vec3{X: 2000, Z: 3000}
	pawn.energy = 30

	b.MoveToTarget()

	if pawn.energy != 100 {
		t.Errorf("energy = %v, want force-replenished to 100", pawn.energy)
	}
}

func TestMoveAroundStationaryDefenseHoldsStill(t *testing.T) {
	b, w, _, ctrl, _ := newTestBot(BotConfig{
		Team: game.TeamRed, Role: RoleStationaryDefense, Shoots: true,
	})
	w.now = 50
	b.lastMovementChange = 0

	b.MoveAround()

	if ctrl.forward != 0 || ctrl.right != 0 || ctrl.lookSet {
		t.Error("stationary defense bot should not move at all")
	}
}

func TestMoveAroundChillsWhileLooking(t *testing.T) {
	b, w, _, ctrl := movementTestBot()
	b.State.CurrentTask = TaskLookingForEnemy
	b.lastMovementChange = 0
	w.now = 50

	b.MoveAround()

	if b.wander != wanderStill {
		t.Errorf("wander = %v, want still while just looking around", b.wander)
	}
	if ctrl.forward != 0 || ctrl.right != 0 {
		t.Error("chilling bot should not strafe")
	}
	if ctrl.skiing {
		t.Error("wandering never skis")
	}
}

func TestMoveAroundWandersBetweenShots(t *testing.T) {
	b, w, _, ctrl := movementTestBot()
	b.State.CurrentTask = TaskChangeTarget
	b.lastMovementChange = 0
	w.now = 50

	b.MoveAround()

	if b.wander == wanderStill {
		t.Fatal("expected a wander direction to be chosen")
	}
	if ctrl.forward == 0 && ctrl.right == 0 {
		t.Error("chosen wander direction produced no movement")
	}
}
