package server

import (
	"testing"

	"github.com/lab1702/arena-ctf/game"
)

func TestRerollAimSkewPerfect(t *testing.T) {
	b, _, _, _, _ := newTestBot(BotConfig{Team: game.TeamRed, Role: RoleStayAtHome, Accuracy: AccuracyPerfect, Shoots: true})
	b.pitchSkew = 20
	b.yawSkew = -20
	b.projectileSkew = 0.7

	b.rerollAimSkew(5)

	if b.pitchSkew != 0 || b.yawSkew != 0 || b.projectileSkew != 1 {
		t.Errorf("perfect skew = (%v, %v, %v), want (0, 0, 1)",
			b.pitchSkew, b.yawSkew, b.projectileSkew)
	}
	if b.lastAimpointChange != 5 {
		t.Errorf("lastAimpointChange = %v, want 5", b.lastAimpointChange)
	}
}

func TestRerollAimSkewHorribleAlwaysOff(t *testing.T) {
	b, _, _, _, _ := newTestBot(BotConfig{Team: game.TeamRed, Role: RoleStayAtHome, Accuracy: AccuracyHorrible, Shoots: true})

	// Across many rolls the horrible tier always carries some skew and a
	// randomized projectile speed.
	for i := 0; i < 50; i++ {
		b.lastAimpointChange = -10
		b.rerollAimSkew(float64(i))
		if b.pitchSkew == 0 && b.yawSkew == 0 {
			// The rare near-zero roll is possible but both exactly zero is
			// not: every branch adds a continuous random offset.
			t.Fatalf("roll %d produced exactly zero skew", i)
		}
		if b.projectileSkew < 0.5 || b.projectileSkew >= 1.5 {
			t.Fatalf("roll %d projectile skew = %v, want [0.5, 1.5)", i, b.projectileSkew)
		}
	}
}

func TestRerollAimSkewRespectsInterval(t *testing.T) {
	b, _, _, _, _ := newTestBot(BotConfig{Team: game.TeamRed, Role: RoleStayAtHome, Accuracy: AccuracyHorrible, Shoots: true})
	b.lastAimpointChange = 10
	b.pitchSkew = 7
	b.yawSkew = -7

	b.rerollAimSkew(10.5)

	if b.pitchSkew != 7 || b.yawSkew != -7 {
		t.Error("skew rerolled inside the reroll interval")
	}
}

func TestClampAimSkew(t *testing.T) {
	b, _, _, _, _ := newTestBot(BotConfig{Team: game.TeamRed, Role: RoleStayAtHome, Shoots: true})
	b.pitchSkew = 200
	b.yawSkew = -200

	b.clampAimSkew()

	if b.pitchSkew != MaxAimSkewDeg || b.yawSkew != -MaxAimSkewDeg {
		t.Errorf("clamped skew = (%v, %v), want (+/-%v)", b.pitchSkew, b.yawSkew, MaxAimSkewDeg)
	}
}

func TestRandRange(t *testing.T) {
	b, _, _, _, _ := newTestBot(BotConfig{Team: game.TeamRed, Role: RoleStayAtHome, Shoots: true})
	for i := 0; i < 100; i++ {
		v := b.randRange(-5, 12)
		if v < -5 || v >= 12 {
			t.Fatalf("randRange value %v outside [-5, 12)", v)
		}
	}
}
