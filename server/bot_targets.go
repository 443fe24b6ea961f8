package server

import (
	"sort"

	"github.com/lab1702/arena-ctf/game"
)

// Target evaluation: scoring remembered enemies by how badly we want to
// shoot them, plus the rolling recently-seen memory and its event hooks.

// targetFocusScore rates how good a candidate the target is to shoot at.
// Disqualified targets (gone, dead) always score exactly 0.
func (b *Bot) targetFocusScore(t Combatant) float64 {
	if t == nil || !t.Valid() || t.Health() <= 0 || t.TimeOfDeath() != 0 {
		return 0
	}
	score := 0.0
	// We like to keep shooting what we are already shooting.
	if t.ID() == b.State.TargetID {
		score += FocusStickyBonus
	}
	// Low health targets, 0-20.
	score += (200.0 - t.Health()) / 10
	// Slow targets, 0-40. Goes negative for anything over 200 kph.
	score += (200.0 - game.SpeedKPH(t.Velocity())) / 5
	// Grounded targets are easier to hit.
	if b.heightAboveGround(t.Position()) < FocusGroundedHeight {
		score += FocusGroundedBonus
	}
	// Close targets. A really far target is not desirable at all, even
	// when everything else about it is good.
	score += game.Clamp((FocusDistancePivot-b.distanceToTarget(t))/100.0, -100, 40)
	// We really like shooting the carrier.
	if t.CarryingFlag() {
		score += FocusCarrierBonus
	}
	return score
}

// pruneSeenTargets drops remembered targets that died, left, or have not
// been seen within the TTL.
func (b *Bot) pruneSeenTargets(now float64) {
	for id, lastSeen := range b.recentlySeen {
		t := b.world.Combatant(id)
		if t == nil || !t.Valid() || now-lastSeen >= SeenTargetTTL {
			delete(b.recentlySeen, id)
		}
	}
}

// bestFocusTarget returns the remembered target with the highest focus
// score, defaulting to the current target when nothing scores above zero.
// IDs are visited in ascending order so selection is deterministic.
func (b *Bot) bestFocusTarget() (id int, score float64) {
	best := b.State.TargetID
	highest := 0.0

	ids := make([]int, 0, len(b.recentlySeen))
	for tid := range b.recentlySeen {
		ids = append(ids, tid)
	}
	sort.Ints(ids)

	for _, tid := range ids {
		s := b.targetFocusScore(b.world.Combatant(tid))
		if s > highest {
			highest = s
			best = tid
		}
	}
	return best, highest
}

// OnPawnSeen is the inbound sighting hook. Enemies are remembered with
// the time they were last seen.
func (b *Bot) OnPawnSeen(seen Combatant) {
	if seen == nil || !seen.Valid() {
		return
	}
	if seen.Team() != b.Config.Team && seen.TimeOfDeath() == 0 {
		b.recentlySeen[seen.ID()] = b.world.Now()
	}
}

// OnPossibleTargetDied removes a dead combatant from both the current
// target slot and the seen memory.
func (b *Bot) OnPossibleTargetDied(id int) {
	if b.State.TargetID == id {
		b.State.TargetID = NoTarget
	}
	delete(b.recentlySeen, id)
}

// OnDied resets the per-life AI state.
func (b *Bot) OnDied() {
	b.jetting = false
	b.State.RouteState = RouteNoneSelected
	b.State.TargetID = NoTarget
	b.dead = true
	b.recentlySeen = make(map[int]float64)
}

// OnSpawn re-arms the bot after a respawn.
func (b *Bot) OnSpawn() {
	b.dead = false
	b.lastSpawnTime = b.world.Now()
	b.lastMovementChange = b.world.Now()
	b.State.RouteStartLocation = game.Vec3{}
}
