package server

import "github.com/lab1702/arena-ctf/game"

// Task selection: runs at TaskInterval, much slower than the frame loop.
// Every candidate behavior gets a numeric weight from the bot's role and
// the live game state, and the highest-weighted one wins. The per-frame
// loop then executes the committed task until the next cycle.

// DetermineCurrentTask re-evaluates what the bot should be doing and
// commits to a task and destination.
func (b *Bot) DetermineCurrentTask() {
	if b.pawn == nil || !b.pawn.Valid() || b.dead {
		return
	}
	if !b.initialized {
		b.Init()
		return
	}
	now := b.world.Now()
	weights := make(TaskWeights)
	lastTask := b.State.CurrentTask
	// Default to looking around if we have nothing better to do.
	b.State.CurrentTask = TaskLookingForEnemy
	timeSinceTaskChange := now - b.taskStartTime

	// A pure route runner ignores everything else.
	if b.Config.Role == RoleRouteRunner {
		b.State.CurrentTask = TaskRouteRunner
		b.recentlySeen = make(map[int]float64)
		return
	}

	// If we decided to shoot but haven't fired yet, keep looking toward
	// the shot. Never for more than a second.
	if b.State.PendingWeaponFire && timeSinceTaskChange < PendingFireHoldTime {
		b.State.CurrentTask = TaskShootAtTarget
		return
	}

	// Offense bots need a route before destination resolution can point
	// at its start.
	if b.Config.Role == RoleOffense && b.State.RouteState == RouteNoneSelected {
		b.DetermineRouteToRun()
	}

	// Figure out where we should move to: a target player, one of the
	// flags, our route start.
	b.DetermineMoveLocation()

	// Handle our target being dead so we can reset it.
	if t := b.currentTarget(); t != nil && (!t.Valid() || t.Health() <= 0) {
		b.State.TargetID = NoTarget
	}

	timeSinceLastLook := now - b.lastLookTime
	timeSinceMoveTargetChange := now - b.lastMoveTargetChange
	distToMove := game.Distance(b.pawn.Position(), b.State.DesiredMoveLocation)

	if b.Config.Role == RoleOffense {
		if done := b.weighOffenseRoute(weights, now, distToMove, timeSinceMoveTargetChange); done {
			return
		}
	}
	if b.Config.Role == RoleChase {
		if done := b.weighChase(weights, distToMove); done {
			return
		}
	}
	if b.Config.Role == RoleLeadOff {
		b.weighLeadOff(weights, distToMove)
	}
	if b.Config.Role == RoleStayAtHome || b.Config.Role == RoleStationaryDefense {
		b.weighStayAtHome(weights, distToMove)
	}

	b.pruneSeenTargets(now)
	if len(b.recentlySeen) == 0 && b.currentTarget() == nil {
		// No good target anywhere. Desire to look for one grows over
		// time, but is pinned low right around a look-state change so
		// the bot doesn't flicker in and out of looking.
		lookWeight := timeSinceLastLook * LookUrgencyRate
		if (lastTask != TaskLookingForEnemy && timeSinceTaskChange <= LookFlickerWindow) ||
			(lastTask == TaskLookingForEnemy && timeSinceTaskChange > LookFlickerWindow) {
			lookWeight = LookFlickerWeight
		}
		weights[TaskLookingForEnemy] = lookWeight
	} else if len(b.recentlySeen) > 0 {
		// At least one known target: shoot the best one if it is still
		// our target and visible, otherwise switch to the better one.
		best, score := b.bestFocusTarget()
		if best == b.State.TargetID {
			if canSee := b.AimAtTarget(false); canSee {
				weights[TaskShootAtTarget] = score
			}
		} else {
			weights[TaskChangeTarget] = score
			b.State.TargetID = best
		}
	} else {
		b.ctrl.SetTrigger(TriggerPrimary, false)
	}

	// If we have the flag and our flag is home, nothing else matters
	// over getting there.
	if b.State.HoldingFlag && b.Game.FriendlyFlag.AtHome {
		weights[TaskMoveToTarget] = FlagCapOverrideWeight
	}

	// Winner: strictly largest weight, visited in fixed candidate order
	// so ties resolve deterministically.
	maxWeight := 0.0
	for _, task := range taskSelectionOrder {
		if w, ok := weights[task]; ok && w > maxWeight {
			maxWeight = w
			b.State.CurrentTask = task
		}
	}

	// Anti-stall: moving to a stand we can't actually DO anything at
	// looks like spinning in place. Demote to looking for enemies.
	if b.State.CurrentTask == TaskMoveToTarget && distToMove < AntiStallDistance &&
		((b.State.MoveTargetType == MoveTargetEnemyStand && !b.Game.EnemyFlag.AtHome) ||
			(b.State.MoveTargetType == MoveTargetFriendlyStand && (!b.State.HoldingFlag || !b.Game.FriendlyFlag.AtHome))) {
		b.State.CurrentTask = TaskLookingForEnemy
	}

	if b.State.CurrentTask != lastTask {
		b.taskStartTime = now
		b.State.TaskInitialized = false
		logTaskChange(b.Config.Name, lastTask, b.State.CurrentTask, maxWeight)
	}
}

// weighOffenseRoute handles the offense role's route sub-state machine.
// Returns true when a terminal decision (respawn, route-follow start) was
// made for this cycle.
func (b *Bot) weighOffenseRoute(weights TaskWeights, now, distToMove, timeSinceMoveTargetChange float64) bool {
	switch b.State.RouteState {
	case RouteMovingToStart:
		// If we can't quite get to the route start, the host teleports
		// us the last stretch. The allowed distance grows with how long
		// we've been stuck, but is capped so we don't get absurd jumps.
		assist := timeSinceMoveTargetChange * timeSinceMoveTargetChange * TeleportAssistRate
		if b.State.MoveTargetType == MoveTargetRouteStart && distToMove < assist && distToMove < TeleportAssistCap {
			b.StartRouteFollow()
			return true
		}
		weights[TaskMoveToTarget] = MoveToRouteStartWeight

	case RouteRunning:
		// While running a route we only care about having overshot the
		// grab, or the route being effectively over.
		prior := b.routes.CurrentMarker() - 1
		if prior < 0 {
			prior = 0
		}
		grab := b.State.CurrentRoute.GrabMarker()
		if (prior > grab && !b.pawn.CarryingFlag()) || prior >= len(b.State.CurrentRoute.Markers)-2 {
			b.State.RouteState = RouteAbandoned
			b.routes.Stop()
		} else {
			weights[TaskRunningRoute] = RunningRouteWeight
		}

	case RouteFinished:
		if b.State.MoveTargetType == MoveTargetFriendlyStand && b.State.HoldingFlag {
			if b.Game.FlagState == game.FlagEnemyTakenFriendlySafe {
				// Capping is always most important.
				weights[TaskMoveToTarget] = 200
			} else {
				// Otherwise stay close to the flag.
				weights[TaskMoveToTarget] = game.Clamp((distToMove-500)/100, 15, 150)
			}
		} else {
			// Route over, no flag: start fresh.
			b.respawn()
			return true
		}

	case RouteAbandoned:
		if b.State.HoldingFlag && (distToMove > RouteAbandonCapDistance || b.Game.FriendlyFlag.AtHome) {
			weights[TaskMoveToTarget] = 200
		} else if now-b.lastSpawnTime > OffenseIdleRespawnTime && !b.State.HoldingFlag && b.Game.EnemyFlag.AtHome {
			// Abandoned the route, no flag, been alive a while: respawn
			// and run routes again.
			b.respawn()
			return true
		} else {
			// Default to at least going somewhere.
			weights[TaskMoveToTarget] = 20
		}
	}
	return false
}

// weighChase weights the chase role. Returns true on a respawn decision.
func (b *Bot) weighChase(weights TaskWeights, distToMove float64) bool {
	if b.State.MoveTargetType == MoveTargetFriendlyFlag && !b.Game.FriendlyFlag.AtHome {
		if distToMove < ChaseFlagCloseDistance || b.currentTarget() == nil {
			// Close to a return, or nothing else to do: that's the job.
			weights[TaskMoveToTarget] = 200
		} else {
			weights[TaskMoveToTarget] = 70
		}
		return false
	}
	// Too far from our stand with the flag safely home: respawn to get
	// back into position.
	if distToMove > ChaseRespawnDistance && b.Game.FriendlyFlag.AtHome {
		b.respawn()
		return true
	}
	if distToMove > ChaseIgnoreDistance {
		weights[TaskMoveToTarget] = game.Clamp((distToMove-500)/100, 5, 110)
	}
	return false
}

// weighLeadOff weights the LO role: biased toward killing anything seen
// once in position at the enemy stand.
func (b *Bot) weighLeadOff(weights TaskWeights, distToMove float64) {
	if b.State.MoveTargetType != MoveTargetEnemyStand || distToMove > LOAtStandDistance {
		if b.State.MoveTargetType == MoveTargetFriendlyFlag && !b.Game.FriendlyFlag.Held && !b.Game.FriendlyFlag.AtHome {
			weights[TaskMoveToTarget] = game.Clamp((distToMove-500)/100, 10, 400)
		} else {
			weights[TaskMoveToTarget] = game.Clamp((distToMove-500)/100, 30, 40)
		}
	} else {
		weights[TaskLookingForEnemy] = 10
	}
}

// weighStayAtHome weights the home-defense roles.
func (b *Bot) weighStayAtHome(weights TaskWeights, distToMove float64) {
	switch {
	// The enemy flag loose in the field is usually worth picking up.
	case b.State.MoveTargetType == MoveTargetEnemyFlag && !b.Game.EnemyFlag.Held && !b.State.HoldingFlag:
		weights[TaskMoveToTarget] = game.Clamp((distToMove-50)/100, 65, 150)
	// A nearby return is also very important.
	case b.State.MoveTargetType == MoveTargetFriendlyFlag && !b.Game.FriendlyFlag.AtHome && !b.Game.FriendlyFlag.Held && !b.State.HoldingFlag:
		weights[TaskMoveToTarget] = game.Clamp((distToMove-500)/100, 20, 100)
	default:
		weights[TaskMoveToTarget] = game.Clamp((distToMove-500)/100, 5, 110)
		weights[TaskLookingForEnemy] = 6
	}
}
