package server

import "github.com/lab1702/arena-ctf/game"

// Destination resolution: refreshes the game-state snapshot and decides
// where the bot should be heading, by role-specific priority. Later rules
// override earlier ones, so the most important destinations are applied
// last.

// DetermineMoveLocation recomputes the desired move location and its
// semantic type. Called once per selector cycle, before task weighting.
func (b *Bot) DetermineMoveLocation() {
	if b.pawn == nil {
		return
	}
	targetDistance := b.distanceToTarget(b.currentTarget())
	originalType := b.State.MoveTargetType
	b.State.DesiredMoveLocation = game.Vec3{}

	// If we need to start a route, we just go ASAP to the route start.
	if b.Config.Role == RoleOffense && b.State.RouteState == RouteMovingToStart {
		b.State.MoveTargetType = MoveTargetRouteStart
		b.State.DesiredMoveLocation = b.State.RouteStartLocation
		return
	}

	b.refreshGameSnapshot()

	b.State.HoldingFlag = b.pawn.CarryingFlag()

	// If we have the flag we always try to cap.
	if b.State.HoldingFlag {
		b.State.MoveTargetType = MoveTargetFriendlyStand
		b.State.DesiredMoveLocation = b.Game.FriendlyStand
	}
	// Chase always cares about the friendly flag unless holding.
	if !b.State.HoldingFlag && b.Config.Role == RoleChase {
		b.State.MoveTargetType = MoveTargetFriendlyFlag
		b.State.DesiredMoveLocation = b.Game.FriendlyFlag.Location
	}
	// Offense and LO care about returns in standoffs and otherwise the
	// enemy flag.
	if !b.State.HoldingFlag && (b.Config.Role == RoleOffense || b.Config.Role == RoleLeadOff) {
		switch {
		// A dropped enemy flag nearby beats everything else.
		case !b.Game.EnemyFlag.AtHome && !b.Game.EnemyFlag.Held && b.State.DistanceToEnemyFlag < LooseFlagPickupDistance:
			b.State.MoveTargetType = MoveTargetEnemyFlag
			b.State.DesiredMoveLocation = b.Game.EnemyFlag.Location
		// A dropped friendly flag nearby is the next priority.
		case !b.Game.FriendlyFlag.Held && !b.Game.FriendlyFlag.AtHome && b.State.DistanceToFriendlyFlag < LooseFlagPickupDistance:
			b.State.MoveTargetType = MoveTargetFriendlyFlag
			b.State.DesiredMoveLocation = b.Game.FriendlyFlag.Location
		case b.Game.FlagState == game.FlagStandoff:
			b.State.MoveTargetType = MoveTargetFriendlyFlag
			b.State.DesiredMoveLocation = b.Game.FriendlyFlag.Location
		default:
			if b.Config.Role == RoleOffense {
				b.State.MoveTargetType = MoveTargetEnemyFlag
				b.State.DesiredMoveLocation = b.Game.EnemyFlag.Location
			} else if b.Game.FlagState == game.FlagEnemyTakenFriendlySafe {
				b.State.MoveTargetType = MoveTargetEnemyFlag
				b.State.DesiredMoveLocation = b.Game.EnemyFlag.Location
			} else {
				b.State.MoveTargetType = MoveTargetEnemyStand
				b.State.DesiredMoveLocation = b.Game.EnemyStand
			}
		}
	}
	// StayAtHome holds its own stand, grabs the enemy flag in standoffs,
	// and chases nearby returns.
	if b.Config.Role == RoleStayAtHome || b.Config.Role == RoleStationaryDefense {
		b.State.MoveTargetType = MoveTargetFriendlyStand
		b.State.DesiredMoveLocation = b.Game.FriendlyStand

		if b.Game.FlagState == game.FlagStandoff ||
			(b.Game.FlagState == game.FlagEnemyTakenFriendlySafe && b.State.DistanceToEnemyFlag < SaHStandoffGrabDistance && !b.Game.EnemyFlag.Held) {
			b.State.MoveTargetType = MoveTargetEnemyFlag
			b.State.DesiredMoveLocation = b.Game.EnemyFlag.Location
		} else if b.Game.FlagState == game.FlagFriendlyTakenEnemyHome && b.State.DistanceToFriendlyFlag < SaHChaseReturnDistance {
			b.State.MoveTargetType = MoveTargetFriendlyFlag
			b.State.DesiredMoveLocation = b.Game.FriendlyFlag.Location
		}
	}

	// If we are relatively close to where we want to be and have a live
	// target, go for the target instead.
	distToMove := game.Distance(b.pawn.Position(), b.State.DesiredMoveLocation)
	if t := b.currentTarget(); t != nil && targetDistance < TargetChaseMaxDistance && distToMove < TargetChaseNearDestLimit {
		b.State.MoveTargetType = MoveTargetEnemyTarget
		b.State.DesiredMoveLocation = t.Position()
	}

	// A flag loose in the field usually matters most. Radii differ per
	// role: defenders reach farther.
	friendlyOverride := FlagOverrideDistance
	enemyOverride := FlagOverrideDistance
	if b.Config.Role == RoleStayAtHome || b.Config.Role == RoleStationaryDefense {
		enemyOverride = SaHEnemyFlagOverride
		friendlyOverride = SaHFriendlyFlagOverride
	}
	if b.Config.Role == RoleChase {
		friendlyOverride = ChaseFriendlyFlagOverride
	}
	if b.State.DistanceToFriendlyFlag < friendlyOverride && !b.Game.FriendlyFlag.Held &&
		(b.Game.FlagState == game.FlagFriendlyTakenEnemyHome || b.Game.FlagState == game.FlagStandoff) {
		b.State.MoveTargetType = MoveTargetFriendlyFlag
		b.State.DesiredMoveLocation = b.Game.FriendlyFlag.Location
	}
	if b.State.DistanceToEnemyFlag < enemyOverride && !b.Game.EnemyFlag.Held &&
		(b.Game.FlagState == game.FlagEnemyTakenFriendlySafe || b.Game.FlagState == game.FlagStandoff) {
		b.State.MoveTargetType = MoveTargetEnemyFlag
		b.State.DesiredMoveLocation = b.Game.EnemyFlag.Location
	}

	// If we have the flag and can cap, nothing beats going home.
	if b.State.HoldingFlag && b.Game.FriendlyFlag.AtHome {
		b.State.MoveTargetType = MoveTargetFriendlyStand
		b.State.DesiredMoveLocation = b.Game.FriendlyStand
	}

	// Track destination-type changes; the teleport assist keys off how
	// long we have been heading to the same kind of place.
	if originalType != b.State.MoveTargetType {
		b.lastMoveTargetChange = b.world.Now()
	}
}

// refreshGameSnapshot rescans both flags and recomputes the derived flag
// state and flag distances.
func (b *Bot) refreshGameSnapshot() {
	pos := b.pawn.Position()

	b.Game.FriendlyFlag = b.world.Flag(b.Config.Team)
	b.Game.EnemyFlag = b.world.Flag(game.OtherTeam(b.Config.Team))
	b.State.DistanceToFriendlyFlag = game.Distance(pos, b.Game.FriendlyFlag.Location)
	b.State.DistanceToEnemyFlag = game.Distance(pos, b.Game.EnemyFlag.Location)

	b.Game.FlagState = game.DeriveFlagState(b.Game.EnemyFlag.AtHome, b.Game.FriendlyFlag.AtHome)
}
