package server

import "github.com/lab1702/arena-ctf/game"

// Role is a bot's assigned gameplay position. Assigned at creation and
// immutable for the life of the bot.
type Role int

const (
	RoleStayAtHome Role = iota
	RoleChase
	RoleOffense
	RoleLeadOff
	RoleRouteRunner
	RoleStationaryDefense
)

func (r Role) String() string {
	switch r {
	case RoleStayAtHome:
		return "StayAtHome"
	case RoleChase:
		return "Chase"
	case RoleOffense:
		return "Offense"
	case RoleLeadOff:
		return "LeadOff"
	case RoleRouteRunner:
		return "RouteRunner"
	case RoleStationaryDefense:
		return "StationaryDefense"
	}
	return "Unknown"
}

// AccuracyTier is a bot's fixed difficulty level. It controls aim skew,
// fire-rate gates, and how often the bot leans on the rapid-fire weapon.
type AccuracyTier int

const (
	AccuracyHorrible AccuracyTier = iota
	AccuracyDecent
	AccuracyGood
	AccuracyPerfect
)

func (a AccuracyTier) String() string {
	switch a {
	case AccuracyHorrible:
		return "Horrible"
	case AccuracyDecent:
		return "Decent"
	case AccuracyGood:
		return "Good"
	case AccuracyPerfect:
		return "Perfect"
	}
	return "Unknown"
}

// Task is the bot's committed behavior. The selector picks one every slow
// tick; the per-frame loop executes it.
type Task int

const (
	TaskLookingForEnemy Task = iota
	TaskShootAtTarget
	TaskChangeTarget
	TaskWaitForBetterShot
	TaskMoveToTarget
	TaskRunningRoute
	TaskRouteRunner
)

func (t Task) String() string {
	switch t {
	case TaskLookingForEnemy:
		return "LookingForEnemy"
	case TaskShootAtTarget:
		return "ShootAtTarget"
	case TaskChangeTarget:
		return "ChangeTarget"
	case TaskWaitForBetterShot:
		return "WaitForBetterShot"
	case TaskMoveToTarget:
		return "MoveToTarget"
	case TaskRunningRoute:
		return "RunningRoute"
	case TaskRouteRunner:
		return "RouteRunner"
	}
	return "Unknown"
}

// taskSelectionOrder fixes the iteration order for picking the highest
// weighted task. Ties go to the earlier entry, making selection fully
// deterministic for a given weight map.
var taskSelectionOrder = []Task{
	TaskMoveToTarget,
	TaskRunningRoute,
	TaskShootAtTarget,
	TaskChangeTarget,
	TaskWaitForBetterShot,
	TaskLookingForEnemy,
}

// MoveTargetType records the semantic meaning of the current destination.
type MoveTargetType int

const (
	MoveTargetNone MoveTargetType = iota
	MoveTargetRouteStart
	MoveTargetFriendlyStand
	MoveTargetEnemyStand
	MoveTargetFriendlyFlag
	MoveTargetEnemyFlag
	MoveTargetEnemyTarget
)

func (m MoveTargetType) String() string {
	switch m {
	case MoveTargetNone:
		return "None"
	case MoveTargetRouteStart:
		return "RouteStart"
	case MoveTargetFriendlyStand:
		return "FriendlyStand"
	case MoveTargetEnemyStand:
		return "EnemyStand"
	case MoveTargetFriendlyFlag:
		return "FriendlyFlag"
	case MoveTargetEnemyFlag:
		return "EnemyFlag"
	case MoveTargetEnemyTarget:
		return "EnemyTarget"
	}
	return "Unknown"
}

// RouteState is the offense/route-runner sub-state machine.
type RouteState int

const (
	RouteNoneSelected RouteState = iota
	RouteMovingToStart
	RouteRunning
	RouteFinished
	RouteAbandoned
)

func (r RouteState) String() string {
	switch r {
	case RouteNoneSelected:
		return "NoneSelected"
	case RouteMovingToStart:
		return "MovingToStart"
	case RouteRunning:
		return "Running"
	case RouteFinished:
		return "Finished"
	case RouteAbandoned:
		return "Abandoned"
	}
	return "Unknown"
}

// SpawnTiming selects how a route-runner bot times its mid-route spawn.
type SpawnTiming int

const (
	SpawnSecondsBeforeGrab SpawnTiming = iota
	SpawnSecondsIntoRoute
)

// BotConfig is a bot's immutable creation-time configuration.
type BotConfig struct {
	Name     string
	Team     int
	Role     Role
	Accuracy AccuracyTier

	// Shoots false produces a pacifist bot (practice dummies).
	Shoots     bool
	NoLauncher bool
	NoMinigun  bool

	// RouteNames are the recorded routes this bot knows how to run.
	RouteNames []string

	SpawnTiming      SpawnTiming
	SpawnDelay       float64
	AlwaysFollowPath bool
	TakesDamage      bool
}

// NoTarget is the TargetID value meaning "no current target".
const NoTarget = -1

// AIState is the mutable per-bot AI state. One instance per bot, owned by
// the bot, shared between the slow selector and the per-frame loop under
// the host's single-threaded tick ordering.
type AIState struct {
	CurrentTask Task

	// TargetID is a weak handle into the world's combatant registry,
	// NoTarget when none. Re-resolved on every use.
	TargetID int

	DesiredMoveLocation game.Vec3
	MoveTargetType      MoveTargetType

	RouteState         RouteState
	CurrentRoute       Route
	RouteStartLocation game.Vec3

	HoldingFlag       bool
	PendingWeaponFire bool
	TaskInitialized   bool

	DistanceToFriendlyFlag float64
	DistanceToEnemyFlag    float64
}

// GameSnapshot is the slow-tick view of flag and stand state, from the
// owning bot's perspective (friendly vs enemy).
type GameSnapshot struct {
	FriendlyFlag FlagInfo
	EnemyFlag    FlagInfo
	FlagState    game.FlagState

	// Stand locations are captured once at init; stands never move.
	FriendlyStand game.Vec3
	EnemyStand    game.Vec3
}

// TaskWeights maps candidate tasks to desirability. Built fresh each slow
// tick and discarded after the winner is taken.
type TaskWeights map[Task]float64
