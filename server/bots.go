package server

import (
	"math/rand"

	"github.com/lab1702/arena-ctf/game"
)

// BotNames for generating random bot names
var BotNames = []string{
	"Vector", "Cosine", "Tangent", "Sierra", "Havoc", "Drifter",
	"Magnet", "Osprey", "Pylon", "Quasar", "Rascal", "Slipstream",
	"Thermal", "Updraft", "Vapor", "Warble", "Zephyr", "Bolt",
}

// Bot is one AI-controlled combatant: its immutable config, its mutable
// AI state, and the collaborator handles it acts through.
type Bot struct {
	Config BotConfig
	State  AIState
	Game   GameSnapshot

	world  World
	pawn   Pawn
	ctrl   Controls
	routes RoutePlayer
	rng    *rand.Rand

	// recentlySeen maps enemy combatant IDs to the world time they were
	// last seen. Entries expire after SeenTargetTTL.
	recentlySeen map[int]float64

	dead        bool
	initialized bool
	jetting     bool

	// Timers, all in world seconds.
	taskStartTime        float64
	lastLookTime         float64
	lastMoveTargetChange float64
	lastMovementChange   float64
	lastJetChange        float64
	lastShotTime         float64
	lastWeaponChange     float64
	lastAimpointChange   float64
	lastSpawnTime        float64

	// Aim skew cached between 1s re-rolls so aim drifts rather than
	// jitters.
	pitchSkew      float64
	yawSkew        float64
	projectileSkew float64

	wander wanderMove
}

// NewBot wires a bot to its world, body, controls and route player. The
// rng is owned by the bot so tests can seed it deterministically.
func NewBot(cfg BotConfig, w World, pawn Pawn, ctrl Controls, routes RoutePlayer, rng *rand.Rand) *Bot {
	b := &Bot{
		Config:       cfg,
		world:        w,
		pawn:         pawn,
		ctrl:         ctrl,
		routes:       routes,
		rng:          rng,
		recentlySeen: make(map[int]float64),
	}
	b.State.TargetID = NoTarget
	b.projectileSkew = 1.0
	return b
}

// Init captures the static parts of the game state (stand locations) and
// arms the bot. Safe to call more than once.
func (b *Bot) Init() {
	if b.initialized {
		return
	}
	b.Game.FriendlyStand = b.world.Stand(b.Config.Team)
	b.Game.EnemyStand = b.world.Stand(game.OtherTeam(b.Config.Team))
	b.initialized = true
}

// Update runs every frame and carries out whatever task the selector has
// committed to. It never makes decisions of its own beyond no-op safety.
func (b *Bot) Update() {
	if b.pawn == nil || !b.pawn.Valid() || b.dead {
		return
	}
	if !b.initialized {
		b.Init()
		return
	}
	// Route runner bots do nothing but follow a recorded path; force the
	// task in case we tick before the first selector pass.
	if b.Config.Role == RoleRouteRunner {
		b.State.CurrentTask = TaskRouteRunner
	}
	// Reset the current target if it is no longer valid (dead, left the
	// server, etc).
	if t := b.currentTarget(); t != nil && (!t.Valid() || t.TimeOfDeath() != 0 || t.Health() <= 0) {
		b.State.TargetID = NoTarget
	}

	switch b.State.CurrentTask {
	case TaskShootAtTarget:
		b.ShootAtTarget()
		// Keep moving a bit in most states so the bot feels natural and
		// is harder to hit.
		b.MoveAround()
	case TaskChangeTarget:
		b.ChangeTarget()
		b.MoveAround()
	case TaskWaitForBetterShot:
		b.WaitForBetterShot()
		b.MoveAround()
	case TaskLookingForEnemy:
		b.LookForEnemies()
		b.MoveAround()
	case TaskMoveToTarget:
		b.MoveToTarget()
	case TaskRunningRoute:
		// Playback is driven by the route player; nothing to do per
		// frame.
	case TaskRouteRunner:
		b.RunRouteSimple()
	}
}

// currentTarget resolves the weak target handle, nil when unset or gone.
func (b *Bot) currentTarget() Combatant {
	if b.State.TargetID == NoTarget {
		return nil
	}
	return b.world.Combatant(b.State.TargetID)
}

// distanceToTarget returns the distance to a combatant, or the sentinel
// when it is nil.
func (b *Bot) distanceToTarget(t Combatant) float64 {
	if t == nil {
		return MaxSearchDistance
	}
	return game.Distance(b.pawn.Position(), t.Position())
}

// heightAboveGround probes the static ground below p.
func (b *Bot) heightAboveGround(p game.Vec3) float64 {
	return p.Z - b.world.GroundHeight(p)
}

// heightAbove is how far the bot is above (positive) or below (negative)
// a location.
func (b *Bot) heightAbove(p game.Vec3) float64 {
	return b.pawn.Position().Z - p.Z
}

// respawn hands control back to the host to kill and respawn the pawn.
func (b *Bot) respawn() {
	b.ctrl.Respawn()
	b.OnDied()
}
