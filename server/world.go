package server

import "github.com/lab1702/arena-ctf/game"

// Collaborator interfaces consumed by the bot AI core. The engine side of
// the house (physics, rendering, replication) lives behind these; the sim
// host in this package provides a lightweight implementation so the server
// can run standalone, and tests provide stubs.

// Combatant is a read-only view of any player or bot in the world. The AI
// never owns one of these; it holds IDs and re-resolves them every use so
// a destroyed actor simply comes back nil.
type Combatant interface {
	ID() int
	Team() int
	Position() game.Vec3
	Velocity() game.Vec3

	// Health is in [0, 200]. Zero means dead.
	Health() float64

	// TimeOfDeath is the world time the combatant died, or 0 while alive.
	TimeOfDeath() float64

	// CarryingFlag reports whether this combatant holds the objective.
	CarryingFlag() bool

	// Valid is false once the actor has been removed from the world.
	Valid() bool
}

// FlagInfo is a point-in-time view of one team's flag.
type FlagInfo struct {
	Location game.Vec3
	AtHome   bool
	Held     bool
}

// World is the query surface the AI uses to observe the game.
type World interface {
	// Now is the world clock in seconds.
	Now() float64

	// Combatant resolves an ID to a live combatant, or nil if it no
	// longer exists.
	Combatant(id int) Combatant

	// Raycast traces a segment against static geometry and reports the
	// first hit point.
	Raycast(from, to game.Vec3) (hit bool, at game.Vec3)

	// GroundHeight returns the Z of the static ground directly below p,
	// via a downward probe.
	GroundHeight(p game.Vec3) float64

	// Flag returns the current state of a team's flag.
	Flag(team int) FlagInfo

	// Stand returns a team's flag stand location. Stands never move.
	Stand(team int) game.Vec3
}

// Pawn is the bot's own body: a combatant plus the state only the owner
// can read.
type Pawn interface {
	Combatant

	// Energy is jet energy in [0, 100].
	Energy() float64
	SetEnergy(v float64)

	LookRotation() game.Rotator

	// WeaponSlot is the currently equipped weapon slot.
	WeaponSlot() int

	// WeaponHeat is the equipped weapon's heat in [0, 1]. Only the
	// rapid-fire weapon accrues heat.
	WeaponHeat() float64

	// WeaponReady reports whether the equipped weapon is idle and past
	// its reload time.
	WeaponReady() bool
}

// Controls is the actuation surface. Only the committed task's handler
// writes to it on any given frame.
type Controls interface {
	SetLookRotation(r game.Rotator)
	SetBodyYaw(yaw float64)
	MoveForward(scale float64)
	MoveRight(scale float64)
	SetSkiing(on bool)
	SetJetting(on bool)
	SetTrigger(slot int, pressed bool)
	SwitchWeapon(slot int)

	// Respawn kills and respawns the pawn. Used by roles that decide
	// they are more useful starting over.
	Respawn()
}

// RouteMarker is one recorded waypoint of a pre-recorded route.
type RouteMarker struct {
	Location game.Vec3
	Time     float64
}

// Route is a named pre-recorded path with a designated grab timestamp.
type Route struct {
	Name           string
	Team           int
	Markers        []RouteMarker
	GrabTime       float64
	MarkerInterval float64
}

// GrabMarker returns the marker index at which the route's flag grab
// happens.
func (r Route) GrabMarker() int {
	if r.MarkerInterval <= 0 {
		return 0
	}
	return int(r.GrabTime / r.MarkerInterval)
}

// PlaybackOptions tune how a route playback behaves.
type PlaybackOptions struct {
	StartMarker           int
	ResumeAfterDamage     bool
	StayAliveAfterEnd     bool
	RestoreHealthOnMove   bool
}

// RoutePlayer is the route-playback collaborator. One instance per bot.
type RoutePlayer interface {
	// RouteByName looks up a recorded route for a team.
	RouteByName(name string, team int) (Route, bool)

	// Play starts moving the pawn along the route.
	Play(route Route, opts PlaybackOptions)

	// Stop ends playback early.
	Stop()

	// CurrentMarker is the index of the marker most recently reached.
	CurrentMarker() int
}
