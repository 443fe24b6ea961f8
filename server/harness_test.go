package server

import (
	"math/rand"

	"github.com/lab1702/arena-ctf/game"
)

// Shared test doubles for the collaborator interfaces. Tests mutate the
// stub fields directly to set up a scenario, then call into the bot.

type stubCombatant struct {
	id       int
	team     int
	pos      game.Vec3
	vel      game.Vec3
	health   float64
	died     float64
	carrying bool
	invalid  bool
}

func (c *stubCombatant) ID() int             { return c.id }
func (c *stubCombatant) Team() int           { return c.team }
func (c *stubCombatant) Position() game.Vec3 { return c.pos }
func (c *stubCombatant) Velocity() game.Vec3 { return c.vel }
func (c *stubCombatant) Health() float64     { return c.health }
func (c *stubCombatant) TimeOfDeath() float64 {
	return c.died
}
func (c *stubCombatant) CarryingFlag() bool { return c.carrying }
func (c *stubCombatant) Valid() bool        { return !c.invalid }

type stubPawn struct {
	stubCombatant
	energy     float64
	look       game.Rotator
	weaponSlot int
	heat       float64
	ready      bool
}

func (p *stubPawn) Energy() float64              { return p.energy }
func (p *stubPawn) SetEnergy(v float64)          { p.energy = v }
func (p *stubPawn) LookRotation() game.Rotator   { return p.look }
func (p *stubPawn) WeaponSlot() int              { return p.weaponSlot }
func (p *stubPawn) WeaponHeat() float64          { return p.heat }
func (p *stubPawn) WeaponReady() bool            { return p.ready }

// stubControls records the last value written to each control channel.
type stubControls struct {
	look         game.Rotator
	lookSet      bool
	bodyYaw      float64
	forward      float64
	right        float64
	skiing       bool
	jetting      bool
	trigger      bool
	triggerSet   bool
	switchedTo   int
	switched     bool
	respawnCalls int
}

func (c *stubControls) SetLookRotation(r game.Rotator) { c.look = r; c.lookSet = true }
func (c *stubControls) SetBodyYaw(yaw float64)         { c.bodyYaw = yaw }
func (c *stubControls) MoveForward(scale float64)      { c.forward = scale }
func (c *stubControls) MoveRight(scale float64)        { c.right = scale }
func (c *stubControls) SetSkiing(on bool)              { c.skiing = on }
func (c *stubControls) SetJetting(on bool)             { c.jetting = on }
func (c *stubControls) SetTrigger(slot int, pressed bool) {
	if slot == TriggerPrimary {
		c.trigger = pressed
		c.triggerSet = true
	}
}
func (c *stubControls) SwitchWeapon(slot int) { c.switchedTo = slot; c.switched = true }
func (c *stubControls) Respawn()              { c.respawnCalls++ }

type stubWorld struct {
	now        float64
	combatants map[int]Combatant
	groundZ    float64
	raycastHit bool
	raycastAt  game.Vec3
	flags      [2]FlagInfo
	stands     [2]game.Vec3
}

func newStubWorld() *stubWorld {
	w := &stubWorld{combatants: make(map[int]Combatant)}
	w.stands[game.TeamRed] = game.Vec3{X: -game.ArenaLength / 2}
	w.stands[game.TeamBlue] = game.Vec3{X: game.ArenaLength / 2}
	for team := range w.flags {
		w.flags[team] = FlagInfo{Location: w.stands[team], AtHome: true}
	}
	return w
}

func (w *stubWorld) Now() float64 { return w.now }
func (w *stubWorld) Combatant(id int) Combatant {
	c, ok := w.combatants[id]
	if !ok {
		return nil
	}
	return c
}
func (w *stubWorld) Raycast(from, to game.Vec3) (bool, game.Vec3) {
	return w.raycastHit, w.raycastAt
}
func (w *stubWorld) GroundHeight(p game.Vec3) float64 { return w.groundZ }
func (w *stubWorld) Flag(team int) FlagInfo           { return w.flags[team] }
func (w *stubWorld) Stand(team int) game.Vec3         { return w.stands[team] }

// stubRoutes records playback calls and serves canned routes.
type stubRoutes struct {
	routes  map[string]Route
	played  []Route
	opts    []PlaybackOptions
	stopped int
	marker  int
}

func newStubRoutes() *stubRoutes {
	return &stubRoutes{routes: make(map[string]Route)}
}

func (r *stubRoutes) RouteByName(name string, team int) (Route, bool) {
	route, ok := r.routes[name]
	if !ok || route.Team != team {
		return Route{}, false
	}
	return route, true
}
func (r *stubRoutes) Play(route Route, opts PlaybackOptions) {
	r.played = append(r.played, route)
	r.opts = append(r.opts, opts)
}
func (r *stubRoutes) Stop()              { r.stopped++ }
func (r *stubRoutes) CurrentMarker() int { return r.marker }

// newTestBot wires a bot to fresh stubs with a fixed rng seed. The pawn
// starts alive at its team stand.
func newTestBot(cfg BotConfig) (*Bot, *stubWorld, *stubPawn, *stubControls, *stubRoutes) {
	w := newStubWorld()
	pawn := &stubPawn{
		stubCombatant: stubCombatant{
			id:     100,
			team:   cfg.Team,
			pos:    w.stands[cfg.Team],
			health: 200,
		},
		energy: 100,
		ready:  true,
	}
	ctrl := &stubControls{}
	routes := newStubRoutes()
	b := NewBot(cfg, w, pawn, ctrl, routes, rand.New(rand.NewSource(1)))
	b.Init()
	return b, w, pawn, ctrl, routes
}

// addEnemy registers an enemy combatant in the world and in the bot's
// seen memory.
func addEnemy(b *Bot, w *stubWorld, id int, pos game.Vec3) *stubCombatant {
	e := &stubCombatant{
		id:     id,
		team:   game.OtherTeam(b.Config.Team),
		pos:    pos,
		health: 200,
	}
	w.combatants[id] = e
	b.recentlySeen[id] = w.now
	return e
}
