package server

import (
	"math"

	"github.com/lab1702/arena-ctf/game"
)

// Lightweight deterministic sim world so the server runs standalone. It
// implements the collaborator interfaces the AI consumes: flat-ground
// arena, two stands, two flags, simple locomotion physics. It is not a
// full game engine and doesn't try to be; it is just enough world for
// the bots to play CTF against each other in.

const (
	simMaxHealth     = 200.0
	simFlagRadius    = 300.0 // Pickup/return/capture touch distance
	simRespawnDelay  = 3.0
	simSightRadius   = 60000.0
	simGravity       = 980.0
	simRunAccel      = 2500.0
	simSkiAccel      = 3500.0
	simJetAccel      = 1600.0
	simGroundFriction = 4.0
	simAirFriction   = 0.2
	simMaxEnergy     = 100.0
	simJetDrain      = 25.0 // Energy per second while jetting
	simEnergyRegen   = 12.0
	simHeatPerShot   = 0.06
	simHeatDecay     = 0.25
	simLauncherReload = 1.2
	simMinigunReload  = 0.08
)

type simFlag struct {
	team     int
	home     game.Vec3
	location game.Vec3
	atHome   bool
	holder   *simPawn // nil when on the stand or loose in the field
}

type simWorld struct {
	now    float64
	pawns  []*simPawn
	flags  [2]*simFlag
	stands [2]game.Vec3
	scores [2]int
}

func newSimWorld(arena ArenaConfig) *simWorld {
	w := &simWorld{}
	w.stands[game.TeamRed] = arena.RedStand.Vec3()
	w.stands[game.TeamBlue] = arena.BlueStand.Vec3()
	for team := range w.flags {
		w.flags[team] = &simFlag{
			team:     team,
			home:     w.stands[team],
			location: w.stands[team],
			atHome:   true,
		}
	}
	return w
}

func (w *simWorld) Now() float64 { return w.now }

func (w *simWorld) Combatant(id int) Combatant {
	if id < 0 || id >= len(w.pawns) {
		return nil
	}
	p := w.pawns[id]
	if p == nil || !p.valid {
		return nil
	}
	return p
}

// Raycast traces against the static ground plane at Z=0.
func (w *simWorld) Raycast(from, to game.Vec3) (bool, game.Vec3) {
	if (from.Z > 0) == (to.Z > 0) {
		return false, game.Vec3{}
	}
	dz := to.Z - from.Z
	if math.Abs(dz) < 1e-9 {
		return false, game.Vec3{}
	}
	t := -from.Z / dz
	at := from.Add(to.Sub(from).Scale(t))
	return true, at
}

func (w *simWorld) GroundHeight(p game.Vec3) float64 { return 0 }

func (w *simWorld) Flag(team int) FlagInfo {
	f := w.flags[team]
	loc := f.location
	if f.holder != nil {
		loc = f.holder.Position()
	}
	return FlagInfo{Location: loc, AtHome: f.atHome, Held: f.holder != nil}
}

func (w *simWorld) Stand(team int) game.Vec3 { return w.stands[team] }

func (w *simWorld) addPawn(p *simPawn) {
	p.id = len(w.pawns)
	w.pawns = append(w.pawns, p)
}

// Step advances the sim by dt seconds: pawn physics, weapon heat, flag
// interactions.
func (w *simWorld) Step(dt float64) {
	w.now += dt
	for _, p := range w.pawns {
		if p == nil || !p.valid {
			continue
		}
		if p.timeOfDeath != 0 {
			continue
		}
		p.step(w, dt)
	}
	w.stepFlags()
}

// stepFlags resolves pickup, return, and capture by touch distance.
func (w *simWorld) stepFlags() {
	for _, p := range w.pawns {
		if p == nil || !p.valid || p.timeOfDeath != 0 {
			continue
		}
		enemy := w.flags[game.OtherTeam(p.team)]
		own := w.flags[p.team]

		// Grab the enemy flag off its stand or off the ground.
		if enemy.holder == nil && p.carrying == nil &&
			game.Distance(p.Position(), enemy.location) < simFlagRadius {
			enemy.holder = p
			enemy.atHome = false
			p.carrying = enemy
		}
		// Return a loose friendly flag by touching it.
		if own.holder == nil && !own.atHome &&
			game.Distance(p.Position(), own.location) < simFlagRadius {
			w.returnFlag(own)
		}
		// Cap: carrying the enemy flag at our stand while our flag is
		// home.
		if p.carrying != nil && own.atHome &&
			game.Distance(p.Position(), w.stands[p.team]) < simFlagRadius {
			w.scores[p.team]++
			w.returnFlag(p.carrying)
			p.carrying = nil
		}
	}
}

func (w *simWorld) returnFlag(f *simFlag) {
	if f.holder != nil {
		f.holder.carrying = nil
		f.holder = nil
	}
	f.location = f.home
	f.atHome = true
}

// dropFlag puts a carried flag on the ground where the carrier died.
func (w *simWorld) dropFlag(p *simPawn) {
	if p.carrying == nil {
		return
	}
	f := p.carrying
	f.holder = nil
	f.location = game.Vec3{X: p.pos.X, Y: p.pos.Y, Z: 0}
	p.carrying = nil
}
