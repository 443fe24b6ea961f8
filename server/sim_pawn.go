package server

import (
	"math"

	"github.com/lab1702/arena-ctf/game"
)

// simPawn is a bot's body in the sim world. It implements both the
// read-only Combatant/Pawn views and the Controls actuation surface; the
// AI core only ever sees the interfaces.

type simPawn struct {
	id    int
	team  int
	name  string
	valid bool

	pos game.Vec3
	vel game.Vec3

	health      float64
	timeOfDeath float64
	respawnAt   float64

	energy  float64
	look    game.Rotator
	bodyYaw float64

	weaponSlot int
	heat       float64
	lastFired  float64

	// worldNow mirrors the world clock, refreshed each step, so
	// WeaponReady has a clock without a world back-pointer.
	worldNow float64

	// Per-frame control intent, written by the active task's handler.
	forward float64
	right   float64
	skiing  bool
	jetting bool
	trigger bool

	wantRespawn bool

	carrying *simFlag
}

func newSimPawn(name string, team int, at game.Vec3) *simPawn {
	return &simPawn{
		name:   name,
		team:   team,
		valid:  true,
		pos:    at,
		health: simMaxHealth,
		energy: simMaxEnergy,
	}
}

// Combatant / Pawn

func (p *simPawn) ID() int                 { return p.id }
func (p *simPawn) Team() int               { return p.team }
func (p *simPawn) Position() game.Vec3     { return p.pos }
func (p *simPawn) Velocity() game.Vec3     { return p.vel }
func (p *simPawn) Health() float64         { return p.health }
func (p *simPawn) TimeOfDeath() float64    { return p.timeOfDeath }
func (p *simPawn) CarryingFlag() bool      { return p.carrying != nil }
func (p *simPawn) Valid() bool             { return p.valid }
func (p *simPawn) Energy() float64         { return p.energy }
func (p *simPawn) SetEnergy(v float64)     { p.energy = game.Clamp(v, 0, simMaxEnergy) }
func (p *simPawn) LookRotation() game.Rotator { return p.look }
func (p *simPawn) WeaponSlot() int         { return p.weaponSlot }
func (p *simPawn) WeaponHeat() float64     { return p.heat }

func (p *simPawn) WeaponReady() bool {
	reload := simLauncherReload
	if p.weaponSlot == WeaponSlotMinigun {
		reload = simMinigunReload
	}
	return p.lastFired == 0 || p.sinceFired() >= reload
}

func (p *simPawn) sinceFired() float64 {
	return p.worldNow - p.lastFired
}

// Controls

func (p *simPawn) SetLookRotation(r game.Rotator) { p.look = r }
func (p *simPawn) SetBodyYaw(yaw float64)         { p.bodyYaw = yaw }
func (p *simPawn) MoveForward(scale float64)      { p.forward = scale }
func (p *simPawn) MoveRight(scale float64)        { p.right = scale }
func (p *simPawn) SetSkiing(on bool)              { p.skiing = on }
func (p *simPawn) SetJetting(on bool)             { p.jetting = on }
func (p *simPawn) SetTrigger(slot int, pressed bool) {
	if slot == TriggerPrimary {
		p.trigger = pressed
	}
}
func (p *simPawn) SwitchWeapon(slot int) { p.weaponSlot = slot }
func (p *simPawn) Respawn()              { p.wantRespawn = true }

// step integrates one frame of crude locomotion physics.
func (p *simPawn) step(w *simWorld, dt float64) {
	p.worldNow = w.now

	// Host-driven respawn request from the AI.
	if p.wantRespawn {
		p.wantRespawn = false
		p.die(w)
		return
	}

	// Horizontal acceleration along the body yaw from movement intent.
	yaw := p.bodyYaw * math.Pi / 180
	fwd := game.Vec3{X: math.Cos(yaw), Y: math.Sin(yaw)}
	rightDir := game.Vec3{X: math.Sin(yaw), Y: -math.Cos(yaw)}
	accel := simRunAccel
	if p.skiing {
		accel = simSkiAccel
	}
	intent := fwd.Scale(p.forward).Add(rightDir.Scale(p.right))
	p.vel = p.vel.Add(intent.Scale(accel * dt))

	// Vertical thrust and gravity.
	if p.jetting && p.energy > 0 {
		p.vel.Z += simJetAccel * dt
		p.energy = game.Clamp(p.energy-simJetDrain*dt, 0, simMaxEnergy)
	} else {
		p.energy = game.Clamp(p.energy+simEnergyRegen*dt, 0, simMaxEnergy)
	}
	p.vel.Z -= simGravity * dt

	// Friction: heavy on the ground unless skiing, light in the air.
	friction := simAirFriction
	if p.pos.Z <= 0 && !p.skiing {
		friction = simGroundFriction
	}
	damp := 1 - friction*dt
	if damp < 0 {
		damp = 0
	}
	p.vel.X *= damp
	p.vel.Y *= damp

	p.pos = p.pos.Add(p.vel.Scale(dt))
	if p.pos.Z < 0 {
		p.pos.Z = 0
		if p.vel.Z < 0 {
			p.vel.Z = 0
		}
	}

	// Weapons: firing only records heat and timing; projectile damage
	// resolution is out of scope for the sim host.
	if p.trigger && p.WeaponReady() {
		p.lastFired = w.now
		if p.weaponSlot == WeaponSlotMinigun {
			p.heat = game.Clamp(p.heat+simHeatPerShot, 0, 1)
		}
	}
	p.heat = game.Clamp(p.heat-simHeatDecay*dt, 0, 1)

	// Reset per-frame intent; handlers rewrite it every frame.
	p.forward = 0
	p.right = 0
}

func (p *simPawn) die(w *simWorld) {
	p.timeOfDeath = w.now
	p.respawnAt = w.now + simRespawnDelay
	p.health = 0
	p.vel = game.Vec3{}
	w.dropFlag(p)
}

// spawn places the pawn back at its team stand, offset so teammates
// don't stack.
func (p *simPawn) spawn(w *simWorld, offset game.Vec3) {
	p.pos = w.stands[p.team].Add(offset)
	p.vel = game.Vec3{}
	p.health = simMaxHealth
	p.energy = simMaxEnergy
	p.timeOfDeath = 0
	p.heat = 0
	p.trigger = false
	p.skiing = false
	p.jetting = false
}
