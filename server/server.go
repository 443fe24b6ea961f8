package server

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/lab1702/arena-ctf/game"

	"github.com/gorilla/websocket"
)

// Server owns the sim world, the bot roster, and the websocket debug
// feed. The game loop is single threaded; the only cross-goroutine
// traffic is client registration and the periodic state broadcast, both
// under the mutex.
type Server struct {
	mu sync.Mutex

	cfg   Config
	world *simWorld
	lib   *routeLibrary

	bots    []*Bot
	players []*simRoutePlayer

	clients map[*websocket.Conn]bool

	lastTaskPass  float64
	lastBroadcast float64
}

// NewServer builds the world and roster from config. The seed feeds every
// bot's private rng; pass 0 for a time-based seed.
func NewServer(cfg Config, seed int64) (*Server, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lib, err := newRouteLibrary(cfg.Routes)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:     cfg,
		world:   newSimWorld(cfg.Arena),
		lib:     lib,
		clients: make(map[*websocket.Conn]bool),
	}

	spawned := [2]int{}
	for i, entry := range cfg.Bots {
		bc, err := entry.BotConfig()
		if err != nil {
			return nil, fmt.Errorf("bot %d: %w", i, err)
		}
		if bc.Name == "" {
			bc.Name = BotNames[i%len(BotNames)]
		}

		at := s.world.stands[bc.Team].Add(spawnOffset(spawned[bc.Team]))
		spawned[bc.Team]++

		pawn := newSimPawn(bc.Name, bc.Team, at)
		s.world.addPawn(pawn)

		player := newSimRoutePlayer(lib, pawn)
		rng := rand.New(rand.NewSource(seed + int64(i)))
		bot := NewBot(bc, s.world, pawn, pawn, player, rng)
		bot.Init()

		// Route-end handling: offense bots get the finished hook, pure
		// route runners die at the end and re-run after respawn.
		player.onFinished = func(opts PlaybackOptions) {
			if opts.StayAliveAfterEnd {
				bot.OnRouteFinished()
				return
			}
			bot.State.TaskInitialized = false
			pawn.die(s.world)
			bot.OnDied()
		}

		s.bots = append(s.bots, bot)
		s.players = append(s.players, player)
	}
	return s, nil
}

// spawnOffset spreads teammates out around their stand so they don't
// spawn inside each other.
func spawnOffset(n int) game.Vec3 {
	return game.Vec3{Y: float64(n) * 250}
}

// Bots returns the roster, for status handlers.
func (s *Server) Bots() []*Bot {
	return s.bots
}

// Run drives the game loop until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(game.UpdateInterval)
	defer ticker.Stop()

	slog.Info("game loop started",
		"bots", len(s.bots),
		"routes", len(s.lib.routes),
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("game loop stopped")
			return ctx.Err()
		case <-ticker.C:
			s.tick(game.UpdateInterval.Seconds())
		}
	}
}

// tick advances one frame: physics, respawns, vision, the slow task
// selector, and per-frame bot execution.
func (s *Server) tick(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.Step(dt)
	s.stepRespawns()
	s.stepVision()

	for _, p := range s.players {
		p.step(dt)
	}

	if s.world.now-s.lastTaskPass >= game.TaskInterval.Seconds() {
		s.lastTaskPass = s.world.now
		for _, b := range s.bots {
			b.DetermineCurrentTask()
		}
	}

	for _, b := range s.bots {
		b.Update()
	}

	if s.world.now-s.lastBroadcast >= 0.25 {
		s.lastBroadcast = s.world.now
		s.broadcastState()
	}
}

// stepRespawns brings dead pawns back once their delay elapses.
func (s *Server) stepRespawns() {
	for i, b := range s.bots {
		p := s.world.pawns[i]
		if p.timeOfDeath == 0 || s.world.now < p.respawnAt {
			continue
		}
		p.spawn(s.world, spawnOffset(i))
		b.OnSpawn()
	}
}

// stepVision tells every bot about live enemies in sight. The sim arena
// is open ground so sight is distance only.
func (s *Server) stepVision() {
	for i, b := range s.bots {
		self := s.world.pawns[i]
		if self.timeOfDeath != 0 {
			continue
		}
		for _, other := range s.world.pawns {
			if other == self || other.team == self.team || other.timeOfDeath != 0 {
				continue
			}
			if game.Distance(self.pos, other.pos) <= simSightRadius {
				b.OnPawnSeen(other)
			}
		}
	}
}
