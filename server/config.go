package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lab1702/arena-ctf/game"
)

// Server and roster configuration, loaded from YAML. Everything has a
// usable default so the server runs with no config file at all.

// Config holds all server configuration.
type Config struct {
	// Network
	Port int `yaml:"port"`

	Arena ArenaConfig `yaml:"arena"`

	Bots []BotEntry `yaml:"bots"`

	Routes []RouteEntry `yaml:"routes"`
}

// ArenaConfig describes the static geometry the sim world is built from.
type ArenaConfig struct {
	// Stand locations per team. Flags spawn on their stands.
	RedStand  Position `yaml:"red_stand"`
	BlueStand Position `yaml:"blue_stand"`
}

// Position is a YAML-friendly world location.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 converts to the game vector type.
func (p Position) Vec3() game.Vec3 {
	return game.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// BotEntry is one bot in the roster.
type BotEntry struct {
	Name     string `yaml:"name"`
	Team     string `yaml:"team"`     // "red" or "blue"
	Role     string `yaml:"role"`     // stay_at_home, chase, offense, lead_off, route_runner, stationary_defense
	Accuracy string `yaml:"accuracy"` // horrible, decent, good, perfect

	Shoots     *bool    `yaml:"shoots"` // default true
	NoLauncher bool     `yaml:"no_launcher"`
	NoMinigun  bool     `yaml:"no_minigun"`
	Routes     []string `yaml:"routes"`

	SpawnTiming      string  `yaml:"spawn_timing"` // seconds_before_grab, seconds_into_route
	SpawnDelay       float64 `yaml:"spawn_delay"`
	AlwaysFollowPath bool    `yaml:"always_follow_path"`
	TakesDamage      bool    `yaml:"takes_damage"`
}

// RouteEntry is one recorded route: ordered waypoints with uniform
// timing and a designated grab timestamp.
type RouteEntry struct {
	Name           string     `yaml:"name"`
	Team           string     `yaml:"team"`
	MarkerInterval float64    `yaml:"marker_interval"`
	GrabTime       float64    `yaml:"grab_time"`
	Markers        []Position `yaml:"markers"`
}

// DefaultConfig returns a config with a small two-team roster on the
// default arena.
func DefaultConfig() Config {
	return Config{
		Port: 8080,
		Arena: ArenaConfig{
			RedStand:  Position{X: -game.ArenaLength / 2, Y: 0, Z: 0},
			BlueStand: Position{X: game.ArenaLength / 2, Y: 0, Z: 0},
		},
		Bots: []BotEntry{
			{Team: "red", Role: "stay_at_home", Accuracy: "decent"},
			{Team: "red", Role: "chase", Accuracy: "decent"},
			{Team: "blue", Role: "stay_at_home", Accuracy: "decent"},
			{Team: "blue", Role: "chase", Accuracy: "decent"},
		},
	}
}

// LoadConfig reads a YAML config file. A missing path returns the
// default config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	cfg.Bots = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Bots) == 0 {
		cfg.Bots = DefaultConfig().Bots
	}
	return cfg, nil
}

// ParseTeam maps a config team name to a team ID.
func ParseTeam(s string) (int, error) {
	switch s {
	case "red", "":
		return game.TeamRed, nil
	case "blue":
		return game.TeamBlue, nil
	}
	return 0, fmt.Errorf("unknown team %q", s)
}

// ParseRole maps a config role name to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "stay_at_home", "":
		return RoleStayAtHome, nil
	case "chase":
		return RoleChase, nil
	case "offense":
		return RoleOffense, nil
	case "lead_off":
		return RoleLeadOff, nil
	case "route_runner":
		return RoleRouteRunner, nil
	case "stationary_defense":
		return RoleStationaryDefense, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// ParseAccuracy maps a config accuracy name to a tier.
func ParseAccuracy(s string) (AccuracyTier, error) {
	switch s {
	case "horrible":
		return AccuracyHorrible, nil
	case "decent", "":
		return AccuracyDecent, nil
	case "good":
		return AccuracyGood, nil
	case "perfect":
		return AccuracyPerfect, nil
	}
	return 0, fmt.Errorf("unknown accuracy %q", s)
}

// ParseSpawnTiming maps a config spawn-timing name.
func ParseSpawnTiming(s string) (SpawnTiming, error) {
	switch s {
	case "seconds_before_grab", "":
		return SpawnSecondsBeforeGrab, nil
	case "seconds_into_route":
		return SpawnSecondsIntoRoute, nil
	}
	return 0, fmt.Errorf("unknown spawn timing %q", s)
}

// BotConfig converts a roster entry to the AI core's config type.
func (e BotEntry) BotConfig() (BotConfig, error) {
	team, err := ParseTeam(e.Team)
	if err != nil {
		return BotConfig{}, err
	}
	role, err := ParseRole(e.Role)
	if err != nil {
		return BotConfig{}, err
	}
	acc, err := ParseAccuracy(e.Accuracy)
	if err != nil {
		return BotConfig{}, err
	}
	timing, err := ParseSpawnTiming(e.SpawnTiming)
	if err != nil {
		return BotConfig{}, err
	}
	shoots := true
	if e.Shoots != nil {
		shoots = *e.Shoots
	}
	return BotConfig{
		Name:             e.Name,
		Team:             team,
		Role:             role,
		Accuracy:         acc,
		Shoots:           shoots,
		NoLauncher:       e.NoLauncher,
		NoMinigun:        e.NoMinigun,
		RouteNames:       e.Routes,
		SpawnTiming:      timing,
		SpawnDelay:       e.SpawnDelay,
		AlwaysFollowPath: e.AlwaysFollowPath,
		TakesDamage:      e.TakesDamage,
	}, nil
}

// Route converts a route entry to the AI core's route type.
func (e RouteEntry) Route() (Route, error) {
	team, err := ParseTeam(e.Team)
	if err != nil {
		return Route{}, err
	}
	r := Route{
		Name:           e.Name,
		Team:           team,
		GrabTime:       e.GrabTime,
		MarkerInterval: e.MarkerInterval,
	}
	if r.MarkerInterval <= 0 {
		r.MarkerInterval = 0.5
	}
	for i, m := range e.Markers {
		r.Markers = append(r.Markers, RouteMarker{
			Location: m.Vec3(),
			Time:     float64(i) * r.MarkerInterval,
		})
	}
	return r, nil
}
