package server

import "github.com/lab1702/arena-ctf/game"

// Route playback host. Routes are recorded as markers at a uniform time
// interval, so playback is pure interpolation along the marker list. One
// player per pawn.

// routeLibrary holds all recorded routes loaded from config.
type routeLibrary struct {
	routes []Route
}

func newRouteLibrary(entries []RouteEntry) (*routeLibrary, error) {
	lib := &routeLibrary{}
	for _, e := range entries {
		r, err := e.Route()
		if err != nil {
			return nil, err
		}
		lib.routes = append(lib.routes, r)
	}
	return lib, nil
}

func (l *routeLibrary) byName(name string, team int) (Route, bool) {
	for _, r := range l.routes {
		if r.Name == name && r.Team == team {
			return r, true
		}
	}
	return Route{}, false
}

// simRoutePlayer drags a pawn along a route's markers. While playing it
// owns the pawn's position outright; the pawn's own physics still runs
// but is overwritten each frame.
type simRoutePlayer struct {
	lib  *routeLibrary
	pawn *simPawn

	playing bool
	route   Route
	opts    PlaybackOptions
	elapsed float64
	marker  int

	// onFinished fires once when playback reaches the last marker.
	onFinished func(opts PlaybackOptions)
}

func newSimRoutePlayer(lib *routeLibrary, pawn *simPawn) *simRoutePlayer {
	return &simRoutePlayer{lib: lib, pawn: pawn}
}

func (rp *simRoutePlayer) RouteByName(name string, team int) (Route, bool) {
	return rp.lib.byName(name, team)
}

func (rp *simRoutePlayer) Play(route Route, opts PlaybackOptions) {
	if len(route.Markers) == 0 {
		return
	}
	rp.playing = true
	rp.route = route
	rp.opts = opts
	rp.elapsed = 0
	rp.marker = opts.StartMarker
	if rp.marker < 0 {
		rp.marker = 0
	}
	if rp.marker > len(route.Markers)-1 {
		rp.marker = len(route.Markers) - 1
	}
	rp.pawn.pos = route.Markers[rp.marker].Location
	rp.pawn.vel = game.Vec3{}
}

func (rp *simRoutePlayer) Stop() {
	rp.playing = false
}

func (rp *simRoutePlayer) CurrentMarker() int {
	return rp.marker
}

// step advances playback by dt, interpolating the pawn between markers.
func (rp *simRoutePlayer) step(dt float64) {
	if !rp.playing {
		return
	}
	if rp.pawn.timeOfDeath != 0 {
		// Playback pauses while dead; a fresh Play restarts it.
		if !rp.opts.ResumeAfterDamage {
			rp.playing = false
		}
		return
	}
	interval := rp.route.MarkerInterval
	if interval <= 0 {
		rp.finish()
		return
	}
	rp.elapsed += dt

	idx := rp.opts.StartMarker + int(rp.elapsed/interval)
	last := len(rp.route.Markers) - 1
	if idx >= last {
		rp.marker = last
		rp.pawn.pos = rp.route.Markers[last].Location
		rp.pawn.vel = game.Vec3{}
		rp.finish()
		return
	}
	rp.marker = idx

	// Interpolate between the current marker and the next one.
	frac := rp.elapsed/interval - float64(idx-rp.opts.StartMarker)
	from := rp.route.Markers[idx].Location
	to := rp.route.Markers[idx+1].Location
	step := to.Sub(from)
	rp.pawn.pos = from.Add(step.Scale(frac))
	rp.pawn.vel = step.Scale(1 / interval)

	if rp.opts.RestoreHealthOnMove {
		rp.pawn.health = simMaxHealth
	}
}

func (rp *simRoutePlayer) finish() {
	rp.playing = false
	if rp.onFinished != nil {
		rp.onFinished(rp.opts)
	}
}
