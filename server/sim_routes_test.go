package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab1702/arena-ctf/game"
)

func TestRouteLibraryLookup(t *testing.T) {
	lib, err := newRouteLibrary([]RouteEntry{
		{Name: "left", Team: "red", MarkerInterval: 0.5, Markers: []Position{{X: 0}, {X: 1000}}},
		{Name: "left", Team: "blue", MarkerInterval: 0.5, Markers: []Position{{X: 0}, {X: -1000}}},
	})
	require.NoError(t, err)

	red, ok := lib.byName("left", game.TeamRed)
	require.True(t, ok)
	assert.Equal(t, 1000.0, red.Markers[1].Location.X)

	blue, ok := lib.byName("left", game.TeamBlue)
	require.True(t, ok)
	assert.Equal(t, -1000.0, blue.Markers[1].Location.X)

	_, ok = lib.byName("missing", game.TeamRed)
	assert.False(t, ok)
}

func playbackRoute() Route {
	markers := make([]RouteMarker, 5)
	for i := range markers {
		markers[i] = RouteMarker{Location: game.Vec3{X: float64(i) * 1000}, Time: float64(i) * 0.5}
	}
	return Route{Name: "r", Team: game.TeamRed, Markers: markers, MarkerInterval: 0.5}
}

func TestSimRoutePlayerInterpolates(t *testing.T) {
	w := newSimWorld(testArena())
	pawn := newSimPawn("bot", game.TeamRed, game.Vec3{})
	w.addPawn(pawn)
	rp := newSimRoutePlayer(&routeLibrary{}, pawn)

	rp.Play(playbackRoute(), PlaybackOptions{})
	assert.Equal(t, game.Vec3{}, pawn.Position(), "playback starts at the first marker")

	// Half a marker interval in: halfway between markers 0 and 1.
	rp.step(0.25)
	assert.InDelta(t, 500.0, pawn.pos.X, 1e-9)
	assert.Equal(t, 0, rp.CurrentMarker())
	assert.InDelta(t, 2000.0, pawn.vel.X, 1e-9, "velocity reflects marker spacing")

	rp.step(0.5)
	assert.InDelta(t, 1500.0, pawn.pos.X, 1e-9)
	assert.Equal(t, 1, rp.CurrentMarker())
}

func TestSimRoutePlayerFinishes(t *testing.T) {
	w := newSimWorld(testArena())
	pawn := newSimPawn("bot", game.TeamRed, game.Vec3{})
	w.addPawn(pawn)
	rp := newSimRoutePlayer(&routeLibrary{}, pawn)

	var finished []PlaybackOptions
	rp.onFinished = func(opts PlaybackOptions) { finished = append(finished, opts) }

	rp.Play(playbackRoute(), PlaybackOptions{StayAliveAfterEnd: true})
	rp.step(10)

	require.Len(t, finished, 1)
	assert.True(t, finished[0].StayAliveAfterEnd)
	assert.False(t, rp.playing)
	assert.Equal(t, 4000.0, pawn.pos.X, "pawn parked on the final marker")

	// A finished player stays idle.
	rp.step(1)
	assert.Len(t, finished, 1)
}

func TestSimRoutePlayerStartMarker(t *testing.T) {
	w := newSimWorld(testArena())
	pawn := newSimPawn("bot", game.TeamRed, game.Vec3{})
	w.addPawn(pawn)
	rp := newSimRoutePlayer(&routeLibrary{}, pawn)

	rp.Play(playbackRoute(), PlaybackOptions{StartMarker: 2})
	assert.Equal(t, 2000.0, pawn.pos.X)

	rp.step(0.25)
	assert.InDelta(t, 2500.0, pawn.pos.X, 1e-9)
}

func TestSimRoutePlayerPausesWhileDead(t *testing.T) {
	w := newSimWorld(testArena())
	pawn := newSimPawn("bot", game.TeamRed, game.Vec3{})
	w.addPawn(pawn)
	rp := newSimRoutePlayer(&routeLibrary{}, pawn)

	rp.Play(playbackRoute(), PlaybackOptions{ResumeAfterDamage: true})
	pawn.timeOfDeath = 5

	rp.step(0.5)
	assert.True(t, rp.playing, "resumable playback survives death")
	assert.Equal(t, 0.0, pawn.pos.X, "no movement while dead")

	// Without the resume option, death ends the run.
	rp.Play(playbackRoute(), PlaybackOptions{})
	rp.step(0.5)
	assert.False(t, rp.playing)
}
