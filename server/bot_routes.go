package server

// Route running: offense bots open with a pre-recorded grab route, and
// pure route-runner bots do nothing else. Actual playback is delegated to
// the route-player collaborator; this file owns route choice, start, and
// the spawn-timing math for drill bots.

// DetermineRouteToRun picks a route uniformly at random from the bot's
// configured route names and records its start location. A bot with no
// configured routes simply can't choose one; the dependent behaviors
// no-op for the cycle.
func (b *Bot) DetermineRouteToRun() {
	if len(b.Config.RouteNames) == 0 {
		return
	}
	name := b.Config.RouteNames[b.rng.Intn(len(b.Config.RouteNames))]
	route, ok := b.routes.RouteByName(name, b.Config.Team)
	if !ok {
		return
	}
	b.State.CurrentRoute = route
	if len(route.Markers) > 0 {
		b.State.RouteStartLocation = route.Markers[0].Location
	}
	b.State.RouteState = RouteMovingToStart
}

// StartRouteFollow begins playback of the already-chosen route from its
// first marker. Idempotent per task activation.
func (b *Bot) StartRouteFollow() {
	if b.State.TaskInitialized || len(b.State.CurrentRoute.Markers) < 1 {
		return
	}
	b.routes.Play(b.State.CurrentRoute, PlaybackOptions{
		StartMarker:         0,
		ResumeAfterDamage:   false,
		StayAliveAfterEnd:   true,
		RestoreHealthOnMove: false,
	})
	b.State.TaskInitialized = true
	b.State.RouteState = RouteRunning
	b.State.CurrentTask = TaskRunningRoute
	// Task change happens here rather than in the selector's epilogue,
	// so the start time has to be stamped here too.
	b.taskStartTime = b.world.Now()
}

// RunRouteSimple runs a route in complete AFK mode, including spawning
// mid-route, and never exits early. Used by pure route-runner bots.
func (b *Bot) RunRouteSimple() {
	if b.State.TaskInitialized || len(b.Config.RouteNames) < 1 {
		return
	}
	name := b.Config.RouteNames[b.rng.Intn(len(b.Config.RouteNames))]
	route, ok := b.routes.RouteByName(name, b.Config.Team)
	if !ok {
		return
	}

	startMarker := 0
	switch b.Config.SpawnTiming {
	case SpawnSecondsBeforeGrab:
		if route.GrabTime >= b.Config.SpawnDelay && route.MarkerInterval > 0 {
			spawnAt := route.GrabTime - b.Config.SpawnDelay
			startMarker = int(spawnAt / route.MarkerInterval)
			// Add some randomness to when they spawn.
			startMarker -= b.rng.Intn(9)
		}
	case SpawnSecondsIntoRoute:
		if route.MarkerInterval > 0 {
			startMarker = int(b.Config.SpawnDelay / route.MarkerInterval)
			startMarker -= b.rng.Intn(9)
		}
	}
	// Make sure the index is still valid after the randomness.
	if startMarker < 0 {
		startMarker = 0
	}
	if startMarker > len(route.Markers)-1 {
		startMarker = len(route.Markers) - 1
	}

	b.routes.Play(route, PlaybackOptions{
		StartMarker:         startMarker,
		ResumeAfterDamage:   !b.Config.AlwaysFollowPath,
		StayAliveAfterEnd:   false,
		RestoreHealthOnMove: !b.Config.TakesDamage,
	})
	b.State.CurrentRoute = route
	b.State.TaskInitialized = true
}

// OnRouteFinished is invoked by the route player when playback reaches
// the final marker with the stay-alive option set.
func (b *Bot) OnRouteFinished() {
	if b.State.RouteState == RouteRunning {
		b.State.RouteState = RouteFinished
	}
}
