package game

import "time"

// World constants. Distances are in world units (roughly centimeters),
// matching the scale all AI tuning thresholds are expressed in.
const (
	// Arena dimensions
	ArenaWidth  = 60000.0
	ArenaLength = 120000.0

	// Game timing
	FPS            = 20
	UpdateInterval = time.Second / FPS

	// TaskInterval is how often each bot re-evaluates what it should be
	// doing. Deliberately much slower than the frame rate; the per-frame
	// loop only executes the already-committed task.
	TaskInterval = 500 * time.Millisecond
)

// Team IDs
const (
	TeamRed  = 0
	TeamBlue = 1
)

// OtherTeam returns the opposing team ID.
func OtherTeam(team int) int {
	if team == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// FlagState is the derived 4-way summary of where both flags are.
type FlagState int

const (
	FlagsBothHome FlagState = iota
	FlagEnemyTakenFriendlySafe
	FlagFriendlyTakenEnemyHome
	FlagStandoff
)

func (f FlagState) String() string {
	switch f {
	case FlagsBothHome:
		return "BothHome"
	case FlagEnemyTakenFriendlySafe:
		return "EnemyTakenFriendlySafe"
	case FlagFriendlyTakenEnemyHome:
		return "FriendlyTakenEnemyHome"
	case FlagStandoff:
		return "Standoff"
	}
	return "Unknown"
}

// DeriveFlagState computes the flag state from both teams' home status.
func DeriveFlagState(enemyFlagHome, friendlyFlagHome bool) FlagState {
	switch {
	case enemyFlagHome && friendlyFlagHome:
		return FlagsBothHome
	case !enemyFlagHome && friendlyFlagHome:
		return FlagEnemyTakenFriendlySafe
	case enemyFlagHome && !friendlyFlagHome:
		return FlagFriendlyTakenEnemyHome
	default:
		return FlagStandoff
	}
}
