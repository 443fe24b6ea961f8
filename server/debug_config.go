package server

import "log/slog"

// Debug flags for various subsystems
var (
	DebugBots = false // Set to true to enable detailed task-selection logs
)

// logTaskChange logs a bot's task transitions when debugging is enabled.
func logTaskChange(botName string, from, to Task, weight float64) {
	if DebugBots {
		slog.Debug("bot task change",
			"bot", botName,
			"from", from.String(),
			"to", to.String(),
			"weight", weight,
		)
	}
}
