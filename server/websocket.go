package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Websocket debug feed: a read-only JSON stream of world and bot state,
// broadcast a few times per second to every connected viewer.

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The feed is a local diagnostic surface; accept any origin.
		return true
	},
}

// stateMessage is one broadcast frame.
type stateMessage struct {
	Type   string      `json:"type"`
	Time   float64     `json:"time"`
	Scores [2]int      `json:"scores"`
	Flags  [2]flagView `json:"flags"`
	Bots   []botView   `json:"bots"`
}

type flagView struct {
	Team   int     `json:"team"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	AtHome bool    `json:"atHome"`
	Held   bool    `json:"held"`
}

type botView struct {
	Name     string  `json:"name"`
	Team     int     `json:"team"`
	Role     string  `json:"role"`
	Task     string  `json:"task"`
	Target   int     `json:"target"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Health   float64 `json:"health"`
	Energy   float64 `json:"energy"`
	Carrying bool    `json:"carrying"`
	Dead     bool    `json:"dead"`
}

// HandleWebSocket upgrades the connection and registers it for state
// broadcasts. The read loop exists only to notice the close.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	slog.Info("viewer connected", "remote", conn.RemoteAddr())

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
			slog.Info("viewer disconnected", "remote", conn.RemoteAddr())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// HandleStatus serves the same snapshot the websocket feed broadcasts,
// as a one-shot JSON response.
func (s *Server) HandleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	msg := s.snapshotState()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		slog.Error("status encode failed", "error", err)
	}
}

// broadcastState sends the current world snapshot to all viewers. Caller
// holds the mutex.
func (s *Server) broadcastState() {
	if len(s.clients) == 0 {
		return
	}
	msg := s.snapshotState()
	for conn := range s.clients {
		if err := conn.WriteJSON(msg); err != nil {
			delete(s.clients, conn)
			conn.Close()
		}
	}
}

// snapshotState builds one broadcast frame. Caller holds the mutex.
func (s *Server) snapshotState() stateMessage {
	msg := stateMessage{
		Type:   "state",
		Time:   s.world.now,
		Scores: s.world.scores,
	}
	for team, f := range s.world.flags {
		fi := s.world.Flag(team)
		msg.Flags[team] = flagView{
			Team:   f.team,
			X:      fi.Location.X,
			Y:      fi.Location.Y,
			AtHome: fi.AtHome,
			Held:   fi.Held,
		}
	}
	for i, b := range s.bots {
		p := s.world.pawns[i]
		msg.Bots = append(msg.Bots, botView{
			Name:     b.Config.Name,
			Team:     b.Config.Team,
			Role:     b.Config.Role.String(),
			Task:     b.State.CurrentTask.String(),
			Target:   b.State.TargetID,
			X:        p.pos.X,
			Y:        p.pos.Y,
			Z:        p.pos.Z,
			Health:   p.health,
			Energy:   p.energy,
			Carrying: p.carrying != nil,
			Dead:     p.timeOfDeath != 0,
		})
	}
	return msg
}
