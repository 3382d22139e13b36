// Package ws exposes the deck to host-level UI and tooling over
// WebSockets: a control socket for commands, a state socket broadcasting
// the deck snapshot, and a health endpoint.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/LiamKula/ICS-685-3D/internal/app"
)

type State struct {
	core *app.Core

	mu        sync.RWMutex
	clients   map[*websocket.Conn]bool
	startTime time.Time
}

func NewState(core *app.Core) *State {
	return &State{
		core:      core,
		clients:   map[*websocket.Conn]bool{},
		startTime: time.Now(),
	}
}

// RunBroadcastLoop pushes the deck snapshot to all state clients at the
// given rate. Blocks; run on its own goroutine.
func (s *State) RunBroadcastLoop(fps int) {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for range ticker.C {
		s.broadcast(s.core.Snapshot())
	}
}

func (s *State) HandleStateWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *State) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.applyControl(msg)
		s.sendSnapshot(conn)
	}
}

func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.core.Snapshot()
	resp := map[string]any{
		"uptime_s": time.Since(s.startTime).Seconds(),
		"deck":     snap,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// applyControl dispatches recognized commands; unknown keys are ignored.
// The core serializes them against the frame tick.
func (s *State) applyControl(msg map[string]any) {
	if v, ok := msg["gotoSlide"].(float64); ok {
		s.core.GoToSlide(int(v))
	}
	if v, ok := msg["autofillPanels"].(bool); ok && v {
		s.core.AutoFillPanels()
	}
}

func (s *State) sendSnapshot(conn *websocket.Conn) {
	b, _ := json.Marshal(s.core.Snapshot())
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func (s *State) broadcast(snap app.Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.clients) == 0 {
		return
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write state")
		}
	}
}
