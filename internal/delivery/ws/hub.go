package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans pipeline progress out to the pages watching a session. A session
// nobody watches costs nothing: events to it are dropped.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[sessionID]; !ok {
		h.sessions[sessionID] = make(map[*websocket.Conn]bool)
	}

	h.sessions[sessionID][conn] = true
	log.Printf("[hub] register session=%s conns=%d", sessionID, len(h.sessions[sessionID]))
}

func (h *Hub) Unregister(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		conn.Close()
		log.Printf("[hub] unregister session=%s conns=%d", sessionID, len(conns))
	}

	if len(conns) == 0 {
		delete(h.sessions, sessionID)
	}
}

// Publish pushes one stage event to every connection watching the session.
func (h *Hub) Publish(sessionID, stage string) {
	msg, _ := json.Marshal(map[string]string{
		"session_id": sessionID,
		"stage":      stage,
	})

	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.sessions[sessionID] {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("[hub] send session=%s: %v", sessionID, err)
		}
	}
}

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}
