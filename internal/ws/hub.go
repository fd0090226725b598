package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Message is the envelope pushed to session watchers. Token carries the sync
// token of the mutation that triggered the push, so clients can match pushes
// against writes they have already confirmed.
type Message struct {
	Type  string      `json:"type"`
	Token string      `json:"token,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

type Hub struct {
	mu       sync.RWMutex
	sessions map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(sessionID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[*websocket.Conn]bool)
	}
	h.sessions[sessionID][conn] = true
	log.Printf("ws: watcher joined session %d (total: %d)", sessionID, len(h.sessions[sessionID]))
}

func (h *Hub) RemoveConnection(sessionID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.sessions[sessionID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.sessions, sessionID)
		}
		log.Printf("ws: watcher left session %d", sessionID)
	}
}

// CloseSession drops every watcher of a session. Used when the session is
// deleted so clients do not hang on a dead stream.
func (h *Hub) CloseSession(sessionID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.sessions[sessionID] {
		conn.Close()
	}
	delete(h.sessions, sessionID)
}

func (h *Hub) Broadcast(sessionID uint, message Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
