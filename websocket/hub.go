// Package websocket provides the WebSocket server pushing live match
// snapshots to spectator clients.
// file: websocket/hub.go
package websocket

import (
	"sync"

	"courtside/logger"
)

// Hub owns the set of spectator connections and fans broadcast
// messages out to them.
type Hub struct {
	mu          sync.Mutex
	connections map[*Connection]bool
	broadcast   chan []byte
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		connections: make(map[*Connection]bool),
		broadcast:   make(chan []byte, 64),
	}
}

// Run drains the broadcast channel; start it once in a goroutine.
func (h *Hub) Run() {
	for message := range h.broadcast {
		h.mu.Lock()
		for c := range h.connections {
			select {
			case c.send <- message:
			default:
				// slow consumer: drop this frame, the next snapshot
				// carries the full state anyway
				logger.Warn.Printf("[Hub] dropping frame for slow connection %v", c.conn.RemoteAddr())
			}
		}
		h.mu.Unlock()
	}
}

// Broadcast queues a message for every connected spectator.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		logger.Warn.Println("[Hub] broadcast queue full, dropping frame")
	}
	PublishBroadcastBacklog(len(h.broadcast))
}

// ConnectionCount reports the number of registered spectators.
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections)
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	h.connections[c] = true
	n := len(h.connections)
	h.mu.Unlock()
	logger.Info.Printf("[Hub] spectator connected (%d active)", n)
	PublishSpectatorConnections(n)
}

func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
	n := len(h.connections)
	h.mu.Unlock()
	logger.Info.Printf("[Hub] spectator disconnected (%d active)", n)
	PublishSpectatorConnections(n)
}
