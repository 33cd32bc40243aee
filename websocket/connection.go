// Package websocket - websocket/connection.go
// file: websocket/connection.go
package websocket

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"courtside/logger"
	"courtside/models"
)

// StateProvider supplies the current match record to new or catching-up
// clients. The game engine satisfies this.
type StateProvider interface {
	Snapshot() models.Match
}

// WSConn is an interface for the WebSocket connection.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Connection represents a single spectator WebSocket connection.
type Connection struct {
	hub      *Hub
	provider StateProvider
	conn     WSConn
	send     chan []byte
}

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// Upgrader upgrades HTTP requests to WebSocket connections.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The scoreboard is public read-only; any origin may subscribe.
		return true
	},
}

// ClientMessage is the JSON structure of inbound client messages.
// Spectators only ever ask for a fresh snapshot; all mutations go
// through the authenticated HTTP API.
type ClientMessage struct {
	Action string `json:"action"`
}

// ServeWs upgrades the HTTP request and starts the read and write pumps.
// The current snapshot is queued immediately so the client renders
// without waiting for the next mutation.
func ServeWs(hub *Hub, provider StateProvider, w http.ResponseWriter, r *http.Request) {
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error.Printf("[ServeWs] WebSocket upgrade error: %v", err)
		return
	}
	logger.Info.Printf("[ServeWs] Upgraded to WS: remoteAddr=%v", r.RemoteAddr)

	c := &Connection{
		hub:      hub,
		provider: provider,
		conn:     wsConn,
		send:     make(chan []byte, 256),
	}
	hub.register(c)
	c.queueSnapshot()

	go c.readPump()
	go c.writePump()
}

// queueSnapshot puts the current record on this connection's send queue.
func (c *Connection) queueSnapshot() {
	if c.provider == nil {
		return
	}
	out, err := json.Marshal(snapshotEnvelope(c.provider.Snapshot()))
	if err != nil {
		logger.Error.Printf("[queueSnapshot] marshal error: %v", err)
		return
	}
	select {
	case c.send <- out:
	default:
		logger.Warn.Printf("[queueSnapshot] send queue full for %v", c.conn.RemoteAddr())
	}
}

// readPump handles inbound messages from the client.
func (c *Connection) readPump() {
	defer func() {
		c.hub.unregister(c)
		if err := c.conn.Close(); err != nil {
			return
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			logger.Warn.Printf("[readPump] Read error from %v: %v", c.conn.RemoteAddr(), err)
			break
		}
		if messageType != websocket.TextMessage {
			logger.Debug.Printf("[readPump] Ignoring non-text messageType=%d", messageType)
			continue
		}

		var cm ClientMessage
		if err := json.Unmarshal(message, &cm); err != nil {
			logger.Warn.Printf("[readPump] Invalid JSON from %v: %v", c.conn.RemoteAddr(), err)
			continue
		}
		c.handleIncoming(cm)
	}
}

// handleIncoming processes an inbound JSON message.
func (c *Connection) handleIncoming(cm ClientMessage) {
	switch cm.Action {
	case "requestSnapshot":
		logger.Debug.Printf("[handleIncoming] snapshot requested by %v", c.conn.RemoteAddr())
		c.queueSnapshot()
	default:
		logger.Debug.Printf("[handleIncoming] Unhandled action: %s", cm.Action)
	}
}

// writePump handles outbound messages to the client, including periodic pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			return
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				// The channel was closed.
				logger.Debug.Printf("[writePump] Send channel closed for %v", c.conn.RemoteAddr())
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn.Printf("[writePump] Error writing to %v: %v", c.conn.RemoteAddr(), err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Warn.Printf("[writePump] Ping error for %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		}
	}
}
