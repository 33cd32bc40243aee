// file: websocket/messenger_test.go
//go:build unit
// +build unit

package websocket

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
)

// stubConn satisfies WSConn for tests that never touch the network.
type stubConn struct{}

func (stubConn) WriteMessage(int, []byte) error    { return nil }
func (stubConn) SetWriteDeadline(time.Time) error  { return nil }
func (stubConn) ReadMessage() (int, []byte, error) { return 0, nil, nil }
func (stubConn) Close() error                      { return nil }
func (stubConn) RemoteAddr() net.Addr              { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)} }
func (stubConn) SetReadLimit(int64)                {}
func (stubConn) SetReadDeadline(time.Time) error   { return nil }
func (stubConn) SetPongHandler(func(string) error) {}

func newTestConnection(h *Hub, buffer int) *Connection {
	c := &Connection{hub: h, conn: stubConn{}, send: make(chan []byte, buffer)}
	h.register(c)
	return c
}

func receive(t *testing.T, c *Connection) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for broadcast frame")
		return nil
	}
}

func TestBroadcastSnapshot_CarriesVersion(t *testing.T) {
	h := NewHub()
	go h.Run()
	c := newTestConnection(h, 4)

	NewHubMessenger(h).BroadcastSnapshot(models.Match{TeamA: "Hawks", Version: 42})

	var env SnapshotEnvelope
	require.NoError(t, json.Unmarshal(receive(t, c), &env))
	assert.Equal(t, "snapshot", env.Action)
	assert.Equal(t, uint64(42), env.Version)
	assert.Equal(t, "Hawks", env.Match.TeamA)
}

func TestBroadcastNotice_Envelope(t *testing.T) {
	h := NewHub()
	go h.Run()
	c := newTestConnection(h, 4)

	NewHubMessenger(h).BroadcastNotice("periodExpired", "period clock reached zero")

	var env NoticeEnvelope
	require.NoError(t, json.Unmarshal(receive(t, c), &env))
	assert.Equal(t, "notice", env.Action)
	assert.Equal(t, "periodExpired", env.Event)
	assert.Equal(t, "period clock reached zero", env.Message)
}

func TestBroadcast_ReachesEveryConnection(t *testing.T) {
	h := NewHub()
	go h.Run()
	c1 := newTestConnection(h, 4)
	c2 := newTestConnection(h, 4)

	NewHubMessenger(h).BroadcastSnapshot(models.Match{Version: 1})

	assert.NotNil(t, receive(t, c1))
	assert.NotNil(t, receive(t, c2))
	assert.Equal(t, 2, h.ConnectionCount())
}

func TestBroadcast_SlowConsumerDropsFrameNotConnection(t *testing.T) {
	h := NewHub()
	go h.Run()
	slow := newTestConnection(h, 1)

	hm := NewHubMessenger(h)
	hm.BroadcastSnapshot(models.Match{Version: 1})
	hm.BroadcastSnapshot(models.Match{Version: 2})
	hm.BroadcastSnapshot(models.Match{Version: 3})

	// only the first frame fit; the connection itself survives
	var env SnapshotEnvelope
	require.NoError(t, json.Unmarshal(receive(t, slow), &env))
	assert.Equal(t, uint64(1), env.Version)
	assert.Equal(t, 1, h.ConnectionCount())
}

func TestUnregister_ClosesSendChannel(t *testing.T) {
	h := NewHub()
	c := newTestConnection(h, 1)
	require.Equal(t, 1, h.ConnectionCount())

	h.unregister(c)
	assert.Equal(t, 0, h.ConnectionCount())

	_, open := <-c.send
	assert.False(t, open)
}
