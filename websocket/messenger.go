// Package websocket - websocket/messenger.go
// file: websocket/messenger.go
package websocket

import (
	"encoding/json"

	"courtside/logger"
	"courtside/models"
)

// SnapshotEnvelope is the wire frame carrying a full match record.
// Clients compare Version against the last frame they applied and
// drop anything older or equal.
type SnapshotEnvelope struct {
	Action  string       `json:"action"`
	Version uint64       `json:"version"`
	Match   models.Match `json:"match"`
}

// NoticeEnvelope is the wire frame for short out-of-band events.
type NoticeEnvelope struct {
	Action  string `json:"action"`
	Event   string `json:"event"`
	Message string `json:"message"`
}

func snapshotEnvelope(m models.Match) SnapshotEnvelope {
	return SnapshotEnvelope{Action: "snapshot", Version: m.Version, Match: m}
}

// HubMessenger adapts the hub to the engine's messenger interface.
type HubMessenger struct {
	hub *Hub
}

// NewHubMessenger wraps the hub.
func NewHubMessenger(hub *Hub) *HubMessenger {
	return &HubMessenger{hub: hub}
}

// BroadcastSnapshot fans the full record out to every spectator.
func (hm *HubMessenger) BroadcastSnapshot(m models.Match) {
	out, err := json.Marshal(snapshotEnvelope(m))
	if err != nil {
		logger.Error.Printf("[BroadcastSnapshot] marshal error: %v", err)
		return
	}
	hm.hub.Broadcast(out)
}

// BroadcastNotice fans a short event out to every spectator.
func (hm *HubMessenger) BroadcastNotice(event, message string) {
	out, err := json.Marshal(NoticeEnvelope{Action: "notice", Event: event, Message: message})
	if err != nil {
		logger.Error.Printf("[BroadcastNotice] marshal error: %v", err)
		return
	}
	hm.hub.Broadcast(out)
}
