// file: game/helpers_test.go
//go:build unit
// +build unit

package game_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"courtside/game"
	"courtside/models"
	"courtside/store"
)

// recordingMessenger captures everything the engine publishes.
type recordingMessenger struct {
	mu        sync.Mutex
	snapshots []models.Match
	notices   []notice
}

type notice struct {
	event   string
	message string
}

func (m *recordingMessenger) BroadcastSnapshot(snap models.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots = append(m.snapshots, snap)
}

func (m *recordingMessenger) BroadcastNotice(event, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, notice{event: event, message: message})
}

func (m *recordingMessenger) noticeCount(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for _, nt := range m.notices {
		if nt.event == event {
			n++
		}
	}
	return n
}

func (m *recordingMessenger) versions() []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint64, len(m.snapshots))
	for i, s := range m.snapshots {
		out[i] = s.Version
	}
	return out
}

// newTestEngine wires an engine with in-memory storage and a fake clock.
func newTestEngine(t *testing.T) (*game.Engine, *recordingMessenger, *clockwork.FakeClock, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	msgr := &recordingMessenger{}
	fc := clockwork.NewFakeClock()
	e := game.NewEngine(mem, mem, mem, msgr, fc)
	return e, msgr, fc, mem
}

// registerRosters fills both teams during setup and returns the player
// ids in registration order.
func registerRosters(t *testing.T, e *game.Engine, countA, countB int) (idsA, idsB []string) {
	t.Helper()
	require.NoError(t, e.BeginSetup())
	require.NoError(t, e.SetTeamName("A", "Hawks"))
	require.NoError(t, e.SetTeamName("B", "Tigers"))
	for i := 0; i < countA; i++ {
		id, err := e.AddPlayer("A", fmt.Sprintf("Hawk %d", i+1), fmt.Sprintf("%d", i+4))
		require.NoError(t, err)
		idsA = append(idsA, id)
	}
	for i := 0; i < countB; i++ {
		id, err := e.AddPlayer("B", fmt.Sprintf("Tiger %d", i+1), fmt.Sprintf("%d", i+4))
		require.NoError(t, err)
		idsB = append(idsB, id)
	}
	return idsA, idsB
}

// startLiveMatch drives the full workflow into the live stage with the
// first five of each roster on court.
func startLiveMatch(t *testing.T, e *game.Engine, countA, countB int) (idsA, idsB []string) {
	t.Helper()
	idsA, idsB = registerRosters(t, e, countA, countB)
	require.NoError(t, e.ProceedToSelectFive())
	for _, id := range idsA[:5] {
		require.NoError(t, e.TogglePlayingPlayer("A", id))
	}
	for _, id := range idsB[:5] {
		require.NoError(t, e.TogglePlayingPlayer("B", id))
	}
	require.NoError(t, e.StartMatch())
	return idsA, idsB
}
