// Package models defines data structures shared across the application.
// File: models/match.go
package models

// ----------------------- stage model -----------------------

// Stage identifies where the scoring console is in the match workflow.
type Stage string

// Workflow stages, in forward order.
const (
	StageMenu       Stage = "menu"
	StageSetup      Stage = "setup"
	StageSelectFive Stage = "selectPlaying5"
	StageMatch      Stage = "match"
)

// ----------------------- player model -----------------------

// Player is one roster entry. Points and fouls accumulate over the
// whole match; team is "A" or "B".
type Player struct {
	Name   string `json:"name"`
	Jersey string `json:"jersey"`
	Team   string `json:"team"`
	Points int    `json:"points"`
	Fouls  int    `json:"fouls"`
}

// QuarterScore is the running score snapshotted at a period boundary.
type QuarterScore struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

// FoulWarning blocks play after a fifth foul until the scorer resolves
// it with a substitution.
type FoulWarning struct {
	PlayerID     string `json:"playerId"`
	PlayerName   string `json:"playerName"`
	Jersey       string `json:"jersey"`
	Team         string `json:"team"`
	Disqualified bool   `json:"disqualified"`
}

// ----------------------- match record -----------------------

// Match is the single shared record describing the live game. ScoreA
// and ScoreB are derived from player points and never written
// independently. Version increases by one on every mutation so
// subscribers can drop stale snapshots.
type Match struct {
	TeamA string `json:"teamA"`
	TeamB string `json:"teamB"`

	ScoreA int `json:"scoreA"`
	ScoreB int `json:"scoreB"`

	Quarter         int  `json:"quarter"`         // 1..4, 5..9 in overtime
	IsOvertime      bool `json:"isOvertime"`      // quarters 5+ are OT periods
	QuarterDuration int  `json:"quarterDuration"` // minutes per period
	TimerSeconds    int  `json:"timerSeconds"`
	IsRunning       bool `json:"isRunning"`

	Stage Stage `json:"matchStage"`

	Players      map[string]Player `json:"players"`
	TeamAPlaying []string          `json:"teamAPlaying"`
	TeamBPlaying []string          `json:"teamBPlaying"`

	// q1..q4 and ot1..ot5 keys, written when the period ends.
	QuarterScores map[string]QuarterScore `json:"quarterScores"`

	// "teamA"/"teamB" -> period key -> timeouts remaining.
	Timeouts map[string]map[string]int `json:"timeouts"`

	TimeoutActive      bool   `json:"timeoutActive"`
	TimeoutTeam        string `json:"timeoutTeam,omitempty"`
	TimeoutSecondsLeft int    `json:"timeoutSecondsLeft"`

	FoulWarning *FoulWarning `json:"foulWarning,omitempty"`

	// Fixture link, set when the match was scheduled in advance.
	ScheduleID    string `json:"scheduleId,omitempty"`
	MatchType     string `json:"matchType,omitempty"`
	Court         string `json:"court,omitempty"`
	ScheduledDate string `json:"scheduledDate,omitempty"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
	RoundType     string `json:"roundType,omitempty"`

	Version     uint64 `json:"version"`
	LastUpdated int64  `json:"lastUpdated"` // unix millis, observability only
}

// Clone returns a deep copy so snapshots can leave the engine's mutex.
func (m *Match) Clone() Match {
	out := *m

	out.Players = make(map[string]Player, len(m.Players))
	for id, p := range m.Players {
		out.Players[id] = p
	}

	out.TeamAPlaying = append([]string(nil), m.TeamAPlaying...)
	out.TeamBPlaying = append([]string(nil), m.TeamBPlaying...)

	out.QuarterScores = make(map[string]QuarterScore, len(m.QuarterScores))
	for k, qs := range m.QuarterScores {
		out.QuarterScores[k] = qs
	}

	out.Timeouts = make(map[string]map[string]int, len(m.Timeouts))
	for team, byPeriod := range m.Timeouts {
		cp := make(map[string]int, len(byPeriod))
		for k, n := range byPeriod {
			cp[k] = n
		}
		out.Timeouts[team] = cp
	}

	if m.FoulWarning != nil {
		fw := *m.FoulWarning
		out.FoulWarning = &fw
	}
	return out
}

// PlayingFive returns the on-court list for the given team ("A"/"B").
func (m *Match) PlayingFive(team string) []string {
	if team == "A" {
		return m.TeamAPlaying
	}
	return m.TeamBPlaying
}

// ----------------------- archive model -----------------------

// PastMatch is the append-only archive copy written when a finished
// match is saved.
type PastMatch struct {
	ID            string                  `json:"id"`
	TeamA         string                  `json:"teamA"`
	TeamB         string                  `json:"teamB"`
	ScoreA        int                     `json:"scoreA"`
	ScoreB        int                     `json:"scoreB"`
	Quarter       int                     `json:"quarter"`
	IsOvertime    bool                    `json:"isOvertime"`
	QuarterScores map[string]QuarterScore `json:"quarterScores"`
	Players       map[string]Player       `json:"players"`
	TeamAPlaying  []string                `json:"teamAPlaying"`
	TeamBPlaying  []string                `json:"teamBPlaying"`
	Date          string                  `json:"date"` // RFC 3339
	Timestamp     int64                   `json:"timestamp"`
}

// ----------------------- schedule model -----------------------

// Fixture lifecycle states.
const (
	ScheduleUpcoming  = "upcoming"
	ScheduleLive      = "live"
	ScheduleCompleted = "completed"
)

// ScheduledMatch is a pre-announced fixture.
type ScheduledMatch struct {
	ID            string `json:"id"`
	TeamA         string `json:"teamA"`
	TeamB         string `json:"teamB"`
	MatchType     string `json:"matchType"`
	Court         string `json:"court"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	RoundType     string `json:"roundType"`
	Status        string `json:"status"`
	HasScore      bool   `json:"hasScore"`
	FinalScoreA   int    `json:"finalScoreA,omitempty"`
	FinalScoreB   int    `json:"finalScoreB,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
	LiveStartedAt int64  `json:"liveStartedAt,omitempty"`
	CompletedAt   int64  `json:"completedAt,omitempty"`
}
