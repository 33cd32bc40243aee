// Package game - game/ledger.go
// Score and foul bookkeeping. Team scores are always recomputed from
// the full roster, never incremented independently, so the
// sum-of-points invariant holds structurally.
package game

import (
	"fmt"

	"courtside/logger"
	"courtside/models"
)

// AddPoints credits delta (1, 2 or 3) to a player and recomputes the
// team total. Fouled-out players are frozen until substituted.
func (e *Engine) AddPoints(playerID string, delta int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	if delta < 1 || delta > 3 {
		return ErrBadPointValue
	}
	p, ok := e.match.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if p.Fouls >= FoulLimit {
		return ErrPlayerFouledOut
	}

	p.Points += delta
	e.match.Players[playerID] = p
	e.recomputeScoreLocked(p.Team)
	logger.Info.Printf("[AddPoints] +%d for %s (#%s), team %s now %d", delta, p.Name, p.Jersey, p.Team, e.teamScoreLocked(p.Team))
	e.commitLocked(true)
	return nil
}

// UndoPoints applies the inverse delta, clamping at zero. Corrections
// are allowed even for fouled-out players.
func (e *Engine) UndoPoints(playerID string, delta int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	if delta < 1 || delta > 3 {
		return ErrBadPointValue
	}
	p, ok := e.match.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	p.Points -= delta
	if p.Points < 0 {
		p.Points = 0
	}
	e.match.Players[playerID] = p
	e.recomputeScoreLocked(p.Team)
	e.commitLocked(true)
	return nil
}

// AddFoul records a personal foul. An on-court player's fifth foul
// pauses the clock and either auto-substitutes the only eligible bench
// player (exactly six on the roster) or raises a blocking foul
// warning; a bench player's fifth foul just records. Further fouls on
// a fouled-out player are rejected.
func (e *Engine) AddFoul(playerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	p, ok := e.match.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if p.Fouls >= FoulLimit {
		return ErrPlayerFouledOut
	}

	p.Fouls++
	e.match.Players[playerID] = p

	if p.Fouls >= FoulLimit && contains(e.match.PlayingFive(p.Team), playerID) {
		e.handleFoulOutLocked(playerID, p)
	}
	e.commitLocked(true)
	return nil
}

// handleFoulOutLocked deals with an on-court player reaching the foul
// limit. A fouled-out bench player never blocks play; they are only
// barred from coming back in.
func (e *Engine) handleFoulOutLocked(playerID string, p models.Player) {
	e.stopClockLocked()

	var rosterSize int
	var eligibleBench []string
	playing := e.match.PlayingFive(p.Team)
	for id, tp := range e.match.Players {
		if tp.Team != p.Team {
			continue
		}
		rosterSize++
		if !contains(playing, id) && tp.Fouls < FoulLimit {
			eligibleBench = append(eligibleBench, id)
		}
	}

	// six-player roster with one eligible bench player: substitution
	// is forced, so apply it immediately
	if rosterSize == PlayersOnCourt+1 && len(eligibleBench) == 1 {
		inID := eligibleBench[0]
		e.replaceOnCourtLocked(p.Team, playerID, inID)
		in := e.match.Players[inID]
		logger.Info.Printf("[AddFoul] %s fouled out, auto-substituted with %s", p.Name, in.Name)
		e.noticeLocked("autoSubstitution",
			fmt.Sprintf("%s has %d fouls and was substituted with %s", p.Name, FoulLimit, in.Name))
		return
	}

	e.match.FoulWarning = &models.FoulWarning{
		PlayerID:     playerID,
		PlayerName:   p.Name,
		Jersey:       p.Jersey,
		Team:         p.Team,
		Disqualified: rosterSize > PlayersOnCourt+1,
	}
	logger.Warn.Printf("[AddFoul] %s fouled out, match paused pending substitution", p.Name)
	e.noticeLocked("foulWarning",
		fmt.Sprintf("%s has %d fouls; substitute before resuming play", p.Name, FoulLimit))
}

// UndoFoul removes one foul, clamping at zero. Undoing the fifth foul
// clears a pending warning for that player.
func (e *Engine) UndoFoul(playerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	p, ok := e.match.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	if p.Fouls > 0 {
		p.Fouls--
	}
	e.match.Players[playerID] = p

	if e.match.FoulWarning != nil && e.match.FoulWarning.PlayerID == playerID && p.Fouls < FoulLimit {
		e.match.FoulWarning = nil
	}
	e.commitLocked(true)
	return nil
}

// Substitute swaps outID for inID on the given team's playing five.
// A fouled-out player cannot come in; substituting the warned player
// off clears the foul warning so play can resume.
func (e *Engine) Substitute(team, outID, inID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	in, ok := e.match.Players[inID]
	if !ok {
		return ErrPlayerNotFound
	}
	if in.Team != team {
		return ErrWrongTeam
	}
	if in.Fouls >= FoulLimit {
		return ErrPlayerFouledOut
	}

	playing := e.match.PlayingFive(team)
	if !contains(playing, outID) {
		return ErrNotOnCourt
	}
	if contains(playing, inID) {
		return ErrAlreadyOnCourt
	}

	e.replaceOnCourtLocked(team, outID, inID)
	out := e.match.Players[outID]
	logger.Info.Printf("[Substitute] team %s: %s off, %s on", team, out.Name, in.Name)
	e.commitLocked(true)
	return nil
}

// replaceOnCourtLocked swaps ids in place, preserving court order, and
// clears a foul warning resolved by the swap.
func (e *Engine) replaceOnCourtLocked(team, outID, inID string) {
	playing := e.match.PlayingFive(team)
	next := make([]string, len(playing))
	for i, id := range playing {
		if id == outID {
			next[i] = inID
		} else {
			next[i] = id
		}
	}
	if team == "A" {
		e.match.TeamAPlaying = next
	} else {
		e.match.TeamBPlaying = next
	}
	if e.match.FoulWarning != nil && e.match.FoulWarning.PlayerID == outID {
		e.match.FoulWarning = nil
	}
}

// recomputeScoreLocked rebuilds a team total from the roster.
func (e *Engine) recomputeScoreLocked(team string) {
	var total int
	for _, p := range e.match.Players {
		if p.Team == team {
			total += p.Points
		}
	}
	if team == "A" {
		e.match.ScoreA = total
	} else {
		e.match.ScoreB = total
	}
}

func (e *Engine) teamScoreLocked(team string) int {
	if team == "A" {
		return e.match.ScoreA
	}
	return e.match.ScoreB
}
