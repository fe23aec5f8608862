// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"log/slog"
	"time"

	"github.com/danielhkuo/sudoku-arena/models"
)

// EndTimer is the timer-expiry trigger. It is normally fired by the
// session's own expiry timer; a client END_TIMER frame lands here too, with
// the ended flag as the backstop against double finalization.
func (s *Session) EndTimer(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		if p := s.slotByUser(userID); p != nil {
			p.send(models.TypeOnly{Type: models.GameAlreadyEnded})
		}
		return
	}

	s.endTimerLocked()
}

// SendReaction relays an emoji reaction to the opponent's live connection.
// No persistence, no state change, best-effort.
func (s *Session) SendReaction(userID string, reactionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.slotByUser(userID)
	if p == nil {
		return
	}
	opp := s.opponentOf(p)
	if opp == nil {
		return
	}

	reaction, ok := reactionByID(reactionID)
	if !ok {
		return
	}

	opp.send(models.OpponentReactionMsg{
		Type:     models.OpponentReaction,
		Reaction: reaction,
	})
}

// endLocked finishes the match with an unconditional winner: the board
// completion and mistake exhaustion triggers. Caller holds mu.
func (s *Session) endLocked(winner *player, reason string) {
	if s.ended {
		return
	}
	s.ended = true
	if s.timer != nil {
		s.timer.Stop()
	}

	if winner == nil || s.joiner == nil {
		return
	}

	elapsed := time.Since(s.startTime)
	s.creator.timeTaken = elapsed
	s.joiner.timeTaken = elapsed

	loser := s.opponentOf(winner)

	slog.Info("match ended", "match_id", s.id, "reason", reason, "winner", winner.profile.ID)

	// Notify first; durability is best-effort behind the notifications.
	winner.send(s.resultMsg(winner, loser, winner.role, reason))
	loser.send(s.resultMsg(loser, winner, winner.role, reason))

	s.finalizeAsync(winner.profile.ID, loser.profile.ID, false)
}

// endTimerLocked finishes the match on timer expiry: higher completion
// percentage wins, ties fall to fewer mistakes, equal both is a draw.
// Caller holds mu.
func (s *Session) endTimerLocked() {
	if s.ended || !s.started {
		return
	}
	s.ended = true
	if s.timer != nil {
		s.timer.Stop()
	}

	if s.joiner == nil {
		return
	}

	s.creator.timeTaken = s.duration
	s.joiner.timeTaken = s.duration

	winner := models.WinnerDraw
	switch {
	case s.creator.percent > s.joiner.percent:
		winner = models.RoleCreator
	case s.creator.percent < s.joiner.percent:
		winner = models.RoleJoiner
	case s.creator.mistakes < s.joiner.mistakes:
		winner = models.RoleCreator
	case s.creator.mistakes > s.joiner.mistakes:
		winner = models.RoleJoiner
	}

	slog.Info("match ended", "match_id", s.id, "reason", models.TimerComplete, "winner", winner)

	s.creator.send(s.resultMsg(s.creator, s.joiner, winner, models.TimerComplete))
	s.joiner.send(s.resultMsg(s.joiner, s.creator, winner, models.TimerComplete))

	switch winner {
	case models.RoleCreator:
		s.finalizeAsync(s.creator.profile.ID, s.joiner.profile.ID, false)
	case models.RoleJoiner:
		s.finalizeAsync(s.joiner.profile.ID, s.creator.profile.ID, false)
	default:
		s.finalizeAsync(s.creator.profile.ID, s.joiner.profile.ID, true)
	}
}

func (s *Session) resultMsg(me, opp *player, winner, reason string) models.GameEndedMsg {
	return models.GameEndedMsg{
		Type: models.GameEnded,
		Result: models.GameResult{
			Winner:                     winner,
			YourPercentageComplete:     me.percent,
			OpponentPercentageComplete: opp.percent,
			YourMistakes:               me.mistakes,
			OpponentMistakes:           opp.mistakes,
			YourTimeTaken:              me.timeTaken.Milliseconds(),
			OpponentTimeTaken:          opp.timeTaken.Milliseconds(),
			GameEndReason:              reason,
		},
	}
}

// finalizeAsync issues the one durable finalize write. Failures are logged,
// never retried, and never block the notifications already sent.
func (s *Session) finalizeAsync(winnerID, loserID string, draw bool) {
	matchID := s.id
	go func() {
		if err := s.store.FinalizeMatch(matchID, winnerID, loserID, draw); err != nil {
			slog.Error("failed to finalize match", "match_id", matchID, "error", err)
		}
	}()
}
