// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"testing"
	"time"

	"github.com/danielhkuo/sudoku-arena/models"
	"github.com/danielhkuo/sudoku-arena/testutil"
)

func TestTimerExpiryPercentageWins(t *testing.T) {
	f := newFixture(t, 0, 1, 2, 3)
	f.start(t)

	f.session.VerifyValue("alice", 0, solutionDigit(0))
	f.session.EndTimer("bob")

	last := f.creator.Sent()[len(f.creator.Sent())-1]
	result := last.(models.GameEndedMsg).Result
	if result.Winner != models.RoleCreator {
		t.Errorf("Expected higher percentage to win, got winner %q", result.Winner)
	}
	if result.GameEndReason != models.TimerComplete {
		t.Errorf("Expected reason %s, got %s", models.TimerComplete, result.GameEndReason)
	}
	if result.YourPercentageComplete != 25 || result.OpponentPercentageComplete != 0 {
		t.Errorf("Unexpected percentages: %d vs %d",
			result.YourPercentageComplete, result.OpponentPercentageComplete)
	}
	if result.YourTimeTaken != (10 * time.Minute).Milliseconds() {
		t.Errorf("Expected time taken to equal the full game duration, got %d ms", result.YourTimeTaken)
	}

	waitFor(t, func() bool {
		fin := f.store.Finalized()
		return len(fin) == 1 && fin[0].WinnerID == "alice" && fin[0].LoserID == "bob" && !fin[0].Draw
	})
}

func TestTimerExpiryMistakesBreakTie(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	// Equal progress, bob has the only mistake.
	f.session.VerifyValue("bob", 0, wrongDigit(0))
	f.session.EndTimer("alice")

	last := f.joiner.Sent()[len(f.joiner.Sent())-1]
	result := last.(models.GameEndedMsg).Result
	if result.Winner != models.RoleCreator {
		t.Errorf("Expected fewer mistakes to win the tie, got winner %q", result.Winner)
	}

	waitFor(t, func() bool {
		fin := f.store.Finalized()
		return len(fin) == 1 && fin[0].WinnerID == "alice" && !fin[0].Draw
	})
}

func TestTimerExpiryDraw(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.session.EndTimer("alice")

	for name, conn := range map[string]*testutil.FakeConn{"creator": f.creator, "joiner": f.joiner} {
		last := conn.Sent()[len(conn.Sent())-1]
		result := last.(models.GameEndedMsg).Result
		if result.Winner != models.WinnerDraw {
			t.Errorf("Expected %s to see a draw, got %q", name, result.Winner)
		}
	}

	waitFor(t, func() bool {
		fin := f.store.Finalized()
		return len(fin) == 1 && fin[0].Draw
	})
}

func TestEndTimerTwice(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.session.EndTimer("alice")
	f.creator.Reset()
	f.session.EndTimer("alice")

	if got := f.creator.LastType(t); got != models.GameAlreadyEnded {
		t.Errorf("Expected %s on a second end, got %s", models.GameAlreadyEnded, got)
	}
	waitFor(t, func() bool { return len(f.store.Finalized()) >= 1 })
	if n := len(f.store.Finalized()); n != 1 {
		t.Errorf("Expected exactly one finalize write, got %d", n)
	}
}

func TestEndTimerBeforeStart(t *testing.T) {
	f := newFixture(t)
	f.join(t)

	f.session.EndTimer("alice")
	if f.session.ended {
		t.Error("A timer end must not finish a match that never started")
	}
}

func TestServerTimerFires(t *testing.T) {
	f := newFixture(t)
	f.join(t)
	f.session.duration = 30 * time.Millisecond
	f.session.Init(f.creator)
	f.session.Init(f.joiner)

	waitFor(t, func() bool {
		f.session.mu.Lock()
		defer f.session.mu.Unlock()
		return f.session.ended
	})
	if got := f.creator.LastType(t); got != models.GameEnded {
		t.Errorf("Expected %s when the server timer fires, got %s", models.GameEnded, got)
	}
}

func TestSendReaction(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.session.SendReaction("alice", 3)

	last := f.joiner.Sent()[len(f.joiner.Sent())-1]
	msg, ok := last.(models.OpponentReactionMsg)
	if !ok {
		t.Fatalf("Expected OpponentReactionMsg, got %T", last)
	}
	if msg.Reaction.ID != 3 || msg.Reaction.Emoji != "🔥" {
		t.Errorf("Unexpected reaction payload: %+v", msg.Reaction)
	}
	if n := len(f.creator.Sent()); n != 0 {
		t.Errorf("Expected no echo to the sender, got %d messages", n)
	}
}

func TestSendReactionUnknownID(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.session.SendReaction("alice", 42)
	if n := len(f.joiner.Sent()); n != 0 {
		t.Errorf("Expected unknown reaction IDs to be dropped, got %d messages", n)
	}
}
