// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"sync"
	"testing"

	"github.com/danielhkuo/sudoku-arena/models"
)

// TestConcurrentSubmissions hammers one session from both players at once
// and verifies the serialized invariants hold: mistakes never pass the cap,
// at most one GAME_ENDED per player, one finalize write total.
func TestConcurrentSubmissions(t *testing.T) {
	f := newFixture(t, 0, 1, 2, 3, 9, 10, 11, 12)
	f.start(t)

	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				idx := []int{0, 1, 2, 3, 9, 10, 11, 12}[i%8]
				if i%2 == 0 {
					f.session.VerifyValue(userID, idx, wrongDigit(idx))
				} else {
					f.session.VerifyValue(userID, idx, solutionDigit(idx))
				}
				f.session.ClearValue(userID, idx)
			}
		}(user)
	}
	wg.Wait()

	f.session.mu.Lock()
	for _, p := range []*player{f.session.creator, f.session.joiner} {
		if p.mistakes > models.TotalAllowedMistakes {
			t.Errorf("Mistake cap breached: %d for %s", p.mistakes, p.profile.ID)
		}
		if p.percent < 0 || p.percent > 100 {
			t.Errorf("Percentage out of range: %d for %s", p.percent, p.profile.ID)
		}
	}
	ended := f.session.ended
	f.session.mu.Unlock()

	if !ended {
		t.Fatal("Expected the hammering to end the match via a cap or completion")
	}

	for name, types := range map[string][]string{"creator": f.creator.Types(t), "joiner": f.joiner.Types(t)} {
		endCount := 0
		for _, tag := range types {
			if tag == models.GameEnded {
				endCount++
			}
		}
		if endCount != 1 {
			t.Errorf("Expected exactly one %s for %s, got %d", models.GameEnded, name, endCount)
		}
	}

	waitFor(t, func() bool { return len(f.store.Finalized()) >= 1 })
	if n := len(f.store.Finalized()); n != 1 {
		t.Errorf("Expected exactly one finalize write, got %d", n)
	}
}

// TestConcurrentIndependentSessions runs several sessions in parallel to
// verify they share no state.
func TestConcurrentIndependentSessions(t *testing.T) {
	const sessions = 8

	fixtures := make([]*fixture, sessions)
	for i := range fixtures {
		fixtures[i] = newFixture(t, 40, 41)
		fixtures[i].start(t)
	}

	var wg sync.WaitGroup
	results := make([]string, sessions)

	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			f := fixtures[n]
			f.session.VerifyValue("alice", 40, solutionDigit(40))
			f.session.VerifyValue("alice", 41, solutionDigit(41))

			last := f.creator.Sent()[len(f.creator.Sent())-1]
			if msg, ok := last.(models.GameEndedMsg); ok {
				results[n] = msg.Result.Winner
			}
		}(i)
	}
	wg.Wait()

	for i, winner := range results {
		if winner != models.RoleCreator {
			t.Errorf("Session %d: expected winner %q, got %q", i, models.RoleCreator, winner)
		}
	}
}
