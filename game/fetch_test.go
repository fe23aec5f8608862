// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/danielhkuo/sudoku-arena/models"
	"github.com/danielhkuo/sudoku-arena/testutil"
)

func TestFetchRoomData(t *testing.T) {
	f := newFixture(t)
	f.join(t)
	f.session.Init(f.joiner)

	// Bob reconnects on a fresh socket before the match starts.
	fresh := testutil.NewFakeConn()
	f.binder.Bind(fresh, "bob")
	f.session.FetchRoomData(fresh)

	last := fresh.Sent()[len(fresh.Sent())-1]
	msg, ok := last.(models.RoomDataMsg)
	if !ok {
		t.Fatalf("Expected RoomDataMsg, got %T", last)
	}
	if msg.Data.RoomID != f.session.ID() || msg.Data.Role != models.RoleJoiner {
		t.Errorf("Unexpected room data: %+v", msg.Data)
	}
	if !msg.Data.GameInitiated {
		t.Error("Expected the caller's own ready flag to be set")
	}
	if msg.Data.Opponent == nil {
		t.Fatal("Expected an opponent entry once both players are seated")
	}
	if msg.Data.Opponent.ID != "alice" || msg.Data.Opponent.GameInitiated {
		t.Errorf("Unexpected opponent view: %+v", msg.Data.Opponent)
	}
	if _, bound := f.binder.Resolve(fresh); bound {
		t.Error("Expected the identity binding to be consumed by the fetch")
	}

	// The slot now points at the fresh socket.
	f.session.Init(f.creator)
	if got := fresh.LastType(t); got != models.BothUsersGameInitiated {
		t.Errorf("Expected rebound connection to receive %s, got %s", models.BothUsersGameInitiated, got)
	}
	if n := len(f.joiner.Sent()); n > 2 {
		t.Errorf("Expected the stale connection to stop receiving, got %d messages", n)
	}
}

func TestFetchRoomDataBeforeJoin(t *testing.T) {
	f := newFixture(t)

	fresh := testutil.NewFakeConn()
	f.binder.Bind(fresh, "alice")
	f.session.FetchRoomData(fresh)

	last := fresh.Sent()[len(fresh.Sent())-1]
	msg, ok := last.(models.RoomDataMsg)
	if !ok {
		t.Fatalf("Expected RoomDataMsg, got %T", last)
	}
	if msg.Data.Opponent != nil {
		t.Errorf("Expected no opponent entry before anyone joins, got %+v", msg.Data.Opponent)
	}

	// The empty slot must vanish from the wire payload, not serialize as
	// a zero-valued object.
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal room data: %v", err)
	}
	if strings.Contains(string(raw), "opponent") {
		t.Errorf("Expected the opponent key to be omitted, got %s", raw)
	}
}

func TestFetchRoomDataAfterStart(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	fresh := testutil.NewFakeConn()
	f.binder.Bind(fresh, "bob")
	f.session.FetchRoomData(fresh)

	if got := fresh.LastType(t); got != models.GameAlreadyStarted {
		t.Errorf("Expected %s for a room fetch mid-match, got %s", models.GameAlreadyStarted, got)
	}
}

func TestFetchBoardData(t *testing.T) {
	f := newFixture(t, 0, 1, 2, 3)
	f.start(t)

	f.session.VerifyValue("alice", 0, solutionDigit(0))
	f.session.VerifyValue("bob", 1, wrongDigit(1))

	fresh := testutil.NewFakeConn()
	f.binder.Bind(fresh, "alice")
	f.session.FetchBoardData(fresh)

	last := fresh.Sent()[len(fresh.Sent())-1]
	msg, ok := last.(models.BoardDataMsg)
	if !ok {
		t.Fatalf("Expected BoardDataMsg, got %T", last)
	}
	data := msg.Data
	if data.Role != models.RoleCreator || data.RoomID != f.session.ID() {
		t.Errorf("Unexpected board data header: role %q room %q", data.Role, data.RoomID)
	}
	if data.PercentageComplete != 25 || data.Mistakes != 0 {
		t.Errorf("Unexpected own progress: %d%% %d mistakes", data.PercentageComplete, data.Mistakes)
	}
	if data.Opponent.ID != "bob" || data.Opponent.Mistakes != 1 || data.Opponent.PercentageComplete != 0 {
		t.Errorf("Unexpected opponent progress: %+v", data.Opponent)
	}
	if d := data.CurrentGameState[0].Digit; d == nil || *d != solutionDigit(0) {
		t.Error("Expected the caller's own solved cell in the returned board")
	}
	if data.InitialGameState[0].Digit != nil {
		t.Error("Expected the initial template to keep its blank cell")
	}
	if len(data.EmojiReactions) != len(Reactions) {
		t.Error("Expected the full reaction catalog")
	}
	if data.StartTime == 0 || data.GameDuration == 0 {
		t.Error("Expected start time and duration to be set")
	}
}

func TestFetchBoardDataBeforeStart(t *testing.T) {
	f := newFixture(t)
	f.join(t)

	fresh := testutil.NewFakeConn()
	f.binder.Bind(fresh, "alice")
	f.session.FetchBoardData(fresh)

	if got := fresh.LastType(t); got != models.GameNotStarted {
		t.Errorf("Expected %s before the match starts, got %s", models.GameNotStarted, got)
	}
}

func TestFetchAfterEnd(t *testing.T) {
	f := newFixture(t)
	f.start(t)
	f.session.EndTimer("alice")

	fresh := testutil.NewFakeConn()
	f.binder.Bind(fresh, "alice")
	f.session.FetchBoardData(fresh)
	if got := fresh.LastType(t); got != models.GameAlreadyEnded {
		t.Errorf("Expected %s for a board fetch after the end, got %s", models.GameAlreadyEnded, got)
	}

	fresh2 := testutil.NewFakeConn()
	f.binder.Bind(fresh2, "alice")
	f.session.FetchRoomData(fresh2)
	if got := fresh2.LastType(t); got != models.GameAlreadyEnded {
		t.Errorf("Expected %s for a room fetch after the end, got %s", models.GameAlreadyEnded, got)
	}
}

func TestFetchUnknownUser(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	fresh := testutil.NewFakeConn()
	f.binder.Bind(fresh, "mallory")
	f.session.FetchBoardData(fresh)
	if n := len(fresh.Sent()); n != 0 {
		t.Errorf("Expected a stranger's fetch to be silent, got %d messages", n)
	}
}
