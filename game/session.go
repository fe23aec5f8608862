// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/danielhkuo/sudoku-arena/identity"
	"github.com/danielhkuo/sudoku-arena/models"
	"github.com/danielhkuo/sudoku-arena/store"
)

// Conn is a live outbound connection to one player. Send is fire-and-forget:
// no delivery acknowledgment, never blocks the engine.
type Conn interface {
	Send(v any)
}

// PuzzleProvider generates a puzzle and its solution, both 81-char strings
// (digits, '-' for blanks).
type PuzzleProvider interface {
	Generate(difficulty string) (puzzle, solution string, err error)
}

// player is one of the two slots in a session. Identity is fetched once at
// slot allocation and cached; conn is rebound on reconnect.
type player struct {
	profile   models.UserProfile
	role      string
	conn      Conn
	ready     bool
	board     []models.Cell
	mistakes  int
	correct   int
	percent   int
	timeTaken time.Duration
}

func (p *player) send(v any) {
	if p.conn != nil {
		p.conn.Send(v)
	}
}

// Session is one puzzle race between exactly two players. All state is
// owned server-side; clients only receive pushed notifications of what the
// engine computed.
//
// Every operation serializes on mu, so one session behaves as a single
// logical actor while distinct sessions run fully independently.
type Session struct {
	mu sync.Mutex

	id       string
	options  models.Options
	duration time.Duration

	store   store.Store
	binder  *identity.Binder
	puzzles PuzzleProvider

	creator *player
	joiner  *player

	// initialBoard and solution are fixed once generated; player boards
	// diverge from deep copies of initialBoard.
	initialBoard []models.Cell
	solution     []int
	emptyCells   int

	started   bool
	ended     bool
	startTime time.Time
	timer     *time.Timer
}

// ID returns the match identifier.
func (s *Session) ID() string { return s.id }

// Join allocates the joiner slot for the connection's bound identity.
func (s *Session) Join(conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.binder.Resolve(conn)
	if !ok {
		return
	}

	if userID == s.creator.profile.ID {
		conn.Send(models.TypeOnly{Type: models.RoomJoinFailed})
		return
	}
	if s.joiner != nil {
		conn.Send(models.TypeOnly{Type: models.RoomJoinFailed})
		return
	}

	profile, err := s.store.GetUser(userID)
	if err != nil {
		slog.Error("failed to load joiner profile", "match_id", s.id, "user_id", userID, "error", err)
		profile = models.UserProfile{ID: userID}
	}

	s.joiner = &player{profile: profile, role: models.RoleJoiner, conn: conn}
	s.binder.Release(conn)

	if err := s.store.AddPlayer(s.id, userID); err != nil {
		// The slot stays allocated: the joiner retries over the same
		// session and the membership row is re-attempted by the
		// snapshot upsert at init time.
		slog.Error("failed to persist joiner membership", "match_id", s.id, "user_id", userID, "error", err)
		conn.Send(models.TypeOnly{Type: models.RoomJoinFailed})
		return
	}

	slog.Info("player joined", "match_id", s.id, "user_id", userID)

	s.creator.send(models.OpponentJoinedMsg{
		Type: models.OpponentJoined,
		Data: models.OpponentJoinedData{
			JoinerID:   s.joiner.profile.ID,
			JoinerName: s.joiner.profile.Name,
			AvatarURL:  s.joiner.profile.AvatarURL,
		},
	})
	conn.Send(models.RoomJoinedMsg{
		Type: models.RoomJoined,
		Data: models.RoomJoinedData{
			RoomID:      s.id,
			CreatorID:   s.creator.profile.ID,
			CreatorName: s.creator.profile.Name,
			AvatarURL:   s.creator.profile.AvatarURL,
		},
	})
}

// Init marks the calling player ready. The puzzle is generated lazily on
// the first ready call; the second ready call starts the race.
func (s *Session) Init(conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.slotByConn(conn)
	if p == nil {
		return
	}
	if s.ended {
		p.send(models.TypeOnly{Type: models.GameAlreadyEnded})
		return
	}
	if p.ready {
		return
	}

	if s.initialBoard == nil {
		puzzle, solution, err := s.puzzles.Generate(s.options.Difficulty)
		if err != nil {
			slog.Error("puzzle generation failed", "match_id", s.id, "error", err)
			p.send(models.TypeOnly{Type: models.GameInitiateFailed})
			return
		}
		board, digits, empty, err := buildBoard(puzzle, solution)
		if err != nil {
			slog.Error("puzzle provider returned bad board", "match_id", s.id, "error", err)
			p.send(models.TypeOnly{Type: models.GameInitiateFailed})
			return
		}
		s.initialBoard, s.solution, s.emptyCells = board, digits, empty
	}

	p.board = cloneBoard(s.initialBoard)

	if err := s.store.SaveSnapshot(s.id, p.profile.ID, s.snapshotFor(p)); err != nil {
		// Abort: the slot stays not-ready and the client retries.
		slog.Error("failed to persist initial snapshot", "match_id", s.id, "user_id", p.profile.ID, "error", err)
		p.board = nil
		p.send(models.TypeOnly{Type: models.GameInitiateFailed})
		return
	}

	p.ready = true

	if opp := s.opponentOf(p); opp != nil {
		opp.send(models.TypeOnly{Type: models.OpponentGameInitiated})
	}

	if s.creator.ready && s.joiner != nil && s.joiner.ready {
		s.startLocked()
	} else {
		p.send(models.TypeOnly{Type: models.GameInitiated})
	}
}

// startLocked transitions the session into the running phase. Caller holds mu.
func (s *Session) startLocked() {
	s.started = true
	s.startTime = time.Now()
	s.timer = time.AfterFunc(s.duration, s.expire)

	slog.Info("match started", "match_id", s.id, "difficulty", s.options.Difficulty, "duration", s.duration)

	for _, p := range []*player{s.creator, s.joiner} {
		p.send(models.BothUsersGameInitiatedMsg{
			Type: models.BothUsersGameInitiated,
			Data: models.GameInitiatedData{
				InitialGameState: s.initialBoard,
				CurrentGameState: cloneBoard(p.board),
				StartTime:        s.startTime.UnixMilli(),
				GameDuration:     s.duration.Milliseconds(),
				Reactions:        Reactions,
			},
		})
	}
}

// expire fires at most once from the session's own timer.
func (s *Session) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endTimerLocked()
}

func (s *Session) slotByConn(conn Conn) *player {
	if s.creator != nil && s.creator.conn == conn {
		return s.creator
	}
	if s.joiner != nil && s.joiner.conn == conn {
		return s.joiner
	}
	return nil
}

func (s *Session) slotByUser(userID string) *player {
	if s.creator != nil && s.creator.profile.ID == userID {
		return s.creator
	}
	if s.joiner != nil && s.joiner.profile.ID == userID {
		return s.joiner
	}
	return nil
}

func (s *Session) opponentOf(p *player) *player {
	if p == s.creator {
		return s.joiner
	}
	return s.creator
}

func (s *Session) snapshotFor(p *player) models.Snapshot {
	return models.Snapshot{
		InitialGameState:   s.initialBoard,
		Solution:           s.solution,
		CurrentGameState:   cloneBoard(p.board),
		Mistakes:           p.mistakes,
		PercentageComplete: p.percent,
	}
}

// persistAsync upserts the player's snapshot without blocking the
// notification path. Failures are logged and absorbed.
func (s *Session) persistAsync(p *player) {
	snap := s.snapshotFor(p)
	matchID, userID := s.id, p.profile.ID
	go func() {
		if err := s.store.SaveSnapshot(matchID, userID, snap); err != nil {
			slog.Error("failed to persist snapshot", "match_id", matchID, "user_id", userID, "error", err)
		}
	}()
}

func percentComplete(correct, emptyCells int) int {
	if emptyCells == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(emptyCells) * 100))
}
