// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/sudoku-arena/identity"
	"github.com/danielhkuo/sudoku-arena/models"
	"github.com/danielhkuo/sudoku-arena/store"
)

// Registry owns every live session, keyed by match ID. Sessions stay
// registered after they end so post-game snapshot fetches still resolve.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store   store.Store
	binder  *identity.Binder
	puzzles PuzzleProvider
}

func NewRegistry(st store.Store, binder *identity.Binder, puzzles PuzzleProvider) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		store:    st,
		binder:   binder,
		puzzles:  puzzles,
	}
}

// CreateSession allocates a new match for the connection's bound identity.
// The room becomes joinable only after the durable create succeeds; on
// failure the creator is notified and the session is discarded.
func (r *Registry) CreateSession(conn Conn, opts models.Options) *Session {
	userID, ok := r.binder.Resolve(conn)
	if !ok {
		return nil
	}
	r.binder.Release(conn)

	if !models.ValidDifficulty(opts.Difficulty) || opts.GameTime <= 0 {
		conn.Send(models.TypeOnly{Type: models.RoomCreateFailed})
		return nil
	}

	profile, err := r.store.GetUser(userID)
	if err != nil {
		slog.Error("failed to load creator profile", "user_id", userID, "error", err)
		profile = models.UserProfile{ID: userID}
	}

	s := &Session{
		id:       uuid.NewString(),
		options:  opts,
		duration: time.Duration(opts.GameTime) * time.Minute,
		store:    r.store,
		binder:   r.binder,
		puzzles:  r.puzzles,
		creator:  &player{profile: profile, role: models.RoleCreator, conn: conn},
	}

	if err := r.store.CreateMatch(s.id, opts); err != nil {
		slog.Error("failed to persist match", "match_id", s.id, "error", err)
		conn.Send(models.TypeOnly{Type: models.RoomCreateFailed})
		return nil
	}
	if err := r.store.AddPlayer(s.id, userID); err != nil {
		slog.Error("failed to persist creator membership", "match_id", s.id, "error", err)
		conn.Send(models.TypeOnly{Type: models.RoomCreateFailed})
		return nil
	}

	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()

	slog.Info("match created", "match_id", s.id, "creator", userID, "difficulty", opts.Difficulty)

	conn.Send(models.RoomCreatedMsg{Type: models.RoomCreated, RoomID: s.id})
	return s
}

// Get returns the session for a match ID.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
