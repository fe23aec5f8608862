// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/sudoku-arena/models"
)

// Store is the durable-write contract the match engine depends on. Every
// call may fail independently; the engine decides per call site whether a
// failure is surfaced to the player or just logged.
type Store interface {
	GetUser(id string) (models.UserProfile, error)
	CreateMatch(id string, opts models.Options) error
	AddPlayer(matchID, userID string) error
	SaveSnapshot(matchID, userID string, snap models.Snapshot) error
	FinalizeMatch(matchID, winnerID, loserID string, draw bool) error
}

// SQL implements Store over database/sql. Statement text uses $1-style
// placeholders, valid for both lib/pq and modernc.org/sqlite.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) GetUser(id string) (models.UserProfile, error) {
	var u models.UserProfile
	err := s.db.QueryRow(`
		SELECT id, name, avatar_url FROM app_user WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.AvatarURL)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to query user %s: %w", id, err)
	}
	return u, nil
}

func (s *SQL) CreateMatch(id string, opts models.Options) error {
	_, err := s.db.Exec(`
		INSERT INTO match (id, difficulty, game_time_minutes, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, opts.Difficulty, opts.GameTime, models.MatchActive, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (s *SQL) AddPlayer(matchID, userID string) error {
	_, err := s.db.Exec(`
		INSERT INTO match_player (match_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, matchID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert match player: %w", err)
	}
	return nil
}

func (s *SQL) SaveSnapshot(matchID, userID string, snap models.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Upsert: the membership row normally exists already, but a snapshot
	// write must never depend on write ordering.
	_, err = s.db.Exec(`
		INSERT INTO match_player (match_id, user_id, snapshot, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (match_id, user_id) DO UPDATE SET snapshot = $3
	`, matchID, userID, string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *SQL) FinalizeMatch(matchID, winnerID, loserID string, draw bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin finalize: %w", err)
	}
	defer tx.Rollback()

	if draw {
		if _, err := tx.Exec(`
			UPDATE match SET status = $1, draw = TRUE WHERE id = $2
		`, models.MatchCompleted, matchID); err != nil {
			return fmt.Errorf("failed to mark match drawn: %w", err)
		}
		for _, id := range []string{winnerID, loserID} {
			if _, err := tx.Exec(`
				UPDATE app_user SET draws = draws + 1 WHERE id = $1
			`, id); err != nil {
				return fmt.Errorf("failed to increment draws: %w", err)
			}
		}
	} else {
		if _, err := tx.Exec(`
			UPDATE match SET status = $1, winner_id = $2, draw = FALSE WHERE id = $3
		`, models.MatchCompleted, winnerID, matchID); err != nil {
			return fmt.Errorf("failed to mark match completed: %w", err)
		}
		if _, err := tx.Exec(`
			UPDATE app_user SET wins = wins + 1 WHERE id = $1
		`, winnerID); err != nil {
			return fmt.Errorf("failed to increment wins: %w", err)
		}
		if _, err := tx.Exec(`
			UPDATE app_user SET losses = losses + 1 WHERE id = $1
		`, loserID); err != nil {
			return fmt.Errorf("failed to increment losses: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit finalize: %w", err)
	}
	return nil
}
