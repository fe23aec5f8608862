// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/sudoku-arena/cliparse"
	"github.com/danielhkuo/sudoku-arena/middleware"
	"github.com/danielhkuo/sudoku-arena/models"
)

type MatchHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMatchHandler(db *sql.DB, cfg cliparse.Config) *MatchHandler {
	return &MatchHandler{db: db, cfg: cfg}
}

// GetMatch handles GET /matches/{id}
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	if matchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	var result models.MatchResult
	err := h.db.QueryRow(`
		SELECT id, difficulty, game_time_minutes, status, winner_id, draw
		FROM match WHERE id = $1
	`, matchID).Scan(&result.ID, &result.Difficulty, &result.GameTime, &result.Status, &result.WinnerID, &result.Draw)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("failed to query match", "match_id", matchID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT user_id FROM match_player WHERE match_id = $1 ORDER BY joined_at
	`, matchID)
	if err != nil {
		slog.Error("failed to query match players", "match_id", matchID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			slog.Error("failed to scan match player", "match_id", matchID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		result.PlayerIDs = append(result.PlayerIDs, userID)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate match players", "match_id", matchID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
