// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/sudoku-arena/cliparse"
	"github.com/danielhkuo/sudoku-arena/middleware"
	"github.com/danielhkuo/sudoku-arena/models"
)

const defaultLeaderboardLimit = 20

type LeaderboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewLeaderboardHandler(db *sql.DB, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{db: db, cfg: cfg}
}

// GetLeaderboard handles GET /leaderboard
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	rows, err := h.db.Query(`
		SELECT id, name, wins, losses, draws
		FROM app_user
		ORDER BY wins DESC, losses ASC, name ASC
		LIMIT $1
	`, limit)
	if err != nil {
		slog.Error("failed to query leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Wins, &e.Losses, &e.Draws); err != nil {
			slog.Error("failed to scan leaderboard entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
