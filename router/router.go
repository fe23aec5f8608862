// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/sudoku-arena/cliparse"
	"github.com/danielhkuo/sudoku-arena/handlers"
	"github.com/danielhkuo/sudoku-arena/middleware"
	"github.com/danielhkuo/sudoku-arena/ws"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, wsHandler *ws.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	matchHandler := handlers.NewMatchHandler(db, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Gameplay runs over the websocket
	mux.HandleFunc("GET /ws", wsHandler.ServeWS)

	// User registration and profiles
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /users/{id}", middleware.WithLogging(userHandler.GetProfile))

	// Match history and standings
	mux.HandleFunc("GET /matches/{id}", middleware.WithLogging(matchHandler.GetMatch))
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaderboard))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sudoku-arena API v1"))
	})

	return mux
}
