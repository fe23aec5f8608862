// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Sudoku Arena API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, wsHandler)

# Endpoints

Health:

	GET /health

Gameplay (websocket, requires ?token= from registration):

	GET /ws

Users:

	POST /users      - Register, returns user_id and signed token
	GET  /users/{id} - Public profile

Match history:

	GET /matches/{id} - Post-game match result
	GET /leaderboard  - Win/loss standings (?limit=N)

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(db, cfg)
	matchHandler := handlers.NewMatchHandler(db, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, cfg)

The websocket handler is constructed by the caller because it owns the
long-lived hub, registry, and identity binder.
*/
package router
