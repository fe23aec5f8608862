// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the Sudoku Arena
API. The websocket transport carries all gameplay; these handlers cover
the REST surface around it.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: registration and profile lookup
  - MatchHandler: post-game match results
  - LeaderboardHandler: win/loss standings

Handlers are created via constructor functions that accept *sql.DB and Config:

	userHandler := handlers.NewUserHandler(db, cfg)

# Registration Flow

	POST /users       → Register (returns user_id + signed token)
	GET  /users/{id}  → GetProfile

The returned token authenticates the websocket upgrade at /ws?token=...
and is the client's only credential; there is no password.

# Match History

	GET /matches/{id} → GetMatch (difficulty, status, winner, players)
	GET /leaderboard  → GetLeaderboard (?limit=N, default 20)
*/
package handlers
