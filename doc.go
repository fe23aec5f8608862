// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Sudoku Arena server.

Sudoku Arena hosts real-time two-player sudoku races: both players work the
same puzzle on private boards, and the winner is whoever finishes the
board first, survives the opponent's five mistakes, or leads when the
clock runs out.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=arena.db TOKEN_SECRET=... go run .

Or with flags:

	go run . -p 3319 -d arena.db -t sqlite -token-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - TOKEN_SECRET (-token-secret): Secret for signing user session tokens

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - ALLOWED_ORIGIN (-origin): Pin CORS and websocket origin (default: any)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - game: the per-session match engine (boards, mistakes, arbitration)
  - sudoku: puzzle generation with uniqueness-checked carving
  - ws: websocket transport, frame routing, keepalive pumps
  - identity: connection-to-user binding at upgrade time
  - store: durable writes behind the engine
  - handlers: REST surface (users, matches, leaderboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: wire contract types shared with the client
  - auth: token signing and validation
  - db: schema creation for both database engines
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
