// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

Two drivers are supported, selected by cliparse.Config.DatabaseType:

  - postgres: github.com/lib/pq
  - sqlite:   modernc.org/sqlite (CGO-free)

Statement text elsewhere in the repo uses $1-style placeholders, which both
engines accept ($VVV is a valid SQLite parameter form). The schema differs
only in column types (JSONB vs TEXT), so there is one constant per driver.

# Tables

  - app_user: identity + win/loss/draw counters
  - match: one row per match (options, status, winner/draw)
  - match_player: membership + per-player state snapshot

CreateSchema is idempotent and runs at startup.
*/
package db
