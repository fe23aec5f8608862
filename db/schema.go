// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType is "postgres" or
// "sqlite"; dbURL is a connection string or a file path respectively.
func Open(dbType, dbURL string) (*sql.DB, error) {
	driver := dbType
	if driver != "postgres" && driver != "sqlite" {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// sqlite allows a single writer, and a pooled second connection to
	// ":memory:" would see a different empty database entirely.
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == "postgres" {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are written from Go so both engines share the same statement
// text; only column types differ between the two schemas.

const postgresSchema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    avatar_url TEXT NOT NULL DEFAULT '',
    wins INTEGER NOT NULL DEFAULT 0,
    losses INTEGER NOT NULL DEFAULT 0,
    draws INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

-- Matches
CREATE TABLE IF NOT EXISTS match (
    id TEXT PRIMARY KEY,
    difficulty TEXT NOT NULL,
    game_time_minutes INTEGER NOT NULL,
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'completed')),
    winner_id TEXT REFERENCES app_user(id),
    draw BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_match_status ON match(status);

-- Match membership and per-player snapshots
CREATE TABLE IF NOT EXISTS match_player (
    match_id TEXT NOT NULL REFERENCES match(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES app_user(id),
    snapshot JSONB,
    joined_at TIMESTAMP NOT NULL,
    PRIMARY KEY (match_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_match_player_user ON match_player(user_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    avatar_url TEXT NOT NULL DEFAULT '',
    wins INTEGER NOT NULL DEFAULT 0,
    losses INTEGER NOT NULL DEFAULT 0,
    draws INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS match (
    id TEXT PRIMARY KEY,
    difficulty TEXT NOT NULL,
    game_time_minutes INTEGER NOT NULL,
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'completed')),
    winner_id TEXT REFERENCES app_user(id),
    draw BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_match_status ON match(status);

CREATE TABLE IF NOT EXISTS match_player (
    match_id TEXT NOT NULL REFERENCES match(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES app_user(id),
    snapshot TEXT,
    joined_at TIMESTAMP NOT NULL,
    PRIMARY KEY (match_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_match_player_user ON match_player(user_id);
`
