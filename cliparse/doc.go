// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Database connection string or file path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - TokenSecret: Secret for user session token HMAC (required)
  - AllowedOrigin: Websocket origin check (empty allows all)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-origin       Allowed websocket origin
	-token-secret User token secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ALLOWED_ORIGIN → -origin
	TOKEN_SECRET   → -token-secret

CLI flags take precedence over environment variables. main autoloads a
.env file via godotenv before parsing, so a local .env works for dev.
*/
package cliparse
