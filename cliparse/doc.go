// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Database connection string (optional; empty runs in-memory)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - CallerTokenSalt: Secret for caller token HMAC (required)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-caller-salt  Caller token salt

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	CALLER_TOKEN_SALT → -caller-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - CALLER_TOKEN_SALT must be provided
  - DATABASE_TYPE, when set, must be sqlite or postgres

DATABASE_URL is deliberately optional: without it the registry catalogue and
event log live only in memory.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(reg, dbConn, cfg)
*/
package cliparse
