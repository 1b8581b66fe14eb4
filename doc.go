// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox is a permissioned voting service. Each ballot has a fixed
proposal list, an admin-managed voter whitelist, optional vote
delegation with weight accumulation, and an open/closed voting switch.
A registry catalogues every ballot and serves live status reads.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	CALLER_TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 3319 -caller-salt "..."

# Configuration

Required settings:

  - CALLER_TOKEN_SALT (-caller-salt): Secret for caller token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_URL (-d): Connection string; empty runs fully in-memory
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

With a database configured, ballot records are written through on
creation and every engine event is appended to an event table.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - engine: Ballot state machine, registry, errors, events
  - handlers: HTTP request handlers (ballots, voting, admins, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, engine error mapping
  - models: Request/response types
  - auth: Caller token generation and validation
  - db: Schema creation and the optional record/event store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
