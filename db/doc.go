// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists registry snapshots and the engine event log.

Persistence is optional: the engine runs fully in-memory, and this package
only mirrors its catalogue and events for durability and audit. The schema
preserves the engine's data model; it never drives engine behavior.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - ballot_record: Creation-time registry snapshots (write-once except is_active)
  - ballot_event: Append-only log of engine events

# Store

Store implements both engine.RecordStore (write-through snapshots on ballot
creation) and engine.Sink (event append on successful mutations):

	store := db.NewStore(conn)
	reg := engine.NewRegistry(auth.GenerateBallotID, store, store)

Event append failures are logged and swallowed: the in-memory mutation has
already committed and event delivery takes no errors.

# Drivers

Works with both supported drivers: lib/pq (postgres) and modernc.org/sqlite
(sqlite), selected by the DATABASE_TYPE setting.
*/
package db
