// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Ballot records: creation-time snapshots from the registry catalogue.
-- Fields other than is_active never change after insertion.
CREATE TABLE IF NOT EXISTS ballot_record (
    id TEXT PRIMARY KEY,
    description TEXT,
    owner TEXT NOT NULL,
    max_votes INTEGER NOT NULL,
    allow_delegation BOOLEAN NOT NULL,
    proposal_count INTEGER NOT NULL CHECK (proposal_count >= 1 AND proposal_count <= 5),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ballot_record_owner ON ballot_record(owner);

-- Event log: structured engine events, appended in emission order.
CREATE TABLE IF NOT EXISTS ballot_event (
    id TEXT PRIMARY KEY,
    ballot_id TEXT NOT NULL,
    name TEXT NOT NULL,
    payload TEXT NOT NULL,
    emitted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ballot_event_ballot ON ballot_event(ballot_id);
`
