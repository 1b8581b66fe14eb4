// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/engine"
)

// Store persists registry snapshots and engine events. It implements both
// engine.RecordStore and engine.Sink, so one Store can be handed to the
// registry for write-through records and wired as the event sink.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveRecord inserts a creation-time snapshot. Called by the registry before
// it commits the ballot to its in-memory catalogue, so a failure here aborts
// the creation.
func (s *Store) SaveRecord(rec engine.BallotRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO ballot_record (id, description, owner, max_votes, allow_delegation, proposal_count, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.ID, rec.Description, rec.Owner, rec.MaxVotes, rec.AllowDelegation, rec.ProposalCount, rec.IsActive, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save ballot record: %w", err)
	}
	return nil
}

// LoadRecords returns all stored snapshots in creation order.
func (s *Store) LoadRecords() ([]engine.BallotRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, description, owner, max_votes, allow_delegation, proposal_count, is_active
		FROM ballot_record
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballot records: %w", err)
	}
	defer rows.Close()

	var records []engine.BallotRecord
	for rows.Next() {
		var rec engine.BallotRecord
		if err := rows.Scan(&rec.ID, &rec.Description, &rec.Owner, &rec.MaxVotes,
			&rec.AllowDelegation, &rec.ProposalCount, &rec.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan ballot record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Emit appends an engine event to the log. A write failure is logged, not
// propagated: the mutation already succeeded and the engine does not take
// event delivery errors.
func (s *Store) Emit(ev engine.Event) {
	id, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate event id", "error", err)
		return
	}

	payload, err := json.Marshal(ev.Data)
	if err != nil {
		slog.Error("failed to marshal event payload", "event", ev.Name, "error", err)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO ballot_event (id, ballot_id, name, payload, emitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, ev.BallotID, ev.Name, string(payload), time.Now())
	if err != nil {
		slog.Error("failed to append event", "event", ev.Name, "ballot_id", ev.BallotID, "error", err)
	}
}

// EventCount returns the number of logged events for a ballot.
func (s *Store) EventCount(ballotID string) (int, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM ballot_event WHERE ballot_id = $1
	`, ballotID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}
