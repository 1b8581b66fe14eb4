// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "sync"

// BallotRecord is the registry-owned snapshot taken at ballot creation.
// Fields other than IsActive never change after creation; IsActive is set
// true at creation and no engine operation ever clears it.
type BallotRecord struct {
	ID              string
	Description     string
	Owner           string
	MaxVotes        int
	AllowDelegation bool
	ProposalCount   int
	IsActive        bool
}

// RegistryStatus is the live read-through combining a stored record's
// IsActive flag with the referenced ballot's current counters.
type RegistryStatus struct {
	ID       string
	IsActive bool
	BallotStatus
}

// RecordStore persists ballot records outside the engine. Implementations
// must be safe for concurrent use. SaveRecord failing aborts the creation.
type RecordStore interface {
	SaveRecord(BallotRecord) error
}

// Registry creates ballots and keeps an append-only catalogue of creation
// snapshots plus a per-owner index, both updated under one lock so no two
// concurrent creations can corrupt them. Discovery reads serve the stored
// snapshots; only StatusAt performs a live read against a Ballot.
type Registry struct {
	mu      sync.RWMutex
	ballots []*Ballot
	byID    map[string]*Ballot
	records []BallotRecord
	byOwner map[string][]int // record indices in creation order

	newID func() string
	store RecordStore // optional
	sink  Sink        // optional
}

// NewRegistry creates an empty registry. newID supplies ballot identifiers;
// store and sink may be nil.
func NewRegistry(newID func() string, store RecordStore, sink Sink) *Registry {
	return &Registry{
		byID:    make(map[string]*Ballot),
		byOwner: make(map[string][]int),
		newID:   newID,
		store:   store,
		sink:    sink,
	}
}

// CreateBallot constructs a new ballot owned by caller and catalogues it.
// The proposal-count bounds are checked here as well as in NewBallot; the
// registry is the outer gate and the ballot re-validates its own input.
func (r *Registry) CreateBallot(caller string, proposalNames []string, description string, maxVotes int, allowDelegation bool) (string, error) {
	if len(proposalNames) == 0 {
		return "", ErrNoProposals
	}
	if len(proposalNames) > MaxProposals {
		return "", ErrTooManyProposals
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	b, err := NewBallot(id, proposalNames, maxVotes, allowDelegation, caller, r.sink)
	if err != nil {
		return "", err
	}

	rec := BallotRecord{
		ID:              id,
		Description:     description,
		Owner:           caller,
		MaxVotes:        maxVotes,
		AllowDelegation: allowDelegation,
		ProposalCount:   len(proposalNames),
		IsActive:        true,
	}
	if r.store != nil {
		if err := r.store.SaveRecord(rec); err != nil {
			return "", err
		}
	}

	idx := len(r.records)
	r.ballots = append(r.ballots, b)
	r.byID[id] = b
	r.records = append(r.records, rec)
	r.byOwner[caller] = append(r.byOwner[caller], idx)

	if r.sink != nil {
		r.sink.Emit(Event{Name: EventBallotCreated, BallotID: id, Data: map[string]any{
			"description":      description,
			"owner":            caller,
			"max_votes":        maxVotes,
			"allow_delegation": allowDelegation,
			"proposal_count":   len(proposalNames),
		}})
	}
	return id, nil
}

// Get returns the live ballot with the given id.
func (r *Registry) Get(id string) (*Ballot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	return b, ok
}

// All returns every stored record in creation order. Snapshots are taken at
// creation time and never refreshed.
func (r *Registry) All() []BallotRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]BallotRecord, len(r.records))
	copy(out, r.records)
	return out
}

// ByOwner returns the records created by owner, in creation order.
func (r *Registry) ByOwner(owner string) []BallotRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idxs := r.byOwner[owner]
	out := make([]BallotRecord, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.records[i])
	}
	return out
}

// Active returns the records whose IsActive flag is set.
func (r *Registry) Active() []BallotRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]BallotRecord, 0, len(r.records))
	for _, rec := range r.records {
		if rec.IsActive {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of catalogued ballots.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// StatusAt performs a live status query against the ballot at the given
// catalogue index.
func (r *Registry) StatusAt(index int) (RegistryStatus, error) {
	r.mu.RLock()
	if index < 0 || index >= len(r.records) {
		r.mu.RUnlock()
		return RegistryStatus{}, ErrInvalidBallotIndex
	}
	b := r.ballots[index]
	rec := r.records[index]
	r.mu.RUnlock()

	return RegistryStatus{
		ID:           rec.ID,
		IsActive:     rec.IsActive,
		BallotStatus: b.Status(),
	}, nil
}
