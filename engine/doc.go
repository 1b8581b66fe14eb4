// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine implements the permissioned voting core: the per-ballot state
machine and the registry that creates and catalogues ballots.

# Ballot

A Ballot holds a fixed list of 1-5 proposals, an admin-controlled whitelist
of voters bounded by a capacity, and an open/closed voting flag. Whitelisted
voters carry a weight starting at 1. A voter either casts a direct vote,
adding their full weight to a proposal's tally, or delegates their weight to
another whitelisted voter:

	b, err := engine.NewBallot(id, []string{"A", "B"}, 100, true, owner, sink)
	err = b.WhitelistVoter(owner, "alice")
	err = b.Vote("alice", 0)

Delegation resolves the target forward along existing delegations to the
chain's terminal node and collapses the delegator's pointer directly to it.
A delegation that would close a cycle is rejected with no state change.

# Registry

A Registry creates ballots and keeps an append-only catalogue of creation
snapshots plus a per-owner index. Discovery reads (All, ByOwner, Active)
serve the stored snapshots; StatusAt performs a live read-through against
the underlying ballot.

# Errors

Every error wraps one of three kind sentinels - ErrInvalidInput,
ErrUnauthorized, ErrConflict - so callers classify failures with errors.Is.
Mutating operations validate all preconditions before writing anything; a
rejected call leaves state untouched.

# Events

Successful mutations push structured Event records into an injectable Sink,
synchronously and in mutation order. Rejected calls emit nothing.

# Concurrency

Each Ballot serializes its own mutations behind a sync.RWMutex, as does the
registry catalogue. Reads run concurrently and always observe fully-applied
mutations. Different ballots are independent.
*/
package engine
