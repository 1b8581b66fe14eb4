// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"fmt"
)

// Error kinds. Every engine error wraps exactly one of these, so callers
// (and the HTTP layer) can classify failures with errors.Is without string
// matching.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("state conflict")
)

// Validation failures.
var (
	ErrNoProposals         = fmt.Errorf("%w: ballot requires at least one proposal", ErrInvalidInput)
	ErrTooManyProposals    = fmt.Errorf("%w: ballot allows at most %d proposals", ErrInvalidInput, MaxProposals)
	ErrInvalidProposal     = fmt.Errorf("%w: invalid proposal", ErrInvalidInput)
	ErrInvalidBallotIndex  = fmt.Errorf("%w: invalid ballot index", ErrInvalidInput)
	ErrInvalidMaxVotes     = fmt.Errorf("%w: max votes must not be negative", ErrInvalidInput)
	ErrEmptyVoterID        = fmt.Errorf("%w: voter id must not be empty", ErrInvalidInput)
)

// Authorization failures.
var (
	ErrNotAdmin = fmt.Errorf("%w: caller is not an admin", ErrUnauthorized)
	ErrNotOwner = fmt.Errorf("%w: caller is not the owner", ErrUnauthorized)
)

// State conflicts.
var (
	ErrAlreadyWhitelisted = fmt.Errorf("%w: voter already whitelisted", ErrConflict)
	ErrNotWhitelisted     = fmt.Errorf("%w: voter not whitelisted", ErrConflict)
	ErrCapacityReached    = fmt.Errorf("%w: capacity reached", ErrConflict)
	ErrAlreadyVoted       = fmt.Errorf("%w: already voted", ErrConflict)
	ErrVotingClosed       = fmt.Errorf("%w: voting is closed", ErrConflict)
	ErrSelfDelegation     = fmt.Errorf("%w: self-delegation is forbidden", ErrConflict)
	ErrDelegationDisabled = fmt.Errorf("%w: delegation disabled for this ballot", ErrConflict)
	ErrDelegationLoop     = fmt.Errorf("%w: loop detected", ErrConflict)
	ErrAlreadyAdmin       = fmt.Errorf("%w: already an admin", ErrConflict)
	ErrNotAnAdmin         = fmt.Errorf("%w: target is not an admin", ErrConflict)
	ErrOwnerDemotion      = fmt.Errorf("%w: owner cannot be removed", ErrConflict)
)
