// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballotbox API.

# Handler Types

Each handler is a struct with registry and config dependencies:

  - BallotHandler: Ballot creation and catalogue reads
  - VotingHandler: Whitelisting, votes, and delegation
  - AdminHandler: Voting state and per-ballot admin roster
  - ResultsHandler: Status, proposals, and winner retrieval
  - TokenHandler: Caller token issuance

Handlers are created via constructor functions that accept the engine
registry and Config:

	ballotHandler := handlers.NewBallotHandler(reg, cfg)

# Caller Identity

Mutating operations require the X-Caller-ID and X-Caller-Token headers.
Tokens come from POST /callers/token and are an HMAC over the caller id,
so any string identity works without a signup step.

# Ballot Flow

	POST /callers/token              → IssueToken
	POST /ballots                    → CreateBallot (caller becomes owner)
	POST /ballots/{id}/voters        → WhitelistVoter (admin)
	POST /ballots/{id}/voters/batch  → WhitelistVoters (admin)
	POST /ballots/{id}/votes         → Vote
	POST /ballots/{id}/delegate      → Delegate
	PUT  /ballots/{id}/voting-state  → SetVotingState (admin)

Reads under /ballots/{id} (status, proposals, winner) take no caller
identity.

# Error Mapping

Engine errors flow through middleware.EngineError, which maps the error
kind to an HTTP status: validation 400, authorization 403, state
conflict 409. An unknown ballot id is a 404 before the engine is ever
consulted.
*/
package handlers
