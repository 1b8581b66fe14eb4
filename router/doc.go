// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballotbox API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(reg, cfg)

# Endpoints

Health:

	GET /health

Caller identity:

	POST /callers/token - Issue a caller token

Ballot catalogue:

	POST /ballots           - Create ballot (caller becomes owner)
	GET  /ballots           - All catalogued ballots
	GET  /ballots/active    - Active ballots only
	GET  /ballots/mine      - Ballots owned by the caller
	GET  /ballots/at/{index} - Live status by catalogue index
	GET  /ballots/{id}      - Ballot detail

Voting (requires X-Caller-ID and X-Caller-Token):

	POST /ballots/{id}/voters       - Whitelist one voter (admin)
	POST /ballots/{id}/voters/batch - Whitelist many voters (admin)
	GET  /ballots/{id}/voters/me    - Caller's voter record
	POST /ballots/{id}/votes        - Cast a vote
	POST /ballots/{id}/delegate     - Delegate to another voter

Administration:

	PUT    /ballots/{id}/voting-state    - Open or close voting (admin)
	POST   /ballots/{id}/admins          - Add an admin (owner)
	DELETE /ballots/{id}/admins/{admin}  - Remove an admin (owner)

Results (public):

	GET /ballots/{id}/status    - Live tally summary
	GET /ballots/{id}/proposals - Proposals with counts
	GET /ballots/{id}/winner    - Current leading proposal

# Handler Initialization

The router creates handler instances with dependency injection:

	ballotHandler := handlers.NewBallotHandler(reg, cfg)
	votingHandler := handlers.NewVotingHandler(reg, cfg)
	adminHandler := handlers.NewAdminHandler(reg, cfg)
	resultsHandler := handlers.NewResultsHandler(reg)
	tokenHandler := handlers.NewTokenHandler(cfg)

All handlers receive the ballot registry and configuration; the results
handler needs no caller identity and takes only the registry.
*/
package router
