// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateBallotRequest: proposal_names, description, max_votes, allow_delegation
  - WhitelistVoterRequest: voter
  - WhitelistVotersRequest: voters
  - VoteRequest: proposal_id
  - DelegateRequest: to
  - SetVotingStateRequest: open
  - AddAdminRequest: admin
  - CallerTokenRequest: caller_id

# Response Types

Types for JSON responses:

  - CreateBallotResponse: ballot_id
  - WhitelistVotersResponse: added
  - CallerTokenResponse: caller_id, caller_token
  - WinnerResponse: proposal_id, name, vote_count
  - ErrorResponse: error, message

# Domain Types

Wire-level snapshots of engine state:

  - BallotRecord: creation-time catalogue entry
  - BallotStatus: live counters plus a readable summary line
  - RegistryStatus: BallotStatus addressed by catalogue index
  - Proposal: name with current tally
  - BallotDetail: record, live status, and proposals together
  - VoterStatus: one voter's whitelist/vote/delegation state

These mirror the engine package's types one field at a time; the engine
never marshals its own structs.
*/
package models
