// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateBallotRequest struct {
	ProposalNames   []string `json:"proposal_names"`
	Description     string   `json:"description"`
	MaxVotes        int      `json:"max_votes"`
	AllowDelegation bool     `json:"allow_delegation"`
}

type WhitelistVoterRequest struct {
	Voter string `json:"voter"`
}

type WhitelistVotersRequest struct {
	Voters []string `json:"voters"`
}

type VoteRequest struct {
	ProposalID int `json:"proposal_id"`
}

type DelegateRequest struct {
	To string `json:"to"`
}

type SetVotingStateRequest struct {
	Open bool `json:"open"`
}

type AddAdminRequest struct {
	Admin string `json:"admin"`
}

type CallerTokenRequest struct {
	CallerID string `json:"caller_id"`
}

// Response types

type CreateBallotResponse struct {
	BallotID string `json:"ballot_id"`
}

type WhitelistVotersResponse struct {
	Added int `json:"added"`
}

type CallerTokenResponse struct {
	CallerID    string `json:"caller_id"`
	CallerToken string `json:"caller_token"`
}

type WinnerResponse struct {
	ProposalID int    `json:"proposal_id"`
	Name       string `json:"name"`
	VoteCount  uint64 `json:"vote_count"`
}

// Domain snapshot types

type BallotRecord struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	Owner           string `json:"owner"`
	MaxVotes        int    `json:"max_votes"`
	AllowDelegation bool   `json:"allow_delegation"`
	ProposalCount   int    `json:"proposal_count"`
	IsActive        bool   `json:"is_active"`
}

type BallotStatus struct {
	TotalVoters     int    `json:"total_voters"`
	VotesCount      int    `json:"votes_count"`
	VotingOpen      bool   `json:"voting_open"`
	AllowDelegation bool   `json:"allow_delegation"`
	MaxVotes        int    `json:"max_votes"`
	Summary         string `json:"summary,omitempty"`
}

type RegistryStatus struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
	BallotStatus
}

type Proposal struct {
	Name      string `json:"name"`
	VoteCount uint64 `json:"vote_count"`
}

type BallotDetail struct {
	Record    BallotRecord `json:"record"`
	Status    BallotStatus `json:"status"`
	Proposals []Proposal   `json:"proposals"`
}

type VoterStatus struct {
	Voter         string `json:"voter"`
	IsWhitelisted bool   `json:"is_whitelisted"`
	HasVoted      bool   `json:"has_voted"`
	VotedProposal *int   `json:"voted_proposal,omitempty"`
	DelegateTo    string `json:"delegate_to,omitempty"`
	Weight        uint64 `json:"weight"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
