// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/engine"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type VotingHandler struct {
	reg *engine.Registry
	cfg cliparse.Config
}

func NewVotingHandler(reg *engine.Registry, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{reg: reg, cfg: cfg}
}

// ballot authenticates the caller and resolves the ballot from the path.
// Writes the error response itself when either step fails.
func (h *VotingHandler) ballot(w http.ResponseWriter, r *http.Request) (*engine.Ballot, string, bool) {
	caller, err := callerFromRequest(r, h.cfg)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return nil, "", false
	}

	id := r.PathValue("id")
	b, ok := h.reg.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ballot not found")
		return nil, "", false
	}
	return b, caller, true
}

// WhitelistVoter handles POST /ballots/{id}/voters
// Admin only. Fails hard on a duplicate voter or a full ballot.
func (h *VotingHandler) WhitelistVoter(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	var req models.WhitelistVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Voter == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	if err := b.WhitelistVoter(caller, req.Voter); err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("voter whitelisted", "ballot_id", b.ID(), "voter", req.Voter)
	w.WriteHeader(http.StatusNoContent)
}

// WhitelistVoters handles POST /ballots/{id}/voters/batch
// Admin only. Duplicates are skipped and iteration stops at capacity; the
// batch itself never fails for either reason.
func (h *VotingHandler) WhitelistVoters(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	var req models.WhitelistVotersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Voters) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voters cannot be empty")
		return
	}

	added, err := b.WhitelistVoters(caller, req.Voters)
	if err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("voters whitelisted", "ballot_id", b.ID(), "requested", len(req.Voters), "added", added)

	middleware.JSONResponse(w, http.StatusOK, models.WhitelistVotersResponse{
		Added: added,
	})
}

// Vote handles POST /ballots/{id}/votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := b.Vote(caller, req.ProposalID); err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("vote cast", "ballot_id", b.ID(), "voter", caller, "proposal_id", req.ProposalID)
	w.WriteHeader(http.StatusNoContent)
}

// Delegate handles POST /ballots/{id}/delegate
func (h *VotingHandler) Delegate(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	var req models.DelegateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.To == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "to is required")
		return
	}

	if err := b.Delegate(caller, req.To); err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("vote delegated", "ballot_id", b.ID(), "from", caller, "to", req.To)
	w.WriteHeader(http.StatusNoContent)
}

// GetMyVoterStatus handles GET /ballots/{id}/voters/me
// Returns the caller's own voter record on this ballot.
func (h *VotingHandler) GetMyVoterStatus(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	v, _ := b.VoterInfo(caller)
	out := models.VoterStatus{
		Voter:         caller,
		IsWhitelisted: v.IsWhitelisted,
		HasVoted:      v.HasVoted,
		DelegateTo:    v.DelegateTo,
		Weight:        v.Weight,
	}
	if v.HasVoted && v.DelegateTo == "" {
		proposal := v.VotedProposal
		out.VotedProposal = &proposal
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}
