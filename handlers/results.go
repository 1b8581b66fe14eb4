// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ballotbox/engine"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type ResultsHandler struct {
	reg *engine.Registry
}

func NewResultsHandler(reg *engine.Registry) *ResultsHandler {
	return &ResultsHandler{reg: reg}
}

// toStatusModel converts an engine status snapshot for the wire, including a
// human-readable turnout summary.
func toStatusModel(st engine.BallotStatus) models.BallotStatus {
	return models.BallotStatus{
		TotalVoters:     st.TotalVoters,
		VotesCount:      st.VotesCount,
		VotingOpen:      st.VotingOpen,
		AllowDelegation: st.AllowDelegation,
		MaxVotes:        st.MaxVotes,
		Summary: fmt.Sprintf("%s of %s voters have voted",
			humanize.Comma(int64(st.VotesCount)), humanize.Comma(int64(st.TotalVoters))),
	}
}

// GetStatus handles GET /ballots/{id}/status
// Public; no caller identity required.
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	b, ok := h.reg.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ballot not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toStatusModel(b.Status()))
}

// GetWinner handles GET /ballots/{id}/winner
// The leading proposal at the moment of the call. Ties go to the lowest
// proposal id, so an all-zero tally reports proposal 0.
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	b, ok := h.reg.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ballot not found")
		return
	}

	winner := b.WinningProposal()
	proposals := b.Proposals()

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		ProposalID: winner,
		Name:       proposals[winner].Name,
		VoteCount:  proposals[winner].VoteCount,
	})
}

// GetProposals handles GET /ballots/{id}/proposals
func (h *ResultsHandler) GetProposals(w http.ResponseWriter, r *http.Request) {
	b, ok := h.reg.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ballot not found")
		return
	}

	proposals := b.Proposals()
	out := make([]models.Proposal, len(proposals))
	for i, p := range proposals {
		out[i] = models.Proposal{Name: p.Name, VoteCount: p.VoteCount}
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}
