// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/engine"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type BallotHandler struct {
	reg *engine.Registry
	cfg cliparse.Config
}

func NewBallotHandler(reg *engine.Registry, cfg cliparse.Config) *BallotHandler {
	return &BallotHandler{reg: reg, cfg: cfg}
}

func toRecordModel(rec engine.BallotRecord) models.BallotRecord {
	return models.BallotRecord{
		ID:              rec.ID,
		Description:     rec.Description,
		Owner:           rec.Owner,
		MaxVotes:        rec.MaxVotes,
		AllowDelegation: rec.AllowDelegation,
		ProposalCount:   rec.ProposalCount,
		IsActive:        rec.IsActive,
	}
}

func toRecordModels(recs []engine.BallotRecord) []models.BallotRecord {
	out := make([]models.BallotRecord, len(recs))
	for i, rec := range recs {
		out[i] = toRecordModel(rec)
	}
	return out
}

// CreateBallot handles POST /ballots
func (h *BallotHandler) CreateBallot(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r, h.cfg)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req models.CreateBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.reg.CreateBallot(caller, req.ProposalNames, req.Description, req.MaxVotes, req.AllowDelegation)
	if err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("ballot created", "ballot_id", id, "owner", caller, "proposals", len(req.ProposalNames))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateBallotResponse{
		BallotID: id,
	})
}

// GetAllBallots handles GET /ballots
// Returns the creation-time snapshots; listings are never live reads.
func (h *BallotHandler) GetAllBallots(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, toRecordModels(h.reg.All()))
}

// GetActiveBallots handles GET /ballots/active
func (h *BallotHandler) GetActiveBallots(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, toRecordModels(h.reg.Active()))
}

// GetMyBallots handles GET /ballots/mine
// Returns the caller's ballots in creation order.
func (h *BallotHandler) GetMyBallots(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r, h.cfg)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toRecordModels(h.reg.ByOwner(caller)))
}

// GetBallotStatusAt handles GET /ballots/at/{index}
// Performs a live read-through against the ballot at the catalogue index.
func (h *BallotHandler) GetBallotStatusAt(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	st, err := h.reg.StatusAt(index)
	if err != nil {
		middleware.EngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RegistryStatus{
		ID:           st.ID,
		IsActive:     st.IsActive,
		BallotStatus: toStatusModel(st.BallotStatus),
	})
}

// GetBallot handles GET /ballots/{id}
// Returns the stored record together with the live status and tallies.
func (h *BallotHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b, ok := h.reg.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ballot not found")
		return
	}

	var record models.BallotRecord
	for _, rec := range h.reg.All() {
		if rec.ID == id {
			record = toRecordModel(rec)
			break
		}
	}

	proposals := b.Proposals()
	out := models.BallotDetail{
		Record:    record,
		Status:    toStatusModel(b.Status()),
		Proposals: make([]models.Proposal, len(proposals)),
	}
	for i, p := range proposals {
		out.Proposals[i] = models.Proposal{Name: p.Name, VoteCount: p.VoteCount}
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}
