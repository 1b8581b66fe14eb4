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

type AdminHandler struct {
	reg *engine.Registry
	cfg cliparse.Config
}

func NewAdminHandler(reg *engine.Registry, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{reg: reg, cfg: cfg}
}

func (h *AdminHandler) ballot(w http.ResponseWriter, r *http.Request) (*engine.Ballot, string, bool) {
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

// SetVotingState handles PUT /ballots/{id}/voting-state
// Admin only. Setting the current state again succeeds and still emits an
// event, so retries are safe.
func (h *AdminHandler) SetVotingState(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	var req models.SetVotingStateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := b.SetVotingState(caller, req.Open); err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("voting state changed", "ballot_id", b.ID(), "open", req.Open, "caller", caller)
	w.WriteHeader(http.StatusNoContent)
}

// AddAdmin handles POST /ballots/{id}/admins
// Owner only.
func (h *AdminHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	var req models.AddAdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Admin == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin is required")
		return
	}

	if err := b.AddAdmin(caller, req.Admin); err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("admin added", "ballot_id", b.ID(), "admin", req.Admin)
	w.WriteHeader(http.StatusNoContent)
}

// RemoveAdmin handles DELETE /ballots/{id}/admins/{admin}
// Owner only. The owner cannot be removed.
func (h *AdminHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	b, caller, ok := h.ballot(w, r)
	if !ok {
		return
	}

	admin := r.PathValue("admin")
	if admin == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin is required")
		return
	}

	if err := b.RemoveAdmin(caller, admin); err != nil {
		middleware.EngineError(w, err)
		return
	}

	slog.Info("admin removed", "ballot_id", b.ID(), "admin", admin)
	w.WriteHeader(http.StatusNoContent)
}
