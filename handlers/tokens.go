// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type TokenHandler struct {
	cfg cliparse.Config
}

func NewTokenHandler(cfg cliparse.Config) *TokenHandler {
	return &TokenHandler{cfg: cfg}
}

// IssueToken handles POST /callers/token
// Issues the caller token for an id. Tokens are deterministic per id and
// salt, so repeat calls return the same token.
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req models.CallerTokenRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CallerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, auth.ErrEmptyCallerID.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CallerTokenResponse{
		CallerID:    req.CallerID,
		CallerToken: auth.GenerateCallerToken(req.CallerID, h.cfg.CallerTokenSalt),
	})
}
