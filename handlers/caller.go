// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
)

var errMissingCaller = errors.New("X-Caller-ID and X-Caller-Token headers required")

// callerFromRequest authenticates the caller identity from the request
// headers. The engine itself never sees tokens, only the identity string.
func callerFromRequest(r *http.Request, cfg cliparse.Config) (string, error) {
	callerID := r.Header.Get("X-Caller-ID")
	token := r.Header.Get("X-Caller-Token")
	if callerID == "" || token == "" {
		return "", errMissingCaller
	}
	if err := auth.ValidateCallerToken(callerID, token, cfg.CallerTokenSalt); err != nil {
		return "", err
	}
	return callerID, nil
}
