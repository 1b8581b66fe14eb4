// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/engine"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
)

func NewRouter(reg *engine.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	ballotHandler := handlers.NewBallotHandler(reg, cfg)
	votingHandler := handlers.NewVotingHandler(reg, cfg)
	adminHandler := handlers.NewAdminHandler(reg, cfg)
	resultsHandler := handlers.NewResultsHandler(reg)
	tokenHandler := handlers.NewTokenHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Caller identity
	mux.HandleFunc("POST /callers/token", middleware.WithLogging(tokenHandler.IssueToken))

	// Ballot catalogue
	mux.HandleFunc("POST /ballots", middleware.WithLogging(ballotHandler.CreateBallot))
	mux.HandleFunc("GET /ballots", middleware.WithLogging(ballotHandler.GetAllBallots))
	mux.HandleFunc("GET /ballots/active", middleware.WithLogging(ballotHandler.GetActiveBallots))
	mux.HandleFunc("GET /ballots/mine", middleware.WithLogging(ballotHandler.GetMyBallots))
	mux.HandleFunc("GET /ballots/at/{index}", middleware.WithLogging(ballotHandler.GetBallotStatusAt))
	mux.HandleFunc("GET /ballots/{id}", middleware.WithLogging(ballotHandler.GetBallot))

	// Voting operations
	mux.HandleFunc("POST /ballots/{id}/voters", middleware.WithLogging(votingHandler.WhitelistVoter))
	mux.HandleFunc("POST /ballots/{id}/voters/batch", middleware.WithLogging(votingHandler.WhitelistVoters))
	mux.HandleFunc("GET /ballots/{id}/voters/me", middleware.WithLogging(votingHandler.GetMyVoterStatus))
	mux.HandleFunc("POST /ballots/{id}/votes", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("POST /ballots/{id}/delegate", middleware.WithLogging(votingHandler.Delegate))

	// Ballot administration
	mux.HandleFunc("PUT /ballots/{id}/voting-state", middleware.WithLogging(adminHandler.SetVotingState))
	mux.HandleFunc("POST /ballots/{id}/admins", middleware.WithLogging(adminHandler.AddAdmin))
	mux.HandleFunc("DELETE /ballots/{id}/admins/{admin}", middleware.WithLogging(adminHandler.RemoveAdmin))

	// Results retrieval (public)
	mux.HandleFunc("GET /ballots/{id}/status", middleware.WithLogging(resultsHandler.GetStatus))
	mux.HandleFunc("GET /ballots/{id}/proposals", middleware.WithLogging(resultsHandler.GetProposals))
	mux.HandleFunc("GET /ballots/{id}/winner", middleware.WithLogging(resultsHandler.GetWinner))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
