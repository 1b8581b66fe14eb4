// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestGetStatusHandler(t *testing.T) {
	reg := testutil.NewTestRegistry(t)
	handler := NewResultsHandler(reg)

	id := testutil.CreateTestBallot(t, reg, "owner", 10, true)
	b, _ := reg.Get(id)
	if _, err := b.WhitelistVoters("owner", []string{"alice", "bob", "carol"}); err != nil {
		t.Fatalf("WhitelistVoters failed: %v", err)
	}
	if err := b.Vote("alice", 0); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	req := testutil.MakeRequest("GET", "/ballots/"+id+"/status", nil, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	handler.GetStatus(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var st models.BallotStatus
	testutil.AssertJSON(t, w, &st)
	if st.TotalVoters != 3 || st.VotesCount != 1 {
		t.Errorf("Expected 1 of 3 voted, got %d of %d", st.VotesCount, st.TotalVoters)
	}
	if !st.VotingOpen || !st.AllowDelegation || st.MaxVotes != 10 {
		t.Errorf("Unexpected status flags: %+v", st)
	}
	if st.Summary != "1 of 3 voters have voted" {
		t.Errorf("Unexpected summary: %q", st.Summary)
	}
}

func TestGetWinnerHandler(t *testing.T) {
	tests := []struct {
		name     string
		votes    map[string]int // voter -> proposal
		expected models.WinnerResponse
	}{
		{
			name:     "clear winner",
			votes:    map[string]int{"alice": 1, "bob": 1, "carol": 2},
			expected: models.WinnerResponse{ProposalID: 1, Name: "beta", VoteCount: 2},
		},
		{
			name:     "no votes yields first proposal",
			votes:    nil,
			expected: models.WinnerResponse{ProposalID: 0, Name: "alpha", VoteCount: 0},
		},
		{
			name:     "tie goes to the lowest id",
			votes:    map[string]int{"alice": 2, "bob": 1},
			expected: models.WinnerResponse{ProposalID: 1, Name: "beta", VoteCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testutil.NewTestRegistry(t)
			handler := NewResultsHandler(reg)

			id := testutil.CreateTestBallot(t, reg, "owner", 10, false)
			b, _ := reg.Get(id)
			if _, err := b.WhitelistVoters("owner", []string{"alice", "bob", "carol"}); err != nil {
				t.Fatalf("WhitelistVoters failed: %v", err)
			}
			for voter, proposal := range tt.votes {
				if err := b.Vote(voter, proposal); err != nil {
					t.Fatalf("Vote failed for %s: %v", voter, err)
				}
			}

			req := testutil.MakeRequest("GET", "/ballots/"+id+"/winner", nil, nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.GetWinner(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.WinnerResponse
			testutil.AssertJSON(t, w, &resp)
			if resp != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, resp)
			}
		})
	}
}

func TestGetProposalsHandler(t *testing.T) {
	reg := testutil.NewTestRegistry(t)
	handler := NewResultsHandler(reg)

	id := testutil.CreateTestBallot(t, reg, "owner", 10, false)
	b, _ := reg.Get(id)
	if err := b.WhitelistVoter("owner", "alice"); err != nil {
		t.Fatalf("WhitelistVoter failed: %v", err)
	}
	if err := b.Vote("alice", 2); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	req := testutil.MakeRequest("GET", "/ballots/"+id+"/proposals", nil, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	handler.GetProposals(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var proposals []models.Proposal
	testutil.AssertJSON(t, w, &proposals)
	if len(proposals) != 3 {
		t.Fatalf("Expected 3 proposals, got %d", len(proposals))
	}
	if proposals[2].Name != "gamma" || proposals[2].VoteCount != 1 {
		t.Errorf("Unexpected third proposal: %+v", proposals[2])
	}
}

func TestResultsUnknownBallot(t *testing.T) {
	reg := testutil.NewTestRegistry(t)
	handler := NewResultsHandler(reg)

	endpoints := []struct {
		name string
		call func(w http.ResponseWriter, r *http.Request)
	}{
		{"status", handler.GetStatus},
		{"winner", handler.GetWinner},
		{"proposals", handler.GetProposals},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/ballots/nope/"+ep.name, nil, nil)
			req.SetPathValue("id", "nope")
			w := httptest.NewRecorder()

			ep.call(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
		})
	}
}
