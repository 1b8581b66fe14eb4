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

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Create ballot
// 2. Whitelist voters (single and batch)
// 3. Delegate along a chain
// 4. Cast direct votes
// 5. Close voting
// 6. Verify status and winner
func TestFullVotingWorkflow(t *testing.T) {
	reg := testutil.NewTestRegistry(t)
	cfg := testutil.GetTestConfig()
	ballotHandler := NewBallotHandler(reg, cfg)
	votingHandler := NewVotingHandler(reg, cfg)
	adminHandler := NewAdminHandler(reg, cfg)
	resultsHandler := NewResultsHandler(reg)

	// Step 1: Create a ballot
	createReq := models.CreateBallotRequest{
		ProposalNames:   []string{"Pizza", "Sushi", "Tacos"},
		Description:     "Team lunch",
		MaxVotes:        10,
		AllowDelegation: true,
	}
	req := testutil.MakeRequest("POST", "/ballots", createReq, testutil.CallerHeaders("chair"))
	w := httptest.NewRecorder()
	ballotHandler.CreateBallot(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create ballot failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreateBallotResponse
	testutil.AssertJSON(t, w, &createResp)
	ballotID := createResp.BallotID
	if ballotID == "" {
		t.Fatal("Step 1 - Missing ballot_id")
	}
	t.Logf("Step 1 - Created ballot: %s", ballotID)

	// Step 2: Whitelist one voter, then a batch
	req = testutil.MakeRequest("POST", "/ballots/"+ballotID+"/voters",
		models.WhitelistVoterRequest{Voter: "alice"}, testutil.CallerHeaders("chair"))
	req.SetPathValue("id", ballotID)
	w = httptest.NewRecorder()
	votingHandler.WhitelistVoter(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Step 2 - Whitelist alice failed: %d - %s", w.Code, w.Body.String())
	}

	req = testutil.MakeRequest("POST", "/ballots/"+ballotID+"/voters/batch",
		models.WhitelistVotersRequest{Voters: []string{"bob", "carol", "dave"}},
		testutil.CallerHeaders("chair"))
	req.SetPathValue("id", ballotID)
	w = httptest.NewRecorder()
	votingHandler.WhitelistVoters(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Batch whitelist failed: %d - %s", w.Code, w.Body.String())
	}
	var batchResp models.WhitelistVotersResponse
	testutil.AssertJSON(t, w, &batchResp)
	if batchResp.Added != 3 {
		t.Fatalf("Step 2 - Expected 3 added, got %d", batchResp.Added)
	}
	t.Log("Step 2 - Whitelisted 4 voters")

	// Step 3: alice delegates to bob, bob delegates to carol.
	// Both chains collapse to carol, who now carries weight 3.
	for _, d := range []struct{ from, to string }{
		{"alice", "bob"},
		{"bob", "carol"},
	} {
		req = testutil.MakeRequest("POST", "/ballots/"+ballotID+"/delegate",
			models.DelegateRequest{To: d.to}, testutil.CallerHeaders(d.from))
		req.SetPathValue("id", ballotID)
		w = httptest.NewRecorder()
		votingHandler.Delegate(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Step 3 - Delegate %s->%s failed: %d - %s", d.from, d.to, w.Code, w.Body.String())
		}
	}
	t.Log("Step 3 - Delegation chain built")

	// Step 4: carol votes Sushi with accumulated weight, dave votes Pizza
	for _, v := range []struct {
		voter    string
		proposal int
	}{
		{"carol", 1},
		{"dave", 0},
	} {
		req = testutil.MakeRequest("POST", "/ballots/"+ballotID+"/votes",
			models.VoteRequest{ProposalID: v.proposal}, testutil.CallerHeaders(v.voter))
		req.SetPathValue("id", ballotID)
		w = httptest.NewRecorder()
		votingHandler.Vote(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Step 4 - Vote by %s failed: %d - %s", v.voter, w.Code, w.Body.String())
		}
	}
	t.Log("Step 4 - Votes cast")

	// Step 5: Close voting
	req = testutil.MakeRequest("PUT", "/ballots/"+ballotID+"/voting-state",
		models.SetVotingStateRequest{Open: false}, testutil.CallerHeaders("chair"))
	req.SetPathValue("id", ballotID)
	w = httptest.NewRecorder()
	adminHandler.SetVotingState(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Step 5 - Close voting failed: %d - %s", w.Code, w.Body.String())
	}

	// A vote after closing must be rejected
	req = testutil.MakeRequest("POST", "/ballots/"+ballotID+"/votes",
		models.VoteRequest{ProposalID: 0}, testutil.CallerHeaders("alice"))
	req.SetPathValue("id", ballotID)
	w = httptest.NewRecorder()
	votingHandler.Vote(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("Step 5 - Expected 409 after closing, got %d", w.Code)
	}
	t.Log("Step 5 - Voting closed")

	// Step 6: Verify status and winner
	req = testutil.MakeRequest("GET", "/ballots/"+ballotID+"/status", nil, nil)
	req.SetPathValue("id", ballotID)
	w = httptest.NewRecorder()
	resultsHandler.GetStatus(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var status models.BallotStatus
	testutil.AssertJSON(t, w, &status)
	if status.TotalVoters != 4 {
		t.Errorf("Step 6 - Expected 4 voters, got %d", status.TotalVoters)
	}
	// Delegations count as participation only through carol's direct vote
	if status.VotesCount != 2 {
		t.Errorf("Step 6 - Expected 2 direct votes, got %d", status.VotesCount)
	}
	if status.VotingOpen {
		t.Error("Step 6 - Expected voting to be closed")
	}

	req = testutil.MakeRequest("GET", "/ballots/"+ballotID+"/winner", nil, nil)
	req.SetPathValue("id", ballotID)
	w = httptest.NewRecorder()
	resultsHandler.GetWinner(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var winner models.WinnerResponse
	testutil.AssertJSON(t, w, &winner)
	if winner.ProposalID != 1 || winner.Name != "Sushi" || winner.VoteCount != 3 {
		t.Errorf("Step 6 - Expected Sushi winning with 3, got %+v", winner)
	}
	t.Logf("Step 6 - Winner: %s with %d votes", winner.Name, winner.VoteCount)
}
