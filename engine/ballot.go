// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "sync"

// MaxProposals bounds the proposal list of a single ballot.
const MaxProposals = 5

// Proposal is a named option with an accumulating vote tally.
type Proposal struct {
	Name      string
	VoteCount uint64
}

// Voter is the per-ballot record for one identity. Zero value means
// "never referenced"; the record becomes meaningful once whitelisted.
type Voter struct {
	HasVoted      bool
	IsWhitelisted bool
	VotedProposal int    // valid only when HasVoted via a direct vote
	DelegateTo    string // terminal delegate, empty if none
	Weight        uint64
}

// BallotStatus is the live status snapshot returned by Status.
type BallotStatus struct {
	TotalVoters     int
	VotesCount      int
	VotingOpen      bool
	AllowDelegation bool
	MaxVotes        int
}

// Ballot is the voting state machine: a fixed proposal list, a whitelist of
// voters bounded by MaxVotes, an acyclic delegation graph, and an open/closed
// flag. Every mutating method validates all preconditions before writing
// anything, so a rejected call leaves the ballot unchanged. A single RWMutex
// serializes mutations; reads may run concurrently.
type Ballot struct {
	mu sync.RWMutex

	id        string
	proposals []Proposal
	voters    map[string]*Voter
	authority *Authority

	totalVoters     int
	votesCount      int
	votingOpen      bool
	allowDelegation bool
	maxVotes        int

	sink Sink
}

// NewBallot constructs an open ballot. The proposal set and maxVotes are
// immutable for the ballot's lifetime. sink may be nil.
func NewBallot(id string, proposalNames []string, maxVotes int, allowDelegation bool, owner string, sink Sink) (*Ballot, error) {
	if len(proposalNames) == 0 {
		return nil, ErrNoProposals
	}
	if len(proposalNames) > MaxProposals {
		return nil, ErrTooManyProposals
	}
	if maxVotes < 0 {
		return nil, ErrInvalidMaxVotes
	}

	proposals := make([]Proposal, len(proposalNames))
	for i, name := range proposalNames {
		proposals[i] = Proposal{Name: name}
	}

	return &Ballot{
		id:              id,
		proposals:       proposals,
		voters:          make(map[string]*Voter),
		authority:       NewAuthority(owner),
		votingOpen:      true,
		allowDelegation: allowDelegation,
		maxVotes:        maxVotes,
		sink:            sink,
	}, nil
}

func (b *Ballot) ID() string    { return b.id }
func (b *Ballot) Owner() string { return b.authority.Owner() }

// voter returns the record for id, creating a zero-valued one on first
// reference. Callers must hold b.mu.
func (b *Ballot) voter(id string) *Voter {
	v, ok := b.voters[id]
	if !ok {
		v = &Voter{VotedProposal: -1}
		b.voters[id] = v
	}
	return v
}

// WhitelistVoter grants voterID the right to vote on this ballot. Fails hard
// if the voter is already whitelisted or the ballot is at capacity.
func (b *Ballot) WhitelistVoter(caller, voterID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authority.requireAdmin(caller); err != nil {
		return err
	}
	if voterID == "" {
		return ErrEmptyVoterID
	}
	if v, ok := b.voters[voterID]; ok && v.IsWhitelisted {
		return ErrAlreadyWhitelisted
	}
	if b.totalVoters == b.maxVotes {
		return ErrCapacityReached
	}

	v := b.voter(voterID)
	v.IsWhitelisted = true
	v.Weight = 1
	b.totalVoters++

	b.emit(EventVoterWhitelisted, map[string]any{"voter": voterID})
	return nil
}

// WhitelistVoters whitelists a batch of voters. Unlike WhitelistVoter, an
// already-whitelisted entry is skipped without error, and iteration simply
// stops once capacity is reached. Returns the number of voters added.
func (b *Ballot) WhitelistVoters(caller string, voterIDs []string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authority.requireAdmin(caller); err != nil {
		return 0, err
	}

	added := 0
	for _, id := range voterIDs {
		if b.totalVoters == b.maxVotes {
			break
		}
		if id == "" {
			continue
		}
		if v, ok := b.voters[id]; ok && v.IsWhitelisted {
			continue
		}
		v := b.voter(id)
		v.IsWhitelisted = true
		v.Weight = 1
		b.totalVoters++
		added++
		b.emit(EventVoterWhitelisted, map[string]any{"voter": id})
	}
	return added, nil
}

// Vote casts the caller's full current weight for proposalID.
func (b *Ballot) Vote(caller string, proposalID int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.votingOpen {
		return ErrVotingClosed
	}
	v, ok := b.voters[caller]
	if !ok || !v.IsWhitelisted {
		return ErrNotWhitelisted
	}
	if v.HasVoted {
		return ErrAlreadyVoted
	}
	if proposalID < 0 || proposalID >= len(b.proposals) {
		return ErrInvalidProposal
	}

	v.HasVoted = true
	v.VotedProposal = proposalID
	b.proposals[proposalID].VoteCount += v.Weight
	b.votesCount++

	b.emit(EventVoteCast, map[string]any{"voter": caller, "proposal_id": proposalID})
	return nil
}

// Delegate transfers the caller's unused weight to another whitelisted voter.
// The target is resolved forward along existing delegations to the chain's
// terminal node and the caller's pointer is collapsed directly to it. A walk
// that would revisit the caller is rejected before any state is written.
// Delegating permanently consumes the caller's voting eligibility.
func (b *Ballot) Delegate(caller, to string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.votingOpen {
		return ErrVotingClosed
	}
	if !b.allowDelegation {
		return ErrDelegationDisabled
	}
	v, ok := b.voters[caller]
	if !ok || !v.IsWhitelisted {
		return ErrNotWhitelisted
	}
	if v.HasVoted {
		return ErrAlreadyVoted
	}
	if to == caller {
		return ErrSelfDelegation
	}
	target, ok := b.voters[to]
	if !ok || !target.IsWhitelisted {
		return ErrNotWhitelisted
	}

	// Walk forward pointers to the chain's terminal node. The walk is bounded
	// by the number of registered voters; the delegation graph is acyclic, so
	// the only way to come back around is through the caller itself.
	resolved := to
	for hops := 0; hops <= len(b.voters); hops++ {
		if resolved == caller {
			return ErrDelegationLoop
		}
		next := b.voters[resolved].DelegateTo
		if next == "" {
			break
		}
		resolved = next
	}
	if resolved == caller {
		return ErrDelegationLoop
	}

	v.DelegateTo = resolved
	v.HasVoted = true
	rv := b.voters[resolved]
	if rv.HasVoted {
		// The terminal delegate already cast a direct vote: the weight lands
		// on their chosen proposal immediately.
		b.proposals[rv.VotedProposal].VoteCount += v.Weight
	} else {
		// Deferred: realized when the terminal delegate votes or delegates on.
		rv.Weight += v.Weight
	}

	b.emit(EventDelegatedVote, map[string]any{"from": caller, "to": to, "resolved": resolved})
	return nil
}

// SetVotingState opens or closes voting. Idempotent: setting the current
// value still succeeds and still emits an event.
func (b *Ballot) SetVotingState(caller string, open bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authority.requireAdmin(caller); err != nil {
		return err
	}
	b.votingOpen = open

	b.emit(EventVotingStateChanged, map[string]any{"is_open": open})
	return nil
}

// AddAdmin grants target admin rights on this ballot. Owner only.
func (b *Ballot) AddAdmin(caller, target string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authority.AddAdmin(caller, target); err != nil {
		return err
	}
	b.emit(EventAdminAdded, map[string]any{"admin": target})
	return nil
}

// RemoveAdmin revokes target's admin rights on this ballot. Owner only; the
// owner itself can never be removed.
func (b *Ballot) RemoveAdmin(caller, target string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authority.RemoveAdmin(caller, target); err != nil {
		return err
	}
	b.emit(EventAdminRemoved, map[string]any{"admin": target})
	return nil
}

// IsAdmin reports whether addr holds admin rights on this ballot.
func (b *Ballot) IsAdmin(addr string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.authority.IsAdmin(addr)
}

// WinningProposal returns the index of the proposal with the highest vote
// count. Ties favor the lowest index; an all-zero tally yields index 0.
func (b *Ballot) WinningProposal() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.winningProposal()
}

func (b *Ballot) winningProposal() int {
	winner := 0
	var max uint64
	for i, p := range b.proposals {
		if p.VoteCount > max {
			max = p.VoteCount
			winner = i
		}
	}
	return winner
}

// WinnerName returns the name of the currently winning proposal.
func (b *Ballot) WinnerName() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.proposals[b.winningProposal()].Name
}

// ProposalCount returns the fixed number of proposals.
func (b *Ballot) ProposalCount() int {
	return len(b.proposals)
}

// Proposals returns a copy of the proposal list with current tallies.
func (b *Ballot) Proposals() []Proposal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Proposal, len(b.proposals))
	copy(out, b.proposals)
	return out
}

// Status returns the live status counters.
func (b *Ballot) Status() BallotStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return BallotStatus{
		TotalVoters:     b.totalVoters,
		VotesCount:      b.votesCount,
		VotingOpen:      b.votingOpen,
		AllowDelegation: b.allowDelegation,
		MaxVotes:        b.maxVotes,
	}
}

// VoterInfo returns a copy of the voter record for id, and whether one exists.
func (b *Ballot) VoterInfo(id string) (Voter, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.voters[id]
	if !ok {
		return Voter{VotedProposal: -1}, false
	}
	return *v, true
}
