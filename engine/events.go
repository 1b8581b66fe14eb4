// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

// Event names emitted by the engine.
const (
	EventBallotCreated      = "ballot.created"
	EventVoterWhitelisted   = "voter.whitelisted"
	EventVoteCast           = "vote.cast"
	EventDelegatedVote      = "vote.delegated"
	EventVotingStateChanged = "voting.state_changed"
	EventAdminAdded         = "admin.added"
	EventAdminRemoved       = "admin.removed"
)

// Event is a structured record of a successful mutation. Events are emitted
// synchronously, after the mutation has been applied, never for rejected
// calls.
type Event struct {
	Name     string         `json:"name"`
	BallotID string         `json:"ballot_id"`
	Data     map[string]any `json:"data,omitempty"`
}

// Sink receives events from a Ballot or Registry. Emit is called while the
// emitting ballot's lock is held so that sinks observe events in mutation
// order; implementations must not call back into the engine.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// MultiSink fans an event out to several sinks in order.
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(ev Event) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(ev)
			}
		}
	})
}

func (b *Ballot) emit(name string, data map[string]any) {
	if b.sink == nil {
		return
	}
	b.sink.Emit(Event{Name: name, BallotID: b.id, Data: data})
}
