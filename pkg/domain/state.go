package domain

import "context"

// StateID uniquely names a state within one machine. Registered IDs must be
// non-empty; the zero value means "no state" and is what Load receives as
// prev on the machine's very first activation.
type StateID string

// TransitionFunc requests a transition to the given state. The machine hands
// one to every Load call; hosts may also supply their own via the machine's
// dispatch override to intercept transition requests.
type TransitionFunc func(ctx context.Context, id StateID) error

// State is the contract the machine depends on. The machine never inspects a
// state beyond calling these three hooks; implementations are free to carry
// any additional fields or behavior.
//
// A State instance belongs to exactly one machine. Sharing an instance
// across machines is not detected and leaves its hooks racing over whatever
// internal fields it carries.
type State interface {
	// Initialize is called exactly once, when the state is registered.
	// No state is active at that point.
	Initialize(ctx context.Context, data SharedData) error

	// Load is called on entry. prev is the previously active state, or the
	// zero StateID on the machine's first activation. transition requests
	// further transitions; calling it from inside Load itself is rejected
	// by the machine as re-entrant.
	Load(ctx context.Context, prev StateID, transition TransitionFunc, data SharedData) error

	// Unload is called on exit, before the incoming state's Load. next is
	// the state being transitioned to.
	Unload(ctx context.Context, next StateID, data SharedData) error
}

// StateFuncs adapts plain functions to the State interface. Nil fields are
// treated as no-ops, so callers only wire the hooks they care about.
type StateFuncs struct {
	OnInitialize func(ctx context.Context, data SharedData) error
	OnLoad       func(ctx context.Context, prev StateID, transition TransitionFunc, data SharedData) error
	OnUnload     func(ctx context.Context, next StateID, data SharedData) error
}

func (s StateFuncs) Initialize(ctx context.Context, data SharedData) error {
	if s.OnInitialize == nil {
		return nil
	}
	return s.OnInitialize(ctx, data)
}

func (s StateFuncs) Load(ctx context.Context, prev StateID, transition TransitionFunc, data SharedData) error {
	if s.OnLoad == nil {
		return nil
	}
	return s.OnLoad(ctx, prev, transition, data)
}

func (s StateFuncs) Unload(ctx context.Context, next StateID, data SharedData) error {
	if s.OnUnload == nil {
		return nil
	}
	return s.OnUnload(ctx, next, data)
}
