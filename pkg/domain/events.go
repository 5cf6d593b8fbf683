package domain

import (
	"context"
	"time"
)

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventStateEnter      EventType = "state_enter"
	EventStateLeave      EventType = "state_leave"
	EventTransitionError EventType = "transition_error"
)

// StateEvent describes one lifecycle occurrence on one machine.
type StateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	MachineID string    `json:"machine_id"`

	// StateID is the state the event is about: the entered state for
	// state_enter, the departed state for state_leave, the transition
	// target for transition_error.
	StateID StateID `json:"state_id"`

	// Previous is the state that was active before the transition
	// (zero on the first activation).
	Previous StateID `json:"previous,omitempty"`

	// Next is the state being transitioned to. Set on state_leave.
	Next StateID `json:"next,omitempty"`

	// Err carries the hook failure for transition_error events.
	Err error `json:"-"`
}

// LifecycleHooks defines callbacks for machine observability. Nil fields
// are skipped. Hooks run synchronously inside the transition; they must not
// request transitions themselves.
type LifecycleHooks struct {
	OnStateEnter      func(context.Context, *StateEvent)
	OnStateLeave      func(context.Context, *StateEvent)
	OnTransitionError func(context.Context, *StateEvent)
}
