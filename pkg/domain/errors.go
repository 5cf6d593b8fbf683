package domain

import "errors"

// ErrDuplicateState is returned by Register when the identifier is already
// taken. The first registration stays in place.
var ErrDuplicateState = errors.New("state already registered")

// ErrUnknownState is returned by transitions targeting an identifier that
// was never registered. The active state is unchanged.
var ErrUnknownState = errors.New("state not registered")

// ErrEmptyStateID is returned by Register when the identifier is the zero
// value, which is reserved for "no state".
var ErrEmptyStateID = errors.New("state id must not be empty")

// ErrAlreadyStarted is returned by Start when a state is already active.
var ErrAlreadyStarted = errors.New("machine already started")

// ErrReentrantTransition is returned when a transition is requested from
// within a lifecycle hook of the same machine.
var ErrReentrantTransition = errors.New("re-entrant transition")
