package espalier

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/runtime"
	"github.com/aretw0/espalier/pkg/domain"
)

// Machine is the public entry point. It wraps the internal runtime and owns
// the state registry, the shared data bag and the active-state pointer; none
// of the three is reachable except through its methods and the arguments the
// lifecycle hooks receive.
type Machine struct {
	runtime *runtime.Machine
}

// Option defines a functional option for configuring a Machine.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	dispatch domain.TransitionFunc
	seed     map[string]any
}

// WithLogger sets a custom structured logger. Machine internals log at
// Debug level only.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks fired around transitions.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithTransitionFunc overrides the transition function handed to every Load
// call. When set, states asking for a transition go through fn — not through
// the machine's own TransitionTo — which lets the host intercept or augment
// every request (logging, sequencing) without touching the states.
func WithTransitionFunc(fn domain.TransitionFunc) Option {
	return func(o *options) {
		o.dispatch = fn
	}
}

// WithSharedData seeds the shared bag with initial values.
func WithSharedData(initial map[string]any) Option {
	return func(o *options) {
		o.seed = initial
	}
}

// New creates an empty machine.
func New(opts ...Option) *Machine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logging.NewNop()
	}

	id := uuid.NewString()
	rt := runtime.New(
		runtime.WithID(id),
		runtime.WithLogger(o.logger.With("machine", id)),
		runtime.WithLifecycleHooks(o.hooks),
		runtime.WithDispatch(o.dispatch),
		runtime.WithSharedData(o.seed),
	)

	return &Machine{runtime: rt}
}

// Register stores state under id and runs its Initialize hook once,
// synchronously. It fails with domain.ErrDuplicateState when id is taken
// (the first registration stays in place) and with domain.ErrEmptyStateID
// when id is the zero value. Registering never changes the active state.
func (m *Machine) Register(ctx context.Context, id domain.StateID, state domain.State) error {
	return m.runtime.Register(ctx, id, state)
}

// Start activates the first state. It fails with domain.ErrAlreadyStarted
// when a state is already active; otherwise it is TransitionTo.
func (m *Machine) Start(ctx context.Context, id domain.StateID) error {
	return m.runtime.Start(ctx, id)
}

// TransitionTo deactivates the current state (Unload) and activates the
// target (Load). It fails with domain.ErrUnknownState for unregistered ids
// and with domain.ErrReentrantTransition when called from inside a hook of
// this machine. See the runtime documentation for the hook-failure policy.
func (m *Machine) TransitionTo(ctx context.Context, id domain.StateID) error {
	return m.runtime.TransitionTo(ctx, id)
}

// Current returns the active state identifier, or the zero StateID before
// the first transition.
func (m *Machine) Current() domain.StateID {
	return m.runtime.Current()
}

// ID returns the machine's instance identifier, as stamped on lifecycle
// events.
func (m *Machine) ID() string {
	return m.runtime.ID()
}

// StateIDs returns the registered identifiers in sorted order.
func (m *Machine) StateIDs() []domain.StateID {
	return m.runtime.StateIDs()
}
