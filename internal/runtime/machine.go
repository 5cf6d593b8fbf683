package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
)

// Machine is the core transition controller. It owns the state registry,
// the shared data bag and the active-state pointer; all three are reachable
// only through its methods.
//
// The machine is single-threaded and fully synchronous: Register and the
// transition operations run every hook to completion before returning.
type Machine struct {
	id     string
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	// dispatch, when set, is handed to every Load call in place of the
	// machine's own TransitionTo. The machine never calls it itself.
	dispatch domain.TransitionFunc

	states  map[domain.StateID]domain.State
	data    domain.SharedData
	current domain.StateID

	// inTransition rejects transition requests issued from inside a hook.
	inTransition bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithID sets the machine identifier stamped on lifecycle events.
func WithID(id string) Option {
	return func(m *Machine) {
		m.id = id
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithDispatch sets the transition function handed to every Load call,
// replacing the machine's own TransitionTo. Hosts use this to intercept
// transition requests issued by states.
func WithDispatch(fn domain.TransitionFunc) Option {
	return func(m *Machine) {
		m.dispatch = fn
	}
}

// WithSharedData seeds the shared bag. The map is copied, not aliased.
func WithSharedData(initial map[string]any) Option {
	return func(m *Machine) {
		m.data = domain.NewSharedData(initial)
	}
}

// New creates an empty machine.
func New(opts ...Option) *Machine {
	m := &Machine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		states: make(map[domain.StateID]domain.State),
		data:   domain.NewSharedData(nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register stores state under id and synchronously calls its Initialize
// hook with the shared bag. Initialization order is registration order; the
// active state is never affected.
//
// If Initialize fails, the state is removed again and the error returned,
// so nothing half-registered stays behind.
func (m *Machine) Register(ctx context.Context, id domain.StateID, state domain.State) error {
	if id == "" {
		return domain.ErrEmptyStateID
	}
	if _, exists := m.states[id]; exists {
		return fmt.Errorf("register %q: %w", id, domain.ErrDuplicateState)
	}

	m.states[id] = state
	if err := state.Initialize(ctx, m.data); err != nil {
		delete(m.states, id)
		return fmt.Errorf("initialize %q: %w", id, err)
	}

	m.logger.Debug("state registered", "state", id)
	return nil
}

// Start activates the first state. It fails with ErrAlreadyStarted when a
// state is already active; otherwise it behaves exactly like TransitionTo.
func (m *Machine) Start(ctx context.Context, id domain.StateID) error {
	if m.current != "" {
		return fmt.Errorf("start %q: %w", id, domain.ErrAlreadyStarted)
	}
	return m.TransitionTo(ctx, id)
}

// TransitionTo unloads the active state (if any) and loads the target.
// Both hooks run to completion before it returns. Self-transitions are
// permitted and re-run both hooks.
//
// On hook failure the machine applies one fixed policy: if Unload fails the
// transition aborts with the outgoing state still active; if Load fails the
// outgoing state has already been torn down, so the active-state pointer is
// cleared and the machine is back in its not-started condition.
func (m *Machine) TransitionTo(ctx context.Context, id domain.StateID) error {
	if m.inTransition {
		return fmt.Errorf("transition to %q: %w", id, domain.ErrReentrantTransition)
	}

	next, ok := m.states[id]
	if !ok {
		err := fmt.Errorf("transition to %q: %w", id, domain.ErrUnknownState)
		m.emitTransitionError(ctx, m.current, id, err)
		return err
	}

	m.inTransition = true
	defer func() { m.inTransition = false }()

	prev := m.current

	if prev != "" {
		if err := m.states[prev].Unload(ctx, id, m.data); err != nil {
			err = fmt.Errorf("unload %q: %w", prev, err)
			m.emitTransitionError(ctx, prev, id, err)
			return err
		}
		m.emitStateLeave(ctx, prev, id)
	}

	dispatch := m.dispatch
	if dispatch == nil {
		dispatch = m.TransitionTo
	}

	if err := next.Load(ctx, prev, dispatch, m.data); err != nil {
		m.current = ""
		err = fmt.Errorf("load %q: %w", id, err)
		m.emitTransitionError(ctx, prev, id, err)
		return err
	}

	m.current = id
	m.logger.Debug("transition complete", "from", prev, "to", id)
	m.emitStateEnter(ctx, id, prev)
	return nil
}

// Current returns the active state, or the zero StateID before the first
// transition (and after a failed Load, see TransitionTo).
func (m *Machine) Current() domain.StateID {
	return m.current
}

// ID returns the machine identifier.
func (m *Machine) ID() string {
	return m.id
}

// StateIDs returns the registered identifiers in sorted order.
func (m *Machine) StateIDs() []domain.StateID {
	ids := make([]domain.StateID, 0, len(m.states))
	for id := range m.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *Machine) emitStateEnter(ctx context.Context, id, prev domain.StateID) {
	if m.hooks.OnStateEnter == nil {
		return
	}
	m.hooks.OnStateEnter(ctx, &domain.StateEvent{
		Timestamp: time.Now(),
		Type:      domain.EventStateEnter,
		MachineID: m.id,
		StateID:   id,
		Previous:  prev,
	})
}

func (m *Machine) emitStateLeave(ctx context.Context, id, next domain.StateID) {
	if m.hooks.OnStateLeave == nil {
		return
	}
	m.hooks.OnStateLeave(ctx, &domain.StateEvent{
		Timestamp: time.Now(),
		Type:      domain.EventStateLeave,
		MachineID: m.id,
		StateID:   id,
		Next:      next,
	})
}

func (m *Machine) emitTransitionError(ctx context.Context, prev, id domain.StateID, err error) {
	m.logger.Debug("transition failed", "from", prev, "to", id, "err", err)
	if m.hooks.OnTransitionError == nil {
		return
	}
	m.hooks.OnTransitionError(ctx, &domain.StateEvent{
		Timestamp: time.Now(),
		Type:      domain.EventTransitionError,
		MachineID: m.id,
		StateID:   id,
		Previous:  prev,
		Err:       err,
	})
}
