/*
Package espalier is a minimal finite-state-machine runtime: a registry of
named states, each exposing three lifecycle hooks, plus a machine that
transitions between them while sharing a mutable data bag.

States implement domain.State (or are assembled from funcs via
domain.StateFuncs). Registering a state runs its Initialize hook once; a
transition runs Unload on the outgoing state, then Load on the incoming one,
with the shared bag passed to every hook:

	m := espalier.New()
	_ = m.Register(ctx, "idle", idleState)
	_ = m.Register(ctx, "busy", busyState)

	if err := m.Start(ctx, "idle"); err != nil { ... }
	if err := m.TransitionTo(ctx, "busy"); err != nil { ... }

The machine is single-threaded and fully synchronous. Transitions requested
from inside a hook are rejected as re-entrant; states that want to chain
transitions hand the TransitionFunc they received back to the host loop.

There are no hierarchical states, no transition tables, no event queue and
no persistence. Observability is attached through domain.LifecycleHooks; see
pkg/observability for ready-made slog and prometheus hooks.
*/
package espalier
