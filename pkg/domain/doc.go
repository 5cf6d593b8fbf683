/*
Package domain contains the core domain types for the Espalier state machine.

It defines the contract between the machine and caller-authored states: the
State interface with its three lifecycle hooks, the SharedData bag that
travels across transitions, the sentinel errors the machine can return, and
the lifecycle events used for observability. This package is kept pure and
free of I/O so that host applications can depend on it without pulling in
the runtime.

# Key Entities

  - StateID: the identifier naming a state within one machine.
  - State: a unit of behavior with Initialize/Load/Unload hooks.
  - SharedData: the mutable bag visible to every state of one machine.
  - LifecycleHooks: observability callbacks fired around transitions.
*/
package domain
