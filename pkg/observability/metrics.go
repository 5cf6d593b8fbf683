package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/espalier/pkg/domain"
)

// Metrics holds the prometheus collectors for machine transitions.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Errors      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_transitions_total",
				Help: "Total number of completed state transitions",
			},
			[]string{"machine", "from", "to"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_transition_errors_total",
				Help: "Total number of failed state transitions",
			},
			[]string{"machine", "target"},
		),
	}
	reg.MustRegister(m.Transitions, m.Errors)
	return m
}

// Hooks adapts the collectors to lifecycle hooks. Completed transitions are
// counted on state entry, so the "from" label is empty for the first one.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(_ context.Context, e *domain.StateEvent) {
			m.Transitions.WithLabelValues(e.MachineID, string(e.Previous), string(e.StateID)).Inc()
		},
		OnTransitionError: func(_ context.Context, e *domain.StateEvent) {
			m.Errors.WithLabelValues(e.MachineID, string(e.StateID)).Inc()
		},
	}
}
