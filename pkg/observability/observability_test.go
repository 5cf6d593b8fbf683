package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/observability"
)

func TestAuditHooks(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	m := espalier.New(espalier.WithLifecycleHooks(observability.NewAuditHooks(logger)))
	require.NoError(t, m.Register(ctx, "a", domain.StateFuncs{}))
	require.NoError(t, m.Register(ctx, "b", domain.StateFuncs{}))

	require.NoError(t, m.Start(ctx, "a"))
	require.NoError(t, m.TransitionTo(ctx, "b"))
	require.Error(t, m.TransitionTo(ctx, "ghost"))

	out := buf.String()
	assert.Contains(t, out, "state enter")
	assert.Contains(t, out, "state leave")
	assert.Contains(t, out, "transition failed")
	assert.Contains(t, out, "state=b")
}

func TestMetricsHooks(t *testing.T) {
	ctx := context.Background()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	m := espalier.New(espalier.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, m.Register(ctx, "a", domain.StateFuncs{}))
	require.NoError(t, m.Register(ctx, "b", domain.StateFuncs{}))

	require.NoError(t, m.Start(ctx, "a"))
	require.NoError(t, m.TransitionTo(ctx, "b"))
	require.NoError(t, m.TransitionTo(ctx, "a"))
	require.Error(t, m.TransitionTo(ctx, "ghost"))

	id := m.ID()
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues(id, "", "a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues(id, "a", "b")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues(id, "b", "a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Errors.WithLabelValues(id, "ghost")))
}

func TestCombine(t *testing.T) {
	ctx := context.Background()

	var order []string
	mark := func(name string) domain.LifecycleHooks {
		return domain.LifecycleHooks{
			OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
				order = append(order, name)
			},
		}
	}

	combined := observability.Combine(mark("first"), domain.LifecycleHooks{}, mark("second"))
	combined.OnStateEnter(ctx, &domain.StateEvent{})

	assert.Equal(t, []string{"first", "second"}, order)
}
