package espalier_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
)

// journalState records hook invocations for ordering assertions.
func journalState(id string, journal *[]string) domain.State {
	return domain.StateFuncs{
		OnLoad: func(ctx context.Context, prev domain.StateID, _ domain.TransitionFunc, data domain.SharedData) error {
			*journal = append(*journal, fmt.Sprintf("%s.load(prev=%s)", id, prev))
			return nil
		},
		OnUnload: func(ctx context.Context, next domain.StateID, data domain.SharedData) error {
			*journal = append(*journal, fmt.Sprintf("%s.unload(next=%s)", id, next))
			return nil
		},
	}
}

// The canonical two-state walkthrough: start at A, move to B, then fail
// toward an unregistered C.
func TestMachine_Walkthrough(t *testing.T) {
	ctx := context.Background()
	var journal []string

	m := espalier.New()
	require.NoError(t, m.Register(ctx, "A", journalState("A", &journal)))
	require.NoError(t, m.Register(ctx, "B", journalState("B", &journal)))

	require.NoError(t, m.Start(ctx, "A"))
	assert.Equal(t, domain.StateID("A"), m.Current())
	assert.Equal(t, []string{"A.load(prev=)"}, journal)

	require.NoError(t, m.TransitionTo(ctx, "B"))
	assert.Equal(t, domain.StateID("B"), m.Current())
	assert.Equal(t, []string{
		"A.load(prev=)",
		"A.unload(next=B)",
		"B.load(prev=A)",
	}, journal)

	err := m.TransitionTo(ctx, "C")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
	assert.Equal(t, domain.StateID("B"), m.Current())
}

func TestNew_Defaults(t *testing.T) {
	m := espalier.New()

	assert.NotEmpty(t, m.ID())
	assert.Equal(t, domain.StateID(""), m.Current())
	assert.Empty(t, m.StateIDs())
}

func TestNew_DistinctMachineIDs(t *testing.T) {
	assert.NotEqual(t, espalier.New().ID(), espalier.New().ID())
}

func TestWithSharedData(t *testing.T) {
	ctx := context.Background()

	var seen any
	m := espalier.New(espalier.WithSharedData(map[string]any{"greeting": "hello"}))
	require.NoError(t, m.Register(ctx, "a", domain.StateFuncs{
		OnLoad: func(ctx context.Context, prev domain.StateID, _ domain.TransitionFunc, data domain.SharedData) error {
			seen, _ = data.Get("greeting")
			return nil
		},
	}))

	require.NoError(t, m.Start(ctx, "a"))
	assert.Equal(t, "hello", seen)
}

func TestWithTransitionFunc(t *testing.T) {
	ctx := context.Background()

	var intercepted []domain.StateID
	m := espalier.New(espalier.WithTransitionFunc(func(ctx context.Context, id domain.StateID) error {
		intercepted = append(intercepted, id)
		return nil
	}))

	require.NoError(t, m.Register(ctx, "a", domain.StateFuncs{
		OnLoad: func(ctx context.Context, prev domain.StateID, transition domain.TransitionFunc, data domain.SharedData) error {
			return transition(ctx, "b")
		},
	}))
	require.NoError(t, m.Register(ctx, "b", domain.StateFuncs{}))

	require.NoError(t, m.Start(ctx, "a"))
	assert.Equal(t, []domain.StateID{"b"}, intercepted)
	assert.Equal(t, domain.StateID("a"), m.Current(), "the override decides when to apply the request")
}
