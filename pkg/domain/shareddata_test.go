package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
)

func TestSharedData_Accessors(t *testing.T) {
	data := domain.NewSharedData(nil)
	assert.Equal(t, 0, data.Len())

	data.Set("answer", 42)
	assert.True(t, data.Has("answer"))

	v, ok := data.Get("answer")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	data.Set("answer", 43) // overwrite
	v, _ = data.Get("answer")
	assert.Equal(t, 43, v)

	data.Delete("answer")
	assert.False(t, data.Has("answer"))

	_, ok = data.Get("answer")
	assert.False(t, ok)
}

func TestSharedData_Keys(t *testing.T) {
	data := domain.NewSharedData(nil)
	assert.Empty(t, data.Keys())

	data.Set("charlie", 3)
	data.Set("alpha", 1)
	data.Set("bravo", 2)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, data.Keys())

	data.Delete("bravo")
	assert.Equal(t, []string{"alpha", "charlie"}, data.Keys())
}

func TestNewSharedData_CopiesSeed(t *testing.T) {
	seed := map[string]any{"a": 1}
	data := domain.NewSharedData(seed)

	seed["b"] = 2
	assert.False(t, data.Has("b"))
	assert.Equal(t, 1, data.Len())
}

func TestSharedData_Decode(t *testing.T) {
	data := domain.NewSharedData(map[string]any{
		"visits": 3,
		"path":   []string{"a", "b", "a"},
	})

	var view struct {
		Visits int      `mapstructure:"visits"`
		Path   []string `mapstructure:"path"`
	}
	require.NoError(t, data.Decode(&view))

	assert.Equal(t, 3, view.Visits)
	assert.Equal(t, []string{"a", "b", "a"}, view.Path)
}
