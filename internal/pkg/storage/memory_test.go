package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Save("k", map[string]int{"a": 1}))

	var out map[string]int
	require.True(t, m.Load("k", &out))
	assert.Equal(t, 1, out["a"])
}

func TestMemoryAbsent(t *testing.T) {
	var out map[string]int
	assert.False(t, NewMemory().Load("nope", &out))
}

func TestNoopLoadsNothing(t *testing.T) {
	n := Noop{}
	require.NoError(t, n.Save("k", "v"))
	var out string
	assert.False(t, n.Load("k", &out), "noop store must not retain writes")
}
