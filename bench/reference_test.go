package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/network"
)

func TestReferenceFront(t *testing.T) {
	g := core.NewGraph(2, core.WithDirected(true))
	for _, e := range []struct {
		u, v string
		c    criteria.Vector
	}{
		{"A", "B", criteria.Of(4, 0)},
		{"B", "D", criteria.Of(1, 0)},
		{"A", "C", criteria.Of(2, 9)},
		{"C", "D", criteria.Of(1, 0)},
		{"A", "E", criteria.Of(3, 9)},
		{"E", "D", criteria.Of(0, 0)},
		{"A", "F", criteria.Of(4, 9)},
		{"F", "D", criteria.Of(0, 1)},
	} {
		_, err := g.AddEdge(e.u, e.v, e.c)
		require.NoError(t, err)
	}
	net, err := network.Build(g)
	require.NoError(t, err)
	a, _ := net.Index("A")
	d, _ := net.Index("D")

	got := referenceFront(net, a, d)
	assert.Equal(t, []criteria.Vector{criteria.Of(3, 9), criteria.Of(5, 0)}, got, "ties kept once, (4,10) dropped")
	assert.Equal(t, []criteria.Vector{criteria.Zero(2)}, referenceFront(net, a, a))
	assert.Empty(t, referenceFront(net, d, a))
}

func TestCrossCheck(t *testing.T) {
	x, y := criteria.Of(1, 5), criteria.Of(3, 1)

	assert.NoError(t, crossCheck(0, []criteria.Vector{x, y}, []criteria.Vector{y, x}))
	assert.ErrorIs(t, crossCheck(1, []criteria.Vector{x, y}, []criteria.Vector{x}), ErrMismatch)
	assert.ErrorIs(t, crossCheck(2, nil, []criteria.Vector{x}), ErrMismatch)
	assert.NoError(t, crossCheck(3, nil, nil))
}
