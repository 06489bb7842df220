package namoa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/network"
)

func labels(vs ...criteria.Vector) []*network.Label {
	out := make([]*network.Label, len(vs))
	for i, v := range vs {
		out[i] = &network.Label{Cost: v}
	}

	return out
}

func TestMergeOpen(t *testing.T) {
	open := labels(criteria.Of(2, 8), criteria.Of(5, 5), criteria.Of(8, 2))

	t.Run("equal rejected", func(t *testing.T) {
		got, inserted, front := mergeOpen(open, criteria.Of(5, 5), nil, 0)
		assert.False(t, inserted)
		assert.False(t, front)
		assert.Equal(t, Costs(open), Costs(got))
	})

	t.Run("dominated rejected", func(t *testing.T) {
		_, inserted, _ := mergeOpen(open, criteria.Of(6, 6), nil, 0)
		assert.False(t, inserted)
	})

	t.Run("middle insert", func(t *testing.T) {
		got, inserted, front := mergeOpen(open, criteria.Of(4, 6), nil, 0)
		assert.True(t, inserted)
		assert.False(t, front)
		assert.Equal(t, []criteria.Vector{criteria.Of(2, 8), criteria.Of(4, 6), criteria.Of(5, 5), criteria.Of(8, 2)}, Costs(got))
	})

	t.Run("new front drops dominated", func(t *testing.T) {
		pred := &network.Label{Cost: criteria.Of(0, 0)}
		got, inserted, front := mergeOpen(open, criteria.Of(1, 5), pred, 3)
		assert.True(t, inserted)
		assert.True(t, front)
		assert.Equal(t, []criteria.Vector{criteria.Of(1, 5), criteria.Of(8, 2)}, Costs(got))
		assert.Same(t, pred, got[0].Pred)
		assert.Equal(t, 3, got[0].Node)
	})

	t.Run("empty", func(t *testing.T) {
		got, inserted, front := mergeOpen(nil, criteria.Of(1, 1), nil, 0)
		assert.True(t, inserted)
		assert.True(t, front)
		assert.Len(t, got, 1)
	})
}
