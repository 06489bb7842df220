package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namoa/builder"
	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/network"
)

func randomNetwork(t *testing.T, seed int64, n int, p float64, k int) *network.Network {
	t.Helper()
	fns := make([]builder.WeightFn, k)
	for i := range fns {
		fns[i] = builder.UniformWeightFn(0, 9)
	}
	g, err := builder.BuildGraph(k,
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFns(fns...)},
		builder.RandomSparse(n, p))
	require.NoError(t, err)
	net, err := network.Build(g)
	require.NoError(t, err)

	return net
}

func gridNetwork(t *testing.T, seed int64, rows, cols int) *network.Network {
	t.Helper()
	g, err := builder.BuildGraph(2,
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFns(builder.UniformWeightFn(1, 10), builder.UniformWeightFn(1, 10)),
		},
		builder.Grid(rows, cols))
	require.NoError(t, err)
	net, err := network.Build(g)
	require.NoError(t, err)

	return net
}

// bellmanFord computes scalar distances to target on criterion c, independent
// of any queue.
func bellmanFord(net *network.Network, target, c int) []criteria.Weight {
	dist := make([]criteria.Weight, net.NumNodes())
	for i := range dist {
		dist[i] = criteria.Infinity
	}
	dist[target] = 0
	for changed := true; changed; {
		changed = false
		for u := 0; u < net.NumNodes(); u++ {
			for _, a := range net.Node(u).Out {
				if dist[a.Head] == criteria.Infinity {
					continue
				}
				if alt := dist[a.Head] + a.Cost[c]; alt < dist[u] {
					dist[u] = alt
					changed = true
				}
			}
		}
	}

	return dist
}

func TestBlind_ZeroEverywhere(t *testing.T) {
	net := randomNetwork(t, 1, 15, 0.2, 3)
	net.SetHeuristic(42)

	e := heuristic.NewBlind()
	for target := 0; target < net.NumNodes(); target += 4 {
		require.NoError(t, e.Init(net, 0, target))
		for v := 0; v < net.NumNodes(); v++ {
			assert.Equal(t, criteria.Zero(3), net.Node(v).Heuristic)
		}
	}
	assert.NoError(t, heuristic.CheckConsistent(net))
}

func TestIdeal_MatchesScalarShortestPaths(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		net := randomNetwork(t, seed, 30, 0.1, 3)
		e := heuristic.NewIdeal()
		for _, target := range []int{0, 7, 29} {
			require.NoError(t, e.Init(net, 0, target))
			for c := 0; c < 3; c++ {
				want := bellmanFord(net, target, c)
				for v := 0; v < net.NumNodes(); v++ {
					assert.Equal(t, want[v], net.Node(v).Heuristic[c],
						"seed=%d target=%d node=%d criterion=%d", seed, target, v, c)
				}
			}
			assert.NoError(t, heuristic.CheckConsistent(net))
		}
	}
}

func TestIdeal_UnreachableKeepsInfinity(t *testing.T) {
	g := core.NewGraph(2, core.WithDirected(true))
	_, err := g.AddEdge("a", "b", criteria.Of(1, 2))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("island"))
	net, err := network.Build(g)
	require.NoError(t, err)

	require.NoError(t, heuristic.NewIdeal().Init(net, 0, 1))
	assert.Equal(t, criteria.Of(1, 2), net.Node(0).Heuristic)
	assert.Equal(t, criteria.Zero(2), net.Node(1).Heuristic)
	assert.Equal(t, criteria.Filled(2, criteria.Infinity), net.Node(2).Heuristic)
}

func TestBoundedIdeal_Bounds(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		net := gridNetwork(t, seed, 6, 6)
		source, target := 0, net.NumNodes()-1

		b := heuristic.NewBoundedIdeal()
		require.NoError(t, b.Init(net, source, target))

		d0 := bellmanFord(net, target, 0)
		d1 := bellmanFord(net, target, 1)

		// Settled components are exact; the rest carry the sentinel.
		for v := 0; v < net.NumNodes(); v++ {
			h := net.Node(v).Heuristic
			if h[0] != criteria.Infinity {
				assert.Equal(t, d0[v], h[0])
			}
			if h[1] != criteria.Infinity {
				assert.Equal(t, d1[v], h[1])
			}
		}
		assert.Equal(t, d0[source], net.Node(source).Heuristic[0])
		assert.Equal(t, d1[source], net.Node(source).Heuristic[1])
		assert.GreaterOrEqual(t, b.Bound1, d1[source])
		assert.GreaterOrEqual(t, b.Bound0, d0[source])
		assert.True(t, b.Marked.Contains(uint32(source)))
		assert.Positive(t, b.Settled[0])
		assert.Positive(t, b.Settled[1])
	}
}

func TestBoundedIdeal_RejectsOtherCriteriaCounts(t *testing.T) {
	net := randomNetwork(t, 1, 5, 0.5, 3)
	err := heuristic.NewBoundedIdeal().Init(net, 0, 1)
	assert.ErrorIs(t, err, heuristic.ErrUnsupportedCriteria)
}

func TestInit_Validation(t *testing.T) {
	net := randomNetwork(t, 1, 5, 0.5, 2)
	for _, name := range heuristic.Names() {
		e, err := heuristic.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())
		assert.ErrorIs(t, e.Init(nil, 0, 0), heuristic.ErrNilNetwork)
		assert.ErrorIs(t, e.Init(net, 0, 5), heuristic.ErrNodeOutOfRange)
		assert.ErrorIs(t, e.Init(net, -1, 0), heuristic.ErrNodeOutOfRange)
	}
	_, err := heuristic.ByName("astar")
	assert.ErrorIs(t, err, heuristic.ErrUnknownEngine)
	e, err := heuristic.ByName("IDEAL")
	require.NoError(t, err)
	assert.Equal(t, heuristic.NameIdeal, e.Name())
}

func TestCheckConsistent_DetectsViolation(t *testing.T) {
	g := core.NewGraph(2, core.WithDirected(true))
	_, err := g.AddEdge("a", "b", criteria.Of(1, 1))
	require.NoError(t, err)
	net, err := network.Build(g)
	require.NoError(t, err)

	net.Node(0).Heuristic = criteria.Of(5, 0)
	err = heuristic.CheckConsistent(net)
	assert.ErrorIs(t, err, heuristic.ErrInconsistent)
	assert.ErrorIs(t, heuristic.CheckConsistent(nil), heuristic.ErrNilNetwork)
}

func TestInit_RestartsGeneration(t *testing.T) {
	net := gridNetwork(t, 3, 3, 3)
	for i := 0; i < 10; i++ {
		net.NextGeneration()
	}
	require.NoError(t, heuristic.NewIdeal().Init(net, 0, 8))
	assert.Equal(t, uint32(net.NumCriteria()), net.Generation(), "one generation per criterion")

	for i := 0; i < 10; i++ {
		net.NextGeneration()
	}
	require.NoError(t, heuristic.NewBoundedIdeal().Init(net, 0, 8))
	assert.Equal(t, uint32(1), net.Generation(), "only the distance-primary search stamps nodes")
}
