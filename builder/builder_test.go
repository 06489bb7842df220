package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namoa/builder"
	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
)

func directed() []core.GraphOption { return []core.GraphOption{core.WithDirected(true)} }

func TestGrid_Topology(t *testing.T) {
	g, err := builder.BuildGraph(2, directed(), nil, builder.Grid(3, 3))
	require.NoError(t, err)

	assert.Equal(t, 9, g.VertexCount())
	// 12 undirected neighbour pairs, two arcs each.
	assert.Equal(t, 24, g.EdgeCount())
	assert.Equal(t, "0,0", g.Vertices()[0])
	assert.Equal(t, "2,2", g.Vertices()[8])
	assert.True(t, g.HasEdge("1,1", "1,2"))
	assert.True(t, g.HasEdge("1,2", "1,1"))
	assert.False(t, g.HasEdge("0,0", "1,1"))

	for _, e := range g.Edges() {
		assert.Equal(t, criteria.Of(1, 1), e.Cost)
	}
}

func TestGrid_UndirectedEmitsOneEdgePerPair(t *testing.T) {
	g, err := builder.BuildGraph(1, nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 7, g.EdgeCount())
}

func TestGrid_WeightsDeterministicPerSeed(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFns(builder.ConstantWeightFn(1), builder.UniformWeightFn(1, 3)),
	}
	g1, err := builder.BuildGraph(2, directed(), opts, builder.Grid(4, 4))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(2, directed(), opts, builder.Grid(4, 4))
	require.NoError(t, err)

	e1, e2 := g1.Edges(), g2.Edges()
	require.Equal(t, len(e1), len(e2))
	for i := range e1 {
		assert.Equal(t, e1[i].Cost, e2[i].Cost)
		assert.Equal(t, criteria.Weight(1), e1[i].Cost[0])
		assert.GreaterOrEqual(t, e1[i].Cost[1], criteria.Weight(1))
		assert.LessOrEqual(t, e1[i].Cost[1], criteria.Weight(3))
	}
	// Symmetric pairs share a cost.
	for i := 0; i < len(e1); i += 2 {
		assert.Equal(t, e1[i].From, e1[i+1].To)
		assert.Equal(t, e1[i].Cost, e1[i+1].Cost)
	}
}

func TestGrid_AddingCriterionKeepsEarlierWeights(t *testing.T) {
	u := builder.UniformWeightFn(1, 100)
	g2, err := builder.BuildGraph(2, directed(),
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFns(u, u)}, builder.Grid(3, 3))
	require.NoError(t, err)
	g3, err := builder.BuildGraph(3, directed(),
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFns(u, u, u)}, builder.Grid(3, 3))
	require.NoError(t, err)

	for i, e := range g2.Edges() {
		assert.Equal(t, e.Cost, g3.Edges()[i].Cost[:2])
	}
}

func TestGrid_TooSmall(t *testing.T) {
	_, err := builder.BuildGraph(2, nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(2, directed(),
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	_, err = builder.BuildGraph(2, nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(2, directed(), nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(2, directed(), []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(2, directed(), nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.EdgeCount())

	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFns(builder.UniformWeightFn(1, 9))}
	a, err := builder.BuildGraph(2, directed(), opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph(2, directed(), opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for i, e := range a.Edges() {
		assert.Equal(t, e.From, b.Edges()[i].From)
		assert.Equal(t, e.To, b.Edges()[i].To)
		assert.Equal(t, e.Cost, b.Edges()[i].Cost)
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(2, nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	fns := builder.WithWeightFns(builder.DefaultWeightFn, builder.DefaultWeightFn, builder.DefaultWeightFn)
	_, err = builder.BuildGraph(2, nil, []builder.BuilderOption{fns}, builder.Grid(2, 2))
	assert.ErrorIs(t, err, builder.ErrCriteriaMismatch)

	_, err = builder.BuildGraph(0, nil, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestWeightFns(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 5) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.WithWeightFns(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	assert.Equal(t, criteria.Weight(4), builder.ConstantWeightFn(4)(nil))
	assert.Equal(t, criteria.Weight(2), builder.UniformWeightFn(2, 8)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
}

func TestGridID(t *testing.T) {
	r, c, err := builder.ParseGridID(builder.GridID(12, 3))
	require.NoError(t, err)
	assert.Equal(t, 12, r)
	assert.Equal(t, 3, c)

	_, _, err = builder.ParseGridID("x")
	assert.Error(t, err)
}
