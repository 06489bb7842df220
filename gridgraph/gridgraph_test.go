package gridgraph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namoa/builder"
	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/gridgraph"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/namoa"
	"github.com/katalvlaran/namoa/network"
)

const tiny = `c 2x2 grid, two criteria
4 3
a 0 0 0 1 1 5
a 0 0 1 0 3 1

a 0 1 1 1 2 2
`

func TestRead_Tiny(t *testing.T) {
	g, err := gridgraph.Read(strings.NewReader(tiny), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Dim)
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Graph.Vertices())
	assert.Equal(t, 6, g.Graph.EdgeCount())
	assert.True(t, g.Graph.Directed())
	assert.True(t, g.Graph.HasEdge("0", "1"))
	assert.True(t, g.Graph.HasEdge("1", "0"))
	assert.True(t, g.Graph.HasEdge("3", "1"))
	assert.False(t, g.Graph.HasEdge("0", "3"))
	assert.Equal(t, 3, g.NodeIndex(1, 1))
	assert.Equal(t, "2", g.NodeID(1, 0))
}

func TestRead_OneWayAndParallel(t *testing.T) {
	in := "4 2\na 0 0 0 1 1 1\na 0 0 0 1 2 0\n"
	g, err := gridgraph.Read(strings.NewReader(in), 2, gridgraph.WithOneWay())
	require.NoError(t, err)
	assert.Equal(t, 2, g.Graph.EdgeCount())
	assert.False(t, g.Graph.HasEdge("1", "0"))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		k    int
		err  error
	}{
		{"NoCriteria", "4 0\n", 0, gridgraph.ErrBadCriteria},
		{"Empty", "", 2, gridgraph.ErrMalformed},
		{"OnlyComments", "c nothing\n", 2, gridgraph.ErrMalformed},
		{"BadHeader", "4\n", 2, gridgraph.ErrMalformed},
		{"NotSquare", "5 0\n", 2, gridgraph.ErrNotSquare},
		{"WrongTag", "4 1\nb 0 0 0 1 1 1\n", 2, gridgraph.ErrMalformed},
		{"MissingCost", "4 1\na 0 0 0 1 1\n", 2, gridgraph.ErrMalformed},
		{"NotANumber", "4 1\na 0 0 0 x 1 1\n", 2, gridgraph.ErrMalformed},
		{"OutOfGrid", "4 1\na 0 0 0 2 1 1\n", 2, gridgraph.ErrOutOfGrid},
		{"Negative", "4 1\na 0 0 0 1 -1 1\n", 2, core.ErrNegativeWeight},
		{"CountMismatch", "4 2\na 0 0 0 1 1 1\n", 2, gridgraph.ErrMalformed},
		{"HugeSquare", "1000000000000000000 1\na 0 0 0 1 1 1\n", 2, gridgraph.ErrMalformed},
		{"JustOverLimit", "16785409 0\n", 2, gridgraph.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Read(strings.NewReader(tc.in), tc.k)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridgraph.Read(strings.NewReader("4 2\na 0 0 0 1 1 1\n"), 2, gridgraph.WithLenientCount())
	assert.NoError(t, err)
}

func TestDim(t *testing.T) {
	for n, want := range map[int]int{1: 1, 4: 2, 9: 3, 10000: 100, 1 << 40: 1 << 20} {
		d, err := gridgraph.Dim(n)
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
	for _, n := range []int{0, -4, 2, 99} {
		_, err := gridgraph.Dim(n)
		assert.ErrorIs(t, err, gridgraph.ErrNotSquare)
	}
}

// A generated grid written and read back yields the same Pareto sets: vertex
// "r,c" sits at index r*dim+c in both graphs.
func TestWriteRead_SameParetoSets(t *testing.T) {
	const dim = 4
	src, err := builder.BuildGraph(2,
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{
			builder.WithSeed(11),
			builder.WithWeightFns(builder.ConstantWeightFn(1), builder.UniformWeightFn(1, 3)),
		},
		builder.Grid(dim, dim))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridgraph.Write(&buf, src, dim, gridgraph.BuilderCells))
	assert.True(t, strings.HasPrefix(buf.String(), "16 24\n"))

	back, err := gridgraph.Read(&buf, 2)
	require.NoError(t, err)
	assert.Equal(t, src.EdgeCount(), back.Graph.EdgeCount())

	want := pareto(t, src, 0, dim*dim-1)
	got := pareto(t, back.Graph, 0, dim*dim-1)
	assert.Equal(t, want, got)
	assert.NotEmpty(t, got)
}

func TestWrite_OutOfGrid(t *testing.T) {
	g := core.NewGraph(1)
	_, err := g.AddEdge("0,0", "0,5", criteria.Of(1))
	require.NoError(t, err)
	err = gridgraph.Write(&bytes.Buffer{}, g, 3, gridgraph.BuilderCells)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfGrid)

	h := core.NewGraph(1)
	require.NoError(t, h.AddVertex("x"))
	assert.Error(t, gridgraph.Write(&bytes.Buffer{}, h, 3, gridgraph.BuilderCells))
}

func pareto(t *testing.T, g *core.Graph, s, d int) []criteria.Vector {
	t.Helper()
	net, err := network.Build(g)
	require.NoError(t, err)
	sr, err := namoa.NewSplit(net, heuristic.NewIdeal())
	require.NoError(t, err)
	require.NoError(t, sr.Init(s, d))
	require.NoError(t, sr.Run(s, d))

	return namoa.Costs(sr.Solutions())
}
