package gridgraph_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/namoa/builder"
	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/gridgraph"
)

// BenchmarkRead parses a 100x100 two-criteria grid.
func BenchmarkRead(b *testing.B) {
	const dim = 100
	g, err := builder.BuildGraph(2,
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFns(builder.UniformWeightFn(1, 10), builder.UniformWeightFn(1, 10))},
		builder.Grid(dim, dim))
	if err != nil {
		b.Fatal(err)
	}
	var buf bytes.Buffer
	if err = gridgraph.Write(&buf, g, dim, gridgraph.BuilderCells); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.Read(bytes.NewReader(data), 2); err != nil {
			b.Fatal(err)
		}
	}
}
