package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/pqueue"
)

func BenchmarkVectorQueue_InsertPop(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	keys := make([]criteria.Vector, 1024)
	for i := range keys {
		keys[i] = criteria.Of(criteria.Weight(rng.Intn(1000)), criteria.Weight(rng.Intn(1000)))
	}
	q := pqueue.NewVector[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, k := range keys {
			q.Insert(k, j)
		}
		for !q.Empty() {
			q.PopMin()
		}
	}
}
