package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/pqueue"
)

func TestQueue_PopOrder(t *testing.T) {
	q := pqueue.NewScalar[string]()
	q.Insert(5, "e")
	q.Insert(1, "a")
	q.Insert(3, "c")
	q.Insert(2, "b")
	q.Insert(4, "d")

	var got []string
	for !q.Empty() {
		_, v := q.PopMin()
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
}

func TestQueue_VectorKeysLexicographic(t *testing.T) {
	q := pqueue.NewVector[int]()
	q.Insert(criteria.Of(3, 1), 0)
	q.Insert(criteria.Of(1, 5), 1)
	q.Insert(criteria.Of(1, 4), 2)

	k, v := q.PopMin()
	assert.Equal(t, criteria.Of(1, 4), k)
	assert.Equal(t, 2, v)
	k, _ = q.PopMin()
	assert.Equal(t, criteria.Of(1, 5), k)
	k, _ = q.PopMin()
	assert.Equal(t, criteria.Of(3, 1), k)
}

func TestQueue_Decrease(t *testing.T) {
	q := pqueue.NewScalar[string]()
	q.Insert(10, "x")
	h := q.Insert(20, "y")

	q.Decrease(h, 5)
	assert.Equal(t, criteria.Weight(5), q.Key(h))

	k, v := q.Min()
	assert.Equal(t, criteria.Weight(5), k)
	assert.Equal(t, "y", v)
}

func TestQueue_DecreaseRejectsLargerOrEqualKey(t *testing.T) {
	q := pqueue.NewScalar[int]()
	h := q.Insert(7, 0)

	assert.PanicsWithValue(t, pqueue.ErrNotDecreasing, func() { q.Decrease(h, 7) })
	assert.PanicsWithValue(t, pqueue.ErrNotDecreasing, func() { q.Decrease(h, 9) })
}

func TestQueue_Remove(t *testing.T) {
	q := pqueue.NewScalar[string]()
	q.Insert(1, "a")
	hb := q.Insert(2, "b")
	q.Insert(3, "c")

	k, v := q.Remove(hb)
	assert.Equal(t, criteria.Weight(2), k)
	assert.Equal(t, "b", v)
	assert.False(t, q.Contains(hb))
	require.Equal(t, 2, q.Len())

	_, v = q.PopMin()
	assert.Equal(t, "a", v)
	_, v = q.PopMin()
	assert.Equal(t, "c", v)
}

func TestQueue_StaleHandles(t *testing.T) {
	q := pqueue.NewScalar[int]()
	h := q.Insert(1, 0)
	q.PopMin()

	assert.False(t, q.Contains(h))
	assert.Panics(t, func() { q.Decrease(h, 0) })
	assert.Panics(t, func() { q.Remove(h) })

	// Slot is recycled, the old handle must stay dead.
	h2 := q.Insert(4, 1)
	assert.True(t, q.Contains(h2))
	assert.False(t, q.Contains(h))
	assert.NotEqual(t, h, h2)

	var zero pqueue.Handle
	assert.True(t, zero.IsZero())
	assert.False(t, q.Contains(zero))
}

func TestQueue_ClearInvalidatesHandles(t *testing.T) {
	q := pqueue.NewScalar[int]()
	hs := []pqueue.Handle{q.Insert(3, 0), q.Insert(1, 1), q.Insert(2, 2)}
	q.Clear()

	assert.True(t, q.Empty())
	for _, h := range hs {
		assert.False(t, q.Contains(h))
	}
	q.Insert(9, 9)
	k, _ := q.PopMin()
	assert.Equal(t, criteria.Weight(9), k)
}

func TestQueue_EmptyPanics(t *testing.T) {
	q := pqueue.NewScalar[int]()
	assert.PanicsWithValue(t, pqueue.ErrEmpty, func() { q.PopMin() })
	assert.PanicsWithValue(t, pqueue.ErrEmpty, func() { q.Min() })
}

// TestQueue_RandomizedAgainstSort mixes inserts, decreases and removals and
// checks the drain order against a sorted copy of the surviving keys.
func TestQueue_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := pqueue.NewScalar[int]()
	live := map[int]pqueue.Handle{}
	keys := map[int]criteria.Weight{}

	for i := 0; i < 2000; i++ {
		switch op := rng.Intn(4); {
		case op <= 1 || len(live) == 0:
			k := criteria.Weight(rng.Intn(10000))
			live[i] = q.Insert(k, i)
			keys[i] = k
		case op == 2:
			for id, h := range live {
				nk := keys[id] - criteria.Weight(1+rng.Intn(50))
				q.Decrease(h, nk)
				keys[id] = nk
				break
			}
		default:
			for id, h := range live {
				q.Remove(h)
				delete(live, id)
				delete(keys, id)
				break
			}
		}
	}

	want := make([]criteria.Weight, 0, len(keys))
	for _, k := range keys {
		want = append(want, k)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := make([]criteria.Weight, 0, q.Len())
	for !q.Empty() {
		k, id := q.PopMin()
		assert.Equal(t, keys[id], k)
		got = append(got, k)
	}
	assert.Equal(t, want, got)
}
