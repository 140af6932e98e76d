package boundsindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vatti-sweep/polyclip/boundsindex"
)

func TestIntersecting(t *testing.T) {
	idx := boundsindex.New()
	idx.Insert(0, [2]int64{0, 0}, [2]int64{10, 10})
	idx.Insert(1, [2]int64{20, 20}, [2]int64{30, 30})
	idx.Insert(2, [2]int64{5, 5}, [2]int64{15, 15})

	slots := idx.Intersecting([2]int64{0, 0}, [2]int64{6, 6})
	require.ElementsMatch(t, []int{0, 2}, slots)

	slots = idx.Intersecting([2]int64{100, 100}, [2]int64{200, 200})
	require.Empty(t, slots)
}

func TestDisjointFrom(t *testing.T) {
	clipIdx := boundsindex.New()
	clipIdx.Insert(0, [2]int64{0, 0}, [2]int64{10, 10})

	require.False(t, boundsindex.DisjointFrom([2]int64{5, 5}, [2]int64{8, 8}, clipIdx))
	require.True(t, boundsindex.DisjointFrom([2]int64{100, 100}, [2]int64{110, 110}, clipIdx))
}

func TestDisjointFromEmptyIndex(t *testing.T) {
	empty := boundsindex.New()
	require.True(t, boundsindex.DisjointFrom([2]int64{0, 0}, [2]int64{1, 1}, empty))
}

func TestLen(t *testing.T) {
	idx := boundsindex.New()
	require.Equal(t, 0, idx.Len())
	idx.Insert(0, [2]int64{0, 0}, [2]int64{1, 1})
	idx.Insert(1, [2]int64{2, 2}, [2]int64{3, 3})
	require.Equal(t, 2, idx.Len())
}
