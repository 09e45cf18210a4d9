package btree

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEmpty(t *testing.T) {
	bt := newTestTree[int](t, 2)

	err := bt.Delete(1)
	assert.True(t, errors.Is(err, ErrEmptyTree))
	assert.Equal(t, "L0: []\n", bt.String())
	assert.Equal(t, 0, bt.Len())

	// emptied by deletes rather than fresh
	bt.Insert(1)
	require.NoError(t, bt.Delete(1))

	err = bt.Delete(1)
	assert.True(t, errors.Is(err, ErrEmptyTree))
	assert.True(t, bt.Root().Leaf())
}

func TestDeleteNotFound(t *testing.T) {
	bt := newTestTree(t, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	before := bt.String()

	for _, k := range []int{0, 11, -5, 100} {
		err := bt.Delete(k)
		assert.True(t, errors.Is(err, ErrKeyNotFound), "key %d: %v", k, err)
		assert.Contains(t, err.Error(), "delete")
	}

	assert.Equal(t, before, bt.String())
	assert.Equal(t, 10, bt.Len())
}

func TestDeleteCases(t *testing.T) {
	bt := newTestTree(t, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	require.Equal(t, "L0: [4]\nL1: [2] [6 8]\nL2: [1] [3] [5] [7] [9 10]\n", bt.String())

	// internal key, left child minimal: successor 5 replaces it after
	// its leaf is merged with [7]
	require.NoError(t, bt.Delete(4))
	assert.Equal(t, "L0: [5]\nL1: [2] [8]\nL2: [1] [3] [6 7] [9 10]\n", bt.String())

	// both children of the root minimal: merge, then merge again around
	// 2 and collapse the emptied root
	require.NoError(t, bt.Delete(2))
	assert.Equal(t, "L0: [5 8]\nL1: [1 3] [6 7] [9 10]\n", bt.String())
	assert.Equal(t, 2, bt.Height())

	// leaf with a spare key
	require.NoError(t, bt.Delete(9))
	assert.Equal(t, "L0: [5 8]\nL1: [1 3] [6 7] [10]\n", bt.String())

	// minimal leaf borrows from its left sibling
	require.NoError(t, bt.Delete(10))
	assert.Equal(t, "L0: [5 7]\nL1: [1 3] [6] [8]\n", bt.String())

	assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, bt.Keys())
	assert.Equal(t, 6, bt.Len())
}

func TestDeleteBorrowRight(t *testing.T) {
	bt := newTestTree(t, 2, 1, 2, 3, 4)
	require.Equal(t, "L0: [2]\nL1: [1] [3 4]\n", bt.String())

	require.NoError(t, bt.Delete(1))
	assert.Equal(t, "L0: [3]\nL1: [2] [4]\n", bt.String())
}

func TestDeletePredecessor(t *testing.T) {
	bt := newTestTree(t, 2, 10, 20, 30, 5, 6)
	require.Equal(t, "L0: [20]\nL1: [5 6 10] [30]\n", bt.String())

	require.NoError(t, bt.Delete(20))
	assert.Equal(t, "L0: [10]\nL1: [5 6] [30]\n", bt.String())
}

func TestDeleteCLRS(t *testing.T) {
	var keys []string
	for _, r := range runes("F,S,Q,K,C,L,H,T,V,W,M,R,N,P,A,B,X,Y,D,Z,E") {
		keys = append(keys, string(r))
	}

	bt := newTestTree(t, 2, keys...)
	require.Equal(t, len(keys), bt.Len())

	want := slices.Clone(keys)
	slices.Sort(want)
	require.Equal(t, want, bt.Keys())

	for _, k := range []string{"P", "Y", "M", "W", "Q", "Z"} {
		require.NoError(t, bt.Delete(k), "delete %s", k)

		want = slices.DeleteFunc(want, func(s string) bool { return s == k })
		assert.Equal(t, want, bt.Keys(), "after %s", k)
		assert.False(t, bt.Contains(k))
		assert.NoError(t, bt.Validate())
	}

	assert.Equal(t, len(keys)-6, bt.Len())
}

func TestDeleteAll(t *testing.T) {
	for _, deg := range []int{2, 3, 7} {
		bt := newTestTree[int](t, deg)

		const n = 1000
		for k := 0; k < n; k++ {
			bt.Insert((k * 7919) % n)
		}
		require.Equal(t, n, bt.Len())

		// alternate ends so both boundary fallbacks get used
		lo, hi := 0, n-1
		for lo <= hi {
			require.NoError(t, bt.Delete(lo))
			lo++
			if lo <= hi {
				require.NoError(t, bt.Delete(hi))
				hi--
			}
		}

		assert.Equal(t, 0, bt.Len())
		assert.Equal(t, 1, bt.Height())
		assert.True(t, errors.Is(bt.Delete(0), ErrEmptyTree))
	}
}
