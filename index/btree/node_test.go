package btree

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The helpers clone their arguments: node primitives clear the slots they
// vacate, which would otherwise show through the caller's slices.
func leaf(keys ...int) *Node[int] {
	return &Node[int]{keys: slices.Clone(keys), leaf: true}
}

func internal(keys []int, children ...*Node[int]) *Node[int] {
	return &Node[int]{keys: slices.Clone(keys), children: slices.Clone(children)}
}

func TestNodeOccupancy(t *testing.T) {
	const deg = 3

	for n, want := range map[int][2]bool{
		1: {false, false},
		2: {false, true},
		4: {false, false},
		5: {true, false},
	} {
		x := leaf(make([]int, n)...)
		assert.Equal(t, want[0], x.isFull(deg), "n=%d full", n)
		assert.Equal(t, want[1], x.isDeficient(deg), "n=%d deficient", n)
	}
}

func TestNodeFindKey(t *testing.T) {
	x := leaf(10, 20, 30)

	for key, want := range map[int]struct {
		i     int
		found bool
	}{
		5:  {0, false},
		10: {0, true},
		15: {1, false},
		30: {2, true},
		35: {3, false},
	} {
		i, found := x.findKey(key)
		assert.Equal(t, want.i, i, "key %d", key)
		assert.Equal(t, want.found, found, "key %d", key)
	}
}

func TestSplitChildLeaf(t *testing.T) {
	x := internal([]int{100}, leaf(1, 2, 3, 4, 5), leaf(200, 300))

	median := x.splitChild(0, 3)

	assert.Equal(t, 3, median)
	assert.Equal(t, []int{3, 100}, x.keys)
	require.Len(t, x.children, 3)
	assert.Equal(t, []int{1, 2}, x.children[0].keys)
	assert.Equal(t, []int{4, 5}, x.children[1].keys)
	assert.True(t, x.children[1].leaf)
	assert.Equal(t, []int{200, 300}, x.children[2].keys)
}

func TestSplitChildInternal(t *testing.T) {
	c := []*Node[int]{leaf(0), leaf(2), leaf(4), leaf(6)}
	x := internal(nil, internal([]int{1, 3, 5}, c...))

	x.splitChild(0, 2)

	assert.Equal(t, []int{3}, x.keys)
	y, z := x.children[0], x.children[1]
	assert.Equal(t, []int{1}, y.keys)
	assert.Equal(t, []*Node[int]{c[0], c[1]}, y.children)
	assert.Equal(t, []int{5}, z.keys)
	assert.Equal(t, []*Node[int]{c[2], c[3]}, z.children)
	assert.False(t, z.leaf)
}

func TestSplitChildNotFull(t *testing.T) {
	x := internal(nil, leaf(1, 2))

	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvariantViolation))
		assert.True(t, errors.IsAssertionFailure(err))
	}()

	x.splitChild(0, 2)
}

func TestMergeChildren(t *testing.T) {
	x := internal([]int{10, 20}, leaf(1, 2), leaf(11, 12), leaf(21))

	x.mergeChildren(0)

	assert.Equal(t, []int{20}, x.keys)
	require.Len(t, x.children, 2)
	assert.Equal(t, []int{1, 2, 10, 11, 12}, x.children[0].keys)
	assert.Equal(t, []int{21}, x.children[1].keys)
}

func TestBorrow(t *testing.T) {
	x := internal([]int{10, 20}, leaf(1, 2, 3), leaf(11), leaf(21, 22))

	x.borrowFromLeft(1)
	assert.Equal(t, []int{3, 20}, x.keys)
	assert.Equal(t, []int{1, 2}, x.children[0].keys)
	assert.Equal(t, []int{10, 11}, x.children[1].keys)

	x.borrowFromRight(1)
	assert.Equal(t, []int{3, 21}, x.keys)
	assert.Equal(t, []int{10, 11, 20}, x.children[1].keys)
	assert.Equal(t, []int{22}, x.children[2].keys)
}

func TestBorrowInternal(t *testing.T) {
	l := []*Node[int]{leaf(0), leaf(2), leaf(4)}
	r := []*Node[int]{leaf(12), leaf(14)}
	x := internal([]int{10}, internal([]int{1, 3}, l...), internal([]int{13}, r...))

	x.borrowFromLeft(1)

	assert.Equal(t, []int{3}, x.keys)
	assert.Equal(t, []*Node[int]{l[0], l[1]}, x.children[0].children)
	assert.Equal(t, []int{10, 13}, x.children[1].keys)
	assert.Equal(t, []*Node[int]{l[2], r[0], r[1]}, x.children[1].children)
}

func TestNodeMinMax(t *testing.T) {
	x := internal([]int{10}, leaf(1, 5), internal([]int{20}, leaf(15), leaf(25, 30)))

	assert.Equal(t, 1, x.min())
	assert.Equal(t, 30, x.max())
}
