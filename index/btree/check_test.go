package btree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDetectsCorruption(t *testing.T) {
	for name, tc := range map[string]struct {
		corrupt func(bt *BTree[int])
		msg     string
	}{
		"overfull": {
			corrupt: func(bt *BTree[int]) { bt.root.children[0].keys = []int{0, 1, 2, 3} },
			msg:     "max 3",
		},
		"underfull": {
			corrupt: func(bt *BTree[int]) {
				bt.root.children[1].children[0].keys = nil
			},
			msg: "min 1",
		},
		"unsorted": {
			corrupt: func(bt *BTree[int]) { bt.root.children[1].keys = []int{8, 6} },
			msg:     "strictly increasing",
		},
		"out of range": {
			corrupt: func(bt *BTree[int]) { bt.root.children[0].children[0].keys = []int{100} },
			msg:     "not below separator",
		},
		"counter": {
			corrupt: func(bt *BTree[int]) { bt.n++ },
			msg:     "Len reports",
		},
		"uneven leaves": {
			corrupt: func(bt *BTree[int]) {
				x := bt.root.children[0]
				x.children[0] = internal([]int{0}, leaf(-1), leaf(1))
			},
			msg: "leaf at depth",
		},
		"missing child": {
			corrupt: func(bt *BTree[int]) {
				bt.root.children[1].children = bt.root.children[1].children[:2]
			},
			msg: "children",
		},
	} {
		t.Run(name, func(t *testing.T) {
			bt, err := New[int](2)
			require.NoError(t, err)
			for k := 1; k <= 10; k++ {
				bt.Insert(k)
			}
			require.NoError(t, bt.Validate())

			tc.corrupt(bt)

			err = bt.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvariantViolation))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestWithValidationPanics(t *testing.T) {
	bt := newTestTree(t, 2, 1, 2, 3)
	bt.root.keys = []int{3, 2, 1}

	assert.Panics(t, func() { bt.Insert(10) })
}
