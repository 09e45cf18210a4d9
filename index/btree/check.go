package btree

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
)

// Validate walks the whole tree and returns an error wrapping
// ErrInvariantViolation for the first broken invariant it finds: node
// occupancy, child counts, key order and ranges, leaf depth, and the
// key counter behind Len.
func (bt *BTree[K]) Validate() error {
	if bt.root == nil {
		return errors.Wrap(ErrInvariantViolation, "nil root")
	}

	c := checker[K]{t: bt.t, leafDepth: -1}
	if err := c.check(bt.root, true, 0, nil, nil); err != nil {
		return err
	}
	if c.keys != bt.n {
		return errors.Wrapf(ErrInvariantViolation, "tree holds %d keys, Len reports %d", c.keys, bt.n)
	}
	return nil
}

type checker[K cmp.Ordered] struct {
	t         int
	leafDepth int
	keys      int
}

// check verifies the subtree rooted at x, whose keys must lie strictly
// between lo and hi where those are set.
func (c *checker[K]) check(x *Node[K], root bool, depth int, lo, hi *K) error {
	n := len(x.keys)
	c.keys += n

	switch {
	case n > 2*c.t-1:
		return errors.Wrapf(ErrInvariantViolation, "node at depth %d holds %d keys, max %d", depth, n, 2*c.t-1)
	case !root && n < c.t-1:
		return errors.Wrapf(ErrInvariantViolation, "node at depth %d holds %d keys, min %d", depth, n, c.t-1)
	case root && n == 0 && !x.leaf:
		return errors.Wrap(ErrInvariantViolation, "internal root without keys")
	}

	if !slices.IsSorted(x.keys) || hasAdjacentDup(x.keys) {
		return errors.Wrapf(ErrInvariantViolation, "keys at depth %d not strictly increasing: %v", depth, x.keys)
	}
	if n > 0 {
		if lo != nil && x.keys[0] <= *lo {
			return errors.Wrapf(ErrInvariantViolation, "key %v at depth %d not above separator %v", x.keys[0], depth, *lo)
		}
		if hi != nil && x.keys[n-1] >= *hi {
			return errors.Wrapf(ErrInvariantViolation, "key %v at depth %d not below separator %v", x.keys[n-1], depth, *hi)
		}
	}

	if x.leaf {
		if len(x.children) != 0 {
			return errors.Wrapf(ErrInvariantViolation, "leaf at depth %d has %d children", depth, len(x.children))
		}
		if c.leafDepth < 0 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return errors.Wrapf(ErrInvariantViolation, "leaf at depth %d, others at %d", depth, c.leafDepth)
		}
		return nil
	}

	if len(x.children) != n+1 {
		return errors.Wrapf(ErrInvariantViolation, "internal node at depth %d has %d keys and %d children", depth, n, len(x.children))
	}
	for i, child := range x.children {
		if child == nil {
			return errors.Wrapf(ErrInvariantViolation, "nil child %d at depth %d", i, depth)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &x.keys[i-1]
		}
		if i < n {
			chi = &x.keys[i]
		}
		if err := c.check(child, false, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}

func hasAdjacentDup[K cmp.Ordered](keys []K) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i] == keys[i-1] {
			return true
		}
	}
	return false
}
