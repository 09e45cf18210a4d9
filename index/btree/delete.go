package btree

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Delete removes key from the tree.
//
// It fails with ErrEmptyTree when the tree holds no keys and with
// ErrKeyNotFound when key is absent. A failed Delete leaves the tree
// untouched.
func (bt *BTree[K]) Delete(key K) error {
	if bt.n == 0 {
		return ErrEmptyTree
	}
	if !bt.Contains(key) {
		return errors.Wrapf(ErrKeyNotFound, "delete %v", key)
	}

	bt.deleteKey(bt.root, key)
	bt.n--

	if bt.root.N() == 0 {
		if bt.root.leaf {
			bt.debug("tree emptied", logrus.Fields{"op": "delete", "key": key})
		} else {
			bt.root = bt.root.children[0]
			bt.debug("shrink root", logrus.Fields{"op": "delete", "key": key})
		}
	}

	bt.afterMutation("delete")
	return nil
}

// deleteKey removes key from the subtree rooted at x. x is either the
// root or holds at least t keys, so it can afford to lose one.
func (bt *BTree[K]) deleteKey(x *Node[K], key K) {
	t := bt.t

	for {
		i, found := x.findKey(key)

		switch {
		case found && x.leaf:
			x.removeKeyAt(i)
			return

		case found:
			y, z := x.children[i], x.children[i+1]

			switch {
			case len(y.keys) > t-1:
				pred := y.max()
				x.keys[i] = pred
				key, x = pred, y
			case len(z.keys) > t-1:
				succ := z.min()
				x.keys[i] = succ
				key, x = succ, z
			default:
				x.mergeChildren(i)
				bt.debug("merge", logrus.Fields{"op": "delete", "key": key, "index": i})
				x = y
			}

		case x.leaf:
			violation("key %v missing from leaf %v", key, x.keys)

		default:
			if x.children[i].isDeficient(t) {
				i = bt.fill(x, i)
			}
			x = x.children[i]
		}
	}
}

// fill brings children[i] of x up to at least t keys, preferring to
// borrow from the left sibling, then the right one, and merging
// otherwise. It returns the index of the child that now covers the
// range children[i] used to.
func (bt *BTree[K]) fill(x *Node[K], i int) int {
	t := bt.t

	switch {
	case i > 0 && len(x.children[i-1].keys) > t-1:
		x.borrowFromLeft(i)
		bt.debug("borrow", logrus.Fields{"op": "delete", "index": i, "from": "left"})
		return i

	case i < len(x.keys) && len(x.children[i+1].keys) > t-1:
		x.borrowFromRight(i)
		bt.debug("borrow", logrus.Fields{"op": "delete", "index": i, "from": "right"})
		return i

	case i > 0:
		x.mergeChildren(i - 1)
		bt.debug("merge", logrus.Fields{"op": "delete", "index": i - 1, "with": "left"})
		return i - 1

	case i < len(x.keys):
		x.mergeChildren(i)
		bt.debug("merge", logrus.Fields{"op": "delete", "index": i, "with": "right"})
		return i
	}

	violation("child %d of a node with %d keys has no sibling", i, len(x.keys))
	return i
}
