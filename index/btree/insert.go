package btree

import "github.com/sirupsen/logrus"

// Insert adds key to the tree. It reports false if the key was already
// present, in which case the key set is left as it was.
func (bt *BTree[K]) Insert(key K) bool {
	root := bt.root
	if root.isFull(bt.t) {
		newRoot := &Node[K]{children: []*Node[K]{root}}
		median := newRoot.splitChild(0, bt.t)
		bt.root = newRoot
		bt.debug("grow root", logrus.Fields{"op": "insert", "key": key, "median": median})
	}

	added := bt.insertNonFull(bt.root, key)
	if added {
		bt.n++
	}
	bt.afterMutation("insert")
	return added
}

// insertNonFull inserts key into the subtree rooted at x, which is known
// not to be full, splitting full children before descending into them.
func (bt *BTree[K]) insertNonFull(x *Node[K], key K) bool {
	for {
		i, found := x.findKey(key)
		if found {
			return false
		}
		if x.leaf {
			x.insertKeyAt(i, key)
			return true
		}

		if x.children[i].isFull(bt.t) {
			median := x.splitChild(i, bt.t)
			bt.debug("split", logrus.Fields{"op": "insert", "key": key, "index": i, "median": median})

			switch {
			case key == median:
				return false
			case key > median:
				i++
			}
		}

		x = x.children[i]
	}
}
