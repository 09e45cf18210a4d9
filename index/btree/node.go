package btree

import (
	"cmp"
	"slices"
)

// Node is a single page of the tree: an ordered run of keys and, when
// internal, one more child than keys. A node owns its children.
type Node[K cmp.Ordered] struct {
	keys     []K
	children []*Node[K]
	leaf     bool
}

func newLeaf[K cmp.Ordered]() *Node[K] {
	return &Node[K]{leaf: true}
}

// N returns the number of keys stored in the node.
func (x *Node[K]) N() int { return len(x.keys) }

// Leaf reports whether the node has no children.
func (x *Node[K]) Leaf() bool { return x.leaf }

// Keys returns a copy of the node's keys.
func (x *Node[K]) Keys() []K { return slices.Clone(x.keys) }

// Key returns the i-th key.
func (x *Node[K]) Key(i int) K { return x.keys[i] }

// NumChildren returns the number of children, 0 for a leaf.
func (x *Node[K]) NumChildren() int { return len(x.children) }

// Child returns the i-th child.
func (x *Node[K]) Child(i int) *Node[K] { return x.children[i] }

func (x *Node[K]) isFull(t int) bool { return len(x.keys) == 2*t-1 }

// isDeficient reports whether the node is at the minimum occupancy and
// cannot lose a key without rebalancing.
func (x *Node[K]) isDeficient(t int) bool { return len(x.keys) == t-1 }

// findKey returns the smallest i with key <= keys[i] and whether
// keys[i] == key. i == N() when key is greater than every key.
func (x *Node[K]) findKey(key K) (int, bool) {
	return slices.BinarySearch(x.keys, key)
}

func (x *Node[K]) insertKeyAt(i int, key K) {
	x.keys = slices.Insert(x.keys, i, key)
}

func (x *Node[K]) removeKeyAt(i int) K {
	k := x.keys[i]
	x.keys = slices.Delete(x.keys, i, i+1)
	return k
}

func (x *Node[K]) insertChildAt(i int, c *Node[K]) {
	x.children = slices.Insert(x.children, i, c)
}

func (x *Node[K]) removeChildAt(i int) *Node[K] {
	c := x.children[i]
	x.children = slices.Delete(x.children, i, i+1)
	return c
}

// min returns the smallest key of the subtree rooted at x.
func (x *Node[K]) min() K {
	for !x.leaf {
		x = x.children[0]
	}
	return x.keys[0]
}

// max returns the largest key of the subtree rooted at x.
func (x *Node[K]) max() K {
	for !x.leaf {
		x = x.children[len(x.children)-1]
	}
	return x.keys[len(x.keys)-1]
}

// splitChild splits the full child y = children[i] around its median.
// y keeps the lower t-1 keys, a new right sibling z takes the upper t-1
// keys, and the median moves up into x at position i.
func (x *Node[K]) splitChild(i, t int) (median K) {
	y := x.children[i]
	if !y.isFull(t) {
		violation("split of child %d holding %d keys, want %d", i, len(y.keys), 2*t-1)
	}

	z := &Node[K]{leaf: y.leaf}
	z.keys = append(make([]K, 0, 2*t-1), y.keys[t:]...)
	if !y.leaf {
		z.children = append(make([]*Node[K], 0, 2*t), y.children[t:]...)
	}

	median = y.keys[t-1]
	clear(y.keys[t-1:])
	y.keys = y.keys[:t-1]
	if !y.leaf {
		clear(y.children[t:])
		y.children = y.children[:t]
	}

	x.insertKeyAt(i, median)
	x.insertChildAt(i+1, z)
	return median
}

// mergeChildren folds keys[i] and children[i+1] into children[i].
// The right child is dropped.
func (x *Node[K]) mergeChildren(i int) {
	y, z := x.children[i], x.children[i+1]
	y.keys = append(y.keys, x.keys[i])
	y.keys = append(y.keys, z.keys...)
	if !y.leaf {
		y.children = append(y.children, z.children...)
	}
	x.removeKeyAt(i)
	x.removeChildAt(i + 1)
}

// borrowFromLeft rotates the largest key of children[i-1] up through
// the separator keys[i-1] and down into children[i].
func (x *Node[K]) borrowFromLeft(i int) {
	c, s := x.children[i], x.children[i-1]
	c.insertKeyAt(0, x.keys[i-1])
	if !c.leaf {
		c.insertChildAt(0, s.removeChildAt(len(s.children)-1))
	}
	x.keys[i-1] = s.removeKeyAt(len(s.keys) - 1)
}

// borrowFromRight rotates the smallest key of children[i+1] up through
// the separator keys[i] and down into children[i].
func (x *Node[K]) borrowFromRight(i int) {
	c, s := x.children[i], x.children[i+1]
	c.keys = append(c.keys, x.keys[i])
	if !c.leaf {
		c.children = append(c.children, s.removeChildAt(0))
	}
	x.keys[i] = s.removeKeyAt(0)
}
