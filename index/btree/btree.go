// Package btree implements an in-memory B-tree holding an ordered set of
// unique keys.
//
// The tree is parameterised by its minimum degree t: every node other
// than the root holds between t-1 and 2t-1 keys, and all leaves sit at
// the same depth. Insertion splits full nodes top-down on the way to the
// leaf; deletion tops up minimal nodes top-down by borrowing from a
// sibling or merging with it. Neither ever walks back up.
//
// A BTree is not safe for concurrent use.
package btree

import (
	"cmp"

	"github.com/sirupsen/logrus"
)

// BTree is an ordered set of keys of type K.
type BTree[K cmp.Ordered] struct {
	t    int
	root *Node[K]
	n    int

	log      logrus.FieldLogger
	validate bool
}

// New returns an empty tree with minimum degree t.
func New[K cmp.Ordered](t int, opts ...Option) (*BTree[K], error) {
	if t < 2 {
		return nil, ErrInvalidDegree
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	return &BTree[K]{
		t:        t,
		root:     newLeaf[K](),
		log:      o.log,
		validate: o.validate,
	}, nil
}

// Degree returns the minimum degree t.
func (bt *BTree[K]) Degree() int { return bt.t }

// Len returns the number of keys in the tree.
func (bt *BTree[K]) Len() int { return bt.n }

// Root returns the root node. It is never nil.
func (bt *BTree[K]) Root() *Node[K] { return bt.root }

// Height returns the number of levels, 1 for a tree that is a single leaf.
func (bt *BTree[K]) Height() int {
	h := 1
	for x := bt.root; !x.leaf; x = x.children[0] {
		h++
	}
	return h
}

// Search looks key up and returns the node holding it together with its
// index in that node.
func (bt *BTree[K]) Search(key K) (*Node[K], int, bool) {
	x := bt.root
	for {
		i, found := x.findKey(key)
		if found {
			return x, i, true
		}
		if x.leaf {
			return nil, -1, false
		}
		x = x.children[i]
	}
}

// Contains reports whether key is in the tree.
func (bt *BTree[K]) Contains(key K) bool {
	_, _, ok := bt.Search(key)
	return ok
}

// Min returns the smallest key.
func (bt *BTree[K]) Min() (k K, ok bool) {
	if bt.n == 0 {
		return k, false
	}
	return bt.root.min(), true
}

// Max returns the largest key.
func (bt *BTree[K]) Max() (k K, ok bool) {
	if bt.n == 0 {
		return k, false
	}
	return bt.root.max(), true
}

// Keys returns all keys in ascending order.
func (bt *BTree[K]) Keys() []K {
	keys := make([]K, 0, bt.n)
	return appendInOrder(keys, bt.root)
}

func appendInOrder[K cmp.Ordered](dst []K, x *Node[K]) []K {
	if x.leaf {
		return append(dst, x.keys...)
	}
	for i, k := range x.keys {
		dst = appendInOrder(dst, x.children[i])
		dst = append(dst, k)
	}
	return appendInOrder(dst, x.children[len(x.keys)])
}

// Clear drops every key.
func (bt *BTree[K]) Clear() {
	bt.root = newLeaf[K]()
	bt.n = 0
}

func (bt *BTree[K]) debug(msg string, fields logrus.Fields) {
	if !debugEnabled(bt.log) {
		return
	}
	bt.log.WithFields(fields).Debug(msg)
}

func (bt *BTree[K]) afterMutation(op string) {
	if !bt.validate {
		return
	}
	if err := bt.Validate(); err != nil {
		panic(err)
	}
	bt.debug("validated", logrus.Fields{"op": op, "len": bt.n})
}
