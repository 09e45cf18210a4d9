package bench

import (
	"github.com/btree-query-bench/bmark/index"
	"github.com/btree-query-bench/bmark/index/btree"
	"github.com/cockroachdb/errors"
)

var _ index.Set = (*BTreeSet)(nil)

// BTreeSet adapts an int64 B-tree to index.Set.
type BTreeSet struct {
	*btree.BTree[int64]
}

func NewBTreeSet(t int, opts ...btree.Option) (*BTreeSet, error) {
	bt, err := btree.New[int64](t, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "btree set t=%d", t)
	}
	return &BTreeSet{BTree: bt}, nil
}

func (s *BTreeSet) Insert(key int64) error {
	s.BTree.Insert(key)
	return nil
}

func (s *BTreeSet) Contains(key int64) (bool, error) {
	return s.BTree.Contains(key), nil
}

func (s *BTreeSet) Close() error { return nil }

// Delete reports an empty tree as a missing key, as index.Set requires.
func (s *BTreeSet) Delete(key int64) error {
	err := s.BTree.Delete(key)
	if errors.Is(err, btree.ErrEmptyTree) {
		return errors.Mark(err, index.ErrKeyNotFound)
	}
	return err
}
