// Package listindex is an ordered set kept in a single sorted slice.
// Every insert and delete shifts the tail, so it only scales to small
// sets; the harness uses it as a baseline and the tests as a model.
package listindex

import (
	"slices"

	"github.com/btree-query-bench/bmark/index"
	"github.com/cockroachdb/errors"
)

var _ index.Set = (*ListIndex)(nil)

type ListIndex struct {
	Data []int64
}

func NewListIndex() *ListIndex {
	return &ListIndex{
		Data: make([]int64, 0),
	}
}

func (l *ListIndex) Insert(key int64) error {
	i, found := slices.BinarySearch(l.Data, key)
	if found {
		return nil
	}
	l.Data = slices.Insert(l.Data, i, key)
	return nil
}

func (l *ListIndex) Contains(key int64) (bool, error) {
	_, found := slices.BinarySearch(l.Data, key)
	return found, nil
}

func (l *ListIndex) Delete(key int64) error {
	i, found := slices.BinarySearch(l.Data, key)
	if !found {
		return errors.Wrapf(index.ErrKeyNotFound, "listindex: delete %d", key)
	}
	l.Data = slices.Delete(l.Data, i, i+1)
	return nil
}

// Keys returns the keys in ascending order. The slice is shared.
func (l *ListIndex) Keys() []int64 { return l.Data }

func (l *ListIndex) Len() int     { return len(l.Data) }
func (l *ListIndex) Close() error { return nil }
