// Package index defines the ordered key set interface shared by every
// structure the benchmark harness compares.
package index

import "github.com/btree-query-bench/bmark/index/btree"

// Set is an ordered set of int64 keys.
//
// Delete reports a key that is not in the set with an error matching
// ErrKeyNotFound under errors.Is.
type Set interface {
	Insert(key int64) error
	Contains(key int64) (bool, error)
	Delete(key int64) error
	Len() int
	Close() error
}

// ErrKeyNotFound is shared with the B-tree so every Set reports absent
// keys the same way.
var ErrKeyNotFound = btree.ErrKeyNotFound
