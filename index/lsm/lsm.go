// Package lsm wraps Pebble (CockroachDB's LSM storage engine) behind the
// common Set interface so it can be benchmarked alongside the B-tree.
package lsm

import (
	"encoding/binary"
	"fmt"

	"github.com/btree-query-bench/bmark/index"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/sirupsen/logrus"
)

var _ index.Set = (*LSM)(nil)

type LSM struct {
	db *pebble.DB
	n  int
}

// Open opens (or creates) a Pebble database at the given directory path.
func Open(dir string, log logrus.FieldLogger) (*LSM, error) {
	return open(dir, vfs.Default, log)
}

// OpenMem opens a Pebble database that lives entirely in memory, which
// keeps the comparison with the in-memory B-tree fair.
func OpenMem(log logrus.FieldLogger) (*LSM, error) {
	return open("bmark", vfs.NewMem(), log)
}

func open(dir string, fs vfs.FS, log logrus.FieldLogger) (*LSM, error) {
	opts := &pebble.Options{
		FS:     fs,
		Logger: log,
		// Use a 16 MB memtable
		MemTableSize: 16 << 20,
		// Keep several memtables so one can be flushed while another is active.
		MemTableStopWritesThreshold: 4,
		// L0 compaction trigger.
		L0CompactionThreshold: 4,
		L0StopWritesThreshold: 12,
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("lsm: open: %w", err)
	}

	l := &LSM{db: db}
	if l.n, err = l.count(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return l, nil
}

// Close cleanly shuts down Pebble, flushing any in-memory state.
func (l *LSM) Close() error {
	return l.db.Close()
}

// Insert adds key. Inserting a present key is a no-op.
func (l *LSM) Insert(key int64) error {
	ok, err := l.Contains(key)
	if err != nil || ok {
		return err
	}
	if err := l.db.Set(encodeKey(key), nil, pebble.NoSync); err != nil {
		return fmt.Errorf("lsm: insert: %w", err)
	}
	l.n++
	return nil
}

// Contains reports whether key is present.
func (l *LSM) Contains(key int64) (bool, error) {
	_, closer, err := l.db.Get(encodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lsm: get: %w", err)
	}
	closer.Close()
	return true, nil
}

// Delete removes key from the store.
func (l *LSM) Delete(key int64) error {
	ok, err := l.Contains(key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(index.ErrKeyNotFound, "lsm: delete %d", key)
	}
	if err := l.db.Delete(encodeKey(key), pebble.NoSync); err != nil {
		return fmt.Errorf("lsm: delete: %w", err)
	}
	l.n--
	return nil
}

// Len returns the number of keys.
func (l *LSM) Len() int { return l.n }

// Keys returns every key in ascending order.
func (l *LSM) Keys() ([]int64, error) {
	var keys []int64
	err := l.scan(func(k int64) { keys = append(keys, k) })
	return keys, err
}

func (l *LSM) count() (int, error) {
	n := 0
	err := l.scan(func(int64) { n++ })
	return n, err
}

func (l *LSM) scan(f func(k int64)) error {
	iter, err := l.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("lsm: scan: %w", err)
	}
	for valid := iter.First(); valid; valid = iter.Next() {
		k := iter.Key()
		if len(k) != 8 {
			_ = iter.Close()
			return fmt.Errorf("lsm: unexpected key length %d", len(k))
		}
		f(decodeKey(k))
	}
	return iter.Close()
}

// ─── Key encoding ─────────────────────────────────────────────────────────────

// encodeKey encodes an int64 as a big-endian 8-byte slice with the sign
// bit flipped, so byte order matches numeric order for negative keys too.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k)^(1<<63))
	return b
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}
