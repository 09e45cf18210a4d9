package btree

import "github.com/cockroachdb/errors"

var (
	// ErrEmptyTree is returned when deleting from a tree that holds no keys.
	ErrEmptyTree = errors.New("btree: empty tree")

	// ErrKeyNotFound is returned when deleting a key the tree does not hold.
	ErrKeyNotFound = errors.New("btree: key not found")

	// ErrInvalidDegree is returned by New for a minimum degree below 2.
	ErrInvalidDegree = errors.New("btree: minimum degree must be at least 2")

	// ErrInvariantViolation marks a broken structural invariant. It is
	// returned by Validate and carried by the panics raised when an
	// internal precondition does not hold.
	ErrInvariantViolation = errors.New("btree: invariant violation")
)

// violation panics with an assertion failure. The tree is no longer
// trustworthy at this point, so there is nothing to return to.
func violation(format string, args ...interface{}) {
	panic(errors.WithAssertionFailure(errors.Wrapf(ErrInvariantViolation, format, args...)))
}
