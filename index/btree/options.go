package btree

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a BTree.
type Option func(*options)

type options struct {
	log      logrus.FieldLogger
	validate bool
}

// WithLogger sets the logger structural events are reported to at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithValidation makes the tree run Validate after every mutation and
// panic if it fails. Slow; meant for tests and debugging.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// debugEnabled reports whether l would emit debug entries, so callers can
// skip building fields for nothing.
func debugEnabled(l logrus.FieldLogger) bool {
	switch l := l.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
