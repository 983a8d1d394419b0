// Package logtest provides loggers for tests. It is kept apart from logging
// so that binaries do not link the testing package.
package logtest

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// New returns a logger that writes through tb at debug level.
func New(tb testing.TB) *zap.SugaredLogger {
	return zaptest.NewLogger(tb).Sugar()
}
