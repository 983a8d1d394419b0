package logtest

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogsAtDebug(t *testing.T) {
	logger := New(t)
	if !logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("test logger should enable debug output")
	}
	logger.Infow("hello", "frame", 1)
}
