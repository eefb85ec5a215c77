package logger

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return c.Core.Sync()
}

func TestExitFlushesBeforeExiting(t *testing.T) {
	observed, logs := observer.New(zapcore.InfoLevel)
	core := &syncCountingCore{Core: observed}

	var code int
	var syncsAtExit int
	exit = func(c int) {
		code = c
		syncsAtExit = core.syncs
	}
	t.Cleanup(func() { exit = os.Exit })

	Exit(zap.New(core), "Server error", errors.New("listen tcp :8000: address already in use"))

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, syncsAtExit)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Server error", entries[0].Message)
}

func TestNewFallsBackToInfo(t *testing.T) {
	l := New(Config{Level: "chatty", Format: "console"})
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}
