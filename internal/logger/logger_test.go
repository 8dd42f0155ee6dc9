package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"":        zapcore.InfoLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("verbose")
	require.False(t, ok)
}

// TestContextHelpers checks that names and fields attached to a context reach the emitted entry.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)

	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "controller")
	ctx = WithKV(ctx, "building_id", "uclan")

	InfoKV(ctx, "State changed", "to", "open")
	DebugKV(ctx, "Transition rejected")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "controller", entries[0].LoggerName)
	require.Equal(t, "State changed", entries[0].Message)
	require.Equal(t, map[string]any{"building_id": "uclan", "to": "open"}, entries[0].ContextMap())
	require.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}
