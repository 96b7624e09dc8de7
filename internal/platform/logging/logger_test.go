package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ContextMirror(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	var mirrored []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mirrored = append(mirrored, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.DebugContext(context.Background(), "below level")
	logger.InfoContext(context.Background(), "lineup saved", "match_id", int64(7))
	logger.Info("plain entries are not mirrored")

	require.Equal(t, 2, logs.Len())
	require.Equal(t, []string{"info:lineup saved"}, mirrored)

	entry := logs.All()[0]
	require.Equal(t, "lineup saved", entry.Message)
	require.Equal(t, int64(7), entry.ContextMap()["match_id"])
}

func TestLogger_ErrorFieldsAndOddArgs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "test")

	logger.Error("failed", "error", errors.New("boom"), "dangling")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "test", fields["component"])
	require.Equal(t, "boom", fields["error"])
	require.Contains(t, fields, "dangling")
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	require.NotPanics(t, func() {
		logger.Info("nil logger falls back to default")
		require.NoError(t, logger.Sync())
	})
}

func TestLogger_RedactsSessionTokens(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.Info("login", "username", "marta", "token", "c0ffee", "Authorization", "Bearer c0ffee")

	fields := logs.All()[0].ContextMap()
	require.Equal(t, "marta", fields["username"])
	require.Equal(t, Redacted, fields["token"])
	require.Equal(t, Redacted, fields["Authorization"])
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel(" DEBUG "))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestNewConsole(t *testing.T) {
	logger := NewConsole(LevelWarn)
	require.NotNil(t, logger)
	require.NotPanics(t, func() { logger.Info("filtered") })
}
