package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		env              string
		wantLevel        zapcore.Level
		wantDisableStack bool
		wantCaller       bool
		wantCallerKey    string
	}{
		{name: "development", env: "development", wantLevel: zap.DebugLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
		{name: "debug", env: " DEBUG ", wantLevel: zap.DebugLevel, wantCaller: true, wantCallerKey: "caller"},
		{name: "production", env: "production", wantLevel: zap.InfoLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
		{name: "fallback", env: "unknown", wantLevel: zap.InfoLevel, wantDisableStack: true, wantCallerKey: zapcore.OmitKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, withCaller := buildConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, tc.wantDisableStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantCallerKey, cfg.EncoderConfig.CallerKey)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, "msg", cfg.EncoderConfig.MessageKey)
			require.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		})
	}
}

func TestNewReturnsLogger(t *testing.T) {
	t.Parallel()

	l, err := New("contacturl", "production")
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Infow("startup", "component", "logger")
	l.SafeSync()
}

func TestWithCarriesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With("kind", "tel")
	l.Debugw("rejected", "reason", "no_digits")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "rejected", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "tel", fields["kind"])
	require.Equal(t, "no_digits", fields["reason"])
}

func TestNopAndNil(t *testing.T) {
	t.Parallel()

	Nop().Infow("dropped")
	FromZap(nil).Debugw("dropped")

	var l *Logger
	l.SafeSync()
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()

	require.False(t, isIgnorableSyncError(nil))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: invalid argument")))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: inappropriate ioctl for device")))
	require.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}
