package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "interview-tracker", "test"), logs
}

func TestLogLoginFailed_HashesEmail(t *testing.T) {
	sl, logs := newObservedLogger()

	sl.LogLoginFailed(context.Background(), "jane@example.com", "10.0.0.1", "curl", "req-1", "invalid_password")

	entries := logs.All()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "login_failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, HashValue("jane@example.com"), fields["subject_value"])
	assert.NotContains(t, fields["subject_value"], "jane")
	assert.Equal(t, "10.0.0.1", fields["ip"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestLogLevels(t *testing.T) {
	sl, logs := newObservedLogger()
	ctx := context.Background()

	sl.LogLoginSuccess(ctx, "user-1", "10.0.0.1", "curl", "req-2")
	sl.LogUnauthorized(ctx, "10.0.0.1", "req-3", "token expired")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNilLoggerIsNoop(t *testing.T) {
	var sl *SecurityLogger
	assert.NotPanics(t, func() {
		sl.LogRateLimitTriggered(context.Background(), "1.2.3.4", "ua", "req", "/api/auth/login")
	})
	assert.NoError(t, sl.Sync())
}

func TestHashValue(t *testing.T) {
	assert.Len(t, HashValue("x"), 16)
	assert.Equal(t, HashValue("x"), HashValue("x"))
	assert.NotEqual(t, HashValue("x"), HashValue("y"))
}
