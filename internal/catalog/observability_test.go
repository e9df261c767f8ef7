package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogObserver_LevelsByOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(CallEvent{Op: "list", Path: "/project", StatusCode: 200, Success: true})
	obs.OnCallComplete(CallEvent{
		Op: "get", Path: "/project/4", StatusCode: 404, ErrorCode: "HTTP_404",
		Err: &HTTPError{StatusCode: 404, Message: "not found"},
	})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "catalog", entries[0].LoggerName)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "HTTP_404", entries[1].ContextMap()["code"])
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", errorCode(nil))
	assert.Equal(t, "MISSING_KEY", errorCode(ErrMissingAPIKey))
	assert.Equal(t, "HTTP_500", errorCode(&HTTPError{StatusCode: 500}))
	assert.Equal(t, "UNAVAILABLE", errorCode(errors.Join(ErrUnavailable)))
	assert.Equal(t, "INVALID_RESPONSE", errorCode(ErrInvalidResponse))
	assert.Equal(t, "UNKNOWN", errorCode(errors.New("boom")))
	assert.Equal(t, "CANCELED", errorCode(context.Canceled))
}

func TestLogObserver_CanceledIsNotAFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(CallEvent{
		Op: "get", Path: "/project/2", ErrorCode: errorCode(context.Canceled), Err: context.Canceled,
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "CANCELED", entries[0].ContextMap()["code"])
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
