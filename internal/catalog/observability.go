package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// CallEvent records one request made to the catalog.
type CallEvent struct {
	Op         string
	Path       string
	RequestID  string
	StatusCode int
	Latency    time.Duration
	Success    bool
	ErrorCode  string
	Err        error
}

// Observer receives an event after every catalog call, successful or not.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a zap logger. Failures are logged at
// error level so they reach the diagnostic log even when info is filtered.
// Calls cancelled by the caller are not failures and log at debug.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an Observer backed by log.
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log.Named("catalog")}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("op", event.Op),
		zap.String("path", event.Path),
		zap.String("request_id", event.RequestID),
		zap.Int("status", event.StatusCode),
		zap.Duration("latency", event.Latency),
	}
	if event.Success {
		o.log.Info("catalog call", fields...)
		return
	}
	fields = append(fields, zap.String("code", event.ErrorCode), zap.Error(event.Err))
	if errors.Is(event.Err, context.Canceled) {
		o.log.Debug("catalog call canceled", fields...)
		return
	}
	o.log.Error("catalog call failed", fields...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
