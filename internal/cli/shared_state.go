package cli

import (
	"context"

	"go.uber.org/zap"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// ctx bounds every request started by a view; it is cancelled when the
	// program exits.
	ctx context.Context

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(ctx context.Context, app *App) *SharedState {
	if ctx == nil {
		ctx = context.Background()
	}
	return &SharedState{App: app, ctx: ctx}
}

// Context returns the context requests are derived from.
func (s *SharedState) Context() context.Context { return s.ctx }

// Log returns the diagnostic logger.
func (s *SharedState) Log() *zap.Logger { return s.App.logger() }

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the width views wrap text to.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return 80
	}
	return s.Width
}
