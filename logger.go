// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenery

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Stored atomically so that a host may
// swap loggers from a goroutine other than the render loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for scenery and all its sub-packages.
// By default, scenery produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by scenery:
//   - [slog.LevelDebug]: drawable lifecycle (acquire, release, variant swap)
//   - [slog.LevelInfo]: block and GPU target lifecycle
//   - [slog.LevelWarn]: dropped dirty marks, context loss, teardown of
//     resources that were already gone
//
// Example:
//
//	scenery.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by scenery.
// Sub-packages call this so that one SetLogger call configures all of them.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
