// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger creates the terminal logger. slogFor wraps it as the handler
// installed with scenery.SetLogger.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func slogFor(l *log.Logger) *slog.Logger {
	return slog.New(l)
}
