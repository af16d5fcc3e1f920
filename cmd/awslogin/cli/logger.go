// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for command
// operations. When stderr is a terminal, it uses slog.TextHandler for
// human-readable output; when stderr is piped or redirected (CI,
// scripts), it uses slog.JSONHandler for machine-parseable output.
// debug lowers the level to LevelDebug.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(debug).With("command", "use")
func NewCommandLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
