// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the stderr logger used by the one-shot
// subcommands (register, list, remove); the interactive view routes
// its records into the status bar instead. Text output when stderr is
// a terminal, JSON when it is piped or redirected so scripts can parse
// the records.
//
// Each subcommand scopes the logger with its name before use:
//
//	logger := cli.NewCommandLogger().With("command", "remove", "case_id", caseID)
func NewCommandLogger() *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
