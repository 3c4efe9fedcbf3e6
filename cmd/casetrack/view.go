// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/rahul5Q/judicial-system/cmd/casetrack/cli"
	"github.com/rahul5Q/judicial-system/lib/docketui"
)

func newViewCommand() *cli.Command {
	var dataPath string
	var logOutput string

	return &cli.Command{
		Name:    "view",
		Summary: "open the interactive docket",
		Description: `Open the interactive docket view.

The docket lists all registered cases sorted by hearing date. From the
list: a registers a new case, d deletes the selected case after
confirmation, / filters incrementally across case ID, title, and
parties, q quits. Every mutation is written through to the case data
file before the next keystroke is handled.`,
		Usage: "casetrack view [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
			flagSet.StringVar(&dataPath, "data", "", "case data file (default: resolved from config)")
			flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to status-bar display)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runView(dataPath, logOutput)
		},
	}
}

// runView opens the TUI. Background logging is routed through a
// TUILogHandler that shows records in the status bar instead of
// writing to stderr (which would corrupt the alt-screen display). An
// optional file logger captures all records for post-mortem debugging.
func runView(dataFlag string, logOutput string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	dataPath := resolveDataPath(dataFlag, config)

	tuiHandler := docketui.NewTUILogHandler(slog.LevelInfo)

	var logger *slog.Logger
	if logOutput != "" {
		fileHandler, fileCloser, fileErr := openFileLogHandler(logOutput)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, fileErr)
		}
		defer fileCloser()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		logger = slog.New(tuiHandler)
	}

	store, file, dropped, err := openStore(dataPath, logger)
	if err != nil {
		return err
	}

	model := docketui.NewModel(store, file, logger)
	if dropped > 0 {
		// The TUI handler has no program yet, so the hydration warning
		// would be lost; queue it as a startup notice instead.
		plural := ""
		if dropped != 1 {
			plural = "s"
		}
		model.SetStartupNotice(
			fmt.Sprintf("Discarded %d duplicate case%s from %s.", dropped, plural, dataPath),
			docketui.NoticeInfo,
		)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	// Reload the view when another process writes the data file. The
	// view still works without the watcher, so failure to start it is
	// only logged.
	stopWatch, watchErr := file.Watch(func() {
		program.Send(docketui.CaseFileChangedMsg{})
	})
	if watchErr != nil {
		logger.Warn("case file watcher unavailable", "error", watchErr)
	} else {
		defer stopWatch()
	}

	_, err = program.Run()
	return err
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
