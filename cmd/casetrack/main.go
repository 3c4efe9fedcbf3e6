// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

// casetrack is a single-user terminal tracker for judiciary case
// records. The default "view" subcommand opens an interactive docket
// (register, search, delete); "register", "list", and "remove" cover
// the same operations non-interactively for scripts.
//
// Case data lives in a single JSON file, written through on every
// mutation. The file location is resolved from the --data flag, the
// CASETRACK_DATA_FILE environment variable, the config file at
// ~/.config/casetrack/config.yaml, or the default
// ~/.local/share/casetrack/cases.json, in that order.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rahul5Q/judicial-system/cmd/casetrack/cli"
	"github.com/rahul5Q/judicial-system/lib/casefile"
	"github.com/rahul5Q/judicial-system/lib/docket"
)

func main() {
	if err := root().Execute(os.Args[1:]); err != nil {
		// Commands that print their own output return an ExitError with
		// the desired exit code. Don't print a redundant "error:" line
		// for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func root() *cli.Command {
	return &cli.Command{
		Name:        "casetrack",
		Description: "Track judiciary case records from the terminal.",
		Usage:       "casetrack [command] [flags]",
		Subcommands: []*cli.Command{
			newViewCommand(),
			newRegisterCommand(),
			newListCommand(),
			newRemoveCommand(),
		},
		// No subcommand opens the interactive docket.
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runView("", "")
		},
		Examples: []cli.Example{
			{Description: "Open the interactive docket", Command: "casetrack"},
			{Description: "Register a case from a script", Command: `casetrack register CRIM-2024-001 --title "State v. Doe" --hearing 2024-05-01`},
			{Description: "List cases matching a query", Command: "casetrack list --query crim"},
		},
	}
}

// openStore hydrates a store from the case data file at the given
// path. Returns the store, the file for write-through saves, and the
// number of duplicate records discarded during hydration.
func openStore(dataPath string, logger *slog.Logger) (*docket.Store, *casefile.File, int, error) {
	file := casefile.New(dataPath, logger)

	cases, err := file.Load()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("loading case data from %s: %w", dataPath, err)
	}

	store := docket.NewStore()
	dropped := store.ReplaceAll(cases)
	if dropped > 0 {
		logger.Warn("discarded duplicate cases from data file",
			"count", dropped, "path", dataPath)
	}
	return store, file, dropped, nil
}
