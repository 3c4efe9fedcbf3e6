// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/rahul5Q/judicial-system/cmd/casetrack/cli"
	"github.com/rahul5Q/judicial-system/lib/docket"
)

func newRemoveCommand() *cli.Command {
	var dataPath string
	var assumeYes bool

	return &cli.Command{
		Name:    "remove",
		Summary: "remove a case",
		Description: `Remove a case by ID (case-insensitive). Asks for confirmation when
stdin is a terminal; use --yes to skip the prompt in scripts. The
updated collection is written to the case data file before the
command returns.`,
		Usage: "casetrack remove <case-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("remove", pflag.ContinueOnError)
			flagSet.StringVar(&dataPath, "data", "", "case data file (default: resolved from config)")
			flagSet.BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Remove a case with confirmation", Command: "casetrack remove CRIM-2024-001"},
			{Description: "Remove without prompting", Command: "casetrack remove CRIM-2024-001 --yes"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one case ID argument")
			}
			return runRemove(dataPath, args[0], assumeYes)
		},
	}
}

func runRemove(dataFlag string, rawID string, assumeYes bool) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	dataPath := resolveDataPath(dataFlag, config)

	caseID := docket.NormalizeID(rawID)
	logger := cli.NewCommandLogger().With("command", "remove", "case_id", caseID)

	store, file, _, err := openStore(dataPath, logger)
	if err != nil {
		return err
	}

	target, err := store.Get(caseID)
	if err != nil {
		if errors.Is(err, docket.ErrCaseNotFound) {
			return fmt.Errorf("case %s not found", caseID)
		}
		return err
	}

	if !assumeYes {
		confirmed, err := confirmRemoval(target)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := store.Remove(caseID); err != nil {
		return err
	}
	if err := file.Save(store.List()); err != nil {
		return fmt.Errorf("saving case data to %s: %w", dataPath, err)
	}

	logger.Info("case removed", "path", dataPath)
	fmt.Printf("Removed %s.\n", caseID)
	return nil
}

// confirmRemoval prompts for a yes/no answer naming the target case.
// When stdin is not a terminal the prompt cannot be answered, so the
// caller must pass --yes; anything but an explicit yes aborts.
func confirmRemoval(target docket.Case) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("stdin is not a terminal; pass --yes to remove without confirmation")
	}

	label := target.CaseID
	if target.Title != "" {
		label += " (" + target.Title + ")"
	}
	fmt.Printf("Remove %s? [y/N]: ", label)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
