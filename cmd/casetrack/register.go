// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rahul5Q/judicial-system/cmd/casetrack/cli"
	"github.com/rahul5Q/judicial-system/lib/docket"
)

func newRegisterCommand() *cli.Command {
	var dataPath string
	var title string
	var parties string
	var status string
	var hearing string

	return &cli.Command{
		Name:    "register",
		Summary: "register a new case",
		Description: `Register a new case non-interactively.

The case ID is normalized to upper case and must be unique; registering
an existing ID fails. The updated collection is written to the case
data file before the command returns.`,
		Usage: "casetrack register <case-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("register", pflag.ContinueOnError)
			flagSet.StringVar(&dataPath, "data", "", "case data file (default: resolved from config)")
			flagSet.StringVar(&title, "title", "", "case title")
			flagSet.StringVar(&parties, "parties", "", "involved parties")
			flagSet.StringVar(&status, "status", docket.StatusFiled, "case status ("+strings.Join(docket.KnownStatuses, ", ")+")")
			flagSet.StringVar(&hearing, "hearing", "", "hearing date (YYYY-MM-DD)")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Register a case with a hearing date",
				Command:     `casetrack register CRIM-2024-001 --title "State v. Doe" --parties "State; J. Doe" --hearing 2024-05-01`,
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one case ID argument")
			}
			return runRegister(dataPath, docket.Case{
				CaseID:      args[0],
				Title:       title,
				Parties:     parties,
				Status:      status,
				HearingDate: hearing,
			})
		},
	}
}

func runRegister(dataFlag string, newCase docket.Case) error {
	canonical, known := docket.CanonicalStatus(newCase.Status)
	if !known {
		return fmt.Errorf("unknown status %q (expected one of: %s)",
			newCase.Status, strings.Join(docket.KnownStatuses, ", "))
	}
	newCase.Status = canonical

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	dataPath := resolveDataPath(dataFlag, config)

	logger := cli.NewCommandLogger().With("command", "register")

	store, file, _, err := openStore(dataPath, logger)
	if err != nil {
		return err
	}

	if err := store.Add(newCase); err != nil {
		if errors.Is(err, docket.ErrDuplicateCase) {
			return fmt.Errorf("case %s is already registered", docket.NormalizeID(newCase.CaseID))
		}
		return err
	}

	if err := file.Save(store.List()); err != nil {
		return fmt.Errorf("saving case data to %s: %w", dataPath, err)
	}

	caseID := docket.NormalizeID(newCase.CaseID)
	logger.Info("case registered", "case_id", caseID, "path", dataPath)
	fmt.Printf("Registered %s.\n", caseID)
	return nil
}
