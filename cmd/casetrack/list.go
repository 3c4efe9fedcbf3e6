// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/rahul5Q/judicial-system/cmd/casetrack/cli"
	"github.com/rahul5Q/judicial-system/lib/docket"
)

func newListCommand() *cli.Command {
	var dataPath string
	var query string

	return &cli.Command{
		Name:    "list",
		Summary: "print the docket",
		Description: `Print the docket as a table, sorted by hearing date with undated
cases last. With --query, only cases whose ID, title, or parties
contain the query (case-insensitive) are printed; no matches exits
with status 1.`,
		Usage: "casetrack list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&dataPath, "data", "", "case data file (default: resolved from config)")
			flagSet.StringVarP(&query, "query", "q", "", "filter across case ID, title, and parties")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Print all cases", Command: "casetrack list"},
			{Description: "Print criminal cases only", Command: "casetrack list --query crim"},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runList(dataPath, query)
		},
	}
}

func runList(dataFlag string, query string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	dataPath := resolveDataPath(dataFlag, config)

	logger := cli.NewCommandLogger().With("command", "list")

	store, _, _, err := openStore(dataPath, logger)
	if err != nil {
		return err
	}

	cases := docket.SortForDisplay(store.Filter(query))
	if len(cases) == 0 {
		if query != "" {
			fmt.Fprintf(os.Stderr, "no cases match %q\n", query)
			return &cli.ExitError{Code: 1}
		}
		fmt.Println("No cases registered.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "CASE ID\tTITLE\tPARTIES\tSTATUS\tHEARING")
	for _, c := range cases {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.CaseID, c.Title, c.Parties, c.Status, c.HearingDate)
	}
	return tw.Flush()
}
