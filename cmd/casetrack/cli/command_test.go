// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "casetrack",
		Subcommands: []*Command{
			{
				Name: "view",
				Run: func(args []string) error {
					called = "view"
					return nil
				},
			},
			{
				Name: "list",
				Run: func(args []string) error {
					called = "list"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"list"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "list" {
		t.Errorf("dispatched to %q, want %q", called, "list")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var dataPath string
	var target string

	command := &Command{
		Name: "remove",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("remove", pflag.ContinueOnError)
			flagSet.StringVar(&dataPath, "data", "/default.json", "data file path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--data", "/custom.json", "CRIM-01"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if dataPath != "/custom.json" {
		t.Errorf("dataPath = %q, want %q", dataPath, "/custom.json")
	}
	if target != "CRIM-01" {
		t.Errorf("target = %q, want %q", target, "CRIM-01")
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "casetrack",
		Subcommands: []*Command{
			{Name: "register", Run: func(args []string) error { return nil }},
			{Name: "remove", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"registr"})
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "register"`) {
		t.Errorf("error should suggest register, got: %v", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.String("query", "", "filter query")
			flagSet.String("data", "", "data file path")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--querry", "crim"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--query") {
		t.Errorf("error should suggest --query, got: %v", err)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	ran := false
	command := &Command{
		Name:    "view",
		Summary: "open the interactive docket",
		Run: func(args []string) error {
			ran = true
			return nil
		},
	}

	if err := command.Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute(--help) error: %v", err)
	}
	if ran {
		t.Error("--help should not run the command")
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "casetrack",
		Subcommands: []*Command{
			{Name: "view", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute(nil)
	if err == nil {
		t.Fatal("expected error when no subcommand given and no Run defined")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "casetrack",
		Description: "Track judiciary case records from the terminal.",
		Subcommands: []*Command{
			{Name: "view", Summary: "open the interactive docket"},
			{Name: "register", Summary: "register a new case"},
		},
		Examples: []Example{
			{Description: "Open the docket", Command: "casetrack view"},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{
		"Track judiciary case records",
		"view",
		"open the interactive docket",
		"register",
		"# Open the docket",
		"casetrack view",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help should contain %q:\n%s", want, help)
		}
	}
}
