// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"view", "view", 0},
		{"veiw", "view", 2},
		{"remove", "rmove", 1},
		{"list", "register", 5},
	}

	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "view"},
		{Name: "register"},
		{Name: "list"},
		{Name: "remove"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"veiw", "view"},
		{"registr", "register"},
		{"remov", "remove"},
		{"lst", "list"},
		{"completely-different", ""},
	}

	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("query", "", "")
		flagSet.String("data", "", "")
		flagSet.BoolP("yes", "y", false, "")
		return flagSet
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--querry", "x"}, "--query"},
		{[]string{"--dta=/tmp/c.json"}, "--data"},
		{[]string{"--query", "x"}, ""},
		{[]string{"positional"}, ""},
		{[]string{"--nothing-close"}, ""},
	}

	for _, test := range tests {
		if got := suggestFlag(test.args, makeFlags()); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
