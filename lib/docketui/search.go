// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rahul5Q/judicial-system/lib/docket"
)

// SearchModel holds the incremental search state. Matching semantics
// live on [docket.Case.Matches] (case-insensitive substring across
// case ID, title, and parties); this model only owns the query text
// and its one-line view.
type SearchModel struct {
	// Input is the current query text.
	Input string

	// Active is true while the search input has keyboard focus (the
	// user pressed / and has not yet confirmed or cleared).
	Active bool
}

// Apply filters cases against the current query, preserving order.
// An empty query returns the input unchanged.
func (search *SearchModel) Apply(cases []docket.Case) []docket.Case {
	if search.Input == "" {
		return cases
	}
	var matched []docket.Case
	for _, c := range cases {
		if c.Matches(search.Input) {
			matched = append(matched, c)
		}
	}
	return matched
}

// HandleRune appends a typed character to the query.
func (search *SearchModel) HandleRune(character rune) {
	search.Input += string(character)
}

// HandleBackspace removes the last character from the query. Returns
// true if the query changed.
func (search *SearchModel) HandleBackspace() bool {
	if len(search.Input) == 0 {
		return false
	}
	runes := []rune(search.Input)
	search.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and deactivates the search.
func (search *SearchModel) Clear() {
	search.Input = ""
	search.Active = false
}

// View renders the search bar. Active: query with a cursor. Inactive
// with text: a subtle indicator that a filter is narrowing the list.
// Inactive and empty: hidden.
func (search *SearchModel) View(theme Theme, width int) string {
	if !search.Active && search.Input == "" {
		return ""
	}

	if search.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			Render(" / " + search.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		Render(" search: " + search.Input)
}
