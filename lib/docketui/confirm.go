// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal asks the user to confirm deletion of a specific case.
// Deletion is irreversible once written through to disk, so it always
// routes through this modal; there is no unconfirmed delete path.
type ConfirmModal struct {
	theme Theme

	// CaseID names the deletion target so the user confirms a specific
	// record rather than "the selected row".
	CaseID string
}

// NewConfirmModal creates a confirmation modal for the given case ID.
func NewConfirmModal(theme Theme, caseID string) *ConfirmModal {
	return &ConfirmModal{theme: theme, CaseID: caseID}
}

// Render produces the bordered confirmation prompt.
func (modal *ConfirmModal) Render() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(modal.theme.NoticeError).
		Bold(true)
	idStyle := lipgloss.NewStyle().
		Foreground(modal.theme.HeaderForeground).
		Bold(true)
	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.HelpText)

	lines := []string{
		titleStyle.Render("Delete Case"),
		"",
		textStyle.Render("Remove ") + idStyle.Render(sanitizeField(modal.CaseID)) + textStyle.Render(" from the docket?"),
		"",
		footerStyle.Render("y/Enter delete  n/Esc cancel"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.NoticeError).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
