// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rahul5Q/judicial-system/lib/docket"
)

// Theme defines the color palette for the docket TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Status badges. The mapping from case status to badge color is
	// fixed: Filed is pending work (warning), In Progress is active
	// (info), Adjourned is interrupted (danger), Closed is done
	// (success). Anything else renders neutral.
	BadgeWarning lipgloss.Color
	BadgeInfo    lipgloss.Color
	BadgeDanger  lipgloss.Color
	BadgeSuccess lipgloss.Color
	BadgeNeutral lipgloss.Color

	// Notices in the status bar.
	NoticeSuccess lipgloss.Color
	NoticeError   lipgloss.Color
	NoticeInfo    lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// StatusColor returns the badge color for a case status. Unrecognized
// statuses get the neutral color — they still render, just without a
// semantic hue.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case docket.StatusFiled:
		return theme.BadgeWarning
	case docket.StatusInProgress:
		return theme.BadgeInfo
	case docket.StatusAdjourned:
		return theme.BadgeDanger
	case docket.StatusClosed:
		return theme.BadgeSuccess
	default:
		return theme.BadgeNeutral
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	BadgeWarning: lipgloss.Color("214"), // amber
	BadgeInfo:    lipgloss.Color("75"),  // blue
	BadgeDanger:  lipgloss.Color("196"), // red
	BadgeSuccess: lipgloss.Color("114"), // green
	BadgeNeutral: lipgloss.Color("245"), // gray

	NoticeSuccess: lipgloss.Color("114"),
	NoticeError:   lipgloss.Color("196"),
	NoticeInfo:    lipgloss.Color("75"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
}
