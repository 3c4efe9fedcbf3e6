// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rahul5Q/judicial-system/lib/docket"
)

// Fixed column widths for the docket table. Title and parties share
// the remaining width; all others are fixed.
const (
	columnWidthID      = 12 // case ID + trailing space
	columnWidthStatus  = 13 // longest known status ("In Progress") + padding
	columnWidthHearing = 10 // YYYY-MM-DD
)

// ListRenderer renders the docket as a table within a given width. It
// is a pure projection: cases and an empty-state message in, styled
// rows out. Display order is derived here via [docket.SortForDisplay]
// and never written back to the store.
type ListRenderer struct {
	theme Theme
	width int
}

// NewListRenderer creates a ListRenderer for the given row width.
func NewListRenderer(theme Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

// columnWidths returns the widths of the flexible columns. Title gets
// 60% of the remaining space, parties the rest, with floors so neither
// vanishes on narrow terminals.
func (renderer ListRenderer) columnWidths() (titleWidth, partiesWidth int) {
	remaining := renderer.width - 1 - columnWidthID - columnWidthStatus - columnWidthHearing - 1
	titleWidth = remaining * 6 / 10
	partiesWidth = remaining - titleWidth
	if titleWidth < 8 {
		titleWidth = 8
	}
	if partiesWidth < 6 {
		partiesWidth = 6
	}
	return titleWidth, partiesWidth
}

// RenderHeader renders the column header row.
func (renderer ListRenderer) RenderHeader() string {
	titleWidth, partiesWidth := renderer.columnWidths()

	header := " " +
		pad("CASE ID", columnWidthID) +
		pad("TITLE", titleWidth) +
		pad("PARTIES", partiesWidth) +
		pad("STATUS", columnWidthStatus) +
		pad("HEARING", columnWidthHearing)

	return lipgloss.NewStyle().
		Foreground(renderer.theme.HeaderForeground).
		Bold(true).
		Width(renderer.width).
		MaxWidth(renderer.width).
		Render(header)
}

// Rows renders all cases in display order (hearing date ascending,
// undated last). The cursor indexes into the display order; -1 means
// no selection.
func (renderer ListRenderer) Rows(cases []docket.Case, cursor int) []string {
	ordered := docket.SortForDisplay(cases)
	rows := make([]string, len(ordered))
	for index, c := range ordered {
		rows[index] = renderer.RenderRow(c, index == cursor)
	}
	return rows
}

// RenderRow renders a single case as a table row. Every field is
// user-entered and therefore neutralized before styling: escape
// sequences are stripped and control characters dropped, so field
// content is always inert text.
//
//	CRIM-01     State v. Doe        State; J. Doe   Filed        2024-05-01
func (renderer ListRenderer) RenderRow(c docket.Case, selected bool) string {
	titleWidth, partiesWidth := renderer.columnWidths()

	id := truncate(sanitizeField(c.CaseID), columnWidthID-1)
	title := truncate(sanitizeField(c.Title), titleWidth-1)
	parties := truncate(sanitizeField(c.Parties), partiesWidth-1)
	status := truncate(sanitizeField(c.Status), columnWidthStatus-1)
	hearing := truncate(sanitizeField(c.HearingDate), columnWidthHearing-1)

	if selected {
		baseStyle := lipgloss.NewStyle().
			Background(renderer.theme.SelectedBackground).
			Foreground(renderer.theme.SelectedForeground)
		row := " " +
			baseStyle.Bold(true).Render(pad(id, columnWidthID)) +
			baseStyle.Render(pad(title, titleWidth)) +
			baseStyle.Render(pad(parties, partiesWidth)) +
			baseStyle.Bold(true).Render(pad(status, columnWidthStatus)) +
			baseStyle.Render(pad(hearing, columnWidthHearing))
		return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
	}

	idStyle := lipgloss.NewStyle().Foreground(renderer.theme.HeaderForeground)
	textStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	badgeStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.StatusColor(c.Status)).
		Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)

	row := " " +
		idStyle.Render(pad(id, columnWidthID)) +
		textStyle.Render(pad(title, titleWidth)) +
		textStyle.Render(pad(parties, partiesWidth)) +
		badgeStyle.Render(pad(status, columnWidthStatus)) +
		dateStyle.Render(pad(hearing, columnWidthHearing))

	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// RenderEmpty renders the empty-state indicator centered in the given
// content height. The message distinguishes "nothing registered" from
// "nothing matches the search"; the caller picks the variant.
func (renderer ListRenderer) RenderEmpty(message string, height int) string {
	return lipgloss.Place(
		renderer.width, height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(renderer.theme.FaintText).Render(message),
	)
}

// sanitizeField neutralizes user-entered text for terminal display.
// ANSI escape sequences are stripped and remaining control characters
// dropped. Markup-like text ("<b>x</b>", quotes) passes through as
// literal characters — it has no meaning in a terminal cell and must
// stay visible as typed.
func sanitizeField(text string) string {
	stripped := ansi.Strip(text)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, stripped)
}

// pad right-pads text with spaces to the given display width.
func pad(text string, width int) string {
	gap := width - lipgloss.Width(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

// truncate shortens text to maxWidth display columns, appending an
// ellipsis when anything was cut.
func truncate(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= maxWidth-1 {
			return candidate + "…"
		}
	}
	return ""
}
