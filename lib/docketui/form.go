// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rahul5Q/judicial-system/lib/docket"
)

// Form field order. Status sits between parties and hearing date and
// is a cycling selector rather than a text input.
const (
	fieldCaseID = iota
	fieldTitle
	fieldParties
	fieldStatus
	fieldHearing
	fieldCount
)

// formFieldLabels are the on-screen labels, indexed by field constant.
var formFieldLabels = [fieldCount]string{"Case ID", "Title", "Parties", "Status", "Hearing"}

// RegisterForm is the modal form for registering a new case. Text
// fields are bubbles text inputs; the status field cycles through the
// known status values with left/right. Enter (handled by the model)
// submits from any field, Escape cancels.
type RegisterForm struct {
	theme Theme

	// inputs holds the four text fields: case ID, title, parties,
	// hearing date. textInputIndex maps a field constant to its slot.
	inputs      [4]textinput.Model
	focusField  int
	statusIndex int
}

// NewRegisterForm creates an empty form with the case ID field focused.
func NewRegisterForm(theme Theme) *RegisterForm {
	form := &RegisterForm{theme: theme}

	placeholders := [4]string{"CRIM-2024-001", "State v. Doe", "State; J. Doe", "YYYY-MM-DD"}
	limits := [4]int{40, 120, 120, 10}
	for index := range form.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = placeholders[index]
		input.CharLimit = limits[index]
		input.Width = 34
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText)
		input.TextStyle = lipgloss.NewStyle().Foreground(theme.NormalText)
		form.inputs[index] = input
	}

	form.inputs[0].Focus()
	return form
}

// textInputIndex maps a field constant to its slot in inputs, or -1
// for the status field.
func textInputIndex(field int) int {
	switch field {
	case fieldCaseID:
		return 0
	case fieldTitle:
		return 1
	case fieldParties:
		return 2
	case fieldHearing:
		return 3
	default:
		return -1
	}
}

// Update processes a key message while the form has focus. Tab and
// up/down move between fields; left/right cycle the status when it is
// focused; everything else goes to the focused text input. Returns the
// cursor-blink command from the underlying input, if any.
func (form *RegisterForm) Update(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyTab, tea.KeyDown:
		form.moveFocus(1)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		form.moveFocus(-1)
		return nil
	}

	if form.focusField == fieldStatus {
		switch message.Type {
		case tea.KeyLeft:
			form.statusIndex = (form.statusIndex + len(docket.KnownStatuses) - 1) % len(docket.KnownStatuses)
		case tea.KeyRight, tea.KeySpace:
			form.statusIndex = (form.statusIndex + 1) % len(docket.KnownStatuses)
		}
		return nil
	}

	slot := textInputIndex(form.focusField)
	var cmd tea.Cmd
	form.inputs[slot], cmd = form.inputs[slot].Update(message)
	return cmd
}

// moveFocus shifts focus by delta fields, wrapping around, and updates
// the focus state of the text inputs.
func (form *RegisterForm) moveFocus(delta int) {
	form.focusField = (form.focusField + delta + fieldCount) % fieldCount
	for index := range form.inputs {
		form.inputs[index].Blur()
	}
	if slot := textInputIndex(form.focusField); slot >= 0 {
		form.inputs[slot].Focus()
	}
}

// Case assembles the form contents into a case record. The case ID is
// trimmed here; uppercasing happens in the store's normalization.
func (form *RegisterForm) Case() docket.Case {
	return docket.Case{
		CaseID:      strings.TrimSpace(form.inputs[0].Value()),
		Title:       strings.TrimSpace(form.inputs[1].Value()),
		Parties:     strings.TrimSpace(form.inputs[2].Value()),
		Status:      docket.KnownStatuses[form.statusIndex],
		HearingDate: strings.TrimSpace(form.inputs[3].Value()),
	}
}

// Reset clears all fields and refocuses the case ID field.
func (form *RegisterForm) Reset() {
	for index := range form.inputs {
		form.inputs[index].Reset()
		form.inputs[index].Blur()
	}
	form.statusIndex = 0
	form.focusField = fieldCaseID
	form.inputs[0].Focus()
}

// Render produces the bordered form modal.
func (form *RegisterForm) Render() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(form.theme.FaintText).
		Width(9)
	focusedLabelStyle := labelStyle.
		Foreground(form.theme.HeaderForeground).
		Bold(true)
	titleStyle := lipgloss.NewStyle().
		Foreground(form.theme.HeaderForeground).
		Bold(true)
	footerStyle := lipgloss.NewStyle().
		Foreground(form.theme.HelpText)

	lines := []string{titleStyle.Render("Register Case"), ""}

	for field := 0; field < fieldCount; field++ {
		label := formFieldLabels[field]
		style := labelStyle
		if field == form.focusField {
			style = focusedLabelStyle
		}

		var value string
		if field == fieldStatus {
			value = form.renderStatusSelector()
		} else {
			value = form.inputs[textInputIndex(field)].View()
		}
		lines = append(lines, style.Render(label)+value)
	}

	lines = append(lines, "", footerStyle.Render("Enter save  Esc cancel  Tab next field"))

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(form.theme.BorderColor).
		Padding(0, 1)

	return border.Render(strings.Join(lines, "\n"))
}

// renderStatusSelector renders the cycling status field with its
// badge color and arrows hinting at left/right cycling.
func (form *RegisterForm) renderStatusSelector() string {
	status := docket.KnownStatuses[form.statusIndex]
	arrowStyle := lipgloss.NewStyle().Foreground(form.theme.FaintText)
	statusStyle := lipgloss.NewStyle().
		Foreground(form.theme.StatusColor(status)).
		Bold(true)
	return arrowStyle.Render("◀ ") + statusStyle.Render(status) + arrowStyle.Render(" ▶")
}
