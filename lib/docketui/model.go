// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rahul5Q/judicial-system/lib/casefile"
	"github.com/rahul5Q/judicial-system/lib/docket"
)

// FocusRegion identifies which part of the UI consumes key input.
type FocusRegion int

const (
	// FocusList is the default state: keys navigate the docket table.
	FocusList FocusRegion = iota
	// FocusSearch routes typed characters into the search query.
	FocusSearch
	// FocusForm routes input into the register-case form.
	FocusForm
	// FocusConfirm awaits a yes/no answer on the delete confirmation.
	FocusConfirm
)

// Model is the bubbletea model for the docket view. It owns the case
// store, writes every mutation through to the case file, and keeps the
// rendered list in sync with the store and the active search filter.
//
// All mutations run inside Update on the bubbletea event loop, so the
// in-memory store never sees concurrent access.
type Model struct {
	store  *docket.Store
	file   *casefile.File
	logger *slog.Logger
	theme  Theme
	keys   KeyMap

	width  int
	height int
	ready  bool

	focus   FocusRegion
	search  SearchModel
	form    *RegisterForm
	confirm *ConfirmModal

	// visible is the current projection of the store: filtered by the
	// search query and sorted into display order. The cursor indexes
	// into this slice, never into the store directly.
	visible      []docket.Case
	cursor       int
	scrollOffset int

	notice    *notice
	noticeSeq int

	// startupNotice is queued before the program starts (for example a
	// warning about discarded duplicates during hydration) and emitted
	// from Init.
	startupNotice *notice
}

// NewModel creates the docket model. The store should already be
// hydrated from the case file.
func NewModel(store *docket.Store, file *casefile.File, logger *slog.Logger) *Model {
	model := &Model{
		store:  store,
		file:   file,
		logger: logger,
		theme:  DefaultTheme,
		keys:   DefaultKeyMap,
	}
	model.refreshVisible()
	return model
}

// SetStartupNotice queues a notice shown as soon as the UI starts.
// Must be called before the program runs.
func (m *Model) SetStartupNotice(text string, kind NoticeKind) {
	m.startupNotice = &notice{text: text, kind: kind}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.startupNotice != nil {
		queued := *m.startupNotice
		m.startupNotice = nil
		return m.showNotice(queued.text, queued.kind)
	}
	return nil
}

// Update implements tea.Model. All state transitions, including every
// store mutation and file write, happen here.
func (m *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.ensureCursorVisible()
		return m, nil

	case noticeFadeMsg:
		if m.notice != nil && m.notice.seq == message.seq {
			m.notice = nil
		}
		return m, nil

	case logNoticeMsg:
		return m, m.showNotice(message.text, message.kind)

	case CaseFileChangedMsg:
		return m, m.reloadFromFile()

	case tea.KeyMsg:
		switch m.focus {
		case FocusForm:
			return m.updateForm(message)
		case FocusConfirm:
			return m.updateConfirm(message)
		case FocusSearch:
			return m.updateSearch(message)
		default:
			return m.updateList(message)
		}
	}

	return m, nil
}

// updateList handles keys in the default list state.
func (m *Model) updateList(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(message, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(message, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(message, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
	case key.Matches(message, m.keys.PageDown):
		m.moveCursor(m.listHeight())
	case key.Matches(message, m.keys.Home):
		m.cursor = 0
		m.ensureCursorVisible()
	case key.Matches(message, m.keys.End):
		m.cursor = len(m.visible) - 1
		m.ensureCursorVisible()

	case key.Matches(message, m.keys.Register):
		m.form = NewRegisterForm(m.theme)
		m.focus = FocusForm
		return m, textinput.Blink

	case key.Matches(message, m.keys.Delete):
		target, ok := m.selectedCase()
		if !ok {
			return m, m.showNotice("No case selected.", NoticeError)
		}
		m.confirm = NewConfirmModal(m.theme, target.CaseID)
		m.focus = FocusConfirm

	case key.Matches(message, m.keys.SearchActivate):
		m.search.Active = true
		m.focus = FocusSearch

	case key.Matches(message, m.keys.SearchClear):
		if m.search.Input != "" {
			m.search.Clear()
			m.refreshVisible()
		}
	}

	return m, nil
}

// updateSearch handles keys while the search input has focus. Every
// keystroke re-filters the list immediately.
func (m *Model) updateSearch(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		m.search.Clear()
		m.focus = FocusList
		m.refreshVisible()
	case tea.KeyEnter:
		m.search.Active = false
		m.focus = FocusList
	case tea.KeyBackspace:
		if m.search.HandleBackspace() {
			m.refreshVisible()
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes, tea.KeySpace:
		typed := string(message.Runes)
		if message.Type == tea.KeySpace && typed == "" {
			typed = " "
		}
		for _, character := range typed {
			m.search.HandleRune(character)
		}
		m.refreshVisible()
	}
	return m, nil
}

// updateForm handles keys while the register form is open.
func (m *Model) updateForm(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		m.form = nil
		m.focus = FocusList
		return m, nil
	case tea.KeyEnter:
		return m, m.registerCase(m.form.Case())
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, m.form.Update(message)
}

// updateConfirm handles the delete confirmation answer.
func (m *Model) updateConfirm(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyEnter,
		message.Type == tea.KeyRunes && strings.EqualFold(string(message.Runes), "y"):
		target := m.confirm.CaseID
		m.confirm = nil
		m.focus = FocusList
		return m, m.deleteCase(target)
	case message.Type == tea.KeyEscape,
		message.Type == tea.KeyRunes && strings.EqualFold(string(message.Runes), "n"):
		m.confirm = nil
		m.focus = FocusList
	case message.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

// registerCase validates and registers a new case, writing the updated
// collection through to the case file. A save failure keeps the
// in-memory change and surfaces an error notice; the file will be
// rewritten on the next successful mutation.
func (m *Model) registerCase(newCase docket.Case) tea.Cmd {
	if newCase.CaseID == "" {
		return m.showNotice("Case ID is required.", NoticeError)
	}

	if err := m.store.Add(newCase); err != nil {
		if errors.Is(err, docket.ErrDuplicateCase) {
			return m.showNotice(
				fmt.Sprintf("Case %s already exists.", docket.NormalizeID(newCase.CaseID)),
				NoticeError,
			)
		}
		return m.showNotice(err.Error(), NoticeError)
	}

	m.form = nil
	m.focus = FocusList
	m.refreshVisible()

	caseID := docket.NormalizeID(newCase.CaseID)
	if err := m.file.Save(m.store.List()); err != nil {
		m.logger.Error("failed to save case file", "path", m.file.Path(), "error", err)
		return m.showNotice(
			fmt.Sprintf("Registered %s, but saving failed: %v", caseID, err),
			NoticeError,
		)
	}

	m.logger.Info("case registered", "case_id", caseID)
	return m.showNotice(fmt.Sprintf("Registered %s.", caseID), NoticeSuccess)
}

// deleteCase removes a case by ID and writes the updated collection
// through to the case file.
func (m *Model) deleteCase(caseID string) tea.Cmd {
	if err := m.store.Remove(caseID); err != nil {
		if errors.Is(err, docket.ErrCaseNotFound) {
			return m.showNotice(fmt.Sprintf("Case %s not found.", caseID), NoticeError)
		}
		return m.showNotice(err.Error(), NoticeError)
	}

	m.refreshVisible()

	if err := m.file.Save(m.store.List()); err != nil {
		m.logger.Error("failed to save case file", "path", m.file.Path(), "error", err)
		return m.showNotice(
			fmt.Sprintf("Deleted %s, but saving failed: %v", caseID, err),
			NoticeError,
		)
	}

	m.logger.Info("case deleted", "case_id", caseID)
	return m.showNotice(fmt.Sprintf("Deleted %s.", caseID), NoticeSuccess)
}

// CaseFileChangedMsg reports that the case data file changed on disk.
// The file watcher sends it from its own goroutine via program.Send,
// so the reload itself still runs serialized inside Update.
type CaseFileChangedMsg struct{}

// reloadFromFile re-reads the case file and replaces the collection.
// The watcher also fires for this process's own saves; those reloads
// carry identical content and are dropped without a notice.
func (m *Model) reloadFromFile() tea.Cmd {
	cases, err := m.file.Load()
	if err != nil {
		m.logger.Error("failed to reload case file", "path", m.file.Path(), "error", err)
		return m.showNotice(fmt.Sprintf("Reloading case file failed: %v", err), NoticeError)
	}

	incoming := docket.NewStore()
	dropped := incoming.ReplaceAll(cases)
	if slices.Equal(incoming.List(), m.store.List()) {
		return nil
	}

	m.store.ReplaceAll(incoming.List())
	m.refreshVisible()

	if dropped > 0 {
		m.logger.Warn("discarded duplicate cases while reloading", "count", dropped)
	}
	return m.showNotice("Case file changed on disk; view reloaded.", NoticeInfo)
}

// refreshVisible rebuilds the displayed projection from the store and
// the active search filter, then clamps the cursor.
func (m *Model) refreshVisible() {
	m.visible = docket.SortForDisplay(m.search.Apply(m.store.List()))
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// selectedCase returns the case under the cursor, if any.
func (m *Model) selectedCase() (docket.Case, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return docket.Case{}, false
	}
	return m.visible[m.cursor], true
}

// moveCursor moves the cursor by delta rows, clamped to the visible
// list.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts the scroll offset so the cursor row is
// on screen.
func (m *Model) ensureCursorVisible() {
	visibleRows := m.listHeight()
	if visibleRows <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visibleRows {
		m.scrollOffset = m.cursor - visibleRows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// listHeight returns the number of rows available for the case table:
// full height minus the title bar, optional search bar, column header,
// and status bar.
func (m *Model) listHeight() int {
	chrome := 3 // title, column header, status bar
	if m.search.Active || m.search.Input != "" {
		chrome++
	}
	return m.height - chrome
}

// showNotice installs a transient status-bar notice and schedules its
// fade.
func (m *Model) showNotice(text string, kind NoticeKind) tea.Cmd {
	m.noticeSeq++
	m.notice = &notice{text: text, kind: kind, seq: m.noticeSeq}
	return scheduleNoticeFade(m.noticeSeq)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading docket..."
	}

	var sections []string
	sections = append(sections, m.renderTitle())

	if searchBar := m.search.View(m.theme, m.width); searchBar != "" {
		sections = append(sections, searchBar)
	}

	renderer := NewListRenderer(m.theme, m.width)
	sections = append(sections, renderer.RenderHeader())
	sections = append(sections, m.renderBody(renderer))
	sections = append(sections, m.renderStatusBar())

	return strings.Join(sections, "\n")
}

// renderTitle renders the top bar with the case count.
func (m *Model) renderTitle() string {
	count := m.store.Len()
	label := fmt.Sprintf(" Casetrack — %d case", count)
	if count != 1 {
		label += "s"
	}
	if m.search.Input != "" {
		label += fmt.Sprintf(" (%d shown)", len(m.visible))
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true).
		Width(m.width).
		Render(label)
}

// renderBody renders the table rows, an empty-state message, or the
// active modal centered in the content area.
func (m *Model) renderBody(renderer ListRenderer) string {
	height := m.listHeight()
	if height < 1 {
		height = 1
	}

	if m.focus == FocusForm && m.form != nil {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			m.form.Render())
	}
	if m.focus == FocusConfirm && m.confirm != nil {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			m.confirm.Render())
	}

	if len(m.visible) == 0 {
		if m.store.Len() == 0 {
			return renderer.RenderEmpty("No cases registered yet. Press a to add the first case.", height)
		}
		return renderer.RenderEmpty("No cases match the current search.", height)
	}

	rows := renderer.Rows(m.visible, m.cursor)
	end := m.scrollOffset + height
	if end > len(rows) {
		end = len(rows)
	}
	window := rows[m.scrollOffset:end]

	body := strings.Join(window, "\n")
	for filler := len(window); filler < height; filler++ {
		body += "\n"
	}
	return body
}

// renderStatusBar renders the bottom line: the active notice if one is
// showing, otherwise a key hint summary.
func (m *Model) renderStatusBar() string {
	if m.notice != nil {
		return lipgloss.NewStyle().
			Foreground(m.notice.color(m.theme)).
			Width(m.width).
			MaxWidth(m.width).
			Render(" " + m.notice.text)
	}

	var hints string
	switch m.focus {
	case FocusForm:
		hints = " Enter save · Esc cancel · Tab next field"
	case FocusConfirm:
		hints = " y delete · n cancel"
	case FocusSearch:
		hints = " type to filter · Enter keep · Esc clear"
	default:
		hints = " a add · d delete · / search · j/k move · q quit"
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.HelpText).
		Width(m.width).
		MaxWidth(m.width).
		Render(hints)
}
