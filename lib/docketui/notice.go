// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docketui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoticeKind classifies a transient status-bar message.
type NoticeKind int

const (
	// NoticeSuccess confirms a completed mutation (case registered,
	// case deleted).
	NoticeSuccess NoticeKind = iota
	// NoticeError reports a rejected or failed operation. The
	// application stays interactive; errors are never fatal.
	NoticeError
	// NoticeInfo carries neutral information (background log records).
	NoticeInfo
)

// noticeFadeDelay is how long a notice stays visible before the fade
// message clears it from the status bar.
const noticeFadeDelay = 4 * time.Second

// notice is the transient status-bar message. The sequence number ties
// each notice to its own fade timer: a stale fade from an earlier
// notice must not clear a newer one.
type notice struct {
	text string
	kind NoticeKind
	seq  int
}

// noticeFadeMsg clears the notice with the matching sequence number.
type noticeFadeMsg struct {
	seq int
}

// scheduleNoticeFade returns a tea.Cmd that fades the notice with the
// given sequence number after the fade delay.
func scheduleNoticeFade(seq int) tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{seq: seq}
	})
}

// color returns the status-bar color for the notice kind.
func (n notice) color(theme Theme) lipgloss.Color {
	switch n.kind {
	case NoticeSuccess:
		return theme.NoticeSuccess
	case NoticeError:
		return theme.NoticeError
	default:
		return theme.NoticeInfo
	}
}
