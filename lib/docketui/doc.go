// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

// Package docketui implements the interactive case docket TUI: a
// bubbletea model over a [docket.Store], with a register form, a
// delete confirmation, incremental search, and transient status-bar
// notices.
//
// The model is the controller of the system. Every user intent
// (register, delete, search) flows through [Model.Update], mutates the
// store, writes through to the case file, and re-renders from current
// store state. The bubbletea event loop serializes all of this: one
// message is fully processed before the next, so the store needs no
// locking.
//
// Rendering is a pure projection. [ListRenderer] maps a case slice and
// an empty-state message to styled rows; it never touches the store or
// the data file. All user-entered text is neutralized (ANSI escape
// sequences stripped, control characters dropped) before it reaches a
// styled row, so hostile field values cannot inject terminal escapes
// or break the frame.
package docketui
