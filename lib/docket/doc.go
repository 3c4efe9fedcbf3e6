// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

// Package docket provides the in-memory case collection for casetrack.
// It owns the authoritative ordered list of [Case] records and enforces
// the one structural invariant of the system: no two cases share a
// case-insensitively equal CaseID.
//
// # Lifecycle
//
// Create a store with [NewStore]. Hydrate it once at startup by passing
// the persisted collection to [Store.ReplaceAll], then mutate it only
// through [Store.Add] and [Store.Remove]. There is no in-place edit: a
// case is inserted whole and removed whole.
//
// # Ordering
//
// The store preserves insertion order. Display ordering (hearing date
// ascending, undated cases last) is a derived view computed by
// [SortForDisplay]; it never writes back into the store.
//
// # Concurrency
//
// Store is not safe for concurrent use. The TUI serializes access
// through the bubbletea event loop, and the one-shot CLI commands run
// to completion in a single goroutine.
package docket
