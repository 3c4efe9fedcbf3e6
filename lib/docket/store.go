// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docket

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for store mutations. Callers distinguish them with
// errors.Is to decide which notice to surface; both are recoverable and
// leave the store unchanged.
var (
	// ErrDuplicateCase is returned by Add when a case with the same
	// case-insensitive CaseID is already registered.
	ErrDuplicateCase = errors.New("case already registered")

	// ErrCaseNotFound is returned by Remove and Get when no case with
	// the given CaseID exists.
	ErrCaseNotFound = errors.New("case not found")
)

// Store is the authoritative in-memory case collection. It preserves
// insertion order and rejects case-insensitive CaseID duplicates. All
// persistence and rendering happens outside: Add and Remove touch
// nothing but the in-memory slice.
type Store struct {
	cases []Case
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a case to the collection. The CaseID is normalized
// (trimmed, uppercased) before the uniqueness check. Returns
// ErrDuplicateCase, wrapped with the offending ID, when a
// case-insensitive collision exists; the store is unchanged.
func (s *Store) Add(c Case) error {
	c.CaseID = NormalizeID(c.CaseID)
	if _, exists := s.indexOf(c.CaseID); exists {
		return fmt.Errorf("%s: %w", c.CaseID, ErrDuplicateCase)
	}
	s.cases = append(s.cases, c)
	return nil
}

// Remove deletes the case whose CaseID matches case-insensitively.
// Returns ErrCaseNotFound, wrapped with the requested ID, when absent;
// the store is unchanged.
func (s *Store) Remove(caseID string) error {
	caseID = NormalizeID(caseID)
	index, exists := s.indexOf(caseID)
	if !exists {
		return fmt.Errorf("%s: %w", caseID, ErrCaseNotFound)
	}
	s.cases = slices.Delete(s.cases, index, index+1)
	return nil
}

// Get returns the case with the given ID (case-insensitive).
func (s *Store) Get(caseID string) (Case, error) {
	index, exists := s.indexOf(NormalizeID(caseID))
	if !exists {
		return Case{}, fmt.Errorf("%s: %w", NormalizeID(caseID), ErrCaseNotFound)
	}
	return s.cases[index], nil
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []Case {
	return slices.Clone(s.cases)
}

// Filter returns the cases matching the query (case-insensitive
// substring across CaseID, title, and parties), in insertion order.
// An empty query returns the full collection.
func (s *Store) Filter(query string) []Case {
	if query == "" {
		return s.List()
	}
	var matched []Case
	for _, c := range s.cases {
		if c.Matches(query) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Len returns the number of cases in the collection.
func (s *Store) Len() int {
	return len(s.cases)
}

// ReplaceAll replaces the entire collection during hydration from
// persistence. It never fails: legacy or hand-edited data files may
// contain duplicate IDs, and startup must not be blocked by them.
// Duplicates are dropped keeping the first occurrence of each
// case-insensitive ID; the return value is the number of dropped
// records so the caller can log the anomaly. IDs are normalized, which
// also repairs files written before uppercasing was introduced.
func (s *Store) ReplaceAll(cases []Case) int {
	seen := make(map[string]bool, len(cases))
	kept := make([]Case, 0, len(cases))
	for _, c := range cases {
		c.CaseID = NormalizeID(c.CaseID)
		if seen[c.CaseID] {
			continue
		}
		seen[c.CaseID] = true
		kept = append(kept, c)
	}
	s.cases = kept
	return len(cases) - len(kept)
}

// indexOf finds the position of a normalized CaseID. Stored IDs are
// already normalized, so a direct comparison suffices; EqualFold guards
// against records injected through ReplaceAll paths in older formats.
func (s *Store) indexOf(normalizedID string) (int, bool) {
	for index, c := range s.cases {
		if strings.EqualFold(c.CaseID, normalizedID) {
			return index, true
		}
	}
	return 0, false
}
