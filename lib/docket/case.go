// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docket

import (
	"slices"
	"strings"
)

// Known status values. Status is free text — anything outside this set
// is stored and rendered as-is with neutral styling — but the register
// form cycles through these and the view maps them to badge colors.
const (
	StatusFiled      = "Filed"
	StatusInProgress = "In Progress"
	StatusAdjourned  = "Adjourned"
	StatusClosed     = "Closed"
)

// KnownStatuses lists the recognized status values in the order the
// register form cycles through them.
var KnownStatuses = []string{StatusFiled, StatusInProgress, StatusAdjourned, StatusClosed}

// CanonicalStatus maps a status string to its canonical form under
// case-insensitive comparison. Returns false when the status is not a
// known value.
func CanonicalStatus(status string) (string, bool) {
	status = strings.TrimSpace(status)
	for _, known := range KnownStatuses {
		if strings.EqualFold(known, status) {
			return known, true
		}
	}
	return "", false
}

// Case is a single judiciary case record. CaseID is the unique key
// (case-insensitive, stored uppercase); every other field is free text
// and may be empty. HearingDate is expected to be YYYY-MM-DD so that
// lexicographic order is chronological order, but the format is not
// enforced.
type Case struct {
	CaseID      string `json:"caseId"`
	Title       string `json:"title"`
	Parties     string `json:"parties"`
	Status      string `json:"status"`
	HearingDate string `json:"hearingDate"`
}

// NormalizeID trims surrounding whitespace and uppercases a case ID.
// All IDs pass through here before entering the store, so equality
// inside the store reduces to exact comparison of normalized IDs.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Matches reports whether the query (case-insensitive) is a substring
// of the case ID, title, or parties. An empty query matches everything.
func (c Case) Matches(query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.CaseID), query) ||
		strings.Contains(strings.ToLower(c.Title), query) ||
		strings.Contains(strings.ToLower(c.Parties), query)
}

// SortForDisplay returns a new slice in display order: cases with a
// hearing date first, ascending lexicographically, then undated cases
// in their original relative order. The sort is stable, so rendering
// the same collection twice yields the same order. The input is not
// modified.
func SortForDisplay(cases []Case) []Case {
	sorted := slices.Clone(cases)
	slices.SortStableFunc(sorted, func(a, b Case) int {
		switch {
		case a.HearingDate == "" && b.HearingDate == "":
			return 0
		case a.HearingDate == "":
			return 1
		case b.HearingDate == "":
			return -1
		default:
			return strings.Compare(a.HearingDate, b.HearingDate)
		}
	})
	return sorted
}
