// Copyright 2026 The Casetrack Authors
// SPDX-License-Identifier: Apache-2.0

package docket

import "testing"

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"crim-01", "CRIM-01"},
		{"  CIV-2  ", "CIV-2"},
		{"", ""},
		{"  ", ""},
		{"Já-1", "JÁ-1"},
	}
	for _, test := range tests {
		if got := NormalizeID(test.input); got != test.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
		known bool
	}{
		{"Filed", "Filed", true},
		{"filed", "Filed", true},
		{"  in progress ", "In Progress", true},
		{"ADJOURNED", "Adjourned", true},
		{"closed", "Closed", true},
		{"pending", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		got, known := CanonicalStatus(test.input)
		if got != test.want || known != test.known {
			t.Errorf("CanonicalStatus(%q) = (%q, %t), want (%q, %t)",
				test.input, got, known, test.want, test.known)
		}
	}
}

func TestMatchesIsCaseInsensitive(t *testing.T) {
	c := Case{CaseID: "CRIM-01", Title: "State v. Doe", Parties: "State; J. Doe"}

	for _, query := range []string{"crim", "DOE", "state", ""} {
		if !c.Matches(query) {
			t.Errorf("Matches(%q) = false, want true", query)
		}
	}
	if c.Matches("jones") {
		t.Error("Matches(\"jones\") = true, want false")
	}
}

func TestMatchesIgnoresStatusAndDate(t *testing.T) {
	// Search covers ID, title, and parties only: status and hearing
	// date are not searchable fields.
	c := Case{CaseID: "C-1", Status: StatusAdjourned, HearingDate: "2024-05-01"}

	if c.Matches("adjourned") {
		t.Error("query matched the status field")
	}
	if c.Matches("2024") {
		t.Error("query matched the hearing date field")
	}
}

func TestSortForDisplayOrdersByHearingDate(t *testing.T) {
	cases := []Case{
		{CaseID: "A", HearingDate: "2024-06-15"},
		{CaseID: "B"},
		{CaseID: "C", HearingDate: "2024-05-01"},
		{CaseID: "D", HearingDate: ""},
		{CaseID: "E", HearingDate: "2025-01-02"},
	}

	sorted := SortForDisplay(cases)

	want := []string{"C", "A", "E", "B", "D"}
	for index, id := range want {
		if sorted[index].CaseID != id {
			t.Errorf("sorted[%d] = %q, want %q", index, sorted[index].CaseID, id)
		}
	}
}

func TestSortForDisplayIsStableForUndated(t *testing.T) {
	// Undated cases keep their relative insertion order behind all
	// dated cases.
	cases := []Case{
		{CaseID: "U-1"},
		{CaseID: "U-2"},
		{CaseID: "DATED", HearingDate: "2030-01-01"},
		{CaseID: "U-3"},
	}

	sorted := SortForDisplay(cases)

	want := []string{"DATED", "U-1", "U-2", "U-3"}
	for index, id := range want {
		if sorted[index].CaseID != id {
			t.Errorf("sorted[%d] = %q, want %q", index, sorted[index].CaseID, id)
		}
	}
}

func TestSortForDisplayIsIdempotent(t *testing.T) {
	cases := []Case{
		{CaseID: "B", HearingDate: "2024-02-01"},
		{CaseID: "A"},
		{CaseID: "C", HearingDate: "2024-01-01"},
	}

	first := SortForDisplay(cases)
	second := SortForDisplay(cases)

	for index := range first {
		if first[index].CaseID != second[index].CaseID {
			t.Errorf("display order differs between renders at %d: %q vs %q",
				index, first[index].CaseID, second[index].CaseID)
		}
	}
}

func TestSortForDisplayDoesNotMutateInput(t *testing.T) {
	cases := []Case{
		{CaseID: "B", HearingDate: "2024-02-01"},
		{CaseID: "A", HearingDate: "2024-01-01"},
	}

	SortForDisplay(cases)

	if cases[0].CaseID != "B" {
		t.Error("SortForDisplay reordered its input slice")
	}
}
